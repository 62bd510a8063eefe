package models

import "time"

// Subscriber is one mailing-list member. Unconfirmed subscribers are never
// emailed; ConfirmToken is the secret used by the confirmation link.
type Subscriber struct {
	ID           string    `json:"id" validate:"required,uuid4"`
	Email        string    `json:"email" validate:"required,email"`
	Confirmed    bool      `json:"confirmed"`
	ConfirmToken string    `json:"confirmToken,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
