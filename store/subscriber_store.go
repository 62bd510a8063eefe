package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/insightscodes/devlog/models"

	_ "modernc.org/sqlite" // SQLite driver
)

const subscriberSchema = `
CREATE TABLE IF NOT EXISTS subscribers (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	confirmed     INTEGER NOT NULL DEFAULT 0,
	confirm_token TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL
);
`

// ErrSubscriberNotFound is returned when an email or token matches nothing.
var ErrSubscriberNotFound = errors.New("subscriber not found")

// SubscriberStore keeps the mailing list in a local SQLite database.
type SubscriberStore struct {
	db *sql.DB
}

// OpenSubscriberStore opens (creating if needed) the subscriber database at
// path and applies the schema.
func OpenSubscriberStore(path string) (*SubscriberStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open subscriber db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("subscriber db ping failed: %w", err)
	}
	if _, err := db.Exec(subscriberSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply subscriber schema: %w", err)
	}
	return &SubscriberStore{db: db}, nil
}

// Close releases the database handle.
func (s *SubscriberStore) Close() error {
	return s.db.Close()
}

// Add registers an email, unconfirmed, with a fresh confirmation token.
// Idempotent per email: adding an existing address returns the stored record
// unchanged.
func (s *SubscriberStore) Add(email string) (models.Subscriber, error) {
	sub := models.Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		ConfirmToken: uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
	}
	if err := models.ValidateStruct(sub); err != nil {
		return models.Subscriber{}, fmt.Errorf("invalid subscriber: %w", err)
	}
	_, err := s.db.Exec(
		`INSERT INTO subscribers (id, email, confirmed, confirm_token, created_at)
		 VALUES (?, ?, 0, ?, ?) ON CONFLICT(email) DO NOTHING`,
		sub.ID, sub.Email, sub.ConfirmToken, sub.CreatedAt,
	)
	if err != nil {
		return models.Subscriber{}, fmt.Errorf("insert subscriber: %w", err)
	}
	return s.GetByEmail(email)
}

// GetByEmail looks up one subscriber.
func (s *SubscriberStore) GetByEmail(email string) (models.Subscriber, error) {
	row := s.db.QueryRow(
		`SELECT id, email, confirmed, confirm_token, created_at FROM subscribers WHERE email = ?`, email)
	return scanSubscriber(row)
}

// Confirm marks the subscriber holding token as confirmed.
func (s *SubscriberStore) Confirm(token string) error {
	res, err := s.db.Exec(`UPDATE subscribers SET confirmed = 1 WHERE confirm_token = ?`, token)
	if err != nil {
		return fmt.Errorf("confirm subscriber: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm subscriber: %w", err)
	}
	if n == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}

// Remove deletes the subscriber with the given email.
func (s *SubscriberStore) Remove(email string) error {
	res, err := s.db.Exec(`DELETE FROM subscribers WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("remove subscriber: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove subscriber: %w", err)
	}
	if n == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}

// List returns subscribers ordered by signup time. With confirmedOnly it
// returns only addresses safe to email.
func (s *SubscriberStore) List(confirmedOnly bool) ([]models.Subscriber, error) {
	query := `SELECT id, email, confirmed, confirm_token, created_at FROM subscribers`
	if confirmedOnly {
		query += ` WHERE confirmed = 1`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subs []models.Subscriber
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscriber(row rowScanner) (models.Subscriber, error) {
	var sub models.Subscriber
	var confirmed int
	err := row.Scan(&sub.ID, &sub.Email, &confirmed, &sub.ConfirmToken, &sub.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subscriber{}, ErrSubscriberNotFound
	}
	if err != nil {
		return models.Subscriber{}, fmt.Errorf("scan subscriber: %w", err)
	}
	sub.Confirmed = confirmed == 1
	return sub, nil
}
