package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSubscriber_ValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		sub     Subscriber
		wantErr bool
	}{
		{
			name: "valid subscriber",
			sub: Subscriber{
				ID:           uuid.New().String(),
				Email:        "reader@example.com",
				ConfirmToken: uuid.New().String(),
				CreatedAt:    time.Now(),
			},
			wantErr: false,
		},
		{
			name: "malformed email",
			sub: Subscriber{
				ID:           uuid.New().String(),
				Email:        "not-an-email",
				ConfirmToken: uuid.New().String(),
				CreatedAt:    time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing id",
			sub: Subscriber{
				Email:     "reader@example.com",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.sub)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInsightsSnapshot_TotalSessions(t *testing.T) {
	s := InsightsSnapshot{ProjectAreas: ProjectAreas{Areas: []ProjectArea{
		{Name: "a", SessionCount: 30},
		{Name: "b", SessionCount: 12},
		{Name: "c", SessionCount: 0},
	}}}
	if got := s.TotalSessions(); got != 42 {
		t.Errorf("TotalSessions() = %d, want 42", got)
	}

	var empty InsightsSnapshot
	if got := empty.TotalSessions(); got != 0 {
		t.Errorf("TotalSessions() on empty snapshot = %d, want 0", got)
	}
}

func TestBlogPost_MetaStripsContent(t *testing.T) {
	p := BlogPost{Slug: "what-works", Title: "What Works", Content: "body"}
	meta := p.Meta()
	if meta.Content != "" {
		t.Errorf("Meta() kept the body: %q", meta.Content)
	}
	if p.Content != "body" {
		t.Error("Meta() mutated the receiver")
	}
	if meta.Slug != "what-works" || meta.Title != "What Works" {
		t.Errorf("Meta() dropped fields: %+v", meta)
	}
}

func TestTimelineEvent_ValidateType(t *testing.T) {
	for _, typ := range []string{EventMilestone, EventWin, EventFriction, EventInsight} {
		e := TimelineEvent{Title: "t", Type: typ}
		if err := ValidateStruct(e); err != nil {
			t.Errorf("type %q should validate: %v", typ, err)
		}
	}
	if err := ValidateStruct(TimelineEvent{Title: "t", Type: "party"}); err == nil {
		t.Error("unknown event type should fail validation")
	}
}
