package models

// Event types appearing in the timeline.
const (
	EventMilestone = "milestone"
	EventWin       = "win"
	EventFriction  = "friction"
	EventInsight   = "insight"
)

// TimelineEvent is one dated event inside a timeline entry.
type TimelineEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"oneof=milestone win friction insight"`
}

// TimelineEntry is a dated group of events. Entries are append-only: the
// generator never merges or reorders historical groups.
type TimelineEntry struct {
	Day    string          `json:"day"`
	Label  string          `json:"label"`
	Events []TimelineEvent `json:"events"`
}
