package models

// WrappedData is the distilled payload behind the "year in review" slideshow.
type WrappedData struct {
	Year          int              `json:"year"`
	TotalSessions int              `json:"totalSessions"`
	TotalMessages int              `json:"totalMessages"`
	TotalHours    int              `json:"totalHours"`
	TotalCommits  int              `json:"totalCommits"`
	Projects      []WrappedProject `json:"projects"`
	TopWorkflow   string           `json:"topWorkflow,omitempty"`
	Personality   string           `json:"personality"`
}

// WrappedProject is one project slide.
type WrappedProject struct {
	Name        string `json:"name"`
	Sessions    int    `json:"sessions"`
	Description string `json:"description"`
}
