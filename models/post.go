package models

// BlogPost is one generated post artifact. Slug is a published contract:
// inbound links depend on it, so it must never change once live. Content is
// fully replaced on every generation run.
type BlogPost struct {
	Slug          string     `json:"slug" validate:"required"`
	Title         string     `json:"title" validate:"required"`
	Subtitle      string     `json:"subtitle"`
	Date          string     `json:"date" validate:"required"`
	Category      string     `json:"category"`
	CategoryColor string     `json:"categoryColor"`
	Icon          string     `json:"icon"`
	ReadingTime   string     `json:"readingTime"`
	Content       string     `json:"content,omitempty"`
	Highlights    []string   `json:"highlights,omitempty"`
	KeyTakeaway   string     `json:"keyTakeaway,omitempty"`
	Stats         []PostStat `json:"stats,omitempty"`
}

// PostStat is one badge shown alongside a post.
type PostStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// Meta returns the post with its body stripped, as stored in the index
// artifact.
func (p BlogPost) Meta() BlogPost {
	p.Content = ""
	return p
}

// SiteStats is the aggregate stats artifact consumed by the site renderer.
type SiteStats struct {
	TotalSessions int    `json:"totalSessions"`
	TotalMessages int    `json:"totalMessages"`
	TotalHours    int    `json:"totalHours"`
	TotalCommits  int    `json:"totalCommits"`
	DateRange     string `json:"dateRange"`
	ProjectCount  int    `json:"projectCount"`
}
