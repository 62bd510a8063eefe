// Package wrapped turns a raw insights export into the "year in review"
// slideshow data and plays it as a terminal slideshow. The slideshow is a
// standalone UI state machine (landing → story → card); it shares nothing
// with the batch pipeline beyond the models package.
package wrapped

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/insightscodes/devlog/models"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 300
	maxPersonalityLen = 200
	maxWorkflowLen    = 500
	maxNarrativeLen   = 10000
)

// wrappedInput is the subset of the insights export the slideshow needs,
// with the validation the upload form enforced.
type wrappedInput struct {
	ProjectAreas struct {
		Areas []models.ProjectArea `json:"areas" validate:"required,min=1,dive"`
	} `json:"project_areas" validate:"required"`
	InteractionStyle models.InteractionStyle `json:"interaction_style"`
	WhatWorks        struct {
		ImpressiveWorkflows []models.Workflow `json:"impressive_workflows"`
	} `json:"what_works"`
}

var (
	tagRe             = regexp.MustCompile(`<[^>]*>`)
	wrappedMessagesRe = regexp.MustCompile(`(\d[\d,]*)\s+messages`)
	wrappedHoursRe    = regexp.MustCompile(`(\d[\d,]*)\s+hours?\s+of\s+usage`)
	wrappedCommitsRe  = regexp.MustCompile(`(\d[\d,]*)\s+commits`)
)

// sanitize strips markup and caps length, since the slideshow renders
// whatever the upload contained.
func sanitize(s string, maxLen int) string {
	s = tagRe.ReplaceAllString(s, "")
	if runes := []rune(s); len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return s
}

// extractInt pulls a comma-grouped figure out of text, 0 when absent.
func extractInt(text string, pattern *regexp.Regexp) int {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// Extract parses and validates a raw insights JSON document and distills the
// slideshow payload from it.
func Extract(raw []byte) (models.WrappedData, error) {
	var in wrappedInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return models.WrappedData{}, fmt.Errorf("not valid JSON: %w", err)
	}
	if err := models.ValidateStruct(in); err != nil {
		return models.WrappedData{}, fmt.Errorf("not a valid insights export: %w", err)
	}

	narrative := in.InteractionStyle.Narrative
	if runes := []rune(narrative); len(runes) > maxNarrativeLen {
		narrative = string(runes[:maxNarrativeLen])
	}

	totalSessions := 0
	projects := make([]models.WrappedProject, 0, len(in.ProjectAreas.Areas))
	for _, a := range in.ProjectAreas.Areas {
		totalSessions += a.SessionCount
		projects = append(projects, models.WrappedProject{
			Name:        sanitize(a.Name, maxNameLen),
			Sessions:    a.SessionCount,
			Description: sanitize(a.Description, maxDescriptionLen),
		})
	}

	topWorkflow := ""
	if len(in.WhatWorks.ImpressiveWorkflows) > 0 && in.WhatWorks.ImpressiveWorkflows[0].Title != "" {
		topWorkflow = sanitize(in.WhatWorks.ImpressiveWorkflows[0].Title, maxWorkflowLen)
	}

	return models.WrappedData{
		Year:          time.Now().Year(),
		TotalSessions: totalSessions,
		TotalMessages: extractInt(narrative, wrappedMessagesRe),
		TotalHours:    extractInt(narrative, wrappedHoursRe),
		TotalCommits:  extractInt(narrative, wrappedCommitsRe),
		Projects:      projects,
		TopWorkflow:   topWorkflow,
		Personality:   sanitize(in.InteractionStyle.KeyPattern, maxPersonalityLen),
	}, nil
}
