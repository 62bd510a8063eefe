package timeline

import (
	"strings"
	"testing"

	"github.com/insightscodes/devlog/internal/textclean"
	"github.com/insightscodes/devlog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCleaner() *textclean.Cleaner {
	return textclean.New(textclean.DefaultRules())
}

func testSnapshot() models.InsightsSnapshot {
	return models.InsightsSnapshot{
		ProjectAreas: models.ProjectAreas{Areas: []models.ProjectArea{
			{Name: "backend", SessionCount: 30, Description: "API work."},
		}},
		InteractionStyle: models.InteractionStyle{
			Narrative:  "There were 312 commits in this stretch.",
			KeyPattern: "Plan first, then execute.",
		},
		WhatWorks: models.WhatWorks{ImpressiveWorkflows: []models.Workflow{
			{Title: "Parallel agents", Description: "Several agents at once."},
		}},
		FrictionAnalysis: models.FrictionAnalysis{Categories: []models.FrictionCategory{
			{Category: "Context Loss", Description: "Sessions drift over time."},
		}},
		FunEnding: models.FunEnding{Headline: "An apology to the AI", Detail: "It happened twice."},
	}
}

func TestExtractEventsCoversAllSections(t *testing.T) {
	events := ExtractEvents(testSnapshot(), testCleaner())

	require.Len(t, events, 5)
	assert.Equal(t, "30 sessions: backend", events[0].Title)
	assert.Equal(t, models.EventMilestone, events[0].Type)
	assert.Equal(t, models.EventWin, events[1].Type)
	assert.Equal(t, models.EventFriction, events[2].Type)
	assert.Equal(t, "Key pattern identified", events[3].Title)
	assert.Equal(t, "An apology to the AI", events[4].Title)
}

func TestExtractEventsTruncatesDescriptions(t *testing.T) {
	s := testSnapshot()
	s.ProjectAreas.Areas[0].Description = strings.Repeat("a", 300)
	s.WhatWorks.ImpressiveWorkflows[0].Description = strings.Repeat("b", 300)

	events := ExtractEvents(s, testCleaner())
	assert.Len(t, events[0].Description, 120)
	assert.Len(t, events[1].Description, 150)
}

func TestExtractEventsCapsLongHeadline(t *testing.T) {
	s := testSnapshot()
	s.FunEnding.Headline = strings.Repeat("x", 100)

	events := ExtractEvents(s, testCleaner())
	headline := events[len(events)-1].Title
	assert.Len(t, headline, 80)
	assert.True(t, strings.HasSuffix(headline, "..."))
}

func TestGenerateFirstRunCreatesOneGroup(t *testing.T) {
	tl := Generate(testSnapshot(), nil, "2026-02-24", testCleaner())

	require.Len(t, tl, 1)
	assert.Equal(t, "2026-02-24", tl[0].Day)
	assert.Equal(t, "Update — 5 new events", tl[0].Label)
	last := tl[0].Events[len(tl[0].Events)-1]
	assert.Equal(t, "312 commits shipped", last.Title)
}

func TestGenerateSecondRunSkipsSeenTitles(t *testing.T) {
	c := testCleaner()
	first := Generate(testSnapshot(), nil, "2026-02-24", c)

	s := testSnapshot()
	s.WhatWorks.ImpressiveWorkflows = append(s.WhatWorks.ImpressiveWorkflows, models.Workflow{
		Title: "Headless runs", Description: "CI without a terminal.",
	})
	second := Generate(s, first, "2026-03-01", c)

	require.Len(t, second, 2)
	newGroup := second[1]
	assert.Equal(t, "Update — 1 new events", newGroup.Label)
	require.Len(t, newGroup.Events, 2)
	assert.Equal(t, "Headless runs", newGroup.Events[0].Title)
}

func TestGenerateKeepsSingleStatsMarker(t *testing.T) {
	c := testCleaner()
	first := Generate(testSnapshot(), nil, "2026-02-24", c)
	second := Generate(testSnapshot(), first, "2026-03-01", c)
	third := Generate(testSnapshot(), second, "2026-03-08", c)

	markers := 0
	for _, day := range third {
		for _, e := range day.Events {
			if strings.HasSuffix(e.Title, "commits shipped") {
				markers++
			}
		}
	}
	assert.Equal(t, 1, markers)
}

func TestGenerateNoNewEventsAppendsStatsToLastGroup(t *testing.T) {
	c := testCleaner()
	first := Generate(testSnapshot(), nil, "2026-02-24", c)

	second := Generate(testSnapshot(), first, "2026-03-01", c)
	require.Len(t, second, 1, "no new group when nothing changed")

	last := second[0].Events[len(second[0].Events)-1]
	assert.Equal(t, "312 commits shipped", last.Title)
}

func TestGenerateNeverReordersHistory(t *testing.T) {
	existing := []models.TimelineEntry{
		{Day: "2026-01-01", Label: "Day 1", Events: []models.TimelineEvent{
			{Title: "Project kickoff", Type: models.EventMilestone},
		}},
		{Day: "2026-02-01", Label: "Day 32", Events: []models.TimelineEvent{
			{Title: "First deploy", Type: models.EventWin},
		}},
	}

	tl := Generate(testSnapshot(), existing, "2026-03-01", testCleaner())
	require.GreaterOrEqual(t, len(tl), 3)
	assert.Equal(t, "2026-01-01", tl[0].Day)
	assert.Equal(t, "2026-02-01", tl[1].Day)
	assert.Equal(t, "Project kickoff", tl[0].Events[0].Title)
}
