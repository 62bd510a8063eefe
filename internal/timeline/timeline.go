// Package timeline derives dated event groups from a merged insights
// snapshot and folds them into the previously persisted timeline. Historical
// groups are append-only: they are never merged or reordered, only extended,
// and the single floating "N commits shipped" stats marker is refreshed.
package timeline

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/insightscodes/devlog/internal/insight"
	"github.com/insightscodes/devlog/internal/textclean"
	"github.com/insightscodes/devlog/models"
)

// titlePrefixLen is the normalized-title prefix used for deduplication.
const titlePrefixLen = 40

// commitsShippedRe matches the floating stats marker. At most one such event
// may exist across the whole timeline.
var commitsShippedRe = regexp.MustCompile(`^\d+ commits shipped$`)

// truncate caps s at max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ExtractEvents builds the candidate event list from a snapshot: one
// milestone per project area, one win per workflow, one friction event per
// category, plus insight events for the key pattern and fun-ending headline.
func ExtractEvents(data models.InsightsSnapshot, cleaner *textclean.Cleaner) []models.TimelineEvent {
	var events []models.TimelineEvent

	for _, area := range data.ProjectAreas.Areas {
		events = append(events, models.TimelineEvent{
			Title:       fmt.Sprintf("%d sessions: %s", area.SessionCount, cleaner.Anonymize(area.Name)),
			Description: truncate(cleaner.Clean(area.Description), 120),
			Type:        models.EventMilestone,
		})
	}

	for _, w := range data.WhatWorks.ImpressiveWorkflows {
		events = append(events, models.TimelineEvent{
			Title:       w.Title,
			Description: truncate(cleaner.Clean(w.Description), 150),
			Type:        models.EventWin,
		})
	}

	for _, cat := range data.FrictionAnalysis.Categories {
		events = append(events, models.TimelineEvent{
			Title:       cat.Category,
			Description: truncate(cleaner.Clean(cat.Description), 150),
			Type:        models.EventFriction,
		})
	}

	if data.InteractionStyle.KeyPattern != "" {
		events = append(events, models.TimelineEvent{
			Title:       "Key pattern identified",
			Description: cleaner.Clean(data.InteractionStyle.KeyPattern),
			Type:        models.EventInsight,
		})
	}

	if data.FunEnding.Headline != "" {
		headline := cleaner.Clean(data.FunEnding.Headline)
		title := headline
		if len([]rune(headline)) > 80 {
			title = truncate(headline, 77) + "..."
		}
		events = append(events, models.TimelineEvent{
			Title:       title,
			Description: truncate(cleaner.Clean(data.FunEnding.Detail), 150),
			Type:        models.EventInsight,
		})
	}

	return events
}

// dedupeEvents removes events whose normalized title prefix was already seen,
// keeping the first occurrence.
func dedupeEvents(events []models.TimelineEvent) []models.TimelineEvent {
	seen := make(map[string]bool, len(events))
	out := make([]models.TimelineEvent, 0, len(events))
	for _, e := range events {
		key := insight.NormKey(e.Title, titlePrefixLen)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// Generate folds the snapshot's candidate events into the existing timeline.
// Candidates already present (by normalized title) are dropped; any stale
// "N commits shipped" marker is pruned; survivors become one new dated group
// ending with a fresh stats event. With no survivors the stats event is
// appended to the most recent existing group instead.
func Generate(data models.InsightsSnapshot, existing []models.TimelineEntry, today string, cleaner *textclean.Cleaner) []models.TimelineEntry {
	facts := insight.ExtractFacts(data)

	seenTitles := make(map[string]bool)
	for _, day := range existing {
		for _, event := range day.Events {
			seenTitles[insight.NormKey(event.Title, titlePrefixLen)] = true
		}
	}

	var newEvents []models.TimelineEvent
	for _, e := range ExtractEvents(data, cleaner) {
		if !seenTitles[insight.NormKey(e.Title, titlePrefixLen)] {
			newEvents = append(newEvents, e)
		}
	}

	statsEvent := models.TimelineEvent{
		Title:       fmt.Sprintf("%s commits shipped", facts.Commits),
		Description: fmt.Sprintf("%d sessions, %d project areas — building with Claude Code", facts.Sessions, facts.ProjectCount),
		Type:        models.EventWin,
	}

	// Prune stale stats markers so the refreshed one never accumulates.
	timeline := make([]models.TimelineEntry, 0, len(existing)+1)
	for _, day := range existing {
		kept := make([]models.TimelineEvent, 0, len(day.Events))
		for _, e := range day.Events {
			if commitsShippedRe.MatchString(e.Title) {
				continue
			}
			kept = append(kept, e)
		}
		day.Events = kept
		timeline = append(timeline, day)
	}

	if len(newEvents) == 0 {
		if len(timeline) > 0 {
			last := len(timeline) - 1
			timeline[last].Events = append(timeline[last].Events, statsEvent)
		}
		slog.Info("timeline: no new events, updated stats")
		return timeline
	}

	entry := models.TimelineEntry{
		Day:    today,
		Label:  fmt.Sprintf("Update — %d new events", len(newEvents)),
		Events: dedupeEvents(append(newEvents, statsEvent)),
	}
	slog.Info("timeline: new events added", "count", len(newEvents), "day", today)
	return append(timeline, entry)
}
