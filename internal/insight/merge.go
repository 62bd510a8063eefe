package insight

import (
	"errors"
	"strings"

	"github.com/insightscodes/devlog/models"
)

// ErrNoRuns is returned when Merge is called with an empty history. Archiving
// runs immediately before merging, so this should never happen in practice.
var ErrNoRuns = errors.New("no insights runs to merge")

// Prefix lengths for natural-key normalization.
const (
	examplePrefixLen  = 60
	additionPrefixLen = 60
)

// NormKey lowercases s, keeps the first n runes and trims surrounding
// whitespace. Two entries whose NormKey collide are considered duplicates.
func NormKey(s string, n int) string {
	lower := strings.ToLower(s)
	if runes := []rune(lower); len(runes) > n {
		lower = string(runes[:n])
	}
	return strings.TrimSpace(lower)
}

// DedupeStrings removes duplicates by normalized prefix, keeping the first
// occurrence in slice order.
func DedupeStrings(items []string, prefixLen int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := NormKey(item, prefixLen)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// unionNewestFirst walks runs in reverse chronological order and collects
// entries whose key has not been seen yet. The most recent run's entry wins
// for any given key, while every run still contributes its unique entries.
func unionNewestFirst[T any](runs []models.InsightsSnapshot, pick func(models.InsightsSnapshot) []T, key func(T) string) []T {
	seen := make(map[string]bool)
	var out []T
	for i := len(runs) - 1; i >= 0; i-- {
		for _, item := range pick(runs[i]) {
			k := strings.ToLower(key(item))
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, item)
		}
	}
	return out
}

// mergeFriction folds friction categories across runs. Categories are keyed
// case-insensitively; on collision the examples of both runs are unioned and
// the later run's description overwrites the earlier one. Example lists are
// deduplicated by 60-char prefix.
func mergeFriction(runs []models.InsightsSnapshot) []models.FrictionCategory {
	index := make(map[string]int)
	var merged []models.FrictionCategory
	for _, run := range runs {
		for _, cat := range run.FrictionAnalysis.Categories {
			key := strings.ToLower(cat.Category)
			if i, ok := index[key]; ok {
				merged[i].Examples = append(merged[i].Examples, cat.Examples...)
				merged[i].Description = cat.Description
				continue
			}
			index[key] = len(merged)
			merged = append(merged, models.FrictionCategory{
				Category:    cat.Category,
				Description: cat.Description,
				Examples:    append([]string(nil), cat.Examples...),
			})
		}
	}
	for i := range merged {
		merged[i].Examples = DedupeStrings(merged[i].Examples, examplePrefixLen)
	}
	return merged
}

// mergeAdditions accumulates CLAUDE.md additions across runs, deduplicating
// by the addition text's 60-char prefix. The surviving entry's full record is
// taken from the most recent run that contains the exact addition text.
func mergeAdditions(runs []models.InsightsSnapshot) []models.ClaudeMdAddition {
	var texts []string
	for _, run := range runs {
		for _, a := range run.Suggestions.ClaudeMdAdditions {
			texts = append(texts, a.Addition)
		}
	}
	deduped := DedupeStrings(texts, additionPrefixLen)

	out := make([]models.ClaudeMdAddition, 0, len(deduped))
	for _, text := range deduped {
		entry := models.ClaudeMdAddition{Addition: text}
		for i := len(runs) - 1; i >= 0; i-- {
			found := false
			for _, a := range runs[i].Suggestions.ClaudeMdAdditions {
				if a.Addition == text {
					entry = a
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		out = append(out, entry)
	}
	return out
}

// bestFunEnding picks the run whose detail text is longest. Length as a
// proxy for richness is a deliberate heuristic carried over as-is; do not
// generalize it to other fields.
func bestFunEnding(runs []models.InsightsSnapshot) models.FunEnding {
	best := runs[0].FunEnding
	for _, run := range runs[1:] {
		if len(run.FunEnding.Detail) > len(best.Detail) {
			best = run.FunEnding
		}
	}
	return best
}

// Merge folds an ordered sequence of archived runs into one logical snapshot.
// Scalar and narrative groups are copied verbatim from the latest run;
// list groups are the union of all runs with duplicates removed by natural
// key, latest entry winning on collision.
func Merge(runs []models.InsightsSnapshot) (models.InsightsSnapshot, error) {
	if len(runs) == 0 {
		return models.InsightsSnapshot{}, ErrNoRuns
	}
	if len(runs) == 1 {
		return runs[0], nil
	}

	latest := runs[len(runs)-1]

	workflows := unionNewestFirst(runs,
		func(s models.InsightsSnapshot) []models.Workflow { return s.WhatWorks.ImpressiveWorkflows },
		func(w models.Workflow) string { return w.Title })
	patterns := unionNewestFirst(runs,
		func(s models.InsightsSnapshot) []models.UsagePattern { return s.Suggestions.UsagePatterns },
		func(p models.UsagePattern) string { return p.Title })
	features := unionNewestFirst(runs,
		func(s models.InsightsSnapshot) []models.Feature { return s.Suggestions.FeaturesToTry },
		func(f models.Feature) string { return f.Feature })
	opportunities := unionNewestFirst(runs,
		func(s models.InsightsSnapshot) []models.Opportunity { return s.OnTheHorizon.Opportunities },
		func(o models.Opportunity) string { return o.Title })

	return models.InsightsSnapshot{
		// Latest wins for stats and narrative
		ProjectAreas:     latest.ProjectAreas,
		InteractionStyle: latest.InteractionStyle,
		AtAGlance:        latest.AtAGlance,

		// Accumulated content
		WhatWorks: models.WhatWorks{
			Intro:               latest.WhatWorks.Intro,
			ImpressiveWorkflows: workflows,
		},
		FrictionAnalysis: models.FrictionAnalysis{
			Intro:      latest.FrictionAnalysis.Intro,
			Categories: mergeFriction(runs),
		},
		Suggestions: models.Suggestions{
			ClaudeMdAdditions: mergeAdditions(runs),
			FeaturesToTry:     features,
			UsagePatterns:     patterns,
		},
		OnTheHorizon: models.OnTheHorizon{
			Intro:         latest.OnTheHorizon.Intro,
			Opportunities: opportunities,
		},
		FunEnding: bestFunEnding(runs),
	}, nil
}
