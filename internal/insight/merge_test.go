package insight

import (
	"testing"

	"github.com/insightscodes/devlog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWith(workflowTitles ...string) models.InsightsSnapshot {
	s := models.InsightsSnapshot{
		ProjectAreas: models.ProjectAreas{Areas: []models.ProjectArea{
			{Name: "backend", SessionCount: 10},
		}},
	}
	for _, title := range workflowTitles {
		s.WhatWorks.ImpressiveWorkflows = append(s.WhatWorks.ImpressiveWorkflows, models.Workflow{
			Title:       title,
			Description: "desc for " + title,
		})
	}
	return s
}

func TestMergeEmptyHistory(t *testing.T) {
	_, err := Merge(nil)
	assert.ErrorIs(t, err, ErrNoRuns)
}

func TestMergeSingleRunIsIdentity(t *testing.T) {
	run := snapshotWith("Parallel agents")
	run.FunEnding = models.FunEnding{Headline: "ha", Detail: "short"}

	merged, err := Merge([]models.InsightsSnapshot{run})
	require.NoError(t, err)
	assert.Equal(t, run, merged)
}

func TestMergeLatestWinsForScalars(t *testing.T) {
	older := snapshotWith("A")
	older.InteractionStyle = models.InteractionStyle{Narrative: "old narrative", KeyPattern: "old pattern"}
	older.AtAGlance.WhatsWorking = "old"

	newer := snapshotWith("A")
	newer.ProjectAreas.Areas[0].SessionCount = 42
	newer.InteractionStyle = models.InteractionStyle{Narrative: "new narrative", KeyPattern: "new pattern"}
	newer.AtAGlance.WhatsWorking = "new"
	newer.WhatWorks.Intro = "fresh intro"

	merged, err := Merge([]models.InsightsSnapshot{older, newer})
	require.NoError(t, err)

	assert.Equal(t, "new narrative", merged.InteractionStyle.Narrative)
	assert.Equal(t, "new", merged.AtAGlance.WhatsWorking)
	assert.Equal(t, "fresh intro", merged.WhatWorks.Intro)
	assert.Equal(t, 42, merged.ProjectAreas.Areas[0].SessionCount)
}

func TestMergeUnionsWorkflowsNewestFirst(t *testing.T) {
	first := snapshotWith("Parallel agents", "Plan mode")
	second := snapshotWith("Plan mode", "Headless runs")

	merged, err := Merge([]models.InsightsSnapshot{first, second})
	require.NoError(t, err)

	var titles []string
	for _, w := range merged.WhatWorks.ImpressiveWorkflows {
		titles = append(titles, w.Title)
	}
	// Latest run's entries come first; older unique entries follow.
	assert.Equal(t, []string{"Plan mode", "Headless runs", "Parallel agents"}, titles)
}

func TestMergeWorkflowCollisionPrefersLatest(t *testing.T) {
	first := snapshotWith("Plan mode")
	first.WhatWorks.ImpressiveWorkflows[0].Description = "stale"
	second := snapshotWith("plan mode")
	second.WhatWorks.ImpressiveWorkflows[0].Description = "current"

	merged, err := Merge([]models.InsightsSnapshot{first, second})
	require.NoError(t, err)

	require.Len(t, merged.WhatWorks.ImpressiveWorkflows, 1)
	assert.Equal(t, "current", merged.WhatWorks.ImpressiveWorkflows[0].Description)
}

func TestMergeGrowsMonotonically(t *testing.T) {
	run1 := snapshotWith("A")
	run2 := snapshotWith("B")
	run3 := snapshotWith("C")

	after2, err := Merge([]models.InsightsSnapshot{run1, run2})
	require.NoError(t, err)
	after3, err := Merge([]models.InsightsSnapshot{run1, run2, run3})
	require.NoError(t, err)

	assert.Greater(t, len(after3.WhatWorks.ImpressiveWorkflows), len(after2.WhatWorks.ImpressiveWorkflows))
	// Everything present after two runs is still present after three.
	titles := make(map[string]bool)
	for _, w := range after3.WhatWorks.ImpressiveWorkflows {
		titles[w.Title] = true
	}
	for _, w := range after2.WhatWorks.ImpressiveWorkflows {
		assert.True(t, titles[w.Title], "workflow %q dropped by later merge", w.Title)
	}
}

func TestMergeFrictionCategories(t *testing.T) {
	first := snapshotWith("A")
	first.FrictionAnalysis.Categories = []models.FrictionCategory{
		{Category: "Context Loss", Description: "first take", Examples: []string{"lost the thread after compaction"}},
	}
	second := snapshotWith("A")
	second.FrictionAnalysis.Categories = []models.FrictionCategory{
		{Category: "context loss", Description: "second take", Examples: []string{
			"lost the thread after compaction",
			"forgot the file layout mid-session",
		}},
		{Category: "Permissions", Description: "prompt fatigue", Examples: []string{"approved the same command twenty times"}},
	}

	merged, err := Merge([]models.InsightsSnapshot{first, second})
	require.NoError(t, err)

	require.Len(t, merged.FrictionAnalysis.Categories, 2)
	ctx := merged.FrictionAnalysis.Categories[0]
	assert.Equal(t, "Context Loss", ctx.Category, "first run's casing survives")
	assert.Equal(t, "second take", ctx.Description, "latest description wins")
	assert.Len(t, ctx.Examples, 2, "examples are unioned and deduplicated")
}

func TestMergeAdditionsDedupeByPrefix(t *testing.T) {
	long := "Always run the linter before committing anything, no matter how small the change appears to be at first glance"
	first := snapshotWith("A")
	first.Suggestions.ClaudeMdAdditions = []models.ClaudeMdAddition{
		{Addition: long, Why: "old reason"},
	}
	second := snapshotWith("A")
	second.Suggestions.ClaudeMdAdditions = []models.ClaudeMdAddition{
		{Addition: long, Why: "new reason"},
		{Addition: "Prefer table-driven tests", Why: "consistency"},
	}

	merged, err := Merge([]models.InsightsSnapshot{first, second})
	require.NoError(t, err)

	require.Len(t, merged.Suggestions.ClaudeMdAdditions, 2)
	assert.Equal(t, "new reason", merged.Suggestions.ClaudeMdAdditions[0].Why)
}

func TestMergeFunEndingLongestDetailWins(t *testing.T) {
	first := snapshotWith("A")
	first.FunEnding = models.FunEnding{Headline: "rich", Detail: "a long and winding anecdote with plenty of texture"}
	second := snapshotWith("A")
	second.FunEnding = models.FunEnding{Headline: "thin", Detail: "meh"}

	merged, err := Merge([]models.InsightsSnapshot{first, second})
	require.NoError(t, err)
	assert.Equal(t, "rich", merged.FunEnding.Headline)
}

func TestNormKeyTruncatesByRunes(t *testing.T) {
	assert.Equal(t, "héllo", NormKey("HÉLLO WORLD", 5))
	assert.Equal(t, "abc", NormKey("  ABC  ", 10))
}

func TestDedupeStringsKeepsFirstOccurrence(t *testing.T) {
	items := []string{"Alpha entry", "alpha ENTRY", "Beta"}
	out := DedupeStrings(items, 60)
	assert.Equal(t, []string{"Alpha entry", "Beta"}, out)
}
