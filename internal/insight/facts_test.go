package insight

import (
	"testing"

	"github.com/insightscodes/devlog/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractFactsFromNarrative(t *testing.T) {
	s := models.InsightsSnapshot{
		ProjectAreas: models.ProjectAreas{Areas: []models.ProjectArea{
			{Name: "backend", SessionCount: 30},
			{Name: "frontend", SessionCount: 12},
		}},
		InteractionStyle: models.InteractionStyle{
			Narrative: "Across 312 commits and 1,204 hours of usage I sent 4,500 messages. " +
				"There were 61 buggy code complaints, 39 wrong approach corrections, and 5,000 file touches.",
		},
	}

	f := ExtractFacts(s)
	assert.Equal(t, 42, f.Sessions)
	assert.Equal(t, 2, f.ProjectCount)
	assert.Equal(t, "312", f.Commits)
	assert.Equal(t, "1,204", f.Hours)
	assert.Equal(t, "4,500", f.Messages)
	assert.Equal(t, "61", f.BuggyCode)
	assert.Equal(t, "39", f.WrongApproach)
	assert.Equal(t, "5,000", f.FileTouches)
}

func TestExtractFactsFallbacks(t *testing.T) {
	f := ExtractFacts(models.InsightsSnapshot{})

	assert.Equal(t, 0, f.Sessions)
	assert.Equal(t, DefaultCommits, f.Commits)
	assert.Equal(t, DefaultHours, f.Hours)
	assert.Equal(t, DefaultMessages, f.Messages)
	assert.Equal(t, DefaultBuggyCode, f.BuggyCode)
	assert.Equal(t, DefaultWrongApproach, f.WrongApproach)
	assert.Equal(t, DefaultFileTouches, f.FileTouches)
}

func TestCountStripsCommaGrouping(t *testing.T) {
	assert.Equal(t, 4169, Count("4,169"))
	assert.Equal(t, 256, Count("256"))
	assert.Equal(t, 0, Count("n/a"))
}
