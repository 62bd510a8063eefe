package wrapped

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/insightscodes/devlog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() models.WrappedData {
	return models.WrappedData{
		Year:          2026,
		TotalSessions: 56,
		TotalCommits:  312,
		TotalHours:    1204,
		TotalMessages: 4500,
		Projects: []models.WrappedProject{
			{Name: "backend", Sessions: 30, Description: "API work"},
			{Name: "frontend", Sessions: 12, Description: "UI work"},
		},
		TopWorkflow: "Parallel agents",
		Personality: "Plans first, code second.",
	}
}

func TestBuildSlidesLayout(t *testing.T) {
	slides := buildSlides(testData())

	// Numbers, two projects, top workflow, personality.
	require.Len(t, slides, 5)
	assert.Equal(t, "2026, by the numbers", slides[0].heading)
	assert.Contains(t, slides[0].body, "4,500 messages")
	assert.Equal(t, "backend", slides[1].heading)
	assert.Equal(t, "Top workflow", slides[3].heading)
	assert.Equal(t, "Your pattern", slides[4].heading)
}

func TestBuildSlidesCapsProjectsAtFive(t *testing.T) {
	data := testData()
	data.Projects = nil
	for i := 0; i < 8; i++ {
		data.Projects = append(data.Projects, models.WrappedProject{Name: "p", Sessions: i})
	}

	slides := buildSlides(data)
	// 1 numbers + 5 projects + workflow + personality.
	assert.Len(t, slides, 8)
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestModelWalksLandingToCard(t *testing.T) {
	var m tea.Model = NewModel(testData())

	m, _ = m.Update(enter()) // landing → story
	model := m.(Model)
	assert.Equal(t, phaseStory, model.phase)
	assert.Equal(t, 0, model.slide)

	for range model.slides {
		m, _ = m.Update(enter())
	}
	model = m.(Model)
	assert.Equal(t, phaseCard, model.phase)
}

func TestModelBackStopsAtFirstSlide(t *testing.T) {
	m := NewModel(testData())
	m = m.advance() // story, slide 0

	m = m.back()
	assert.Equal(t, 0, m.slide)
	assert.Equal(t, phaseStory, m.phase)

	m = m.advance()
	m = m.back()
	assert.Equal(t, 0, m.slide)
}

func TestModelRestartFromCard(t *testing.T) {
	m := NewModel(testData())
	m = m.advance()
	for range m.slides {
		m = m.advance()
	}
	require.Equal(t, phaseCard, m.phase)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	assert.Equal(t, phaseStory, m.phase)
	assert.Equal(t, 0, m.slide)
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(testData())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
