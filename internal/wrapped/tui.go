package wrapped

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/insightscodes/devlog/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// phase is the slideshow's state. Transitions: landing → story (advance),
// story → card (past the last slide), card → story (watch again).
type phase int

const (
	phaseLanding phase = iota
	phaseStory
	phaseCard
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", " ", "right", "l"),
			key.WithHelp("enter", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "watch again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(1, 3)
)

// slide is one story screen.
type slide struct {
	heading string
	body    string
}

// Model is the slideshow state machine.
type Model struct {
	data   models.WrappedData
	keys   keyMap
	phase  phase
	slide  int
	slides []slide
	width  int
}

// buildSlides lays out the story sequence from the data.
func buildSlides(data models.WrappedData) []slide {
	p := message.NewPrinter(language.English)
	slides := []slide{
		{
			heading: fmt.Sprintf("%d, by the numbers", data.Year),
			body: p.Sprintf("%d sessions\n%d commits\n%d hours\n%d messages",
				data.TotalSessions, data.TotalCommits, data.TotalHours, data.TotalMessages),
		},
	}
	for i, proj := range data.Projects {
		if i >= 5 {
			break
		}
		slides = append(slides, slide{
			heading: proj.Name,
			body:    fmt.Sprintf("%d sessions\n\n%s", proj.Sessions, proj.Description),
		})
	}
	if data.TopWorkflow != "" {
		slides = append(slides, slide{
			heading: "Top workflow",
			body:    data.TopWorkflow,
		})
	}
	if data.Personality != "" {
		slides = append(slides, slide{
			heading: "Your pattern",
			body:    data.Personality,
		})
	}
	return slides
}

// NewModel builds the slideshow for the given data, starting at the landing
// screen.
func NewModel(data models.WrappedData) Model {
	return Model{
		data:   data,
		keys:   defaultKeyMap(),
		phase:  phaseLanding,
		slides: buildSlides(data),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.advance(), nil
		case key.Matches(msg, m.keys.Prev):
			return m.back(), nil
		case key.Matches(msg, m.keys.Restart):
			if m.phase == phaseCard {
				m.phase = phaseStory
				m.slide = 0
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) advance() Model {
	switch m.phase {
	case phaseLanding:
		m.phase = phaseStory
		m.slide = 0
	case phaseStory:
		if m.slide+1 < len(m.slides) {
			m.slide++
		} else {
			m.phase = phaseCard
		}
	}
	return m
}

func (m Model) back() Model {
	if m.phase == phaseStory && m.slide > 0 {
		m.slide--
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.phase {
	case phaseLanding:
		return m.landingView()
	case phaseStory:
		return m.storyView()
	default:
		return m.cardView()
	}
}

func (m Model) landingView() string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Your %d Wrapped", m.data.Year)))
	b.WriteString("\n\n")
	b.WriteString(p.Sprintf("A year of building: %d sessions across %d projects.\n\n",
		m.data.TotalSessions, len(m.data.Projects)))
	b.WriteString(faintStyle.Render("press enter to start · q to quit"))
	return b.String() + "\n"
}

func (m Model) storyView() string {
	s := m.slides[m.slide]
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.heading))
	b.WriteString("\n\n")
	b.WriteString(s.body)
	b.WriteString("\n\n")
	b.WriteString(m.progressDots())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter next · ← back · q quit"))
	return b.String() + "\n"
}

func (m Model) progressDots() string {
	dots := make([]string, len(m.slides))
	for i := range m.slides {
		if i == m.slide {
			dots[i] = accentStyle.Render("●")
		} else {
			dots[i] = faintStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (m Model) cardView() string {
	p := message.NewPrinter(language.English)
	body := p.Sprintf("%s\n\n%d sessions · %d commits · %d hours\n\n%s",
		titleStyle.Render(fmt.Sprintf("%d Wrapped", m.data.Year)),
		m.data.TotalSessions, m.data.TotalCommits, m.data.TotalHours,
		accentStyle.Render(m.data.Personality))
	var b strings.Builder
	b.WriteString(cardStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("r watch again · q quit"))
	return b.String() + "\n"
}

// Run plays the slideshow until the user quits.
func Run(data models.WrappedData) error {
	_, err := tea.NewProgram(NewModel(data), tea.WithAltScreen()).Run()
	return err
}
