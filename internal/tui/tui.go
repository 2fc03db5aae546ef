package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/text-adventure/internal/engine"
	"github.com/tatianab/text-adventure/internal/models"
)

type model struct {
	state     *engine.State
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
	quitting  bool
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(st *engine.State) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40
	ti.ShowSuggestions = true

	w := st.World()
	banner := titleStyle.Render(w.Title) + "\n\n" +
		helpStyle.Render(`(Type "help" for commands. Tab accepts a suggestion.)`) + "\n\n"

	return model{
		state:     st,
		textInput: ti,
		gameLog:   banner + gameStyle.Render(st.DescribeLocation()) + "\n\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.textInput.Value()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.textInput.Reset()

			out, quit := engine.Dispatch(m.state, line)

			logWidth := m.logWidth()
			styledLine := userStyle.Width(logWidth).Render("> " + line)
			m.gameLog += styledLine + "\n\n"
			if out != "" {
				m.gameLog += gameStyle.Width(logWidth).Render(out) + "\n\n"
			}
			m.viewport.SetContent(m.gameLog)
			m.viewport.GotoBottom()
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	m.textInput.SetSuggestions(engine.Completions(m.state, m.textInput.Value()))
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	help := helpStyle.Render("Commands: move, look, take, drop, inventory, list, buy, sell, eat, exits, quit.")

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

// renderState draws the side panel: where the player is, what they carry,
// and which ways out exist.
func (m model) renderState() string {
	location := titleStyle.Render("LOCATION") + "\n" + m.state.Location() + "\n\n"

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	items := m.state.Inventory()
	if len(items) == 0 {
		inventory = "(empty)\n"
	} else {
		counts := make(map[string]int, len(items))
		order := make([]string, 0, len(items))
		for _, item := range items {
			if counts[item] == 0 {
				order = append(order, item)
			}
			counts[item]++
		}
		for _, item := range order {
			if counts[item] > 1 {
				inventory += fmt.Sprintf("- %s (%d)\n", item, counts[item])
			} else {
				inventory += "- " + item + "\n"
			}
		}
	}

	exitsTitle := titleStyle.Render("EXITS") + "\n"
	exits := ""
	for _, dir := range models.Directions {
		if target, ok := m.state.Here().Exits[dir]; ok {
			exits += fmt.Sprintf("%s: %s\n", dir.Title(), target)
		}
	}

	content := location + invTitle + inventory + "\n" + exitsTitle + exits

	stateWidth := int(float64(m.width) * 0.23) // Leave some room for padding
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// Run starts the interactive TUI for the given session.
func Run(st *engine.State) error {
	p := tea.NewProgram(NewModel(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
