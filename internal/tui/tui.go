package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/print-shop/internal/engine"
	"github.com/tatianab/print-shop/internal/models"
	"github.com/tatianab/print-shop/internal/printer"
)

// NewGameFunc builds a session for the chosen game length.
type NewGameFunc func(ctx context.Context, length models.LengthSpec) (*engine.Engine, error)

type sessionState int

const (
	stateChooseLength sessionState = iota
	stateLoading
	statePlaying
	stateOver
	stateError
)

type model struct {
	state     sessionState
	content   *models.Content
	newGame   NewGameFunc
	engine    *engine.Engine
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	notice    string
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F")).
			Bold(true)

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

func NewModel(content *models.Content, newGame NewGameFunc) model {
	ti := textinput.New()
	ti.Placeholder = "1, 2 or 3"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		state:     stateChooseLength,
		content:   content,
		newGame:   newGame,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type worldGeneratedMsg struct {
	engine *engine.Engine
}

type errMsg struct {
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			switch m.state {
			case stateChooseLength:
				return m.chooseLength()
			case statePlaying:
				return m.handleAction()
			case stateOver:
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		if m.state == statePlaying || m.state == stateOver {
			m.viewport.SetContent(m.gameLog)
		}

	case worldGeneratedMsg:
		m.engine = msg.engine
		m.state = statePlaying
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), max(m.height-6, 10))
		}
		m.gameLog = ""
		m.appendLines(gameStyle, m.engine.Look())
		m.textInput.Placeholder = "What do you do?"
		m.textInput.Reset()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	if m.state == stateChooseLength || m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) chooseLength() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()
	choice, err := strconv.Atoi(raw)
	if err != nil {
		m.notice = fmt.Sprintf("%q is not a number.", raw)
		return m, nil
	}
	length, ok := m.content.Length(choice)
	if !ok {
		m.notice = fmt.Sprintf("There is no option %d.", choice)
		return m, nil
	}
	m.notice = ""
	m.state = stateLoading
	return m, m.generateWorld(length)
}

func (m model) handleAction() (tea.Model, tea.Cmd) {
	action := m.textInput.Value()
	if action == "" {
		return m, nil
	}
	m.textInput.Reset()
	if action == "/quit" {
		return m, tea.Quit
	}

	m.gameLog += "\n" + userStyle.Width(m.logWidth()).Render("> "+action) + "\n\n"
	turn, err := m.engine.Handle(action)
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	m.appendLines(gameStyle, turn.Lines)

	switch {
	case turn.Outcome != engine.Playing:
		m.state = stateOver
		m.appendLines(promptStyle, []string{"Game over: " + turn.Outcome.String() + ". Press Enter to leave."})
	case m.engine.Prompting():
		m.appendLines(promptStyle, []string{m.engine.Prompt()})
	default:
		m.gameLog += "\n"
		m.appendLines(gameStyle, m.engine.Look())
	}
	return m, nil
}

func (m *model) appendLines(style lipgloss.Style, lines []string) {
	if len(lines) > 0 {
		m.gameLog += style.Width(m.logWidth()).Render(strings.Join(lines, "\n")) + "\n"
	}
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateChooseLength:
		var options strings.Builder
		for _, l := range m.content.Lengths {
			fmt.Fprintf(&options, "  %d. %s (%d minutes)\n", l.Choice, l.Label, l.Minutes)
		}
		s = fmt.Sprintf(
			"Welcome to the Print Shop!\n\nChoose the length of the game:\n%s\n%s\n%s",
			options.String(),
			m.textInput.View(),
			helpStyle.Render(m.notice),
		)

	case stateLoading:
		s = "\n  Setting up the print shop... please wait.\n"

	case statePlaying, stateOver:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Type 'help' for commands, /quit to leave.")

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	if m.engine == nil {
		return ""
	}
	e := m.engine

	location := titleStyle.Render("LOCATION") + "\n" + e.CurrentRoom().Name + "\n\n"

	clock := titleStyle.Render("CLOCK") + "\n" +
		fmt.Sprintf("%d / %d min\nDefeated: %d\n\n", e.Time(), e.Limit(), e.Defeated())

	results := titleStyle.Render("RESULTS") + "\n"
	for _, size := range printer.Sizes {
		results += fmt.Sprintf("%s: %d\n", size, e.Results()[size])
	}
	results += "\n"

	inventory := titleStyle.Render("BACKPACK") + "\n"
	if len(e.Backpack()) == 0 {
		inventory += "(empty)"
	} else {
		for _, item := range e.Backpack() {
			inventory += "- " + item + "\n"
		}
	}

	content := location + clock + results + inventory

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) generateWorld(length models.LengthSpec) tea.Cmd {
	return func() tea.Msg {
		eng, err := m.newGame(context.Background(), length)
		if err != nil {
			return errMsg{err}
		}
		return worldGeneratedMsg{eng}
	}
}

func Run(content *models.Content, newGame NewGameFunc) error {
	p := tea.NewProgram(NewModel(content, newGame), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
