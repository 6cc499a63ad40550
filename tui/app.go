package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/caprice1026-disc/AI-TRPG/internal"
)

type mode int

const (
	modeInput mode = iota
	modeChoices
)

// turnDoneMsg reports a finished engine call from a tea.Cmd.
type turnDoneMsg struct {
	err error
}

// Model is the interactive play screen: a transcript, the current
// projection, the dice history, and either a free-text prompt or a
// choice selector depending on what the game master offered.
type Model struct {
	turns *internal.TurnController
	dice  *internal.DiceService
	sink  *captureSink

	input      textinput.Model
	transcript []internal.LogEntry
	choices    []internal.Choice
	cursor     int
	state      *internal.ViewModel
	diceLog    []internal.DiceLogEntry

	mode     mode
	busy     bool
	errLine  string
	width    int
	height   int
	quitting bool
}

// NewModel builds the play screen around a wired controller stack. The
// sink must be the captureSink the controllers were constructed with.
func NewModel(turns *internal.TurnController, dice *internal.DiceService, sink *captureSink) Model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.CharLimit = 500
	ti.Focus()

	return Model{
		turns:  turns,
		dice:   dice,
		sink:   sink,
		input:  ti,
		width:  100,
		height: 30,
	}
}

// NewSink creates the capture sink shared between the engine and the
// play screen.
func NewSink() internal.RenderSink {
	return &captureSink{}
}

// SinkOf downcasts a RenderSink created by NewSink.
func SinkOf(sink internal.RenderSink) *captureSink {
	return sink.(*captureSink)
}

// Init resumes the persisted session, if any.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.runEngine(func() error {
		_, err := m.turns.Resume()
		return err
	}))
}

// runEngine executes an engine call off the update loop and reports
// completion. Sink output is drained when the message arrives.
func (m Model) runEngine(call func() error) tea.Cmd {
	return func() tea.Msg {
		return turnDoneMsg{err: call()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case turnDoneMsg:
		m.busy = false
		m.errLine = ""
		if msg.err != nil {
			m.errLine = msg.err.Error()
		}
		m.applyUpdate(m.sink.drain())
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeChoices:
			return m.updateChoices(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyUpdate(u update) {
	m.transcript = append(m.transcript, u.logs...)
	if u.choicesSet {
		m.choices = u.choices
		m.cursor = 0
		if len(m.choices) > 0 {
			m.mode = modeChoices
			m.input.Blur()
		} else {
			m.mode = modeInput
			m.input.Focus()
		}
	}
	if u.state != nil {
		m.state = u.state
	}
	if u.diceSet {
		m.diceLog = u.dice
	}
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		if len(m.choices) > 0 {
			m.mode = modeChoices
			m.input.Blur()
		}
		return m, nil

	case "enter":
		if m.busy {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.SetValue("") // clear before the response arrives
		m.busy = true

		if text == "/roll" || strings.HasPrefix(text, "/roll ") {
			expr := strings.TrimSpace(strings.TrimPrefix(text, "/roll"))
			return m, m.runEngine(func() error { return m.dice.Roll(expr) })
		}
		if text == "/quit" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.runEngine(func() error { return m.turns.SubmitFreeText(text) })
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateChoices(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "tab":
		m.mode = modeInput
		m.input.Focus()
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.busy || len(m.choices) == 0 {
			return m, nil
		}
		m.busy = true
		choiceID := m.choices[m.cursor].ID
		return m, m.runEngine(func() error { return m.turns.SubmitChoice(choiceID) })
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := titleStyle.Render("AI-TRPG")
	if m.state != nil {
		title += " " + stateTitleStyle.Render(m.state.Name) +
			" " + sessionTagStyle.Render("("+m.state.SessionID+")")
	}
	b.WriteString(title + "\n\n")

	b.WriteString(m.viewTranscript())
	b.WriteString("\n")

	if panel := m.viewStatePanel(); panel != "" {
		b.WriteString(panel + "\n")
	}

	if m.mode == modeChoices {
		b.WriteString(m.viewChoices())
	} else {
		b.WriteString(m.input.View() + "\n")
	}

	b.WriteString(m.viewStatusBar())
	return b.String()
}

func (m Model) viewTranscript() string {
	// Fixed budget for the transcript; oldest lines scroll away.
	budget := m.height - 14
	if budget < 4 {
		budget = 4
	}

	var lines []string
	for _, entry := range m.transcript {
		lines = append(lines, fmt.Sprintf("%s %s", transcriptTag(entry.Role), entry.Text))
		for _, extra := range entry.Lines {
			lines = append(lines, nestedLineStyle.Render("- "+extra))
		}
	}
	if len(lines) > budget {
		lines = lines[len(lines)-budget:]
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) viewStatePanel() string {
	if m.state == nil && len(m.diceLog) == 0 {
		return ""
	}

	var parts []string
	if m.state != nil {
		for _, c := range m.state.Characters {
			line := fmt.Sprintf("%s — HP %d/%d | AC %s", c.Name, c.HP, c.MaxHP, c.AC)
			if len(c.Conditions) > 0 {
				line += " " + conditionStyle.Render("["+strings.Join(c.Conditions, ", ")+"]")
			}
			parts = append(parts, line)
		}
		if len(m.state.WorldFacts) > 0 {
			var facts []string
			for k, v := range m.state.WorldFacts {
				facts = append(facts, k+": "+v)
			}
			parts = append(parts, factStyle.Render("World: "+strings.Join(facts, " | ")))
		}
	}
	if n := len(m.diceLog); n > 0 {
		// Show the tail of the authoritative history.
		start := n - 3
		if start < 0 {
			start = 0
		}
		for _, e := range m.diceLog[start:] {
			if e.Error != "" {
				parts = append(parts, diceStyle.Render(e.Expression+": error: "+e.Error))
			} else {
				parts = append(parts, diceStyle.Render(e.Expression+": "+e.ResultText()))
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return statePanelStyle.Render(strings.Join(parts, "\n"))
}

func (m Model) viewChoices() string {
	var b strings.Builder
	for i, choice := range m.choices {
		style := choiceStyle
		if i == m.cursor {
			style = selectedChoiceStyle
		}
		b.WriteString(style.Render(choice.Label()) + "\n")
	}
	return b.String()
}

func (m Model) viewStatusBar() string {
	if m.errLine != "" {
		return errorStyle.Render(m.errLine)
	}
	if m.busy {
		return statusBarStyle.Render("waiting for the game master...")
	}
	if m.mode == modeChoices {
		return helpStyle.Render("↑/↓ select · enter choose · esc free text · q quit")
	}
	return helpStyle.Render("enter send · /roll <expr> dice · tab choices · ctrl+c quit")
}

func transcriptTag(role string) string {
	tag := "[" + role + "]"
	switch role {
	case internal.RolePlayer:
		return playerTag.Render(tag)
	case internal.RoleGM:
		return gmTag.Render(tag)
	default:
		return systemTag.Render(tag)
	}
}

// Run starts the interactive play screen.
func Run(turns *internal.TurnController, dice *internal.DiceService, sink internal.RenderSink) error {
	model := NewModel(turns, dice, SinkOf(sink))
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
