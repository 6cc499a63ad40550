package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/caprice1026-disc/AI-TRPG/internal"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Styles for console output
	systemRoleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("243"))

	playerRoleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	gmRoleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("135"))

	stateHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	sessionIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	choiceIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	factStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("108"))

	diceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180"))
)

// consoleSink renders engine output as styled lines on a writer. It is
// the RenderSink used by every non-interactive command.
type consoleSink struct {
	out io.Writer
}

func newConsoleSink(out io.Writer) *consoleSink {
	return &consoleSink{out: out}
}

func (s *consoleSink) ShowLog(entry internal.LogEntry) {
	if entry.Text == "" {
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", roleTag(entry.Role), entry.Text)
	for _, line := range entry.Lines {
		fmt.Fprintf(s.out, "    - %s\n", line)
	}
}

func (s *consoleSink) ShowChoices(choices []internal.Choice) {
	if len(choices) == 0 {
		return
	}
	fmt.Fprintln(s.out, stateHeaderStyle.Render("Choices:"))
	for _, choice := range choices {
		fmt.Fprintf(s.out, "  %s %s\n", choiceIDStyle.Render("["+choice.ID+"]"), choice.Label())
	}
}

func (s *consoleSink) ShowState(vm internal.ViewModel) {
	fmt.Fprintf(s.out, "%s %s\n",
		stateHeaderStyle.Render(vm.Name),
		sessionIDStyle.Render("("+vm.SessionID+")"))

	for _, c := range vm.Characters {
		fmt.Fprintf(s.out, "  %s — HP %d/%d | AC %s\n", c.Name, c.HP, c.MaxHP, c.AC)
		if len(c.Conditions) > 0 {
			fmt.Fprintf(s.out, "    Conditions: %s\n", strings.Join(c.Conditions, ", "))
		}
	}

	if len(vm.WorldFacts) > 0 {
		fmt.Fprintln(s.out, factStyle.Render("World:"))
		for _, key := range sortedKeys(vm.WorldFacts) {
			fmt.Fprintf(s.out, "  %s: %s\n", key, vm.WorldFacts[key])
		}
	}
}

func (s *consoleSink) ShowDiceHistory(entries []internal.DiceLogEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(s.out, stateHeaderStyle.Render("Dice history:"))
	for _, e := range entries {
		fmt.Fprintf(s.out, "  %s\n", diceStyle.Render(formatDiceEntry(e)))
	}
}

func formatDiceEntry(e internal.DiceLogEntry) string {
	if e.Error != "" {
		return fmt.Sprintf("%s: error: %s", e.Expression, e.Error)
	}
	return fmt.Sprintf("%s: %s", e.Expression, e.ResultText())
}

func roleTag(role string) string {
	tag := "[" + role + "]"
	switch role {
	case internal.RolePlayer:
		return playerRoleStyle.Render(tag)
	case internal.RoleGM:
		return gmRoleStyle.Render(tag)
	default:
		return systemRoleStyle.Render(tag)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
