package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	sessionTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	playerTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	gmTag = lipgloss.NewStyle().
		Foreground(lipgloss.Color("135")).
		Bold(true)

	systemTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	nestedLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			PaddingLeft(4)

	statePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	stateTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	conditionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	factStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("108"))

	diceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180"))

	choiceStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedChoiceStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("25")).
				Foreground(lipgloss.Color("255")).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)
