package internal

// Transcript roles.
const (
	RoleSystem = "system"
	RolePlayer = "player"
	RoleGM     = "gm"
)

// LogEntry is one transcript line. Lines carries supplementary detail
// rendered nested under the main text.
type LogEntry struct {
	Role  string
	Text  string
	Lines []string
}

// RenderSink consumes projected state and transcript updates. The
// engine never touches a rendering surface directly; the UI layer
// implements this interface.
type RenderSink interface {
	ShowLog(entry LogEntry)
	ShowChoices(choices []Choice)
	ShowState(vm ViewModel)
	ShowDiceHistory(entries []DiceLogEntry)
}
