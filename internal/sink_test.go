package internal

// recordingSink captures every sink call for assertions.
type recordingSink struct {
	logs        []LogEntry
	choiceCalls [][]Choice
	states      []ViewModel
	diceCalls   [][]DiceLogEntry
}

func (s *recordingSink) ShowLog(entry LogEntry)                 { s.logs = append(s.logs, entry) }
func (s *recordingSink) ShowChoices(choices []Choice)           { s.choiceCalls = append(s.choiceCalls, choices) }
func (s *recordingSink) ShowState(vm ViewModel)                 { s.states = append(s.states, vm) }
func (s *recordingSink) ShowDiceHistory(entries []DiceLogEntry) { s.diceCalls = append(s.diceCalls, entries) }

func (s *recordingSink) lastChoices() []Choice {
	if len(s.choiceCalls) == 0 {
		return nil
	}
	return s.choiceCalls[len(s.choiceCalls)-1]
}

func (s *recordingSink) lastLog() LogEntry {
	if len(s.logs) == 0 {
		return LogEntry{}
	}
	return s.logs[len(s.logs)-1]
}
