package tui

import (
	"sync"

	"github.com/caprice1026-disc/AI-TRPG/internal"
)

// captureSink buffers engine output produced inside tea.Cmd goroutines.
// The update loop drains it after each command message, so all model
// mutation stays on the bubbletea goroutine.
type captureSink struct {
	mu sync.Mutex

	logs    []internal.LogEntry
	choices []internal.Choice
	state   *internal.ViewModel
	dice    []internal.DiceLogEntry

	choicesSet bool
	diceSet    bool
}

func (s *captureSink) ShowLog(entry internal.LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
}

func (s *captureSink) ShowChoices(choices []internal.Choice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.choices = choices
	s.choicesSet = true
}

func (s *captureSink) ShowState(vm internal.ViewModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &vm
}

func (s *captureSink) ShowDiceHistory(entries []internal.DiceLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dice = entries
	s.diceSet = true
}

// update is one drained batch of sink output.
type update struct {
	logs    []internal.LogEntry
	choices []internal.Choice
	state   *internal.ViewModel
	dice    []internal.DiceLogEntry

	choicesSet bool
	diceSet    bool
}

// drain collects and resets everything buffered so far.
func (s *captureSink) drain() update {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := update{
		logs:       s.logs,
		choices:    s.choices,
		state:      s.state,
		dice:       s.dice,
		choicesSet: s.choicesSet,
		diceSet:    s.diceSet,
	}
	s.logs = nil
	s.choices = nil
	s.state = nil
	s.dice = nil
	s.choicesSet = false
	s.diceSet = false
	return u
}
