package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/caprice1026-disc/AI-TRPG/internal"
)

func TestConsoleSinkShowLog(t *testing.T) {
	var buf bytes.Buffer
	sink := newConsoleSink(&buf)

	sink.ShowLog(internal.LogEntry{
		Role:  internal.RoleGM,
		Text:  "The cave narrows.",
		Lines: []string{"perception check: 11"},
	})

	out := buf.String()
	if !strings.Contains(out, "The cave narrows.") {
		t.Errorf("output = %q, want narration text", out)
	}
	if !strings.Contains(out, "- perception check: 11") {
		t.Errorf("output = %q, want nested supplementary line", out)
	}
}

func TestConsoleSinkSkipsEmptyLog(t *testing.T) {
	var buf bytes.Buffer
	sink := newConsoleSink(&buf)

	sink.ShowLog(internal.LogEntry{Role: internal.RoleSystem})
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing for an empty entry", buf.String())
	}
}

func TestConsoleSinkShowState(t *testing.T) {
	var buf bytes.Buffer
	sink := newConsoleSink(&buf)

	sink.ShowState(internal.ViewModel{
		SessionID: "S1",
		Name:      "Caves",
		Characters: []internal.CharacterView{
			{Name: "Lyra", HP: 9, MaxHP: 14, AC: "12", Conditions: []string{"dazed"}},
			{Name: "Brom", HP: 11, MaxHP: 11, AC: "-"},
		},
		WorldFacts: map[string]string{"torch": "lit", "door": "open"},
	})

	out := buf.String()
	for _, want := range []string{
		"(S1)",
		"Lyra — HP 9/14 | AC 12",
		"Conditions: dazed",
		"Brom — HP 11/11 | AC -",
		"door: open",
		"torch: lit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleSinkShowChoices(t *testing.T) {
	var buf bytes.Buffer
	sink := newConsoleSink(&buf)

	sink.ShowChoices([]internal.Choice{
		{ID: "ch1", Text: "Fight"},
		{ID: "ch2"},
	})

	out := buf.String()
	if !strings.Contains(out, "Fight") {
		t.Errorf("output = %q, want choice text", out)
	}
	// A choice without text falls back to its id as the label.
	if !strings.Contains(out, "[ch2] ch2") {
		t.Errorf("output = %q, want id fallback label", out)
	}

	buf.Reset()
	sink.ShowChoices(nil)
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing for empty choices", buf.String())
	}
}

func TestConsoleSinkShowDiceHistory(t *testing.T) {
	var buf bytes.Buffer
	sink := newConsoleSink(&buf)

	total := 14
	sink.ShowDiceHistory([]internal.DiceLogEntry{
		{Expression: "1d20", Result: json.RawMessage(`"14"`), Total: &total},
		{Expression: "2dX", Error: "unknown die"},
	})

	out := buf.String()
	if !strings.Contains(out, `1d20: "14"`) {
		t.Errorf("output = %q, want result breakdown", out)
	}
	if !strings.Contains(out, "2dX: error: unknown die") {
		t.Errorf("output = %q, want error entry", out)
	}
}
