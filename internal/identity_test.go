package internal

import (
	"testing"
)

func openTestStore(t *testing.T, stateDir string) *IdentityStore {
	t.Helper()
	store, err := OpenIdentityStore(stateDir)
	if err != nil {
		t.Fatalf("OpenIdentityStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestIdentityFreshStart(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	if got := store.ActiveSessionID(); got != "" {
		t.Errorf("ActiveSessionID() = %q, want empty", got)
	}
	if got := store.ActiveCharacterID(); got != "" {
		t.Errorf("ActiveCharacterID() = %q, want empty", got)
	}
}

func TestIdentityPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	if err := store.SetActiveSession("S1"); err != nil {
		t.Fatalf("SetActiveSession() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Simulated process restart.
	reopened := openTestStore(t, dir)
	if got := reopened.ActiveSessionID(); got != "S1" {
		t.Errorf("ActiveSessionID() after reopen = %q, want %q", got, "S1")
	}
}

func TestIdentityReplaceSession(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	if err := store.SetActiveSession("S1"); err != nil {
		t.Fatalf("SetActiveSession(S1) error = %v", err)
	}
	if err := store.SetActiveSession("S2"); err != nil {
		t.Fatalf("SetActiveSession(S2) error = %v", err)
	}
	if got := store.ActiveSessionID(); got != "S2" {
		t.Errorf("ActiveSessionID() = %q, want %q", got, "S2")
	}
}

func TestIdentitySessionSwitchClearsCharacter(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	if err := store.SetActiveSession("S1"); err != nil {
		t.Fatalf("SetActiveSession(S1) error = %v", err)
	}
	store.SetActiveCharacter("c1")

	// Re-adopting the same session keeps the character.
	if err := store.SetActiveSession("S1"); err != nil {
		t.Fatalf("SetActiveSession(S1) error = %v", err)
	}
	if got := store.ActiveCharacterID(); got != "c1" {
		t.Errorf("ActiveCharacterID() = %q, want %q", got, "c1")
	}

	// Switching sessions discards it.
	if err := store.SetActiveSession("S2"); err != nil {
		t.Fatalf("SetActiveSession(S2) error = %v", err)
	}
	if got := store.ActiveCharacterID(); got != "" {
		t.Errorf("ActiveCharacterID() after switch = %q, want empty", got)
	}
}

func TestIdentityCharacterNotPersisted(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	if err := store.SetActiveSession("S1"); err != nil {
		t.Fatalf("SetActiveSession() error = %v", err)
	}
	store.SetActiveCharacter("c1")
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened := openTestStore(t, dir)
	if got := reopened.ActiveCharacterID(); got != "" {
		t.Errorf("ActiveCharacterID() after reopen = %q, want empty", got)
	}
}
