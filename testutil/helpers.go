package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes a raw config.yaml into a state directory.
func WriteConfig(t *testing.T, stateDir, content string) {
	t.Helper()
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		t.Fatalf("Failed to create state dir: %v", err)
	}
	path := filepath.Join(stateDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}
}
