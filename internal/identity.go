package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const activeSessionKey = "active_session_id"

// IdentityStore owns the client's active session and character identity.
// The session id is persisted in a local SQLite key/value table so it
// survives process restarts; the character id is process-local.
type IdentityStore struct {
	db          *sql.DB
	sessionID   string
	characterID string
}

// OpenIdentityStore opens (creating if needed) the state database under
// the given state directory and restores any persisted session id.
func OpenIdentityStore(stateDir string) (*IdentityStore, error) {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	dbPath := filepath.Join(stateDir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("state database ping failed: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS client_state (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create client_state table: %w", err)
	}

	store := &IdentityStore{db: db}
	if err := store.restore(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *IdentityStore) restore() error {
	var value sql.NullString
	err := s.db.QueryRow(
		"SELECT value FROM client_state WHERE key = ?", activeSessionKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil // fresh start, no auto-resume
	}
	if err != nil {
		return fmt.Errorf("failed to restore session id: %w", err)
	}
	if value.Valid {
		s.sessionID = value.String
	}
	return nil
}

// ActiveSessionID returns the active session id, or "" if none is set.
func (s *IdentityStore) ActiveSessionID() string {
	return s.sessionID
}

// SetActiveSession stores and persists the active session id. Switching
// to a different session clears the active character: a character id is
// only meaningful within the session that produced it.
func (s *IdentityStore) SetActiveSession(id string) error {
	if id != s.sessionID {
		s.characterID = ""
	}
	s.sessionID = id

	_, err := s.db.Exec(
		"INSERT INTO client_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		activeSessionKey, id)
	if err != nil {
		return fmt.Errorf("failed to persist session id: %w", err)
	}
	LogDebug("Active session set to %s", id)
	return nil
}

// ActiveCharacterID returns the active character id, or "" if none.
func (s *IdentityStore) ActiveCharacterID() string {
	return s.characterID
}

// SetActiveCharacter records the active character id for this process.
func (s *IdentityStore) SetActiveCharacter(id string) {
	s.characterID = id
}

// Close releases the underlying database handle.
func (s *IdentityStore) Close() error {
	return s.db.Close()
}
