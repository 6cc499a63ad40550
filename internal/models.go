package internal

import "encoding/json"

// Ability score keys recognized by the game-master service.
var AbilityScores = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// DefaultAbilityScore is assumed for any missing base stat.
const DefaultAbilityScore = 10

// Session represents a full session payload from the server
type Session struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Characters []Character    `json:"characters,omitempty"`
	DiceLogs   []DiceLogEntry `json:"dice_logs,omitempty"`
	SaveBlob   *SaveBlob      `json:"save_blob,omitempty"`
}

// SaveBlob holds server-side persisted narrative state
type SaveBlob struct {
	WorldFacts map[string]string `json:"world_facts,omitempty"`
}

// Character represents a player character within a session
type Character struct {
	ID           string         `json:"id"`
	Name         string         `json:"name,omitempty"`
	Race         string         `json:"race,omitempty"`
	Class        string         `json:"clazz,omitempty"`
	Level        int            `json:"level,omitempty"`
	BaseStats    map[string]int `json:"base_stats,omitempty"`
	Resources    *Resources     `json:"resources,omitempty"`
	DerivedStats *DerivedStats  `json:"derived_stats,omitempty"`
}

// Resources holds a character's mutable pools
type Resources struct {
	HP         int      `json:"hp"`
	MaxHP      int      `json:"max_hp,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
}

// DerivedStats holds server-computed values. Pointer fields distinguish
// "not yet computed" from zero.
type DerivedStats struct {
	MaxHP *int `json:"max_hp,omitempty"`
	AC    *int `json:"ac,omitempty"`
}

// BaseStat returns the named ability score, defaulting when absent.
func (c *Character) BaseStat(key string) int {
	if c.BaseStats != nil {
		if v, ok := c.BaseStats[key]; ok {
			return v
		}
	}
	return DefaultAbilityScore
}

// Choice is a server-offered option for the next turn. Choices are only
// valid until the next turn response supersedes them.
type Choice struct {
	ID   string `json:"id"`
	Text string `json:"text,omitempty"`
}

// Label returns the display text, falling back to the id.
func (c Choice) Label() string {
	if c.Text != "" {
		return c.Text
	}
	return c.ID
}

// DiceLogEntry is one evaluated dice expression in a session's history.
// Exactly one of Total or Error is expected to be present.
type DiceLogEntry struct {
	Expression string          `json:"expression"`
	Result     json.RawMessage `json:"result,omitempty"`
	Total      *int            `json:"total,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// ResultText renders the opaque result breakdown for display.
func (e DiceLogEntry) ResultText() string {
	if len(e.Result) == 0 {
		return ""
	}
	return string(e.Result)
}

// SessionState is the state fragment embedded in turn responses. It is
// also the shape the projector consumes.
type SessionState struct {
	SessionID  string            `json:"session_id"`
	Name       string            `json:"name,omitempty"`
	Characters []CharacterState  `json:"characters,omitempty"`
	WorldFacts map[string]string `json:"world_facts,omitempty"`
}

// CharacterState is a character as it appears in a state fragment.
// Optional numbers are pointers so absence survives decoding.
type CharacterState struct {
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	HP         *int     `json:"hp,omitempty"`
	MaxHP      *int     `json:"max_hp,omitempty"`
	AC         *int     `json:"ac,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
}

// TurnRequest carries one player turn. PlayerInput and SelectedChoiceID
// are mutually exclusive.
type TurnRequest struct {
	SessionID        string `json:"session_id"`
	PlayerInput      string `json:"player_input,omitempty"`
	SelectedChoiceID string `json:"selected_choice_id,omitempty"`
}

// TurnResponse is the game master's answer to a turn. Every field is
// optional; an empty Choices slice means free text is the only option.
type TurnResponse struct {
	Narration string        `json:"narration,omitempty"`
	Log       []string      `json:"log,omitempty"`
	Choices   []Choice      `json:"choices,omitempty"`
	State     *SessionState `json:"state,omitempty"`
}

// SafetyConfig is sent on session creation
type SafetyConfig struct {
	Violence string `json:"violence"`
}

// CreateSessionRequest is the session creation payload
type CreateSessionRequest struct {
	Name   string       `json:"name"`
	Safety SafetyConfig `json:"safety"`
}

// CharacterRequest is the character creation/save payload
type CharacterRequest struct {
	SessionID string         `json:"session_id"`
	Name      string         `json:"name"`
	Race      string         `json:"race,omitempty"`
	Class     string         `json:"clazz,omitempty"`
	Level     int            `json:"level"`
	BaseStats map[string]int `json:"base_stats"`
	Resources Resources      `json:"resources"`
}

// CharacterResponse is the server's acknowledgement of a saved
// character. A response without an id is an error payload; Error may or
// may not be populated, so callers surface the whole body.
type CharacterResponse struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Error string `json:"error,omitempty"`
}

// RollRequest asks the server to evaluate a dice expression
type RollRequest struct {
	Expression string `json:"expression"`
	SessionID  string `json:"session_id,omitempty"`
}

// RollResult is the evaluation outcome
type RollResult struct {
	Total     *int   `json:"total,omitempty"`
	Breakdown string `json:"breakdown,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewCharacterRequest builds a character payload with the service's
// conventional defaults filled in: name "Hero", level 1, all ability
// scores at 10, 10 HP.
func NewCharacterRequest(sessionID string) CharacterRequest {
	stats := make(map[string]int, len(AbilityScores))
	for _, key := range AbilityScores {
		stats[key] = DefaultAbilityScore
	}
	return CharacterRequest{
		SessionID: sessionID,
		Name:      "Hero",
		Level:     1,
		BaseStats: stats,
		Resources: Resources{HP: 10, MaxHP: 10},
	}
}
