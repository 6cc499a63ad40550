package internal

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TurnController drives the turn protocol: it owns submission of player
// input, applies the game master's responses, and keeps the projection
// and dice history in sync. One controller serves one user.
type TurnController struct {
	client   *Client
	identity *IdentityStore
	sink     RenderSink
	dice     *DiceService

	// busy rejects a second submission while one is outstanding,
	// closing the out-of-order response race between two in-flight
	// turns.
	busy bool
}

// NewTurnController wires a controller to its collaborators
func NewTurnController(client *Client, identity *IdentityStore, sink RenderSink, dice *DiceService) *TurnController {
	return &TurnController{
		client:   client,
		identity: identity,
		sink:     sink,
		dice:     dice,
	}
}

// SubmitFreeText sends the player's narrative input as a turn. The text
// is echoed to the transcript before the request goes out.
func (t *TurnController) SubmitFreeText(text string) error {
	sessionID := t.identity.ActiveSessionID()
	if sessionID == "" {
		return ErrNoActiveSession("submit turn")
	}
	if t.busy {
		return ErrBusy("submit turn")
	}
	t.busy = true
	defer func() { t.busy = false }()

	t.sink.ShowLog(LogEntry{Role: RolePlayer, Text: text})

	resp, err := t.client.SubmitTurn(TurnRequest{SessionID: sessionID, PlayerInput: text})
	if err != nil {
		return err
	}
	t.applyTurn(resp)
	return nil
}

// SubmitChoice selects one of the offered choices as the turn. Nothing
// is echoed locally; a choice has no freeform text of its own.
func (t *TurnController) SubmitChoice(choiceID string) error {
	sessionID := t.identity.ActiveSessionID()
	if sessionID == "" {
		return ErrNoActiveSession("submit choice")
	}
	if t.busy {
		return ErrBusy("submit choice")
	}
	t.busy = true
	defer func() { t.busy = false }()

	resp, err := t.client.SubmitTurn(TurnRequest{SessionID: sessionID, SelectedChoiceID: choiceID})
	if err != nil {
		return err
	}
	t.applyTurn(resp)
	return nil
}

// applyTurn is the shared response handler for both submission paths.
func (t *TurnController) applyTurn(resp *TurnResponse) {
	if resp.Narration != "" {
		t.sink.ShowLog(LogEntry{Role: RoleGM, Text: resp.Narration, Lines: resp.Log})
	}

	// Always replace the offered choices. An empty response set clears
	// the prior one; stale choices must never survive a turn.
	choices := resp.Choices
	if choices == nil {
		choices = []Choice{}
	}
	t.sink.ShowChoices(choices)

	if resp.State != nil {
		t.sink.ShowState(Project(resp.State))
	}

	// A turn may have rolled dice server-side.
	t.dice.RefreshHistory()
}

// CreateSession creates a session on the server and adopts it.
func (t *TurnController) CreateSession(name string, safety SafetyConfig) (*Session, error) {
	session, err := t.client.CreateSession(name, safety)
	if err != nil {
		return nil, err
	}
	if err := t.adopt(session); err != nil {
		return nil, err
	}
	t.sink.ShowLog(LogEntry{Role: RoleSystem, Text: fmt.Sprintf("Created session %s", session.ID)})
	return session, nil
}

// LoadSession fetches a session by id and adopts it. A server-reported
// error is surfaced as a system line and leaves the current identity
// and projection untouched.
func (t *TurnController) LoadSession(id string) (*Session, error) {
	session, err := t.client.GetSession(id)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			t.sink.ShowLog(LogEntry{Role: RoleSystem, Text: apiErr.Message})
		}
		return nil, err
	}
	if err := t.adopt(session); err != nil {
		return nil, err
	}
	t.sink.ShowLog(LogEntry{Role: RoleSystem, Text: fmt.Sprintf("Loaded session %s", session.ID)})
	return session, nil
}

// Resume restores the persisted session, if any, at startup. Returns
// the loaded session, or nil when there is nothing to resume.
func (t *TurnController) Resume() (*Session, error) {
	id := t.identity.ActiveSessionID()
	if id == "" {
		return nil, nil
	}
	return t.LoadSession(id)
}

// SaveCharacter creates or updates a character in the active session,
// then reloads the whole session so the projection reflects any
// server-computed derived stats. On an error payload the raw serialized
// content is surfaced, matching the save form's behavior.
func (t *TurnController) SaveCharacter(req CharacterRequest) error {
	sessionID := t.identity.ActiveSessionID()
	if sessionID == "" {
		return ErrNoActiveSession("save character")
	}
	req.SessionID = sessionID

	resp, err := t.client.CreateCharacter(req)
	if err != nil {
		return err
	}
	if resp.ID == "" {
		raw, _ := json.Marshal(resp)
		t.sink.ShowLog(LogEntry{Role: RoleSystem, Text: fmt.Sprintf("Error: %s", raw)})
		return &APIError{Op: "create character", Message: resp.Error}
	}

	t.identity.SetActiveCharacter(resp.ID)
	t.sink.ShowLog(LogEntry{Role: RoleSystem, Text: fmt.Sprintf("Character %s saved.", resp.Name)})

	_, err = t.LoadSession(sessionID)
	return err
}

// adopt makes the session active, persists its id, and renders it.
func (t *TurnController) adopt(session *Session) error {
	if err := t.identity.SetActiveSession(session.ID); err != nil {
		return err
	}
	t.sink.ShowState(ProjectSession(session))
	if session.DiceLogs != nil {
		t.sink.ShowDiceHistory(session.DiceLogs)
	}
	return nil
}
