package internal

import "fmt"

// DiceService submits dice expressions for server-side evaluation and
// keeps the visible dice history fresh. It is independent of turn flow:
// rolls work with or without an active session.
type DiceService struct {
	client   *Client
	identity *IdentityStore
	sink     RenderSink
}

// NewDiceService wires a dice service to its collaborators
func NewDiceService(client *Client, identity *IdentityStore, sink RenderSink) *DiceService {
	return &DiceService{client: client, identity: identity, sink: sink}
}

// Roll evaluates an expression. The transcript line it appends is a
// best-effort immediate echo; the session's dice_logs remain the
// authoritative, ordered history and are re-pulled afterward when a
// session is active.
func (d *DiceService) Roll(expression string) error {
	if expression == "" {
		expression = "1d20"
	}

	result, err := d.client.RollDice(expression, d.identity.ActiveSessionID())
	if err != nil {
		return err
	}

	if result.Total != nil {
		d.sink.ShowLog(LogEntry{
			Role: RoleSystem,
			Text: fmt.Sprintf("Roll %s => %d (%s)", expression, *result.Total, result.Breakdown),
		})
	} else if result.Error != "" {
		d.sink.ShowLog(LogEntry{
			Role: RoleSystem,
			Text: fmt.Sprintf("Error rolling dice: %s", result.Error),
		})
	}

	d.RefreshHistory()
	return nil
}

// RefreshHistory re-pulls the active session's dice logs and pushes
// them to the sink. Without an active session it is a silent no-op.
func (d *DiceService) RefreshHistory() {
	sessionID := d.identity.ActiveSessionID()
	if sessionID == "" {
		return
	}
	session, err := d.client.GetSession(sessionID)
	if err != nil {
		LogWarn("Dice history refresh failed: %v", err)
		return
	}
	if session.DiceLogs != nil {
		d.sink.ShowDiceHistory(session.DiceLogs)
	}
}
