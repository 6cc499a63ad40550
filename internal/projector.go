package internal

import "strconv"

// ViewModel is the renderable projection of session state. Every field
// is fully defaulted; a sink can display it without nil checks.
type ViewModel struct {
	SessionID  string
	Name       string
	Characters []CharacterView
	WorldFacts map[string]string
}

// CharacterView is one character, ready for display.
type CharacterView struct {
	ID         string
	Name       string
	HP         int
	MaxHP      int
	AC         string
	Conditions []string
}

// Project normalizes a state fragment into a ViewModel. It is pure and
// total: absent optional fields degrade to defaults, never to a panic.
//
// Defaulting rules:
//   - name: "Session" when empty
//   - character name: "PC" when empty
//   - max hp: server value, else hp (so HP x/y always renders)
//   - ac: server value, else "-"
//   - conditions: empty slice when absent
//   - world facts: empty map when absent
func Project(state *SessionState) ViewModel {
	vm := ViewModel{
		Characters: []CharacterView{},
		WorldFacts: map[string]string{},
	}
	if state == nil {
		vm.Name = "Session"
		return vm
	}

	vm.SessionID = state.SessionID
	vm.Name = state.Name
	if vm.Name == "" {
		vm.Name = "Session"
	}

	for _, c := range state.Characters {
		vm.Characters = append(vm.Characters, projectCharacter(c))
	}
	for k, v := range state.WorldFacts {
		vm.WorldFacts[k] = v
	}
	return vm
}

// ProjectSession adapts a full session payload into the same ViewModel,
// reading resources and server-derived stats per character.
func ProjectSession(session *Session) ViewModel {
	if session == nil {
		return Project(nil)
	}
	state := &SessionState{
		SessionID: session.ID,
		Name:      session.Name,
	}
	for _, c := range session.Characters {
		state.Characters = append(state.Characters, stateFromCharacter(c))
	}
	if session.SaveBlob != nil {
		state.WorldFacts = session.SaveBlob.WorldFacts
	}
	return Project(state)
}

func projectCharacter(c CharacterState) CharacterView {
	view := CharacterView{
		ID:         c.ID,
		Name:       c.Name,
		AC:         "-",
		Conditions: []string{},
	}
	if view.Name == "" {
		view.Name = "PC"
	}
	if c.HP != nil {
		view.HP = *c.HP
	}
	// Max HP falls back to current HP so the readout never shows x/0.
	view.MaxHP = view.HP
	if c.MaxHP != nil {
		view.MaxHP = *c.MaxHP
	}
	if c.AC != nil {
		view.AC = formatInt(*c.AC)
	}
	view.Conditions = append(view.Conditions, c.Conditions...)
	return view
}

// stateFromCharacter flattens a session character into the state-fragment
// shape. Derived stats win over the resource pool when both are present.
func stateFromCharacter(c Character) CharacterState {
	state := CharacterState{
		ID:   c.ID,
		Name: c.Name,
	}
	if c.Resources != nil {
		hp := c.Resources.HP
		state.HP = &hp
		if c.Resources.MaxHP > 0 {
			maxHP := c.Resources.MaxHP
			state.MaxHP = &maxHP
		}
		state.Conditions = c.Resources.Conditions
	}
	if c.DerivedStats != nil {
		if c.DerivedStats.MaxHP != nil {
			state.MaxHP = c.DerivedStats.MaxHP
		}
		state.AC = c.DerivedStats.AC
	}
	return state
}

// formatInt renders an AC value. Zero displays as "-" to match the
// absent case.
func formatInt(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}
