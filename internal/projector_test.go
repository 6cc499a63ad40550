package internal

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestProjectEmptySession(t *testing.T) {
	vm := Project(&SessionState{SessionID: "S1"})

	if vm.SessionID != "S1" {
		t.Errorf("SessionID = %q, want %q", vm.SessionID, "S1")
	}
	if vm.Name != "Session" {
		t.Errorf("Name = %q, want default %q", vm.Name, "Session")
	}
	if len(vm.Characters) != 0 {
		t.Errorf("Characters = %v, want empty", vm.Characters)
	}
	if len(vm.WorldFacts) != 0 {
		t.Errorf("WorldFacts = %v, want empty", vm.WorldFacts)
	}
}

func TestProjectNilState(t *testing.T) {
	vm := Project(nil)
	if vm.Characters == nil || vm.WorldFacts == nil {
		t.Error("Project(nil) must return initialized collections")
	}
}

func TestProjectCharacterDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   CharacterState
		want CharacterView
	}{
		{
			name: "fully populated",
			in: CharacterState{
				ID: "c1", Name: "Lyra", HP: intPtr(12), MaxHP: intPtr(18),
				AC: intPtr(15), Conditions: []string{"poisoned"},
			},
			want: CharacterView{
				ID: "c1", Name: "Lyra", HP: 12, MaxHP: 18,
				AC: "15", Conditions: []string{"poisoned"},
			},
		},
		{
			name: "missing derived stats",
			in:   CharacterState{ID: "c2", Name: "Brom", HP: intPtr(7)},
			want: CharacterView{ID: "c2", Name: "Brom", HP: 7, MaxHP: 7, AC: "-", Conditions: []string{}},
		},
		{
			name: "missing name",
			in:   CharacterState{ID: "c3"},
			want: CharacterView{ID: "c3", Name: "PC", HP: 0, MaxHP: 0, AC: "-", Conditions: []string{}},
		},
		{
			name: "ac zero displays as absent",
			in:   CharacterState{ID: "c4", Name: "Nim", AC: intPtr(0)},
			want: CharacterView{ID: "c4", Name: "Nim", AC: "-", Conditions: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := Project(&SessionState{SessionID: "S", Characters: []CharacterState{tt.in}})
			if len(vm.Characters) != 1 {
				t.Fatalf("got %d characters, want 1", len(vm.Characters))
			}
			got := vm.Characters[0]
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("projectCharacter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProjectWorldFactsCopied(t *testing.T) {
	state := &SessionState{
		SessionID:  "S1",
		WorldFacts: map[string]string{"weather": "storm"},
	}
	vm := Project(state)

	if vm.WorldFacts["weather"] != "storm" {
		t.Errorf("WorldFacts = %v, want weather=storm", vm.WorldFacts)
	}

	// The projection owns its map; mutating it must not touch the input.
	vm.WorldFacts["weather"] = "clear"
	if state.WorldFacts["weather"] != "storm" {
		t.Error("Project() must copy world facts, not alias them")
	}
}

func TestProjectDeterministic(t *testing.T) {
	state := &SessionState{
		SessionID:  "S1",
		Name:       "Caves",
		Characters: []CharacterState{{ID: "c1", Name: "Lyra", HP: intPtr(9)}},
		WorldFacts: map[string]string{"torch": "lit"},
	}

	first := Project(state)
	second := Project(state)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Project() not deterministic: %+v vs %+v", first, second)
	}
}

func TestProjectSession(t *testing.T) {
	session := &Session{
		ID:   "S1",
		Name: "Caves",
		Characters: []Character{
			{
				ID:           "c1",
				Name:         "Lyra",
				Resources:    &Resources{HP: 9, MaxHP: 14, Conditions: []string{"dazed"}},
				DerivedStats: &DerivedStats{MaxHP: intPtr(16), AC: intPtr(13)},
			},
			{
				ID:        "c2",
				Name:      "Brom",
				Resources: &Resources{HP: 11, MaxHP: 11},
			},
			{
				ID:   "c3",
				Name: "Nim",
			},
		},
		SaveBlob: &SaveBlob{WorldFacts: map[string]string{"door": "open"}},
	}

	vm := ProjectSession(session)

	if vm.SessionID != "S1" || vm.Name != "Caves" {
		t.Errorf("header = %q/%q, want S1/Caves", vm.SessionID, vm.Name)
	}
	if len(vm.Characters) != 3 {
		t.Fatalf("got %d characters, want 3", len(vm.Characters))
	}

	// Derived max hp wins over the resource pool.
	if vm.Characters[0].MaxHP != 16 {
		t.Errorf("derived MaxHP = %d, want 16", vm.Characters[0].MaxHP)
	}
	if vm.Characters[0].AC != "13" {
		t.Errorf("AC = %q, want %q", vm.Characters[0].AC, "13")
	}
	// No derived stats: fall back to resources.max_hp.
	if vm.Characters[1].MaxHP != 11 {
		t.Errorf("resource MaxHP = %d, want 11", vm.Characters[1].MaxHP)
	}
	if vm.Characters[1].AC != "-" {
		t.Errorf("AC = %q, want %q", vm.Characters[1].AC, "-")
	}
	// No resources at all: everything defaults.
	if vm.Characters[2].HP != 0 || vm.Characters[2].MaxHP != 0 || vm.Characters[2].AC != "-" {
		t.Errorf("bare character = %+v, want zeroed defaults", vm.Characters[2])
	}

	if vm.WorldFacts["door"] != "open" {
		t.Errorf("WorldFacts = %v, want door=open", vm.WorldFacts)
	}
}

func TestProjectSessionMissingSaveBlob(t *testing.T) {
	vm := ProjectSession(&Session{ID: "S1"})
	if vm.WorldFacts == nil || len(vm.WorldFacts) != 0 {
		t.Errorf("WorldFacts = %v, want empty map", vm.WorldFacts)
	}
}
