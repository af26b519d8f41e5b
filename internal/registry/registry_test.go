package registry

import (
	"testing"

	"github.com/vovakirdan/pacmaze/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false after Register")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("missing") {
		t.Fatal("Exists(missing) = true")
	}
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-z", func() Game { return stubGame{id: "stub-z"} })
	Register("stub-m", func() Game { return stubGame{id: "stub-m"} })

	var ids []string
	for _, info := range List() {
		if info.ID == "stub-m" && info.Title != "Stub stub-m" {
			t.Errorf("Title = %q, expected Stub stub-m", info.Title)
		}
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
			break
		}
	}
}

func TestLookup(t *testing.T) {
	Register("stub-info", func() Game { return stubGame{id: "stub-info"} })

	info, ok := Lookup("stub-info")
	if !ok {
		t.Fatal("Lookup(stub-info) not found")
	}
	if info.Title != "Stub stub-info" {
		t.Errorf("Title = %q, expected Stub stub-info", info.Title)
	}

	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}
