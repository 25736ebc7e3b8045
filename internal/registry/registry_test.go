package registry

import (
	"testing"

	"github.com/vovakirdan/superhero-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("created game ID %q", g.ID())
	}

	games := List()
	var found bool
	for i, info := range games {
		if info.ID == "zz-stub" {
			found = info.Title == "Stub zz-stub"
		}
		if i > 0 && games[i-1].ID > info.ID {
			t.Errorf("List() not sorted by ID: %v", games)
		}
	}
	if !found {
		t.Error("List() should include the stub with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	for _, info := range List() {
		if info.ID == "no-such-game" {
			t.Error("unknown game should not be listed")
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	for name, id := range map[string]string{"duplicate": "zz-dup", "empty": ""} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(id, func() Game { return &stubGame{id: id} })
		})
	}
}
