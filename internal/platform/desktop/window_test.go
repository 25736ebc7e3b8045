package desktop

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/superhero-arcade/internal/config"
	"github.com/vovakirdan/superhero-arcade/internal/core"
	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
)

// fakeKeys is a keyboard with a fixed set of keys held down.
type fakeKeys map[ebiten.Key]bool

func (k fakeKeys) pressed(key ebiten.Key) bool { return k[key] }

func TestInputFrame(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want []core.Action
	}{
		{"nothing", fakeKeys{}, nil},
		{"arrow left", fakeKeys{ebiten.KeyArrowLeft: true}, []core.Action{core.ActionLeft}},
		{"wasd right and jump", fakeKeys{ebiten.KeyD: true, ebiten.KeyW: true}, []core.Action{core.ActionRight, core.ActionJump}},
		{"ctrl shoots", fakeKeys{ebiten.KeyControlLeft: true}, []core.Action{core.ActionShoot}},
		{"escape pauses", fakeKeys{ebiten.KeyEscape: true}, []core.Action{core.ActionPause}},
		{"both shoot keys", fakeKeys{ebiten.KeyF: true, ebiten.KeyX: true}, []core.Action{core.ActionShoot}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := inputFrame(tt.keys.pressed)
			if len(f.Actions) != len(tt.want) {
				t.Fatalf("got actions %v, expected %v", f.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !f.Has(a) {
					t.Errorf("expected %v to be held", a)
				}
			}
		})
	}
}

func newTestWindow(t *testing.T) (*Window, fakeKeys) {
	t.Helper()
	g := superhero.NewWithConfig(config.DefaultSuperheroConfig())
	w := NewWindow(g, Options{Seed: 3})
	keys := fakeKeys{}
	w.keys = keys.pressed
	return w, keys
}

func TestWindowLayoutMatchesArena(t *testing.T) {
	w, _ := newTestWindow(t)
	if gw, gh := w.Layout(1920, 1080); gw != 800 || gh != 600 {
		t.Errorf("Layout() = %dx%d, expected 800x600", gw, gh)
	}
}

func TestWindowStepsGame(t *testing.T) {
	w, _ := newTestWindow(t)
	for i := 0; i < 5; i++ {
		if err := w.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}
	if w.state.Tick != 5 {
		t.Errorf("Tick = %d, expected 5", w.state.Tick)
	}
}

func TestWindowQuitOnRelease(t *testing.T) {
	w, keys := newTestWindow(t)

	keys[ebiten.KeyQ] = true
	if err := w.Update(); err != nil {
		t.Fatalf("pressing quit should not end yet, got %v", err)
	}

	delete(keys, ebiten.KeyQ)
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("releasing quit = %v, expected ebiten.Termination", err)
	}
}
