package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superhero-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestActionFor(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"f", runeKey('f'), core.ActionShoot},
		{"x", runeKey('x'), core.ActionShoot},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.ActionFor(tt.msg); got != tt.want {
				t.Errorf("ActionFor(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyLatchHoldsUntilExpiry(t *testing.T) {
	l := NewKeyLatch(3)
	l.Press(core.ActionShoot)

	for i := 0; i < 3; i++ {
		if f := l.Frame(); !f.Has(core.ActionShoot) {
			t.Fatalf("tick %d: shoot should still be held", i)
		}
	}
	if f := l.Frame(); f.Has(core.ActionShoot) {
		t.Error("shoot should be released after the hold expires")
	}
}

func TestKeyLatchRepeatRefreshes(t *testing.T) {
	l := NewKeyLatch(2)
	l.Press(core.ActionLeft)
	l.Frame()
	l.Press(core.ActionLeft) // auto-repeat

	for i := 0; i < 2; i++ {
		if f := l.Frame(); !f.Has(core.ActionLeft) {
			t.Fatalf("tick %d: repeat should refresh the hold", i)
		}
	}
}

func TestKeyLatchOneShotActions(t *testing.T) {
	l := NewKeyLatch(10)
	l.Press(core.ActionPause)
	l.Press(core.ActionRestart)

	f := l.Frame()
	if !f.Has(core.ActionPause) || !f.Has(core.ActionRestart) {
		t.Fatal("one-shot actions should be present for one tick")
	}
	f = l.Frame()
	if f.Has(core.ActionPause) || f.Has(core.ActionRestart) {
		t.Error("one-shot actions should last a single tick")
	}
}

func TestKeyLatchReversalReleasesOtherSide(t *testing.T) {
	l := NewKeyLatch(10)
	l.Press(core.ActionRight)
	l.Press(core.ActionLeft)

	f := l.Frame()
	if f.Has(core.ActionRight) {
		t.Error("pressing left should release right")
	}
	if !f.Has(core.ActionLeft) {
		t.Error("left should be held")
	}
}

func TestKeyLatchIgnoresQuitAndNone(t *testing.T) {
	l := NewKeyLatch(5)
	l.Press(core.ActionQuit)
	l.Press(core.ActionNone)

	if f := l.Frame(); len(f.Actions) != 0 {
		t.Errorf("expected empty frame, got %v", f.Actions)
	}
}

func TestKeyLatchRelease(t *testing.T) {
	l := NewKeyLatch(5)
	l.Press(core.ActionJump)
	l.Press(core.ActionShoot)
	l.Release()

	if f := l.Frame(); len(f.Actions) != 0 {
		t.Errorf("Release should drop everything, got %v", f.Actions)
	}
}
