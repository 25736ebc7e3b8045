package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superhero-arcade/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Shoot      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Copy       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Shoot, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Shoot},
		{k.Pause, k.Restart, k.Quit},
		{k.Copy, k.Screenshot, k.Help},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("f", "x", "ctrl+@"),
			key.WithHelp("f/x", "shoot"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy frame"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ActionFor translates a key message to a game action.
// Returns core.ActionNone for keys that are not game controls.
func (k GameKeyMap) ActionFor(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// KeyLatch turns terminal key presses into held buttons.
// Terminals only report presses (and auto-repeats), never releases, so a
// press holds its action for a number of ticks; each repeat refreshes it.
// Pause and restart are one-shot and last a single tick.
type KeyLatch struct {
	holdTicks int
	held      map[core.Action]int
}

// NewKeyLatch creates a latch that holds presses for holdTicks ticks.
func NewKeyLatch(holdTicks int) *KeyLatch {
	return &KeyLatch{
		holdTicks: max(holdTicks, 1),
		held:      make(map[core.Action]int),
	}
}

// Press registers a key press.
func (l *KeyLatch) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionPause, core.ActionRestart:
		l.held[a] = 1
	case core.ActionLeft:
		// Reversing direction releases the other side immediately
		delete(l.held, core.ActionRight)
		l.held[a] = l.holdTicks
	case core.ActionRight:
		delete(l.held, core.ActionLeft)
		l.held[a] = l.holdTicks
	default:
		l.held[a] = l.holdTicks
	}
}

// Frame returns the actions held this tick and ages the latch by one tick.
func (l *KeyLatch) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range l.held {
		f.Set(a)
		if n <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = n - 1
		}
	}
	return f
}

// Release drops every held action.
func (l *KeyLatch) Release() {
	clear(l.held)
}
