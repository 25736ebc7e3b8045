package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/superhero-arcade/internal/core"
)

// keyBindings maps each game action to the window keys that hold it.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionShoot:   {ebiten.KeyF, ebiten.KeyX, ebiten.KeyControlLeft, ebiten.KeyControlRight},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ},
}

// keyState reports whether a key is down. ebiten.IsKeyPressed in production.
type keyState func(ebiten.Key) bool

// inputFrame builds the held actions for one tick from the keyboard state.
// Edge detection for jump and pause lives in the game.
func inputFrame(pressed keyState) core.InputFrame {
	f := core.NewInputFrame()
	for a, keys := range keyBindings {
		for _, k := range keys {
			if pressed(k) {
				f.Set(a)
				break
			}
		}
	}
	return f
}
