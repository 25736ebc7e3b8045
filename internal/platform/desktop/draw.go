package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/superhero-arcade/internal/core"
	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
)

// Debug font metrics used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

var (
	backgroundColor = color.RGBA{R: 8, G: 8, B: 24, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	starColor       = core.ColorWhite.RGBA()
	barBackColor    = core.ColorRed.RGBA()
	barFillColor    = core.ColorGreen.RGBA()
	outlineColor    = core.ColorWhite.RGBA()
)

// pickupLabels are ASCII stand-ins; the debug font has no symbols.
var pickupLabels = map[superhero.Visual]string{
	superhero.VisualHealth:        "+",
	superhero.VisualWeaponUpgrade: "W",
	superhero.VisualExtraLife:     "L",
	superhero.VisualScoreBoost:    "$",
}

// drawFrame draws one frame in world coordinates; the window is sized to the arena.
func drawFrame(screen *ebiten.Image, f superhero.Frame) {
	screen.Fill(backgroundColor)

	for _, s := range f.Stars {
		vector.FillRect(screen, float32(s.X), float32(s.Y), 2, 2, starColor, false)
	}

	for _, sp := range f.Sprites {
		drawSprite(screen, sp)
	}

	for _, b := range f.HealthBars {
		x, y, w := float32(b.X), float32(b.Y-10), float32(b.W)
		vector.FillRect(screen, x, y, w, 5, barBackColor, false)
		vector.FillRect(screen, x, y, w*float32(b.Fraction()), 5, barFillColor, false)
	}

	drawHUD(screen, f)
}

func drawSprite(screen *ebiten.Image, sp superhero.Sprite) {
	r := sp.Rect
	c := sp.Visual.Color().RGBA()

	switch sp.Visual {
	case superhero.VisualExplosion:
		cx, cy := r.Center()
		vector.FillCircle(screen, float32(cx), float32(cy), float32(r.W/2), c, true)
	case superhero.VisualHealth, superhero.VisualWeaponUpgrade, superhero.VisualExtraLife, superhero.VisualScoreBoost:
		cx, cy := r.Center()
		vector.FillCircle(screen, float32(cx), float32(cy), float32(r.W/2), c, true)
		ebitenutil.DebugPrintAt(screen, pickupLabels[sp.Visual], int(cx)-glyphW/2, int(cy)-glyphH/2)
	case superhero.VisualPlayer, superhero.VisualBoss:
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, outlineColor, false)
	default:
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}
}

func drawHUD(screen *ebiten.Image, f superhero.Frame) {
	h := f.HUD
	w := int(f.Arena.W)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Health: %d  Lives: %d", h.Score, h.Health, h.Lives), 10, 10)

	right := fmt.Sprintf("Level: %d  Weapon: %d", h.Level, h.WeaponTier)
	ebitenutil.DebugPrintAt(screen, right, w-10-len(right)*glyphW, 10)

	if h.BossPresent && !h.GameOver {
		printCentered(screen, "BOSS BATTLE!", w, 40)
	}

	switch {
	case h.GameOver:
		title := "GAME OVER"
		if h.Outcome == superhero.OutcomeWin {
			title = "VICTORY"
		}
		drawMessage(screen, f.Arena, title, fmt.Sprintf("Score: %d  |  Press R to restart", h.Score))
	case h.Paused:
		drawMessage(screen, f.Arena, "PAUSED", "Press P to resume")
	}
}

// drawMessage dims the playfield and prints two centered lines.
func drawMessage(screen *ebiten.Image, a superhero.Arena, title, subtitle string) {
	vector.FillRect(screen, 0, 0, float32(a.W), float32(a.H), overlayColor, false)
	mid := int(a.H / 2)
	printCentered(screen, title, int(a.W), mid-glyphH)
	printCentered(screen, subtitle, int(a.W), mid+glyphH/2)
}

func printCentered(screen *ebiten.Image, text string, width, y int) {
	ebitenutil.DebugPrintAt(screen, text, (width-len(text)*glyphW)/2, y)
}
