package superhero

import (
	"fmt"
	"math"

	"github.com/vovakirdan/superhero-arcade/internal/core"
)

// Visual characters for rendering
const (
	StarChar      = '·'
	BarFullChar   = '▬'
	BarEmptyChar  = '─'
	hudRows       = 1
	bossBannerRow = 1
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.Frame())
}

// RenderFrame rasterizes a frame into a terminal screen. The arena is
// scaled to fill everything below the HUD row.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= hudRows || f.Arena.W <= 0 || f.Arena.H <= 0 {
		return
	}

	v := viewport{
		sx:   float64(dst.Width()) / f.Arena.W,
		sy:   float64(dst.Height()-hudRows) / f.Arena.H,
		top:  hudRows,
		cols: dst.Width(),
		rows: dst.Height(),
	}

	for _, s := range f.Stars {
		x, y := v.point(s.X, s.Y)
		dst.SetWithColor(x, y, StarChar, core.ColorGray)
	}

	for _, sp := range f.Sprites {
		r, ok := v.rect(sp.Rect)
		if !ok {
			continue
		}
		dst.DrawRect(r, sp.Visual.Glyph(), sp.Visual.Color())
	}

	for _, b := range f.HealthBars {
		drawHealthBar(dst, v, b)
	}

	drawHUD(dst, f.HUD)

	if f.HUD.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if f.HUD.GameOver {
		title := "GAME OVER"
		if f.HUD.Outcome == OutcomeWin {
			title = "VICTORY"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", f.HUD.Score))
	}
}

// viewport maps world pixels to screen cells.
type viewport struct {
	sx, sy     float64
	top        int
	cols, rows int
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), v.top + int(y*v.sy)
}

// rect converts a world box to cells, at least one cell in each direction,
// clipped to the screen. ok is false when nothing is visible.
func (v viewport) rect(r core.RectF) (core.Rect, bool) {
	x0 := int(math.Floor(r.X * v.sx))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y0 := v.top + int(math.Floor(r.Y*v.sy))
	y1 := v.top + int(math.Ceil(r.Bottom()*v.sy))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0 = max(x0, 0)
	y0 = max(y0, v.top)
	x1 = min(x1, v.cols)
	y1 = min(y1, v.rows)
	if x0 >= x1 || y0 >= y1 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

// drawHealthBar draws the bar on the row above the enemy.
func drawHealthBar(dst *core.Screen, v viewport, b HealthBar) {
	r, ok := v.rect(core.NewRectF(b.X, b.Y, b.W, 1))
	if !ok {
		return
	}
	y := r.Y - 1
	if y < v.top {
		y = r.Y
	}
	full := int(math.Round(b.Fraction() * float64(r.W)))
	dst.DrawHLine(r.X, y, full, BarFullChar, core.ColorGreen)
	dst.DrawHLine(r.X+full, y, r.W-full, BarEmptyChar, core.ColorRed)
}

func drawHUD(dst *core.Screen, h HUD) {
	left := fmt.Sprintf(" Score: %d  Health: %d  Lives: %d ", h.Score, h.Health, h.Lives)
	dst.DrawTextColor(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf(" Level: %d  Weapon: %d ", h.Level, h.WeaponTier)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorWhite)

	if h.BossPresent && !h.GameOver {
		banner := "BOSS BATTLE!"
		x := (dst.Width() - len(banner)) / 2
		dst.DrawTextColor(x, bossBannerRow, banner, core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
