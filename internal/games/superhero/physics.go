package superhero

import "github.com/vovakirdan/superhero-arcade/internal/core"

// Arena is the fixed playfield the simulation runs in, in world pixels.
// Frontends scale it; the simulation never sees terminal or window sizes.
type Arena struct {
	W, H float64
}

// Body is the physical state every entity carries.
// X and Y are the top-left corner.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	Alive  bool
}

func newBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, W: w, H: h, Alive: true}
}

// centeredBody places a body so its center sits on (cx, cy).
func centeredBody(cx, cy, w, h float64) Body {
	r := core.RectFromCenter(cx, cy, w, h)
	return newBody(r.X, r.Y, r.W, r.H)
}

// Rect returns the body's bounding box.
func (b *Body) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Center returns the midpoint of the bounding box.
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

func (b *Body) Right() float64 { return b.X + b.W }
func (b *Body) Bottom() float64 { return b.Y + b.H }

// Kill flags the body for removal at the next sweep.
func (b *Body) Kill() {
	b.Alive = false
}

// Move integrates velocity into position.
func (b *Body) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// OffLeft reports whether the body has fully left the arena on the left.
func (b *Body) OffLeft() bool {
	return b.Right() < 0
}

// Overlaps reports whether two bodies' boxes intersect. Touching edges do not count.
func (b *Body) Overlaps(o *Body) bool {
	return b.Rect().Intersects(o.Rect())
}
