package superhero

// Explosion radii per animation frame.
var blastRadii = [...]float64{10, 20, 30, 20, 10}

// ticksPerBlastFrame is how long each explosion frame stays on screen.
const ticksPerBlastFrame = 5

// Blast is the animation state of an explosion.
type Blast struct {
	Frame int
	Timer int
}

// Radius returns the radius of the current frame.
func (b Blast) Radius() float64 {
	if b.Frame < 0 || b.Frame >= len(blastRadii) {
		return 0
	}
	return blastRadii[b.Frame]
}

// NewExplosion creates a purely visual effect centered on (cx, cy).
func NewExplosion(cx, cy float64) *Entity {
	r := blastRadii[0]
	return &Entity{
		Body: centeredBody(cx, cy, 2*r, 2*r),
		Kind: KindEffect,
	}
}

func (e *Entity) updateEffect() {
	e.Blast.Timer++
	if e.Blast.Timer < ticksPerBlastFrame {
		return
	}

	e.Blast.Timer = 0
	e.Blast.Frame++
	if e.Blast.Frame >= len(blastRadii) {
		e.Kill()
		return
	}

	// Grow or shrink around the same center.
	cx, cy := e.Center()
	r := e.Blast.Radius()
	e.Body = centeredBody(cx, cy, 2*r, 2*r)
}
