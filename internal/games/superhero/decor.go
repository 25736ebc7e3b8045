package superhero

import "math/rand"

// Star is one background dot.
type Star struct {
	X, Y float64
}

// Starfield scrolls background stars left, wrapping them to the right edge
// at a random height.
type Starfield struct {
	Stars []Star
	arena Arena
	rng   *rand.Rand
}

// NewStarfield scatters n stars over the arena.
func NewStarfield(n int, seed int64, a Arena) *Starfield {
	sf := &Starfield{
		arena: a,
		rng:   rand.New(rand.NewSource(seed)),
	}
	sf.scatter(n)
	return sf
}

// Reset reseeds and scatters the same number of stars again.
func (sf *Starfield) Reset(seed int64) {
	sf.rng = rand.New(rand.NewSource(seed))
	sf.scatter(len(sf.Stars))
}

func (sf *Starfield) scatter(n int) {
	sf.Stars = make([]Star, n)
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X: float64(sf.rng.Intn(int(sf.arena.W) + 1)),
			Y: float64(sf.rng.Intn(int(sf.arena.H) + 1)),
		}
	}
}

// Update moves every star one pixel left.
func (sf *Starfield) Update() {
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.X--
		if s.X < 0 {
			s.X = sf.arena.W
			s.Y = float64(sf.rng.Intn(int(sf.arena.H) + 1))
		}
	}
}
