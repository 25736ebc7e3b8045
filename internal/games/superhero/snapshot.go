package superhero

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the simulation state for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick       int
	Score      int
	Level      int
	GameOver   bool
	Outcome    Outcome
	Paused     bool
	PlayerX    float64
	PlayerY    float64
	PlayerVY   float64
	Health     int
	Lives      int
	WeaponTier int
	Cooldown   int
	Airborne   bool

	// Each entity is 6 values: Kind, subtype, X, Y, health, blast frame
	EntityCount int
	EntityData  []float64

	StarData []float64 // X, Y pairs
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	all := g.world.All()
	data := make([]float64, 0, len(all)*6)
	for _, e := range all {
		sub := 0
		switch e.Kind {
		case KindEnemy:
			sub = int(e.Enemy)
		case KindCollectible:
			sub = int(e.Pickup)
		}
		data = append(data,
			float64(e.Kind), float64(sub),
			e.X, e.Y,
			float64(e.hp), float64(e.Blast.Frame))
	}

	stars := make([]float64, 0, len(g.stars.Stars)*2)
	for _, s := range g.stars.Stars {
		stars = append(stars, s.X, s.Y)
	}

	p := g.player
	return Snapshot{
		Tick:        g.session.Tick,
		Score:       g.session.Score,
		Level:       g.session.Level,
		GameOver:    g.session.GameOver,
		Outcome:     g.session.Outcome,
		Paused:      g.session.Paused,
		PlayerX:     p.X,
		PlayerY:     p.Y,
		PlayerVY:    p.VY,
		Health:      p.Health,
		Lives:       p.Lives,
		WeaponTier:  p.WeaponTier,
		Cooldown:    p.Cooldown,
		Airborne:    p.Airborne,
		EntityCount: len(all),
		EntityData:  data,
		StarData:    stars,
	}
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putBool := func(v bool) {
		if v {
			putInt(1)
		} else {
			putInt(0)
		}
	}

	putInt(snap.Tick)
	putInt(snap.Score)
	putInt(snap.Level)
	putBool(snap.GameOver)
	putInt(int(snap.Outcome))
	putBool(snap.Paused)
	putFloat(snap.PlayerX)
	putFloat(snap.PlayerY)
	putFloat(snap.PlayerVY)
	putInt(snap.Health)
	putInt(snap.Lives)
	putInt(snap.WeaponTier)
	putInt(snap.Cooldown)
	putBool(snap.Airborne)
	putInt(snap.EntityCount)
	for _, v := range snap.EntityData {
		putFloat(v)
	}
	for _, v := range snap.StarData {
		putFloat(v)
	}

	return h.Sum64()
}
