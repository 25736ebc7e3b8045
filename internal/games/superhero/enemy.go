package superhero

import (
	"fmt"
	"math"
)

// EnemyKind selects an enemy's stat block.
type EnemyKind uint8

const (
	EnemyNormal EnemyKind = iota
	EnemyFast
	EnemyStrong
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyFast:
		return "fast"
	case EnemyStrong:
		return "strong"
	case EnemyBoss:
		return "boss"
	default:
		return fmt.Sprintf("enemy(%d)", k)
	}
}

type enemyStats struct {
	health int
	speed  float64 // Horizontal, negative = left
	vspeed float64 // Vertical, patrol only
	size   float64
}

var enemyTable = map[EnemyKind]enemyStats{
	EnemyNormal: {health: 30, speed: -2, size: 40},
	EnemyFast:   {health: 20, speed: -4, size: 30},
	EnemyStrong: {health: 60, speed: -1, size: 50},
	EnemyBoss:   {health: 200, speed: -1, vspeed: 2, size: 80},
}

// MotionKind selects how an enemy moves each tick.
type MotionKind uint8

const (
	// MotionLinear drifts left at constant speed.
	MotionLinear MotionKind = iota
	// MotionPatrol bounces inside a box on the right half of the arena.
	MotionPatrol
)

// Motion holds an enemy's movement variant and, for patrols, its bounds.
type Motion struct {
	Kind       MotionKind
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewEnemy creates an enemy with its top-left corner at (x, y).
// Bosses get a patrol box derived from the arena. Unknown kinds panic.
func NewEnemy(kind EnemyKind, x, y float64, a Arena) *Entity {
	st, ok := enemyTable[kind]
	if !ok {
		panic(fmt.Sprintf("superhero: unknown enemy kind %d", kind))
	}

	e := &Entity{
		Body:      newBody(x, y, st.size, st.size),
		Kind:      KindEnemy,
		Enemy:     kind,
		MaxHealth: st.health,
		hp:        st.health,
		Motion:    Motion{Kind: MotionLinear},
	}
	e.VX = st.speed

	if kind == EnemyBoss {
		e.VY = st.vspeed
		e.Motion = Motion{
			Kind: MotionPatrol,
			MinX: a.W / 2,
			MaxX: a.W - 10,
			MinY: 50,
			MaxY: a.H - 50,
		}
	}
	return e
}

// Health returns current enemy health, never negative.
func (e *Entity) Health() int {
	return max(e.hp, 0)
}

// Damaged reports whether the enemy has lost any health.
func (e *Entity) Damaged() bool {
	return e.hp < e.MaxHealth
}

// IsBoss reports whether the entity is the level 3 boss.
func (e *Entity) IsBoss() bool {
	return e.Kind == KindEnemy && e.Enemy == EnemyBoss
}

// TakeHit subtracts damage and reports whether the enemy is now dead.
// It does not remove the enemy; the caller decides what a kill means.
func (e *Entity) TakeHit(damage int) bool {
	e.hp -= damage
	return e.hp <= 0
}

func (e *Entity) updateEnemy() {
	e.Move()

	if e.Motion.Kind == MotionPatrol {
		m := e.Motion
		if e.Y < m.MinY || e.Bottom() > m.MaxY {
			e.VY = -e.VY
		}
		if e.X < m.MinX {
			e.VX = math.Abs(e.VX)
		} else if e.Right() > m.MaxX {
			e.VX = -math.Abs(e.VX)
		}
	}

	if e.OffLeft() {
		e.Kill()
	}
}
