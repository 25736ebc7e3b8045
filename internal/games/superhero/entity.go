package superhero

import (
	"fmt"

	"github.com/vovakirdan/superhero-arcade/internal/config"
)

// Kind tags which role an Entity plays. The World partitions entities by it.
type Kind uint8

const (
	KindProjectile Kind = iota
	KindEnemy
	KindCollectible
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	case KindCollectible:
		return "collectible"
	case KindEffect:
		return "effect"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Entity is any non-player object in the world.
// Only the fields for its Kind are meaningful.
type Entity struct {
	Body
	Kind Kind
	Seq  uint64 // Spawn order, assigned by World.Add

	// Projectile
	Damage int

	// Enemy
	Enemy     EnemyKind
	MaxHealth int
	Motion    Motion
	hp        int

	// Collectible
	Pickup PickupKind

	// Effect
	Blast Blast
}

// Update advances the entity by one tick.
func (e *Entity) Update(a Arena) {
	switch e.Kind {
	case KindProjectile:
		e.updateProjectile(a)
	case KindEnemy:
		e.updateEnemy()
	case KindCollectible:
		e.updateCollectible()
	case KindEffect:
		e.updateEffect()
	default:
		panic(fmt.Sprintf("superhero: update of unknown entity kind %d", e.Kind))
	}
}

// NewProjectile creates a rightward shot centered on (cx, cy).
func NewProjectile(cx, cy float64, p config.SuperheroProjectile) *Entity {
	e := &Entity{
		Body:   centeredBody(cx, cy, p.Width, p.Height),
		Kind:   KindProjectile,
		Damage: p.Damage,
	}
	e.VX = p.Speed
	return e
}

func (e *Entity) updateProjectile(a Arena) {
	e.Move()
	if e.Right() > a.W || e.Right() < 0 {
		e.Kill()
	}
}
