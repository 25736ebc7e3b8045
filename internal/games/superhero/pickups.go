package superhero

import "fmt"

// PickupKind is what a collectible grants when touched.
type PickupKind uint8

const (
	PickupHealth PickupKind = iota
	PickupWeaponUpgrade
	PickupExtraLife
	PickupScoreBoost
)

func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "health"
	case PickupWeaponUpgrade:
		return "weapon_upgrade"
	case PickupExtraLife:
		return "extra_life"
	case PickupScoreBoost:
		return "score_boost"
	default:
		return fmt.Sprintf("pickup(%d)", k)
	}
}

const (
	collectibleSize  = 20
	collectibleDrift = -1
)

// NewCollectible creates a pickup centered on (cx, cy). Unknown kinds panic.
func NewCollectible(kind PickupKind, cx, cy float64) *Entity {
	if kind > PickupScoreBoost {
		panic(fmt.Sprintf("superhero: unknown collectible kind %d", kind))
	}
	e := &Entity{
		Body:   centeredBody(cx, cy, collectibleSize, collectibleSize),
		Kind:   KindCollectible,
		Pickup: kind,
	}
	e.VX = collectibleDrift
	return e
}

func (e *Entity) updateCollectible() {
	e.Move()
	if e.OffLeft() {
		e.Kill()
	}
}
