package config

import (
	_ "embed"
)

//go:embed defaults/superhero.yaml
var defaultSuperheroYAML []byte

// DefaultSuperheroConfig returns the built-in Super Hero Adventure tuning.
func DefaultSuperheroConfig() SuperheroConfig {
	return SuperheroConfig{
		World: SuperheroWorld{
			Width:  800,
			Height: 600,
			Stars:  50,
		},
		Player: SuperheroPlayer{
			StartX:        100,
			StartY:        500,
			Width:         50,
			Height:        50,
			MaxHealth:     100,
			Lives:         3,
			MoveSpeed:     5,
			JumpImpulse:   -20,
			Gravity:       0.8,
			ShootCooldown: 10,
			MaxWeaponTier: 3,
		},
		Projectile: SuperheroProjectile{
			Width:   15,
			Height:  5,
			Speed:   12,
			Damage:  20,
			SpreadY: 15,
		},
		Combat: SuperheroCombat{
			ContactDamage: 15,
			Knockback:     20,
			HealthPickup:  30,
			ScoreBoost:    100,
			KillScore:     20,
			BossScore:     500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "superhero":
		return defaultSuperheroYAML
	default:
		return nil
	}
}
