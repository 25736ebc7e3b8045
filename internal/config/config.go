// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"fmt"
	"strings"
)

// SuperheroConfig contains all tuning for Super Hero Adventure.
// Level content is not part of it; the spawn table is fixed in the game.
type SuperheroConfig struct {
	World      SuperheroWorld      `yaml:"world"`
	Player     SuperheroPlayer     `yaml:"player"`
	Projectile SuperheroProjectile `yaml:"projectile"`
	Combat     SuperheroCombat     `yaml:"combat"`
}

// SuperheroWorld defines the simulated playfield in world pixels.
type SuperheroWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Stars  int     `yaml:"stars"` // Background star count
}

// SuperheroPlayer defines the hero's body, stats and physics.
type SuperheroPlayer struct {
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MaxHealth     int     `yaml:"max_health"`
	Lives         int     `yaml:"lives"`
	MoveSpeed     float64 `yaml:"move_speed"`   // px per tick
	JumpImpulse   float64 `yaml:"jump_impulse"` // negative = up
	Gravity       float64 `yaml:"gravity"`      // px per tick²
	ShootCooldown int     `yaml:"shoot_cooldown"`
	MaxWeaponTier int     `yaml:"max_weapon_tier"`
}

// SuperheroProjectile defines the hero's shots.
type SuperheroProjectile struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`
	Damage  int     `yaml:"damage"`
	SpreadY float64 `yaml:"spread_y"` // Vertical spacing of the tier 3 triple shot
}

// SuperheroCombat defines damage, pickups and scoring.
type SuperheroCombat struct {
	ContactDamage int     `yaml:"contact_damage"`
	Knockback     float64 `yaml:"knockback"`
	HealthPickup  int     `yaml:"health_pickup"`
	ScoreBoost    int     `yaml:"score_boost"`
	KillScore     int     `yaml:"kill_score"`
	BossScore     int     `yaml:"boss_score"`
}

// Limits the game relies on. Enemies and pickups spawn with their top edge in
// [SpawnMinY, height-SpawnBottomMargin], so the world must be taller than that band.
const (
	MaxHealthCap      = 100
	WeaponTierCap     = 3
	SpawnMinY         = 200
	SpawnBottomMargin = 50
)

// Validate reports the first setting that would break the simulation.
func (c SuperheroConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.World.Height <= SpawnMinY+SpawnBottomMargin:
		return fmt.Errorf("config: world.height must exceed %d, got %v", SpawnMinY+SpawnBottomMargin, c.World.Height)
	case c.World.Stars < 0:
		return fmt.Errorf("config: world.stars must not be negative, got %d", c.World.Stars)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.MaxHealth <= 0 || c.Player.MaxHealth > MaxHealthCap:
		return fmt.Errorf("config: player.max_health must be in [1,%d], got %d", MaxHealthCap, c.Player.MaxHealth)
	case c.Player.Lives <= 0:
		return fmt.Errorf("config: player.lives must be positive, got %d", c.Player.Lives)
	case c.Player.MaxWeaponTier < 1 || c.Player.MaxWeaponTier > WeaponTierCap:
		return fmt.Errorf("config: player.max_weapon_tier must be in [1,%d], got %d", WeaponTierCap, c.Player.MaxWeaponTier)
	case c.Player.ShootCooldown < 0:
		return fmt.Errorf("config: player.shoot_cooldown must not be negative, got %d", c.Player.ShootCooldown)
	case c.Projectile.Speed <= 0:
		return fmt.Errorf("config: projectile.speed must be positive, got %v", c.Projectile.Speed)
	case c.Projectile.Damage <= 0:
		return fmt.Errorf("config: projectile.damage must be positive, got %d", c.Projectile.Damage)
	case c.Combat.ContactDamage < 0:
		return fmt.Errorf("config: combat.contact_damage must not be negative, got %d", c.Combat.ContactDamage)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// An empty string yields an empty preset, meaning "use the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySuperheroPreset adjusts starting lives and contact damage.
// Normal leaves the loaded config untouched.
func ApplySuperheroPreset(cfg *SuperheroConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Combat.ContactDamage = 10
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Combat.ContactDamage = 20
	}
}
