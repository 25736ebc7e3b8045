package superhero

import (
	"github.com/vovakirdan/superhero-arcade/internal/config"
	"github.com/vovakirdan/superhero-arcade/internal/core"
)

// Player is the hero. It lives for the whole session and is only ever reset.
type Player struct {
	Body
	Health     int
	Lives      int
	WeaponTier int
	Airborne   bool
	Cooldown   int // Ticks until the next shot is allowed

	jumpHeld bool
	floorY   float64
	cfg      config.SuperheroPlayer
	shot     config.SuperheroProjectile
}

// NewPlayer creates a player in its starting state.
func NewPlayer(cfg config.SuperheroConfig) *Player {
	p := &Player{cfg: cfg.Player, shot: cfg.Projectile, floorY: cfg.World.Height}
	p.Reset()
	return p
}

// Reset restores position, stats and weapon to their starting values.
func (p *Player) Reset() {
	c := p.cfg
	p.Body = newBody(c.StartX, c.StartY, c.Width, c.Height)
	p.Health = c.MaxHealth
	p.Lives = c.Lives
	p.WeaponTier = 1
	p.Cooldown = 0
	p.jumpHeld = false
	p.Airborne = p.Bottom() < p.floorY
}

// Update applies input and physics for one tick and returns any shots fired.
func (p *Player) Update(in core.InputFrame, a Arena) []*Entity {
	c := p.cfg

	p.VX = 0
	if in.Has(core.ActionLeft) {
		p.VX = -c.MoveSpeed
	} else if in.Has(core.ActionRight) {
		p.VX = c.MoveSpeed
	}

	jump := in.Has(core.ActionJump)
	if jump && !p.jumpHeld && !p.Airborne {
		p.VY = c.JumpImpulse
		p.Airborne = true
	}
	p.jumpHeld = jump

	p.VY += c.Gravity
	p.Move()

	p.X = core.ClampF(p.X, 0, a.W-p.W)
	if p.Bottom() >= a.H {
		p.Y = a.H - p.H
		p.VY = 0
		p.Airborne = false
	}

	var shots []*Entity
	if in.Has(core.ActionShoot) && p.Cooldown <= 0 {
		shots = p.fire()
		p.Cooldown = c.ShootCooldown
	}
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	return shots
}

// fire creates the projectiles for the current weapon tier.
func (p *Player) fire() []*Entity {
	cx, cy := p.Center()
	switch p.WeaponTier {
	case 1:
		return []*Entity{NewProjectile(cx, cy, p.shot)}
	case 2:
		half := p.H / 2
		return []*Entity{
			NewProjectile(cx, cy-half, p.shot),
			NewProjectile(cx, cy+half, p.shot),
		}
	default:
		d := p.shot.SpreadY
		return []*Entity{
			NewProjectile(cx, cy-d, p.shot),
			NewProjectile(cx, cy, p.shot),
			NewProjectile(cx, cy+d, p.shot),
		}
	}
}

// TakeDamage removes health. Crossing zero costs a life and refills health.
// It reports whether a life was lost.
func (p *Player) TakeDamage(n int) bool {
	p.Health -= n
	if p.Health > 0 {
		return false
	}
	p.Lives--
	p.Health = p.cfg.MaxHealth
	return true
}

// KnockBack pushes the player left, stopping at the arena edge.
func (p *Player) KnockBack(d float64) {
	p.X = max(p.X-d, 0)
}

// Heal adds health up to the maximum.
func (p *Player) Heal(n int) {
	p.Health = min(p.Health+n, p.cfg.MaxHealth)
}

// UpgradeWeapon raises the weapon tier up to the configured cap.
func (p *Player) UpgradeWeapon() {
	p.WeaponTier = min(p.WeaponTier+1, p.cfg.MaxWeaponTier)
}

// DisplayHealth returns health clamped to [0, max] for HUDs.
func (p *Player) DisplayHealth() int {
	return core.Clamp(p.Health, 0, p.cfg.MaxHealth)
}
