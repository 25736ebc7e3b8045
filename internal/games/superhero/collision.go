package superhero

import "github.com/vovakirdan/superhero-arcade/internal/config"

// Report summarizes what one collision pass did.
type Report struct {
	Hits         int
	Kills        []EnemyKind
	BossDefeated bool
	Contact      bool
	LifeLost     bool
	Pickup       *PickupKind
}

// Resolver applies the per-tick collision rules in a fixed order:
// projectiles against enemies, player against enemies, player against collectibles.
type Resolver struct {
	combat config.SuperheroCombat
}

// NewResolver creates a resolver using the given combat tuning.
func NewResolver(c config.SuperheroCombat) Resolver {
	return Resolver{combat: c}
}

// Resolve runs one collision pass. Explosions are added to the world;
// dead entities are only flagged and must be swept by the caller.
func (r Resolver) Resolve(w *World, p *Player, s *Session) Report {
	var rep Report
	r.projectilesVsEnemies(w, s, &rep)
	r.playerVsEnemies(w, p, s, &rep)
	r.playerVsCollectibles(w, p, s, &rep)
	return rep
}

func (r Resolver) projectilesVsEnemies(w *World, s *Session, rep *Report) {
	for _, shot := range w.Projectiles() {
		if !shot.Alive {
			continue
		}
		// Oldest enemy first; a shot hits at most one.
		for _, e := range w.Enemies() {
			if !e.Alive || !shot.Overlaps(&e.Body) {
				continue
			}

			killed := e.TakeHit(shot.Damage)
			shot.Kill()
			rep.Hits++
			w.Add(NewExplosion(e.Center()))

			if killed {
				e.Kill()
				rep.Kills = append(rep.Kills, e.Enemy)
				if e.IsBoss() {
					s.AddScore(r.combat.BossScore)
					s.Finish(OutcomeWin)
					rep.BossDefeated = true
				} else {
					s.AddScore(r.combat.KillScore)
				}
			}
			break
		}
	}
}

func (r Resolver) playerVsEnemies(w *World, p *Player, s *Session, rep *Report) {
	for _, e := range w.Enemies() {
		if !e.Alive || !p.Overlaps(&e.Body) {
			continue
		}

		rep.Contact = true
		if p.TakeDamage(r.combat.ContactDamage) {
			rep.LifeLost = true
			if p.Lives <= 0 {
				s.Finish(OutcomeLoss)
			}
		}
		p.KnockBack(r.combat.Knockback)
		return // once per tick, however many enemies overlap
	}
}

func (r Resolver) playerVsCollectibles(w *World, p *Player, s *Session, rep *Report) {
	for _, c := range w.Collectibles() {
		if !c.Alive || !p.Overlaps(&c.Body) {
			continue
		}

		c.Kill()
		switch c.Pickup {
		case PickupHealth:
			p.Heal(r.combat.HealthPickup)
		case PickupWeaponUpgrade:
			p.UpgradeWeapon()
		case PickupExtraLife:
			p.Lives++
		case PickupScoreBoost:
			s.AddScore(r.combat.ScoreBoost)
		}
		kind := c.Pickup
		rep.Pickup = &kind
		return
	}
}
