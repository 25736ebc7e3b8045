package superhero

import "github.com/vovakirdan/superhero-arcade/internal/core"

// Visual is the look a renderer should give a sprite.
type Visual uint8

const (
	VisualPlayer Visual = iota
	VisualProjectile
	VisualEnemyNormal
	VisualEnemyFast
	VisualEnemyStrong
	VisualBoss
	VisualHealth
	VisualWeaponUpgrade
	VisualExtraLife
	VisualScoreBoost
	VisualExplosion
)

type look struct {
	glyph rune
	color core.Color
}

var looks = map[Visual]look{
	VisualPlayer:        {'█', core.ColorBlue},
	VisualProjectile:    {'━', core.ColorBrightYellow},
	VisualEnemyNormal:   {'▓', core.ColorRed},
	VisualEnemyFast:     {'▒', core.ColorMagenta},
	VisualEnemyStrong:   {'█', core.ColorGreen},
	VisualBoss:          {'█', core.ColorPurple},
	VisualHealth:        {'+', core.ColorBrightGreen},
	VisualWeaponUpgrade: {'W', core.ColorCyan},
	VisualExtraLife:     {'♥', core.ColorBrightRed},
	VisualScoreBoost:    {'$', core.ColorYellow},
	VisualExplosion:     {'*', core.ColorOrange},
}

// Glyph is the terminal character for v.
func (v Visual) Glyph() rune {
	if l, ok := looks[v]; ok {
		return l.glyph
	}
	return '?'
}

// Color is the palette entry for v.
func (v Visual) Color() core.Color {
	return looks[v].color
}

// Sprite is one thing to draw: a visual in a world-space box.
type Sprite struct {
	Visual Visual
	Rect   core.RectF
}

// HUD is the status shown over the playfield.
type HUD struct {
	Score       int
	Health      int
	Lives       int
	Level       int
	WeaponTier  int
	BossPresent bool
	GameOver    bool
	Outcome     Outcome
	Paused      bool
}

// HealthBar is an overlay for a damaged enemy, anchored at its top-left.
type HealthBar struct {
	Health    int
	MaxHealth int
	X, Y      float64
	W         float64
}

// Fraction returns remaining health in [0, 1].
func (b HealthBar) Fraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(b.Health)/float64(b.MaxHealth), 0, 1)
}

// Frame is everything a frontend needs to draw one tick, in draw order.
type Frame struct {
	Arena      Arena
	Stars      []Star
	Sprites    []Sprite
	HealthBars []HealthBar
	HUD        HUD
}

// Frame captures the current state for rendering. It shares no memory
// with the simulation.
func (g *Game) Frame() Frame {
	f := Frame{
		Arena:   g.arena,
		Stars:   append([]Star(nil), g.stars.Stars...),
		Sprites: make([]Sprite, 0, len(g.world.All())+1),
	}

	f.Sprites = append(f.Sprites, Sprite{Visual: VisualPlayer, Rect: g.player.Rect()})
	for _, e := range g.world.All() {
		if !e.Alive {
			continue
		}
		f.Sprites = append(f.Sprites, Sprite{Visual: visualOf(e), Rect: e.Rect()})
		if e.Kind == KindEnemy && e.Damaged() {
			f.HealthBars = append(f.HealthBars, HealthBar{
				Health:    e.Health(),
				MaxHealth: e.MaxHealth,
				X:         e.X,
				Y:         e.Y,
				W:         e.W,
			})
		}
	}

	f.HUD = HUD{
		Score:       g.session.Score,
		Health:      g.player.DisplayHealth(),
		Lives:       max(g.player.Lives, 0),
		Level:       g.session.Level,
		WeaponTier:  g.player.WeaponTier,
		BossPresent: g.world.Boss() != nil,
		GameOver:    g.session.GameOver,
		Outcome:     g.session.Outcome,
		Paused:      g.session.Paused,
	}
	return f
}

func visualOf(e *Entity) Visual {
	switch e.Kind {
	case KindProjectile:
		return VisualProjectile
	case KindEffect:
		return VisualExplosion
	case KindEnemy:
		switch e.Enemy {
		case EnemyFast:
			return VisualEnemyFast
		case EnemyStrong:
			return VisualEnemyStrong
		case EnemyBoss:
			return VisualBoss
		default:
			return VisualEnemyNormal
		}
	default:
		switch e.Pickup {
		case PickupWeaponUpgrade:
			return VisualWeaponUpgrade
		case PickupExtraLife:
			return VisualExtraLife
		case PickupScoreBoost:
			return VisualScoreBoost
		default:
			return VisualHealth
		}
	}
}
