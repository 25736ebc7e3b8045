package superhero

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/superhero-arcade/internal/config"
)

// FinalLevel is the boss level. Clearing it wins the run.
const FinalLevel = 3

// Spawn vertical range: [spawnMinY, arena height - spawnBottomMargin].
const (
	spawnMinY         = config.SpawnMinY
	spawnBottomMargin = config.SpawnBottomMargin
)

// Spawn describes one entity a level places when it loads.
type Spawn struct {
	Kind     Kind // KindEnemy or KindCollectible
	Enemy    EnemyKind
	Pickup   PickupKind
	Offset   float64 // Distance past the right edge
	OnScreen bool    // Fixed boss position instead of Offset
}

func enemyAt(k EnemyKind, offset float64) Spawn {
	return Spawn{Kind: KindEnemy, Enemy: k, Offset: offset}
}

func pickupAt(k PickupKind, offset float64) Spawn {
	return Spawn{Kind: KindCollectible, Pickup: k, Offset: offset}
}

var levelTable = map[int][]Spawn{
	1: {
		enemyAt(EnemyNormal, 0),
		enemyAt(EnemyNormal, 200),
		enemyAt(EnemyNormal, 400),
		enemyAt(EnemyNormal, 600),
		pickupAt(PickupHealth, 500),
		pickupAt(PickupWeaponUpgrade, 900),
	},
	2: {
		enemyAt(EnemyNormal, 0),
		enemyAt(EnemyNormal, 250),
		enemyAt(EnemyNormal, 500),
		enemyAt(EnemyFast, 1200),
		enemyAt(EnemyFast, 1500),
		pickupAt(PickupExtraLife, 1100),
	},
	3: {
		{Kind: KindEnemy, Enemy: EnemyBoss, OnScreen: true},
		pickupAt(PickupHealth, 200),
		pickupAt(PickupWeaponUpgrade, 400),
	},
}

// Director loads levels into the world using a seeded RNG for spawn heights.
type Director struct {
	arena Arena
	rng   *rand.Rand
	log   *log.Logger
}

// NewDirector creates a level director seeded for deterministic spawns.
func NewDirector(seed int64, a Arena) *Director {
	return &Director{
		arena: a,
		rng:   rand.New(rand.NewSource(seed)),
		log:   log.New(io.Discard),
	}
}

// Reseed restarts the spawn sequence.
func (d *Director) Reseed(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
}

// Load replaces the level's enemies and collectibles with the table for level.
// Unknown level numbers panic.
func (d *Director) Load(level int, w *World) {
	spawns, ok := levelTable[level]
	if !ok {
		panic(fmt.Sprintf("superhero: no such level %d", level))
	}

	w.Clear(KindEnemy)
	w.Clear(KindCollectible)
	w.Sweep()

	right := d.arena.W
	for _, sp := range spawns {
		switch sp.Kind {
		case KindEnemy:
			if sp.OnScreen {
				w.Add(NewEnemy(sp.Enemy, right-100, d.arena.H/2-40, d.arena))
				continue
			}
			w.Add(NewEnemy(sp.Enemy, right+sp.Offset, d.spawnY(), d.arena))
		case KindCollectible:
			w.Add(NewCollectible(sp.Pickup, right+sp.Offset, d.spawnY()))
		default:
			panic(fmt.Sprintf("superhero: level %d spawns unsupported kind %s", level, sp.Kind))
		}
	}

	d.log.Debug("level loaded", "stage", level, "enemies", len(w.Enemies()), "collectibles", len(w.Collectibles()))
}

// spawnY draws a uniform integer height in [spawnMinY, H-spawnBottomMargin].
func (d *Director) spawnY() float64 {
	hi := int(d.arena.H) - spawnBottomMargin
	if hi <= spawnMinY {
		return spawnMinY
	}
	return float64(spawnMinY + d.rng.Intn(hi-spawnMinY+1))
}
