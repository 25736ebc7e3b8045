package superhero

import (
	"testing"

	"github.com/vovakirdan/superhero-arcade/internal/config"
)

func TestWorldSweepRemovesFromAllPartitions(t *testing.T) {
	w := NewWorld()
	shot := NewProjectile(100, 100, config.DefaultSuperheroConfig().Projectile)
	enemy := NewEnemy(EnemyNormal, 400, 300, testArena)
	pickup := NewCollectible(PickupHealth, 500, 300)
	blast := NewExplosion(200, 200)

	for _, e := range []*Entity{shot, enemy, pickup, blast} {
		w.Add(e)
	}
	if len(w.All()) != 4 || len(w.Projectiles()) != 1 || len(w.Enemies()) != 1 ||
		len(w.Collectibles()) != 1 || len(w.Effects()) != 1 {
		t.Fatal("each entity should be in all plus exactly one partition")
	}
	if !(shot.Seq < enemy.Seq && enemy.Seq < pickup.Seq && pickup.Seq < blast.Seq) {
		t.Error("sequence numbers should follow insertion order")
	}

	enemy.Kill()
	blast.Kill()
	if n := w.Sweep(); n != 2 {
		t.Errorf("Sweep removed %d, expected 2", n)
	}

	if len(w.All()) != 2 || len(w.Enemies()) != 0 || len(w.Effects()) != 0 {
		t.Errorf("dead entities left behind: all=%d enemies=%d effects=%d",
			len(w.All()), len(w.Enemies()), len(w.Effects()))
	}
	for _, e := range w.All() {
		if !e.Alive {
			t.Error("sweep left a dead entity in all")
		}
	}
	if w.All()[0] != shot || w.All()[1] != pickup {
		t.Error("sweep should keep spawn order")
	}
}

func TestWorldUpdateSkipsDead(t *testing.T) {
	w := NewWorld()
	e := NewEnemy(EnemyNormal, 400, 300, testArena)
	w.Add(e)
	e.Kill()

	w.Update(testArena)
	if e.X != 400 {
		t.Error("dead entities should not be updated")
	}
}

func TestWorldClearAndBoss(t *testing.T) {
	w := NewWorld()
	w.Add(NewEnemy(EnemyNormal, 900, 300, testArena))
	boss := NewEnemy(EnemyBoss, 700, 260, testArena)
	w.Add(boss)
	w.Add(NewCollectible(PickupHealth, 1000, 300))

	if w.Boss() != boss {
		t.Fatal("Boss() should find the live boss")
	}

	w.Clear(KindEnemy)
	if w.Boss() != nil {
		t.Error("killed boss should not be reported")
	}
	w.Sweep()
	if len(w.Enemies()) != 0 || len(w.Collectibles()) != 1 {
		t.Errorf("Clear(KindEnemy) should only remove enemies, got %d enemies %d collectibles",
			len(w.Enemies()), len(w.Collectibles()))
	}

	w.Reset()
	if len(w.All()) != 0 {
		t.Error("Reset should empty the world")
	}
}
