package game

import (
	"testing"

	"github.com/vovakirdan/tui-starblitz/internal/config"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
	"github.com/vovakirdan/tui-starblitz/internal/events"
)

const waveTestDT = 1.0 / 60.0

func newTestDirector() (*WaveDirector, *ecs.World, *events.Bus) {
	world := ecs.NewWorld()
	bus := events.NewBus()
	cfg := config.DefaultShooterConfig().Waves
	return NewWaveDirector(world, bus, cfg, Bounds{W: 80, H: 24}), world, bus
}

func tickDirector(d *WaveDirector, seconds float64) {
	for t := 0.0; t < seconds; t += waveTestDT {
		d.Update(waveTestDT)
	}
}

func TestFirstWaveSpawnsAfterDelay(t *testing.T) {
	d, world, _ := newTestDirector()

	d.Update(waveTestDT)
	if d.Wave() != 0 {
		t.Fatal("wave spawned before the opening delay expired")
	}

	tickDirector(d, firstWaveDelay+0.1)
	if d.Wave() != 1 {
		t.Fatalf("expected wave 1, got %d", d.Wave())
	}
	if got := len(world.Query(TagEnemy)); got != 4 {
		t.Errorf("wave 1 roster: got %d enemies, want 4 drones", got)
	}
	if d.Intermission() {
		t.Error("director should be active after spawning")
	}
}

func TestActiveWaveNeverAutoAdvances(t *testing.T) {
	d, world, _ := newTestDirector()
	tickDirector(d, firstWaveDelay+0.1)

	before := len(world.Query(TagEnemy))
	tickDirector(d, 30) // half a minute of nothing dying
	if d.Wave() != 1 {
		t.Fatalf("wave advanced to %d with enemies still alive", d.Wave())
	}
	if got := len(world.Query(TagEnemy)); got != before {
		t.Errorf("enemy count changed from %d to %d while idle", before, got)
	}
}

func TestClearingWaveTriggersExactlyOneIntermission(t *testing.T) {
	d, world, bus := newTestDirector()
	tickDirector(d, firstWaveDelay+0.1)

	transitions := 0
	events.Subscribe(bus, func(WaveStarted) { transitions++ })

	n := len(world.Query(TagEnemy))
	for i := 0; i < n; i++ {
		events.Publish(bus, EnemyDestroyed{Score: 100})
	}
	if !d.Intermission() {
		t.Fatal("expected intermission after the last kill")
	}

	// Stray destroyed events must not re-arm or skip the intermission.
	events.Publish(bus, EnemyDestroyed{Score: 100})
	events.Publish(bus, EnemyDestroyed{Score: 100})

	tickDirector(d, d.cfg.IntermissionSecs+0.1)
	if d.Wave() != 2 {
		t.Fatalf("expected wave 2 after intermission, got %d", d.Wave())
	}
	if transitions != 1 {
		t.Errorf("expected exactly one WaveStarted during the test, got %d", transitions)
	}
}

func TestBossWaveWarningAndSpawn(t *testing.T) {
	d, world, bus := newTestDirector()

	warned := 0
	events.Subscribe(bus, func(BossWarning) { warned++ })

	// Clear waves 1 through 4; wave 5 is the first mini-boss wave.
	tickDirector(d, firstWaveDelay+0.1)
	for wave := 1; wave < d.cfg.MiniBossEvery; wave++ {
		for _, e := range world.Query(TagEnemy) {
			world.Destroy(e)
			events.Publish(bus, EnemyDestroyed{})
		}
		world.Flush()
		tickDirector(d, d.cfg.IntermissionSecs+0.1)
	}

	if d.Wave() != d.cfg.MiniBossEvery {
		t.Fatalf("expected wave %d, got %d", d.cfg.MiniBossEvery, d.Wave())
	}
	if warned != 1 {
		t.Errorf("expected one boss warning, got %d", warned)
	}

	bosses := 0
	for _, e := range world.Query(TagEnemy) {
		en, _ := ecs.Get[*Enemy](world, e, TagEnemy)
		if en.Faction == FactionBoss {
			bosses++
		}
	}
	if bosses != 1 {
		t.Errorf("expected exactly one mini-boss on wave %d, got %d", d.Wave(), bosses)
	}
}

func TestEscalationStepsAndCaps(t *testing.T) {
	d, _, _ := newTestDirector()

	if d.BulletSpeedMul() != 1 || d.SpawnRateMul() != 1 {
		t.Fatal("multipliers must start at 1")
	}

	// Drive the director through many waves by spawning directly.
	last := 1.0
	for wave := 2; wave <= 40; wave++ {
		d.spawnWave(wave)
		if d.BulletSpeedMul() < last {
			t.Fatalf("bullet speed multiplier regressed at wave %d", wave)
		}
		last = d.BulletSpeedMul()
	}

	if d.BulletSpeedMul() > d.cfg.BulletSpeedCap {
		t.Errorf("bullet speed multiplier %v exceeds cap %v", d.BulletSpeedMul(), d.cfg.BulletSpeedCap)
	}
	if d.SpawnRateMul() > d.cfg.SpawnRateCap {
		t.Errorf("spawn rate multiplier %v exceeds cap %v", d.SpawnRateMul(), d.cfg.SpawnRateCap)
	}
}

func TestSpawnRateMultiplierGrowsWaves(t *testing.T) {
	base, baseWorld, _ := newTestDirector()
	base.spawnWave(2)
	baseCount := len(baseWorld.Query(TagEnemy))
	if baseCount == 0 {
		t.Fatal("wave 2 spawned no enemies")
	}

	boosted, boostedWorld, _ := newTestDirector()
	boosted.spawnRateMul = 2
	boosted.spawnWave(2)
	boostedCount := len(boostedWorld.Query(TagEnemy))

	if boostedCount != 2*baseCount {
		t.Errorf("multiplier 2 grew wave 2 from %d to %d enemies, want %d",
			baseCount, boostedCount, 2*baseCount)
	}
	if boosted.alive != boostedCount {
		t.Errorf("alive counter %d does not match the %d spawned enemies",
			boosted.alive, boostedCount)
	}
}

func TestFormationPositionsStayOnScreen(t *testing.T) {
	for n := 1; n <= 30; n++ {
		for i := 0; i < n; i++ {
			p := formationPos(i, n, 80)
			if p.X <= 0 || p.X >= 80 {
				t.Fatalf("formation slot %d/%d off screen: x=%v", i, n, p.X)
			}
			if p.Y >= 0 {
				t.Fatalf("formation slot %d/%d must start above the screen: y=%v", i, n, p.Y)
			}
		}
	}
}

func TestRosterGrowthRespectsCaps(t *testing.T) {
	for _, a := range archetypes {
		if a.CountFor(a.MinWave-1) != 0 {
			t.Errorf("%v appears before its minimum wave", a.Faction)
		}
		if a.CountFor(a.MinWave) != a.BaseCount {
			t.Errorf("%v: first appearance should be the base count", a.Faction)
		}
		if a.CountFor(1000) != a.MaxCount {
			t.Errorf("%v: late-game count should saturate at %d", a.Faction, a.MaxCount)
		}
	}
}
