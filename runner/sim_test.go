package runner

import (
	"image"
	"math"
	"testing"

	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/ecs/component"
	"github.com/milk9111/dogrunner/tuning"
)

func testSprites() *assets.Sprites {
	mk := func(path string, w, h int) *assets.Sprite {
		return assets.NewSprite(path, image.NewRGBA(image.Rect(0, 0, w, h)))
	}
	return &assets.Sprites{
		DogRun:    mk("dino/dog.png", 64, 52),
		DogRunAlt: mk("dino/dog-2.png", 64, 52),
		DogJump:   mk("dino/dog-jumping.png", 64, 52),
		Tree:      mk("dino/tree.png", 180, 260),
		Squirrel:  mk("dino/squirrel.png", 200, 220),
		Mountain:  mk("dino/mountains.png", 600, 280),
	}
}

// closedFormScore integrates ds/dt = base + bonus*min(s/ceiling, 1) from 0.
func closedFormScore(t *tuning.Runner, seconds float64) float64 {
	base, bonus, ceiling := t.Score.BaseRate, t.Score.DifficultyBonus, t.Difficulty.Ceiling
	k := bonus / ceiling
	tCeil := math.Log(1+k*ceiling/base) / k
	if seconds <= tCeil {
		return base / k * (math.Exp(k*seconds) - 1)
	}
	return ceiling + (base+bonus)*(seconds-tCeil)
}

func TestSoakTenThousandTicks(t *testing.T) {
	tun := tuning.Default()
	sim := NewSim(tun, testSprites(), common.NewRandom(2024))
	sim.SetInvulnerable(true)

	const dt = 1.0 / 60
	const ticks = 10000
	expected := 0.0
	maxObstacles := 0
	for i := 0; i < ticks; i++ {
		if sim.Step(dt, 800) {
			t.Fatalf("tick %d: invulnerable run collided", i)
		}
		d := common.Clamp01(expected / tun.Difficulty.Ceiling)
		expected += dt * (tun.Score.BaseRate + d*tun.Score.DifficultyBonus)

		p := sim.Player()
		if p.Y+p.Height > tun.Surface.Height {
			t.Fatalf("tick %d: player below floor", i)
		}
		if i%45 == 0 {
			sim.Jump()
		}
		maxObstacles = max(maxObstacles, sim.Obstacles())
	}

	if math.Abs(sim.Score()-expected) > 1e-9*expected {
		t.Fatalf("score %v, recurrence %v", sim.Score(), expected)
	}
	want := closedFormScore(tun, ticks*dt)
	if rel := math.Abs(sim.Score()-want) / want; rel > 0.005 {
		t.Fatalf("score %v drifts %.4f from closed form %v", sim.Score(), rel, want)
	}
	if maxObstacles == 0 || maxObstacles > 40 {
		t.Fatalf("max live obstacles %d", maxObstacles)
	}
}

func TestSoakIsDeterministic(t *testing.T) {
	run := func() (float64, int, int) {
		sim := NewSim(tuning.Default(), testSprites(), common.NewRandom(99))
		sim.SetInvulnerable(true)
		for i := 0; i < 3000; i++ {
			sim.Step(1.0/60, 640)
		}
		return sim.Score(), sim.Obstacles(), sim.Backdrops()
	}
	s1, o1, b1 := run()
	s2, o2, b2 := run()
	if s1 != s2 || o1 != o2 || b1 != b2 {
		t.Fatalf("seeded runs differ: (%v %d %d) vs (%v %d %d)", s1, o1, b1, s2, o2, b2)
	}
}

func TestResetClearsWorld(t *testing.T) {
	sim := NewSim(tuning.Default(), testSprites(), common.NewRandom(5))
	sim.SetInvulnerable(true)
	spawned := 0
	for i := 0; i < 1200; i++ {
		sim.Step(1.0/60, 640)
		spawned = max(spawned, sim.Obstacles())
	}
	if spawned == 0 {
		t.Fatal("no obstacles after 20 seconds")
	}
	sim.Jump()
	sim.Reset()
	p := sim.Player()
	if sim.Score() != 0 || sim.Obstacles() != 0 || sim.Backdrops() != 0 || p.Airborne || p.Y != 158 {
		t.Fatalf("after reset: score %v obstacles %d backdrops %d player %+v", sim.Score(), sim.Obstacles(), sim.Backdrops(), p)
	}
	if len(sim.Quads()) != 1 {
		t.Fatalf("quads after reset = %d, want only the dog", len(sim.Quads()))
	}
}

func TestStepReportsHitOnce(t *testing.T) {
	sim := NewSim(tuning.Default(), testSprites(), common.NewRandom(3))
	p := sim.Player()
	if !sim.SpawnObstacle(component.ObstacleSquirrel, 0.2, p.X+p.Width/2) {
		t.Fatal("spawn failed")
	}
	if !sim.Step(1.0/60, 640) {
		t.Fatal("first step after overlap reported no hit")
	}
	if sim.Step(1.0/60, 640) {
		t.Fatal("hit reported again on the following step")
	}
}
