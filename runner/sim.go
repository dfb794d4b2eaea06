package runner

import (
	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
	"github.com/milk9111/dogrunner/ecs/system"
	"github.com/milk9111/dogrunner/render"
	"github.com/milk9111/dogrunner/tuning"
)

// Sim is one runner simulation: the dog, the obstacles and backdrops, score
// and spawn timers. It knows nothing about frames or input devices.
type Sim struct {
	world    *ecs.World
	ctx      *system.Context
	pipeline *ecs.Scheduler
}

// Player is a read-only view of the dog.
type Player struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	VY         float64
	Airborne   bool
	FrameIndex int
}

func NewSim(t *tuning.Runner, sprites *assets.Sprites, rng common.Random) *Sim {
	ctx := &system.Context{
		Tuning:  t,
		Sprites: sprites,
		Rand:    rng,
	}
	s := &Sim{
		world:    ecs.NewWorld(),
		ctx:      ctx,
		pipeline: system.Pipeline(ctx),
	}
	s.Reset()
	return s
}

// Reset empties the world, zeroes score and timers and stands the dog on
// the floor.
func (s *Sim) Reset() {
	s.world.Clear()
	s.ctx.Reset()
	s.ctx.Player = system.SpawnRunner(s.world, s.ctx)
}

// Step advances the simulation by dt seconds on a surface width wide. It
// reports whether the dog hit an obstacle during this step; a hit is reported
// once, on the step it happens.
func (s *Sim) Step(dt, width float64) bool {
	s.ctx.Delta = dt
	s.ctx.Width = width
	s.pipeline.Update(s.world)

	hit := false
	for _, evt := range s.world.Events().Drain() {
		if evt.Type == ecs.EventCollision {
			hit = true
		}
	}
	return hit
}

// Jump kicks a grounded dog upward. Airborne dogs ignore it.
func (s *Sim) Jump() bool {
	return system.Jump(s.world, s.ctx.Player, s.ctx.Tuning.Player.JumpVelocity)
}

func (s *Sim) Score() float64 {
	return s.ctx.Score
}

func (s *Sim) Difficulty() float64 {
	return s.ctx.Difficulty
}

func (s *Sim) Player() Player {
	var p Player
	if t, ok := ecs.Get(s.world, s.ctx.Player, component.TransformComponent.Kind()); ok {
		p.X, p.Y = t.X, t.Y
	}
	if b, ok := ecs.Get(s.world, s.ctx.Player, component.BodyComponent.Kind()); ok {
		p.Width, p.Height = b.Width, b.Height
	}
	if v, ok := ecs.Get(s.world, s.ctx.Player, component.VelocityComponent.Kind()); ok {
		p.VY = v.Y
	}
	if r, ok := ecs.Get(s.world, s.ctx.Player, component.RunnerComponent.Kind()); ok {
		p.Airborne = r.Airborne
		p.FrameIndex = r.FrameIndex
	}
	return p
}

func (s *Sim) Obstacles() int {
	return ecs.Count(s.world, component.ObstacleComponent.Kind())
}

func (s *Sim) Backdrops() int {
	return ecs.Count(s.world, component.BackdropComponent.Kind())
}

// SpawnObstacle drops a single obstacle at x, outside the pattern generator.
func (s *Sim) SpawnObstacle(kind component.ObstacleKind, scale, x float64) bool {
	_, ok := system.SpawnObstacle(s.world, s.ctx, kind, scale, x)
	return ok
}

// SetTuning swaps the tuning used from the next Reset on.
func (s *Sim) SetTuning(t *tuning.Runner) {
	s.ctx.Tuning = t
}

func (s *Sim) Tuning() *tuning.Runner {
	return s.ctx.Tuning
}

// SetInvulnerable turns collision testing off for practice runs.
func (s *Sim) SetInvulnerable(on bool) {
	s.ctx.Invulnerable = on
}

// Quads lists every sprite in draw order.
func (s *Sim) Quads() []render.Quad {
	return render.Collect(s.world)
}
