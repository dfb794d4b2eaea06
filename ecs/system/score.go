package system

import "github.com/milk9111/dogrunner/ecs"

// ScoreSystem accumulates score for the tick. A tick that ended in a
// collision scores nothing, so the final score is the one the hit happened at.
type ScoreSystem struct {
	ctx *Context
}

func NewScoreSystem(ctx *Context) *ScoreSystem {
	return &ScoreSystem{ctx: ctx}
}

func (s *ScoreSystem) Update(_ *ecs.World) {
	c := s.ctx
	if c.Collided {
		return
	}
	c.Score += c.Delta * (c.Tuning.Score.BaseRate + c.Difficulty*c.Tuning.Score.DifficultyBonus)
}

// Pipeline returns the per-tick systems in run order.
func Pipeline(ctx *Context) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewGravitySystem(ctx),
		NewAnimationSystem(ctx),
		NewDifficultySystem(ctx),
		NewObstacleSpawnSystem(ctx),
		NewBackdropSpawnSystem(ctx),
		NewScrollSystem(ctx),
		NewCollisionSystem(ctx),
		NewScoreSystem(ctx),
	)
}
