package system

import (
	"math"

	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/tuning"
)

// Difficulty ramps linearly from 0 at score 0 to 1 at the tuning ceiling.
func Difficulty(t *tuning.Runner, score float64) float64 {
	return common.Clamp01(score / t.Difficulty.Ceiling)
}

// EarlyEase is 1 at the start of a run and fades to 0 by spawn.ease_score.
func EarlyEase(t *tuning.Runner, score float64) float64 {
	return math.Max(0, 1-score/t.Spawn.EaseScore)
}

func ScrollSpeed(t *tuning.Runner, difficulty float64) float64 {
	return common.Lerp(t.Speed.Base, t.Speed.Max, difficulty)
}

// SpawnDelayBounds returns the obstacle delay range. Both ends shrink as the
// run progresses; the minimum never drops below spawn.min_delay and the range
// never narrows past spawn.min_spread.
func SpawnDelayBounds(t *tuning.Runner, difficulty, ease float64) (float64, float64) {
	s := t.Spawn
	lo := math.Max(s.MinDelay+ease*s.EaseMin-difficulty*s.RampMin, s.MinDelay)
	hi := s.BaseDelay + s.MaxExtra + ease*s.EaseMax - difficulty*s.RampMax
	if hi < lo+s.MinSpread {
		hi = lo + s.MinSpread
	}
	return lo, hi
}

func BackdropDelayBounds(t *tuning.Runner, difficulty float64) (float64, float64) {
	b := t.Backdrop
	lo := math.Max(b.Delay.Min-difficulty*b.DelayRamp.Min, b.DelayFloor.Min)
	hi := math.Max(b.Delay.Max-difficulty*b.DelayRamp.Max, b.DelayFloor.Max)
	return lo, hi
}

// JumpWindow is how long a jump needs to clear an obstacle at this difficulty.
func JumpWindow(t *tuning.Runner, difficulty float64) float64 {
	return math.Min(t.Gap.JumpTime, t.Gap.WindowBase+difficulty*t.Gap.WindowRamp)
}

// ClearGap is the smallest spacing a jump timed at speed can clear.
func ClearGap(t *tuning.Runner, speed, difficulty float64) float64 {
	return speed*JumpWindow(t, difficulty) + t.Gap.SafetyMargin
}

func BaseGap(t *tuning.Runner, speed, difficulty, ease float64) float64 {
	return math.Max(t.Gap.Min, speed*JumpWindow(t, difficulty)+t.Gap.Clearance+ease*t.Gap.EaseBonus)
}

// DifficultySystem derives difficulty, early ease and scroll speed from the
// score accumulated so far.
type DifficultySystem struct {
	ctx *Context
}

func NewDifficultySystem(ctx *Context) *DifficultySystem {
	return &DifficultySystem{ctx: ctx}
}

func (s *DifficultySystem) Update(_ *ecs.World) {
	s.ctx.refresh()
}
