package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeRunner(data []byte) (*Runner, error) {
	var r Runner
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

type validator struct {
	err error
}

func (v *validator) check(ok bool, field string, value any) {
	if v.err == nil && !ok {
		v.err = fmt.Errorf("%w: %s = %v", ErrInvalid, field, value)
	}
}

func (v *validator) positive(field string, value float64) {
	v.check(value > 0, field, value)
}

func (v *validator) chance(field string, value float64) {
	v.check(value >= 0 && value <= 1, field, value)
}

func (v *validator) ordered(field string, r Range) {
	v.check(r.Min <= r.Max, field, r)
}

// Validate rejects tunings the simulation cannot run with.
func (r *Runner) Validate() error {
	v := &validator{}

	v.positive("surface.height", r.Surface.Height)
	v.positive("player.width", r.Player.Width)
	v.positive("player.height", r.Player.Height)
	v.check(r.Player.Height < r.Surface.Height, "player.height", r.Player.Height)
	v.positive("player.gravity", r.Player.Gravity)
	v.check(r.Player.JumpVelocity < 0, "player.jump_velocity", r.Player.JumpVelocity)
	v.positive("player.frame_duration", r.Player.FrameDuration)

	v.positive("speed.base", r.Speed.Base)
	v.check(r.Speed.Max >= r.Speed.Base, "speed.max", r.Speed.Max)
	v.positive("difficulty.ceiling", r.Difficulty.Ceiling)
	v.positive("score.base_rate", r.Score.BaseRate)
	v.check(r.Score.DifficultyBonus >= 0, "score.difficulty_bonus", r.Score.DifficultyBonus)
	v.check(r.Score.Digits > 0, "score.digits", r.Score.Digits)

	v.positive("spawn.min_delay", r.Spawn.MinDelay)
	v.check(r.Spawn.BaseDelay >= r.Spawn.MinDelay, "spawn.base_delay", r.Spawn.BaseDelay)
	v.positive("spawn.ease_score", r.Spawn.EaseScore)
	v.positive("spawn.min_spread", r.Spawn.MinSpread)

	v.positive("gap.min", r.Gap.Min)
	v.positive("gap.jump_time", r.Gap.JumpTime)
	v.positive("gap.follow", r.Gap.Follow)
	v.check(r.Gap.SafetyMargin >= 0, "gap.safety_margin", r.Gap.SafetyMargin)
	v.ordered("gap.long_jitter", r.Gap.LongJitter)
	v.ordered("gap.standard_jitter", r.Gap.StandardJitter)
	v.ordered("gap.short_jitter", r.Gap.ShortJitter)

	p := r.Patterns
	v.positive("patterns.fallback_scale", p.FallbackScale)
	v.check(p.Early.Until > 0, "patterns.early.until", p.Early.Until)
	v.check(p.Mid.Until > p.Early.Until, "patterns.mid.until", p.Mid.Until)
	v.chance("patterns.early.tree_chance", p.Early.TreeChance)
	v.chance("patterns.early.pair_chance", p.Early.PairChance)
	v.ordered("patterns.early.tree_scale", p.Early.TreeScale)
	v.ordered("patterns.early.squirrel_scale", p.Early.SquirrelScale)
	v.ordered("patterns.early.pair_jitter", p.Early.PairJitter)
	v.chance("patterns.mid.single_chance+pair_chance", p.Mid.SingleChance+p.Mid.PairChance)
	v.ordered("patterns.mid.single_scale", p.Mid.SingleScale)
	v.ordered("patterns.mid.pair_scale", p.Mid.PairScale)
	v.ordered("patterns.mid.pair_jitter", p.Mid.PairJitter)
	v.ordered("patterns.mid.mixed_tree_scale", p.Mid.MixedTreeScale)
	v.ordered("patterns.mid.mixed_squirrel_scale", p.Mid.MixedSquirrelScale)
	v.chance("patterns.late.tree_pair_chance+run_chance", p.Late.TreePairChance+p.Late.RunChance)
	v.ordered("patterns.late.tree_pair_scale", p.Late.TreePairScale)
	v.ordered("patterns.late.tree_pair_jitter", p.Late.TreePairJitter)
	v.ordered("patterns.late.run_scale", p.Late.RunScale)
	v.ordered("patterns.late.run_jitter", p.Late.RunJitter)
	v.chance("patterns.late.run_third_chance", p.Late.RunThirdChance)
	v.ordered("patterns.late.run_third_jitter", p.Late.RunThirdJitter)
	v.check(p.Late.ClusterMin > 0, "patterns.late.cluster_min", p.Late.ClusterMin)
	v.chance("patterns.late.cluster_extra_chance", p.Late.ClusterExtraChance)
	v.chance("patterns.late.cluster_tree_chance", p.Late.ClusterTreeChance)
	v.ordered("patterns.late.cluster_tree_scale", p.Late.ClusterTreeScale)
	v.ordered("patterns.late.cluster_squirrel_scale", p.Late.ClusterSquirrelScale)

	b := r.Backdrop
	v.positive("backdrop.base_speed", b.BaseSpeed)
	v.check(b.BaseSpeed+b.SpeedRamp < r.Speed.Base, "backdrop.speed_ramp", b.SpeedRamp)
	v.ordered("backdrop.delay", b.Delay)
	v.ordered("backdrop.delay_floor", b.DelayFloor)
	v.check(b.DelayFloor.Min > 0, "backdrop.delay_floor", b.DelayFloor)
	v.chance("backdrop.skip_chance", b.SkipChance)
	v.ordered("backdrop.scale", b.Scale)
	v.check(b.Scale.Min > 0, "backdrop.scale", b.Scale)

	v.check(r.Storage.Key != "", "storage.key", r.Storage.Key)

	return v.err
}
