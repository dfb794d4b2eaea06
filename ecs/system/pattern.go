package system

import (
	"math"

	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/ecs/component"
	"github.com/milk9111/dogrunner/tuning"
)

// Placement is one planned obstacle. Offset is measured from the pattern's
// spawn base to the obstacle's left edge.
type Placement struct {
	Kind   component.ObstacleKind
	Scale  float64
	Offset float64
}

// Gaps are the spacings a pattern may leave between its own obstacles.
type Gaps struct {
	Long     float64
	Standard float64
	Short    float64
}

// DrawGaps draws the three pattern gaps around base. None comes out narrower
// than minGap.
func DrawGaps(g tuning.Gap, base, minGap float64, rng common.Random) Gaps {
	long := base*g.LongFactor + common.Between(rng, g.LongJitter.Min, g.LongJitter.Max)
	standard := base + common.Between(rng, g.StandardJitter.Min, g.StandardJitter.Max)
	short := math.Max(g.ShortMin, base*g.ShortFactor+common.Between(rng, g.ShortJitter.Min, g.ShortJitter.Max))
	return Gaps{
		Long:     math.Max(long, minGap),
		Standard: math.Max(standard, minGap),
		Short:    math.Max(short, minGap),
	}
}

// Widths are the natural sprite widths of each obstacle kind.
type Widths struct {
	Tree     float64
	Squirrel float64
}

func (w Widths) Of(kind component.ObstacleKind) float64 {
	if kind == component.ObstacleSquirrel {
		return w.Squirrel
	}
	return w.Tree
}

type planner struct {
	widths Widths
	cursor float64
	out    []Placement
}

func (p *planner) push(kind component.ObstacleKind, scale, gap float64) float64 {
	p.cursor += gap
	p.out = append(p.out, Placement{Kind: kind, Scale: scale, Offset: p.cursor})
	width := p.widths.Of(kind) * scale
	p.cursor += width
	return width
}

// PlanPattern picks the obstacles for one spawn. The score selects the tier:
// early runs are mostly single obstacles, the mid tier mixes in pairs, and the
// late tier adds runs of three and mixed clusters. The plan is never empty.
func PlanPattern(cfg tuning.Patterns, score float64, gaps Gaps, widths Widths, rng common.Random) []Placement {
	p := &planner{widths: widths}
	between := func(r tuning.Range) float64 {
		return common.Between(rng, r.Min, r.Max)
	}

	switch {
	case score < cfg.Early.Until:
		e := cfg.Early
		if common.Chance(rng, e.TreeChance) {
			p.push(component.ObstacleTree, between(e.TreeScale), 0)
			break
		}
		scale := between(e.SquirrelScale)
		p.push(component.ObstacleSquirrel, scale, 0)
		if common.Chance(rng, e.PairChance) {
			p.push(component.ObstacleSquirrel, scale*between(e.PairJitter), gaps.Long)
		}

	case score < cfg.Mid.Until:
		m := cfg.Mid
		roll := rng.Float64()
		switch {
		case roll < m.SingleChance:
			p.push(component.ObstacleTree, between(m.SingleScale), 0)
		case roll < m.SingleChance+m.PairChance:
			scale := between(m.PairScale)
			p.push(component.ObstacleSquirrel, scale, 0)
			p.push(component.ObstacleSquirrel, scale*between(m.PairJitter), gaps.Standard)
		default:
			width := p.push(component.ObstacleTree, between(m.MixedTreeScale), 0)
			p.push(component.ObstacleSquirrel, between(m.MixedSquirrelScale),
				math.Max(gaps.Standard, width+gaps.Standard*m.MixedLead))
		}

	default:
		l := cfg.Late
		roll := rng.Float64()
		switch {
		case roll < l.TreePairChance:
			scale := between(l.TreePairScale)
			p.push(component.ObstacleTree, scale, 0)
			p.push(component.ObstacleTree, scale*between(l.TreePairJitter), gaps.Standard)
		case roll < l.TreePairChance+l.RunChance:
			scale := between(l.RunScale)
			p.push(component.ObstacleSquirrel, scale, 0)
			p.push(component.ObstacleSquirrel, scale*between(l.RunJitter), gaps.Standard)
			if common.Chance(rng, l.RunThirdChance) {
				p.push(component.ObstacleSquirrel, scale*between(l.RunThirdJitter), gaps.Standard)
			}
		default:
			count := l.ClusterMin
			if common.Chance(rng, l.ClusterExtraChance) {
				count++
			}
			for i := 0; i < count; i++ {
				gap := gaps.Short
				if i == 0 {
					gap = 0
				}
				if common.Chance(rng, l.ClusterTreeChance) {
					p.push(component.ObstacleTree, between(l.ClusterTreeScale), gap)
				} else {
					p.push(component.ObstacleSquirrel, between(l.ClusterSquirrelScale), gap)
				}
			}
		}
	}

	if len(p.out) == 0 {
		p.push(component.ObstacleTree, cfg.FallbackScale, 0)
	}
	return p.out
}
