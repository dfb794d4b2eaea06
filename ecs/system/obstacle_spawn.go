package system

import (
	"math"

	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
)

// ObstacleSpawnSystem places a new obstacle pattern whenever the spawn timer
// runs past the current delay. A due spawn waits while the rightmost obstacle
// still sits beyond the spawn line, so the track never queues up off screen.
type ObstacleSpawnSystem struct {
	ctx *Context
}

func NewObstacleSpawnSystem(ctx *Context) *ObstacleSpawnSystem {
	return &ObstacleSpawnSystem{ctx: ctx}
}

func (s *ObstacleSpawnSystem) Update(w *ecs.World) {
	c := s.ctx
	c.SpawnTimer += c.Delta
	if c.SpawnTimer < c.NextSpawn {
		return
	}

	t := c.Tuning
	spawnLine := c.Width + t.Surface.SpawnMargin
	edge, hasEdge := TrailingEdge(w)
	if hasEdge && edge > spawnLine {
		return
	}
	c.SpawnTimer = 0

	base := BaseGap(t, c.Speed, c.Difficulty, c.EarlyEase)
	minGap := ClearGap(t, c.Speed, c.Difficulty)

	spawnX := spawnLine
	if hasEdge {
		spawnX = math.Max(spawnX, edge+math.Max(base*t.Gap.Follow, minGap))
	}

	gaps := DrawGaps(t.Gap, base, minGap, c.Rand)
	plan := PlanPattern(t.Patterns, c.Score, gaps, obstacleWidths(c.Sprites), c.Rand)
	for _, p := range plan {
		SpawnObstacle(w, c, p.Kind, p.Scale, spawnX+p.Offset)
	}

	lo, hi := SpawnDelayBounds(t, c.Difficulty, c.EarlyEase)
	c.NextSpawn = common.Between(c.Rand, lo, hi) + float64(max(0, len(plan)-1))*t.Spawn.ComplexityDelay
}

// SpawnObstacle creates one obstacle standing on the floor with its left edge
// at x. It reports false when the sprite for kind is not loaded.
func SpawnObstacle(w *ecs.World, c *Context, kind component.ObstacleKind, scale, x float64) (ecs.Entity, bool) {
	sprite := obstacleSprite(c.Sprites, kind)
	if sprite == nil {
		return ecs.Entity{}, false
	}
	width := sprite.Width * scale
	height := sprite.Height * scale

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: c.FloorY() - height})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: width, Height: height})
	_ = ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Kind: kind})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: sprite})
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerObstacle, Order: c.NextOrder()})
	return e, true
}

// TrailingEdge is the right edge of the rightmost live obstacle.
func TrailingEdge(w *ecs.World) (float64, bool) {
	edge, found := 0.0, false
	ecs.ForEach3(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(_ ecs.Entity, _ *component.Obstacle, t *component.Transform, b *component.Body) {
			if right := t.X + b.Width; !found || right > edge {
				edge, found = right, true
			}
		})
	return edge, found
}

func obstacleSprite(s *assets.Sprites, kind component.ObstacleKind) *assets.Sprite {
	if s == nil {
		return nil
	}
	if kind == component.ObstacleSquirrel {
		return s.Squirrel
	}
	return s.Tree
}

func obstacleWidths(s *assets.Sprites) Widths {
	var w Widths
	if tree := obstacleSprite(s, component.ObstacleTree); tree != nil {
		w.Tree = tree.Width
	}
	if squirrel := obstacleSprite(s, component.ObstacleSquirrel); squirrel != nil {
		w.Squirrel = squirrel.Width
	}
	return w
}
