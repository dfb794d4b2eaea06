package system

import (
	"math"

	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
)

// BackdropSpawnSystem adds distant scenery on its own long timer. Once any
// backdrop is on screen a spawn may be skipped to keep them sparse.
type BackdropSpawnSystem struct {
	ctx *Context
}

func NewBackdropSpawnSystem(ctx *Context) *BackdropSpawnSystem {
	return &BackdropSpawnSystem{ctx: ctx}
}

func (s *BackdropSpawnSystem) Update(w *ecs.World) {
	c := s.ctx
	c.BackdropTimer += c.Delta
	if c.BackdropTimer < c.NextBackdrop {
		return
	}
	c.BackdropTimer = 0

	b := c.Tuning.Backdrop
	lo, hi := BackdropDelayBounds(c.Tuning, c.Difficulty)
	c.NextBackdrop = common.Between(c.Rand, lo, hi)

	if ecs.Count(w, component.BackdropComponent.Kind()) > 0 && common.Chance(c.Rand, b.SkipChance) {
		return
	}
	if c.Sprites == nil || c.Sprites.Mountain == nil {
		return
	}

	sprite := c.Sprites.Mountain
	scale := common.Between(c.Rand, b.Scale.Min, b.Scale.Max)
	width := sprite.Width * scale
	height := sprite.Height * scale
	yOffset := common.Between(c.Rand, -b.Jitter, b.Jitter)
	buffer := math.Min(width*b.BufferFactor, b.BufferMax)

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: c.Width + buffer, Y: c.FloorY() - height - yOffset})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: width, Height: height})
	_ = ecs.Add(w, e, component.BackdropComponent.Kind(), &component.Backdrop{Speed: b.BaseSpeed + c.Difficulty*b.SpeedRamp})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: sprite})
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerBackdrop, Order: c.NextOrder()})
}
