package system

import (
	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
)

// AnimationSystem alternates the two run frames while grounded and holds the
// jump frame while airborne.
type AnimationSystem struct {
	ctx *Context
}

func NewAnimationSystem(ctx *Context) *AnimationSystem {
	return &AnimationSystem{ctx: ctx}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	frame := a.ctx.Tuning.Player.FrameDuration
	ecs.ForEach2(w, component.RunnerComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, r *component.Runner, sprite *component.Sprite) {
		if r.Airborne {
			r.FrameTimer = 0
			r.FrameIndex = 0
		} else {
			r.FrameTimer += a.ctx.Delta
			if r.FrameTimer >= frame {
				r.FrameTimer = 0
				r.FrameIndex = (r.FrameIndex + 1) % 2
			}
		}
		if img := RunnerSprite(a.ctx, r); img != nil {
			sprite.Image = img
		}
	})
}

// RunnerSprite picks the frame to draw for r.
func RunnerSprite(ctx *Context, r *component.Runner) *assets.Sprite {
	if ctx.Sprites == nil {
		return nil
	}
	switch {
	case r.Airborne:
		return ctx.Sprites.DogJump
	case r.FrameIndex%2 == 0:
		return ctx.Sprites.DogRun
	default:
		return ctx.Sprites.DogRunAlt
	}
}
