package system

import (
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
)

// ScrollSystem moves obstacles at the run speed and backdrops at their own
// speed, then destroys whatever has left the screen.
type ScrollSystem struct {
	ctx *Context
}

func NewScrollSystem(ctx *Context) *ScrollSystem {
	return &ScrollSystem{ctx: ctx}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	c := s.ctx
	var gone []ecs.Entity

	obstacleCull := -c.Tuning.Spawn.CullMargin
	ecs.ForEach3(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, _ *component.Obstacle, t *component.Transform, b *component.Body) {
			t.X -= c.Speed * c.Delta
			if t.X+b.Width <= obstacleCull {
				gone = append(gone, e)
			}
		})

	backdropCull := -c.Tuning.Backdrop.CullMargin
	ecs.ForEach3(w, component.BackdropComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, bd *component.Backdrop, t *component.Transform, b *component.Body) {
			t.X -= bd.Speed * c.Delta
			if t.X+b.Width <= backdropCull {
				gone = append(gone, e)
			}
		})

	for _, e := range gone {
		ecs.DestroyEntity(w, e)
	}
}
