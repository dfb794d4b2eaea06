package system

import (
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
)

// GravitySystem integrates the runner's fall and clamps it to the floor.
type GravitySystem struct {
	ctx *Context
}

func NewGravitySystem(ctx *Context) *GravitySystem {
	return &GravitySystem{ctx: ctx}
}

func (s *GravitySystem) Update(w *ecs.World) {
	dt := s.ctx.Delta
	floor := s.ctx.FloorY()
	gravity := s.ctx.Tuning.Player.Gravity

	ecs.ForEach3(w, component.RunnerComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, r *component.Runner, t *component.Transform, v *component.Velocity) {
			body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
			if !ok {
				return
			}
			v.Y += gravity * dt
			t.Y += v.Y * dt
			if t.Y+body.Height >= floor {
				t.Y = floor - body.Height
				v.Y = 0
				r.Airborne = false
			}
		})
}

// Jump applies the jump impulse to a grounded runner. It reports false, and
// leaves the runner untouched, while airborne.
func Jump(w *ecs.World, e ecs.Entity, impulse float64) bool {
	r, ok := ecs.Get(w, e, component.RunnerComponent.Kind())
	if !ok || r.Airborne {
		return false
	}
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return false
	}
	v.Y = impulse
	r.Airborne = true
	return true
}
