package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
	"github.com/milk9111/dogrunner/tuning"
)

// Hitbox shrinks a visual rectangle by in. Screen y grows downward, so B holds
// the top edge and T the bottom.
func Hitbox(t component.Transform, b component.Body, in tuning.Inset) cp.BB {
	local := cp.BB{L: in.Left, B: in.Top, R: b.Width - in.Right, T: b.Height - in.Bottom}
	return local.Offset(cp.Vector{X: t.X, Y: t.Y})
}

// Overlaps is strict on both axes. cp.BB.Intersects counts a shared edge as
// contact; a graze like that is not a hit here.
func Overlaps(a, b cp.BB) bool {
	if !a.Intersects(b) {
		return false
	}
	return a.L != b.R && a.R != b.L && a.B != b.T && a.T != b.B
}

// CollisionSystem tests the runner against every obstacle and stops at the
// first hit, flagging the context and queueing a collision event.
type CollisionSystem struct {
	ctx *Context
}

func NewCollisionSystem(ctx *Context) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	c := s.ctx
	if c.Invulnerable || c.Collided {
		return
	}
	pt, ok := ecs.Get(w, c.Player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pb, ok := ecs.Get(w, c.Player, component.BodyComponent.Kind())
	if !ok {
		return
	}
	player := Hitbox(*pt, *pb, c.Tuning.Hitbox.Player)

	for _, e := range ecs.Query(w, component.ObstacleComponent.Kind().ID(), component.TransformComponent.Kind().ID(), component.BodyComponent.Kind().ID()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		b, _ := ecs.Get(w, e, component.BodyComponent.Kind())
		if !Overlaps(player, Hitbox(*t, *b, c.Tuning.Hitbox.Obstacle)) {
			continue
		}
		c.Collided = true
		w.Events().Push(ecs.Event{
			Type: ecs.EventCollision,
			Data: ecs.CollisionEvent{Runner: c.Player, Obstacle: e},
		})
		return
	}
}
