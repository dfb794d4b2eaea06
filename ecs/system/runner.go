package system

import (
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
)

// SpawnRunner creates the dog standing on the floor at its fixed x.
func SpawnRunner(w *ecs.World, c *Context) ecs.Entity {
	p := c.Tuning.Player
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: c.FloorY() - p.Height})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: p.Width, Height: p.Height})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	runner := &component.Runner{}
	_ = ecs.Add(w, e, component.RunnerComponent.Kind(), runner)
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: RunnerSprite(c, runner)})
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerRunner})
	return e
}
