package component

const (
	LayerBackdrop = iota
	LayerObstacle
	LayerRunner
)

// RenderLayer orders drawing: lower Index first, then lower Order (spawn order).
type RenderLayer struct {
	Index int
	Order uint64
}

var RenderLayerComponent = NewComponent[RenderLayer]()
