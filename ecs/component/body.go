package component

// Body is the visual rectangle size. Hitboxes are derived from it by insetting.
type Body struct {
	Width  float64
	Height float64
}

var BodyComponent = NewComponent[Body]()
