package render

import "math"

// Viewport sizes the drawing surface. Width follows the host, Height stays at
// the logical surface height, and the backing store is scaled by the device
// pixel ratio.
type Viewport struct {
	Width         float64
	Height        float64
	BackingWidth  int
	BackingHeight int
	Scale         float64
}

// Fit sizes a viewport for an outside width in logical pixels. A
// non-positive dpr counts as 1.
func Fit(outsideWidth, height, dpr float64) Viewport {
	if dpr <= 0 {
		dpr = 1
	}
	width := math.Max(outsideWidth, 1)
	return Viewport{
		Width:         width,
		Height:        height,
		BackingWidth:  int(math.Floor(width * dpr)),
		BackingHeight: int(math.Floor(height * dpr)),
		Scale:         dpr,
	}
}
