package component

// Backdrop is a parallax scenery element scrolling at its own speed.
type Backdrop struct {
	Speed float64
}

var BackdropComponent = NewComponent[Backdrop]()
