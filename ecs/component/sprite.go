package component

import "github.com/milk9111/dogrunner/assets"

type Sprite struct {
	Image *assets.Sprite
}

var SpriteComponent = NewComponent[Sprite]()
