// Package render turns runner state into draw calls against an abstract
// canvas. Nothing here advances the simulation.
package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
)

// Ink is the slate used for every overlay string; Text.Alpha fades it.
var Ink = color.NRGBA{R: 15, G: 23, B: 42, A: 255}

// Quad is a sprite stretched over a logical rectangle.
type Quad struct {
	Sprite *assets.Sprite
	X      float64
	Y      float64
	Width  float64
	Height float64
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text is a single line. Y is the baseline and X the anchor Align refers to.
type Text struct {
	Content string
	X       float64
	Y       float64
	Size    float64
	Bold    bool
	Alpha   float64
	Align   Align
}

type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayLoading
	OverlayReady
	OverlayOver
)

// Scene is everything needed to draw one frame.
type Scene struct {
	Width     float64
	Height    float64
	Quads     []Quad
	Score     float64
	HighScore int
	Digits    int
	Overlay   Overlay
}

// Canvas is the drawing surface a host provides.
type Canvas interface {
	Clear(width, height float64)
	DrawSprite(q Quad)
	DrawText(t Text)
}

const (
	LoadingText = "Loading…"
	StartHint   = "Tap or press space to start"
	GameOver    = "Game Over"
	RetryHint   = "Tap or press space to try again"

	scoreMargin = 18
)

// Draw paints s onto c. It only reads s, so drawing the same scene again
// repeats the same calls.
func Draw(c Canvas, s Scene) {
	c.Clear(s.Width, s.Height)
	mid := s.Width / 2

	if s.Overlay == OverlayLoading {
		c.DrawText(Text{Content: LoadingText, X: mid, Y: s.Height / 2, Size: 22, Alpha: 0.8, Align: AlignCenter})
		return
	}

	for _, q := range s.Quads {
		if q.Sprite == nil {
			continue
		}
		c.DrawSprite(q)
	}

	score := int(math.Floor(s.Score))
	high := max(s.HighScore, score)
	right := s.Width - scoreMargin
	c.DrawText(Text{Content: "SCORE " + FormatScore(score, s.Digits), X: right, Y: 34, Size: 22, Bold: true, Alpha: 0.88, Align: AlignRight})
	c.DrawText(Text{Content: "HI " + FormatScore(high, s.Digits), X: right, Y: 58, Size: 17, Alpha: 0.55, Align: AlignRight})

	switch s.Overlay {
	case OverlayReady:
		c.DrawText(Text{Content: StartHint, X: mid, Y: s.Height - 72, Size: 20, Alpha: 0.55, Align: AlignCenter})
	case OverlayOver:
		c.DrawText(Text{Content: GameOver, X: mid, Y: s.Height/2 - 10, Size: 26, Bold: true, Alpha: 0.9, Align: AlignCenter})
		c.DrawText(Text{Content: RetryHint, X: mid, Y: s.Height/2 + 22, Size: 18, Alpha: 0.6, Align: AlignCenter})
	}
}

// FormatScore zero-pads v to digits. Wider values are kept whole.
func FormatScore(v, digits int) string {
	return fmt.Sprintf("%0*d", digits, v)
}

// Collect gathers every sprite-carrying entity in draw order: by layer, then
// by spawn order within a layer.
func Collect(w *ecs.World) []Quad {
	type entry struct {
		layer component.RenderLayer
		quad  Quad
	}
	var entries []entry
	ecs.ForEach3(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, s *component.Sprite, t *component.Transform, b *component.Body) {
			if s.Image == nil {
				return
			}
			var layer component.RenderLayer
			if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
				layer = *l
			}
			entries = append(entries, entry{
				layer: layer,
				quad:  Quad{Sprite: s.Image, X: t.X, Y: t.Y, Width: b.Width, Height: b.Height},
			})
		})

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].layer.Index != entries[j].layer.Index {
			return entries[i].layer.Index < entries[j].layer.Index
		}
		return entries[i].layer.Order < entries[j].layer.Order
	})

	quads := make([]Quad, len(entries))
	for i, e := range entries {
		quads[i] = e.quad
	}
	return quads
}
