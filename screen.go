package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/render"
	"golang.org/x/image/font/basicfont"
)

var surfaceBackground = color.NRGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}

// fontScale maps overlay sizes onto the wide pixel face.
const fontScale = 0.7

// screenCanvas draws render calls onto the ebiten screen, scaling logical
// pixels by the device scale.
type screenCanvas struct {
	dst      *ebiten.Image
	scale    float64
	images   map[*assets.Sprite]*ebiten.Image
	source   *text.GoTextFaceSource
	fallback text.Face
}

func newScreenCanvas() *screenCanvas {
	c := &screenCanvas{
		scale:    1,
		images:   make(map[*assets.Sprite]*ebiten.Image),
		fallback: text.NewGoXFace(basicfont.Face7x13),
	}
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		log.Printf("screen: load font: %v", err)
	} else {
		c.source = s
	}
	return c
}

func (c *screenCanvas) Bind(dst *ebiten.Image, scale float64) {
	c.dst = dst
	if scale <= 0 {
		scale = 1
	}
	c.scale = scale
}

func (c *screenCanvas) Clear(width, height float64) {
	c.dst.Fill(surfaceBackground)
}

func (c *screenCanvas) DrawSprite(q render.Quad) {
	img := c.image(q.Sprite)
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(q.Width/float64(b.Dx()), q.Height/float64(b.Dy()))
	op.GeoM.Translate(q.X, q.Y)
	op.GeoM.Scale(c.scale, c.scale)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

func (c *screenCanvas) DrawText(t render.Text) {
	face := c.face(t.Size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X*c.scale, t.Y*c.scale-face.Metrics().HAscent)
	switch t.Align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case render.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.ColorScale.ScaleWithColor(render.Ink)
	op.ColorScale.ScaleAlpha(float32(t.Alpha))
	text.Draw(c.dst, t.Content, face, op)
	if t.Bold {
		op.GeoM.Translate(c.scale*0.75, 0)
		text.Draw(c.dst, t.Content, face, op)
	}
}

func (c *screenCanvas) face(size float64) text.Face {
	if c.source == nil {
		return c.fallback
	}
	return &text.GoTextFace{Source: c.source, Size: size * fontScale * c.scale}
}

func (c *screenCanvas) image(s *assets.Sprite) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.Image)
	c.images[s] = img
	return img
}
