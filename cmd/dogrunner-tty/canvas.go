package main

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/render"
)

// cellAspect is how many logical pixels wide a cell is per pixel of height.
const cellAspect = 0.5

type glyph struct {
	r     rune
	style tcell.Style
}

// cellCanvas renders a scene into terminal cells. Each sprite fills the cells
// it covers with a glyph chosen by its path.
type cellCanvas struct {
	screen tcell.Screen
	glyphs map[string]glyph
	pxW    float64
	pxH    float64
}

func newCellCanvas(screen tcell.Screen, paths assets.Paths) *cellCanvas {
	base := tcell.StyleDefault
	return &cellCanvas{
		screen: screen,
		glyphs: map[string]glyph{
			assets.CleanPath(paths.DogRun):    {'@', base.Foreground(tcell.ColorOrange).Bold(true)},
			assets.CleanPath(paths.DogRunAlt): {'@', base.Foreground(tcell.ColorOrange)},
			assets.CleanPath(paths.DogJump):   {'^', base.Foreground(tcell.ColorOrange).Bold(true)},
			assets.CleanPath(paths.Tree):      {'#', base.Foreground(tcell.ColorGreen)},
			assets.CleanPath(paths.Squirrel):  {'s', base.Foreground(tcell.ColorSaddleBrown)},
			assets.CleanPath(paths.Mountain):  {'.', base.Foreground(tcell.ColorGray)},
		},
		pxW: 1,
		pxH: 1,
	}
}

// LogicalWidth is the surface width that keeps cells at cellAspect for a
// surface height of height.
func (c *cellCanvas) LogicalWidth(height float64) float64 {
	cols, rows := c.screen.Size()
	if rows <= 0 {
		return float64(cols)
	}
	return float64(cols) * (height / float64(rows)) * cellAspect
}

func (c *cellCanvas) Clear(width, height float64) {
	cols, rows := c.screen.Size()
	c.screen.Clear()
	if cols > 0 && rows > 0 {
		c.pxW = width / float64(cols)
		c.pxH = height / float64(rows)
	}
}

func (c *cellCanvas) DrawSprite(q render.Quad) {
	g, ok := c.glyphs[q.Sprite.Path]
	if !ok {
		g = glyph{'?', tcell.StyleDefault}
	}
	x0, y0 := c.cell(q.X, q.Y)
	x1, y1 := c.cell(q.X+q.Width, q.Y+q.Height)
	cols, rows := c.screen.Size()
	for y := max(y0, 0); y < min(max(y1, y0+1), rows); y++ {
		for x := max(x0, 0); x < min(max(x1, x0+1), cols); x++ {
			c.screen.SetContent(x, y, g.r, nil, g.style)
		}
	}
}

func (c *cellCanvas) DrawText(t render.Text) {
	x, y := c.cell(t.X, t.Y)
	y--
	n := utf8.RuneCountInString(t.Content)
	switch t.Align {
	case render.AlignCenter:
		x -= n / 2
	case render.AlignRight:
		x -= n
	}
	style := tcell.StyleDefault.Bold(t.Bold)
	if t.Alpha < 0.7 {
		style = style.Dim(true)
	}
	for _, r := range t.Content {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (c *cellCanvas) cell(x, y float64) (int, int) {
	return int(math.Floor(x / c.pxW)), int(math.Floor(y / c.pxH))
}
