package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/dogrunner/render"
)

var launcherBackground = color.NRGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}

type launcherLabels struct {
	highScore *widget.Text
}

func (l *launcherLabels) SetHighScore(v int) {
	l.highScore.Label = "Best " + render.FormatScore(v, 5)
}

// NewLauncherUI builds the host panel the runner is mounted from: a title,
// the stored best score, and Play and Quit buttons.
func NewLauncherUI(g *Game) (*ebitenui.UI, *launcherLabels) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 230})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Dog Runner", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	best := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	playBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
		widget.ButtonOpts.Text("Play", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.Play()
		}),
	)
	quitBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
		widget.ButtonOpts.Text("Quit", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.Quit()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(best)
	panel.AddChild(playBtn)
	panel.AddChild(quitBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, &launcherLabels{highScore: best}
}
