package main

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dogrunner/render"
	"github.com/milk9111/dogrunner/runner"
	"github.com/milk9111/dogrunner/tuning"
)

// Game is the ebiten host. It shows the launcher until Play mounts a runner
// and goes back to it when the runner asks to exit.
type Game struct {
	frames   *runner.FrameQueue
	launcher *ebitenui.UI
	labels   *launcherLabels
	canvas   *screenCanvas

	opts     runner.Options
	runner   *runner.Game
	viewport render.Viewport

	exitRequested bool
	quit          bool
}

func NewGame(opts runner.Options) *Game {
	g := &Game{
		frames: runner.NewFrameQueue(time.Now()),
		canvas: newScreenCanvas(),
		opts:   opts,
	}
	g.opts.Loop = g.frames
	g.opts.OnExit = func() { g.exitRequested = true }
	g.viewport = render.Fit(opts.Width, g.height(), 1)
	g.launcher, g.labels = NewLauncherUI(g)
	g.refreshLauncher()
	return g
}

func (g *Game) height() float64 {
	if g.opts.Tuning == nil {
		return tuning.Default().Surface.Height
	}
	return g.opts.Tuning.Surface.Height
}

// Play mounts a fresh runner.
func (g *Game) Play() {
	if g.runner != nil {
		return
	}
	opts := g.opts
	opts.Width = g.viewport.Width
	g.runner = runner.Mount(context.Background(), opts)
}

// Quit ends the program after the current update.
func (g *Game) Quit() {
	g.quit = true
}

// SetTuning applies a reloaded tuning to the next run.
func (g *Game) SetTuning(t *tuning.Runner) {
	g.opts.Tuning = t
	if g.runner != nil {
		g.runner.SetTuning(t)
	}
	log.Printf("tuning: reloaded")
}

// Post runs fn on the update goroutine.
func (g *Game) Post(fn func()) {
	g.frames.Post(fn)
}

func (g *Game) unmount() {
	if g.runner == nil {
		return
	}
	g.runner.Unmount()
	g.runner = nil
	g.refreshLauncher()
}

func (g *Game) refreshLauncher() {
	best := 0
	if g.opts.Store != nil {
		if v, err := g.opts.Store.Load(); err == nil {
			best = v
		}
	}
	g.labels.SetHighScore(best)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if g.runner == nil {
		g.frames.Tick(time.Now())
		g.launcher.Update()
		return nil
	}

	g.handleInput()
	g.frames.Tick(time.Now())

	if g.exitRequested {
		g.exitRequested = false
		g.unmount()
	}
	return nil
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.runner.HandleExit()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.runner.HandleAction()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.onSurface(ebiten.CursorPosition()) {
		g.runner.HandleAction()
		return
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if g.onSurface(ebiten.TouchPosition(id)) {
			g.runner.HandleAction()
			return
		}
	}
}

func (g *Game) onSurface(x, y int) bool {
	return image.Pt(x, y).In(image.Rect(0, 0, g.viewport.BackingWidth, g.viewport.BackingHeight))
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.runner == nil {
		screen.Fill(launcherBackground)
		g.launcher.Draw(screen)
		return
	}
	g.canvas.Bind(screen, g.viewport.Scale)
	g.runner.Draw(g.canvas)
}

// LayoutF keeps the logical height fixed and follows the window width. The
// screen is sized in device pixels so sprites stay sharp on HiDPI displays.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.viewport = render.Fit(outsideWidth, g.height(), ebiten.Monitor().DeviceScaleFactor())
	if g.runner != nil {
		g.runner.Resize(g.viewport.Width)
	}
	return float64(g.viewport.BackingWidth), float64(g.viewport.BackingHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
