// Package runner drives a dog runner mount: asset loading, the
// loading/ready/running/over state machine, the frame loop and high score
// persistence.
package runner

import (
	"context"
	"io/fs"
	"log"
	"math"
	"time"

	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/render"
	"github.com/milk9111/dogrunner/save"
	"github.com/milk9111/dogrunner/tuning"
)

type State int

const (
	StateLoading State = iota
	StateReady
	StateRunning
	StateOver
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// FrameID names a requested frame. Zero means no frame.
type FrameID uint64

// Loop is the host's frame scheduler. Every callback it runs, frame or
// posted, runs on the same goroutine as the Game's other methods.
type Loop interface {
	// RequestFrame runs fn once on the next frame with a monotonic timestamp.
	RequestFrame(fn func(ts time.Duration)) FrameID
	// CancelFrame drops a pending frame; fn will not run.
	CancelFrame(id FrameID)
	// Post runs fn on the loop goroutine. It is safe from any goroutine.
	Post(fn func())
}

type Options struct {
	Tuning *tuning.Runner
	Assets fs.FS
	Loop   Loop
	Store  save.Store
	Rand   common.Random
	// OnExit asks the host to dismiss the game.
	OnExit       func()
	Invulnerable bool
	Width        float64
}

const fallbackDelta = 1.0 / 60

type Game struct {
	loop   Loop
	store  save.Store
	rng    common.Random
	onExit func()

	tuning  *tuning.Runner
	pending *tuning.Runner

	state     State
	sim       *Sim
	highScore int
	width     float64
	invuln    bool

	frame    FrameID
	last     time.Duration
	haveLast bool

	cancel    context.CancelFunc
	unmounted bool
	failed    bool
}

// Mount reads the high score, starts loading sprites and returns a game in
// the loading state. A load failure calls OnExit once.
func Mount(ctx context.Context, opts Options) *Game {
	t := opts.Tuning
	if t == nil {
		t = tuning.Default()
	}
	fsys := opts.Assets
	if fsys == nil {
		fsys = assets.FS
	}
	rng := opts.Rand
	if rng == nil {
		rng = common.NewRandom(uint64(time.Now().UnixNano()))
	}

	g := &Game{
		loop:   opts.Loop,
		store:  opts.Store,
		rng:    rng,
		onExit: opts.OnExit,
		tuning: t,
		state:  StateLoading,
		width:  opts.Width,
		invuln: opts.Invulnerable,
	}
	g.highScore = g.readHighScore()

	loadCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	paths := t.Sprites
	go func() {
		sprites, err := assets.Load(loadCtx, fsys, paths)
		g.loop.Post(func() { g.loaded(sprites, err) })
	}()
	return g
}

func (g *Game) readHighScore() int {
	if g.store == nil {
		return 0
	}
	v, err := g.store.Load()
	if err != nil {
		log.Printf("runner: read high score: %v", err)
		return 0
	}
	return max(v, 0)
}

func (g *Game) loaded(sprites *assets.Sprites, err error) {
	if g.unmounted || g.state != StateLoading {
		return
	}
	if err != nil {
		log.Printf("runner: load sprites: %v", err)
		g.fail()
		return
	}
	g.sim = NewSim(g.tuning, sprites, g.rng)
	g.sim.SetInvulnerable(g.invuln)
	g.state = StateReady
}

func (g *Game) fail() {
	if g.failed {
		return
	}
	g.failed = true
	if g.onExit != nil {
		g.onExit()
	}
}

// HandleAction is the single action input: start from ready or over, jump
// while running, nothing while loading.
func (g *Game) HandleAction() {
	switch g.state {
	case StateReady, StateOver:
		g.startLoop()
	case StateRunning:
		g.sim.Jump()
	}
}

// HandleExit asks the host to dismiss the game without touching its state.
func (g *Game) HandleExit() {
	if g.onExit != nil {
		g.onExit()
	}
}

// Resize records a new logical width. The simulation does not advance.
func (g *Game) Resize(width float64) {
	g.width = width
}

// SetTuning queues t for the next run.
func (g *Game) SetTuning(t *tuning.Runner) {
	if t != nil {
		g.pending = t
	}
}

func (g *Game) startLoop() {
	if g.unmounted {
		return
	}
	if g.pending != nil {
		g.tuning, g.pending = g.pending, nil
		g.sim.SetTuning(g.tuning)
	}
	g.sim.Reset()
	g.state = StateRunning
	g.haveLast = false
	g.cancelFrame()
	g.frame = g.loop.RequestFrame(g.step)
}

func (g *Game) step(ts time.Duration) {
	g.frame = 0
	if g.unmounted || g.state != StateRunning {
		return
	}

	dt := fallbackDelta
	if g.haveLast && ts > g.last {
		dt = (ts - g.last).Seconds()
	}
	g.last, g.haveLast = ts, true

	if g.sim.Step(dt, g.width) {
		g.endGame()
		return
	}
	g.frame = g.loop.RequestFrame(g.step)
}

func (g *Game) endGame() {
	if g.state != StateRunning {
		return
	}
	g.updateHighScore()
	g.state = StateOver
	g.cancelFrame()
}

func (g *Game) updateHighScore() {
	score := int(math.Floor(g.sim.Score()))
	if score <= g.highScore {
		return
	}
	g.highScore = score
	if g.store == nil {
		return
	}
	if err := g.store.Save(score); err != nil {
		log.Printf("runner: save high score: %v", err)
	}
}

func (g *Game) cancelFrame() {
	if g.frame != 0 {
		g.loop.CancelFrame(g.frame)
		g.frame = 0
	}
}

// Unmount stops the frame loop and abandons any load still in flight. No
// callback of this game runs afterwards.
func (g *Game) Unmount() {
	if g.unmounted {
		return
	}
	g.unmounted = true
	g.cancelFrame()
	if g.cancel != nil {
		g.cancel()
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) HighScore() int {
	return g.highScore
}

// Score is the current run's score, zero before the first run.
func (g *Game) Score() float64 {
	if g.sim == nil {
		return 0
	}
	return g.sim.Score()
}

// Sim is nil until sprites have loaded.
func (g *Game) Sim() *Sim {
	return g.sim
}

func (g *Game) Width() float64 {
	return g.width
}

func (g *Game) Height() float64 {
	return g.tuning.Surface.Height
}

// Scene snapshots everything needed to draw the current frame.
func (g *Game) Scene() render.Scene {
	s := render.Scene{
		Width:     g.width,
		Height:    g.Height(),
		HighScore: g.highScore,
		Digits:    g.tuning.Score.Digits,
	}
	switch g.state {
	case StateLoading:
		s.Overlay = render.OverlayLoading
		return s
	case StateReady:
		s.Overlay = render.OverlayReady
	case StateOver:
		s.Overlay = render.OverlayOver
	}
	s.Quads = g.sim.Quads()
	s.Score = g.sim.Score()
	return s
}

// Draw renders the current state onto c.
func (g *Game) Draw(c render.Canvas) {
	render.Draw(c, g.Scene())
}
