package runner

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"math"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/ecs/component"
	"github.com/milk9111/dogrunner/render"
	"github.com/milk9111/dogrunner/save"
	"github.com/milk9111/dogrunner/tuning"
)

// fakeLoop runs frames only when the test fires them.
type fakeLoop struct {
	mu      sync.Mutex
	next    FrameID
	pending map[FrameID]func(time.Duration)
	posted  chan func()
	now     time.Duration
}

func newFakeLoop() *fakeLoop {
	return &fakeLoop{pending: map[FrameID]func(time.Duration){}, posted: make(chan func(), 8)}
}

func (l *fakeLoop) RequestFrame(fn func(time.Duration)) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	l.pending[l.next] = fn
	return l.next
}

func (l *fakeLoop) CancelFrame(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pending, id)
}

func (l *fakeLoop) Post(fn func()) {
	l.posted <- fn
}

func (l *fakeLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Fire advances the clock by step and runs every pending frame once.
func (l *fakeLoop) Fire(step time.Duration) int {
	l.mu.Lock()
	l.now += step
	fns := l.pending
	l.pending = map[FrameID]func(time.Duration){}
	now := l.now
	l.mu.Unlock()
	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}

func (l *fakeLoop) RunPosted(t *testing.T) {
	t.Helper()
	select {
	case fn := <-l.posted:
		fn()
	case <-time.After(5 * time.Second):
		t.Fatal("nothing was posted to the loop")
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func spriteFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"dino/dog.png":         {Data: pngBytes(t, 64, 52)},
		"dino/dog-2.png":       {Data: pngBytes(t, 64, 52)},
		"dino/dog-jumping.png": {Data: pngBytes(t, 64, 52)},
		"dino/tree.png":        {Data: pngBytes(t, 180, 260)},
		"dino/squirrel.png":    {Data: pngBytes(t, 200, 220)},
		"dino/mountains.png":   {Data: pngBytes(t, 600, 280)},
	}
}

type harness struct {
	game  *Game
	loop  *fakeLoop
	store *save.Memory
	exits int
}

func mount(t *testing.T, fsys fstest.MapFS, high int) *harness {
	t.Helper()
	h := &harness{loop: newFakeLoop(), store: save.NewMemory(high)}
	h.game = Mount(context.Background(), Options{
		Assets: fsys,
		Loop:   h.loop,
		Store:  h.store,
		Rand:   common.NewRandom(3),
		OnExit: func() { h.exits++ },
		Width:  640,
	})
	t.Cleanup(h.game.Unmount)
	return h
}

func mountReady(t *testing.T, high int) *harness {
	t.Helper()
	h := mount(t, spriteFS(t), high)
	h.loop.RunPosted(t)
	if got := h.game.State(); got != StateReady {
		t.Fatalf("state after load = %v, want ready", got)
	}
	return h
}

func TestMountLoadsThenReady(t *testing.T) {
	h := mount(t, spriteFS(t), 0)
	if h.game.State() != StateLoading {
		t.Fatalf("state = %v before load resolved", h.game.State())
	}
	if h.game.Scene().Overlay != render.OverlayLoading {
		t.Fatal("loading scene has no loading overlay")
	}
	h.game.HandleAction()
	if h.game.State() != StateLoading || h.loop.Pending() != 0 {
		t.Fatal("action during loading started the game")
	}

	h.loop.RunPosted(t)
	if h.game.State() != StateReady {
		t.Fatalf("state = %v, want ready", h.game.State())
	}
	if h.game.Scene().Overlay != render.OverlayReady {
		t.Fatal("ready scene has no start hint")
	}
	if h.exits != 0 {
		t.Fatalf("onExit called %d times", h.exits)
	}
}

func TestActionStartsFreshRun(t *testing.T) {
	h := mountReady(t, 0)
	h.game.HandleAction()

	if h.game.State() != StateRunning {
		t.Fatalf("state = %v, want running", h.game.State())
	}
	sim := h.game.Sim()
	if sim.Score() != 0 || sim.Obstacles() != 0 || sim.Backdrops() != 0 {
		t.Fatalf("run not reset: score %v obstacles %d backdrops %d", sim.Score(), sim.Obstacles(), sim.Backdrops())
	}
	p := sim.Player()
	if p.Y != 210-52 || p.Airborne || p.VY != 0 {
		t.Fatalf("player = %+v", p)
	}
	if h.loop.Pending() != 1 {
		t.Fatalf("pending frames = %d, want 1", h.loop.Pending())
	}
}

func TestScoreIncreasesEveryFrame(t *testing.T) {
	h := mountReady(t, 0)
	h.game.Sim().SetInvulnerable(true)
	h.game.HandleAction()

	prev := h.game.Score()
	for i := 0; i < 600; i++ {
		if h.loop.Fire(16*time.Millisecond) != 1 {
			t.Fatalf("frame %d: loop not re-armed", i)
		}
		got := h.game.Score()
		if got <= prev {
			t.Fatalf("frame %d: score %v did not increase from %v", i, got, prev)
		}
		prev = got
	}
}

func TestNoDoubleJump(t *testing.T) {
	h := mountReady(t, 0)
	h.game.HandleAction()
	h.game.HandleAction()
	p := h.game.Sim().Player()
	if !p.Airborne || p.VY != -720 {
		t.Fatalf("after jump: %+v", p)
	}

	h.loop.Fire(16 * time.Millisecond)
	before := h.game.Sim().Player().VY
	h.game.HandleAction()
	if got := h.game.Sim().Player().VY; got != before {
		t.Fatalf("air jump changed vy %v -> %v", before, got)
	}
}

func TestCollisionEndsRunAndSavesHighScore(t *testing.T) {
	tests := []struct {
		name     string
		previous int
	}{
		{"beats_previous", 3},
		{"keeps_previous", 100000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := mountReady(t, tc.previous)
			h.game.HandleAction()
			for i := 0; i < 30; i++ {
				h.loop.Fire(16 * time.Millisecond)
			}

			sim := h.game.Sim()
			p := sim.Player()
			if !sim.SpawnObstacle(component.ObstacleTree, 0.25, p.X) {
				t.Fatal("spawn failed")
			}
			h.loop.Fire(16 * time.Millisecond)

			if h.game.State() != StateOver {
				t.Fatalf("state = %v, want over", h.game.State())
			}
			if h.loop.Pending() != 0 {
				t.Fatal("frame still pending after game over")
			}
			want := max(tc.previous, int(math.Floor(sim.Score())))
			if h.store.Value() != want || h.game.HighScore() != want {
				t.Fatalf("stored %d, game %d, want %d", h.store.Value(), h.game.HighScore(), want)
			}

			scoreAtHit := sim.Score()
			h.loop.Fire(16 * time.Millisecond)
			if sim.Score() != scoreAtHit {
				t.Fatal("score moved after game over")
			}
			if h.game.Scene().Overlay != render.OverlayOver {
				t.Fatal("over scene has no game over overlay")
			}

			h.game.HandleAction()
			if h.game.State() != StateRunning || sim.Score() != 0 || sim.Obstacles() != 0 {
				t.Fatal("retry did not start a fresh run")
			}
		})
	}
}

func TestHighScoreNeverDrops(t *testing.T) {
	h := mountReady(t, 0)
	best := 0
	for run := 0; run < 4; run++ {
		h.game.HandleAction()
		for i := 0; i < 20*(4-run); i++ {
			h.loop.Fire(16 * time.Millisecond)
		}
		sim := h.game.Sim()
		sim.SpawnObstacle(component.ObstacleSquirrel, 0.2, sim.Player().X)
		h.loop.Fire(16 * time.Millisecond)
		if h.game.State() != StateOver {
			t.Fatalf("run %d did not end", run)
		}
		best = max(best, int(math.Floor(sim.Score())))
		if h.game.HighScore() != best || h.store.Value() != best {
			t.Fatalf("run %d: high score %d stored %d want %d", run, h.game.HighScore(), h.store.Value(), best)
		}
	}
	if h.store.Saves() != 1 {
		t.Fatalf("saves = %d, want only the first (best) run saved", h.store.Saves())
	}
}

func TestAssetFailureExitsOnce(t *testing.T) {
	fsys := spriteFS(t)
	delete(fsys, "dino/squirrel.png")
	h := mount(t, fsys, 0)
	h.loop.RunPosted(t)

	if h.exits != 1 {
		t.Fatalf("onExit called %d times, want 1", h.exits)
	}
	if h.game.State() != StateLoading {
		t.Fatalf("state = %v after failed load", h.game.State())
	}
	h.game.HandleAction()
	if h.game.State() != StateLoading || h.exits != 1 {
		t.Fatal("failed mount reacted to action")
	}
}

func TestUnmountBeforeLoadResolves(t *testing.T) {
	h := mount(t, spriteFS(t), 0)
	h.game.Unmount()
	h.loop.RunPosted(t)
	if h.game.State() != StateLoading || h.exits != 0 {
		t.Fatalf("late load result applied: state %v exits %d", h.game.State(), h.exits)
	}
}

func TestUnmountCancelsFrame(t *testing.T) {
	h := mountReady(t, 0)
	h.game.HandleAction()
	h.loop.Fire(16 * time.Millisecond)
	h.game.Unmount()
	if h.loop.Pending() != 0 {
		t.Fatal("frame pending after unmount")
	}
	if h.loop.Fire(16*time.Millisecond) != 0 {
		t.Fatal("a frame fired after unmount")
	}
}

func TestExitDoesNotChangeState(t *testing.T) {
	h := mountReady(t, 0)
	h.game.HandleAction()
	h.game.HandleExit()
	h.game.HandleExit()
	if h.exits != 2 || h.game.State() != StateRunning {
		t.Fatalf("exits %d state %v", h.exits, h.game.State())
	}
}

func TestStoreErrorsAreSwallowed(t *testing.T) {
	loop := newFakeLoop()
	store := save.NewMemory(50)
	store.LoadErr = errors.New("storage disabled")
	store.SaveErr = errors.New("quota")
	g := Mount(context.Background(), Options{
		Assets: spriteFS(t),
		Loop:   loop,
		Store:  store,
		Rand:   common.NewRandom(1),
		Width:  640,
	})
	defer g.Unmount()
	if g.HighScore() != 0 {
		t.Fatalf("unreadable store gave high score %d", g.HighScore())
	}
	loop.RunPosted(t)
	g.HandleAction()
	for i := 0; i < 60; i++ {
		loop.Fire(16 * time.Millisecond)
	}
	g.Sim().SpawnObstacle(component.ObstacleTree, 0.25, g.Sim().Player().X)
	loop.Fire(16 * time.Millisecond)
	if g.State() != StateOver || g.HighScore() == 0 {
		t.Fatalf("state %v high %d", g.State(), g.HighScore())
	}
	if store.Value() != 50 {
		t.Fatalf("failed save changed the store to %d", store.Value())
	}
}

func TestFirstFrameUsesFallbackDelta(t *testing.T) {
	h := mountReady(t, 0)
	h.game.Sim().SetInvulnerable(true)
	h.game.HandleAction()
	h.loop.Fire(5 * time.Second)
	want := fallbackDelta * h.game.tuning.Score.BaseRate
	if got := h.game.Score(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("first frame score %v, want %v", got, want)
	}
	h.loop.Fire(0)
	tun := h.game.tuning
	want += fallbackDelta * (tun.Score.BaseRate + want/tun.Difficulty.Ceiling*tun.Score.DifficultyBonus)
	if got := h.game.Score(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("zero delta frame score %v, want %v", got, want)
	}
}

func TestResizeDoesNotAdvance(t *testing.T) {
	h := mountReady(t, 0)
	h.game.HandleAction()
	h.loop.Fire(16 * time.Millisecond)
	score := h.game.Score()
	h.game.Resize(1024)
	if h.game.Score() != score || h.game.Scene().Width != 1024 {
		t.Fatal("resize advanced the run or kept the old width")
	}
}

func TestTuningSwapWaitsForNextRun(t *testing.T) {
	h := mountReady(t, 0)
	h.game.HandleAction()

	next := tuning.Default()
	next.Player.JumpVelocity = -900
	h.game.SetTuning(next)

	h.game.HandleAction()
	if got := h.game.Sim().Player().VY; got != -720 {
		t.Fatalf("mid-run jump used new tuning: %v", got)
	}

	h.game.Sim().SpawnObstacle(component.ObstacleTree, 0.25, h.game.Sim().Player().X)
	for i := 0; i < 5 && h.game.State() == StateRunning; i++ {
		h.loop.Fire(16 * time.Millisecond)
	}
	if h.game.State() != StateOver {
		t.Fatalf("state = %v", h.game.State())
	}
	h.game.HandleAction()
	h.game.HandleAction()
	if got := h.game.Sim().Player().VY; got != -900 {
		t.Fatalf("new run jump = %v, want -900", got)
	}
}
