// Command dogrunner-tty plays the dog runner in a terminal.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/runner"
	"github.com/milk9111/dogrunner/save"
	"github.com/milk9111/dogrunner/tuning"
)

func main() {
	tuningFile := flag.String("tuning", tuning.DefaultFile, "runner tuning file")
	seed := flag.Uint64("seed", 0, "random seed for obstacle patterns (0 = time based)")
	savePath := flag.String("save", "", "high score file (default under the user config dir)")
	invulnerable := flag.Bool("invulnerable", false, "practice run: obstacles never end the game")
	logFile := flag.String("log", "", "write logs here instead of discarding them")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	t, err := tuning.LoadRunner(*tuningFile)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("tty: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("tty: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	if *logFile == "" {
		log.SetOutput(io.Discard)
	}

	run(screen, runner.Options{
		Tuning:       t,
		Store:        openStore(*savePath, t.Storage.Key),
		Rand:         common.NewRandom(*seed),
		Invulnerable: *invulnerable,
	})
}

func openStore(path, key string) save.Store {
	if path == "" {
		p, err := save.DefaultPath()
		if err != nil {
			log.Printf("save: %v", err)
			return save.NewMemory(0)
		}
		path = p
	}
	return save.NewFile(path, key)
}

// run drives one mount until the player exits.
func run(screen tcell.Screen, opts runner.Options) {
	canvas := newCellCanvas(screen, opts.Tuning.Sprites)
	frames := runner.NewFrameQueue(time.Now())

	done := make(chan struct{})
	var once sync.Once
	opts.Loop = frames
	opts.OnExit = func() { once.Do(func() { close(done) }) }
	opts.Width = canvas.LogicalWidth(opts.Tuning.Surface.Height)

	game := runner.Mount(context.Background(), opts)
	defer game.Unmount()

	events := make(chan tcell.Event, 16)
	go forwardEvents(screen, events, done)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	input := &inputState{}
	for {
		select {
		case <-done:
			return
		case ev := <-events:
			input.handle(game, canvas, ev)
		case now := <-ticker.C:
			frames.Tick(now)
			game.Draw(canvas)
			screen.Show()
		}
	}
}

// forwardEvents pumps screen events into events until the screen is finalized
// or done closes.
func forwardEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

type inputState struct {
	buttons tcell.ButtonMask
}

func (in *inputState) handle(game *runner.Game, canvas *cellCanvas, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			game.HandleExit()
		case tcell.KeyUp:
			game.HandleAction()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ', 'k':
				game.HandleAction()
			case 'q':
				game.HandleExit()
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && in.buttons&tcell.Button1 == 0 {
			game.HandleAction()
		}
		in.buttons = ev.Buttons()
	case *tcell.EventResize:
		game.Resize(canvas.LogicalWidth(game.Height()))
	}
}
