package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dogrunner/common"
	"github.com/milk9111/dogrunner/runner"
	"github.com/milk9111/dogrunner/save"
	"github.com/milk9111/dogrunner/tuning"
)

func main() {
	tuningFile := flag.String("tuning", tuning.DefaultFile, "runner tuning file (bare names are looked up in tuning/ then the embedded copy)")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes on disk")
	seed := flag.Uint64("seed", 0, "random seed for obstacle patterns (0 = time based)")
	savePath := flag.String("save", "", "high score file (default under the user config dir)")
	invulnerable := flag.Bool("invulnerable", false, "practice run: obstacles never end the game")
	width := flag.Int("width", 800, "initial window width")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	t, err := tuning.LoadRunner(*tuningFile)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	game := NewGame(runner.Options{
		Tuning:       t,
		Store:        openStore(*savePath, t.Storage.Key),
		Rand:         common.NewRandom(*seed),
		Invulnerable: *invulnerable,
		Width:        float64(*width),
	})

	if *watch {
		stop := watchTuning(*tuningFile, game)
		defer stop()
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(*width, int(t.Surface.Height))
	ebiten.SetWindowTitle("dog runner")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func openStore(path, key string) save.Store {
	if path == "" {
		p, err := save.DefaultPath()
		if err != nil {
			log.Printf("save: %v; high scores last for this session only", err)
			return save.NewMemory(0)
		}
		path = p
	}
	return save.NewFile(path, key)
}

// watchTuning reloads name whenever a yaml file next to it changes and hands
// the result to the game on its update goroutine.
func watchTuning(name string, game *Game) func() {
	dir := tuning.Dir
	if filepath.Base(name) != name {
		dir = filepath.Dir(name)
	}
	w, err := tuning.NewWatcher(dir)
	if err != nil {
		log.Printf("tuning: watch %s: %v", dir, err)
		return func() {}
	}

	go func() {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(path) != filepath.Base(name) {
					continue
				}
				t, err := tuning.LoadRunner(name)
				if err != nil {
					log.Printf("tuning: reload %s: %v", path, err)
					continue
				}
				game.Post(func() { game.SetTuning(t) })
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("tuning: watch: %v", err)
			}
		}
	}()
	return func() { _ = w.Close() }
}
