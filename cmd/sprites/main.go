// Command sprites previews the runner's sprites at their tuned sizes, with the
// dog animated by the game's own animation system. Space toggles the jump pose.
package main

import (
	"context"
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
	"github.com/milk9111/dogrunner/ecs/system"
	"github.com/milk9111/dogrunner/tuning"
)

const (
	previewWidth  = 900
	previewHeight = 360
	tps           = 60
)

type preview struct {
	ctx    *system.Context
	world  *ecs.World
	anim   *system.AnimationSystem
	images map[*assets.Sprite]*ebiten.Image
}

func newPreview(t *tuning.Runner, sprites *assets.Sprites) *preview {
	p := &preview{
		ctx:    &system.Context{Tuning: t, Sprites: sprites, Delta: 1.0 / tps, Width: previewWidth},
		world:  ecs.NewWorld(),
		images: make(map[*assets.Sprite]*ebiten.Image),
	}
	p.ctx.Player = system.SpawnRunner(p.world, p.ctx)
	p.anim = system.NewAnimationSystem(p.ctx)
	return p
}

func (p *preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if r, ok := ecs.Get(p.world, p.ctx.Player, component.RunnerComponent.Kind()); ok {
			r.Airborne = !r.Airborne
		}
	}
	p.anim.Update(p.world)
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0xf8, 0xfa, 0xfc, 0xff})
	t := p.ctx.Tuning
	floor := float64(previewHeight - 40)

	x := 40.0
	if sprite, ok := ecs.Get(p.world, p.ctx.Player, component.SpriteComponent.Kind()); ok {
		p.draw(screen, sprite.Image, x, floor, t.Player.Width, t.Player.Height)
	}
	x += t.Player.Width + 40

	s := p.ctx.Sprites
	for _, sprite := range []*assets.Sprite{s.Tree, s.Squirrel} {
		w, h := sprite.Width*t.Patterns.FallbackScale, sprite.Height*t.Patterns.FallbackScale
		p.draw(screen, sprite, x, floor, w, h)
		x += w + 40
	}
	m := s.Mountain
	scale := (t.Backdrop.Scale.Min + t.Backdrop.Scale.Max) / 2
	p.draw(screen, m, x, floor, m.Width*scale, m.Height*scale)
}

// draw stands sprite on floor with its top-left at x.
func (p *preview) draw(screen *ebiten.Image, sprite *assets.Sprite, x, floor, w, h float64) {
	if sprite == nil {
		return
	}
	img, ok := p.images[sprite]
	if !ok {
		img = ebiten.NewImageFromImage(sprite.Image)
		p.images[sprite] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/sprite.Width, h/sprite.Height)
	op.GeoM.Translate(x, floor-h)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewWidth, previewHeight
}

func main() {
	tuningFile := flag.String("tuning", tuning.DefaultFile, "runner tuning file")
	flag.Parse()

	t, err := tuning.LoadRunner(*tuningFile)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}
	sprites, err := assets.Load(context.Background(), assets.FS, t.Sprites)
	if err != nil {
		log.Fatalf("assets: %v", err)
	}

	p := newPreview(t, sprites)
	ebiten.SetWindowSize(previewWidth, previewHeight)
	ebiten.SetWindowTitle("Dog Runner Sprites")
	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
