package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"golang.org/x/sync/errgroup"
)

var ErrMissingSprite = errors.New("assets: sprite path is empty")

// Sprite is a decoded image shared by every entity drawn with it.
type Sprite struct {
	Path   string
	Image  image.Image
	Width  float64
	Height float64
}

// NewSprite wraps img, taking its natural size from its bounds.
func NewSprite(path string, img image.Image) *Sprite {
	b := img.Bounds()
	return &Sprite{
		Path:   path,
		Image:  img,
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}
}

// Sprites is the full set a runner mount needs before it can leave loading.
type Sprites struct {
	DogRun    *Sprite
	DogRunAlt *Sprite
	DogJump   *Sprite
	Tree      *Sprite
	Squirrel  *Sprite
	Mountain  *Sprite
}

// LoadSprite reads and decodes a single image from fsys.
func LoadSprite(fsys fs.FS, path string) (*Sprite, error) {
	clean := CleanPath(path)
	if clean == "" {
		return nil, ErrMissingSprite
	}
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return NewSprite(clean, img), nil
}

// Load decodes all six sprites concurrently. The first failure cancels the
// remaining loads and is returned; no partial set is ever handed back.
func Load(ctx context.Context, fsys fs.FS, paths Paths) (*Sprites, error) {
	out := &Sprites{}
	slots := []struct {
		path string
		dst  **Sprite
	}{
		{paths.DogRun, &out.DogRun},
		{paths.DogRunAlt, &out.DogRunAlt},
		{paths.DogJump, &out.DogJump},
		{paths.Tree, &out.Tree},
		{paths.Squirrel, &out.Squirrel},
		{paths.Mountain, &out.Mountain},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, slot := range slots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sprite, err := LoadSprite(fsys, slot.path)
			if err != nil {
				return err
			}
			*slot.dst = sprite
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
