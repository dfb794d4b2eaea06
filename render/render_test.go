package render

import (
	"fmt"
	"image"
	"reflect"
	"testing"

	"github.com/milk9111/dogrunner/assets"
	"github.com/milk9111/dogrunner/ecs"
	"github.com/milk9111/dogrunner/ecs/component"
)

// recorder logs every canvas call as a string.
type recorder struct {
	calls []string
	texts []Text
}

func (r *recorder) Clear(w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("clear %vx%v", w, h))
}

func (r *recorder) DrawSprite(q Quad) {
	r.calls = append(r.calls, fmt.Sprintf("sprite %s %v,%v %vx%v", q.Sprite.Path, q.X, q.Y, q.Width, q.Height))
}

func (r *recorder) DrawText(t Text) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %v,%v", t.Content, t.X, t.Y))
	r.texts = append(r.texts, t)
}

func sprite(path string) *assets.Sprite {
	return assets.NewSprite(path, image.NewRGBA(image.Rect(0, 0, 10, 10)))
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		v, digits int
		want      string
	}{
		{0, 5, "00000"},
		{42, 5, "00042"},
		{99999, 5, "99999"},
		{123456, 5, "123456"},
		{7, 3, "007"},
	}
	for _, tc := range tests {
		if got := FormatScore(tc.v, tc.digits); got != tc.want {
			t.Fatalf("FormatScore(%d, %d) = %q, want %q", tc.v, tc.digits, got, tc.want)
		}
	}
}

func TestDrawLoading(t *testing.T) {
	r := &recorder{}
	Draw(r, Scene{Width: 600, Height: 210, Overlay: OverlayLoading, Quads: []Quad{{Sprite: sprite("dog")}}})
	want := []string{"clear 600x210", `text "Loading…" 300,105`}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %q, want %q", r.calls, want)
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name    string
		overlay Overlay
		extra   []string
	}{
		{"running", OverlayNone, nil},
		{"ready", OverlayReady, []string{StartHint}},
		{"over", OverlayOver, []string{GameOver, RetryHint}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{}
			Draw(r, Scene{Width: 600, Height: 210, Score: 42.9, HighScore: 17, Digits: 5, Overlay: tc.overlay})
			var got []string
			for _, txt := range r.texts {
				got = append(got, txt.Content)
			}
			want := append([]string{"SCORE 00042", "HI 00042"}, tc.extra...)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("texts = %q, want %q", got, want)
			}
			if r.texts[0].X != 582 || r.texts[0].Align != AlignRight || r.texts[0].Y != 34 {
				t.Fatalf("score placed at %+v", r.texts[0])
			}
		})
	}
}

func TestDrawHighScoreKeepsStoredBest(t *testing.T) {
	r := &recorder{}
	Draw(r, Scene{Width: 400, Height: 210, Score: 12, HighScore: 300, Digits: 5})
	if r.texts[1].Content != "HI 00300" {
		t.Fatalf("high score text = %q", r.texts[1].Content)
	}
}

func TestDrawIsRepeatable(t *testing.T) {
	scene := Scene{
		Width: 500, Height: 210, Score: 88, Digits: 5, Overlay: OverlayOver,
		Quads: []Quad{
			{Sprite: sprite("mountain"), X: 300, Y: 40, Width: 200, Height: 150},
			{Sprite: sprite("tree"), X: 400, Y: 150, Width: 40, Height: 60},
			{Sprite: nil, X: 1, Y: 1, Width: 1, Height: 1},
			{Sprite: sprite("dog"), X: 56, Y: 158, Width: 64, Height: 52},
		},
	}
	a, b := &recorder{}, &recorder{}
	Draw(a, scene)
	Draw(b, scene)
	if !reflect.DeepEqual(a.calls, b.calls) {
		t.Fatalf("second draw differs:\n%q\n%q", a.calls, b.calls)
	}
	if len(a.calls) != 1+3+4 {
		t.Fatalf("got %d calls: %q", len(a.calls), a.calls)
	}
}

func TestCollectOrdersByLayer(t *testing.T) {
	w := ecs.NewWorld()
	add := func(path string, layer, order int) {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: float64(order)})
		_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: 1, Height: 1})
		_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: sprite(path)})
		_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer, Order: uint64(order)})
	}
	add("dog", component.LayerRunner, 0)
	add("tree-2", component.LayerObstacle, 5)
	add("mountain", component.LayerBackdrop, 9)
	add("tree-1", component.LayerObstacle, 2)

	var got []string
	for _, q := range Collect(w) {
		got = append(got, q.Sprite.Path)
	}
	want := []string{"mountain", "tree-1", "tree-2", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %q, want %q", got, want)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		width, dpr   float64
		backW, backH int
		wantScale    float64
		wantLogicalW float64
	}{
		{"dpr_one", 640, 1, 640, 210, 1, 640},
		{"retina", 640, 2, 1280, 420, 2, 640},
		{"fractional", 333, 1.5, 499, 315, 1.5, 333},
		{"missing_dpr", 500, 0, 500, 210, 1, 500},
		{"negative_dpr", 500, -2, 500, 210, 1, 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Fit(tc.width, 210, tc.dpr)
			if v.BackingWidth != tc.backW || v.BackingHeight != tc.backH || v.Scale != tc.wantScale || v.Width != tc.wantLogicalW || v.Height != 210 {
				t.Fatalf("Fit = %+v", v)
			}
		})
	}
}
