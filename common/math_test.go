package common

import "testing"

func TestLerpAndClamp(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"lerp_start", Lerp(260, 480, 0), 260},
		{"lerp_end", Lerp(260, 480, 1), 480},
		{"lerp_mid", Lerp(0, 10, 0.5), 5},
		{"clamp_low", clamp(-3, 0, 1), 0},
		{"clamp_high", clamp(7, 0, 1), 1},
		{"clamp01_inside", Clamp01(0.25), 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func TestBetweenAndChance(t *testing.T) {
	if got := Between(fixedRandom(0.5), 6.5, 12); got != 9.25 {
		t.Fatalf("Between = %v, want 9.25", got)
	}
	if got := Between(fixedRandom(0), -8, 8); got != -8 {
		t.Fatalf("Between at 0 = %v, want -8", got)
	}
	if !Chance(fixedRandom(0.44), 0.45) {
		t.Fatalf("0.44 should pass a 0.45 chance")
	}
	if Chance(fixedRandom(0.45), 0.45) {
		t.Fatalf("0.45 should not pass a 0.45 chance")
	}
}

func TestNewRandomIsDeterministic(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}
