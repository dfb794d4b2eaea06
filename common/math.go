package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func Clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
