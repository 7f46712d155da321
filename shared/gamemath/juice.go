// Package gamemath holds the small pure helpers the effect and HUD systems
// share. No ebitengine types: values in, values out.
package gamemath

import "math"

// Lerp interpolates between a and b; t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Progress returns elapsed/total clamped to [0, 1]. A non-positive total is
// already finished.
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp(elapsed/total, 0, 1)
}

// BurstOffset places particle i of n on a ring of the given radius, evenly
// spaced starting at angle zero.
func BurstOffset(i, n int, radius float64) (dx, dy float64) {
	if n <= 0 {
		return 0, 0
	}
	angle := 2 * math.Pi * float64(i) / float64(n)
	return math.Cos(angle) * radius, math.Sin(angle) * radius
}

// FadeOut keeps full opacity for the first hold fraction of a lifetime, then
// fades linearly to zero.
func FadeOut(t, hold float64) float64 {
	t = Clamp(t, 0, 1)
	if t <= hold || hold >= 1 {
		return 1
	}
	return 1 - (t-hold)/(1-hold)
}

// CenterX centers a span of width w on x, keeping it inside [0, limit].
func CenterX(x, w, limit float64) float64 {
	return Clamp(x-w/2, 0, math.Max(0, limit-w))
}
