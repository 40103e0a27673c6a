// Package numeric holds small float64 helpers shared by the physics packages.
package numeric

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, using a relative
// tolerance once either value exceeds 1 in magnitude.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Clamp01 limits v to [0, 1]. NaN is returned unchanged.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ZeroNonFinite replaces every NaN and ±Inf in buf with 0 and returns the
// number of replaced elements.
func ZeroNonFinite(buf []float64) int {
	n := 0
	for i, v := range buf {
		if !IsFinite(v) {
			buf[i] = 0
			n++
		}
	}
	return n
}

// Product returns the product of dims, or 1 for an empty list.
func Product(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// SweepLen returns the number of samples [Sweep] yields for the same
// arguments, or 0 for an empty sweep. It is a float64 so that callers can
// bound a sweep before allocating it.
func SweepLen(from, to, step float64) float64 {
	if !IsFinite(from) || !IsFinite(to) || !IsFinite(step) || step <= 0 || to < from {
		return 0
	}
	return math.Floor((to-from)/step+0.5) + 1
}

// Sweep returns from, from+step, ... up to and including to (within half a
// step). It returns nil for a non-positive step, a reversed range or
// non-finite bounds.
func Sweep(from, to, step float64) []float64 {
	n := SweepLen(from, to, step)
	if n == 0 {
		return nil
	}
	out := make([]float64, int(n))
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}
