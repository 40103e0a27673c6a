//go:build !fastmath

package spectral

import "math"

// gammaPow raises a normalised intensity to the gamma exponent.
// Negative bases yield NaN.
func gammaPow(x, gamma float64) float64 {
	return math.Pow(x, gamma)
}
