//go:build fastmath

package spectral

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// gammaPow computes x^gamma as exp(gamma * ln x) using fast approximations.
//
// The exact points 0, 1, gamma 0 and gamma 1 bypass the approximation, and
// results for x in (0, 1) are clamped to [0, 1] so channels never leave the
// unit range. Negative, NaN and infinite bases fall back to math.Pow so the
// special cases match the default build.
func gammaPow(x, gamma float64) float64 {
	switch {
	case gamma == 0:
		return 1
	case gamma == 1:
		return x
	case x == 0 || x == 1:
		return x
	case x > 0 && x < 1:
		v := approx.FastExp(gamma * approx.FastLog(x))
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	case x > 1 && !math.IsInf(x, 1):
		return approx.FastExp(gamma * approx.FastLog(x))
	}
	return math.Pow(x, gamma)
}
