package spectral

import (
	"context"
	"log/slog"

	"github.com/cwbudde/algo-plasma/internal/numeric"
	"github.com/cwbudde/algo-plasma/internal/scratch"
	"github.com/cwbudde/algo-vecmath"
)

// Scratch plane layout for MapArray.
const (
	planeAccR = iota
	planeAccG
	planeAccB
	planeR
	planeG
	planeB
	planeMask
	planeCount
)

var planePool = scratch.NewPool()

// MapArray returns the colours of every wavelength in a.
//
// The result has shape (a.Shape..., 3) with channels in [0, 1]. Every band is
// evaluated for every element; non-finite values produced outside a band's
// own interval are zeroed before the band is masked and accumulated. The first
// band is masked with [380, 440], the others with (lo, hi].
//
// MapArray panics with an error wrapping [ErrShape] if a.Shape has a negative
// dimension or does not describe len(a.Data) elements.
func (m *Mapper) MapArray(a Array) Array {
	if err := checkShape(a.Shape, len(a.Data)); err != nil {
		panic(err)
	}

	shape := make([]int, len(a.Shape)+1)
	copy(shape, a.Shape)
	shape[len(a.Shape)] = Channels

	n := len(a.Data)
	out := Array{Shape: shape, Data: make([]float64, n*Channels)}
	if n == 0 {
		return out
	}

	pl := planePool.Get(planeCount, n)
	defer planePool.Put(pl)

	mask := pl.Plane(planeMask)
	replaced := 0

	for i := range bands {
		b := &bands[i]
		r, g, bl := pl.Plane(planeR), pl.Plane(planeG), pl.Plane(planeB)

		for k, lambda := range a.Data {
			r[k], g[k], bl[k] = b.eval(lambda, m.gamma)

			if b.containsMasked(lambda) {
				mask[k] = 1
			} else {
				mask[k] = 0
			}
		}

		for c, plane := range [...][]float64{r, g, bl} {
			replaced += numeric.ZeroNonFinite(plane)
			vecmath.MulBlockInPlace(plane, mask)
			vecmath.AddBlockInPlace(pl.Plane(planeAccR+c), plane)
		}
	}

	accR, accG, accB := pl.Plane(planeAccR), pl.Plane(planeAccG), pl.Plane(planeAccB)
	for k := range n {
		out.Data[3*k] = accR[k]
		out.Data[3*k+1] = accG[k]
		out.Data[3*k+2] = accB[k]
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("spectral: mapped array",
			slog.Any("shape", a.Shape),
			slog.Int("elements", n),
			slog.Float64("gamma", m.gamma),
			slog.Int("zeroed", replaced))
	}

	return out
}

// MapArray is a convenience wrapper around [New] and [Mapper.MapArray].
func MapArray(a Array, opts ...Option) Array {
	return New(opts...).MapArray(a)
}
