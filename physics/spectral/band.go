package spectral

// Visible range covered by the band table, in nanometres.
const (
	MinWavelength = 380.0
	MaxWavelength = 750.0
)

// channel is one colour channel of a band: either a constant level or a
// normalised ramp that is raised to the gamma exponent.
type channel struct {
	ramp  func(lambda float64) float64
	level float64
}

func constant(v float64) channel { return channel{level: v} }

func curve(f func(lambda float64) float64) channel { return channel{ramp: f} }

func (c channel) eval(lambda, gamma float64) float64 {
	if c.ramp == nil {
		return c.level
	}
	return gammaPow(c.ramp(lambda), gamma)
}

// rising is 0 at lo and 1 at hi.
func rising(lo, hi float64) func(float64) float64 {
	return func(lambda float64) float64 {
		return (lambda - lo) / (hi - lo)
	}
}

// falling is 1 at lo and 0 at hi.
func falling(lo, hi float64) func(float64) float64 {
	return func(lambda float64) float64 {
		return -(lambda - hi) / (hi - lo)
	}
}

// violetAttenuation ramps from 0.3 at 380 nm to 1 at 440 nm.
func violetAttenuation(lambda float64) float64 {
	return 0.3 + 0.7*(lambda-380)/(440-380)
}

// redAttenuation ramps from 1 at 645 nm to 0.3 at 750 nm.
func redAttenuation(lambda float64) float64 {
	return 0.3 + 0.7*(750-lambda)/(750-645)
}

// violetRed is the red component of violet: it fades out towards 440 nm.
func violetRed(lambda float64) float64 {
	return -(lambda - 440) / (440 - 380) * violetAttenuation(lambda)
}

// band is one contiguous wavelength interval with its channel formulas.
type band struct {
	lo, hi  float64
	r, g, b channel

	// openBelow excludes lo from the array-mode mask so that a shared edge is
	// counted once.
	openBelow bool
}

// bands is ordered by ascending wavelength and covers [MinWavelength, MaxWavelength].
var bands = [...]band{
	{lo: 380, hi: 440, r: curve(violetRed), g: constant(0), b: curve(violetAttenuation)},
	{lo: 440, hi: 490, openBelow: true, r: constant(0), g: curve(rising(440, 490)), b: constant(1)},
	{lo: 490, hi: 510, openBelow: true, r: constant(0), g: constant(1), b: curve(falling(490, 510))},
	{lo: 510, hi: 580, openBelow: true, r: curve(rising(510, 580)), g: constant(1), b: constant(0)},
	{lo: 580, hi: 645, openBelow: true, r: constant(1), g: curve(falling(580, 645)), b: constant(0)},
	{lo: 645, hi: 750, openBelow: true, r: curve(redAttenuation), g: constant(0), b: constant(0)},
}

// containsClosed is the scalar-mode test: both bounds inclusive.
func (b *band) containsClosed(lambda float64) bool {
	return lambda >= b.lo && lambda <= b.hi
}

// containsMasked is the array-mode test.
func (b *band) containsMasked(lambda float64) bool {
	if b.openBelow {
		return lambda > b.lo && lambda <= b.hi
	}
	return lambda >= b.lo && lambda <= b.hi
}

func (b *band) eval(lambda, gamma float64) (r, g, bl float64) {
	return b.r.eval(lambda, gamma), b.g.eval(lambda, gamma), b.b.eval(lambda, gamma)
}
