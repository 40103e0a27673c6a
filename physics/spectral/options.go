package spectral

import "math"

// DefaultGamma is the gamma exponent used when no option overrides it.
const DefaultGamma = 0.8

// Option configures a [Mapper].
type Option func(*config)

type config struct {
	gamma float64
}

func defaultConfig() config {
	return config{gamma: DefaultGamma}
}

// WithGamma sets the exponent applied to ramped channels. Values below 1
// lift mid intensities. Negative and non-finite values are ignored.
//
// Ramps lie in [0, 1], so any gamma >= 0 keeps channels in [0, 1]. A negative
// gamma would send ramps near 0 towards +Inf, past what 8-bit output can hold;
// rejecting it is what keeps Map and MapArray in range.
func WithGamma(gamma float64) Option {
	return func(c *config) {
		if gamma >= 0 && !math.IsInf(gamma, 1) {
			c.gamma = gamma
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Mapper converts wavelengths to colours with a fixed gamma.
// A Mapper is immutable and safe for concurrent use.
type Mapper struct {
	gamma float64
}

// New returns a Mapper configured by opts.
func New(opts ...Option) *Mapper {
	cfg := applyOptions(opts)
	return &Mapper{gamma: cfg.gamma}
}

// Gamma returns the configured gamma exponent.
func (m *Mapper) Gamma() float64 {
	return m.gamma
}
