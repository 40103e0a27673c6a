// Package spectral maps light wavelengths to approximate perceived RGB colours.
//
// The model is a fixed six-band piecewise approximation of the visible
// spectrum (380–750 nm) after Dan Bruton: each band ramps one channel
// linearly while the others are held at 0 or 1, intensity is attenuated
// towards the violet and deep-red ends, and every ramped channel is raised to
// a gamma exponent (0.8 by default).
//
// Two evaluation modes share one band table:
//
//   - [Mapper.Map] classifies one wavelength with inclusive bounds on both
//     sides (the first matching band wins) and returns 8-bit channels.
//   - [Mapper.MapArray] evaluates every band for every element of an n-d
//     [Array], masks each band with (lo, hi] bounds (the first band is
//     [380, 440]) and sums the contributions. The result has a trailing axis
//     of 3 channels in [0, 1]; [ToRGB8] scales it to 8 bits.
//
// Both modes assign a wavelength lying on a shared band edge to the lower band,
// so after scaling they agree everywhere. Wavelengths outside [380, 750], NaN
// and ±Inf map to black in both modes.
//
// All functions are pure and safe for concurrent use.
package spectral
