package spectral

// Map returns the colour of a single wavelength in nanometres.
//
// Bands are tested in ascending order with both bounds inclusive, so a
// wavelength on a shared edge takes the lower band. Channels are scaled by 255
// and truncated. Wavelengths outside [MinWavelength, MaxWavelength], NaN and
// ±Inf return black.
func (m *Mapper) Map(lambda float64) RGB8 {
	for i := range bands {
		b := &bands[i]
		if !b.containsClosed(lambda) {
			continue
		}

		r, g, bl := b.eval(lambda, m.gamma)
		return RGB8{R: to8(r), G: to8(g), B: to8(bl)}
	}

	return RGB8{}
}

// Map is a convenience wrapper around [New] and [Mapper.Map].
func Map(lambda float64, opts ...Option) RGB8 {
	return New(opts...).Map(lambda)
}
