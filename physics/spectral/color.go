package spectral

import (
	"image/color"
	"math"

	"github.com/cwbudde/algo-plasma/internal/numeric"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB8 is a colour with 8-bit channels.
type RGB8 struct {
	R, G, B uint8
}

// NRGBA converts c to an opaque [color.NRGBA].
func (c RGB8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Colorful returns c as a go-colorful colour with channels in [0, 1].
func (c RGB8) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns c formatted as "#rrggbb".
func (c RGB8) Hex() string {
	return c.Colorful().Hex()
}

// to8 scales a normalised channel to [0, 255], truncating toward zero.
// NaN maps to 0.
func to8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(numeric.Clamp01(v) * 255)
}
