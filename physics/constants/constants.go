// Package constants provides the physical constants used by the flow and
// energy formulas as an immutable value.
//
// Formulas receive a [Table] (directly or through a converter built from
// one) instead of reading package globals, so a test can swap in a table with
// round numbers and check the algebra by hand.
package constants

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid reports a table field that is non-finite or not positive.
var ErrInvalid = errors.New("invalid physical constant")

// Table is a set of physical constants in SI units.
type Table struct {
	Atm                 float64 // standard atmosphere, Pa
	R                   float64 // molar gas constant, J/(mol K)
	ElementaryCharge    float64 // C
	Planck              float64 // J s
	SpeedOfLight        float64 // m/s
	Avogadro            float64 // 1/mol
	StandardTemperature float64 // K, reference temperature of standard litres
}

// Default returns CODATA 2018 values. StandardTemperature is 273 K, the
// reference used by the standard-litre-per-minute conversions.
func Default() Table {
	return Table{
		Atm:                 101325,
		R:                   8.314462618,
		ElementaryCharge:    1.602176634e-19,
		Planck:              6.62607015e-34,
		SpeedOfLight:        299792458,
		Avogadro:            6.02214076e23,
		StandardTemperature: 273,
	}
}

// Validate returns an error wrapping [ErrInvalid] for the first field that
// is NaN, infinite, zero or negative.
func (t Table) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"Atm", t.Atm},
		{"R", t.R},
		{"ElementaryCharge", t.ElementaryCharge},
		{"Planck", t.Planck},
		{"SpeedOfLight", t.SpeedOfLight},
		{"Avogadro", t.Avogadro},
		{"StandardTemperature", t.StandardTemperature},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalid, f.name, f.value)
		}
	}
	return nil
}
