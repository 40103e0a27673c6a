// Package flow converts gas flow rates between standard litres per minute
// (SLM), molar flow and mass flow, and derives plug-flow quantities.
//
// A standard litre is taken at [constants.Table.Atm] and
// [constants.Table.StandardTemperature].
package flow

import (
	"math"

	"github.com/cwbudde/algo-plasma/physics/constants"
	"github.com/cwbudde/algo-vecmath"
)

// Converter evaluates flow formulas against one constants table.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	c constants.Table
}

// Option configures a Converter.
type Option func(*Converter)

// WithConstants replaces the default constants. Tables that fail
// [constants.Table.Validate] are ignored.
func WithConstants(t constants.Table) Option {
	return func(cv *Converter) {
		if t.Validate() == nil {
			cv.c = t
		}
	}
}

// New returns a Converter using [constants.Default] unless overridden.
func New(opts ...Option) *Converter {
	cv := &Converter{c: constants.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(cv)
		}
	}
	return cv
}

// Constants returns the table the converter uses.
func (cv *Converter) Constants() constants.Table {
	return cv.c
}

// molesPerSLM is the molar flow in mol/s carried by 1 SLM.
func (cv *Converter) molesPerSLM() float64 {
	// 1 SLM = 1e-3 m^3 per 60 s at standard conditions.
	return 1e-3 / 60 * (cv.c.Atm / cv.c.R / cv.c.StandardTemperature)
}

// SLMToMoles converts a volumetric flow in SLM to a molar flow in mol/s.
func (cv *Converter) SLMToMoles(slm float64) float64 {
	return slm * cv.molesPerSLM()
}

// MolesToSLM converts a molar flow in mol/s to SLM.
func (cv *Converter) MolesToSLM(moles float64) float64 {
	return moles * cv.c.R * cv.c.StandardTemperature / cv.c.Atm * 60 * 1e3
}

// SLMToMassFlux converts SLM to a mass flow in kg/s for a gas of molar mass
// amu (g/mol).
func (cv *Converter) SLMToMassFlux(slm, amu float64) float64 {
	return cv.SLMToMoles(slm) * amu / 1000
}

// MassFluxToSLM converts a mass flow in kg/s of a gas with molar mass amu
// (g/mol) to SLM.
func (cv *Converter) MassFluxToSLM(massFlux, amu float64) float64 {
	return cv.MolesToSLM(massFlux / amu * 1000)
}

// PlugFlowAverageMassFlux returns the molar flux in mol/s/m^2 of a flow of
// slm through a tube of radius r metres.
func (cv *Converter) PlugFlowAverageMassFlux(slm, r float64) float64 {
	return cv.SLMToMoles(slm) / (math.Pi * r * r)
}

// MolarDensity returns the ideal-gas molar density in mol/m^3 at pressure p
// (Pa) and temperature temp (K).
func (cv *Converter) MolarDensity(p, temp float64) float64 {
	return p / (cv.c.R * temp)
}

// PlugOption configures PlugFlowVelocity.
type PlugOption func(*plugConfig)

type plugConfig struct {
	temperature float64
	pressure    float64
}

// DefaultPlugTemperature is the gas temperature assumed by PlugFlowVelocity, in K.
const DefaultPlugTemperature = 300.0

// WithTemperature sets the gas temperature in K. Non-positive values are ignored.
func WithTemperature(temp float64) PlugOption {
	return func(c *plugConfig) {
		if temp > 0 {
			c.temperature = temp
		}
	}
}

// WithPressure sets the gas pressure in Pa. Non-positive values are ignored.
func WithPressure(p float64) PlugOption {
	return func(c *plugConfig) {
		if p > 0 {
			c.pressure = p
		}
	}
}

// PlugFlowVelocity returns the mean velocity in m/s of a flow of slm through
// a tube of radius r metres. The gas is at [DefaultPlugTemperature] and one
// standard atmosphere unless overridden.
func (cv *Converter) PlugFlowVelocity(slm, r float64, opts ...PlugOption) float64 {
	cfg := plugConfig{temperature: DefaultPlugTemperature, pressure: cv.c.Atm}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cv.PlugFlowAverageMassFlux(slm, r) / cv.MolarDensity(cfg.pressure, cfg.temperature)
}

// SLMToMolesBlock converts every element of src into dst.
// Slices must have equal length. Panics if lengths differ.
func (cv *Converter) SLMToMolesBlock(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, cv.molesPerSLM())
}

// MolesToSLMBlock converts every element of src into dst.
// Slices must have equal length. Panics if lengths differ.
func (cv *Converter) MolesToSLMBlock(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, cv.c.R*cv.c.StandardTemperature/cv.c.Atm*60*1e3)
}
