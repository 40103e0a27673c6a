// Package energy provides energy unit conversions and the specific energy
// input (SEI) of a gas discharge.
package energy

import (
	"github.com/cwbudde/algo-plasma/physics/constants"
	"github.com/cwbudde/algo-plasma/physics/flow"
)

// EVToJ converts electronvolts to joules.
func EVToJ(eV float64, c constants.Table) float64 {
	return eV * c.ElementaryCharge
}

// JToEV converts joules to electronvolts.
func JToEV(j float64, c constants.Table) float64 {
	return j / c.ElementaryCharge
}

// SEI returns the specific energy input in J/mol of a discharge of power
// watts fed with a gas flow of slm.
func SEI(power, slm float64, cv *flow.Converter) float64 {
	return power / cv.SLMToMoles(slm)
}

// SEIPerGram returns the specific energy input in J/g for a gas of molar
// mass amu (g/mol).
func SEIPerGram(power, slm, amu float64, cv *flow.Converter) float64 {
	return SEI(power, slm, cv) / amu
}

// SEIToEVPerMolecule converts a specific energy input in J/mol to eV per
// molecule.
func SEIToEVPerMolecule(sei float64, c constants.Table) float64 {
	return JToEV(sei/c.Avogadro, c)
}

// Frequency returns the frequency in Hz of light with wavelength lambdaNM
// nanometres.
func Frequency(lambdaNM float64, c constants.Table) float64 {
	return c.SpeedOfLight / (lambdaNM * 1e-9)
}

// PhotonEnergy returns the energy in J of a photon with wavelength lambdaNM
// nanometres.
func PhotonEnergy(lambdaNM float64, c constants.Table) float64 {
	return c.Planck * Frequency(lambdaNM, c)
}
