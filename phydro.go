/*
Copyright © 2026 the Phydro authors.
This file is part of Phydro.

Phydro is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Phydro is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Phydro.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package phydro models plant hydraulic regulation of stomatal conductance,
// transpiration, and photosynthesis under varying soil water potential and
// atmospheric vapor pressure deficit. It combines a xylem vulnerability
// curve, a numerically integrated soil-to-leaf conductance, an isohydric
// stomatal regulation rule, a coupled supply/demand photosynthesis solution,
// and a profit-maximization search for acclimated photosynthetic capacity.
//
// All model functions are pure: they take immutable parameter records,
// perform no I/O, and hold no state between calls, so parameter sweeps can
// be evaluated concurrently (see Sweep).
package phydro

// Version gives the model version number.
const Version = "0.1.0"

// ConductivityParams describes a xylem vulnerability curve: the decline of
// relative hydraulic conductivity with increasingly negative water potential.
type ConductivityParams struct {
	// Psi50 is the water potential at which conductivity is reduced to
	// half of its unstressed value [MPa]. It must be negative.
	Psi50 float64

	// B is the shape exponent controlling how abruptly conductivity
	// declines around Psi50 [-]. It must be positive.
	B float64
}

// PlantParams describes the hydraulic traits of a plant.
type PlantParams struct {
	// Conductivity is the maximum (unstressed) xylem conductivity
	// [10⁻¹⁷ m³ m⁻² s⁻¹ Pa⁻¹ per unit path length].
	Conductivity float64

	// HuberValue is the ratio of sapwood cross-sectional area to leaf
	// area [-].
	HuberValue float64

	// Height is the hydraulic path length from soil to leaf [m].
	Height float64

	// ConductivityScalar is a dimensionless tuning multiplier on the
	// conductance integral [-].
	ConductivityScalar float64

	// Vulnerability is the vulnerability curve of the xylem.
	Vulnerability ConductivityParams
}

// EnvParams describes the environmental conditions a plant is exposed to.
type EnvParams struct {
	// SoilPotential is the water potential of the soil in the rooting
	// zone [MPa], ≤ 0.
	SoilPotential float64

	// Viscosity is the dynamic viscosity of water at the current
	// temperature [Pa s].
	Viscosity float64

	// VPD is the atmospheric vapor pressure deficit [Pa].
	VPD float64
}

// SoilParams describes an empirical power-law soil water retention curve
// relating volumetric water content to soil water potential.
type SoilParams struct {
	// PsiSat is the soil water potential at saturation [MPa], ≤ 0.
	PsiSat float64

	// FieldCapacity is the volumetric soil water content at field
	// capacity [m³ m⁻³].
	FieldCapacity float64

	// B is the retention curve exponent [-].
	B float64
}

// PhotosynthParams holds the biochemical photosynthesis parameters derived
// externally (e.g. by a P-model implementation) from temperature, CO₂, and
// elevation. They are treated as opaque inputs here; see ParamSolver.
type PhotosynthParams struct {
	// Kmm is the effective Michaelis-Menten coefficient for Rubisco
	// carboxylation, in the same units as ambient CO₂ (e.g. µmol/mol).
	Kmm float64

	// GammaStar is the photorespiratory CO₂ compensation point, in the
	// same units as ambient CO₂.
	GammaStar float64
}

// CostParams holds the economics of building and maintaining photosynthetic
// capacity.
type CostParams struct {
	// B is the marginal construction and maintenance cost per unit of
	// carboxylation capacity, in units of assimilation per unit Vcmax.
	B float64
}

// ParamSolver is the signature of an external photosynthesis
// parameterization (such as a P-model implementation) that derives Kmm and
// GammaStar from growth conditions: air temperature tc [°C], vapor pressure
// deficit vpd [Pa], ambient CO₂ co2 [µmol/mol], elevation [m], the fraction
// of absorbed photosynthetically active radiation fapar [-], quantum yield
// kphio [-], and the unit cost ratio beta [-]. Phydro deliberately does not
// reimplement this calculation.
type ParamSolver func(tc, vpd, co2, elevation, fapar, kphio, beta float64) (PhotosynthParams, error)

// ReferencePhotosynthParams returns the fixed photosynthesis parameters for
// the reference condition used throughout the tests: 25 °C, sea level,
// ambient CO₂ of 400 µmol/mol. The values correspond to the standard
// Bernacchi et al. (2001) kinetics.
func ReferencePhotosynthParams() PhotosynthParams {
	return PhotosynthParams{Kmm: 709.6, GammaStar: 42.75}
}
