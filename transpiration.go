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

package phydro

// flowUnitConversion converts the plant conductivity units used in the
// parameter records to SI flux units.
const flowUnitConversion = 1e6

// diffusivityRatio is the ratio of the diffusivities of water vapor and CO₂
// in air, relating stomatal conductance to water to stomatal conductance to
// CO₂.
const diffusivityRatio = 1.6

// check validates the plant traits shared by Transpiration and
// RegulatedConductance.
func (p PlantParams) check(op string) error {
	if p.Conductivity < 0 {
		return &DomainError{Op: op, Param: "Conductivity", Value: p.Conductivity}
	}
	if p.HuberValue < 0 {
		return &DomainError{Op: op, Param: "HuberValue", Value: p.HuberValue}
	}
	if p.Height <= 0 {
		return &DomainError{Op: op, Param: "Height", Value: p.Height}
	}
	return nil
}

// Transpiration returns the volumetric transpiration flux per unit leaf area
// for a plant sustaining a soil-to-leaf potential drop of dpsi [MPa] under
// the given environmental conditions. It scales the conductance integral by
// the plant's conductivity, Huber value, and path length and by the
// viscosity of water.
func Transpiration(dpsi float64, plant PlantParams, env EnvParams) (float64, error) {
	const op = "Transpiration"
	if err := plant.check(op); err != nil {
		return 0, err
	}
	if env.Viscosity <= 0 {
		return 0, &DomainError{Op: op, Param: "Viscosity", Value: env.Viscosity}
	}
	k, err := Conductance(dpsi, env.SoilPotential, plant.Vulnerability)
	if err != nil {
		return 0, err
	}
	return plant.ConductivityScalar * plant.Conductivity * plant.HuberValue /
		plant.Height / env.Viscosity * flowUnitConversion * k, nil
}

// RegulatedConductance returns the stomatal conductance g*s that holds the
// soil-to-leaf water potential drop exactly at the isohydric set point
// dpsiStar [MPa] given the current soil water potential and vapor pressure
// deficit: the conductance at which water supply through the xylem balances
// demand through the stomata.
//
// A zero or negative VPD makes the balance undefined and is rejected as a
// DomainError rather than returning +Inf.
func RegulatedConductance(dpsiStar float64, plant PlantParams, env EnvParams) (float64, error) {
	const op = "RegulatedConductance"
	if err := plant.check(op); err != nil {
		return 0, err
	}
	if env.Viscosity <= 0 {
		return 0, &DomainError{Op: op, Param: "Viscosity", Value: env.Viscosity}
	}
	if env.VPD <= 0 {
		return 0, &DomainError{Op: op, Param: "VPD", Value: env.VPD}
	}
	k, err := Conductance(dpsiStar, env.SoilPotential, plant.Vulnerability)
	if err != nil {
		return 0, err
	}
	return plant.HuberValue * plant.Conductivity /
		(diffusivityRatio * plant.Height * env.Viscosity * env.VPD) * k, nil
}
