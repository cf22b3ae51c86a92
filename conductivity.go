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

import "math"

// check validates the vulnerability curve parameters, attributing any
// resulting DomainError to operation op.
func (p ConductivityParams) check(op string) error {
	if p.Psi50 >= 0 {
		return &DomainError{Op: op, Param: "Psi50", Value: p.Psi50}
	}
	if p.B <= 0 {
		return &DomainError{Op: op, Param: "B", Value: p.B}
	}
	return nil
}

// vulnerability is the raw vulnerability curve 0.5^((ψ/ψ50)^b), assuming the
// parameters have already been validated. Potentials at or above zero are
// unstressed and map to 1.
func vulnerability(psi float64, p ConductivityParams) float64 {
	x := psi / p.Psi50
	if x <= 0 {
		return 1
	}
	return math.Pow(0.5, math.Pow(x, p.B))
}

// Conductivity returns the relative hydraulic conductivity of the xylem at
// water potential psi [MPa], a value in (0, 1]. The conductivity equals 1 at
// zero potential, 0.5 at p.Psi50, and declines monotonically as the
// potential becomes more negative.
func Conductivity(psi float64, p ConductivityParams) (float64, error) {
	if err := p.check("Conductivity"); err != nil {
		return 0, err
	}
	return vulnerability(psi, p), nil
}

// SoilPotential converts volumetric soil water content wVol [m³ m⁻³] to
// soil water potential [MPa] using the empirical retention curve
// ψ_sat (θ_fc/θ)^b. wVol must be positive.
func SoilPotential(wVol float64, s SoilParams) (float64, error) {
	const op = "SoilPotential"
	if wVol <= 0 {
		return 0, &DomainError{Op: op, Param: "wVol", Value: wVol}
	}
	if s.PsiSat > 0 {
		return 0, &DomainError{Op: op, Param: "PsiSat", Value: s.PsiSat}
	}
	if s.FieldCapacity <= 0 {
		return 0, &DomainError{Op: op, Param: "FieldCapacity", Value: s.FieldCapacity}
	}
	if s.B <= 0 {
		return 0, &DomainError{Op: op, Param: "B", Value: s.B}
	}
	return s.PsiSat * math.Pow(s.FieldCapacity/wVol, s.B), nil
}
