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

import (
	"errors"
	"math"
)

const testTolerance = 1e-6

// Standard parameter records used throughout the tests, corresponding to a
// 10 m plant with a moderately vulnerable xylem at the reference
// environmental condition.
var (
	testVulnerability = ConductivityParams{Psi50: -2, B: 2}

	testPlant = PlantParams{
		Conductivity:       1,
		HuberValue:         1e-4,
		Height:             10,
		ConductivityScalar: 1,
		Vulnerability:      testVulnerability,
	}

	testEnv = EnvParams{
		SoilPotential: -1,
		Viscosity:     1e-3,
		VPD:           1000,
	}

	testSoil = SoilParams{PsiSat: -0.0006, FieldCapacity: 0.3, B: 4}
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func absDifferent(a, b, tolerance float64) bool {
	if math.Abs(a-b) > tolerance {
		return true
	}
	return false
}

func isDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func isNumericalError(err error) bool {
	var ne *NumericalError
	return errors.As(err, &ne)
}
