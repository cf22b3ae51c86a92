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
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// quadTolerance is the relative agreement required between two
	// successive quadrature refinements.
	quadTolerance = 1e-10

	// quadMaxNodes caps the Gauss-Legendre refinement.
	quadMaxNodes = 2048
)

// integrate approximates the definite integral of f from a to b with
// Gauss-Legendre quadrature, doubling the number of nodes until two
// successive estimates agree to within quadTolerance. The integrand must be
// smooth on [a, b].
func integrate(f func(float64) float64, a, b float64) (float64, error) {
	prev := quad.Fixed(f, a, b, 16, nil, 0)
	for n := 32; n <= quadMaxNodes; n *= 2 {
		cur := quad.Fixed(f, a, b, n, nil, 0)
		if math.Abs(cur-prev) <= quadTolerance*(1+math.Abs(cur)) {
			return cur, nil
		}
		prev = cur
	}
	return 0, &NumericalError{
		Op:     "integrate",
		Reason: fmt.Sprintf("quadrature failed to converge on [%g, %g]", a, b),
	}
}

// Conductance returns the total soil-to-leaf hydraulic conductance for a
// potential drop of dpsi [MPa] below the soil water potential psiSoil [MPa]:
// the integral of the vulnerability curve from psiSoil−dpsi to psiSoil.
// Integration proceeds toward more negative potential, so the raw descending
// integral is negated; equivalently the curve is integrated in ascending
// order, which is what is done here. dpsi must be non-negative, and
// Conductance(0, psiSoil, p) is exactly zero.
//
// The result is non-decreasing in dpsi for fixed psiSoil, and non-increasing
// in |psiSoil| for fixed dpsi, because a drier soil places the integration
// window on a lower part of the vulnerability curve.
func Conductance(dpsi, psiSoil float64, p ConductivityParams) (float64, error) {
	if err := p.check("Conductance"); err != nil {
		return 0, err
	}
	if dpsi < 0 {
		return 0, &DomainError{Op: "Conductance", Param: "dpsi", Value: dpsi}
	}
	if dpsi == 0 {
		return 0, nil
	}
	f := func(psi float64) float64 { return vulnerability(psi, p) }
	return integrate(f, psiSoil-dpsi, psiSoil)
}
