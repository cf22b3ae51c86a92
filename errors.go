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

import "fmt"

// DomainError reports an input value outside the physical domain of a model
// function, such as a non-positive viscosity or a zero vapor pressure
// deficit. Inputs are rejected before any computation so that infinities and
// NaNs never flow into downstream calculations.
type DomainError struct {
	Op    string  // the operation that rejected the input
	Param string  // the offending parameter
	Value float64 // the offending value
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("phydro: %s: parameter %s=%g is outside the physical domain", e.Op, e.Param, e.Value)
}

// NumericalError reports the failure of a numerical routine: quadrature or
// the capacity optimizer failing to converge within its iteration budget, or
// a negative discriminant in the assimilation quadratic.
type NumericalError struct {
	Op     string // the operation that failed
	Reason string
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("phydro: %s: %s", e.Op, e.Reason)
}
