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
)

// check validates the externally derived photosynthesis parameters.
func (p PhotosynthParams) check(op string) error {
	if p.Kmm <= 0 {
		return &DomainError{Op: op, Param: "Kmm", Value: p.Kmm}
	}
	if p.GammaStar <= 0 {
		return &DomainError{Op: op, Param: "GammaStar", Value: p.GammaStar}
	}
	return nil
}

// Assimilation returns the net CO₂ assimilation rate for stomatal
// conductance gs, carboxylation capacity vcmax, and ambient CO₂
// concentration ca, solving the coupled supply and demand constraints
//
//	A = gs (ca − ci)                       (diffusive supply)
//	A = vcmax (ci − Γ*) / (ci + Kmm)       (Rubisco-limited demand)
//
// for the internal CO₂ concentration ci. Equating the two yields the
// quadratic −gs ci² + (gs ca − gs Kmm − vcmax) ci + (gs ca Kmm + vcmax Γ*) = 0,
// of which the (−B − √(B²−4AC))/(2A) root is taken: the branch that stays
// bounded as gs→0 and satisfies 0 < ci < ca for gs > 0.
//
// With gs = 0 no gas exchange is possible and the assimilation is exactly
// zero; this is handled before the quadratic, whose leading coefficient
// would otherwise vanish. A negative discriminant indicates mutually
// inconsistent parameters and is reported as a NumericalError.
func Assimilation(gs, vcmax, ca float64, p PhotosynthParams) (float64, error) {
	const op = "Assimilation"
	if gs < 0 {
		return 0, &DomainError{Op: op, Param: "gs", Value: gs}
	}
	if vcmax < 0 {
		return 0, &DomainError{Op: op, Param: "vcmax", Value: vcmax}
	}
	if ca <= 0 {
		return 0, &DomainError{Op: op, Param: "ca", Value: ca}
	}
	if err := p.check(op); err != nil {
		return 0, err
	}
	if gs == 0 {
		return 0, nil
	}

	a := -gs
	b := gs*ca - gs*p.Kmm - vcmax
	c := gs*ca*p.Kmm + vcmax*p.GammaStar
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, &NumericalError{
			Op:     op,
			Reason: fmt.Sprintf("negative discriminant %g for gs=%g, vcmax=%g, ca=%g", disc, gs, vcmax, ca),
		}
	}
	ci := (-b - math.Sqrt(disc)) / (2 * a)
	return gs * (ca - ci), nil
}
