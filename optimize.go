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
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Bounds of the capacity search interval relative to the initial guess, and
// the iteration cap for the derivative-free search. The profit function is
// smooth and unimodal over the relevant range, so a small budget suffices.
const (
	capacityLowerFactor = 1e-5
	capacityUpperFactor = 1e5
	capacityIterations  = 100
)

// OptimizeCapacity returns the carboxylation capacity vcmax that maximizes
// the net profit
//
//	profit(vcmax) = Assimilation(gsStar, vcmax, ca, p) − cost.B·vcmax
//
// over the interval [1e-5·guess, 1e5·guess], together with the maximized
// profit. The search is a bounded derivative-free minimization (Nelder-Mead
// on the negated profit) with out-of-bounds trial points rejected, and the
// returned argmax is never worse than either interval endpoint.
//
// When gsStar is zero the assimilation is identically zero, the profit is
// non-increasing in vcmax, and the lower bound of the interval is returned
// exactly.
func OptimizeCapacity(gsStar, ca float64, cost CostParams, p PhotosynthParams, guess float64) (vcmax, profit float64, err error) {
	const op = "OptimizeCapacity"
	if gsStar < 0 {
		return 0, 0, &DomainError{Op: op, Param: "gsStar", Value: gsStar}
	}
	if ca <= 0 {
		return 0, 0, &DomainError{Op: op, Param: "ca", Value: ca}
	}
	if cost.B < 0 {
		return 0, 0, &DomainError{Op: op, Param: "cost.B", Value: cost.B}
	}
	if guess <= 0 {
		return 0, 0, &DomainError{Op: op, Param: "guess", Value: guess}
	}
	if err := p.check(op); err != nil {
		return 0, 0, err
	}

	lo := capacityLowerFactor * guess
	hi := capacityUpperFactor * guess

	gain := func(v float64) (float64, error) {
		a, err := Assimilation(gsStar, v, ca, p)
		if err != nil {
			return 0, err
		}
		return a - cost.B*v, nil
	}

	if gsStar == 0 {
		return lo, -cost.B * lo, nil
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			v := x[0]
			if v < lo || v > hi {
				return math.Inf(1)
			}
			g, err := gain(v)
			if err != nil {
				return math.Inf(1)
			}
			return -g
		},
	}
	settings := &optimize.Settings{MajorIterations: capacityIterations}
	result, rerr := optimize.Minimize(problem, []float64{guess}, settings, &optimize.NelderMead{})
	if rerr != nil {
		return 0, 0, &NumericalError{Op: op, Reason: "capacity search failed to converge: " + rerr.Error()}
	}

	// Clamp the search result into the interval and make sure neither
	// endpoint beats it, so that a monotone profit lands exactly on a
	// bound.
	best := math.Inf(-1)
	for _, v := range []float64{lo, hi, math.Min(math.Max(result.X[0], lo), hi)} {
		g, gerr := gain(v)
		if gerr == nil && g > best {
			vcmax, best = v, g
		}
	}
	if math.IsInf(best, -1) {
		return 0, 0, &NumericalError{Op: op, Reason: "profit is undefined over the whole search interval"}
	}
	return vcmax, best, nil
}
