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
	"testing"
)

func TestOptimizeCapacity(t *testing.T) {
	// Reference optimum for gsStar=0.2, ca=400, cost 0.1 per unit
	// capacity, located by golden-section search: vcmax=197.4798,
	// profit=17.13954674.
	photo := ReferencePhotosynthParams()
	vcmax, profit, err := OptimizeCapacity(0.2, 400, CostParams{B: 0.1}, photo, 100)
	if err != nil {
		t.Fatal(err)
	}
	if different(profit, 17.1395467450, testTolerance) {
		t.Errorf("profit: have %.10g, want 17.1395467450", profit)
	}
	if different(vcmax, 197.47979551, 1e-3) {
		t.Errorf("vcmax: have %g, want about 197.48", vcmax)
	}
}

func TestOptimizeCapacityDominatesGrid(t *testing.T) {
	// The numerical optimum must be at least as good as a coarse grid
	// search spanning the interval.
	photo := ReferencePhotosynthParams()
	const gsStar, ca, guess = 0.2, 400., 100.
	cost := CostParams{B: 0.1}

	_, profit, err := OptimizeCapacity(gsStar, ca, cost, photo, guess)
	if err != nil {
		t.Fatal(err)
	}

	lo := capacityLowerFactor * guess
	hi := capacityUpperFactor * guess
	for _, lx := range Grid(math.Log10(lo), math.Log10(hi), 200) {
		v := math.Pow(10, lx)
		a, err := Assimilation(gsStar, v, ca, photo)
		if err != nil {
			t.Fatal(err)
		}
		if g := a - cost.B*v; g > profit+1e-9*(1+math.Abs(profit)) {
			t.Errorf("grid point vcmax=%g has profit %g, better than optimum %g", v, g, profit)
		}
	}
}

func TestOptimizeCapacityClosedStomata(t *testing.T) {
	// With closed stomata assimilation is identically zero and profit
	// declines with capacity, so the optimizer must land exactly on the
	// lower bound of the search interval.
	photo := ReferencePhotosynthParams()
	const guess = 100.
	cost := CostParams{B: 0.1}

	vcmax, profit, err := OptimizeCapacity(0, 400, cost, photo, guess)
	if err != nil {
		t.Fatal(err)
	}
	lo := capacityLowerFactor * guess
	if vcmax != lo {
		t.Errorf("vcmax: have %g, want the lower bound %g", vcmax, lo)
	}
	if different(profit, -cost.B*lo, testTolerance) {
		t.Errorf("profit: have %g, want %g", profit, -cost.B*lo)
	}
}

func TestOptimizeCapacityZeroCost(t *testing.T) {
	// With no capacity cost the profit saturates at the supply limit;
	// the optimizer should find a profit close to gs(ca−Γ*)-ish supply
	// saturation rather than failing, and never exceed the supply bound
	// gs·ca.
	photo := ReferencePhotosynthParams()
	const gsStar, ca = 0.2, 400.
	_, profit, err := OptimizeCapacity(gsStar, ca, CostParams{}, photo, 100)
	if err != nil {
		t.Fatal(err)
	}
	if profit <= 0 || profit > gsStar*ca {
		t.Errorf("profit %g outside (0, %g]", profit, gsStar*ca)
	}
}

func TestOptimizeCapacityDomain(t *testing.T) {
	photo := ReferencePhotosynthParams()
	if _, _, err := OptimizeCapacity(-0.1, 400, CostParams{B: 0.1}, photo, 100); !isDomainError(err) {
		t.Errorf("gsStar<0: have %v, want DomainError", err)
	}
	if _, _, err := OptimizeCapacity(0.2, 400, CostParams{B: 0.1}, photo, 0); !isDomainError(err) {
		t.Errorf("guess=0: have %v, want DomainError", err)
	}
	if _, _, err := OptimizeCapacity(0.2, 400, CostParams{B: -1}, photo, 100); !isDomainError(err) {
		t.Errorf("cost.B<0: have %v, want DomainError", err)
	}
}
