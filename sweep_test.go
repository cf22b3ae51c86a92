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

func TestGrid(t *testing.T) {
	xs := Grid(0, 4, 5)
	want := []float64{0, 1, 2, 3, 4}
	if len(xs) != len(want) {
		t.Fatalf("have %d points, want %d", len(xs), len(want))
	}
	for i, w := range want {
		if xs[i] != w {
			t.Errorf("point %d: have %g, want %g", i, xs[i], w)
		}
	}
}

func TestSweepOrder(t *testing.T) {
	xs := Grid(-5, 5, 101)
	points := Sweep(xs, func(x float64) (float64, error) { return 2 * x, nil })
	if len(points) != len(xs) {
		t.Fatalf("have %d points, want %d", len(points), len(xs))
	}
	for i, pt := range points {
		if pt.X != xs[i] {
			t.Errorf("point %d out of order: have x=%g, want %g", i, pt.X, xs[i])
		}
		if pt.Y != 2*xs[i] {
			t.Errorf("point %d: have y=%g, want %g", i, pt.Y, 2*xs[i])
		}
		if pt.Err != nil {
			t.Errorf("point %d: unexpected error %v", i, pt.Err)
		}
	}
}

func TestSweepRecordsPerPointErrors(t *testing.T) {
	// A VPD sweep that includes zero: the zero point must be recorded as
	// a DomainError without aborting the rest of the sweep.
	xs := Grid(0, 2000, 5)
	points := Sweep(xs, func(vpd float64) (float64, error) {
		env := testEnv
		env.VPD = vpd
		return RegulatedConductance(1.5, testPlant, env)
	})

	if !isDomainError(points[0].Err) {
		t.Errorf("VPD=0 point: have %v, want DomainError", points[0].Err)
	}
	if !math.IsNaN(points[0].Y) {
		t.Errorf("failed point should carry NaN, have %g", points[0].Y)
	}
	for i, pt := range points[1:] {
		if pt.Err != nil {
			t.Errorf("point %d: unexpected error %v", i+1, pt.Err)
		}
		if pt.Y <= 0 {
			t.Errorf("point %d: conductance should be positive, have %g", i+1, pt.Y)
		}
	}
}

func TestSummarize(t *testing.T) {
	points := []SweepPoint{
		{X: 0, Y: math.NaN(), Err: &DomainError{Op: "test", Param: "x", Value: 0}},
		{X: 1, Y: 2},
		{X: 2, Y: 4},
		{X: 3, Y: 6},
	}
	s := Summarize(points)
	if s.N != 4 || s.Failed != 1 {
		t.Errorf("have N=%d Failed=%d, want N=4 Failed=1", s.N, s.Failed)
	}
	if different(s.Mean, 4, testTolerance) {
		t.Errorf("mean: have %g, want 4", s.Mean)
	}
	if s.Min != 2 || s.Max != 6 {
		t.Errorf("have min=%g max=%g, want 2 and 6", s.Min, s.Max)
	}
	if different(s.StdDev, 2, testTolerance) {
		t.Errorf("stddev: have %g, want 2", s.StdDev)
	}
}
