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
	"runtime"
	"sync"

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/floats"
)

// SweepPoint is one evaluation in a parameter sweep. If the evaluation
// failed, Err records the per-point DomainError or NumericalError and Y is
// NaN; a failed point never aborts the rest of the sweep.
type SweepPoint struct {
	X   float64
	Y   float64
	Err error
}

// Sweep evaluates f at every value in xs concurrently and returns the
// results in the same order as the inputs. The model functions are pure, so
// the points are independent and are striped across GOMAXPROCS goroutines
// with no synchronization beyond the final join.
func Sweep(xs []float64, f func(float64) (float64, error)) []SweepPoint {
	points := make([]SweepPoint, len(xs))
	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			for ii := pp; ii < len(xs); ii += nprocs {
				y, err := f(xs[ii])
				if err != nil {
					y = math.NaN()
				}
				points[ii] = SweepPoint{X: xs[ii], Y: y, Err: err}
			}
			wg.Done()
		}(pp)
	}
	wg.Wait()
	return points
}

// Grid returns n evenly spaced values from min to max inclusive.
// n must be at least 2.
func Grid(min, max float64, n int) []float64 {
	return floats.Span(make([]float64, n), min, max)
}

// SweepSummary holds descriptive statistics for the successful points of a
// sweep.
type SweepSummary struct {
	N      int // total number of points
	Failed int // points that ended in a domain or numerical error

	Mean   float64
	StdDev float64 // sample standard deviation
	Min    float64
	Max    float64
}

// Summarize computes descriptive statistics over the successful points of a
// sweep for progress reporting.
func Summarize(points []SweepPoint) SweepSummary {
	var ok []float64
	s := SweepSummary{N: len(points)}
	for _, pt := range points {
		if pt.Err != nil {
			s.Failed++
		} else {
			ok = append(ok, pt.Y)
		}
	}
	if len(ok) > 0 {
		s.Mean = stats.StatsMean(ok)
		s.Min = stats.StatsMin(ok)
		s.Max = stats.StatsMax(ok)
	}
	if len(ok) > 1 {
		s.StdDev = stats.StatsSampleStandardDeviation(ok)
	}
	return s
}
