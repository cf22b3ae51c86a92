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

package phydroutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/phydro"
)

// sweepFunc builds the pure function of the swept input that the sweep
// evaluates, combining the configured sweep variable and target.
func sweepFunc(c *ConfigData) (func(float64) (float64, error), error) {
	plant := c.plantParams()
	soil := c.soilParams()
	photo := c.photoParams()

	// bind resolves one value of the swept variable into the
	// environmental conditions and potential-drop set point for that
	// point.
	bind := func(x float64) (phydro.EnvParams, float64, error) {
		env := c.envParams()
		dpsi := c.Plant.DpsiStar
		switch c.Sweep.Variable {
		case "dpsi":
			dpsi = x
		case "vpd":
			env.VPD = x
		case "soilpotential":
			env.SoilPotential = x
		case "soilwater":
			psi, err := phydro.SoilPotential(x, soil)
			if err != nil {
				return env, 0, err
			}
			env.SoilPotential = psi
		default:
			return env, 0, fmt.Errorf("phydro: unknown sweep variable %q", c.Sweep.Variable)
		}
		return env, dpsi, nil
	}

	switch c.Sweep.Target {
	case "conductance":
		return func(x float64) (float64, error) {
			env, dpsi, err := bind(x)
			if err != nil {
				return 0, err
			}
			return phydro.Conductance(dpsi, env.SoilPotential, plant.Vulnerability)
		}, nil
	case "transpiration":
		return func(x float64) (float64, error) {
			env, dpsi, err := bind(x)
			if err != nil {
				return 0, err
			}
			return phydro.Transpiration(dpsi, plant, env)
		}, nil
	case "gs":
		return func(x float64) (float64, error) {
			env, dpsi, err := bind(x)
			if err != nil {
				return 0, err
			}
			return phydro.RegulatedConductance(dpsi, plant, env)
		}, nil
	case "assimilation":
		return func(x float64) (float64, error) {
			env, dpsi, err := bind(x)
			if err != nil {
				return 0, err
			}
			gs, err := phydro.RegulatedConductance(dpsi, plant, env)
			if err != nil {
				return 0, err
			}
			return phydro.Assimilation(gs, c.Photosynthesis.Vcmax, c.Photosynthesis.Ca, photo)
		}, nil
	case "capacity":
		return func(x float64) (float64, error) {
			env, dpsi, err := bind(x)
			if err != nil {
				return 0, err
			}
			gs, err := phydro.RegulatedConductance(dpsi, plant, env)
			if err != nil {
				return 0, err
			}
			vcmax, _, err := phydro.OptimizeCapacity(gs, c.Photosynthesis.Ca,
				phydro.CostParams{B: c.Cost.B}, photo, c.Optimize.InitialGuess)
			return vcmax, err
		}, nil
	}
	return nil, fmt.Errorf("phydro: unknown sweep target %q", c.Sweep.Target)
}

// RunSweep evaluates the configured sweep and writes the results to the
// configured CSV output file. Per-point errors are logged and flagged in the
// output but do not abort the sweep.
func RunSweep(c *ConfigData) error {
	f, err := sweepFunc(c)
	if err != nil {
		return err
	}
	xs := phydro.Grid(c.Sweep.Min, c.Sweep.Max, c.Sweep.Points)

	log.WithFields(logrus.Fields{
		"variable": c.Sweep.Variable,
		"target":   c.Sweep.Target,
		"points":   c.Sweep.Points,
	}).Info("starting sweep")

	points := phydro.Sweep(xs, f)
	for _, pt := range points {
		if pt.Err != nil {
			log.WithFields(logrus.Fields{
				c.Sweep.Variable: pt.X,
			}).Warn(pt.Err)
		}
	}

	w, err := os.Create(c.OutputFile)
	if err != nil {
		return fmt.Errorf("phydro: problem creating output file: %v", err)
	}
	defer w.Close()
	if err := writePoints(w, c.Sweep.Variable, c.Sweep.Target, points); err != nil {
		return err
	}

	s := phydro.Summarize(points)
	log.WithFields(logrus.Fields{
		"points": s.N,
		"failed": s.Failed,
		"mean":   s.Mean,
		"stddev": s.StdDev,
		"min":    s.Min,
		"max":    s.Max,
		"output": c.OutputFile,
	}).Info("sweep complete")
	return nil
}

// writePoints writes the ordered sweep results as CSV with one row per
// point: the input value, the output value (empty for failed points), and
// the error message for failed points.
func writePoints(w io.Writer, variable, target string, points []phydro.SweepPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{variable, target, "error"}); err != nil {
		return fmt.Errorf("phydro: problem writing output: %v", err)
	}
	for _, pt := range points {
		rec := []string{strconv.FormatFloat(pt.X, 'g', -1, 64), "", ""}
		if pt.Err != nil {
			rec[2] = pt.Err.Error()
		} else {
			rec[1] = strconv.FormatFloat(pt.Y, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("phydro: problem writing output: %v", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("phydro: problem writing output: %v", err)
	}
	return nil
}
