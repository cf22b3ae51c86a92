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
	"fmt"
	"io"

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/phydro"
)

// "mol" itself is reserved by the unit package.
var molDim = unit.NewDimension("molCO2")

// molarFluxDimensions are the dimensions of leaf-area-specific gas exchange
// rates: mol m⁻² s⁻¹.
var molarFluxDimensions = unit.Dimensions{
	molDim:         1,
	unit.LengthDim: -2,
	unit.TimeDim:   -1,
}

// micro converts the model's µmol-based working units to SI moles.
const micro = 1e-6

// molarFlux wraps a µmol m⁻² s⁻¹ value in a dimensioned SI quantity for
// reporting.
func molarFlux(v float64) *unit.Unit {
	return unit.New(v*micro, molarFluxDimensions)
}

// RunOptimize computes the regulated stomatal conductance for the configured
// conditions and the profit-maximizing carboxylation capacity, and writes a
// report to w.
func RunOptimize(w io.Writer, c *ConfigData) error {
	plant := c.plantParams()
	env := c.envParams()
	photo := c.photoParams()

	gsStar, err := phydro.RegulatedConductance(c.Plant.DpsiStar, plant, env)
	if err != nil {
		return err
	}
	vcmax, profit, err := phydro.OptimizeCapacity(gsStar, c.Photosynthesis.Ca,
		phydro.CostParams{B: c.Cost.B}, photo, c.Optimize.InitialGuess)
	if err != nil {
		return err
	}
	assim, err := phydro.Assimilation(gsStar, vcmax, c.Photosynthesis.Ca, photo)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"gsStar": gsStar,
		"vcmax":  vcmax,
		"profit": profit,
	}).Info("capacity optimization complete")

	fmt.Fprintf(w, "regulated stomatal conductance:\t%v\n", molarFlux(gsStar))
	fmt.Fprintf(w, "optimal carboxylation capacity:\t%v\n", molarFlux(vcmax))
	fmt.Fprintf(w, "assimilation at optimum:\t%v\n", molarFlux(assim))
	fmt.Fprintf(w, "net profit:\t%v\n", molarFlux(profit))
	return nil
}
