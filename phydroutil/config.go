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
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/phydro"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ConfigData holds the effective model configuration assembled from the
// defaults, the configuration file, and command-line flags.
type ConfigData struct {
	// OutputFile is the path the sweep CSV output is written to.
	OutputFile string

	Sweep struct {
		Variable string
		Target   string
		Min      float64
		Max      float64
		Points   int
	}

	Plant struct {
		Conductivity       float64
		HuberValue         float64
		Height             float64
		ConductivityScalar float64
		Psi50              float64
		B                  float64
		DpsiStar           float64
	}

	Soil struct {
		PsiSat        float64
		FieldCapacity float64
		B             float64
	}

	Env struct {
		SoilPotential float64
		Viscosity     float64
		VPD           float64
	}

	Photosynthesis struct {
		Kmm       float64
		GammaStar float64
		Ca        float64
		Vcmax     float64
	}

	Cost struct {
		B float64
	}

	Optimize struct {
		InitialGuess float64
	}
}

// sweepVariables and sweepTargets are the recognized values of
// Sweep.Variable and Sweep.Target.
var (
	sweepVariables = []string{"dpsi", "vpd", "soilpotential", "soilwater"}
	sweepTargets   = []string{"conductance", "transpiration", "gs", "assimilation", "capacity"}
)

// currentConfig assembles and validates the configuration currently held by
// cfg.
func currentConfig(cfg *viper.Viper) (*ConfigData, error) {
	c := new(ConfigData)
	var err error
	get := func(key string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		if v, err = cast.ToFloat64E(cfg.Get(key)); err != nil {
			err = fmt.Errorf("phydro: configuration variable %s: %v", key, err)
		}
		return v
	}

	c.OutputFile = cfg.GetString("OutputFile")
	c.Sweep.Variable = strings.ToLower(cfg.GetString("Sweep.Variable"))
	c.Sweep.Target = strings.ToLower(cfg.GetString("Sweep.Target"))
	c.Sweep.Min = get("Sweep.Min")
	c.Sweep.Max = get("Sweep.Max")
	c.Sweep.Points = cfg.GetInt("Sweep.Points")

	c.Plant.Conductivity = get("Plant.Conductivity")
	c.Plant.HuberValue = get("Plant.HuberValue")
	c.Plant.Height = get("Plant.Height")
	c.Plant.ConductivityScalar = get("Plant.ConductivityScalar")
	c.Plant.Psi50 = get("Plant.Psi50")
	c.Plant.B = get("Plant.B")
	c.Plant.DpsiStar = get("Plant.DpsiStar")

	c.Soil.PsiSat = get("Soil.PsiSat")
	c.Soil.FieldCapacity = get("Soil.FieldCapacity")
	c.Soil.B = get("Soil.B")

	c.Env.SoilPotential = get("Env.SoilPotential")
	c.Env.Viscosity = get("Env.Viscosity")
	c.Env.VPD = get("Env.VPD")

	c.Photosynthesis.Kmm = get("Photosynthesis.Kmm")
	c.Photosynthesis.GammaStar = get("Photosynthesis.GammaStar")
	c.Photosynthesis.Ca = get("Photosynthesis.Ca")
	c.Photosynthesis.Vcmax = get("Photosynthesis.Vcmax")

	c.Cost.B = get("Cost.B")
	c.Optimize.InitialGuess = get("Optimize.InitialGuess")

	if err != nil {
		return nil, err
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// check validates the configuration choices that are not covered by the
// model functions' own domain checks.
func (c *ConfigData) check() error {
	if !contains(sweepVariables, c.Sweep.Variable) {
		return fmt.Errorf("phydro: Sweep.Variable must be one of %s, but is %q",
			strings.Join(sweepVariables, ", "), c.Sweep.Variable)
	}
	if !contains(sweepTargets, c.Sweep.Target) {
		return fmt.Errorf("phydro: Sweep.Target must be one of %s, but is %q",
			strings.Join(sweepTargets, ", "), c.Sweep.Target)
	}
	if c.Sweep.Points < 2 {
		return fmt.Errorf("phydro: Sweep.Points must be at least 2, but is %d", c.Sweep.Points)
	}
	if c.Sweep.Max <= c.Sweep.Min {
		return fmt.Errorf("phydro: Sweep.Max (%g) must be greater than Sweep.Min (%g)",
			c.Sweep.Max, c.Sweep.Min)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}

// writeConfig writes c in TOML format.
func writeConfig(w io.Writer, c *ConfigData) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("phydro: problem encoding configuration: %v", err)
	}
	return nil
}

// plantParams converts the configuration into the model's plant parameter
// record.
func (c *ConfigData) plantParams() phydro.PlantParams {
	return phydro.PlantParams{
		Conductivity:       c.Plant.Conductivity,
		HuberValue:         c.Plant.HuberValue,
		Height:             c.Plant.Height,
		ConductivityScalar: c.Plant.ConductivityScalar,
		Vulnerability: phydro.ConductivityParams{
			Psi50: c.Plant.Psi50,
			B:     c.Plant.B,
		},
	}
}

func (c *ConfigData) envParams() phydro.EnvParams {
	return phydro.EnvParams{
		SoilPotential: c.Env.SoilPotential,
		Viscosity:     c.Env.Viscosity,
		VPD:           c.Env.VPD,
	}
}

func (c *ConfigData) soilParams() phydro.SoilParams {
	return phydro.SoilParams{
		PsiSat:        c.Soil.PsiSat,
		FieldCapacity: c.Soil.FieldCapacity,
		B:             c.Soil.B,
	}
}

func (c *ConfigData) photoParams() phydro.PhotosynthParams {
	return phydro.PhotosynthParams{
		Kmm:       c.Photosynthesis.Kmm,
		GammaStar: c.Photosynthesis.GammaStar,
	}
}
