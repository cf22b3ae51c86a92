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

// Package phydroutil provides the command-line interface and configuration
// handling for the Phydro plant hydraulics model.
package phydroutil

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/phydro"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Cfg = viper.New()

	// Options are the configuration options available to Phydro.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path of the CSV file that sweep
              results are written to for external plotting.`,
			shorthand:  "o",
			defaultVal: "phydro_sweep.csv",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Variable",
			usage: `
              Sweep.Variable specifies the input that is varied across the
              sweep: dpsi (soil-to-leaf potential drop), vpd, soilpotential,
              or soilwater (volumetric content converted through the soil
              retention curve).`,
			defaultVal: "dpsi",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Target",
			usage: `
              Sweep.Target specifies the model output that is evaluated at
              each point: conductance, transpiration, gs (regulated stomatal
              conductance), assimilation, or capacity (profit-maximizing
              Vcmax).`,
			defaultVal: "conductance",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Min",
			usage: `
              Sweep.Min specifies the lower end of the swept input range.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Max",
			usage: `
              Sweep.Max specifies the upper end of the swept input range.`,
			defaultVal: 5.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Points",
			usage: `
              Sweep.Points specifies the number of evenly spaced points the
              swept range is divided into.`,
			defaultVal: 101,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Plant.Conductivity",
			usage: `
              Plant.Conductivity is the maximum xylem conductivity of the
              plant.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Plant.HuberValue",
			usage: `
              Plant.HuberValue is the ratio of sapwood cross-sectional area
              to leaf area.`,
			defaultVal: 1e-4,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Plant.Height",
			usage: `
              Plant.Height is the hydraulic path length from soil to leaf
              [m].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Plant.ConductivityScalar",
			usage: `
              Plant.ConductivityScalar is a dimensionless multiplier on the
              conductance integral.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Plant.Psi50",
			usage: `
              Plant.Psi50 is the water potential at which xylem conductivity
              is halved [MPa]. It must be negative.`,
			defaultVal: -2.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Plant.B",
			usage: `
              Plant.B is the shape exponent of the xylem vulnerability
              curve.`,
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Plant.DpsiStar",
			usage: `
              Plant.DpsiStar is the isohydric set point: the soil-to-leaf
              water potential drop the stomata regulate toward [MPa].`,
			defaultVal: 1.5,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Soil.PsiSat",
			usage: `
              Soil.PsiSat is the soil water potential at saturation [MPa].`,
			defaultVal: -0.0006,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Soil.FieldCapacity",
			usage: `
              Soil.FieldCapacity is the volumetric soil water content at
              field capacity [m³ m⁻³].`,
			defaultVal: 0.3,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Soil.B",
			usage: `
              Soil.B is the soil water retention curve exponent.`,
			defaultVal: 4.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Env.SoilPotential",
			usage: `
              Env.SoilPotential is the water potential of the soil in the
              rooting zone [MPa].`,
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Env.Viscosity",
			usage: `
              Env.Viscosity is the dynamic viscosity of water at the current
              temperature [Pa s].`,
			defaultVal: 1.002e-3,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Env.VPD",
			usage: `
              Env.VPD is the atmospheric vapor pressure deficit [Pa].`,
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Photosynthesis.Kmm",
			usage: `
              Photosynthesis.Kmm is the effective Michaelis-Menten
              coefficient for Rubisco carboxylation, derived externally by a
              P-model parameterization [µmol/mol].`,
			defaultVal: 709.6,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Photosynthesis.GammaStar",
			usage: `
              Photosynthesis.GammaStar is the photorespiratory CO₂
              compensation point, derived externally by a P-model
              parameterization [µmol/mol].`,
			defaultVal: 42.75,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Photosynthesis.Ca",
			usage: `
              Photosynthesis.Ca is the ambient CO₂ concentration
              [µmol/mol].`,
			defaultVal: 400.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Photosynthesis.Vcmax",
			usage: `
              Photosynthesis.Vcmax is the carboxylation capacity used for
              assimilation sweeps that do not optimize capacity.`,
			defaultVal: 50.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Cost.B",
			usage: `
              Cost.B is the marginal construction and maintenance cost per
              unit of carboxylation capacity.`,
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
		{
			name: "Optimize.InitialGuess",
			usage: `
              Optimize.InitialGuess is the starting carboxylation capacity
              for the profit maximization; the search interval spans
              [1e-5, 1e5] times this value.`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), optimizeCmd.Flags()},
		},
	}

	for _, option := range options {
		for _, set := range option.flagsets {
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
		Cfg.SetDefault(option.name, option.defaultVal)
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(sweepCmd)
	Root.AddCommand(optimizeCmd)
	Root.AddCommand(configCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("phydro: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "phydro",
	Short: "A plant hydraulics and photosynthesis model.",
	Long: `Phydro models plant hydraulic regulation of stomatal conductance,
transpiration, and photosynthesis under varying soil water potential and
atmospheric vapor pressure deficit.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag) or by using
command-line arguments.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Phydro.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Phydro v%s\n", phydro.Version)
	},
	DisableAutoGenTag: true,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate a model output across a range of one input",
	Long: `sweep evaluates the configured model output at evenly spaced values
of the configured input variable and writes the ordered (input, output)
sequence to a CSV file for external plotting. Points where the model reports
a domain or numerical error are flagged in the output rather than aborting
the sweep.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentConfig(Cfg)
		if err != nil {
			return err
		}
		return RunSweep(cfg)
	},
	DisableAutoGenTag: true,
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the profit-maximizing photosynthetic capacity",
	Long: `optimize computes the stomatal conductance that holds the
configured isohydric set point, then searches for the carboxylation capacity
that maximizes assimilation net of capacity cost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentConfig(Cfg)
		if err != nil {
			return err
		}
		return RunOptimize(cmd.OutOrStdout(), cfg)
	},
	DisableAutoGenTag: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default configuration to standard output",
	Long: `config writes the currently effective configuration in TOML format
to standard output, suitable for saving and editing as a configuration
file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := currentConfig(Cfg)
		if err != nil {
			return err
		}
		return writeConfig(cmd.OutOrStdout(), cfg)
	},
	DisableAutoGenTag: true,
}
