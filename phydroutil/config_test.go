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
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestCurrentConfigDefaults(t *testing.T) {
	c, err := currentConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if c.Sweep.Variable != "dpsi" || c.Sweep.Target != "conductance" {
		t.Errorf("have sweep %s/%s, want dpsi/conductance", c.Sweep.Variable, c.Sweep.Target)
	}
	if c.Sweep.Points != 101 {
		t.Errorf("have %d sweep points, want 101", c.Sweep.Points)
	}
	if c.Plant.Psi50 != -2 {
		t.Errorf("have Psi50=%g, want -2", c.Plant.Psi50)
	}
	if c.Photosynthesis.Kmm != 709.6 || c.Photosynthesis.GammaStar != 42.75 {
		t.Errorf("have Kmm=%g, GammaStar=%g, want the reference parameterization",
			c.Photosynthesis.Kmm, c.Photosynthesis.GammaStar)
	}
}

func TestConfigCheck(t *testing.T) {
	c, err := currentConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}

	c.Sweep.Variable = "temperature"
	if err := c.check(); err == nil {
		t.Error("unknown sweep variable should be rejected")
	}
	c.Sweep.Variable = "vpd"

	c.Sweep.Target = "happiness"
	if err := c.check(); err == nil {
		t.Error("unknown sweep target should be rejected")
	}
	c.Sweep.Target = "gs"

	c.Sweep.Points = 1
	if err := c.check(); err == nil {
		t.Error("a single-point sweep should be rejected")
	}
	c.Sweep.Points = 10

	c.Sweep.Min, c.Sweep.Max = 3, 3
	if err := c.check(); err == nil {
		t.Error("an empty sweep range should be rejected")
	}
	c.Sweep.Max = 5

	if err := c.check(); err != nil {
		t.Errorf("repaired configuration should validate, have %v", err)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	c, err := currentConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := writeConfig(&b, c); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[Plant]", "Psi50 = -2", "[Sweep]", "[Photosynthesis]"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("encoded configuration is missing %q:\n%s", want, b.String())
		}
	}

	// The written configuration must be readable back as a config file.
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(b.Bytes())); err != nil {
		t.Fatal(err)
	}
	if have := v.GetFloat64("Plant.Height"); have != c.Plant.Height {
		t.Errorf("round-tripped Plant.Height: have %g, want %g", have, c.Plant.Height)
	}
}
