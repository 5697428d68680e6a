/*
 * plot_test.go, part of goTermod.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goTermod is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package termoplot

import (
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/gotermod"
	"github.com/rmera/gotermod/param"
)

func testData(Te *testing.T) *chem.Data {
	db := chem.NewThermoDB()
	d := chem.NewData(db)
	rows := map[string]chem.Interval{
		"H2":  {Low: 298, High: 3000, A: 27.28, B: 3.26, D: -0.50, S298: 130.52, Phase: "g"},
		"O2":  {Low: 298, High: 3000, A: 29.96, B: 4.18, D: 1.67, S298: 205.04, Phase: "g"},
		"H2O": {Low: 298, High: 3000, H298: -241.81, A: 30.00, B: 10.71, D: -0.33, S298: 188.72, Phase: "g"},
	}
	for f, I := range rows {
		if err := d.Thermo.Insert(I.Row(f)); err != nil {
			Te.Fatal(err)
		}
	}
	return d
}

//TestPlots draws the thermodynamic functions of the water formation
//reaction, and its rate against the extent.
func TestPlots(Te *testing.T) {
	T := param.NewTemperature(param.Range{Min: 300, Max: 2000, Step: 100})
	R, err := chem.ParseReaction("2H2+O2=2H2O", chem.NewConditions(T, nil), testData(Te), nil)
	if err != nil {
		Te.Fatal(err)
	}
	series, err := Properties(R, T.Kelvin().Value(), "water")
	if err != nil {
		Te.Fatal(err)
	}
	if len(series) != 3 || series[2].Name != "G water" {
		Te.Fatalf("unexpected series %v", series)
	}
	dir := Te.TempDir()
	name := filepath.Join(dir, "water.png")
	if err := Plot(series, "Water formation", "T (K)", "kJ, kJ/K", 12, 8, name); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		Te.Error("plot not written", err)
	}
	R.SetMoles(map[string]float64{"H2": 2, "O2": 1})
	v, err := RateCurve(R, chem.MolFraction, chem.Gas, 0, 11)
	if err != nil {
		Te.Fatal(err)
	}
	if v.X[10] != 2 || v.Y[10] != 0 {
		Te.Errorf("at the maximum extent there is no H2 left, got %v %v", v.X, v.Y)
	}
	if err := Plot([]Series{v}, "", "extent (mol)", "v", 10, 10, filepath.Join(dir, "rate.svg")); err != nil {
		Te.Error(err)
	}
	if _, err := Properties(R, []float64{300}, "bad"); err == nil {
		Te.Error("expected a length mismatch error")
	}
	if err := Plot(nil, "", "", "", 10, 10, filepath.Join(dir, "empty.png")); err == nil {
		Te.Error("expected an error for an empty plot")
	}
}

func TestColors(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 6; i++ {
		c := colors(i, 6)
		k := [3]uint8{c.R, c.G, c.B}
		if seen[k] {
			Te.Errorf("color %v repeated", c)
		}
		seen[k] = true
	}
	if g := hsv2rgb(0, 0.5, 0); g.R != g.G || g.G != g.B {
		Te.Errorf("zero saturation should give a gray, got %v", g)
	}
}
