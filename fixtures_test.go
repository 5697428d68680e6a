/*
 * fixtures_test.go, part of goTermod.
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

package chem

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gonum.org/v1/gonum/floats/scalar"
)

//testIntervals are Maier-Kelley coefficients for a few common substances.
//db is in units of 1e-3 and dd of 1e5.
var testIntervals = map[string][]Interval{
	"H2":  {{Low: 298, High: 3000, A: 27.28, B: 3.26, D: -0.50, S298: 130.52, Phase: "g"}},
	"O2":  {{Low: 298, High: 3000, A: 29.96, B: 4.18, D: 1.67, S298: 205.04, Phase: "g"}},
	"H2O": {{Low: 298, High: 3000, H298: -241.81, A: 30.00, B: 10.71, D: -0.33, S298: 188.72, Phase: "g"}},
	"MgO": {{Low: 298, High: 3098, H298: -601.6, A: 45.44, B: 4.43, D: 6.196, S298: 26.9,
		Uat0: 1000, M: 1, N: 1, Z: 6, Phase: "k"}},
	"SiO2": {{Low: 298, High: 3000, H298: -910.94, A: 46.99, B: 34.31, D: 11.30, S298: 41.84,
		Uat0: 1866, M: 1, N: 2, Z: 4, Phase: "k"}},
	"CaCO3": {{Low: 298, High: 1200, H298: -1206.83, A: 104.52, B: 21.92, D: 25.94, S298: 91.71, Phase: "k"}},
	"CaO":   {{Low: 298, High: 3000, H298: -635.09, A: 49.62, B: 4.52, D: 6.95, S298: 38.07, Phase: "k"}},
	"CO2":   {{Low: 298, High: 3000, H298: -393.51, A: 44.14, B: 9.04, D: 8.54, S298: 213.66, Phase: "g"}},
	//a made-up substance with a phase transition at 1000 K.
	"Xy": {
		{Low: 298, High: 1000, H298: -100, A: 30, B: 5, S298: 50, HFP: 5, Phase: "k"},
		{Low: 1000, High: 2000, A: 40, Phase: "l"},
	},
}

//testData returns the test intervals in a thermodynamic table. The
//intervals of each substance are inserted from the last one, as
//their order in the table should not matter.
func testData(Te *testing.T) *Data {
	db := NewThermoDB()
	d := NewData(db)
	if d == nil {
		Te.Fatal("no thermodynamic table")
	}
	for f, ints := range testIntervals {
		for i := len(ints) - 1; i >= 0; i-- {
			if err := d.Thermo.Insert(ints[i].Row(f)); err != nil {
				Te.Fatal(err)
			}
		}
	}
	return d
}

//testConfig returns the default configuration with a logger that
//discards the output, and the hook that records the entries.
func testConfig() (*Config, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	cfg := DefaultConfig()
	cfg.Log = l
	return cfg, hook
}

func near(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}
