/*
 * reaction_test.go, part of goTermod.
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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/rmera/gotermod/formula"
	"github.com/rmera/gotermod/param"
)

func TestBalance(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	R, err := ParseReaction("2H2+O2=2H2O(g)", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if !R.Valid() {
		Te.Fatal("reaction should be valid", R.Validity())
	}
	c := R.Coeffs()
	if c["H2"] != -1 || c["O2"] != -0.5 || c["H2O"] != 1 {
		Te.Errorf("unexpected coefficients %v", c)
	}
	if o := R.Orders(); o["O2"] != -0.5 {
		Te.Errorf("orders not reset to the coefficients: %v", o)
	}
	if e := R.Elements(); len(e) != 2 || e[0] != "H" || e[1] != "O" {
		Te.Errorf("unexpected elements %v", e)
	}
	R, err = ParseReaction("Fe2O3 + CO = Fe + CO2", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	c = R.Coeffs()
	if !near(c["Fe2O3"], -1.0/3, 1e-9) || c["CO"] != -1 || !near(c["Fe"], 2.0/3, 1e-9) || c["CO2"] != 1 {
		Te.Errorf("unexpected coefficients %v", c)
	}
	//balanced, but most substances are not in the data.
	if R.Valid() {
		Te.Error("reaction should not be valid")
	}
	if v := R.Validity(); !v["CO2"] || v["Fe"] {
		Te.Errorf("unexpected validity %v", v)
	}
	if !R.Scale(3) || !near(R.Coeffs()["Fe"], 2, 1e-6) || R.Scale(0) {
		Te.Errorf("bad scaling %v", R.Coeffs())
	}
}

func TestBalanceErrors(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	R, err := ParseReaction("H2=O2", nil, data, cfg)
	var berr *BalanceError
	if !errors.As(err, &berr) {
		Te.Fatalf("expected a balance error, got %v", err)
	}
	if R == nil || R.Valid() {
		Te.Error("the reaction should be returned, and not be valid")
	}
	fmt.Println(err, berr.Decorate(""))
	_, err = NewReaction([]formula.Term{{Coeff: -1, Formula: "H2"}}, nil, data, cfg)
	if !errors.As(err, &berr) || berr.message != TooFewSubstances {
		Te.Errorf("expected %q, got %v", TooFewSubstances, err)
	}
	_, err = ParseReaction("H2+O2", nil, data, cfg)
	var serr *formula.SyntaxError
	if !errors.As(err, &serr) {
		Te.Errorf("expected a syntax error, got %v", err)
	}
}

func TestReactionThermo(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	R, err := ParseReaction("2H2+O2=2H2O(g)", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if h := R.Enthalpy(); h[0] != -241.81 {
		Te.Errorf("expected [-241.81], got %v", h)
	}
	if s := R.Entropy(); s[0] != -0.044 {
		Te.Errorf("expected [-0.044], got %v", s)
	}
	if g := R.Gibbs(); g[0] != -228.603 {
		Te.Errorf("expected [-228.603], got %v", g)
	}
	if l := R.LnK(); !near(l[0], 92.313, 2e-3) {
		Te.Errorf("expected [92.313], got %v", l)
	}
	if k := R.K(); !near(math.Log(k[0]), 92.313, 2e-3) {
		Te.Errorf("expected exp(92.313), got %v", k)
	}
	R.SetConditions(NewConditions(param.NewTemperature(param.Array([]float64{298, 1000})), nil))
	if g := R.Gibbs(); len(g) != 2 || !near(g[1], -192.504, 1e-3) {
		Te.Errorf("unexpected Gibbs energy at 1000 K: %v", g)
	}
	for _, s := range R.Substances() {
		if s.Conditions() != R.Conditions() {
			Te.Errorf("conditions of %s not shared", s)
		}
	}
	//a substance changed from outside doesn't break the sums.
	O2 := R.Substances()[1]
	O2.SetConditions(NewConditions(param.NewTemperature(param.Array([]float64{300, 400, 500})), nil))
	if g := R.Gibbs(); len(g) != 2 || !near(g[1], -192.504, 1e-3) {
		Te.Errorf("unexpected Gibbs energy after changing %s: %v", O2, g)
	}
	if O2.Conditions() != R.Conditions() {
		Te.Errorf("conditions of %s not restored", O2)
	}
}

func TestOnset(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	T := param.NewTemperature(param.Array([]float64{500, 1500}))
	R, err := ParseReaction("CaCO3=CaO+CO2", NewConditions(T, nil), data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	O := R.Onset()
	if O.Kind != Above || O.T != 1113.798 || O.H != 178.23 {
		Te.Errorf("unexpected onset %+v", O)
	}
	if O.String() != "T>1113.798 K" {
		Te.Error(O.String())
	}
	//the conditions are restored
	if c := R.Conditions(); c.T != T || R.Substances()[0].Conditions().T != T {
		Te.Error("conditions not restored after the onset analysis")
	}
	R, err = ParseReaction("2H2+O2=2H2O(g)", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	O = R.Onset()
	if O.Kind != Below || !near(O.T, 5456.002, 1e-3) {
		Te.Errorf("unexpected onset %+v", O)
	}
	eq := R.Equation()
	if eq != "H2(g)+0.5O2(g) = H2O(g)+241.81 kJ (T<5456.002 K)" {
		Te.Error(eq)
	}
	fmt.Println(eq)
	if (Onset{Kind: Never}).String() == (Onset{Kind: Always}).String() {
		Te.Error("Never and Always should be told apart")
	}
}

func TestExtent(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	R, err := ParseReaction("2H2+O2=2H2O(g)", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if R.MaxExtent() != 0 {
		Te.Errorf("without moles the extent should be 0, got %v", R.MaxExtent())
	}
	R.SetMoles(map[string]float64{"H2": 2, "O2": 2, "He": 3})
	if x := R.MaxExtent(); x != 2 {
		Te.Errorf("expected a maximum extent of 2, got %v", x)
	}
	m := R.Advance(5)
	if m["H2"] != 0 || m["O2"] != 1 || m["H2O"] != 2 {
		Te.Errorf("unexpected amounts %v", m)
	}
	for k, v := range m {
		if v < 0 {
			Te.Errorf("negative amount of %s: %v", k, v)
		}
	}
	if x := R.MinExtent(); x != -2 {
		Te.Errorf("expected a minimum extent of -2, got %v", x)
	}
	//backwards, only the water formed can go back.
	m = R.Advance(-10)
	if m["H2"] != 2 || m["O2"] != 2 || m["H2O"] != 0 {
		Te.Errorf("unexpected amounts running backwards %v", m)
	}
	if x := R.MinExtent(); x != 0 {
		Te.Errorf("without products the minimum extent should be 0, got %v", x)
	}
	for _, v := range R.Rate(-1, Reversible, MolFraction, Gas, 0) {
		if math.IsNaN(v) {
			Te.Errorf("bad rate at a negative extent: %v", v)
		}
	}
	R.SetCoeffs(map[string]float64{"H2": -2, "O2": -1})
	if c := R.Coeffs(); c["H2O"] != 1 {
		Te.Errorf("missing coefficients should be 1: %v", c)
	}
}
