/*
 * substance_test.go, part of goTermod.
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
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/rmera/gotermod/formula"
	"github.com/rmera/gotermod/param"
	"github.com/rmera/gotermod/periodic"
)

func TestMgO(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	S, err := NewSubstance("MgO", "k", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if !S.Valid() {
		Te.Fatal("MgO should be valid")
	}
	if h := S.Enthalpy(); len(h) != 1 || h[0] != -601.6 {
		Te.Errorf("expected [-601.6], got %v", h)
	}
	if s := S.Entropy(); s[0] != 0.027 {
		Te.Errorf("expected [0.027], got %v", s)
	}
	if g := S.Gibbs(); g[0] != -609.616 {
		Te.Errorf("expected [-609.616], got %v", g)
	}
	//crystals don't get the RT term.
	if a := S.Helmholtz(); a[0] != -609.616 {
		Te.Errorf("expected [-609.616], got %v", a)
	}
	S.SetConditions(NewConditions(param.NewTemperature(param.Array([]float64{298, 1000})), nil))
	h := S.Enthalpy()
	if len(h) != 2 || !near(h[1], -566.223, 1e-3) {
		Te.Errorf("unexpected enthalpy at 1000 K: %v", h)
	}
	if g := S.Gibbs(); !near(g[1], -653.365, 1e-3) {
		Te.Errorf("unexpected Gibbs energy at 1000 K: %v", g)
	}
	S.Coeff = 2
	if h2 := S.Enthalpy(); !near(h2[1], 2*h[1], 2e-3) {
		Te.Errorf("coefficient not applied: %v vs %v", h2, h)
	}
	fmt.Println(S.Info())
}

func TestCelsius(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	T := param.NewTemperature(param.Scalar(298))
	if !T.SetUnits(param.Celsius) || T.Value()[0] != 25 {
		Te.Fatalf("bad conversion to C: %v", T.Value())
	}
	S, err := NewSubstance("MgO", "k", NewConditions(T, nil), data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	//25 C is 298 K, with the 273 offset used in the conversions.
	if h := S.Enthalpy(); h[0] != -601.6 {
		Te.Errorf("expected [-601.6], got %v", h)
	}
	if T.Units() != param.Celsius || T.Value()[0] != 25 {
		Te.Errorf("temperature was modified: %v %s", T.Value(), T.Units())
	}
}

func TestNotFound(Te *testing.T) {
	data := testData(Te)
	cfg, hook := testConfig()
	S, err := NewSubstance("NaCl", "k", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Valid() {
		Te.Error("NaCl is not in the data")
	}
	if h := S.Enthalpy(); h[0] != 0 {
		Te.Errorf("expected zero enthalpy, got %v", h)
	}
	if a := S.Atomization(true); a[0] != 0 {
		Te.Errorf("expected zero atomization, got %v", a)
	}
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.WarnLevel || e.Data["formula"] != "NaCl" {
		Te.Errorf("expected a warning for NaCl, got %v", e)
	}
	if !strings.Contains(S.Info(), "not in the database") {
		Te.Error(S.Info())
	}
	S, err = NewSubstance("MgO", "k", nil, nil, cfg)
	if err != nil || S.Valid() {
		Te.Error("a substance without data should not be valid", err)
	}
}

func TestBadFormula(Te *testing.T) {
	cfg, _ := testConfig()
	_, err := NewSubstance("Mg(OH", "k", nil, testData(Te), cfg)
	var serr *formula.SyntaxError
	if !errors.As(err, &serr) {
		Te.Fatalf("expected a syntax error, got %v", err)
	}
	if d := serr.Decorate(""); d[len(d)-1] != "NewSubstance" {
		Te.Errorf("error not decorated: %v", d)
	}
}

func TestPhaseTransition(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	//enough digits to see the 0.001 K step below the transition.
	cfg.Digits = 9
	T := param.NewTemperature(param.Array([]float64{999.999, 1000, 1500}))
	S, err := NewSubstance("Xy", "k", NewConditions(T, nil), data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	in := S.Intervals()
	if len(in) != 2 || in[0].Low != 298 || in[0].HFP != 5 {
		Te.Fatalf("intervals not sorted: %v", in)
	}
	//what is left of the first interval between 999.999 and 1000 K, in kJ.
	t1, t2 := 999.999, 1000.0
	rest := (in[0].A*(t2-t1) + in[0].B*(t2*t2-t1*t1)/2000) / 1000
	I := S.EnthalpyIntegral(false)
	if !near(I[1]-I[0], 5+rest, 1e-7) {
		Te.Errorf("expected a jump of %g kJ at 1000 K, got %v", 5+rest, I)
	}
	Ix := S.EnthalpyIntegral(true)
	if !near(Ix[1]-Ix[0], rest, 1e-7) {
		Te.Errorf("expected only %g kJ without transitions, got %v", rest, Ix)
	}
	if !near(I[0], Ix[0], 1e-9) {
		Te.Errorf("the transition is counted below 1000 K: %v %v", I, Ix)
	}
	if !near(Ix[1], 23.338, 1e-3) || !near(I[2], 48.338, 1e-3) {
		Te.Errorf("unexpected integrals %v %v", I, Ix)
	}
	if !near(I[2]-Ix[2], 5, 1e-3) {
		Te.Errorf("transition not counted above 1000 K: %v %v", I, Ix)
	}
	//Cp at 1500 K comes from the second interval only.
	if cp := S.HeatCapacity(); !near(cp[2], 0.04, 1e-3) {
		Te.Errorf("expected 0.04 kJ/K at 1500 K, got %v", cp)
	}
	S.SetConditions(NewConditions(param.NewTemperature(param.Scalar(2500)), nil))
	if cp := S.HeatCapacity(); !near(cp[0], 0.04, 1e-3) {
		Te.Errorf("above the last interval, expected 0.04 kJ/K, got %v", cp)
	}
	S.SetConditions(NewConditions(param.NewTemperature(param.Scalar(100)), nil))
	if I := S.EnthalpyIntegral(false); I[0] != 0 {
		Te.Errorf("below the first interval, expected 0, got %v", I)
	}
}

func TestAtomization(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	S, err := NewSubstance("SiO2", "k", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if a := S.Atomization(true); !near(a[0], 462.785, 1e-3) {
		Te.Errorf("expected 462.785 per bond, got %v", a)
	}
	if a := S.Atomization(false); !near(a[0], 1851.142, 1e-3) {
		Te.Errorf("expected 1851.142 per unit, got %v", a)
	}
	S, _ = NewSubstance("CO2", "g", nil, data, cfg)
	if a := S.Atomization(false); a[0] != 0 {
		Te.Errorf("no structural data, expected 0, got %v", a)
	}
}

func TestChemPotential(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	S, err := NewSubstance("CO2", "g", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	g := S.Gibbs()
	if mu := S.ChemPotential(); mu[0] != g[0] {
		Te.Errorf("with a molar fraction of 1, expected %v, got %v", g, mu)
	}
	S.Fraction = 0.5
	mu := S.ChemPotential()
	if !(mu[0] < g[0]) {
		Te.Errorf("a diluted substance should have a lower potential: %v %v", mu, g)
	}
	if a := S.Helmholtz(); !near(a[0]-g[0], cfg.R*298, 1e-2) {
		Te.Errorf("expected the RT term for a gas, got %v %v", a, g)
	}
}

func TestSubstanceMisc(Te *testing.T) {
	data := testData(Te)
	cfg, _ := testConfig()
	S, err := NewSubstance("CaCO3", "x", nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Phase() != Gas || S.String() != "CaCO3(g)" {
		Te.Errorf("unknown phases should give gas: %s", S)
	}
	if S.SetPhase("k") != Crystal {
		Te.Error("phase not set")
	}
	if S.Markup(formula.HTML) != "CaCO<sub>3</sub>" {
		Te.Error(S.Markup(formula.HTML))
	}
	c := S.Composition()
	if c["Ca"] != 1 || c["C"] != 1 || c["O"] != 3 {
		Te.Errorf("bad composition %v", c)
	}
	if m := S.MolarMass(periodic.Default()); !near(m, 100.086, 1e-2) {
		Te.Errorf("expected 100.086 g/mol, got %v", m)
	}
}
