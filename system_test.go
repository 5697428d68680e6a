/*
 * system_test.go, part of goTermod.
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
	"fmt"
	"testing"

	"github.com/rmera/gotermod/param"
)

func testSystem(Te *testing.T) *System {
	cfg, _ := testConfig()
	comps := []Component{
		{"MgO", 1, "k"},
		{"SiO2", 1, "k"},
		{"NaCl", 2, "k"}, //not in the data
		{"CaO", 0, "k"},  //no amount
	}
	S, err := NewSystem("slag", comps, nil, testData(Te), cfg)
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func TestSystemComposition(Te *testing.T) {
	S := testSystem(Te)
	if len(S.Substances()) != 2 || S.Total() != 2 {
		Te.Fatalf("expected 2 substances and 2 mol, got %d and %v", len(S.Substances()), S.Total())
	}
	if p, ok := S.Percent("MgO"); !ok || p != 50 {
		Te.Errorf("expected 50%% MgO, got %v", p)
	}
	if !S.Valid() {
		Te.Error("system should be valid")
	}
	if !S.ChangeAll(2) || S.Total() != 4 || S.Inerts() != 2 {
		Te.Errorf("inerts not added: %v %v", S.Total(), S.Inerts())
	}
	if p, _ := S.Percent("SiO2"); p != 25 {
		Te.Errorf("expected 25%% SiO2, got %v", p)
	}
	if S.ChangeAll(-3) || S.Inerts() != 2 {
		Te.Error("the inert amount can't be negative")
	}
	if !S.ChangeSubstance("MgO", 3) || S.ChangeSubstance("MgO", 0) || S.ChangeSubstance("CaO", 1) {
		Te.Error("unexpected result changing the substances")
	}
	if p, _ := S.Percent("MgO"); p != 50 {
		Te.Errorf("expected 50%% MgO, got %v", p)
	}
	ok, err := S.AddSubstance("CaO", 1, "k")
	if !ok || err != nil {
		Te.Error("CaO not added", err)
	}
	if ok, _ := S.AddSubstance("CO2", -1, "g"); ok {
		Te.Error("negative amounts should not be accepted")
	}
	if _, err := S.AddSubstance("Ca(O", 1, "k"); err == nil {
		Te.Error("expected a syntax error")
	}
	//the fractions always add up to 1
	sum := S.Inerts() / S.Total()
	for _, s := range S.Substances() {
		sum += s.Fraction
	}
	if !near(sum, 1, 1e-12) || !S.Valid() {
		Te.Errorf("fractions add up to %v", sum)
	}
	if !S.DeleteSubstance("MgO") || S.DeleteSubstance("MgO") {
		Te.Error("MgO should be deleted once")
	}
	r := S.Report(ReportMoles)
	if r["SiO2"] != 1 || r["CaO"] != 1 || r["inerts"] != 2 || r["total"] != 4 {
		Te.Errorf("unexpected report %v", r)
	}
	r = S.Report(ReportPercent)
	if r["SiO2"] != 25 || r["inerts"] != 50 || r["total"] != 100 {
		Te.Errorf("unexpected report %v", r)
	}
	fmt.Println(S.Info())
}

//TestSmallFractions builds a system out of many small amounts that don't
//give exact percentages, and checks that they still add up to 100.
func TestSmallFractions(Te *testing.T) {
	cfg, _ := testConfig()
	comps := []Component{
		{"MgO", 1.0 / 3, "k"},
		{"SiO2", 1.0 / 7, "k"},
		{"CaO", 2.0 / 9, "k"},
	}
	S, err := NewSystem("dust", comps, nil, testData(Te), cfg)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		f := []string{"MgO", "SiO2", "CaO", "CaCO3"}[i%4]
		if ok, err := S.AddSubstance(f, 0.001, "k"); !ok || err != nil {
			Te.Fatalf("addition %d of %s failed: %v", i, f, err)
		}
	}
	if !S.ChangeAll(1.0 / 11) {
		Te.Fatal("can't add the inerts")
	}
	if n := len(S.Substances()); n != 1003 {
		Te.Fatalf("expected 1003 substances, got %d", n)
	}
	sum := S.InertPercent()
	for _, s := range S.Substances() {
		sum += s.Fraction * 100
	}
	if !near(sum, 100, 0.01) {
		Te.Errorf("percentages add up to %v", sum)
	}
	if !S.Valid() {
		Te.Errorf("system should be valid, total %v mol, %v%% inerts", S.Total(), S.InertPercent())
	}
	want := 1.0/3 + 1.0/7 + 2.0/9 + 1 + 1.0/11
	if !near(S.Total(), want, 1e-9) {
		Te.Errorf("expected %v mol, got %v", want, S.Total())
	}
	if p, _ := S.Percent("SiO2"); !near(p, 100*(1.0/7)/want, 1e-9) {
		Te.Errorf("unexpected SiO2 percentage %v", p)
	}
}

func TestSystemThermo(Te *testing.T) {
	S := testSystem(Te)
	if h := S.Enthalpy(); h[0] != -1512.54 {
		Te.Errorf("expected [-1512.54], got %v", h)
	}
	var mu float64
	for _, s := range S.Substances() {
		mu += s.ChemPotential()[0] * s.Moles
	}
	if g := S.Gibbs(); !near(g[0], mu, 1e-3) {
		Te.Errorf("expected [%v], got %v", mu, g)
	}
	S.SetTemperature(param.NewTemperature(param.Array([]float64{298, 1000})))
	if h := S.Enthalpy(); len(h) != 2 {
		Te.Errorf("temperature not set, got %v", h)
	}
	for _, s := range S.Substances() {
		if s.Conditions() != S.Conditions() {
			Te.Errorf("conditions of %s not shared", s)
		}
	}
}

func TestStrength(Te *testing.T) {
	cfg, _ := testConfig()
	data := testData(Te)
	S, err := NewSystem("silica", []Component{{"SiO2", 3, "k"}}, nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if a := S.MeanAtomization(); !near(a[0], 462.785, 1e-3) {
		Te.Errorf("expected 462.785, got %v", a)
	}
	if s := S.Strength(); s[0] != 1 {
		Te.Errorf("the reference substance should have a strength of 1, got %v", s)
	}
	S, err = NewSystem("periclase", []Component{{"MgO", 1, "k"}}, nil, data, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if s := S.Strength(); !near(s[0], 164.809/462.785, 1e-3) {
		Te.Errorf("unexpected strength %v", s)
	}
	cfg.Reference = "NaCl"
	if s := S.Strength(); s[0] != 0 {
		Te.Errorf("without reference data the strength should be 0, got %v", s)
	}
}
