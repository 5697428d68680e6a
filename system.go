/*
 * system.go, part of goTermod.
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
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/rmera/gotermod/param"
)

//Component is one substance of a system, with its amount in moles.
type Component struct {
	Formula string
	Moles   float64
	Phase   string
}

//System is a mixture of substances plus, optionally, an inert component,
//all at the same temperature.
type System struct {
	name       string
	substances []*Substance
	inerts     float64
	total      float64
	cond       *Conditions
	data       *Data
	cfg        *Config
	log        logrus.FieldLogger
}

//NewSystem returns a system with the given components at the temperature T
//(nil gives 298 K). Components with non-positive amounts or not found in the
//data are not added. The only error returned is a *formula.SyntaxError.
func NewSystem(name string, comps []Component, T *param.Temperature, data *Data, cfg *Config) (*System, error) {
	cfg = cfg.orDefault()
	S := &System{
		name: name,
		cond: NewConditions(T, nil),
		data: data,
		cfg:  cfg,
		log:  cfg.Log.WithField("system", name),
	}
	for _, c := range comps {
		if _, err := S.AddSubstance(c.Formula, c.Moles, c.Phase); err != nil {
			return nil, errDecorate(err, "NewSystem")
		}
	}
	return S, nil
}

//Name returns the name of the system.
func (S *System) Name() string {
	return S.name
}

//SetTemperature sets the temperature for the system and all its substances.
//nil gives 298 K.
func (S *System) SetTemperature(T *param.Temperature) {
	S.cond = NewConditions(T, S.cond.P)
	for _, s := range S.substances {
		s.SetConditions(S.cond)
	}
}

//Conditions returns the conditions of the system.
func (S *System) Conditions() *Conditions {
	return S.cond
}

//composition recalculates the total amount and the molar fractions.
func (S *System) composition() {
	S.total = S.inerts
	for _, s := range S.substances {
		S.total += s.Moles
	}
	for _, s := range S.substances {
		s.Fraction = 0
		if S.total > 0 {
			s.Fraction = s.Moles / S.total
		}
	}
}

//AddSubstance adds moles of the substance with formula f in the given phase.
//It returns false, and the system is not changed, if moles is not positive or
//the substance is not in the data. An error is returned only if f can't be parsed.
func (S *System) AddSubstance(f string, moles float64, phase string) (bool, error) {
	log := S.log.WithFields(logrus.Fields{"formula": f, "moles": moles})
	if moles <= 0 {
		log.Warn("Amount of substance must be positive")
		return false, nil
	}
	sub, err := NewSubstance(f, phase, S.cond, S.data, S.cfg)
	if err != nil {
		return false, errDecorate(err, "AddSubstance")
	}
	if !sub.Valid() {
		log.Warn("Substance not added")
		return false, nil
	}
	sub.Moles = moles
	S.substances = append(S.substances, sub)
	S.composition()
	return true, nil
}

//index returns the position of the first substance with formula f, or -1.
func (S *System) index(f string) int {
	for i, s := range S.substances {
		if s.Formula() == f {
			return i
		}
	}
	return -1
}

//ChangeAll changes the amount of the inert component by delta. It returns
//false, and does nothing, if the amount would become negative.
func (S *System) ChangeAll(delta float64) bool {
	if S.inerts+delta < 0 {
		return false
	}
	S.inerts += delta
	S.composition()
	return true
}

//ChangeSubstance sets the amount of the substance with formula f. It returns
//false if the substance is not in the system or moles is not positive.
func (S *System) ChangeSubstance(f string, moles float64) bool {
	i := S.index(f)
	if i < 0 || moles <= 0 {
		return false
	}
	S.substances[i].Moles = moles
	S.composition()
	return true
}

//DeleteSubstance removes the substance with formula f, and reports
//whether it was in the system.
func (S *System) DeleteSubstance(f string) bool {
	i := S.index(f)
	if i < 0 {
		return false
	}
	S.substances = append(S.substances[:i], S.substances[i+1:]...)
	S.composition()
	return true
}

//Substances returns the substances of the system. They are shared
//with the system.
func (S *System) Substances() []*Substance {
	return append([]*Substance(nil), S.substances...)
}

//Total returns the total amount, in moles, including the inert component.
func (S *System) Total() float64 {
	return S.total
}

//Inerts returns the amount of the inert component.
func (S *System) Inerts() float64 {
	return S.inerts
}

//Percent returns the molar percentage of the substance with formula f.
func (S *System) Percent(f string) (float64, bool) {
	i := S.index(f)
	if i < 0 {
		return 0, false
	}
	return S.substances[i].Fraction * 100, true
}

//InertPercent returns the molar percentage of the inert component.
func (S *System) InertPercent() float64 {
	if S.total <= 0 {
		return 0
	}
	return S.inerts * 100 / S.total
}

//Valid returns true if every substance is in the data, and the percentages of
//the substances and the inert component add up to 100, to 2 decimal places.
func (S *System) Valid() bool {
	if S.total <= 0 {
		return false
	}
	sum := S.InertPercent()
	for _, s := range S.substances {
		if !s.Valid() {
			return false
		}
		sum += s.Fraction * 100
	}
	return round1(sum, 2) == 100
}

//weighted adds up prop times weight for every substance, and rounds the result.
func (S *System) weighted(prop func(*Substance) []float64, weight func(*Substance) float64) []float64 {
	ret := make([]float64, S.cond.Len())
	for _, s := range S.substances {
		floats.AddScaled(ret, weight(s), prop(s))
	}
	return roundTo(ret, S.cfg.Digits)
}

func moles(s *Substance) float64    { return s.Moles }
func fraction(s *Substance) float64 { return s.Fraction }

//Enthalpy returns the enthalpy of the system, in kJ.
func (S *System) Enthalpy() []float64 {
	return S.weighted((*Substance).Enthalpy, moles)
}

//Entropy returns the entropy of the system, in kJ/K.
func (S *System) Entropy() []float64 {
	return S.weighted((*Substance).Entropy, moles)
}

//Gibbs returns the Gibbs energy of the system, from the chemical potentials
//of the substances.
func (S *System) Gibbs() []float64 {
	return S.weighted((*Substance).ChemPotential, moles)
}

//MeanAtomization returns the mean atomization energy per bond.
func (S *System) MeanAtomization() []float64 {
	return S.weighted(func(s *Substance) []float64 { return s.Atomization(true) }, fraction)
}

//Strength returns the strength coefficient of the system, its mean atomization
//energy over that of the reference substance. Temperatures where the reference
//gives zero get a zero coefficient.
func (S *System) Strength() []float64 {
	mean := S.MeanAtomization()
	ref, err := NewSubstance(S.cfg.Reference, S.cfg.ReferencePhase, S.cond, S.data, S.cfg)
	if err != nil {
		S.log.WithError(err).Warn("Bad reference substance")
		return make([]float64, len(mean))
	}
	r := ref.Atomization(true)
	for i := range mean {
		if r[i] == 0 {
			mean[i] = 0
			continue
		}
		mean[i] /= r[i]
	}
	return roundTo(mean, S.cfg.Digits)
}

//ReportUnits selects the units of a System report.
type ReportUnits int

const (
	ReportPercent ReportUnits = iota
	ReportMoles
)

//Report returns the amount of each substance, and of the inert component
//(key "inerts"), with the total under the key "total".
func (S *System) Report(u ReportUnits) map[string]float64 {
	ret := make(map[string]float64, len(S.substances)+2)
	d := S.cfg.Digits
	if u == ReportMoles {
		for _, s := range S.substances {
			ret[s.Formula()] = round1(s.Moles, d)
		}
		ret["inerts"] = round1(S.inerts, d)
		ret["total"] = round1(S.total, d)
		return ret
	}
	for _, s := range S.substances {
		ret[s.Formula()] = round1(s.Fraction*100, d)
	}
	ret["inerts"] = round1(S.InertPercent(), d)
	ret["total"] = 100
	return ret
}

//Info returns the name of the system and its composition, in molar percent.
func (S *System) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "System %s, %g mol\n", S.name, round1(S.total, S.cfg.Digits))
	for _, s := range S.substances {
		fmt.Fprintf(&b, "%s\t%g mol\t%g %%\n", s, round1(s.Moles, S.cfg.Digits), round1(s.Fraction*100, S.cfg.Digits))
	}
	if S.inerts > 0 {
		fmt.Fprintf(&b, "inerts\t%g mol\t%g %%\n", round1(S.inerts, S.cfg.Digits), round1(S.InertPercent(), S.cfg.Digits))
	}
	return b.String()
}
