/*
 * substance.go, part of goTermod.
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
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/rmera/gotermod/formula"
	"github.com/rmera/gotermod/periodic"
	"github.com/rmera/gotermod/table"
)

//Substance is a chemical substance, identified by its formula, with the
//thermodynamic data for its temperature intervals. A substance not found
//in the data is not Valid, and all its properties are zero.
type Substance struct {
	formula   string
	phase     Phase
	comp      map[string]float64
	tree      *formula.Group
	intervals []Interval
	cond      *Conditions
	data      *Data
	cfg       *Config
	Coeff     float64 //stoichiometric coefficient, 1 by default
	Moles     float64
	Fraction  float64 //molar fraction (not percent), 1 by default
}

//NewSubstance returns the substance with formula f in the given phase (g, k, l or s,
//anything else is taken as gas). Its data is read from data.Thermo. The only error
//returned is a *formula.SyntaxError for a formula that can't be parsed. nil cond and
//cfg give the standard conditions and the default configuration, respectively.
func NewSubstance(f, phase string, cond *Conditions, data *Data, cfg *Config) (*Substance, error) {
	f = strings.TrimSpace(f)
	tree, err := formula.ParseTree(f)
	if err != nil {
		return nil, errDecorate(err, "NewSubstance")
	}
	S := &Substance{
		formula:  f,
		phase:    ParsePhase(phase),
		comp:     formula.Flatten(tree),
		tree:     tree,
		cond:     cond.orStandard(),
		data:     data,
		cfg:      cfg.orDefault(),
		Coeff:    1,
		Fraction: 1,
	}
	S.load()
	return S, nil
}

//load reads the intervals of the substance, sorted by their lower limit.
func (S *Substance) load() {
	log := S.cfg.Log.WithFields(logrus.Fields{"formula": S.formula, "phase": string(S.phase)})
	S.intervals = nil
	if S.data == nil || S.data.Thermo == nil {
		log.Warn("No thermodynamic data available")
		return
	}
	rows, err := S.data.Thermo.Select(table.Eq("subst", S.formula), table.Named(thermoFields...))
	if err != nil {
		log.WithError(err).Warn("Can't read thermodynamic data")
		return
	}
	if len(rows) == 0 {
		log.Warn("Substance not found")
		return
	}
	S.intervals = make([]Interval, 0, len(rows))
	for _, r := range rows {
		S.intervals = append(S.intervals, intervalFromRow(r))
	}
	sort.SliceStable(S.intervals, func(i, j int) bool { return S.intervals[i].Low < S.intervals[j].Low })
	log.WithField("intervals", len(S.intervals)).Debug("Substance loaded")
}

//Valid returns true if the substance was found in the data.
func (S *Substance) Valid() bool {
	return len(S.intervals) > 0
}

//Formula returns the formula of the substance, as given.
func (S *Substance) Formula() string {
	return S.formula
}

//Markup returns the formula with the indexes as subscripts in the given style.
func (S *Substance) Markup(style formula.Style) string {
	return formula.Format(S.formula, style)
}

//Phase returns the phase of the substance.
func (S *Substance) Phase() Phase {
	return S.phase
}

//SetPhase sets the phase of the substance (unknown names give gas),
//and returns the new phase.
func (S *Substance) SetPhase(p string) Phase {
	S.phase = ParsePhase(p)
	return S.phase
}

//Composition returns a copy of the element count map of the substance.
func (S *Substance) Composition() map[string]float64 {
	ret := make(map[string]float64, len(S.comp))
	for k, v := range S.comp {
		ret[k] = v
	}
	return ret
}

//Tree returns the parsed formula.
func (S *Substance) Tree() *formula.Group {
	return S.tree
}

//Intervals returns a copy of the temperature intervals of the substance.
func (S *Substance) Intervals() []Interval {
	return append([]Interval(nil), S.intervals...)
}

//Conditions returns the conditions used by the substance.
func (S *Substance) Conditions() *Conditions {
	return S.cond
}

//SetConditions replaces the conditions used by the substance. nil gives
//standard conditions.
func (S *Substance) SetConditions(c *Conditions) {
	S.cond = c.orStandard()
}

//MolarMass returns the molar mass of the substance in g/mol, using the
//element data in pt.
func (S *Substance) MolarMass(pt *periodic.Table) float64 {
	return pt.MolarMass(S.comp)
}

//spanFunc gives the contribution of the interval I between t1 and t2.
//full is true when the whole interval is below the temperature considered.
type spanFunc func(I Interval, t1, t2 float64, full bool) float64

//accumulate sums f over the intervals for each temperature value. The
//temperature is clamped to the lower limit of the first interval.
//The result is in J, not scaled by the coefficient.
func (S *Substance) accumulate(f spanFunc) []float64 {
	T := S.cond.Kelvin()
	ret := make([]float64, len(T))
	if !S.Valid() {
		return ret
	}
	low := S.intervals[0].Low
	for j, t := range T {
		if t <= low {
			t = low
		}
		var sum float64
		for _, I := range S.intervals {
			if t >= I.High {
				sum += f(I, I.Low, I.High, true)
			} else if t >= I.Low {
				sum += f(I, I.Low, t, false)
			}
		}
		ret[j] = sum
	}
	return ret
}

func enthalpySpan(excludeTransitions bool) spanFunc {
	return func(I Interval, t1, t2 float64, full bool) float64 {
		r := I.A * (t2 - t1)
		r += I.B * (t2*t2 - t1*t1) / 2000.0
		r += I.C * (t2*t2*t2 - t1*t1*t1) / 3e6
		r -= I.D * (1/t2 - 1/t1) * 1e5
		if full && !excludeTransitions {
			r += I.HFP * KJ2J
		}
		return r
	}
}

func entropySpan(I Interval, t1, t2 float64, full bool) float64 {
	r := I.A * math.Log(t2/t1)
	r += I.B * (t2 - t1) / 1000.0
	r += I.C * (t2*t2 - t1*t1) / 2e6
	r -= I.D * (1/(t2*t2) - 1/(t1*t1)) * 1e5 / 3
	if full {
		r += I.HFP * KJ2J / t2
	}
	return r
}

//scaled multiplies v by the coefficient, converts it from J to kJ and
//rounds it. v is modified.
func (S *Substance) scaled(v []float64) []float64 {
	floats.Scale(S.Coeff*J2KJ, v)
	return roundTo(v, S.cfg.Digits)
}

//HeatCapacity returns the heat capacity correction, in kJ/K, for each
//temperature, evaluated with the interval containing it. Above the last
//interval, the value at its upper limit is used.
func (S *Substance) HeatCapacity() []float64 {
	T := S.cond.Kelvin()
	ret := make([]float64, len(T))
	if !S.Valid() {
		return ret
	}
	last := S.intervals[len(S.intervals)-1]
	for j, t := range T {
		if t <= S.intervals[0].Low {
			t = S.intervals[0].Low
		}
		I := last
		if t >= last.High {
			t = last.High
		} else {
			for _, v := range S.intervals {
				if t >= v.Low && t < v.High {
					I = v
					break
				}
			}
		}
		ret[j] = I.A + I.B*t/1000.0 + I.C*t*t/1e6 - I.D*1e5/(t*t)
	}
	return S.scaled(ret)
}

//EnthalpyIntegral returns the integral of the heat capacity from the lower limit
//of the first interval to each temperature, in kJ. The enthalpies of the phase
//transitions crossed are added unless excludeTransitions is true.
func (S *Substance) EnthalpyIntegral(excludeTransitions bool) []float64 {
	return S.scaled(S.accumulate(enthalpySpan(excludeTransitions)))
}

//EntropyIntegral returns the integral of Cp/T, in kJ/K, from the lower limit of
//the first interval to each temperature, including the phase transitions crossed.
func (S *Substance) EntropyIntegral() []float64 {
	return S.scaled(S.accumulate(entropySpan))
}

//enthalpy and entropy return the unrounded values, in kJ and kJ/K.
func (S *Substance) enthalpy() []float64 {
	ret := S.accumulate(enthalpySpan(false))
	if !S.Valid() {
		return ret
	}
	for i, v := range ret {
		ret[i] = S.Coeff * (S.intervals[0].H298 + v*J2KJ)
	}
	return ret
}

func (S *Substance) entropy() []float64 {
	ret := S.accumulate(entropySpan)
	if !S.Valid() {
		return ret
	}
	for i, v := range ret {
		ret[i] = S.Coeff * (S.intervals[0].S298 + v) * J2KJ
	}
	return ret
}

func (S *Substance) gibbs() []float64 {
	H := S.enthalpy()
	if !S.Valid() {
		return H
	}
	s := S.entropy()
	T := S.cond.Kelvin()
	for i := range H {
		H[i] -= T[i] * s[i]
	}
	return H
}

//Enthalpy returns the enthalpy of formation, in kJ, at each temperature,
//multiplied by the coefficient.
func (S *Substance) Enthalpy() []float64 {
	return roundTo(S.enthalpy(), S.cfg.Digits)
}

//Entropy returns the entropy, in kJ/K, at each temperature, multiplied by
//the coefficient.
func (S *Substance) Entropy() []float64 {
	return roundTo(S.entropy(), S.cfg.Digits)
}

//Gibbs returns the Gibbs energy of formation, H-TS, in kJ.
func (S *Substance) Gibbs() []float64 {
	return roundTo(S.gibbs(), S.cfg.Digits)
}

//Helmholtz returns the Helmholtz energy. It is the Gibbs energy plus R*T*coefficient
//for gases, and the Gibbs energy for everything else.
func (S *Substance) Helmholtz() []float64 {
	return roundTo(S.helmholtz(), S.cfg.Digits)
}

func (S *Substance) helmholtz() []float64 {
	G := S.gibbs()
	if S.Valid() && S.phase == Gas {
		for i, t := range S.cond.Kelvin() {
			G[i] += S.cfg.R * t * S.Coeff
		}
	}
	return G
}

//ChemPotential returns the chemical potential, G + R*T*ln(Fraction).
func (S *Substance) ChemPotential() []float64 {
	G := S.gibbs()
	if S.Valid() {
		lnx := math.Log(S.Fraction)
		for i, t := range S.cond.Kelvin() {
			G[i] += S.cfg.R * t * lnx
		}
	}
	return roundTo(G, S.cfg.Digits)
}

//Atomization returns the atomization energy, per mole of the structural unit, or,
//if perBond is true, per bond. Substances without structural data (m, or z when
//perBond is true, equal to zero) give zeros.
func (S *Substance) Atomization(perBond bool) []float64 {
	T := S.cond.Kelvin()
	ret := make([]float64, len(T))
	if !S.Valid() {
		return ret
	}
	I := S.intervals[0]
	if I.M == 0 || (perBond && I.Z == 0) {
		return ret
	}
	integral := S.EnthalpyIntegral(true)
	for i, t := range T {
		ret[i] = I.Uat0 - t*(3*(2*I.M+I.N)/2)*S.cfg.R*J2KJ - integral[i]
		ret[i] /= I.M
		if perBond {
			ret[i] /= I.Z
		}
	}
	return roundTo(ret, S.cfg.Digits)
}

//Info returns a human-readable description of the data for the substance.
func (S *Substance) Info() string {
	if !S.Valid() {
		return fmt.Sprintf("Substance %s is not in the database", S.formula)
	}
	n := S.data.names()
	var b strings.Builder
	fmt.Fprintf(&b, "Data for %s\n", S.formula)
	for i, I := range S.intervals {
		fmt.Fprintf(&b, "Temperature interval: %g to %g K\n", I.Low, I.High)
		if i == 0 {
			fmt.Fprintf(&b, "%s:\t%g\n", n["dh298"], I.H298)
			fmt.Fprintf(&b, "%s:\t%g\n", n["ds298"], I.S298)
			fmt.Fprintf(&b, "%s:\t%g\n", n["dhh298"], I.HH298)
			fmt.Fprintf(&b, "%s:\t%g\n", n["uat0"], I.Uat0)
		}
		fmt.Fprintf(&b, "%s:\t%g\n", n["dhfp"], I.HFP)
		fmt.Fprintf(&b, "%s:\t%s\n", n["phase"], I.Phase)
		if i == 0 {
			b.WriteString("Structure\n")
			fmt.Fprintf(&b, "%s:\t%g\n", n["m_coeff"], I.M)
			fmt.Fprintf(&b, "%s:\t%g\n", n["n_coeff"], I.N)
			fmt.Fprintf(&b, "%s:\t%g\n", n["z_coeff"], I.Z)
		}
		b.WriteString("Heat capacity coefficients\n")
		fmt.Fprintf(&b, "%s:\t%g\n", n["da"], I.A)
		fmt.Fprintf(&b, "%s:\t%g\n", n["db"], I.B)
		fmt.Fprintf(&b, "%s:\t%g\n", n["dc"], I.C)
		fmt.Fprintf(&b, "%s:\t%g\n", n["dd"], I.D)
	}
	return b.String()
}

//String returns the formula and the phase, as in "H2O(g)".
func (S *Substance) String() string {
	return S.formula + "(" + string(S.phase) + ")"
}
