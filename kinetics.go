/*
 * kinetics.go, part of goTermod.
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
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/gotermod/formula"
)

//SetArrhenius sets the pre-exponential factor A and the activation energy
//Ea (J/mol) of the reaction.
func (R *Reaction) SetArrhenius(A, Ea float64) {
	R.factor = A
	R.energy = Ea
}

//Arrhenius returns the pre-exponential factor and the activation energy.
func (R *Reaction) Arrhenius() (A, Ea float64) {
	return R.factor, R.energy
}

//RateConstant returns the rate constant A*exp(-Ea/(R*T)) at each temperature,
//or its natural logarithm if log is true.
func (R *Reaction) RateConstant(log bool) []float64 {
	T := R.cond.Kelvin()
	ret := make([]float64, len(T))
	for i, t := range T {
		if log {
			ret[i] = math.Log(R.factor) - R.energy/(R.cfg.R*t)
		} else {
			ret[i] = R.factor * math.Exp(-R.energy/(R.cfg.R*t))
		}
	}
	return ret
}

//FitArrhenius obtains the Arrhenius parameters from the rate constants k measured
//at the temperatures T (K). Exactly two values are needed in each slice. The
//parameters are set in the reaction and returned. If the data is not usable, the
//problem is logged, the reaction is not changed and ok is false.
func (R *Reaction) FitArrhenius(k, T []float64) (A, Ea float64, ok bool) {
	log := R.log.WithFields(logrus.Fields{"k": k, "T": T})
	if len(k) != 2 || len(T) != 2 {
		log.Warn("Two rate constants and two temperatures are needed")
		return R.factor, R.energy, false
	}
	if T[0] == T[1] || k[0] <= 0 || k[1] <= 0 {
		log.Warn("Rate constants must be positive and temperatures different")
		return R.factor, R.energy, false
	}
	Ea = (R.cfg.R * T[0] * T[1] / (T[0] - T[1])) * math.Log(k[0]/k[1])
	A = math.Exp((T[0]*math.Log(k[0]) - T[1]*math.Log(k[1])) / (T[0] - T[1]))
	R.SetArrhenius(A, Ea)
	return A, Ea, true
}

//FitArrheniusLSQ is like FitArrhenius, but takes two or more points, and fits
//ln(k) against 1/T by least squares.
func (R *Reaction) FitArrheniusLSQ(k, T []float64) (A, Ea float64, ok bool) {
	log := R.log.WithFields(logrus.Fields{"k": k, "T": T})
	if len(k) < 2 || len(k) != len(T) {
		log.Warn("At least two rate constants, each with its temperature, are needed")
		return R.factor, R.energy, false
	}
	x := make([]float64, len(T))
	y := make([]float64, len(k))
	for i := range k {
		if k[i] <= 0 || T[i] <= 0 {
			log.Warn("Rate constants and temperatures must be positive")
			return R.factor, R.energy, false
		}
		x[i] = 1 / T[i]
		y[i] = math.Log(k[i])
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		log.Warn("Can't fit the data")
		return R.factor, R.energy, false
	}
	A = math.Exp(alpha)
	Ea = -beta * R.cfg.R
	R.SetArrhenius(A, Ea)
	return A, Ea, true
}

//SetOrders sets the reaction order of each substance. Substances absent
//from o get their coefficient as order.
func (R *Reaction) SetOrders(o map[string]float64) {
	for _, s := range R.substances {
		v, ok := o[s.Formula()]
		if !ok {
			v = s.Coeff
		}
		R.orders[s.Formula()] = v
	}
}

//Orders returns the reaction order of each substance.
func (R *Reaction) Orders() map[string]float64 {
	ret := make(map[string]float64, len(R.orders))
	for k, v := range R.orders {
		ret[k] = v
	}
	return ret
}

//Course is the direction of the reaction considered in a rate law.
type Course int

const (
	Forward Course = iota
	Reverse
	Reversible
)

//Variable is the kind of quantity used in a rate law.
type Variable string

const (
	Brackets      Variable = "[]" //molar concentrations, as [A]
	MolFraction   Variable = "x"
	Partial       Variable = "p" //partial pressures
	Concentration Variable = "C"
)

//RateLaw returns the mass action law for the substances of the reaction in
//the given phase, as an HTML or TeX string (TXT gives HTML). Each term is
//raised to the absolute value of its order, as in "v=k<sub>+</sub>[CO]<sup>1</sup>".
func (R *Reaction) RateLaw(course Course, style formula.Style, v Variable, phase Phase) string {
	if style == formula.TXT {
		style = formula.HTML
	}
	join := ""
	if style == formula.TEX {
		join = `\cdot `
	}
	prefix, vopen, vclose := "", "[", "]"
	if v != Brackets {
		prefix, vopen, vclose = string(v), style.SubOpen(), style.SubClose()
	}
	var reac, prod []string
	for _, s := range R.substances {
		if s.phase != phase {
			continue
		}
		t := prefix + vopen + s.Markup(style) + vclose + style.SupOpen() +
			strconv.FormatFloat(math.Abs(R.orders[s.Formula()]), 'g', -1, 64) + style.SupClose()
		if s.Coeff < 0 {
			reac = append(reac, t)
		} else if s.Coeff > 0 {
			prod = append(prod, t)
		}
	}
	k1 := "k" + style.SubOpen() + "+" + style.SubClose() + strings.Join(reac, join)
	k2 := "k" + style.SubOpen() + "-" + style.SubClose() + strings.Join(prod, join)
	switch course {
	case Forward:
		return "v=" + k1
	case Reverse:
		return "v=" + k2
	}
	return "v=" + k1 + "-" + k2
}

//Rate evaluates the mass action law, at each temperature, after the reaction
//proceeds by the given extent (clamped between MinExtent and MaxExtent). The amounts of the
//substances are not changed. Molar fractions are taken over all the
//substances, and converted to partial pressures (Partial, gases only, with
//par as total pressure) or concentrations (Concentration or Brackets, dividing
//by R*T). The reverse rate constant is taken as 1.
func (R *Reaction) Rate(extent float64, course Course, v Variable, phase Phase, par float64) []float64 {
	T := R.cond.Kelvin()
	ret := make([]float64, len(T))
	x := R.clampExtent(extent)
	moles := make(map[string]float64, len(R.substances))
	var total float64
	for _, s := range R.substances {
		m := s.Moles + s.Coeff*x
		moles[s.Formula()] = m
		total += m
	}
	if total <= 0 {
		return ret
	}
	r1, r2 := 1.0, 1.0
	var o1, o2 float64
	for _, s := range R.substances {
		if s.phase != phase {
			continue
		}
		o := math.Abs(R.orders[s.Formula()])
		f := math.Pow(moles[s.Formula()]/total, o)
		if s.Coeff < 0 {
			r1 *= f
			o1 += o
		} else if s.Coeff > 0 {
			r2 *= f
			o2 += o
		}
	}
	if v == Partial && phase == Gas {
		r1 *= math.Pow(par, o1)
		r2 *= math.Pow(par, o2)
	}
	k1 := R.RateConstant(false)
	k2 := 1.0
	for i, t := range T {
		f, b := k1[i]*r1, k2*r2
		if v == Concentration || v == Brackets {
			f /= math.Pow(R.cfg.R*t, o1)
			b /= math.Pow(R.cfg.R*t, o2)
		}
		switch course {
		case Forward:
			ret[i] = f
		case Reverse:
			ret[i] = b
		default:
			ret[i] = f - b
		}
	}
	return ret
}
