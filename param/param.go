/*
 * param.go, part of goTermod.
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

//Package param contains the state parameters (temperature, pressure, volume, area)
//used in thermodynamic calculations. A parameter is either a single value or
//a sweep of values, with units.
package param

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//Values describes how the values of a parameter are given. It is implemented
//by Scalar, Range and Array.
type Values interface {
	realize() (vals []float64, min, max, step float64)
}

//Scalar is a single value.
type Scalar float64

func (S Scalar) realize() ([]float64, float64, float64, float64) {
	return []float64{float64(S)}, float64(S), float64(S), 0
}

//Range is an evenly spaced sweep from Min (included) to Max (excluded).
//A non-positive step, or a range with no values, realizes to just Min.
type Range struct {
	Min, Max, Step float64
}

func (R Range) realize() ([]float64, float64, float64, float64) {
	n := 0
	if R.Step > 0 {
		n = int(math.Ceil((R.Max - R.Min) / R.Step))
	}
	if n <= 0 {
		return []float64{R.Min}, R.Min, R.Max, R.Step
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = R.Min + float64(i)*R.Step
	}
	return vals, R.Min, R.Max, R.Step
}

//Array is an explicit set of values.
type Array []float64

func (A Array) realize() ([]float64, float64, float64, float64) {
	if len(A) == 0 {
		return []float64{0}, 0, 0, 0
	}
	vals := make([]float64, len(A))
	copy(vals, A)
	return vals, floats.Min(vals), floats.Max(vals), 1
}

//Bounds describes the domain of a parameter.
type Bounds struct {
	Min, Max, Step float64
	Standard       float64
}

//Info is the general information on a parameter.
type Info struct {
	Name     string
	Units    string
	Value    []float64
	Standard float64
}

//Parameter is a named quantity with units, holding one or more values.
type Parameter struct {
	name     string
	units    string
	lstunits []string
	standard float64
	min      float64
	max      float64
	step     float64
	value    []float64
}

//New returns a new parameter with the given name, units, values and
//standard value. A nil v gives a single zero value.
func New(name, units string, v Values, standard float64) *Parameter {
	P := &Parameter{name: name, units: units, standard: standard}
	P.SetValue(v)
	return P
}

//Value returns a copy of the values of the parameter.
func (P *Parameter) Value() []float64 {
	ret := make([]float64, len(P.value))
	copy(ret, P.value)
	return ret
}

//At returns the ith value of the parameter.
func (P *Parameter) At(i int) float64 {
	return P.value[i]
}

//Len returns the number of values in the parameter.
func (P *Parameter) Len() int {
	return len(P.value)
}

//Name returns the name of the parameter.
func (P *Parameter) Name() string {
	return P.name
}

//Units returns the current units.
func (P *Parameter) Units() string {
	return P.units
}

//SetListUnits sets the units the parameter accepts.
func (P *Parameter) SetListUnits(l []string) {
	P.lstunits = append([]string(nil), l...)
}

//ListUnits returns the units the parameter accepts.
func (P *Parameter) ListUnits() []string {
	return append([]string(nil), P.lstunits...)
}

//SetUnits changes the units tag, without touching the values.
//It returns false, and does nothing, if u is the current unit or not
//an accepted unit.
func (P *Parameter) SetUnits(u string) bool {
	if u == P.units || !isInString(P.lstunits, u) {
		return false
	}
	P.units = u
	return true
}

//SetValue replaces the values of the parameter.
func (P *Parameter) SetValue(v Values) {
	if v == nil {
		P.value, P.min, P.max, P.step = []float64{0}, 0, 0, 0
		return
	}
	P.value, P.min, P.max, P.step = v.realize()
}

//Bounds returns the minimum, maximum, step and standard value.
func (P *Parameter) Bounds() Bounds {
	return Bounds{Min: P.min, Max: P.max, Step: P.step, Standard: P.standard}
}

//Standard returns the standard (reference) value.
func (P *Parameter) Standard() float64 {
	return P.standard
}

//Info returns the name, units, values and standard value.
func (P *Parameter) Info() Info {
	return Info{Name: P.name, Units: P.units, Value: P.Value(), Standard: P.standard}
}

//Add adds d to every value and to the standard value, and returns
//the new values.
func (P *Parameter) Add(d float64) []float64 {
	floats.AddConst(d, P.value)
	P.standard += d
	P.rebound()
	return P.Value()
}

//Mul multiplies every value, and the standard value, by f.
func (P *Parameter) Mul(f float64) []float64 {
	floats.Scale(f, P.value)
	P.standard *= f
	P.rebound()
	return P.Value()
}

//rebound recalculates min, max and step from the values.
func (P *Parameter) rebound() {
	l := len(P.value)
	P.min = P.value[0]
	P.max = P.value[l-1]
	if l < 2 {
		P.step = 0
		return
	}
	P.step = (P.max - P.min) / float64(l-1)
}

//Copy returns an independent copy of the parameter.
func (P *Parameter) Copy() *Parameter {
	ret := *P
	ret.value = P.Value()
	ret.lstunits = P.ListUnits()
	return &ret
}

func isInString(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}
