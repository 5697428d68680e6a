/*
 * conditions.go, part of goTermod.
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
	"github.com/rmera/gotermod/param"
)

//Conditions are the state parameters under which the properties are
//calculated. Many models can share the same Conditions.
type Conditions struct {
	T *param.Temperature
	P *param.Pressure
}

//StandardConditions returns 298 K and 1e5 Pa.
func StandardConditions() *Conditions {
	return &Conditions{
		T: param.NewTemperature(param.Scalar(param.StdTemperature)),
		P: param.NewPressure(param.Scalar(param.StdPressure)),
	}
}

//NewConditions returns conditions with the given temperature and pressure.
//nil values are replaced by the standard ones.
func NewConditions(T *param.Temperature, P *param.Pressure) *Conditions {
	C := StandardConditions()
	if T != nil {
		C.T = T
	}
	if P != nil {
		C.P = P
	}
	return C
}

//orStandard returns C, or standard conditions if C is nil. Missing
//fields in C are set to their standard values.
func (C *Conditions) orStandard() *Conditions {
	if C == nil {
		return StandardConditions()
	}
	if C.T == nil {
		C.T = param.NewTemperature(param.Scalar(param.StdTemperature))
	}
	if C.P == nil {
		C.P = param.NewPressure(param.Scalar(param.StdPressure))
	}
	return C
}

//Kelvin returns the temperature values in K. The temperature in C is
//not modified.
func (C *Conditions) Kelvin() []float64 {
	return C.T.Kelvin().Value()
}

//Len returns the number of temperature values.
func (C *Conditions) Len() int {
	return C.T.Len()
}
