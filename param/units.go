/*
 * units.go, part of goTermod.
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

package param

//Temperature units
const (
	Kelvin     = "K"
	Celsius    = "C"
	Fahrenheit = "F"
)

//Pressure units
const (
	Pascal     = "Pa"
	Bar        = "bar"
	Atmosphere = "at"
)

//Conversion factors
const (
	ZeroCelsius        = 273.0 //K
	FahrenheitZero     = 32.0
	Celsius2Fahrenheit = 9.0 / 5.0
	Pa2Bar             = 1e-5
	Bar2Pa             = 1e5
	Atm2Pa             = 101325.0
)

//Standard values
const (
	StdTemperature = 298.0
	StdPressure    = 100000.0
)

//Temperature is a parameter in K, C or F.
type Temperature struct {
	*Parameter
}

//NewTemperature returns a temperature in K, with standard value 298 K.
func NewTemperature(v Values) *Temperature {
	T := &Temperature{New("temperature", Kelvin, v, StdTemperature)}
	T.SetListUnits([]string{Kelvin, Celsius, Fahrenheit})
	return T
}

//SetUnits converts the temperature to the units u. Only the K<->C and
//C<->F conversions are defined, any other change does nothing, and
//false is returned.
func (T *Temperature) SetUnits(u string) bool {
	old := T.Units()
	if !isInString(T.lstunits, u) {
		return false
	}
	switch {
	case old == Kelvin && u == Celsius:
		T.Add(-ZeroCelsius)
	case old == Celsius && u == Kelvin:
		T.Add(ZeroCelsius)
	case old == Celsius && u == Fahrenheit:
		T.Mul(Celsius2Fahrenheit)
		T.Add(FahrenheitZero)
	case old == Fahrenheit && u == Celsius:
		T.Add(-FahrenheitZero)
		T.Mul(1 / Celsius2Fahrenheit)
	default:
		return false
	}
	return T.Parameter.SetUnits(u)
}

//Copy returns an independent copy of the temperature.
func (T *Temperature) Copy() *Temperature {
	return &Temperature{T.Parameter.Copy()}
}

//Kelvin returns T if it is already in K, or a copy of T converted to K
//otherwise. T is never modified.
func (T *Temperature) Kelvin() *Temperature {
	if T.Units() == Kelvin {
		return T
	}
	ret := T.Copy()
	if ret.Units() == Fahrenheit {
		ret.SetUnits(Celsius)
	}
	ret.SetUnits(Kelvin)
	return ret
}

//Pressure is a parameter in Pa, bar or at.
type Pressure struct {
	*Parameter
}

//NewPressure returns a pressure in Pa, with standard value 1e5 Pa.
func NewPressure(v Values) *Pressure {
	P := &Pressure{New("pressure", Pascal, v, StdPressure)}
	P.SetListUnits([]string{Pascal, Bar, Atmosphere})
	return P
}

//SetUnits converts the pressure to the units u. Only conversions from
//and to Pa are defined, any other change does nothing, and false is returned.
func (P *Pressure) SetUnits(u string) bool {
	old := P.Units()
	if !isInString(P.lstunits, u) {
		return false
	}
	switch {
	case old == Pascal && u == Bar:
		P.Mul(Pa2Bar)
	case old == Bar && u == Pascal:
		P.Mul(Bar2Pa)
	case old == Pascal && u == Atmosphere:
		P.Mul(1 / Atm2Pa)
	case old == Atmosphere && u == Pascal:
		P.Mul(Atm2Pa)
	default:
		return false
	}
	return P.Parameter.SetUnits(u)
}

//Copy returns an independent copy of the pressure.
func (P *Pressure) Copy() *Pressure {
	return &Pressure{P.Parameter.Copy()}
}

//NewVolume returns a volume parameter in m3, standard value 1.
func NewVolume(v Values) *Parameter {
	V := New("volume", "m3", v, 1)
	V.SetListUnits([]string{"m3"})
	return V
}

//NewArea returns an area parameter in m2, standard value 1.
func NewArea(v Values) *Parameter {
	A := New("area", "m2", v, 1)
	A.SetListUnits([]string{"m2"})
	return A
}
