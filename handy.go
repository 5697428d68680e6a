/*
 * handy.go, part of goTermod.
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
)

//roundTo rounds every element of v to the given number of decimal digits,
//with ties to even, in place. It returns v.
func roundTo(v []float64, digits int) []float64 {
	p := math.Pow(10, float64(digits))
	for i, x := range v {
		v[i] = math.RoundToEven(x*p) / p
	}
	return v
}

//round1 rounds a single value.
func round1(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.RoundToEven(x*p) / p
}

//coeffString formats a stoichiometric coefficient, omitting it when it is 1.
func coeffString(c float64) string {
	c = math.Abs(c)
	if c == 1 {
		return ""
	}
	return strconv.FormatFloat(c, 'g', -1, 64)
}
