/*
 * config.go, part of goTermod.
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
	"github.com/sirupsen/logrus"
)

//Config holds the constants and settings used by the models.
//The zero value is not usable, use DefaultConfig.
type Config struct {
	R              float64 //gas constant, J/(mol K)
	Digits         int     //decimal digits to which results are rounded
	Reference      string  //formula of the reference substance for System.Strength
	ReferencePhase string
	Log            logrus.FieldLogger
}

//DefaultConfig returns the usual settings: R=8.31, 3 digits, SiO2(k) as
//reference substance and the standard logrus logger.
func DefaultConfig() *Config {
	return &Config{
		R:              RGas,
		Digits:         DefaultDigit,
		Reference:      "SiO2",
		ReferencePhase: string(Crystal),
		Log:            logrus.StandardLogger(),
	}
}

//orDefault returns C, or the default configuration if C is nil.
//A nil logger is also replaced.
func (C *Config) orDefault() *Config {
	if C == nil {
		return DefaultConfig()
	}
	if C.Log == nil {
		c := *C
		c.Log = logrus.StandardLogger()
		return &c
	}
	return C
}

//Phase is the phase state of a substance.
type Phase string

const (
	Gas     Phase = "g"
	Crystal Phase = "k"
	Liquid  Phase = "l"
	Solid   Phase = "s"
)

var phases = []Phase{Gas, Crystal, Liquid, Solid}

//ParsePhase returns the phase named by s. Unknown names give Gas.
func ParsePhase(s string) Phase {
	for _, p := range phases {
		if string(p) == s {
			return p
		}
	}
	return Gas
}

func (P Phase) String() string {
	switch P {
	case Crystal:
		return "crystal"
	case Liquid:
		return "liquid"
	case Solid:
		return "solid"
	}
	return "gas"
}
