/*
 * errors.go, part of goTermod.
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

package formula

import "fmt"

//SyntaxError is returned for formulas (or reaction strings) that can't
//be parsed. It fullfills the Error interface of the chem package.
type SyntaxError struct {
	formula string
	pos     int
	message string
	deco    []string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("formula %q: %s at position %d", err.formula, err.message, err.pos)
}

//Formula returns the string that failed to parse.
func (err *SyntaxError) Formula() string { return err.formula }

//Pos returns the position (in runes) where parsing stopped.
func (err *SyntaxError) Pos() int { return err.pos }

//Critical is always true, a formula that doesn't parse can't be used at all.
func (err *SyntaxError) Critical() bool { return true }

//Decorate adds the caller information to the error, and returns the
//resulting slice. An empty string just returns the current slice.
func (err *SyntaxError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

const (
	UnbalancedBrackets  = "unbalanced brackets"
	MismatchedBrackets  = "mismatched brackets"
	IndexWithoutElement = "index without element or group"
	UnexpectedCharacter = "unexpected character"
	NoEquals            = "reaction needs exactly one '='"
	EmptyTerm           = "empty reaction term"
	BadCoefficient      = "can't read coefficient"
)
