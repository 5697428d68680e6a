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

package chem

import (
	"fmt"
	"strings"
)

//BalanceError is returned when the coefficients of a reaction can't be
//obtained. It fullfills the Error interface.
type BalanceError struct {
	reaction string
	message  string
	err      error
	deco     []string
}

func (err *BalanceError) Error() string {
	s := fmt.Sprintf("reaction %s: %s", err.reaction, err.message)
	if err.err != nil {
		s += ": " + err.err.Error()
	}
	return s
}

//Unwrap returns the error given by the linear solver, if any.
func (err *BalanceError) Unwrap() error { return err.err }

//Critical returns true, an unbalanced reaction is not valid.
func (err *BalanceError) Critical() bool { return true }

//Decorate Adds new information to the error
func (err *BalanceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newBalanceError(formulas []string, message string, err error) *BalanceError {
	return &BalanceError{reaction: strings.Join(formulas, ", "), message: message, err: err, deco: []string{"Balance"}}
}

const (
	TooFewSubstances = "at least two substances are needed"
	NoElements       = "no elements in the reaction"
	Unsolvable       = "linear system can't be solved"
	NotBalanced      = "coefficients don't conserve the elements"
)
