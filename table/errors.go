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

package table

import "fmt"

//Error is the error type of the table package. It fullfills the Error
//interface of the chem package.
type Error struct {
	table   string
	cond    string
	message string
	err     error //the underlying error, if any
	deco    []string
}

func (err *Error) Error() string {
	s := fmt.Sprintf("table %s: %s", err.table, err.message)
	if err.cond != "" {
		s += fmt.Sprintf(" (condition %q)", err.cond)
	}
	if err.err != nil {
		s += ": " + err.err.Error()
	}
	return s
}

//Unwrap returns the underlying error, if any.
func (err *Error) Unwrap() error { return err.err }

//Table returns the name of the table involved.
func (err *Error) Table() string { return err.table }

//Critical returns false. A failed query leaves the table unchanged.
func (err *Error) Critical() bool { return false }

//Decorate adds the caller information to the error, and returns the
//resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func errDecorate(err error, caller string) error {
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}

const (
	BadCondition  = "can't evaluate condition"
	NotBoolean    = "condition does not give a boolean"
	UnknownField  = "unknown field"
	TableExists   = "table already exists"
	NoTable       = "no such table"
	UnknownFormat = "unknown file format"
)
