/*
 * table.go, part of goTermod.
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

//Package table contains the tabular data store used by the thermodynamic
//models. Tables are sets of rows (field->value maps) queried with boolean
//conditions over the fields, such as "subst == 'MgO'" or "period == 2".
package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//Row is one record of a table. Numeric values are always stored as float64.
type Row map[string]interface{}

//Float returns the value of the field f as a float64, or 0 if the field is
//absent or not numeric.
func (R Row) Float(f string) float64 {
	v, ok := R[f].(float64)
	if !ok {
		return 0
	}
	return v
}

//Text returns the value of the field f as a string. Non string values are
//formatted, absent ones give an empty string.
func (R Row) Text(f string) string {
	switch v := R[f].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

//Int returns the value of the field f truncated to int.
func (R Row) Int(f string) int {
	return int(R.Float(f))
}

//Copy returns a copy of the row, keeping only the given fields.
//A nil fields slice keeps them all.
func (R Row) Copy(fields []string) Row {
	ret := make(Row, len(R))
	if fields == nil {
		for k, v := range R {
			ret[k] = v
		}
		return ret
	}
	for _, f := range fields {
		ret[f] = R[f]
	}
	return ret
}

//normalize turns every numeric value of the row into a float64, so
//conditions compare them consistently.
func normalize(r Row) Row {
	ret := make(Row, len(r))
	for k, v := range r {
		switch n := v.(type) {
		case int:
			ret[k] = float64(n)
		case int32:
			ret[k] = float64(n)
		case int64:
			ret[k] = float64(n)
		case uint:
			ret[k] = float64(n)
		case uint64:
			ret[k] = float64(n)
		case float32:
			ret[k] = float64(n)
		default:
			ret[k] = v
		}
	}
	return ret
}

type selKind int

const (
	selAll selKind = iota
	selNamed
	selSingle
)

//Selector picks the fields returned by a query. Build it with All, Named
//or Single.
type Selector struct {
	kind  selKind
	names []string
}

//All selects every field of the table.
func All() Selector {
	return Selector{kind: selAll}
}

//Named selects the given fields.
func Named(names ...string) Selector {
	return Selector{kind: selNamed, names: append([]string(nil), names...)}
}

//Single selects one field.
func Single(name string) Selector {
	return Selector{kind: selSingle, names: []string{name}}
}

//Resolve returns the fields, among the given table fields, that the selector
//picks. Names not in fields are dropped. If nothing valid remains, all
//the fields are returned.
func (S Selector) Resolve(fields []string) []string {
	if S.kind == selAll {
		return append([]string(nil), fields...)
	}
	ret := make([]string, 0, len(S.names))
	for _, n := range S.names {
		if isInString(fields, n) && !isInString(ret, n) {
			ret = append(ret, n)
		}
	}
	if len(ret) == 0 {
		return append([]string(nil), fields...)
	}
	return ret
}

//Table is the narrow interface the models use to read and write data.
//An empty condition matches every row.
type Table interface {
	Name() string
	Fields() []string
	Select(cond string, sel Selector) ([]Row, error)
	Insert(r Row) error
	Update(values Row, cond string) (int, error)
	Delete(cond string) (int, error)
	Exists(cond string) (bool, error)
	Count() int
}

//Eq returns a condition that is true when field equals value.
func Eq(field string, value interface{}) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%s == '%s'", field, strings.Replace(v, "'", "", -1))
	case float64:
		return fmt.Sprintf("%s == %s", field, strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return fmt.Sprintf("%s == %v", field, v)
	}
}

//And joins conditions with a logical and. Empty conditions are skipped.
func And(conds ...string) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		if strings.TrimSpace(c) != "" {
			parts = append(parts, "("+c+")")
		}
	}
	return strings.Join(parts, " && ")
}

//Sort sorts rows by the numeric field f, in ascending order.
func Sort(rows []Row, f string) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Float(f) < rows[j].Float(f) })
}

func isInString(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}
