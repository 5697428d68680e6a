/*
 * periodic.go, part of goTermod.
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

//Package periodic gives access to the properties of the chemical elements,
//stored in a "mend-table" table.
package periodic

import (
	"sort"

	"github.com/rmera/gotermod/table"
)

//TableName is the name of the element table in a table.DB.
const TableName = "mend-table"

var fields = []string{"num", "name", "smb", "latname", "period", "grp", "mass", "ro", "tpl", "tkip", "year", "fml", "name1", "coment"}

var displayNames = map[string]string{
	"num":     "Number",
	"name":    "Name",
	"smb":     "Symbol",
	"latname": "Latin name",
	"period":  "Period",
	"grp":     "Group",
	"mass":    "Atomic mass (g/mol)",
	"ro":      "Density, g/cm3 (at 20 C)",
	"tpl":     "Melting point (C)",
	"tkip":    "Boiling point (C)",
	"year":    "Year of discovery",
	"fml":     "Discoverer",
	"name1":   "Pronunciation",
	"coment":  "Comment",
}

//Fields returns the fields of an element table, in order.
func Fields() []string {
	return append([]string(nil), fields...)
}

//Ref identifies an element, either by Symbol or by Number.
type Ref interface {
	cond() string
}

//Symbol is an element symbol, such as "Fe".
type Symbol string

func (S Symbol) cond() string { return table.Eq("smb", string(S)) }

//Number is an atomic number.
type Number int

func (N Number) cond() string { return table.Eq("num", int(N)) }

//Table answers queries on the elements.
type Table struct {
	t table.Table
}

//New returns a Table reading from t, which should have the fields
//returned by Fields.
func New(t table.Table) *Table {
	return &Table{t: t}
}

//row returns the first row for the element r, with the selected fields.
func (T *Table) row(r Ref, sel table.Selector) (table.Row, bool) {
	if r == nil {
		return nil, false
	}
	rows, err := T.t.Select(r.cond(), sel)
	if err != nil || len(rows) == 0 {
		return nil, false
	}
	return rows[0], true
}

//IsElement reports whether r is a known element.
func (T *Table) IsElement(r Ref) bool {
	if r == nil {
		return false
	}
	ok, err := T.t.Exists(r.cond())
	return ok && err == nil
}

//IsNumber reports whether n is the atomic number of a known element.
func (T *Table) IsNumber(n int) bool {
	return T.IsElement(Number(n))
}

//AttrInfo returns a map from field names to their display names.
func (T *Table) AttrInfo() map[string]string {
	ret := make(map[string]string, len(displayNames))
	for k, v := range displayNames {
		ret[k] = v
	}
	return ret
}

//Fields returns the fields of the table.
func (T *Table) Fields() []string {
	return Fields()
}

//Attr returns the value of the attribute a for the element r. The second
//return value is false if r is not an element or a is not a field.
func (T *Table) Attr(r Ref, a string) (interface{}, bool) {
	if !isInString(fields, a) {
		return nil, false
	}
	row, ok := T.row(r, table.Single(a))
	if !ok {
		return nil, false
	}
	return row[a], true
}

//Element returns the attributes attrs of the element r, keyed by their
//display names. Invalid attributes are ignored, and no valid attribute
//gives them all. It returns nil if r is not an element.
func (T *Table) Element(r Ref, attrs ...string) map[string]interface{} {
	sel := table.All()
	if len(attrs) > 0 {
		sel = table.Named(attrs...)
	}
	row, ok := T.row(r, sel)
	if !ok {
		return nil
	}
	ret := make(map[string]interface{}, len(row))
	for k, v := range row {
		name, ok := displayNames[k]
		if !ok {
			name = k
		}
		ret[name] = v
	}
	return ret
}

//symbols returns the symbols of the elements matching cond, sorted
//by atomic number. It returns nil if there are none.
func (T *Table) symbols(cond string) []string {
	rows, err := T.t.Select(cond, table.Named("num", "smb"))
	if err != nil || len(rows) == 0 {
		return nil
	}
	table.Sort(rows, "num")
	ret := make([]string, len(rows))
	for i, r := range rows {
		ret[i] = r.Text("smb")
	}
	return ret
}

//Period returns the symbols of the elements in period p.
func (T *Table) Period(p int) []string {
	return T.symbols(table.Eq("period", p))
}

//Group returns the symbols of the elements in group g.
func (T *Table) Group(g int) []string {
	return T.symbols(table.Eq("grp", g))
}

//Layout returns the symbols of the elements of each period, starting with
//the first, until an empty period is found.
func (T *Table) Layout() [][]string {
	ret := make([][]string, 0, 7)
	for p := 1; ; p++ {
		s := T.Period(p)
		if s == nil {
			break
		}
		ret = append(ret, s)
	}
	return ret
}

//AttrTable returns the value of the attribute a for every element, keyed
//by symbol. The map is empty if a is not a field.
func (T *Table) AttrTable(a string) map[string]interface{} {
	ret := make(map[string]interface{})
	if !isInString(fields, a) {
		return ret
	}
	rows, err := T.t.Select("", table.Named("smb", a))
	if err != nil {
		return ret
	}
	for _, r := range rows {
		ret[r.Text("smb")] = r[a]
	}
	return ret
}

//MolarMass returns the molar mass, in g/mol, of the composition given
//as an element count map. Keys that are not elements are ignored.
func (T *Table) MolarMass(counts map[string]float64) float64 {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var mass float64
	for _, k := range keys {
		row, ok := T.row(Symbol(k), table.Single("mass"))
		if !ok {
			continue
		}
		mass += row.Float("mass") * counts[k]
	}
	return mass
}

//MolarVolume returns the molar volume, in cm3/mol, of the element r. The
//second return value is false if r is not an element, or its density is
//zero or absent.
func (T *Table) MolarVolume(r Ref) (float64, bool) {
	row, ok := T.row(r, table.Named("mass", "ro"))
	if !ok {
		return 0, false
	}
	ro := row.Float("ro")
	if ro <= 0 {
		return 0, false
	}
	return row.Float("mass") / ro, true
}

func isInString(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}
