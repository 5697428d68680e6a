/*
 * memory.go, part of goTermod.
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

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Knetic/govaluate"
	gocache "github.com/patrickmn/go-cache"
)

//Memory is an in-memory Table. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	name   string
	fields []string
	rows   []Row
	exprs  *gocache.Cache //compiled conditions
}

//NewMemory returns an empty table with the given name and fields.
func NewMemory(name string, fields []string) *Memory {
	return &Memory{
		name:   name,
		fields: append([]string(nil), fields...),
		rows:   make([]Row, 0, 16),
		exprs:  gocache.New(30*time.Minute, time.Hour),
	}
}

//Name returns the name of the table.
func (M *Memory) Name() string {
	return M.name
}

//Fields returns the field names, in table order.
func (M *Memory) Fields() []string {
	return append([]string(nil), M.fields...)
}

//Count returns the number of rows.
func (M *Memory) Count() int {
	M.mu.RLock()
	defer M.mu.RUnlock()
	return len(M.rows)
}

//compile returns the expression for cond, from the cache when possible.
//An empty condition returns nil.
func (M *Memory) compile(cond string) (*govaluate.EvaluableExpression, error) {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return nil, nil
	}
	if e, ok := M.exprs.Get(cond); ok {
		return e.(*govaluate.EvaluableExpression), nil
	}
	e, err := govaluate.NewEvaluableExpression(cond)
	if err != nil {
		return nil, &Error{table: M.name, cond: cond, message: BadCondition, err: err}
	}
	for _, v := range e.Vars() {
		if !isInString(M.fields, v) {
			return nil, &Error{table: M.name, cond: cond, message: UnknownField + ": " + v}
		}
	}
	M.exprs.Set(cond, e, gocache.DefaultExpiration)
	return e, nil
}

//match evaluates e on the row r. A nil expression matches everything.
func (M *Memory) match(e *govaluate.EvaluableExpression, r Row) (bool, error) {
	if e == nil {
		return true, nil
	}
	res, err := e.Evaluate(r)
	if err != nil {
		return false, &Error{table: M.name, cond: e.String(), message: BadCondition, err: err}
	}
	b, ok := res.(bool)
	if !ok {
		return false, &Error{table: M.name, cond: e.String(), message: NotBoolean}
	}
	return b, nil
}

//Select returns copies of the rows matching cond, with the fields
//picked by sel.
func (M *Memory) Select(cond string, sel Selector) ([]Row, error) {
	e, err := M.compile(cond)
	if err != nil {
		return nil, errDecorate(err, "Select")
	}
	fields := sel.Resolve(M.fields)
	M.mu.RLock()
	defer M.mu.RUnlock()
	ret := make([]Row, 0, 4)
	for _, r := range M.rows {
		ok, err := M.match(e, r)
		if err != nil {
			return nil, errDecorate(err, "Select")
		}
		if ok {
			ret = append(ret, r.Copy(fields))
		}
	}
	return ret, nil
}

//Insert adds a row. Every key of r has to be a field of the table.
//Fields absent from r are set to nil.
func (M *Memory) Insert(r Row) error {
	row := make(Row, len(M.fields))
	for _, f := range M.fields {
		row[f] = nil
	}
	for k, v := range normalize(r) {
		if !isInString(M.fields, k) {
			return &Error{table: M.name, message: UnknownField + ": " + k, deco: []string{"Insert"}}
		}
		row[k] = v
	}
	M.mu.Lock()
	M.rows = append(M.rows, row)
	M.mu.Unlock()
	return nil
}

//Update sets the given values in every row matching cond, and returns
//the number of rows changed.
func (M *Memory) Update(values Row, cond string) (int, error) {
	for k := range values {
		if !isInString(M.fields, k) {
			return 0, &Error{table: M.name, cond: cond, message: UnknownField + ": " + k, deco: []string{"Update"}}
		}
	}
	e, err := M.compile(cond)
	if err != nil {
		return 0, errDecorate(err, "Update")
	}
	values = normalize(values)
	M.mu.Lock()
	defer M.mu.Unlock()
	n := 0
	for _, r := range M.rows {
		ok, err := M.match(e, r)
		if err != nil {
			return n, errDecorate(err, "Update")
		}
		if !ok {
			continue
		}
		for k, v := range values {
			r[k] = v
		}
		n++
	}
	return n, nil
}

//Delete removes the rows matching cond, and returns how many were removed.
func (M *Memory) Delete(cond string) (int, error) {
	e, err := M.compile(cond)
	if err != nil {
		return 0, errDecorate(err, "Delete")
	}
	M.mu.Lock()
	defer M.mu.Unlock()
	kept := M.rows[:0]
	n := 0
	for i, r := range M.rows {
		ok, err := M.match(e, r)
		if err != nil {
			//keep the rows not yet visited
			M.rows = append(kept, M.rows[i:]...)
			return n, errDecorate(err, "Delete")
		}
		if ok {
			n++
			continue
		}
		kept = append(kept, r)
	}
	M.rows = kept
	return n, nil
}

//Exists reports whether any row matches cond.
func (M *Memory) Exists(cond string) (bool, error) {
	e, err := M.compile(cond)
	if err != nil {
		return false, errDecorate(err, "Exists")
	}
	M.mu.RLock()
	defer M.mu.RUnlock()
	for _, r := range M.rows {
		ok, err := M.match(e, r)
		if err != nil {
			return false, errDecorate(err, "Exists")
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

//String returns a short description of the table.
func (M *Memory) String() string {
	return fmt.Sprintf("table %s (%d rows): %s", M.name, M.Count(), strings.Join(M.fields, ", "))
}
