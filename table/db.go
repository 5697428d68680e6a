/*
 * db.go, part of goTermod.
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
	"sort"
	"sync"
)

//DB is a set of named tables.
type DB struct {
	mu     sync.RWMutex
	tables map[string]Table
}

//NewDB returns an empty DB.
func NewDB() *DB {
	return &DB{tables: make(map[string]Table)}
}

//CreateTable adds a new, empty, in-memory table to the DB. It fails if a
//table with the same name exists.
func (D *DB) CreateTable(name string, fields []string) (*Memory, error) {
	M := NewMemory(name, fields)
	if err := D.AddTable(M); err != nil {
		return nil, errDecorate(err, "CreateTable")
	}
	return M, nil
}

//AddTable adds an existing table to the DB.
func (D *DB) AddTable(t Table) error {
	D.mu.Lock()
	defer D.mu.Unlock()
	if _, ok := D.tables[t.Name()]; ok {
		return &Error{table: t.Name(), message: TableExists, deco: []string{"AddTable"}}
	}
	D.tables[t.Name()] = t
	return nil
}

//DeleteTable removes a table, and reports whether it existed.
func (D *DB) DeleteTable(name string) bool {
	D.mu.Lock()
	defer D.mu.Unlock()
	_, ok := D.tables[name]
	delete(D.tables, name)
	return ok
}

//Exists reports whether the DB has a table with the given name.
func (D *DB) Exists(name string) bool {
	D.mu.RLock()
	defer D.mu.RUnlock()
	_, ok := D.tables[name]
	return ok
}

//Table returns the table with the given name.
func (D *DB) Table(name string) (Table, bool) {
	D.mu.RLock()
	defer D.mu.RUnlock()
	t, ok := D.tables[name]
	return t, ok
}

//Tables returns the sorted names of the tables in the DB.
func (D *DB) Tables() []string {
	D.mu.RLock()
	defer D.mu.RUnlock()
	ret := make([]string, 0, len(D.tables))
	for k := range D.tables {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
