/*
 * table_test.go, part of goTermod.
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
	"bytes"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
)

func testTable(Te *testing.T) *Memory {
	M := NewMemory("thermo", []string{"subst", "dt1", "dt2", "dh298", "phase"})
	rows := []Row{
		{"subst": "MgO", "dt1": 298, "dt2": 3098, "dh298": -601.6, "phase": "k"},
		{"subst": "H2O", "dt1": 298, "dt2": 3000, "dh298": -241.81, "phase": "g"},
		{"subst": "H2O", "dt1": 273, "dt2": 298, "dh298": -285.83, "phase": "l"},
		{"subst": "CO2", "dt1": 298, "dt2": 3000, "dh298": -393.51},
	}
	for _, r := range rows {
		if err := M.Insert(r); err != nil {
			Te.Fatal(err)
		}
	}
	return M
}

func TestSelect(Te *testing.T) {
	M := testTable(Te)
	rows, err := M.Select(Eq("subst", "H2O"), All())
	if err != nil {
		Te.Fatal(err)
	}
	if len(rows) != 2 {
		Te.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Float("dt1") != 298 || rows[1].Text("phase") != "l" {
		Te.Errorf("unexpected rows %v", rows)
	}
	rows, err = M.Select("dt1 < 298 || subst == 'MgO'", Named("subst", "nothere"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(rows) != 2 || len(rows[0]) != 1 || rows[0].Text("subst") != "MgO" {
		Te.Errorf("unexpected rows %v", rows)
	}
	rows, _ = M.Select("", Single("nothere"))
	if len(rows) != 4 || len(rows[0]) != 5 {
		Te.Errorf("an invalid selector should select every field, got %v", rows)
	}
	//rows are copies
	rows[0]["subst"] = "XX"
	if ok, _ := M.Exists(Eq("subst", "XX")); ok {
		Te.Errorf("Select returned a row that aliases the table")
	}
	if rows, _ := M.Select(And(Eq("subst", "CO2"), ""), All()); len(rows) != 1 || rows[0]["phase"] != nil {
		Te.Errorf("unexpected rows %v", rows)
	}
	fmt.Println(M)
}

func TestConditionErrors(Te *testing.T) {
	M := testTable(Te)
	if _, err := M.Select("subst ==", All()); err == nil {
		Te.Errorf("broken condition should fail")
	}
	if _, err := M.Select("color == 'red'", All()); err == nil {
		Te.Errorf("unknown field should fail")
	}
	_, err := M.Select("dt1 + 1", All())
	if err == nil {
		Te.Fatalf("non boolean condition should fail")
	}
	if e, ok := err.(*Error); !ok || len(e.Decorate("")) == 0 {
		Te.Errorf("expected a decorated *Error, got %v", err)
	}
	if err := M.Insert(Row{"color": "red"}); err == nil {
		Te.Errorf("inserting an unknown field should fail")
	}
}

func TestUpdateDelete(Te *testing.T) {
	M := testTable(Te)
	n, err := M.Update(Row{"phase": "g"}, Eq("subst", "CO2"))
	if err != nil || n != 1 {
		Te.Fatalf("update: %d %v", n, err)
	}
	if ok, _ := M.Exists("subst == 'CO2' && phase == 'g'"); !ok {
		Te.Errorf("update not applied")
	}
	n, err = M.Update(Row{"dt2": 2500}, "dt2 >= 3000")
	if err != nil || n != 3 {
		Te.Errorf("expected 3 updated rows, got %d %v", n, err)
	}
	if ok, _ := M.Exists("dt2 == 2500"); !ok {
		Te.Errorf("integers should be stored as floats")
	}
	n, err = M.Delete(Eq("subst", "H2O"))
	if err != nil || n != 2 || M.Count() != 2 {
		Te.Errorf("delete: %d %v, %d rows left", n, err, M.Count())
	}
	n, _ = M.Delete("")
	if n != 2 || M.Count() != 0 {
		Te.Errorf("empty condition should delete everything")
	}
}

func TestConcurrent(Te *testing.T) {
	M := testTable(Te)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			M.Insert(Row{"subst": fmt.Sprintf("X%d", i), "dt1": float64(i)})
			M.Select("dt1 >= 0", All())
		}(i)
	}
	wg.Wait()
	if M.Count() != 12 {
		Te.Errorf("expected 12 rows, got %d", M.Count())
	}
}

func TestDB(Te *testing.T) {
	D := NewDB()
	if _, err := D.CreateTable("mend-table", []string{"num", "smb"}); err != nil {
		Te.Fatal(err)
	}
	if _, err := D.CreateTable("mend-table", []string{"num"}); err == nil {
		Te.Errorf("duplicated table should fail")
	}
	D.AddTable(testTable(Te))
	if n := D.Tables(); len(n) != 2 || n[0] != "mend-table" || n[1] != "thermo" {
		Te.Errorf("unexpected tables %v", n)
	}
	if !D.Exists("thermo") || !D.DeleteTable("thermo") || D.Exists("thermo") || D.DeleteTable("thermo") {
		Te.Errorf("table deletion failed")
	}
	if _, ok := D.Table("mend-table"); !ok {
		Te.Errorf("table not found")
	}
}

func TestFiles(Te *testing.T) {
	D := NewDB()
	D.AddTable(testTable(Te))
	dir := Te.TempDir()
	for _, name := range []string{"data.yaml", "data.toml", "data.json", "data.yaml.zst", "data.json.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, D); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		D2, err := LoadFile(path)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		t, ok := D2.Table("thermo")
		if !ok || t.Count() != 4 {
			Te.Fatalf("%s: table not restored", name)
		}
		rows, err := t.Select(Eq("subst", "MgO"), All())
		if err != nil || len(rows) != 1 || rows[0].Float("dh298") != -601.6 || rows[0].Float("dt2") != 3098 {
			Te.Errorf("%s: unexpected rows %v %v", name, rows, err)
		}
	}
	var buf bytes.Buffer
	if err := Write(&buf, D, "xml"); err == nil {
		Te.Errorf("unknown format should fail")
	}
	if f, c := FormatFromName("A.YML.zst"); f != YAML || !c {
		Te.Errorf("wrong format detection %s %v", f, c)
	}
}
