/*
 * file.go, part of goTermod.
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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

//File formats
const (
	YAML = "yaml"
	TOML = "toml"
	JSON = "json"
)

type fileTable struct {
	Name   string                   `yaml:"name" toml:"name" json:"name"`
	Fields []string                 `yaml:"fields" toml:"fields" json:"fields"`
	Rows   []map[string]interface{} `yaml:"rows" toml:"rows" json:"rows"`
}

type fileDB struct {
	Tables []fileTable `yaml:"tables" toml:"tables" json:"tables"`
}

//Load reads a DB in the given format (YAML, TOML or JSON) from r.
//Each table becomes a Memory table.
func Load(r io.Reader, format string) (*DB, error) {
	var fdb fileDB
	var err error
	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&fdb)
	case TOML:
		_, err = toml.NewDecoder(r).Decode(&fdb)
	case JSON:
		err = json.NewDecoder(r).Decode(&fdb)
	default:
		return nil, &Error{message: UnknownFormat + ": " + format, deco: []string{"Load"}}
	}
	if err != nil {
		return nil, fmt.Errorf("table: decoding %s data: %w", format, err)
	}
	db := NewDB()
	for _, ft := range fdb.Tables {
		M, err := db.CreateTable(ft.Name, ft.Fields)
		if err != nil {
			return nil, errDecorate(err, "Load")
		}
		for _, r := range ft.Rows {
			if err := M.Insert(Row(r)); err != nil {
				return nil, errDecorate(err, "Load")
			}
		}
	}
	return db, nil
}

//Write writes every table of db to w, in the given format.
func Write(w io.Writer, db *DB, format string) error {
	var fdb fileDB
	for _, name := range db.Tables() {
		t, _ := db.Table(name)
		rows, err := t.Select("", All())
		if err != nil {
			return errDecorate(err, "Write")
		}
		ft := fileTable{Name: name, Fields: t.Fields(), Rows: make([]map[string]interface{}, 0, len(rows))}
		for _, r := range rows {
			m := make(map[string]interface{}, len(r))
			for k, v := range r {
				if v != nil {
					m[k] = v
				}
			}
			ft.Rows = append(ft.Rows, m)
		}
		fdb.Tables = append(fdb.Tables, ft)
	}
	var err error
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		err = enc.Encode(fdb)
		if err == nil {
			err = enc.Close()
		}
	case TOML:
		err = toml.NewEncoder(w).Encode(fdb)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(fdb)
	default:
		return &Error{message: UnknownFormat + ": " + format, deco: []string{"Write"}}
	}
	if err != nil {
		return fmt.Errorf("table: encoding %s data: %w", format, err)
	}
	return nil
}

//FormatFromName returns the format implied by the extension of the file
//name, and whether the file is zstd-compressed (a final .zst extension).
func FormatFromName(name string) (format string, compressed bool) {
	name = strings.ToLower(name)
	if strings.HasSuffix(name, ".zst") {
		compressed = true
		name = strings.TrimSuffix(name, ".zst")
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	case ".json":
		format = JSON
	}
	return format, compressed
}

//LoadFile reads a DB from a file. The format is taken from the extension,
//and files ending in .zst are decompressed.
func LoadFile(name string) (*DB, error) {
	format, compressed := FormatFromName(name)
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if compressed {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("table: opening %s: %w", name, err)
		}
		defer dec.Close()
		r = dec
	}
	db, err := Load(r, format)
	if err != nil {
		return nil, errDecorate(err, "LoadFile")
	}
	return db, nil
}

//WriteFile writes db to a file, choosing the format as LoadFile does.
func WriteFile(name string, db *DB) error {
	format, compressed := FormatFromName(name)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	var w io.WriteCloser = f
	if compressed {
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return err
		}
	}
	if err = Write(w, db, format); err != nil {
		if compressed {
			w.Close()
		}
		f.Close()
		return errDecorate(err, "WriteFile")
	}
	if compressed {
		if err = w.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
