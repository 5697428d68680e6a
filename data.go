/*
 * data.go, part of goTermod.
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
	"github.com/rmera/gotermod/table"
)

//Names of the tables used by the models in a table.DB
const (
	ThermoTable     = "term-base"
	FieldNamesTable = "term-name-fld"
)

var thermoFields = []string{"subst", "dt1", "dt2", "dh298", "da", "db", "dc", "dd", "ds298", "uat0", "m_coeff", "n_coeff", "dhh298", "dhfp", "z_coeff", "phase"}

//ThermoFields returns the fields of a thermodynamic data table.
func ThermoFields() []string {
	return append([]string(nil), thermoFields...)
}

//FieldNameFields returns the fields of the table that gives the display
//names for the thermodynamic fields.
func FieldNameFields() []string {
	return []string{"fld_name", "fld_full_name"}
}

//Data are the tables the models read from. FieldNames can be nil.
type Data struct {
	Thermo     table.Table
	FieldNames table.Table
}

//NewData takes the thermodynamic and field name tables from db. It returns
//nil if db has no thermodynamic table.
func NewData(db *table.DB) *Data {
	t, ok := db.Table(ThermoTable)
	if !ok {
		return nil
	}
	D := &Data{Thermo: t}
	if f, ok := db.Table(FieldNamesTable); ok {
		D.FieldNames = f
	}
	return D
}

//NewThermoDB returns a table.DB with empty thermodynamic and field
//name tables.
func NewThermoDB() *table.DB {
	db := table.NewDB()
	//the DB is new, so the names can't clash.
	db.CreateTable(ThermoTable, thermoFields)
	db.CreateTable(FieldNamesTable, FieldNameFields())
	return db
}

//names returns a map from field names to display names. Fields without
//a display name map to themselves.
func (D *Data) names() map[string]string {
	ret := make(map[string]string, len(thermoFields))
	for _, f := range thermoFields {
		ret[f] = f
	}
	if D == nil || D.FieldNames == nil {
		return ret
	}
	rows, err := D.FieldNames.Select("", table.Named(FieldNameFields()...))
	if err != nil {
		return ret
	}
	for _, r := range rows {
		if n := r.Text("fld_full_name"); n != "" {
			ret[r.Text("fld_name")] = n
		}
	}
	return ret
}

//Interval is the data for a substance in one temperature interval, [Low, High).
//H298, S298, Uat0, M, N, Z and HH298 are only meaningful in the first interval
//of a substance. HFP is the enthalpy of the phase transition at High.
type Interval struct {
	Low, High  float64 //K
	H298       float64 //kJ/mol
	A, B, C, D float64 //heat capacity coefficients
	S298       float64 //J/(mol K)
	Uat0       float64 //kJ/mol
	M, N, Z    float64
	HH298      float64
	HFP        float64 //kJ/mol
	Phase      string
}

func intervalFromRow(r table.Row) Interval {
	return Interval{
		Low:   r.Float("dt1"),
		High:  r.Float("dt2"),
		H298:  r.Float("dh298"),
		A:     r.Float("da"),
		B:     r.Float("db"),
		C:     r.Float("dc"),
		D:     r.Float("dd"),
		S298:  r.Float("ds298"),
		Uat0:  r.Float("uat0"),
		M:     r.Float("m_coeff"),
		N:     r.Float("n_coeff"),
		Z:     r.Float("z_coeff"),
		HH298: r.Float("dhh298"),
		HFP:   r.Float("dhfp"),
		Phase: r.Text("phase"),
	}
}

//Row returns the interval as a row of a thermodynamic table, for the
//substance with the given formula.
func (I Interval) Row(formula string) table.Row {
	return table.Row{
		"subst":   formula,
		"dt1":     I.Low,
		"dt2":     I.High,
		"dh298":   I.H298,
		"da":      I.A,
		"db":      I.B,
		"dc":      I.C,
		"dd":      I.D,
		"ds298":   I.S298,
		"uat0":    I.Uat0,
		"m_coeff": I.M,
		"n_coeff": I.N,
		"z_coeff": I.Z,
		"dhh298":  I.HH298,
		"dhfp":    I.HFP,
		"phase":   I.Phase,
	}
}
