/*
 * tables.go, part of goTermod.
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

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmera/gotermod/formula"
	"github.com/rmera/gotermod/periodic"
	"github.com/rmera/gotermod/table"
)

var elementCmd = &cobra.Command{
	Use:   "element <symbol|number>",
	Short: "Print the data of an element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pt := periodic.Default()
		var ref periodic.Ref = periodic.Symbol(args[0])
		if n, err := strconv.Atoi(args[0]); err == nil {
			ref = periodic.Number(n)
		}
		e := pt.Element(ref)
		if e == nil {
			return fmt.Errorf("%s is not an element", args[0])
		}
		return printYAML(cmd.OutOrStdout(), e)
	},
}

var massCmd = &cobra.Command{
	Use:   "mass <formula>...",
	Short: "Print the molar mass of each formula, in g/mol",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pt := periodic.Default()
		ret := make(map[string]float64, len(args))
		for _, f := range args {
			c, err := formula.Parse(f)
			if err != nil {
				return err
			}
			ret[f] = pt.MolarMass(c)
		}
		return printYAML(cmd.OutOrStdout(), ret)
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect and convert table files",
}

var tablesListCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the tables in a file, with their number of rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := table.LoadFile(args[0])
		if err != nil {
			return err
		}
		ret := make(map[string]int)
		for _, n := range db.Tables() {
			t, _ := db.Table(n)
			ret[n] = t.Count()
		}
		return printYAML(cmd.OutOrStdout(), ret)
	},
}

var tablesConvertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a table file to another format",
	Long: `Converts between YAML, TOML and JSON table files. The formats are taken
from the extensions, and a .zst suffix compresses or decompresses the file.

Example:
  gotermod tables convert thermo.yaml thermo.json.zst`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := table.LoadFile(args[0])
		if err != nil {
			return err
		}
		return table.WriteFile(args[1], db)
	},
}

var tablesElementsCmd = &cobra.Command{
	Use:   "elements <out>",
	Short: "Write the built-in periodic table to a table file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := table.NewDB()
		if err := db.AddTable(periodic.NewTable()); err != nil {
			return err
		}
		return table.WriteFile(args[0], db)
	},
}

func init() {
	tablesCmd.AddCommand(tablesListCmd, tablesConvertCmd, tablesElementsCmd)
	rootCmd.AddCommand(elementCmd, massCmd, tablesCmd)
}
