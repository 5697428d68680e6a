/*
 * thermo.go, part of goTermod.
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
	"strings"

	"github.com/spf13/cobra"

	chem "github.com/rmera/gotermod"
	"github.com/rmera/gotermod/termoplot"
)

var (
	phase    string
	plotFile string
	info     bool
	moles    []string
)

//substanceReport is the output of the substance command.
type substanceReport struct {
	Formula     string    `yaml:"formula"`
	Phase       string    `yaml:"phase"`
	Valid       bool      `yaml:"valid"`
	T           []float64 `yaml:"T"`
	Enthalpy    []float64 `yaml:"H"`
	Entropy     []float64 `yaml:"S"`
	Gibbs       []float64 `yaml:"G"`
	Cp          []float64 `yaml:"Cp"`
	Atomization []float64 `yaml:"atomization,omitempty"`
}

var substanceCmd = &cobra.Command{
	Use:   "substance <formula>",
	Short: "Thermodynamic functions of a substance",
	Long: `Prints the enthalpy, entropy, Gibbs energy and heat capacity of a
substance, in kJ and kJ/K, at each temperature.

Example:
  gotermod substance MgO --phase k -t 298,500,1000
  gotermod substance "Ca(OH)2" --range 300,1000,100 --info`,
	Args: cobra.ExactArgs(1),
	RunE: runSubstance,
}

var reactionCmd = &cobra.Command{
	Use:   "reaction <reaction>",
	Short: "Balance a reaction and calculate its thermodynamic functions",
	Long: `Balances a reaction written as "2H2+O2=2H2O(g)", and prints its
coefficients, enthalpy, entropy, Gibbs energy, equilibrium constant and
onset temperature. Only the sides of the given coefficients are used.

Example:
  gotermod reaction "CaCO3(k)=CaO(k)+CO2" --range 500,1500,100 --plot caco3.png`,
	Args: cobra.ExactArgs(1),
	RunE: runReaction,
}

var systemCmd = &cobra.Command{
	Use:   "system <name>",
	Short: "Composition and thermodynamic functions of a mixture",
	Long: `Builds a mixture from formula:moles[:phase] terms, and prints its
composition, enthalpy, entropy, Gibbs energy and strength coefficient.

Example:
  gotermod system slag -m MgO:1:k -m SiO2:2:k`,
	Args: cobra.ExactArgs(1),
	RunE: runSystem,
}

func init() {
	substanceCmd.Flags().StringVarP(&phase, "phase", "p", "g", "phase: g, k, l or s")
	substanceCmd.Flags().BoolVar(&info, "info", false, "also print the data of the substance")
	reactionCmd.Flags().StringVar(&plotFile, "plot", "", "plot the functions to this file (png, svg or pdf)")
	systemCmd.Flags().StringArrayVarP(&moles, "moles", "m", nil, "component as formula:moles[:phase]")
	rootCmd.AddCommand(substanceCmd, reactionCmd, systemCmd)
}

func runSubstance(cmd *cobra.Command, args []string) error {
	data, err := loadData()
	if err != nil {
		return err
	}
	cond, err := conditions()
	if err != nil {
		return err
	}
	S, err := chem.NewSubstance(args[0], phase, cond, data, config())
	if err != nil {
		return err
	}
	if !S.Valid() {
		return fmt.Errorf("substance %s not found in the data", args[0])
	}
	rep := substanceReport{
		Formula:     S.Formula(),
		Phase:       S.Phase().String(),
		Valid:       S.Valid(),
		T:           cond.Kelvin(),
		Enthalpy:    S.Enthalpy(),
		Entropy:     S.Entropy(),
		Gibbs:       S.Gibbs(),
		Cp:          S.HeatCapacity(),
		Atomization: S.Atomization(false),
	}
	if info {
		fmt.Fprintln(cmd.OutOrStdout(), S.Info())
	}
	return printYAML(cmd.OutOrStdout(), rep)
}

//reactionReport is the output of the reaction command.
type reactionReport struct {
	Equation string             `yaml:"equation"`
	Coeffs   map[string]float64 `yaml:"coefficients"`
	Valid    bool               `yaml:"valid"`
	T        []float64          `yaml:"T"`
	Enthalpy []float64          `yaml:"H"`
	Entropy  []float64          `yaml:"S"`
	Gibbs    []float64          `yaml:"G"`
	LnK      []float64          `yaml:"lnK"`
	Onset    string             `yaml:"onset"`
}

func runReaction(cmd *cobra.Command, args []string) error {
	data, err := loadData()
	if err != nil {
		return err
	}
	cond, err := conditions()
	if err != nil {
		return err
	}
	R, err := chem.ParseReaction(args[0], cond, data, config())
	if err != nil {
		return err
	}
	if !R.Valid() {
		var missing []string
		for f, ok := range R.Validity() {
			if !ok {
				missing = append(missing, f)
			}
		}
		return fmt.Errorf("reaction %s is not valid, missing data for: %s", args[0], strings.Join(missing, ", "))
	}
	rep := reactionReport{
		Equation: R.Equation(),
		Coeffs:   R.Coeffs(),
		Valid:    R.Valid(),
		T:        cond.Kelvin(),
		Enthalpy: R.Enthalpy(),
		Entropy:  R.Entropy(),
		Gibbs:    R.Gibbs(),
		LnK:      R.LnK(),
		Onset:    R.Onset().String(),
	}
	if plotFile != "" {
		series, err := termoplot.Properties(R, rep.T, "")
		if err != nil {
			return err
		}
		if err := termoplot.Plot(series, args[0], "T (K)", "kJ, kJ/K", 15, 10, plotFile); err != nil {
			return fmt.Errorf("error writing plot: %w", err)
		}
	}
	return printYAML(cmd.OutOrStdout(), rep)
}

//parseComponent reads a formula:moles[:phase] term.
func parseComponent(s string) (chem.Component, error) {
	f := strings.Split(s, ":")
	if len(f) < 2 || len(f) > 3 {
		return chem.Component{}, fmt.Errorf("bad component %q, use formula:moles[:phase]", s)
	}
	m, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return chem.Component{}, fmt.Errorf("bad amount in %q: %w", s, err)
	}
	c := chem.Component{Formula: f[0], Moles: m}
	if len(f) == 3 {
		c.Phase = f[2]
	}
	return c, nil
}

//systemReport is the output of the system command.
type systemReport struct {
	Name     string             `yaml:"name"`
	Valid    bool               `yaml:"valid"`
	Moles    map[string]float64 `yaml:"moles"`
	Percent  map[string]float64 `yaml:"percent"`
	T        []float64          `yaml:"T"`
	Enthalpy []float64          `yaml:"H"`
	Entropy  []float64          `yaml:"S"`
	Gibbs    []float64          `yaml:"G"`
	Strength []float64          `yaml:"strength"`
}

func runSystem(cmd *cobra.Command, args []string) error {
	data, err := loadData()
	if err != nil {
		return err
	}
	cond, err := conditions()
	if err != nil {
		return err
	}
	comps := make([]chem.Component, 0, len(moles))
	for _, m := range moles {
		c, err := parseComponent(m)
		if err != nil {
			return err
		}
		comps = append(comps, c)
	}
	S, err := chem.NewSystem(args[0], comps, cond.T, data, config())
	if err != nil {
		return err
	}
	rep := systemReport{
		Name:     S.Name(),
		Valid:    S.Valid(),
		Moles:    S.Report(chem.ReportMoles),
		Percent:  S.Report(chem.ReportPercent),
		T:        cond.Kelvin(),
		Enthalpy: S.Enthalpy(),
		Entropy:  S.Entropy(),
		Gibbs:    S.Gibbs(),
		Strength: S.Strength(),
	}
	return printYAML(cmd.OutOrStdout(), rep)
}
