/*
 * root.go, part of goTermod.
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

//Package cli implements the gotermod command line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	chem "github.com/rmera/gotermod"
	"github.com/rmera/gotermod/param"
	"github.com/rmera/gotermod/table"
)

var (
	cfgFile string
	verbose bool
	temps   []float64
	tRange  []float64
	units   string
)

//rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gotermod",
	Short: "goTermod - thermodynamics of substances, reactions and systems",
	Long: `gotermod calculates the thermodynamic functions of substances, reactions
and mixtures from tabulated heat capacity data, over a set of temperatures.

The data is read from a table file (YAML, TOML or JSON, optionally zstd
compressed) given with --data or the GOTERMOD_DATA variable.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (GOTERMOD_*)
3. Config file (~/.gotermod/config.yaml)
4. Defaults`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(cmd.ErrOrStderr())
		logrus.SetLevel(logrus.WarnLevel)
		if viper.GetBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

//Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "gotermod v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.gotermod/config.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.String("data", "", "thermodynamic data file")
	pf.Int("digits", chem.DefaultDigit, "decimal digits in the results")
	pf.String("reference", "SiO2", "reference substance for the strength coefficient")
	pf.Float64SliceVarP(&temps, "temp", "t", nil, "temperatures, comma separated")
	pf.Float64SliceVar(&tRange, "range", nil, "temperature sweep as min,max,step (max excluded)")
	pf.StringVarP(&units, "units", "u", param.Kelvin, "temperature units (K, C or F)")

	for _, k := range []string{"verbose", "data", "digits", "reference"} {
		_ = viper.BindPFlag(k, pf.Lookup(k))
	}
	rootCmd.AddCommand(versionCmd)
}

//initConfig reads in the config file and the environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".gotermod"))
			viper.SetConfigType("yaml")
			viper.SetConfigName("config")
		}
	}
	viper.SetEnvPrefix("GOTERMOD")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		logrus.WithField("file", viper.ConfigFileUsed()).Debug("Using config file")
	}
}

//config returns the model configuration from the flags and settings.
func config() *chem.Config {
	cfg := chem.DefaultConfig()
	cfg.Digits = viper.GetInt("digits")
	if r := viper.GetString("reference"); r != "" {
		cfg.Reference = r
	}
	return cfg
}

//loadData reads the thermodynamic data file.
func loadData() (*chem.Data, error) {
	name := viper.GetString("data")
	if name == "" {
		return nil, fmt.Errorf("no data file given, use --data or GOTERMOD_DATA")
	}
	db, err := table.LoadFile(name)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", name, err)
	}
	d := chem.NewData(db)
	if d == nil {
		return nil, fmt.Errorf("no %s table in %s", chem.ThermoTable, name)
	}
	return d, nil
}

//conditions builds the temperatures from --temp or --range, in the
//--units units. Without either, 298 K is used.
func conditions() (*chem.Conditions, error) {
	var v param.Values = param.Scalar(param.StdTemperature)
	switch {
	case len(temps) > 0 && len(tRange) > 0:
		return nil, fmt.Errorf("--temp and --range can't be used together")
	case len(temps) > 0:
		v = param.Array(temps)
	case len(tRange) == 3:
		v = param.Range{Min: tRange[0], Max: tRange[1], Step: tRange[2]}
	case len(tRange) != 0:
		return nil, fmt.Errorf("--range needs min,max,step")
	}
	T := param.NewTemperature(v)
	if units != param.Kelvin {
		if len(temps) == 0 && len(tRange) == 0 {
			return nil, fmt.Errorf("--units needs --temp or --range")
		}
		//the values are given in the new units, so they are set, not converted.
		if !T.Parameter.SetUnits(units) {
			return nil, fmt.Errorf("unknown temperature units %q", units)
		}
	}
	return chem.NewConditions(T, nil), nil
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error marshaling output: %w", err)
	}
	return enc.Close()
}
