/*
Copyright © 2024 the soilwat authors.
This file is part of soilwat.

soilwat is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

soilwat is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with soilwat.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// flags holds the values of spec.md §6 "CLI"'s recognized options:
// -d <project_dir>, -f <first_file>, -e (echo initial inputs), -q
// (quiet), -r (spinup reset).
var flags struct {
	projectDir string
	firstFile  string
	echo       bool
	quiet      bool
	spinupReset bool
}

// Root is the main command, grounded on inmaputil/cmd.go's Root
// definition but without the viper configuration layer this project
// drops in favor of plain TOML (internal/config).
var Root = &cobra.Command{
	Use:   "soilwat",
	Short: "A daily point-scale soil-water balance simulator.",
	Long: `soilwat simulates a single point's daily soil-water dynamics: infiltration,
percolation, bare-soil evaporation, per-vegetation-type transpiration,
snow accumulation and melt, hydraulic redistribution, and soil
temperature, given a project directory of a TOML configuration file and
one weather file per simulated year.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flags.quiet {
			logrus.SetLevel(logrus.WarnLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
		if flags.projectDir != "" {
			if err := os.Chdir(flags.projectDir); err != nil {
				return fmt.Errorf("soilwat: cannot enter project directory %q: %w", flags.projectDir, err)
			}
		}
		return nil
	},
}

func init() {
	Root.PersistentFlags().StringVarP(&flags.projectDir, "project-dir", "d", ".", "project directory containing the configuration and weather files")
	Root.PersistentFlags().StringVarP(&flags.firstFile, "first-file", "f", "config.toml", "name of the configuration file, relative to the project directory")
	Root.PersistentFlags().BoolVarP(&flags.echo, "echo", "e", false, "echo the parsed initial inputs before running")
	Root.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress informational logging")
	Root.PersistentFlags().BoolVarP(&flags.spinupReset, "reset", "r", false, "reset SWC to its initial value at the start of every simulated year")

	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// configPath returns the full path to the configuration file within
// the (already current-directory-switched) project directory.
func configPath() string {
	return filepath.Join(".", flags.firstFile)
}
