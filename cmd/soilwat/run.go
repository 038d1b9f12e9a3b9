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
	"runtime"
	"sync"

	"github.com/spf13/cobra"

	"github.com/DrylandEcology/soilwat"
	"github.com/DrylandEcology/soilwat/internal/config"
	"github.com/DrylandEcology/soilwat/output"
	"github.com/DrylandEcology/soilwat/weather"
)

// runCmd drives a single-site simulation end to end: parse the TOML
// configuration, build the site and vegetation, run every simulated
// year day by day, and write the period output files. Grounded on
// inmap/cmd/inmap.go's Run(dynamic bool) error: a plain, non-cobra-
// wired driver function invoked from a thin RunE closure.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	Long:  "run reads the project's configuration and weather files and runs the simulation to completion.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulation()
	},
	DisableAutoGenTag: true,
}

func runSimulation() error {
	cfg, err := config.ReadConfigFile(configPath())
	if err != nil {
		return err
	}

	if cfg.Domain.Domain == "xy" {
		return runGrid(cfg)
	}
	return runSingleSite(cfg, "")
}

// runGrid runs every simulated point on a fixed pool of
// runtime.GOMAXPROCS(0) worker goroutines that pull point indices from a
// channel, grounded on framework.go's worker-pool pattern for
// distributing per-cell work across available cores.
func runGrid(cfg *config.Run) error {
	n := cfg.Domain.NDimS
	if n <= 0 {
		n = cfg.Domain.NDimX * cfg.Domain.NDimY
	}
	if n <= 0 {
		return fmt.Errorf("soilwat: Domain.Domain is \"xy\" but NDimS/NDimX*NDimY resolves to 0 sites")
	}

	workers := runtime.GOMAXPROCS(0)
	sites := make(chan int, n)
	for i := 0; i < n; i++ {
		sites <- i
	}
	close(sites)

	errs := make([]error, n)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range sites {
				subdir := filepath.Join(cfg.OutputDir, fmt.Sprintf("site_%d", idx))
				if err := runSingleSite(cfg, subdir); err != nil {
					errs[idx] = err
				}
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("soilwat: site %d: %w", i, err)
		}
	}
	return nil
}

func runSingleSite(cfg *config.Run, outputSubdir string) error {
	ctx := soilwat.NewRunContext()

	siteConfig, err := cfg.SiteConfig()
	if err != nil {
		return err
	}
	layerInputs, err := cfg.LayerInputs()
	if err != nil {
		return err
	}

	site := soilwat.InitSite(ctx, layerInputs, siteConfig)
	if ctx.StopRun {
		return ctx.Err()
	}

	veg := cfg.VegComposition()
	veg.Normalize(ctx)
	if ctx.StopRun {
		return ctx.Err()
	}

	run := soilwat.NewRun(ctx, site, &veg)
	run.ImputeMethod = cfg.ImputeMethod()
	run.Scales = cfg.MonthlyScales()
	run.Selection = cfg.Selection()
	run.MaxLOCFMissing = 10

	if run.ImputeMethod == weather.MarkovGenerated {
		gen, err := cfg.Generator()
		if err != nil {
			return err
		}
		run.Generator = gen
	}

	rec, err := cfg.ReadWeather()
	if err != nil {
		return err
	}
	run.Weather = rec

	if flags.echo {
		fmt.Fprintf(os.Stderr, "soilwat: %d soil layers, %d simulated years\n", len(site.Layers), len(rec.Years))
	}

	for yearIdx, yr := range rec.Years {
		run.PrepareYear(yearIdx)
		if ctx.StopRun {
			return ctx.Err()
		}

		run.NewYear(yr.Year, yearIdx, flags.spinupReset)
		for doy := 1; doy <= len(yr.Days); doy++ {
			run.SimulateDay(doy)
			if ctx.StopRun {
				return ctx.Err()
			}
		}
	}

	if warnings, dropped := ctx.Warnings(); len(warnings) > 0 && !flags.quiet {
		fmt.Fprintf(os.Stderr, "soilwat: %d warnings (%d dropped)\n", len(warnings), dropped)
	}

	return writeOutputs(cfg, run, outputSubdir)
}

func writeOutputs(cfg *config.Run, run *soilwat.Run, subdir string) error {
	dir := cfg.OutputDir
	if subdir != "" {
		dir = subdir
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("soilwat: creating output directory %q: %w", dir, err)
	}

	periods := []struct {
		name string
		agg  *output.Aggregator
	}{
		{"day", run.Day},
		{"week", run.Week},
		{"month", run.Month},
		{"year", run.Year},
	}

	for _, p := range periods {
		rows, layerRows := p.agg.Finish()

		regular, err := os.Create(filepath.Join(dir, p.name+"_regular.csv"))
		if err != nil {
			return fmt.Errorf("soilwat: creating %s output: %w", p.name, err)
		}
		err = output.WriteRegular(regular, p.agg.Period, rows)
		regular.Close()
		if err != nil {
			return err
		}

		layers, err := os.Create(filepath.Join(dir, p.name+"_soillayer.csv"))
		if err != nil {
			return fmt.Errorf("soilwat: creating %s soil-layer output: %w", p.name, err)
		}
		err = output.WriteSoilLayer(layers, p.agg.Period, layerRows)
		layers.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
