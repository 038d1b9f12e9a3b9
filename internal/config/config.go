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

// Package config reads the text-file configuration spec.md §6 describes
// (one TOML project file plus the per-year weather files and the two
// Markov text tables it references) and turns it into the soilwat
// package's run-ready types. This package, the output writer, and the
// CLI are the "external collaborators" spec.md §1 says the core engine
// only needs an interface to -- they are implemented here as the
// ambient stack the core is exercised through, following
// inmap/cmd/config.go's ReadConfigFile (open file, toml.Decode,
// os.ExpandEnv every path field, validate required fields).
package config

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"

	"github.com/DrylandEcology/soilwat"
	"github.com/DrylandEcology/soilwat/markov"
	"github.com/DrylandEcology/soilwat/swrc"
	"github.com/DrylandEcology/soilwat/weather"
)

// DomainConfig mirrors spec.md §6's "Domain" option group. Domain "s"
// runs one site; "xy" makes cmd/soilwat's runGrid run the same
// configuration once per index (NDimS, or NDimX*NDimY), each into its
// own output subdirectory. No per-point inputs are read for "xy".
type DomainConfig struct {
	Domain  string // "xy" or "s"
	NDimX   int
	NDimY   int
	NDimS   int
	StartYear, EndYear int
	StartDoy, EndDoy   int // EndDoy == 365 means "last DOY of year"
}

// ModelRunConfig mirrors spec.md §6's "Model run" option group.
type ModelRunConfig struct {
	Hemisphere string // "N" or "S"
	Longitude  float64
	Latitude   float64
	Elevation  float64
	Slope      float64
	Aspect     float64 // soilwat.SWMissing sentinel => flat
}

// SiteOptionsConfig mirrors spec.md §6's "Site" option group.
type SiteOptionsConfig struct {
	SWRCFamily string // "Campbell1974" | "VanGenuchten1980" | "FXW"
	PTFName    string // "Cosby1984AndCampbell" | "NoPTF"
	HasSWRCP   bool

	SWCMinVal  float64
	SWCInitVal float64
	SWCWetVal  float64
	LegacyMode bool

	ResetYr      bool
	DeepDrainage bool

	TminAccu, TmaxCrit, Lambda, RmeltMin, RmeltMax float64

	CriticalSWPBar [4]float64 // trees, shrubs, forbs, grasses

	BmLimiter                    float64
	T1Param1, T1Param2, T1Param3 float64
	CsParam1, CsParam2           float64
	ShParam                      float64
	TsoilConst                   float64
	StDeltaX, StMaxDepth         float64
	UseSoilTemp                  bool

	RunoffFraction, RunonFraction float64
}

// LayerRow mirrors one row of spec.md §6's "Layers" table.
type LayerRow struct {
	DepthCM      float64
	SoilDensity  float64
	Gravel       float64
	Evco         float64
	TrcoGrass    float64
	TrcoShrub    float64
	TrcoTrees    float64
	TrcoForbs    float64
	Psand        float64
	Pclay        float64
	Imperm       float64
	SoilTemp     float64
}

// SWRCParamRow mirrors one row of spec.md §6's "SWRC parameters" table:
// six floats per layer, meaning dependent on SWRCFamily.
type SWRCParamRow struct {
	P [6]float64
}

// VegTypeConfig mirrors one vegetation type's share of spec.md §6's
// "Vegetation" option group.
type VegTypeConfig struct {
	Cover  float64
	Albedo float64

	CanopyTangent [4]float64
	KSmax         float64
	KDead         float64
	LitterKSmax   float64

	Shade [3]float64

	HydRedUse       bool
	MaxCondRoot     float64
	Psi50           float64
	ShapeParam      float64
	CriticalSWPBar  float64

	CO2BiomassCoeff [2]float64
	CO2WUECoeff     [2]float64

	MonthlyLitter  [12]float64
	MonthlyBiomass [12]float64
	MonthlyPctLive [12]float64
	MonthlyLAIConv [12]float64
}

// VegetationConfig mirrors spec.md §6's "Vegetation" option group in
// full: four vegetation types plus the bare-ground albedo.
type VegetationConfig struct {
	Trees, Shrubs, Forbs, Grasses VegTypeConfig
	BareGroundAlbedo              float64
}

// WeatherSetupConfig mirrors spec.md §6's "Weather setup" option group.
type WeatherSetupConfig struct {
	SnowFlag        bool
	PctSnowdrift    float64
	PctSnowRunoff   float64
	MissingMethod   int // 0=as-is, 1=LOCF, 2=weather-gen, 3=weather-gen-only
	RngSeedState    uint64
	RngSeedSeq      uint64
	UseMonthlyCloud bool
	UseMonthlyWind  bool
	UseMonthlyHumidity bool

	DailyFlags [14]bool // order: Tmax,Tmin,PPT,cloud,wind,windE,windN,RH,RHmax,RHmin,specHum,dewpt,actualVP,shortwave

	MonthlyScale [12]MonthlyScaleRow
}

// MonthlyScaleRow mirrors one row of spec.md §6's "12 monthly scale
// rows".
type MonthlyScaleRow struct {
	TempAdd       float64
	PPTMult       float64
	CloudAdd      float64
	WindMult      float64
	RHAdd         float64
	ActualVPMult  float64
	ShortwaveMult float64
}

// CarbonConfig mirrors spec.md §6's "Carbon" option group: a scenario
// name and annual year/ppm rows, used by VegType.CO2Multiplier
// (soilwat/vegcomposition.go "Supplemented features").
type CarbonConfig struct {
	UseCO2Effects bool
	Scenario      string
	Years         []int
	PPM           []float64
}

// Run is the root TOML document, matching spec.md §6's table of option
// groups one-for-one. File-path fields accept environment variables,
// exactly as inmap/cmd/config.go's ConfigData does for its own path
// fields.
type Run struct {
	Domain    DomainConfig
	ModelRun  ModelRunConfig
	Site      SiteOptionsConfig
	Layers    []LayerRow
	SWRCP     []SWRCParamRow
	Veg       VegetationConfig
	Weather   WeatherSetupConfig
	Carbon    CarbonConfig

	// WeatherDir is the directory containing one whitespace-separated
	// text file per simulated year (spec.md §6 "Weather files"), named
	// "weath.<year>".
	WeatherDir string

	// MarkovProbFile and MarkovCovarFile are the two Markov text tables
	// of spec.md §4.4 "Inputs".
	MarkovProbFile  string
	MarkovCovarFile string

	// OutputDir is where the output package's CSV files are written.
	OutputDir string
}

// ReadConfigFile reads and parses a TOML configuration file, expanding
// environment variables in every path field, per inmap/cmd/config.go's
// ReadConfigFile.
func ReadConfigFile(filename string) (*Run, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("config: the configuration file %q does not appear to exist: %w", filename, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	raw, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("config: problem reading %q: %w", filename, err)
	}

	cfg := new(Run)
	if _, err := toml.Decode(string(raw), cfg); err != nil {
		return nil, fmt.Errorf("config: error parsing %q: %w", filename, err)
	}

	cfg.WeatherDir = os.ExpandEnv(cfg.WeatherDir)
	cfg.MarkovProbFile = os.ExpandEnv(cfg.MarkovProbFile)
	cfg.MarkovCovarFile = os.ExpandEnv(cfg.MarkovCovarFile)
	cfg.OutputDir = os.ExpandEnv(cfg.OutputDir)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Run) validate() error {
	if cfg.Domain.Domain != "xy" && cfg.Domain.Domain != "s" {
		return fmt.Errorf("config: Domain must be \"xy\" or \"s\", got %q", cfg.Domain.Domain)
	}
	if cfg.Domain.StartYear > cfg.Domain.EndYear {
		return fmt.Errorf("config: StartYear %d is after EndYear %d", cfg.Domain.StartYear, cfg.Domain.EndYear)
	}
	if cfg.ModelRun.Hemisphere != "N" && cfg.ModelRun.Hemisphere != "S" {
		return fmt.Errorf("config: Hemisphere must be \"N\" or \"S\", got %q", cfg.ModelRun.Hemisphere)
	}
	if len(cfg.Layers) == 0 {
		return fmt.Errorf("config: at least one Layers row is required")
	}
	if cfg.WeatherDir == "" {
		return fmt.Errorf("config: WeatherDir is required")
	}
	if cfg.Weather.MissingMethod == 2 || cfg.Weather.MissingMethod == 3 {
		if cfg.MarkovProbFile == "" || cfg.MarkovCovarFile == "" {
			return fmt.Errorf("config: MissingMethod %d requires both MarkovProbFile and MarkovCovarFile", cfg.Weather.MissingMethod)
		}
	}
	return nil
}

// SWRCFamily parses cfg.Site.SWRCFamily into a swrc.Family.
func (cfg *Run) SWRCFamily() (swrc.Family, error) {
	switch cfg.Site.SWRCFamily {
	case "Campbell1974":
		return swrc.Campbell1974, nil
	case "VanGenuchten1980":
		return swrc.VanGenuchten1980, nil
	case "FXW":
		return swrc.FXW, nil
	default:
		return 0, fmt.Errorf("config: unrecognized SWRC family %q", cfg.Site.SWRCFamily)
	}
}

// PTF parses cfg.Site.PTFName into a swrc.PTF.
func (cfg *Run) PTF() (swrc.PTF, error) {
	switch cfg.Site.PTFName {
	case "Cosby1984AndCampbell":
		return swrc.Cosby1984AndCampbell, nil
	case "NoPTF", "":
		return swrc.NoPTF, nil
	default:
		return 0, fmt.Errorf("config: unrecognized PTF %q", cfg.Site.PTFName)
	}
}

// Hemisphere parses cfg.ModelRun.Hemisphere into a climate.Hemisphere-
// compatible int (0 = North, 1 = South), avoiding a direct dependency
// on soilwat/climate from this package.
func (cfg *Run) Hemisphere() int {
	if cfg.ModelRun.Hemisphere == "S" {
		return 1
	}
	return 0
}

// SiteConfig builds a soilwat.SiteConfig from the parsed TOML, per
// spec.md §6's "Model run" and "Site" option groups.
func (cfg *Run) SiteConfig() (soilwat.SiteConfig, error) {
	family, err := cfg.SWRCFamily()
	if err != nil {
		return soilwat.SiteConfig{}, err
	}
	ptf, err := cfg.PTF()
	if err != nil {
		return soilwat.SiteConfig{}, err
	}

	sc := soilwat.SiteConfig{
		Family:     family,
		PTF:        ptf,
		SWCMinVal:  cfg.Site.SWCMinVal,
		SWCInitVal: cfg.Site.SWCInitVal,
		SWCWetVal:  cfg.Site.SWCWetVal,
		LegacyMode: cfg.Site.LegacyMode,

		CriticalSWPBar: [soilwat.NumVeg]float64{
			soilwat.VegTrees:   cfg.Site.CriticalSWPBar[0],
			soilwat.VegShrubs:  cfg.Site.CriticalSWPBar[1],
			soilwat.VegForbs:   cfg.Site.CriticalSWPBar[2],
			soilwat.VegGrasses: cfg.Site.CriticalSWPBar[3],
		},

		DeepDrainage: cfg.Site.DeepDrainage,

		Snow: soilwat.SnowParams{
			UseSnow:  cfg.Weather.SnowFlag,
			TminAccu: cfg.Site.TminAccu,
			TmaxCrit: cfg.Site.TmaxCrit,
			Lambda:   cfg.Site.Lambda,
			RmeltMin: cfg.Site.RmeltMin,
			RmeltMax: cfg.Site.RmeltMax,
		},
		SoilTemp: soilwat.SoilTempParams{
			BmLimiter:   cfg.Site.BmLimiter,
			T1Param:     [3]float64{cfg.Site.T1Param1, cfg.Site.T1Param2, cfg.Site.T1Param3},
			CsParam:     [2]float64{cfg.Site.CsParam1, cfg.Site.CsParam2},
			ShParam:     cfg.Site.ShParam,
			TsoilConst:  cfg.Site.TsoilConst,
			DeltaX:      cfg.Site.StDeltaX,
			MaxDepth:    cfg.Site.StMaxDepth,
			UseSoilTemp: cfg.Site.UseSoilTemp,
		},

		LatitudeDeg:  cfg.ModelRun.Latitude,
		LongitudeDeg: cfg.ModelRun.Longitude,
		ElevationM:   cfg.ModelRun.Elevation,
		SlopeDeg:     cfg.ModelRun.Slope,
		AspectDeg:    cfg.ModelRun.Aspect,
	}
	return sc, nil
}

// LayerInputs builds the []soilwat.LayerInput the site initializer
// needs from the parsed Layers and (optional) SWRCP tables, per
// spec.md §6's "Layers" and "SWRC parameters" tables.
func (cfg *Run) LayerInputs() ([]soilwat.LayerInput, error) {
	family, err := cfg.SWRCFamily()
	if err != nil {
		return nil, err
	}
	if cfg.Site.HasSWRCP && len(cfg.SWRCP) != len(cfg.Layers) {
		return nil, fmt.Errorf("config: %d SWRCP rows but %d Layers rows", len(cfg.SWRCP), len(cfg.Layers))
	}

	out := make([]soilwat.LayerInput, len(cfg.Layers))
	for i, row := range cfg.Layers {
		in := soilwat.LayerInput{
			Width:        row.DepthCM,
			MatricDensity: row.SoilDensity,
			BulkDensity:  soilwat.SWMissing,
			Gravel:       row.Gravel,
			Sand:         row.Psand,
			Clay:         row.Pclay,
			Impermeable:  row.Imperm,
			EvapCoeff:    row.Evco,
			SoilTempInit: row.SoilTemp,
			TranspCoeff: [soilwat.NumVeg]float64{
				soilwat.VegTrees:   row.TrcoTrees,
				soilwat.VegShrubs:  row.TrcoShrub,
				soilwat.VegForbs:   row.TrcoForbs,
				soilwat.VegGrasses: row.TrcoGrass,
			},
		}
		if cfg.Site.HasSWRCP {
			p := cfg.SWRCP[i]
			in.SWRC = &swrc.Params{Family: family, P: p.P}
		}
		out[i] = in
	}
	return out, nil
}

// VegComposition builds a soilwat.VegComposition from the parsed
// Vegetation option group, per spec.md §6.
func (cfg *Run) VegComposition() soilwat.VegComposition {
	build := func(v VegTypeConfig) soilwat.VegType {
		return soilwat.VegType{
			Cover:           v.Cover,
			Albedo:          v.Albedo,
			MonthlyBiomass:  v.MonthlyBiomass,
			MonthlyLitter:   v.MonthlyLitter,
			MonthlyPctLive:  v.MonthlyPctLive,
			MonthlyLAIConv:  v.MonthlyLAIConv,
			CanopyTangent:   v.CanopyTangent,
			ShadeParams:     v.Shade,
			MaxCondRoot:     v.MaxCondRoot,
			Psi50:           v.Psi50,
			ShapeParam:      v.ShapeParam,
			CriticalSWPBar:  v.CriticalSWPBar,
			CO2BiomassCoeff: v.CO2BiomassCoeff,
			CO2WUECoeff:     v.CO2WUECoeff,
		}
	}
	var vc soilwat.VegComposition
	vc.Veg[soilwat.VegTrees] = build(cfg.Veg.Trees)
	vc.Veg[soilwat.VegShrubs] = build(cfg.Veg.Shrubs)
	vc.Veg[soilwat.VegForbs] = build(cfg.Veg.Forbs)
	vc.Veg[soilwat.VegGrasses] = build(cfg.Veg.Grasses)
	vc.BareCover = 1 - (cfg.Veg.Trees.Cover + cfg.Veg.Shrubs.Cover + cfg.Veg.Forbs.Cover + cfg.Veg.Grasses.Cover)
	return vc
}

// weatherFieldOrder is the fixed order spec.md §6 lists the 14 daily-
// input flags in.
var weatherFieldOrder = [14]weather.Field{
	weather.FieldTmax, weather.FieldTmin, weather.FieldPPT, weather.FieldCloud,
	weather.FieldWindSpeed, weather.FieldWindEast, weather.FieldWindNorth,
	weather.FieldRH, weather.FieldRHmax, weather.FieldRHmin,
	weather.FieldSpecificHumidity, weather.FieldDewpoint, weather.FieldActualVP,
	weather.FieldShortwave,
}

// Selection builds a weather.Selection from the 14 daily-input flags,
// per spec.md §6 "Weather setup": a monthly-override flag disables the
// corresponding daily flag.
func (cfg *Run) Selection() weather.Selection {
	var sel weather.Selection
	for i, f := range weatherFieldOrder {
		sel.Flags[f] = cfg.Weather.DailyFlags[i]
	}
	if cfg.Weather.UseMonthlyCloud {
		sel.Flags[weather.FieldCloud] = false
	}
	if cfg.Weather.UseMonthlyWind {
		sel.Flags[weather.FieldWindSpeed] = false
		sel.Flags[weather.FieldWindEast] = false
		sel.Flags[weather.FieldWindNorth] = false
	}
	if cfg.Weather.UseMonthlyHumidity {
		sel.Flags[weather.FieldRH] = false
		sel.Flags[weather.FieldRHmax] = false
		sel.Flags[weather.FieldRHmin] = false
	}
	return sel
}

// MonthlyScales converts the 12 configured scale rows into
// [12]weather.MonthlyScale.
func (cfg *Run) MonthlyScales() [12]weather.MonthlyScale {
	var out [12]weather.MonthlyScale
	for i, r := range cfg.Weather.MonthlyScale {
		out[i] = weather.MonthlyScale{
			TempAdd:       r.TempAdd,
			PPTMult:       r.PPTMult,
			CloudAdd:      r.CloudAdd,
			WindMult:      r.WindMult,
			RHAdd:         r.RHAdd,
			ActualVPMult:  r.ActualVPMult,
			ShortwaveMult: r.ShortwaveMult,
		}
	}
	return out
}

// ImputeMethod parses cfg.Weather.MissingMethod into a
// weather.ImputeMethod.
func (cfg *Run) ImputeMethod() weather.ImputeMethod {
	switch cfg.Weather.MissingMethod {
	case 1:
		return weather.LOCF
	case 2, 3:
		return weather.MarkovGenerated
	default:
		return weather.PassThrough
	}
}

// WeatherFilePath returns the conventional per-year weather file path
// within cfg.WeatherDir, matching spec.md §6 "Weather files" ("one file
// per year").
func (cfg *Run) WeatherFilePath(year int) string {
	return filepath.Join(cfg.WeatherDir, fmt.Sprintf("weath.%d", year))
}

// ReadWeather reads every year in [cfg.Domain.StartYear,
// cfg.Domain.EndYear] from cfg.WeatherDir, per spec.md §6 "Weather
// files": one whitespace-separated text file per year.
func (cfg *Run) ReadWeather() (weather.Record, error) {
	sel := cfg.Selection()
	var rec weather.Record
	for y := cfg.Domain.StartYear; y <= cfg.Domain.EndYear; y++ {
		path := cfg.WeatherFilePath(y)
		f, err := os.Open(path)
		if err != nil {
			return weather.Record{}, fmt.Errorf("config: opening weather file for year %d: %w", y, err)
		}
		yr, err := weather.ReadYear(f, path, y, sel)
		f.Close()
		if err != nil {
			return weather.Record{}, err
		}
		rec.Years = append(rec.Years, yr)
	}
	return rec, nil
}

// Generator builds a seeded markov.Generator with its per-DOY and
// per-week tables loaded from cfg.MarkovProbFile/MarkovCovarFile, per
// spec.md §6 "Markov".
func (cfg *Run) Generator() (*markov.Generator, error) {
	probs, err := ReadMarkovProbFile(cfg.MarkovProbFile)
	if err != nil {
		return nil, err
	}
	weeks, err := ReadMarkovCovarFile(cfg.MarkovCovarFile)
	if err != nil {
		return nil, err
	}
	g := markov.NewGenerator(cfg.Weather.RngSeedState, cfg.Weather.RngSeedSeq)
	g.DayProbs = *probs
	g.Weeks = *weeks
	return g, nil
}

// ReadMarkovProbFile reads the per-DOY precipitation probability table
// of spec.md §4.4 "Inputs": one line per DOY, "doy wetprob dryprob
// avg_ppt std_ppt".
func ReadMarkovProbFile(path string) (*[367]markov.DayProb, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: opening Markov probability file %q: %w", path, err)
	}
	defer f.Close()

	var table [367]markov.DayProb
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("config: %s:%d: expected 5 columns, got %d", path, lineno, len(fields))
		}
		doy, err := strconv.Atoi(fields[0])
		if err != nil || doy < 1 || doy > 366 {
			return nil, fmt.Errorf("config: %s:%d: invalid DOY %q", path, lineno, fields[0])
		}
		vals, err := parseFloats(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("config: %s:%d: %v", path, lineno, err)
		}
		p := markov.DayProb{WetProb: vals[0], DryProb: vals[1], AvgPPT: vals[2], StdPPT: vals[3]}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("config: %s:%d: %v", path, lineno, err)
		}
		table[doy] = p
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return &table, nil
}

// ReadMarkovCovarFile reads the weekly bivariate-normal covariance
// table of spec.md §4.4 "Inputs": one line per week, "week mu_max
// mu_min var_max cov cov var_min cfxw cfxd cfnw cfnd".
func ReadMarkovCovarFile(path string) (*[54]markov.WeekParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: opening Markov covariance file %q: %w", path, err)
	}
	defer f.Close()

	var table [54]markov.WeekParams
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 11 {
			return nil, fmt.Errorf("config: %s:%d: expected 11 columns, got %d", path, lineno, len(fields))
		}
		week, err := strconv.Atoi(fields[0])
		if err != nil || week < 0 || week >= len(table) {
			return nil, fmt.Errorf("config: %s:%d: invalid week %q", path, lineno, fields[0])
		}
		vals, err := parseFloats(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("config: %s:%d: %v", path, lineno, err)
		}
		w := markov.WeekParams{
			MuMax: vals[0], MuMin: vals[1],
			VarMax: vals[2], Cov: vals[3], VarMin: vals[5],
			CorrWetMax: vals[6], CorrDryMax: vals[7],
			CorrWetMin: vals[8], CorrDryMin: vals[9],
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("config: %s:%d: %v", path, lineno, err)
		}
		table[week] = w
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return &table, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := cast.ToFloat64E(f)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric value %q", f)
		}
		out[i] = v
	}
	return out, nil
}
