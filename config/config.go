// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/ini.v1"

	"github.com/katalvlaran/tourevo/genetic"
	"github.com/katalvlaran/tourevo/mutation"
	"github.com/katalvlaran/tourevo/randsearch"
	"github.com/katalvlaran/tourevo/tour"
)

var (
	// ErrUnknownFormat indicates a file extension other than .toml or .ini.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrUnknownKey indicates a TOML key that maps to no Config field.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is one experiment: shared seed, tour convention, and the settings
// of both search strategies.
type Config struct {
	Seed    int64         `toml:"seed"`
	Tour    TourConfig    `toml:"tour"`
	Random  RandomConfig  `toml:"random"`
	Genetic GeneticConfig `toml:"genetic"`
	Logging LoggingConfig `toml:"logging"`
}

// TourConfig selects the closed or open tour convention.
type TourConfig struct {
	Mode string `toml:"mode" ini:"mode"` // "cycle" or "path"
}

// RandomConfig holds randsearch settings.
type RandomConfig struct {
	UpperLimit  int    `toml:"upper_limit" ini:"upper_limit"`
	Stop        string `toml:"stop" ini:"stop"` // "stagnation" or "epochs"
	ReportEvery int    `toml:"report_every" ini:"report_every"`
}

// GeneticConfig holds genetic engine settings. Rates are percentages.
type GeneticConfig struct {
	PopulationSize int    `toml:"population_size" ini:"population_size"`
	SurvivalRate   int    `toml:"survival_rate" ini:"survival_rate"`
	MutationRate   int    `toml:"mutation_rate" ini:"mutation_rate"`
	Mutation       string `toml:"mutation" ini:"mutation"` // "swap" or "inversion"
	Patience       int    `toml:"patience" ini:"patience"`
	ReportEvery    int    `toml:"report_every" ini:"report_every"`
}

// LoggingConfig controls the logger built by NewLogger.
type LoggingConfig struct {
	Level     string `toml:"level" ini:"level"`
	Timestamp bool   `toml:"timestamp" ini:"timestamp"`
}

// Default returns the reference experiment.
func Default() Config {
	g := genetic.DefaultOptions()
	r := randsearch.DefaultOptions()

	return Config{
		Seed: tour.DefaultSeed,
		Tour: TourConfig{Mode: tour.Cycle.String()},
		Random: RandomConfig{
			UpperLimit:  r.UpperLimit,
			Stop:        r.Stop.String(),
			ReportEvery: r.ReportEvery,
		},
		Genetic: GeneticConfig{
			PopulationSize: g.PopulationSize,
			SurvivalRate:   g.SurvivalRate,
			MutationRate:   g.MutationRate,
			Mutation:       g.Mutation.String(),
			Patience:       g.Patience,
			ReportEvery:    g.ReportEvery,
		},
		Logging: LoggingConfig{Level: "info", Timestamp: true},
	}
}

// Load reads the file at path, picking the decoder from its extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseTOML(data)
	case ".ini", ".cfg":
		return ParseINI(data)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// ParseTOML decodes a TOML document over Default.
func ParseTOML(data []byte) (Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0])
	}

	return c, nil
}

// ParseINI decodes an INI document over Default.
func ParseINI(data []byte) (Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, data)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode ini: %w", err)
	}

	c := Default()
	if k, err := f.Section(ini.DefaultSection).GetKey("seed"); err == nil {
		if c.Seed, err = k.Int64(); err != nil {
			return Config{}, fmt.Errorf("config: seed: %w", err)
		}
	}

	sections := []struct {
		name string
		dst  any
	}{
		{"tour", &c.Tour},
		{"random", &c.Random},
		{"genetic", &c.Genetic},
		{"logging", &c.Logging},
	}
	for _, s := range sections {
		if err := f.Section(s.name).MapTo(s.dst); err != nil {
			return Config{}, fmt.Errorf("config: map [%s]: %w", s.name, err)
		}
	}

	return c, nil
}

// TourMode parses Tour.Mode.
func (c Config) TourMode() (tour.Mode, error) {
	return tour.ParseMode(c.Tour.Mode)
}

// RandomOptions builds randsearch options. Ctx and Logger are left for the
// caller.
func (c Config) RandomOptions() (randsearch.Options, error) {
	stop, err := randsearch.ParseStopMode(c.Random.Stop)
	if err != nil {
		return randsearch.Options{}, err
	}

	opts := randsearch.DefaultOptions()
	opts.UpperLimit = c.Random.UpperLimit
	opts.Stop = stop
	opts.Seed = c.Seed
	opts.ReportEvery = c.Random.ReportEvery

	return opts, nil
}

// GeneticOptions builds genetic options. Ctx and Logger are left for the
// caller.
func (c Config) GeneticOptions() (genetic.Options, error) {
	kind, err := mutation.ParseKind(c.Genetic.Mutation)
	if err != nil {
		return genetic.Options{}, err
	}

	opts := genetic.DefaultOptions()
	opts.PopulationSize = c.Genetic.PopulationSize
	opts.SurvivalRate = c.Genetic.SurvivalRate
	opts.MutationRate = c.Genetic.MutationRate
	opts.Mutation = kind
	opts.Patience = c.Genetic.Patience
	opts.Seed = c.Seed
	opts.ReportEvery = c.Genetic.ReportEvery

	return opts, nil
}

// NewLogger returns a logger writing to w at Logging.Level.
func (c Config) NewLogger(w io.Writer) (*log.Logger, error) {
	level := log.InfoLevel
	if c.Logging.Level != "" {
		var err error
		if level, err = log.ParseLevel(c.Logging.Level); err != nil {
			return nil, fmt.Errorf("config: log level: %w", err)
		}
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: c.Logging.Timestamp,
		TimeFormat:      "15:04:05.00",
	}), nil
}
