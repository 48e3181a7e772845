// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/lvscatter/debye"
	"github.com/katalvlaran/lvscatter/lattice"
)

const envPrefix = "DEBYE_"

// Config is read from DEBYE_* environment variables. Defaults reproduce the
// classic demo: a 30 Å sphere and cube of a 3.89 Å simple-cubic lattice
// scanned over q ∈ [1, 15) in steps of 0.1.
type Config struct {
	LatticeParam float64         `env:"LATTICE_PARAM" envDefault:"3.89"`
	Length       float64         `env:"LENGTH" envDefault:"30"`
	Shapes       []lattice.Shape `env:"SHAPES" envDefault:"sphere,cube" envSeparator:","`
	QMin         float64         `env:"Q_MIN" envDefault:"1"`
	QMax         float64         `env:"Q_MAX" envDefault:"15"`
	QStep        float64         `env:"Q_STEP" envDefault:"0.1"`
	Workers      int             `env:"WORKERS" envDefault:"0"`
	Out          string          `env:"OUT" envDefault:"intensity.png"`
	LogLevel     slog.Level      `env:"LOG_LEVEL" envDefault:"info"`
}

// QRange returns the configured q sampling.
func (c Config) QRange() debye.QRange {
	return debye.QRange{Min: c.QMin, Max: c.QMax, Step: c.QStep}
}

// Options maps the configuration onto engine options. Workers = 0 keeps the
// engine default.
func (c Config) Options() []debye.Option {
	if c.Workers > 0 {
		return []debye.Option{debye.WithWorkers(c.Workers)}
	}
	return nil
}

// loadConfig parses the process environment, or environ when non-nil.
func loadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Shapes) == 0 {
		return errors.New("config: DEBYE_SHAPES must name at least one shape")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: DEBYE_WORKERS must be ≥ 0, got %d", c.Workers)
	}
	if c.Out == "" {
		return errors.New("config: DEBYE_OUT must not be empty")
	}
	if err := c.QRange().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.QRange().Len() == 0 {
		return fmt.Errorf("config: q range [%g, %g) step %g has no samples", c.QMin, c.QMax, c.QStep)
	}
	if _, err := lattice.AxisSteps(c.LatticeParam, c.Length); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
