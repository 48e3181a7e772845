// SPDX-License-Identifier: MIT

// Command debyeplot generates simple-cubic clusters, evaluates their Debye
// scattering curves and writes one plot comparing them.
//
// Configuration comes from DEBYE_* environment variables (see Config):
//
//	DEBYE_SHAPES=sphere,cube DEBYE_LENGTH=30 DEBYE_OUT=plots/i.png debyeplot
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/lvscatter"
	"github.com/katalvlaran/lvscatter/debye"
	"github.com/katalvlaran/lvscatter/lattice"
)

func main() {
	cfg, err := loadConfig(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	lvscatter.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("debyeplot failed", "err", err)
		os.Exit(1)
	}
}

// run computes one curve per configured shape and saves the plot.
func run(cfg Config, logger *slog.Logger) error {
	r := cfg.QRange()
	set := make([]series, 0, len(cfg.Shapes))
	for _, shape := range cfg.Shapes {
		start := time.Now()
		pts, err := lattice.Generate(shape, cfg.LatticeParam, cfg.Length)
		if err != nil {
			return err
		}
		curve, err := debye.ComputeRange(r, pts, cfg.Options()...)
		if err != nil {
			return fmt.Errorf("%s: %w", shape, err)
		}
		logger.Info("curve computed",
			"shape", shape.String(),
			"points", len(pts),
			"samples", len(curve),
			"elapsed", time.Since(start))
		set = append(set, series{name: shape.String(), intensity: curve})
	}

	title := fmt.Sprintf("Debye intensity, a = %g, L = %g", cfg.LatticeParam, cfg.Length)
	if err := savePlot(cfg.Out, title, r.Values(), set); err != nil {
		return err
	}
	logger.Info("plot saved", "path", cfg.Out)
	return nil
}
