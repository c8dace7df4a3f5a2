// Package report sequences one chart-generation run: locate input, load,
// render all five artifacts, and report per-artifact progress.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/stockshield/shieldviz/internal/charts"
	"github.com/stockshield/shieldviz/internal/sim"
)

// RemediationCommand regenerates the input document; shown to the user
// when the simulation results file is absent.
const RemediationCommand = "npx ts-node src/yellow/e2e-simulation.ts"

const banner = "=================================================="

// Options configures one generation run.
type Options struct {
	InputPath string
	OutputDir string
	Style     charts.Style

	// Console receives the user-facing progress lines; defaults to stdout.
	Console io.Writer
}

// Artifact pairs an output filename with its renderer. All five are
// independent; only directory creation must precede them, and each owns
// a distinct filename so a future parallel fan-out would not race.
type artifact struct {
	Name   string
	Render func(doc *sim.Document, st charts.Style, path string) error
}

var artifacts = []artifact{
	{"price_chart.png", func(d *sim.Document, st charts.Style, path string) error {
		return charts.RenderPrice(d.PriceData, st, path)
	}},
	{"vpin_chart.png", func(d *sim.Document, st charts.Style, path string) error {
		return charts.RenderVPIN(d.VPINData, st, path)
	}},
	{"comparison_chart.png", func(d *sim.Document, st charts.Style, path string) error {
		return charts.RenderComparison(d.WithoutProtection, d.WithProtection, d.Config.InitialLPBalance, st, path)
	}},
	{"protection_value_pie.png", func(d *sim.Document, st charts.Style, path string) error {
		return charts.RenderProtectionPie(d.Comparison, st, path)
	}},
	{"trade_distribution.png", func(d *sim.Document, st charts.Style, path string) error {
		return charts.RenderTradeDistribution(d.TradeData, st, path)
	}},
}

// Run executes the full pipeline. A missing input file is reported with
// remediation guidance and returns nil (clean exit, zero artifacts); any
// other failure halts after whatever artifacts were already written and
// propagates.
func Run(opts Options) error {
	out := opts.Console
	if out == nil {
		out = os.Stdout
	}

	runID := uuid.NewString()[:8]
	logger := log.With().Str("run_id", runID).Logger()

	fmt.Fprintln(out, "StockShield Simulation Graph Generator")
	fmt.Fprintln(out, banner)

	doc, err := sim.Load(opts.InputPath)
	if err != nil {
		var notFound *sim.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(out, "Data file not found: %s\n", notFound.Path)
			fmt.Fprintf(out, "   Run the simulation first: %s\n", RemediationCommand)
			logger.Warn().Str("path", notFound.Path).Msg("no simulation data, nothing to render")
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "Loading: %s\n", opts.InputPath)
	fmt.Fprintf(out, "   Config: %d days, %s initial\n",
		doc.Config.SimulationDays, charts.FormatMoney(doc.Config.InitialLPBalance))

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintln(out, "Generating charts...")
	for _, a := range artifacts {
		path := filepath.Join(opts.OutputDir, a.Name)
		start := time.Now()
		if err := a.Render(doc, opts.Style, path); err != nil {
			return fmt.Errorf("failed to render %s: %w", a.Name, err)
		}
		logger.Debug().Str("chart", a.Name).Dur("elapsed", time.Since(start)).Msg("chart rendered")
		fmt.Fprintf(out, "Created: %s\n", a.Name)
	}

	fmt.Fprintln(out, banner)
	fmt.Fprintf(out, "All charts saved to: %s\n", opts.OutputDir)
	fmt.Fprintln(out, banner)

	logger.Info().Int("charts", len(artifacts)).Str("dir", opts.OutputDir).Msg("run complete")
	return nil
}
