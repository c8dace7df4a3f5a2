package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stockshield/shieldviz/internal/charts"
	"github.com/stockshield/shieldviz/internal/report"
)

const version = "v1.0.0"

const (
	defaultInput  = "simulation_results/simulation_data.json"
	defaultOutput = "simulation_results/graphs"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
	})

	rootCmd := &cobra.Command{
		Use:     "shieldviz",
		Short:   "Render StockShield simulation charts",
		Version: version,
		Long: `shieldviz reads the simulation_data.json produced by the StockShield
e2e simulation and renders five PNG charts comparing LP outcomes with
and without protection: price/regime timeline, VPIN timeline, P&L
comparison, protection value sources, and trade volume distribution.`,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().String("input", defaultInput, "Path to simulation_data.json")
	rootCmd.Flags().String("output", defaultOutput, "Directory for rendered charts")
	rootCmd.Flags().String("style", "", "Optional YAML file with chart style overrides")
	rootCmd.Flags().Bool("verbose", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("chart generation failed")
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	stylePath, _ := cmd.Flags().GetString("style")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	style := charts.DefaultStyle()
	if stylePath != "" {
		loaded, err := charts.LoadStyle(stylePath)
		if err != nil {
			return err
		}
		style = loaded
	}

	return report.Run(report.Options{
		InputPath: input,
		OutputDir: output,
		Style:     style,
	})
}
