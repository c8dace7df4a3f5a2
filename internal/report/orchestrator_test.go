package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockshield/shieldviz/internal/charts"
)

// A minimal but complete document: one price sample, one VPIN sample,
// one trade, both scenario variants and the comparison populated.
const minimalDocument = `{
	"config": {"simulationDays": 1, "initialLPBalance": 100000},
	"priceData": [{"timestamp": 1700000000000, "price": 189.50, "regime": "CORE_SESSION"}],
	"vpinData": [{"timestamp": 1700000000000, "vpin": 0.25}],
	"tradeData": [{"volume": 5000, "isInformed": false, "isBuy": true}],
	"withoutProtection": {
		"feesEarned": 1000, "impermanentLoss": 500, "adverseSelectionLoss": 800,
		"gapLoss": 700, "gapAuctionGains": 0, "netPnL": -1000
	},
	"withProtection": {
		"feesEarned": 1500, "impermanentLoss": 500, "adverseSelectionLoss": 300,
		"gapLoss": 100, "gapAuctionGains": 400, "netPnL": 500
	},
	"comparison": {
		"feeImprovement": 500, "adverseSelectionReduction": 500, "gapProtectionValue": 500
	}
}`

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "simulation_data.json")
	require.NoError(t, os.WriteFile(input, []byte(minimalDocument), 0o644))
	outDir := filepath.Join(dir, "graphs")

	var console bytes.Buffer
	err := Run(Options{
		InputPath: input,
		OutputDir: outDir,
		Style:     charts.DefaultStyle(),
		Console:   &console,
	})
	require.NoError(t, err)

	out := console.String()
	assert.Equal(t, 5, strings.Count(out, "Created: "), "one line per artifact:\n%s", out)
	assert.Contains(t, out, "All charts saved to: "+outDir)

	for _, name := range []string{
		"price_chart.png",
		"vpin_chart.png",
		"comparison_chart.png",
		"protection_value_pie.png",
		"trade_distribution.png",
	} {
		assert.Contains(t, out, "Created: "+name)
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 5, "exactly five artifacts, nothing else")
}

func TestRun_OutputDirAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "simulation_data.json")
	require.NoError(t, os.WriteFile(input, []byte(minimalDocument), 0o644))
	outDir := filepath.Join(dir, "graphs")
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	var console bytes.Buffer
	err := Run(Options{InputPath: input, OutputDir: outDir, Style: charts.DefaultStyle(), Console: &console})
	require.NoError(t, err, "directory creation is idempotent")
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "simulation_data.json")
	outDir := filepath.Join(dir, "graphs")

	var console bytes.Buffer
	err := Run(Options{
		InputPath: input,
		OutputDir: outDir,
		Style:     charts.DefaultStyle(),
		Console:   &console,
	})
	require.NoError(t, err, "a missing input reports and exits cleanly")

	out := console.String()
	assert.Equal(t, 1, strings.Count(out, "Data file not found: "))
	assert.Contains(t, out, input)
	assert.Contains(t, out, RemediationCommand)
	assert.NotContains(t, out, "Created: ")
	assert.NoDirExists(t, outDir, "no artifacts are produced")
}

func TestRun_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "simulation_data.json")
	require.NoError(t, os.WriteFile(input, []byte("{broken"), 0o644))

	var console bytes.Buffer
	err := Run(Options{
		InputPath: input,
		OutputDir: filepath.Join(dir, "graphs"),
		Style:     charts.DefaultStyle(),
		Console:   &console,
	})
	require.Error(t, err, "malformed input propagates instead of being swallowed")
	assert.NotContains(t, console.String(), "Created: ")
}

func TestRun_HaltsOnFirstRendererError(t *testing.T) {
	// A document with price data but nothing else fails on the VPIN
	// chart; the price chart rendered before it stays on disk.
	doc := `{
		"config": {"simulationDays": 1, "initialLPBalance": 100000},
		"priceData": [{"timestamp": 1700000000000, "price": 189.50, "regime": "CORE_SESSION"}]
	}`
	dir := t.TempDir()
	input := filepath.Join(dir, "simulation_data.json")
	require.NoError(t, os.WriteFile(input, []byte(doc), 0o644))
	outDir := filepath.Join(dir, "graphs")

	var console bytes.Buffer
	err := Run(Options{InputPath: input, OutputDir: outDir, Style: charts.DefaultStyle(), Console: &console})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vpin_chart.png")

	assert.Equal(t, 1, strings.Count(console.String(), "Created: "))
	assert.FileExists(t, filepath.Join(outDir, "price_chart.png"))
	assert.NoFileExists(t, filepath.Join(outDir, "vpin_chart.png"))
}
