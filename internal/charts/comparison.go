package charts

import (
	"bytes"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stockshield/shieldviz/internal/analysis"
	"github.com/stockshield/shieldviz/internal/sim"
)

// Compact per-bar category tags; the full category names live in
// analysis.PnLCategories.
var pnlShortLabels = [5]string{"Fees", "IL", "Adverse", "Gap", "Auction"}

// RenderComparison draws the two-panel P&L comparison: the signed
// five-category component breakdown for both variants, and the net P&L
// pair annotated with the improvement.
func RenderComparison(without, with *sim.Outcome, initialBalance float64, st Style, path string) error {
	woVec, err := analysis.PnLVector(without, false)
	if err != nil {
		return err
	}
	wVec, err := analysis.PnLVector(with, true)
	if err != nil {
		return err
	}
	imp, err := analysis.NetImprovement(without, with, initialBalance)
	if err != nil {
		return err
	}

	var breakdown, net bytes.Buffer
	if err := breakdownPanel(woVec, wVec, st).Render(chart.PNG, &breakdown); err != nil {
		return fmt.Errorf("failed to render component breakdown: %w", err)
	}
	if err := netPanel(without.NetPnL, with.NetPnL, imp, st).Render(chart.PNG, &net); err != nil {
		return fmt.Errorf("failed to render net comparison: %w", err)
	}

	return writeChart(path, func(w io.Writer) error {
		return compositePanels(w, breakdown.Bytes(), net.Bytes())
	})
}

func breakdownPanel(woVec, wVec [5]float64, st Style) *chart.BarChart {
	bars := make([]chart.Value, 0, 10)
	for i := range analysis.PnLCategories {
		bars = append(bars,
			chart.Value{
				Value: woVec[i],
				Label: fmt.Sprintf("%s %s", pnlShortLabels[i], formatCompact(woVec[i])),
				Style: chart.Style{FillColor: colorWithout},
			},
			chart.Value{
				Value: wVec[i],
				Label: formatCompact(wVec[i]),
				Style: chart.Style{FillColor: colorWith},
			},
		)
	}

	return &chart.BarChart{
		Title:  "LP P&L Components (red: without, green: with StockShield)",
		Width:  st.Width / 2,
		Height: st.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.Style{FontSize: st.FontSize - 3},
		YAxis: chart.YAxis{
			Name:  "Amount ($)",
			Range: signedRange(append(woVec[:], wVec[:]...)),
		},
		BarWidth:     34,
		BarSpacing:   16,
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}
}

func netPanel(withoutNet, withNet float64, imp analysis.Improvement, st Style) *chart.BarChart {
	title := fmt.Sprintf("Net P&L: StockShield adds %s", signedMoney(imp.Amount))
	if imp.PercentValid {
		title = fmt.Sprintf("%s (%.1f%% of capital)", title, imp.Percent)
	}

	return &chart.BarChart{
		Title:  title,
		Width:  st.Width / 2,
		Height: st.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.Style{FontSize: st.FontSize - 1},
		YAxis: chart.YAxis{
			Name:  "Net P&L ($)",
			Range: signedRange([]float64{withoutNet, withNet}),
		},
		BarWidth:     90,
		BarSpacing:   40,
		UseBaseValue: true,
		BaseValue:    0,
		Bars: []chart.Value{
			{
				Value: withoutNet,
				Label: fmt.Sprintf("Without %s", FormatMoney(withoutNet)),
				Style: chart.Style{FillColor: pnlColor(withoutNet)},
			},
			{
				Value: withNet,
				Label: fmt.Sprintf("With %s", FormatMoney(withNet)),
				Style: chart.Style{FillColor: pnlColor(withNet)},
			},
		},
	}
}

// signedRange builds a y range covering the values and zero, with a 10%
// margin so bar tops never touch the frame.
func signedRange(values []float64) *chart.ContinuousRange {
	min, max := 0.0, 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == 0 && max == 0 {
		max = 1
	}
	margin := (max - min) * 0.1
	return &chart.ContinuousRange{Min: min - margin, Max: max + margin}
}

func pnlColor(v float64) drawing.Color {
	if v < 0 {
		return colorWithout
	}
	return colorWith
}

func signedMoney(v float64) string {
	if v >= 0 {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}
