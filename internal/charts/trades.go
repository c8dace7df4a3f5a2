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

// RenderTradeDistribution draws two volume pies side by side: informed
// vs. retail, and buy vs. sell. A present-but-empty trade set degenerates
// to blank panels; an absent section is a missing field.
func RenderTradeDistribution(trades []sim.Trade, st Style, path string) error {
	if trades == nil {
		return &sim.MissingFieldError{Field: "tradeData"}
	}

	split := analysis.SplitVolumes(trades)
	total := split.Total.InexactFloat64()

	var left, right bytes.Buffer
	err := volumePie(&left, st, "Trading Volume by Trader Type", total, []volumeSlice{
		{Name: "Informed Traders", Volume: split.Informed.InexactFloat64(), Color: colorInformed},
		{Name: "Retail Traders", Volume: split.Retail.InexactFloat64(), Color: colorRetail},
	})
	if err != nil {
		return err
	}
	err = volumePie(&right, st, "Trading Volume by Direction", total, []volumeSlice{
		{Name: "Buy Orders", Volume: split.Buy.InexactFloat64(), Color: colorWith},
		{Name: "Sell Orders", Volume: split.Sell.InexactFloat64(), Color: colorWithout},
	})
	if err != nil {
		return err
	}

	return writeChart(path, func(w io.Writer) error {
		return compositePanels(w, left.Bytes(), right.Bytes())
	})
}

type volumeSlice struct {
	Name   string
	Volume float64
	Color  drawing.Color
}

func volumePie(w io.Writer, st Style, title string, total float64, slices []volumeSlice) error {
	if total <= 0 {
		return renderBlankPanel(w, st.Width/2, st.PieHeight, st.FontSize,
			title, "No trade volume recorded")
	}

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		if s.Volume <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: s.Volume,
			Label: fmt.Sprintf("%s: $%.1fM (%.1f%%)", s.Name, s.Volume/1e6, s.Volume/total*100),
			Style: chart.Style{
				FillColor: s.Color,
				FontSize:  st.FontSize - 1,
			},
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  st.Width / 2,
		Height: st.PieHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}

	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %s: %w", title, err)
	}
	return nil
}
