package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stockshield/shieldviz/internal/analysis"
	"github.com/stockshield/shieldviz/internal/sim"
)

var shareColors = [3]drawing.Color{colorFees, colorAdverse, colorAuction}

// RenderProtectionPie draws the proportional breakdown of where the
// protection value came from. Negative contributions are already clipped
// to zero by the aggregator; a zero clipped total degenerates to a titled
// blank panel instead of a pie.
func RenderProtectionPie(c *sim.Comparison, st Style, path string) error {
	shares, total, err := analysis.ProtectionShares(c)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Sources of StockShield Protection Value (Total: %s)", FormatMoney(total))

	if total <= 0 {
		return writeChart(path, func(w io.Writer) error {
			return renderBlankPanel(w, st.PieWidth, st.PieHeight, st.FontSize,
				title, "No positive protection value to attribute")
		})
	}

	values := make([]chart.Value, 0, len(shares))
	for i, s := range shares {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: s.Value,
			Label: fmt.Sprintf("%s: %s (%.1f%%)", s.Label, FormatMoney(s.Value), s.Value/total*100),
			Style: chart.Style{
				FillColor: shareColors[i],
				FontSize:  st.FontSize - 1,
			},
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  st.PieWidth,
		Height: st.PieHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}

	return writeChart(path, func(w io.Writer) error {
		if err := pie.Render(chart.PNG, w); err != nil {
			return fmt.Errorf("failed to render protection value pie: %w", err)
		}
		return nil
	})
}
