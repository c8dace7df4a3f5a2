package charts

import (
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/stockshield/shieldviz/internal/analysis"
	"github.com/stockshield/shieldviz/internal/sim"
)

const timeAxisFormat = "Mon 15:04"

// RenderPrice draws the price timeline with regime-shaded background and
// a dashed reference line at the first sample's price.
func RenderPrice(points []sim.PricePoint, st Style, path string) error {
	if len(points) == 0 {
		return &sim.MissingFieldError{Field: "priceData"}
	}

	times := make([]time.Time, len(points))
	prices := make([]float64, len(points))
	labels := make([]string, len(points))
	for i, p := range points {
		times[i] = p.Time()
		prices[i] = p.Price
		labels[i] = p.Regime
	}

	bands := make([]timeBand, 0, 8)
	for _, iv := range analysis.SegmentRegimes(labels) {
		bands = append(bands, timeBand{
			From:  times[iv.Start],
			To:    times[iv.End],
			Color: RegimeColor(iv.Label).WithAlpha(st.BandAlpha),
		})
	}

	initial := points[0].Price
	times, prices = padTimeline(times, prices)
	first, last := times[0], times[len(times)-1]

	ch := chart.Chart{
		Title:  "AAPL Tokenized Stock Price Over Trading Week",
		Width:  st.Width,
		Height: st.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Date/Time (ET)",
			ValueFormatter: chart.TimeValueFormatterWithFormat(timeAxisFormat),
		},
		YAxis: chart.YAxis{
			Name: "Price ($)",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "AAPL Price",
				XValues: times,
				YValues: prices,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: st.LineWidth,
				},
			},
			hline(fmt.Sprintf("Initial: $%.2f", initial), initial, first, last, chart.ColorRed),
		},
	}
	ch.Elements = []chart.Renderable{
		verticalBands(first, last, bands),
		chart.Legend(&ch),
	}

	return writeChart(path, func(w io.Writer) error {
		if err := ch.Render(chart.PNG, w); err != nil {
			return fmt.Errorf("failed to render price chart: %w", err)
		}
		return nil
	})
}
