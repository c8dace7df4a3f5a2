package charts

import (
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/stockshield/shieldviz/internal/analysis"
	"github.com/stockshield/shieldviz/internal/sim"
)

// Fixed toxicity thresholds drawn on every VPIN chart. Samples above
// VPINHighRisk get a highlighted band around them.
const (
	VPINElevated = 0.30
	VPINHighRisk = 0.50
	VPINExtreme  = 0.70
)

// RenderVPIN draws the order-flow-toxicity timeline with the three
// threshold lines and red bands around every high-risk breach.
func RenderVPIN(points []sim.VPINPoint, st Style, path string) error {
	if len(points) == 0 {
		return &sim.MissingFieldError{Field: "vpinData"}
	}

	times := make([]time.Time, len(points))
	vpins := make([]float64, len(points))
	for i, p := range points {
		times[i] = p.Time()
		vpins[i] = p.VPIN
	}

	bands := make([]timeBand, 0)
	for _, b := range analysis.ThresholdBands(vpins, VPINHighRisk) {
		bands = append(bands, timeBand{
			From:  times[b.Start],
			To:    times[b.End],
			Color: chart.ColorRed.WithAlpha(st.HighlightAlpha),
		})
	}

	plotTimes, plotVPINs := padTimeline(times, vpins)
	first, last := plotTimes[0], plotTimes[len(plotTimes)-1]

	ch := chart.Chart{
		Title:  "VPIN (Order Flow Toxicity) Over Trading Week",
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
			Name:  "VPIN Score",
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "VPIN",
				XValues: plotTimes,
				YValues: plotVPINs,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: st.LineWidth,
					FillColor:   chart.ColorBlue.WithAlpha(70),
				},
			},
			hline("Elevated (30%)", VPINElevated, first, last, colorOrange),
			hline("High Risk (50%)", VPINHighRisk, first, last, chart.ColorRed),
			hline("Extreme (70%)", VPINExtreme, first, last, colorDarkRed),
		},
	}
	ch.Elements = []chart.Renderable{
		verticalBands(first, last, bands),
		chart.Legend(&ch),
	}

	return writeChart(path, func(w io.Writer) error {
		if err := ch.Render(chart.PNG, w); err != nil {
			return fmt.Errorf("failed to render vpin chart: %w", err)
		}
		return nil
	})
}
