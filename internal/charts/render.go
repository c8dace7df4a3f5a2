package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// writeChart writes one rendered chart to path. On a render failure the
// file is removed so no partially written image is left behind.
func writeChart(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to flush chart file: %w", err)
	}
	return nil
}

// timeBand is a shaded vertical span on a time axis.
type timeBand struct {
	From  time.Time
	To    time.Time
	Color drawing.Color
}

// verticalBands draws translucent background spans across the full plot
// height. The x mapping is rebuilt from the series time extent, which
// matches the chart's own continuous range when min/max come from the
// plotted data.
func verticalBands(min, max time.Time, bands []timeBand) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, _ chart.Style) {
		xr := &chart.ContinuousRange{
			Min: float64(min.UnixNano()),
			Max: float64(max.UnixNano()),
		}
		xr.SetDomain(canvasBox.Width())

		for _, b := range bands {
			x0 := canvasBox.Left + xr.Translate(float64(b.From.UnixNano()))
			x1 := canvasBox.Left + xr.Translate(float64(b.To.UnixNano()))
			if x1 <= x0 {
				x1 = x0 + 1
			}
			r.SetFillColor(b.Color)
			r.MoveTo(x0, canvasBox.Top)
			r.LineTo(x1, canvasBox.Top)
			r.LineTo(x1, canvasBox.Bottom)
			r.LineTo(x0, canvasBox.Bottom)
			r.Close()
			r.Fill()
		}
	}
}

// hline builds a dashed horizontal reference series spanning the time range.
func hline(name string, y float64, from, to time.Time, color drawing.Color) chart.TimeSeries {
	if !to.After(from) {
		to = from.Add(time.Second)
	}
	return chart.TimeSeries{
		Name:    name,
		XValues: []time.Time{from, to},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeColor:     color,
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// padTimeline guarantees at least two samples so the x range never
// collapses to a point.
func padTimeline(times []time.Time, values []float64) ([]time.Time, []float64) {
	if len(times) != 1 {
		return times, values
	}
	return append(times, times[0].Add(time.Second)), append(values, values[0])
}

// renderBlankPanel produces a titled empty panel for degenerate charts
// (nothing positive to draw). The file is still a valid PNG artifact.
func renderBlankPanel(w io.Writer, width, height int, fontSize float64, lines ...string) error {
	r, err := chart.PNG(width, height)
	if err != nil {
		return fmt.Errorf("failed to create raster surface: %w", err)
	}

	r.SetFillColor(chart.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("failed to load default font: %w", err)
	}
	r.SetFont(font)
	r.SetFontColor(chart.ColorBlack)
	r.SetFontSize(fontSize + 3)

	y := height/2 - (len(lines)-1)*12
	for _, line := range lines {
		tb := r.MeasureText(line)
		r.Text(line, (width-tb.Width())/2, y)
		y += 28
	}

	return r.Save(w)
}

// compositePanels renders the encoded PNG panels side by side on a white
// background, producing the multi-panel figures go-chart cannot draw
// natively.
func compositePanels(w io.Writer, panels ...[]byte) error {
	images := make([]image.Image, 0, len(panels))
	width, height := 0, 0
	for i, p := range panels {
		img, err := png.Decode(bytes.NewReader(p))
		if err != nil {
			return fmt.Errorf("failed to decode panel %d: %w", i, err)
		}
		images = append(images, img)
		width += img.Bounds().Dx()
		if h := img.Bounds().Dy(); h > height {
			height = h
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	x := 0
	for _, img := range images {
		bounds := img.Bounds()
		target := image.Rect(x, 0, x+bounds.Dx(), bounds.Dy())
		draw.Draw(canvas, target, img, bounds.Min, draw.Over)
		x += bounds.Dx()
	}

	if err := png.Encode(w, canvas); err != nil {
		return fmt.Errorf("failed to encode composite: %w", err)
	}
	return nil
}

// FormatMoney renders a dollar amount with thousands separators and no
// decimals, keeping the reference "$-1,234" shape for negatives.
func FormatMoney(v float64) string {
	n := int64(math.Round(math.Abs(v)))

	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if v < 0 && n != 0 {
		return "$-" + b.String()
	}
	return "$" + b.String()
}

// formatCompact abbreviates a dollar amount for tight bar labels.
func formatCompact(v float64) string {
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("$%s%.1fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%s%.1fk", sign, abs/1e3)
	default:
		return fmt.Sprintf("$%s%.0f", sign, abs)
	}
}
