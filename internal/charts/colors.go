package charts

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stockshield/shieldviz/internal/sim"
)

// regimeColors is the closed label-to-color table for background shading.
// Unrecognized labels fall back to neutral gray via RegimeColor.
var regimeColors = map[string]drawing.Color{
	sim.RegimeCoreSession: drawing.ColorFromHex("27ae60"),
	sim.RegimeSoftOpen:    drawing.ColorFromHex("f39c12"),
	sim.RegimePreMarket:   drawing.ColorFromHex("3498db"),
	sim.RegimeAfterHours:  drawing.ColorFromHex("9b59b6"),
	sim.RegimeOvernight:   drawing.ColorFromHex("34495e"),
	sim.RegimeWeekend:     drawing.ColorFromHex("95a5a6"),
}

var regimeFallback = drawing.ColorFromHex("cccccc")

// RegimeColor returns the shading color for a regime label, total over
// any input.
func RegimeColor(label string) drawing.Color {
	if c, ok := regimeColors[label]; ok {
		return c
	}
	return regimeFallback
}

var (
	colorWithout  = drawing.ColorFromHex("e74c3c") // scenario without protection
	colorWith     = drawing.ColorFromHex("27ae60") // scenario with StockShield
	colorInformed = drawing.ColorFromHex("e74c3c")
	colorRetail   = drawing.ColorFromHex("3498db")
	colorFees     = drawing.ColorFromHex("3498db")
	colorAdverse  = drawing.ColorFromHex("e74c3c")
	colorAuction  = drawing.ColorFromHex("27ae60")

	colorOrange  = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	colorDarkRed = drawing.Color{R: 139, G: 0, B: 0, A: 255}
)
