package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/stockshield/shieldviz/internal/sim"
)

// PnLCategories is the fixed display order of the P&L component breakdown.
var PnLCategories = [5]string{
	"Fees Earned",
	"Impermanent Loss",
	"Adverse Selection",
	"Gap Losses",
	"Gap Auction Gains",
}

// PnLVector maps one scenario outcome onto the signed five-category
// display vector: fees positive, loss magnitudes negated, gap-auction
// gains positive and forced to zero for the without-protection variant.
func PnLVector(o *sim.Outcome, withProtection bool) ([5]float64, error) {
	if o == nil {
		field := "withoutProtection"
		if withProtection {
			field = "withProtection"
		}
		return [5]float64{}, &sim.MissingFieldError{Field: field}
	}

	auction := 0.0
	if withProtection {
		auction = o.GapAuctionGains
	}
	return [5]float64{
		o.FeesEarned,
		-o.ImpermanentLoss,
		-o.AdverseSelectionLoss,
		-o.GapLoss,
		auction,
	}, nil
}

// Improvement is the net P&L delta between the two scenario variants.
// PercentValid is false when the initial LP balance is zero, in which
// case Percent is meaningless and callers must not display it.
type Improvement struct {
	Amount       float64
	Percent      float64
	PercentValid bool
}

// NetImprovement computes with.NetPnL - without.NetPnL and the same delta
// as a percentage of the initial LP balance.
func NetImprovement(without, with *sim.Outcome, initialBalance float64) (Improvement, error) {
	if without == nil {
		return Improvement{}, &sim.MissingFieldError{Field: "withoutProtection"}
	}
	if with == nil {
		return Improvement{}, &sim.MissingFieldError{Field: "withProtection"}
	}

	imp := Improvement{Amount: with.NetPnL - without.NetPnL}
	if initialBalance != 0 {
		imp.Percent = imp.Amount / initialBalance * 100
		imp.PercentValid = true
	}
	return imp, nil
}

// ValueShare is one non-negative contribution to the protection value.
type ValueShare struct {
	Label string
	Value float64
}

// ProtectionShares returns the three protection-value contributions with
// negative contributions clipped to zero, plus their clipped total.
// Protection value is never displayed as negative: a net-harmful source
// shows as zero contribution, and a zero total means no pie is drawn.
func ProtectionShares(c *sim.Comparison) ([]ValueShare, float64, error) {
	if c == nil {
		return nil, 0, &sim.MissingFieldError{Field: "comparison"}
	}

	shares := []ValueShare{
		{Label: "Higher Fees (Dynamic Pricing)", Value: clipZero(c.FeeImprovement)},
		{Label: "Adverse Selection Reduction", Value: clipZero(c.AdverseSelectionReduction)},
		{Label: "Gap Auction Gains", Value: clipZero(c.GapProtectionValue)},
	}

	total := 0.0
	for _, s := range shares {
		total += s.Value
	}
	return shares, total, nil
}

func clipZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// VolumeSplit holds trade volume summed along the two independent
// partitions. Sums stay decimal so the cross-check invariant
// Informed+Retail == Buy+Sell == Total holds exactly, independent of
// summation order; renderers convert at the edge for drawing.
type VolumeSplit struct {
	Informed decimal.Decimal
	Retail   decimal.Decimal
	Buy      decimal.Decimal
	Sell     decimal.Decimal
	Total    decimal.Decimal
}

// SplitVolumes sums trade volume by informedness and independently by
// direction. An empty trade set yields all zeros.
func SplitVolumes(trades []sim.Trade) VolumeSplit {
	informed := decimal.Zero
	retail := decimal.Zero
	buy := decimal.Zero
	sell := decimal.Zero

	for _, t := range trades {
		v := decimal.NewFromFloat(t.Volume)
		if t.IsInformed {
			informed = informed.Add(v)
		} else {
			retail = retail.Add(v)
		}
		if t.IsBuy {
			buy = buy.Add(v)
		} else {
			sell = sell.Add(v)
		}
	}

	return VolumeSplit{
		Informed: informed,
		Retail:   retail,
		Buy:      buy,
		Sell:     sell,
		Total:    informed.Add(retail),
	}
}
