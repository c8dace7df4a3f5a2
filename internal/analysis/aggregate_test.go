package analysis

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockshield/shieldviz/internal/sim"
)

func TestPnLVector_SignConvention(t *testing.T) {
	outcome := &sim.Outcome{
		FeesEarned:           1000,
		ImpermanentLoss:      200,
		AdverseSelectionLoss: 300,
		GapLoss:              400,
		GapAuctionGains:      150,
	}

	with, err := PnLVector(outcome, true)
	require.NoError(t, err)
	assert.Equal(t, [5]float64{1000, -200, -300, -400, 150}, with)

	// The without-protection variant never shows auction gains, even if
	// the field happens to be populated.
	without, err := PnLVector(outcome, false)
	require.NoError(t, err)
	assert.Equal(t, [5]float64{1000, -200, -300, -400, 0}, without)
}

func TestPnLVector_MissingOutcome(t *testing.T) {
	_, err := PnLVector(nil, false)
	var missing *sim.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "withoutProtection", missing.Field)

	_, err = PnLVector(nil, true)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "withProtection", missing.Field)
}

func TestNetImprovement(t *testing.T) {
	without := &sim.Outcome{NetPnL: -1000}
	with := &sim.Outcome{NetPnL: 500}

	imp, err := NetImprovement(without, with, 100000)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, imp.Amount)
	assert.True(t, imp.PercentValid)
	assert.InDelta(t, 1.5, imp.Percent, 1e-9)
}

func TestNetImprovement_ZeroBalance(t *testing.T) {
	imp, err := NetImprovement(&sim.Outcome{NetPnL: -100}, &sim.Outcome{NetPnL: 100}, 0)
	require.NoError(t, err)
	assert.Equal(t, 200.0, imp.Amount)
	assert.False(t, imp.PercentValid, "percentage is undefined with zero initial balance")
}

func TestNetImprovement_MissingVariants(t *testing.T) {
	var missing *sim.MissingFieldError

	_, err := NetImprovement(nil, &sim.Outcome{}, 1)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "withoutProtection", missing.Field)

	_, err = NetImprovement(&sim.Outcome{}, nil, 1)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "withProtection", missing.Field)
}

func TestProtectionShares_Clipping(t *testing.T) {
	shares, total, err := ProtectionShares(&sim.Comparison{
		FeeImprovement:            300,
		AdverseSelectionReduction: -50,
		GapProtectionValue:        200,
	})
	require.NoError(t, err)

	// Negative contributions clip to zero and the total sums only the
	// positive parts.
	assert.Equal(t, 500.0, total)
	assert.Equal(t, 300.0, shares[0].Value)
	assert.Equal(t, 0.0, shares[1].Value)
	assert.Equal(t, 200.0, shares[2].Value)
	for _, s := range shares {
		assert.GreaterOrEqual(t, s.Value, 0.0)
	}
}

func TestProtectionShares_AllNegative(t *testing.T) {
	shares, total, err := ProtectionShares(&sim.Comparison{
		FeeImprovement:            -1,
		AdverseSelectionReduction: -2,
		GapProtectionValue:        -3,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.Equal(t, 0.0, s.Value)
	}
}

func TestProtectionShares_MissingComparison(t *testing.T) {
	_, _, err := ProtectionShares(nil)
	var missing *sim.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "comparison", missing.Field)
}

func TestSplitVolumes_CrossCheck(t *testing.T) {
	trades := []sim.Trade{
		{Volume: 1200.50, IsInformed: true, IsBuy: true},
		{Volume: 800.25, IsInformed: false, IsBuy: true},
		{Volume: 400.10, IsInformed: true, IsBuy: false},
		{Volume: 950.75, IsInformed: false, IsBuy: false},
		{Volume: 0.01, IsInformed: false, IsBuy: true},
	}

	split := SplitVolumes(trades)

	assert.True(t, split.Informed.Add(split.Retail).Equal(split.Total),
		"informed+retail must equal total exactly")
	assert.True(t, split.Buy.Add(split.Sell).Equal(split.Total),
		"buy+sell must equal total exactly")
	assert.True(t, split.Informed.Equal(decimal.NewFromFloat(1600.60)))
	assert.True(t, split.Retail.Equal(decimal.NewFromFloat(1751.01)))
	assert.True(t, split.Buy.Equal(decimal.NewFromFloat(2000.76)))
	assert.True(t, split.Sell.Equal(decimal.NewFromFloat(1350.85)))
}

func TestSplitVolumes_Empty(t *testing.T) {
	split := SplitVolumes(nil)
	assert.True(t, split.Informed.IsZero())
	assert.True(t, split.Retail.IsZero())
	assert.True(t, split.Buy.IsZero())
	assert.True(t, split.Sell.IsZero())
	assert.True(t, split.Total.IsZero())
}
