package sim

import "time"

// Document is the root record produced by the e2e simulation engine.
// Field names follow the simulator's JSON output exactly. After Load the
// document is read-only; renderers receive only the slices they need.
type Document struct {
	Config            Config       `json:"config"`
	PriceData         []PricePoint `json:"priceData"`
	VPINData          []VPINPoint  `json:"vpinData"`
	TradeData         []Trade      `json:"tradeData"`
	WithoutProtection *Outcome     `json:"withoutProtection"`
	WithProtection    *Outcome     `json:"withProtection"`
	Comparison        *Comparison  `json:"comparison"`
}

// Config holds the scenario parameters the simulation ran with.
type Config struct {
	SimulationDays   int     `json:"simulationDays"`
	InitialLPBalance float64 `json:"initialLPBalance"`
}

// PricePoint is one price sample with its trading-session regime label.
// Samples are ordered ascending by timestamp.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	Price     float64 `json:"price"`
	Regime    string  `json:"regime"`
}

// Time converts the millisecond epoch timestamp to a calendar time.
func (p PricePoint) Time() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// VPINPoint is one order-flow-toxicity sample, vpin in [0,1].
type VPINPoint struct {
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	VPIN      float64 `json:"vpin"`
}

// Time converts the millisecond epoch timestamp to a calendar time.
func (p VPINPoint) Time() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// Trade is one executed trade. Order is irrelevant; trades are only summed.
type Trade struct {
	Volume     float64 `json:"volume"`
	IsInformed bool    `json:"isInformed"`
	IsBuy      bool    `json:"isBuy"`
}

// Outcome is the LP P&L breakdown for one scenario variant. Loss fields
// hold non-negative magnitudes; sign conventions are applied at display
// time. GapAuctionGains is only populated on the with-protection variant.
type Outcome struct {
	FeesEarned           float64 `json:"feesEarned"`
	ImpermanentLoss      float64 `json:"impermanentLoss"`
	AdverseSelectionLoss float64 `json:"adverseSelectionLoss"`
	GapLoss              float64 `json:"gapLoss"`
	GapAuctionGains      float64 `json:"gapAuctionGains"`
	NetPnL               float64 `json:"netPnL"`
}

// Comparison holds the pre-computed protection-value contributions.
type Comparison struct {
	FeeImprovement            float64 `json:"feeImprovement"`
	AdverseSelectionReduction float64 `json:"adverseSelectionReduction"`
	GapProtectionValue        float64 `json:"gapProtectionValue"`
}

// Recognized trading-session regime labels. Anything outside this set is
// rendered with a neutral fallback color.
const (
	RegimeCoreSession = "CORE_SESSION"
	RegimeSoftOpen    = "SOFT_OPEN"
	RegimePreMarket   = "PRE_MARKET"
	RegimeAfterHours  = "AFTER_HOURS"
	RegimeOvernight   = "OVERNIGHT"
	RegimeWeekend     = "WEEKEND"
)
