package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeSeriesPoint represents one observed usage or sales quantity on one day.
// Points are created by aggregation and never mutated afterwards.
type TimeSeriesPoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// ForecastPoint represents one forecaster output for one consumed input point.
// LowerBound is clamped to zero, so 0 <= LowerBound <= Predicted <= UpperBound
// and 0 <= Confidence <= 1 always hold.
type ForecastPoint struct {
	Date       time.Time
	Predicted  decimal.Decimal
	Confidence float64
	LowerBound decimal.Decimal
	UpperBound decimal.Decimal
}

// Trend represents the coarse direction of recent demand
type Trend int

const (
	TrendStable Trend = iota
	TrendIncreasing
	TrendDecreasing
)

// String method for Trend enum
func (t Trend) String() string {
	switch t {
	case TrendStable:
		return "stable"
	case TrendIncreasing:
		return "increasing"
	case TrendDecreasing:
		return "decreasing"
	default:
		return "unknown"
	}
}
