package services

import (
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

// trendThreshold is the relative change beyond which a series counts as
// increasing or decreasing rather than stable.
var trendThreshold = decimal.NewFromFloat(0.10)

// minTrendPoints is the fewest points that can carry a direction signal.
const minTrendPoints = 2

// TrendClassifier labels the direction of a recent demand window by comparing
// the mean of its first half against the mean of its second half.
type TrendClassifier struct{}

// NewTrendClassifier creates a new trend classifier
func NewTrendClassifier() *TrendClassifier {
	return &TrendClassifier{}
}

// Classify returns the coarse direction of the given window, most recent
// points last. Too few points, or a zero first-half mean, classify as stable;
// a safe default, never an error.
func (c *TrendClassifier) Classify(points []entities.TimeSeriesPoint) entities.Trend {
	if len(points) < minTrendPoints {
		return entities.TrendStable
	}

	mid := len(points) / 2
	firstMean := meanValue(points[:mid])
	secondMean := meanValue(points[mid:])

	if !firstMean.IsPositive() {
		return entities.TrendStable
	}

	relativeChange := secondMean.Sub(firstMean).Div(firstMean)
	switch {
	case relativeChange.GreaterThan(trendThreshold):
		return entities.TrendIncreasing
	case relativeChange.LessThan(trendThreshold.Neg()):
		return entities.TrendDecreasing
	default:
		return entities.TrendStable
	}
}

// meanValue computes the arithmetic mean of the point values.
func meanValue(points []entities.TimeSeriesPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range points {
		sum = sum.Add(p.Value)
	}
	return sum.Div(decimal.NewFromInt(int64(len(points))))
}
