package services

import (
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

// DefaultSmoothingAlpha is the smoothing factor used when the caller passes
// one outside (0, 1].
const DefaultSmoothingAlpha = 0.3

// ExponentialSmoothingForecaster produces recursive smoothing forecasts with
// error-derived confidence and bounds. Sales series respond faster to recent
// shifts than a fixed window average; single-parameter smoothing is cheap and
// sufficient for a horizon of days.
type ExponentialSmoothingForecaster struct{}

// NewExponentialSmoothingForecaster creates a new exponential smoothing forecaster
func NewExponentialSmoothingForecaster() *ExponentialSmoothingForecaster {
	return &ExponentialSmoothingForecaster{}
}

// Forecast emits one point per input point after the first, over a series
// sorted ascending by date. Fewer than two points yield no forecast.
func (f *ExponentialSmoothingForecaster) Forecast(
	series []entities.TimeSeriesPoint,
	alpha float64,
) []entities.ForecastPoint {
	if len(series) < 2 {
		return nil
	}
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultSmoothingAlpha
	}

	alphaDec := decimal.NewFromFloat(alpha)
	oneMinusAlpha := decimal.NewFromInt(1).Sub(alphaDec)
	two := decimal.NewFromInt(2)

	smoothed := series[0].Value
	points := make([]entities.ForecastPoint, 0, len(series)-1)

	for i := 1; i < len(series); i++ {
		observed := series[i].Value
		smoothed = observed.Mul(alphaDec).Add(smoothed.Mul(oneMinusAlpha))
		smoothingErr := observed.Sub(smoothed).Abs()

		// A zero observation makes the relative error undefined; report no
		// confidence instead of dividing by zero.
		confidence := 0.0
		if observed.IsPositive() {
			confidence = clamp01(1 - smoothingErr.InexactFloat64()/observed.InexactFloat64())
		}

		margin := smoothingErr.Mul(two)
		lower := smoothed.Sub(margin)
		if lower.IsNegative() {
			lower = decimal.Zero
		}

		points = append(points, entities.ForecastPoint{
			Date:       series[i].Date,
			Predicted:  smoothed,
			Confidence: confidence,
			LowerBound: lower,
			UpperBound: smoothed.Add(margin),
		})
	}

	return points
}
