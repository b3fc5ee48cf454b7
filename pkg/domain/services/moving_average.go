package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

// normalZ95 is the two-sided z-score for a 95% normal interval.
var normalZ95 = decimal.NewFromFloat(1.96)

// MovingAverageForecaster produces trailing-window average forecasts with
// variance-derived confidence and bounds. Usage series are noisy day to day;
// a simple moving window is robust to outliers and needs no parameter
// fitting, which suits short lead-time reorder decisions.
type MovingAverageForecaster struct{}

// NewMovingAverageForecaster creates a new moving average forecaster
func NewMovingAverageForecaster() *MovingAverageForecaster {
	return &MovingAverageForecaster{}
}

// Forecast emits one point per trailing window over a series sorted ascending
// by date. A series shorter than the window yields no points; insufficient
// data is a normal outcome, not an error. When the series length equals the
// window exactly, a single point covering the whole series is emitted.
func (f *MovingAverageForecaster) Forecast(
	series []entities.TimeSeriesPoint,
	period int,
) []entities.ForecastPoint {
	if period < 1 || len(series) < period {
		return nil
	}

	points := make([]entities.ForecastPoint, 0, len(series)-period+1)
	for i := period; i < len(series); i++ {
		points = append(points, f.windowPoint(series[i-period:i], series[i].Date))
	}

	// Boundary case: the series is exactly one window long. The loop above
	// never runs, but one full window of signal exists, so forecast from it
	// dated at the last observation.
	if len(points) == 0 {
		points = append(points, f.windowPoint(series, series[len(series)-1].Date))
	}

	return points
}

// windowPoint computes the forecast point for one trailing window.
func (f *MovingAverageForecaster) windowPoint(
	window []entities.TimeSeriesPoint,
	date time.Time,
) entities.ForecastPoint {
	size := decimal.NewFromInt(int64(len(window)))

	sum := decimal.Zero
	for _, p := range window {
		sum = sum.Add(p.Value)
	}
	avg := sum.Div(size)

	// Population variance over the same window.
	sqSum := decimal.Zero
	for _, p := range window {
		diff := p.Value.Sub(avg)
		sqSum = sqSum.Add(diff.Mul(diff))
	}
	variance := sqSum.Div(size)
	stdDev := decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))

	// Zero average means zero usage in the whole window; report no
	// confidence rather than dividing by zero.
	confidence := 0.0
	if avg.IsPositive() {
		confidence = clamp01(1 - stdDev.InexactFloat64()/avg.InexactFloat64())
	}

	margin := normalZ95.Mul(stdDev)
	lower := avg.Sub(margin)
	if lower.IsNegative() {
		lower = decimal.Zero
	}

	return entities.ForecastPoint{
		Date:       date,
		Predicted:  avg,
		Confidence: confidence,
		LowerBound: lower,
		UpperBound: avg.Add(margin),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
