package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialSmoothingForecaster_InsufficientData(t *testing.T) {
	forecaster := NewExponentialSmoothingForecaster()

	assert.Empty(t, forecaster.Forecast(nil, 0.3))
	assert.Empty(t, forecaster.Forecast(makeSeries(10), 0.3))
}

func TestExponentialSmoothingForecaster_HandComputed(t *testing.T) {
	forecaster := NewExponentialSmoothingForecaster()
	series := makeSeries(10, 20)

	points := forecaster.Forecast(series, 0.3)
	require.Len(t, points, 1)

	// smoothed = 0.3*20 + 0.7*10 = 13; error = 7; margin = 14
	point := points[0]
	assert.True(t, point.Predicted.Equal(decimal.NewFromInt(13)), "predicted %s", point.Predicted)
	assert.InDelta(t, 0.65, point.Confidence, 1e-9)
	assert.True(t, point.LowerBound.IsZero(), "lower %s", point.LowerBound)
	assert.True(t, point.UpperBound.Equal(decimal.NewFromInt(27)), "upper %s", point.UpperBound)
	assert.Equal(t, series[1].Date, point.Date)
}

func TestExponentialSmoothingForecaster_ConstantSeries(t *testing.T) {
	forecaster := NewExponentialSmoothingForecaster()
	series := makeSeries(10, 10, 10, 10)

	points := forecaster.Forecast(series, 0.3)
	require.Len(t, points, 3)

	ten := decimal.NewFromInt(10)
	for i, point := range points {
		assert.True(t, point.Predicted.Equal(ten), "point %d predicted %s", i, point.Predicted)
		assert.Equal(t, 1.0, point.Confidence, "point %d", i)
		assert.True(t, point.LowerBound.Equal(ten), "point %d", i)
		assert.True(t, point.UpperBound.Equal(ten), "point %d", i)
	}
}

func TestExponentialSmoothingForecaster_ZeroObservation(t *testing.T) {
	forecaster := NewExponentialSmoothingForecaster()
	series := makeSeries(10, 0)

	points := forecaster.Forecast(series, 0.3)
	require.Len(t, points, 1)

	// smoothed = 0.7*10 = 7; a zero observation cannot carry confidence
	point := points[0]
	assert.True(t, point.Predicted.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 0.0, point.Confidence)
	assert.True(t, point.LowerBound.IsZero())
	assert.True(t, point.UpperBound.Equal(decimal.NewFromInt(21)))
}

func TestExponentialSmoothingForecaster_AlphaFallback(t *testing.T) {
	forecaster := NewExponentialSmoothingForecaster()
	series := makeSeries(10, 20, 15, 30)

	want := forecaster.Forecast(series, DefaultSmoothingAlpha)

	assert.Equal(t, want, forecaster.Forecast(series, 0))
	assert.Equal(t, want, forecaster.Forecast(series, -0.5))
	assert.Equal(t, want, forecaster.Forecast(series, 1.5))
}

func TestExponentialSmoothingForecaster_BoundsInvariant(t *testing.T) {
	forecaster := NewExponentialSmoothingForecaster()
	series := makeSeries(10, 25, 3, 40, 12, 50, 7)

	points := forecaster.Forecast(series, 0.3)
	require.Len(t, points, len(series)-1)

	for i, point := range points {
		assert.False(t, point.LowerBound.IsNegative(), "point %d", i)
		assert.True(t, point.LowerBound.LessThanOrEqual(point.Predicted), "point %d", i)
		assert.True(t, point.Predicted.LessThanOrEqual(point.UpperBound), "point %d", i)
		assert.GreaterOrEqual(t, point.Confidence, 0.0, "point %d", i)
		assert.LessOrEqual(t, point.Confidence, 1.0, "point %d", i)
	}
}
