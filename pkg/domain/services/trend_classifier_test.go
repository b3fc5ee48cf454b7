package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

func makeFloatSeries(values ...float64) []entities.TimeSeriesPoint {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]entities.TimeSeriesPoint, 0, len(values))
	for i, v := range values {
		series = append(series, entities.TimeSeriesPoint{
			Date:  base.AddDate(0, 0, i),
			Value: decimal.NewFromFloat(v),
		})
	}
	return series
}

func TestTrendClassifier_Classify(t *testing.T) {
	classifier := NewTrendClassifier()

	tests := []struct {
		name   string
		values []float64
		want   entities.Trend
	}{
		{
			name:   "doubling_is_increasing",
			values: []float64{1, 1, 1, 2, 2, 2},
			want:   entities.TrendIncreasing,
		},
		{
			name:   "halving_is_decreasing",
			values: []float64{2, 2, 2, 1, 1, 1},
			want:   entities.TrendDecreasing,
		},
		{
			name:   "five_percent_is_stable",
			values: []float64{1, 1, 1, 1.05, 1.05, 1.05},
			want:   entities.TrendStable,
		},
		{
			name:   "exactly_ten_percent_is_stable",
			values: []float64{10, 10, 11, 11},
			want:   entities.TrendStable,
		},
		{
			name:   "flat_is_stable",
			values: []float64{5, 5, 5, 5, 5},
			want:   entities.TrendStable,
		},
		{
			name:   "single_point_is_stable",
			values: []float64{42},
			want:   entities.TrendStable,
		},
		{
			name:   "empty_is_stable",
			values: nil,
			want:   entities.TrendStable,
		},
		{
			name:   "zero_first_half_is_stable",
			values: []float64{0, 0, 5, 5},
			want:   entities.TrendStable,
		},
		{
			name:   "odd_length_splits_floor",
			values: []float64{1, 1, 1, 2, 2, 2, 2},
			want:   entities.TrendIncreasing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(makeFloatSeries(tt.values...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrend_String(t *testing.T) {
	assert.Equal(t, "stable", entities.TrendStable.String())
	assert.Equal(t, "increasing", entities.TrendIncreasing.String())
	assert.Equal(t, "decreasing", entities.TrendDecreasing.String())
}
