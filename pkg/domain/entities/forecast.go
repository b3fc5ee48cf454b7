package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientForecast represents the usage forecast and reorder math for one
// ingredient. DaysUntilReorder is zero both when the ingredient is out of
// stock and when it has no measurable usage, so callers always see urgent
// entries first after sorting.
type IngredientForecast struct {
	IngredientID      uuid.UUID
	IngredientName    string
	CurrentStock      decimal.Decimal
	PredictedUsage    decimal.Decimal
	ReorderPoint      decimal.Decimal
	SuggestedOrderQty decimal.Decimal
	DaysUntilReorder  int
	Confidence        float64
}

// SalesForecast represents the seasonally adjusted sales forecast for one recipe.
// PredictedSales is the raw smoothed forecast scaled by SeasonalMultiplier.
type SalesForecast struct {
	RecipeID           uuid.UUID
	RecipeName         string
	PredictedSales     decimal.Decimal
	Confidence         float64
	Trend              Trend
	SeasonalMultiplier decimal.Decimal
}
