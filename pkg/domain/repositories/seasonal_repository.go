package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeasonalTrendRepository provides read access to per-recipe, per-month demand
// multipliers. The found flag is false when no active multiplier exists.
type SeasonalTrendRepository interface {
	GetActiveMultiplier(
		ctx context.Context,
		companyID uuid.UUID,
		recipeID uuid.UUID,
		month time.Month,
	) (decimal.Decimal, bool, error)
}
