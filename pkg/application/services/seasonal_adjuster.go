package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/repositories"
)

// SeasonalAdjuster resolves per-recipe, per-month demand multipliers from the
// seasonal trend collaborator. Lookups are side-effect-free reads; nothing is
// cached here.
type SeasonalAdjuster struct {
	trends repositories.SeasonalTrendRepository
}

// NewSeasonalAdjuster creates a new seasonal adjuster
func NewSeasonalAdjuster(trends repositories.SeasonalTrendRepository) *SeasonalAdjuster {
	return &SeasonalAdjuster{trends: trends}
}

// MultiplierFor returns the active multiplier for the recipe and month, or a
// neutral 1 when none is configured.
func (a *SeasonalAdjuster) MultiplierFor(
	ctx context.Context,
	companyID uuid.UUID,
	recipeID uuid.UUID,
	month time.Month,
) (decimal.Decimal, error) {
	multiplier, found, err := a.trends.GetActiveMultiplier(ctx, companyID, recipeID, month)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf(
			"failed to get seasonal multiplier for recipe %s: %w",
			recipeID,
			err,
		)
	}
	if !found {
		return decimal.NewFromInt(1), nil
	}
	return multiplier, nil
}
