package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/repositories"
)

// SeasonalTrendRepository provides in-memory seasonal trend storage
type SeasonalTrendRepository struct {
	trends []entities.SeasonalTrend
}

// NewSeasonalTrendRepository creates a new in-memory seasonal trend repository
func NewSeasonalTrendRepository() *SeasonalTrendRepository {
	return &SeasonalTrendRepository{
		trends: []entities.SeasonalTrend{},
	}
}

// Verify interface compliance
var _ repositories.SeasonalTrendRepository = (*SeasonalTrendRepository)(nil)

// AddTrend adds a seasonal trend to the repository
func (r *SeasonalTrendRepository) AddTrend(trend entities.SeasonalTrend) {
	r.trends = append(r.trends, trend)
}

// LoadTrends loads seasonal trends into the repository
func (r *SeasonalTrendRepository) LoadTrends(trends []*entities.SeasonalTrend) error {
	for _, trend := range trends {
		r.AddTrend(*trend)
	}
	return nil
}

// GetActiveMultiplier returns the first active multiplier matching the
// company, recipe and month, or found=false when none exists.
func (r *SeasonalTrendRepository) GetActiveMultiplier(
	ctx context.Context,
	companyID uuid.UUID,
	recipeID uuid.UUID,
	month time.Month,
) (decimal.Decimal, bool, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Decimal{}, false, err
	}

	for _, trend := range r.trends {
		if !trend.Active {
			continue
		}
		if trend.CompanyID == companyID && trend.RecipeID == recipeID && trend.Month == month {
			return trend.Multiplier, true, nil
		}
	}
	return decimal.Decimal{}, false, nil
}
