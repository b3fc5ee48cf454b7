package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

// DefaultReorderWindowDays bounds which ingredients count as due for reorder
// when the caller does not pick a window.
const DefaultReorderWindowDays = 7

// ReorderService answers "what should I reorder now" as a single call: a
// full-history usage forecast filtered by a days-until-reorder threshold.
type ReorderService struct {
	usage *IngredientUsageService
}

// NewReorderService creates a new reorder suggestion service
func NewReorderService(usage *IngredientUsageService) *ReorderService {
	return &ReorderService{usage: usage}
}

// GenerateReorderSuggestions returns the ingredients due for reorder within
// maxDaysUntilReorder days, soonest first. A negative threshold falls back to
// DefaultReorderWindowDays; zero keeps only immediately-urgent entries.
func (s *ReorderService) GenerateReorderSuggestions(
	ctx context.Context,
	companyID uuid.UUID,
	maxDaysUntilReorder int,
) ([]entities.IngredientForecast, error) {
	if maxDaysUntilReorder < 0 {
		maxDaysUntilReorder = DefaultReorderWindowDays
	}

	forecasts, err := s.usage.ForecastIngredientUsage(ctx, entities.ForecastingFilters{
		CompanyID: companyID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to forecast ingredient usage: %w", err)
	}

	suggestions := make([]entities.IngredientForecast, 0, len(forecasts))
	for _, forecast := range forecasts {
		if forecast.DaysUntilReorder <= maxDaysUntilReorder {
			suggestions = append(suggestions, forecast)
		}
	}

	return suggestions, nil
}
