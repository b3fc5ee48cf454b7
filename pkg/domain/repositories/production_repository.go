package repositories

import (
	"context"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

// ProductionHistoryRepository provides read access to production history.
// Rows arrive with the recipe already expanded into ingredient line items,
// quantities normalized to each ingredient's base unit.
type ProductionHistoryRepository interface {
	GetProductionHistory(
		ctx context.Context,
		filters entities.ForecastingFilters,
	) ([]*entities.ProductionRecord, error)
}
