package repositories

import (
	"context"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

// SalesHistoryRepository provides read access to sales records.
type SalesHistoryRepository interface {
	GetSalesRecords(
		ctx context.Context,
		filters entities.ForecastingFilters,
	) ([]*entities.SalesRecord, error)
}
