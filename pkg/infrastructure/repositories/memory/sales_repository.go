package memory

import (
	"context"
	"sort"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/repositories"
)

// SalesHistoryRepository provides in-memory sales record storage
type SalesHistoryRepository struct {
	records []entities.SalesRecord
}

// NewSalesHistoryRepository creates a new in-memory sales history repository
func NewSalesHistoryRepository() *SalesHistoryRepository {
	return &SalesHistoryRepository{
		records: []entities.SalesRecord{},
	}
}

// Verify interface compliance
var _ repositories.SalesHistoryRepository = (*SalesHistoryRepository)(nil)

// AddRecord adds a sales record to the repository
func (r *SalesHistoryRepository) AddRecord(record entities.SalesRecord) {
	r.records = append(r.records, record)
}

// LoadRecords loads sales records into the repository
func (r *SalesHistoryRepository) LoadRecords(records []*entities.SalesRecord) error {
	for _, record := range records {
		r.AddRecord(*record)
	}
	return nil
}

// GetSalesRecords returns the records matching the company scope, date range
// and optional recipe subset, sorted by transaction date. Rows without a
// recipe reference survive an empty recipe subset; the pipeline decides what
// to do with them.
func (r *SalesHistoryRepository) GetSalesRecords(
	ctx context.Context,
	filters entities.ForecastingFilters,
) ([]*entities.SalesRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched []*entities.SalesRecord
	for i := range r.records {
		record := &r.records[i]
		if record.CompanyID != filters.CompanyID {
			continue
		}
		if !filters.InRange(record.SoldOn) {
			continue
		}
		if !filters.WantsRecipe(record.RecipeID) {
			continue
		}
		matched = append(matched, record)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SoldOn.Before(matched[j].SoldOn)
	})

	return matched, nil
}
