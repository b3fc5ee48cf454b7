package memory

import (
	"context"
	"sort"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/repositories"
)

// ProductionHistoryRepository provides in-memory production history storage
type ProductionHistoryRepository struct {
	records []entities.ProductionRecord
}

// NewProductionHistoryRepository creates a new in-memory production history repository
func NewProductionHistoryRepository() *ProductionHistoryRepository {
	return &ProductionHistoryRepository{
		records: []entities.ProductionRecord{},
	}
}

// Verify interface compliance
var _ repositories.ProductionHistoryRepository = (*ProductionHistoryRepository)(nil)

// AddRecord adds a production record to the repository
func (r *ProductionHistoryRepository) AddRecord(record entities.ProductionRecord) {
	r.records = append(r.records, record)
}

// LoadRecords loads production records into the repository
func (r *ProductionHistoryRepository) LoadRecords(records []*entities.ProductionRecord) error {
	for _, record := range records {
		r.AddRecord(*record)
	}
	return nil
}

// GetProductionHistory returns the records matching the company scope, date
// range and optional recipe subset, sorted by production date.
func (r *ProductionHistoryRepository) GetProductionHistory(
	ctx context.Context,
	filters entities.ForecastingFilters,
) ([]*entities.ProductionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched []*entities.ProductionRecord
	for i := range r.records {
		record := &r.records[i]
		if record.CompanyID != filters.CompanyID {
			continue
		}
		if !filters.InRange(record.ProducedOn) {
			continue
		}
		if !filters.WantsRecipe(record.RecipeID) {
			continue
		}
		matched = append(matched, record)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ProducedOn.Before(matched[j].ProducedOn)
	})

	return matched, nil
}
