package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/repositories"
)

// InventoryRepository provides in-memory stock level storage
type InventoryRepository struct {
	stock map[uuid.UUID]map[uuid.UUID]decimal.Decimal
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		stock: make(map[uuid.UUID]map[uuid.UUID]decimal.Decimal),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// SetStockLevel sets the on-hand quantity for an ingredient
func (r *InventoryRepository) SetStockLevel(
	companyID uuid.UUID,
	ingredientID uuid.UUID,
	quantity decimal.Decimal,
) {
	company, exists := r.stock[companyID]
	if !exists {
		company = make(map[uuid.UUID]decimal.Decimal)
		r.stock[companyID] = company
	}
	company[ingredientID] = quantity
}

// LoadStockLevels loads stock levels into the repository
func (r *InventoryRepository) LoadStockLevels(levels []*entities.StockLevel) error {
	for _, level := range levels {
		r.SetStockLevel(level.CompanyID, level.IngredientID, level.Quantity)
	}
	return nil
}

// GetStockLevels returns the on-hand quantity per ingredient. A nil or empty
// id list returns every stock level in the company scope; ingredients without
// a stock record are absent from the result.
func (r *InventoryRepository) GetStockLevels(
	ctx context.Context,
	companyID uuid.UUID,
	ingredientIDs []uuid.UUID,
) (map[uuid.UUID]decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	company := r.stock[companyID]
	levels := make(map[uuid.UUID]decimal.Decimal)

	if len(ingredientIDs) == 0 {
		for id, qty := range company {
			levels[id] = qty
		}
		return levels, nil
	}

	for _, id := range ingredientIDs {
		if qty, exists := company[id]; exists {
			levels[id] = qty
		}
	}
	return levels, nil
}
