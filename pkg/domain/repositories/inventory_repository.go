package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryRepository provides read access to current on-hand stock levels,
// normalized to each ingredient's base unit. Ingredients with no stock record
// are simply absent from the returned map.
type InventoryRepository interface {
	GetStockLevels(
		ctx context.Context,
		companyID uuid.UUID,
		ingredientIDs []uuid.UUID,
	) (map[uuid.UUID]decimal.Decimal, error)
}
