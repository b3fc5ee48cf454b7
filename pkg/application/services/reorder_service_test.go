package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/infrastructure/repositories/memory"
)

// newReorderFixture seeds three ingredients consuming 10 units per day with
// stock covering 0, 3 and 20 days respectively.
func newReorderFixture(t *testing.T) (*ReorderService, uuid.UUID, [3]uuid.UUID) {
	t.Helper()

	companyID := uuid.New()
	sugarID := uuid.New()  // no stock: 0 days
	butterID := uuid.New() // 3 days
	flourID := uuid.New()  // 20 days

	production := memory.NewProductionHistoryRepository()
	inventory := memory.NewInventoryRepository()

	addDailyBatches(production, companyID, sugarID, 10, 5)
	addDailyBatches(production, companyID, butterID, 10, 5)
	addDailyBatches(production, companyID, flourID, 10, 5)

	inventory.SetStockLevel(companyID, butterID, decimal.NewFromInt(30))
	inventory.SetStockLevel(companyID, flourID, decimal.NewFromInt(200))

	usage := newUsageService(production, inventory, memory.NewCatalogRepository())
	return NewReorderService(usage), companyID, [3]uuid.UUID{sugarID, butterID, flourID}
}

func TestReorderService_ThresholdFiltersSuggestions(t *testing.T) {
	service, companyID, ids := newReorderFixture(t)
	sugarID, butterID := ids[0], ids[1]

	suggestions, err := service.GenerateReorderSuggestions(context.Background(), companyID, 7)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	// Soonest first
	assert.Equal(t, sugarID, suggestions[0].IngredientID)
	assert.Equal(t, butterID, suggestions[1].IngredientID)
}

func TestReorderService_ZeroThresholdKeepsOnlyUrgent(t *testing.T) {
	service, companyID, ids := newReorderFixture(t)
	sugarID := ids[0]

	suggestions, err := service.GenerateReorderSuggestions(context.Background(), companyID, 0)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, sugarID, suggestions[0].IngredientID)
	assert.Equal(t, 0, suggestions[0].DaysUntilReorder)
}

func TestReorderService_NegativeThresholdUsesDefault(t *testing.T) {
	service, companyID, _ := newReorderFixture(t)

	byDefault, err := service.GenerateReorderSuggestions(context.Background(), companyID, -1)
	require.NoError(t, err)
	explicit, err := service.GenerateReorderSuggestions(context.Background(), companyID, DefaultReorderWindowDays)
	require.NoError(t, err)

	assert.Equal(t, explicit, byDefault)
	assert.Len(t, byDefault, 2)
}

func TestReorderService_WideThresholdKeepsEverything(t *testing.T) {
	service, companyID, _ := newReorderFixture(t)

	suggestions, err := service.GenerateReorderSuggestions(context.Background(), companyID, 30)
	require.NoError(t, err)
	assert.Len(t, suggestions, 3)
}

func TestReorderService_NoHistoryMeansNoSuggestions(t *testing.T) {
	usage := newUsageService(
		memory.NewProductionHistoryRepository(),
		memory.NewInventoryRepository(),
		memory.NewCatalogRepository(),
	)
	service := NewReorderService(usage)

	suggestions, err := service.GenerateReorderSuggestions(context.Background(), uuid.New(), 7)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
