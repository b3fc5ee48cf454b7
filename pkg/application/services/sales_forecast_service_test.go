package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	domainservices "github.com/Matt-OFGC/plato-app-sub007/pkg/domain/services"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/infrastructure/repositories/memory"
)

var salesBaseDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func addDailySales(
	repo *memory.SalesHistoryRepository,
	companyID uuid.UUID,
	recipeID uuid.UUID,
	recipeName string,
	quantities ...int64,
) {
	for day, qty := range quantities {
		repo.AddRecord(entities.SalesRecord{
			CompanyID:  companyID,
			RecipeID:   recipeID,
			RecipeName: recipeName,
			SoldOn:     salesBaseDate.AddDate(0, 0, day),
			Quantity:   decimal.NewFromInt(qty),
		})
	}
}

func newSalesService(
	sales *memory.SalesHistoryRepository,
	seasonal *memory.SeasonalTrendRepository,
	catalog *memory.CatalogRepository,
) *SalesForecastService {
	service := NewSalesForecastService(
		DefaultConfig(), sales, catalog, NewSeasonalAdjuster(seasonal),
	)
	// Pin the calendar so seasonal lookups hit June deterministically.
	service.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return service
}

func TestSalesForecastService_ForecastMatchesSmoothing(t *testing.T) {
	companyID := uuid.New()
	recipeID := uuid.New()

	sales := memory.NewSalesHistoryRepository()
	addDailySales(sales, companyID, recipeID, "Sourdough Loaf", 18, 22, 19, 25, 21)

	service := newSalesService(
		sales, memory.NewSeasonalTrendRepository(), memory.NewCatalogRepository(),
	)

	forecasts, err := service.ForecastSales(context.Background(), entities.ForecastingFilters{
		CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, forecasts, 1)

	forecast := forecasts[0]
	assert.Equal(t, recipeID, forecast.RecipeID)
	assert.Equal(t, "Sourdough Loaf", forecast.RecipeName)
	assert.True(t, forecast.SeasonalMultiplier.Equal(decimal.NewFromInt(1)))

	// With a neutral multiplier the prediction is exactly the last smoothed
	// point of the series.
	smoother := domainservices.NewExponentialSmoothingForecaster()
	points := smoother.Forecast(makeSalesSeries(18, 22, 19, 25, 21), 0.3)
	require.NotEmpty(t, points)
	last := points[len(points)-1]

	assert.True(t, forecast.PredictedSales.Equal(last.Predicted),
		"predicted %s want %s", forecast.PredictedSales, last.Predicted)
	assert.Equal(t, last.Confidence, forecast.Confidence)
}

func makeSalesSeries(values ...int64) []entities.TimeSeriesPoint {
	series := make([]entities.TimeSeriesPoint, 0, len(values))
	for i, v := range values {
		series = append(series, entities.TimeSeriesPoint{
			Date:  salesBaseDate.AddDate(0, 0, i),
			Value: decimal.NewFromInt(v),
		})
	}
	return series
}

func TestSalesForecastService_SeasonalMultiplierApplied(t *testing.T) {
	companyID := uuid.New()
	recipeID := uuid.New()

	sales := memory.NewSalesHistoryRepository()
	addDailySales(sales, companyID, recipeID, "Croissant", 20, 20, 20, 20)

	seasonal := memory.NewSeasonalTrendRepository()
	seasonal.AddTrend(entities.SeasonalTrend{
		CompanyID:  companyID,
		RecipeID:   recipeID,
		Month:      time.June,
		Multiplier: decimal.NewFromFloat(1.5),
		Active:     true,
	})

	service := newSalesService(sales, seasonal, memory.NewCatalogRepository())

	forecasts, err := service.ForecastSales(context.Background(), entities.ForecastingFilters{
		CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, forecasts, 1)

	// Constant series smooths to 20; 20 * 1.5 = 30
	forecast := forecasts[0]
	assert.True(t, forecast.SeasonalMultiplier.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, forecast.PredictedSales.Equal(decimal.NewFromInt(30)),
		"predicted %s", forecast.PredictedSales)
	assert.Equal(t, entities.TrendStable, forecast.Trend)
}

func TestSalesForecastService_TrendClassification(t *testing.T) {
	companyID := uuid.New()
	growingID := uuid.New()
	fadingID := uuid.New()

	sales := memory.NewSalesHistoryRepository()
	addDailySales(sales, companyID, growingID, "Croissant", 10, 10, 10, 20, 20, 20)
	addDailySales(sales, companyID, fadingID, "Baguette", 20, 20, 20, 10, 10, 10)

	service := newSalesService(
		sales, memory.NewSeasonalTrendRepository(), memory.NewCatalogRepository(),
	)

	forecasts, err := service.ForecastSales(context.Background(), entities.ForecastingFilters{
		CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, forecasts, 2)

	byID := make(map[uuid.UUID]entities.SalesForecast)
	for _, f := range forecasts {
		byID[f.RecipeID] = f
	}
	assert.Equal(t, entities.TrendIncreasing, byID[growingID].Trend)
	assert.Equal(t, entities.TrendDecreasing, byID[fadingID].Trend)
}

func TestSalesForecastService_SortedByPredictedSalesDescending(t *testing.T) {
	companyID := uuid.New()
	bigSellerID := uuid.New()
	smallSellerID := uuid.New()

	sales := memory.NewSalesHistoryRepository()
	addDailySales(sales, companyID, bigSellerID, "Croissant", 50, 50, 50, 50)
	addDailySales(sales, companyID, smallSellerID, "Baguette", 5, 5, 5, 5)

	service := newSalesService(
		sales, memory.NewSeasonalTrendRepository(), memory.NewCatalogRepository(),
	)

	forecasts, err := service.ForecastSales(context.Background(), entities.ForecastingFilters{
		CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, forecasts, 2)
	assert.Equal(t, bigSellerID, forecasts[0].RecipeID)
	assert.Equal(t, smallSellerID, forecasts[1].RecipeID)
}

func TestSalesForecastService_SkipsRowsWithoutRecipe(t *testing.T) {
	companyID := uuid.New()

	sales := memory.NewSalesHistoryRepository()
	for day := 0; day < 5; day++ {
		sales.AddRecord(entities.SalesRecord{
			CompanyID:  companyID,
			RecipeID:   uuid.Nil,
			RecipeName: "Walk-in special",
			SoldOn:     salesBaseDate.AddDate(0, 0, day),
			Quantity:   decimal.NewFromInt(12),
		})
	}

	service := newSalesService(
		sales, memory.NewSeasonalTrendRepository(), memory.NewCatalogRepository(),
	)

	forecasts, err := service.ForecastSales(context.Background(), entities.ForecastingFilters{
		CompanyID: companyID,
	})
	require.NoError(t, err)
	assert.Empty(t, forecasts)
}

func TestSalesForecastService_SkipsSparseRecipes(t *testing.T) {
	companyID := uuid.New()
	recipeID := uuid.New()

	sales := memory.NewSalesHistoryRepository()
	addDailySales(sales, companyID, recipeID, "Croissant", 10, 12)

	service := newSalesService(
		sales, memory.NewSeasonalTrendRepository(), memory.NewCatalogRepository(),
	)

	forecasts, err := service.ForecastSales(context.Background(), entities.ForecastingFilters{
		CompanyID: companyID,
	})
	require.NoError(t, err)
	assert.Empty(t, forecasts)
}

func TestSalesForecastService_RecipeFilter(t *testing.T) {
	companyID := uuid.New()
	croissantID := uuid.New()
	baguetteID := uuid.New()

	sales := memory.NewSalesHistoryRepository()
	addDailySales(sales, companyID, croissantID, "Croissant", 10, 12, 14, 16)
	addDailySales(sales, companyID, baguetteID, "Baguette", 8, 8, 8, 8)

	service := newSalesService(
		sales, memory.NewSeasonalTrendRepository(), memory.NewCatalogRepository(),
	)

	forecasts, err := service.ForecastSales(context.Background(), entities.ForecastingFilters{
		CompanyID: companyID,
		RecipeIDs: []uuid.UUID{croissantID},
	})
	require.NoError(t, err)
	require.Len(t, forecasts, 1)
	assert.Equal(t, croissantID, forecasts[0].RecipeID)
}

func TestSalesForecastService_NameResolution(t *testing.T) {
	companyID := uuid.New()
	namedID := uuid.New()
	catalogOnlyID := uuid.New()
	unknownID := uuid.New()

	sales := memory.NewSalesHistoryRepository()
	addDailySales(sales, companyID, namedID, "Croissant", 10, 10, 10)
	addDailySales(sales, companyID, catalogOnlyID, "", 20, 20, 20)
	addDailySales(sales, companyID, unknownID, "", 30, 30, 30)

	catalog := memory.NewCatalogRepository()
	catalog.SetRecipeName(catalogOnlyID, "Pain au Chocolat")

	service := newSalesService(sales, memory.NewSeasonalTrendRepository(), catalog)

	forecasts, err := service.ForecastSales(context.Background(), entities.ForecastingFilters{
		CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, forecasts, 3)

	names := make(map[uuid.UUID]string)
	for _, f := range forecasts {
		names[f.RecipeID] = f.RecipeName
	}
	assert.Equal(t, "Croissant", names[namedID])
	assert.Equal(t, "Pain au Chocolat", names[catalogOnlyID])
	assert.Equal(t, "Recipe "+unknownID.String(), names[unknownID])
}
