package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/repositories"
	domainservices "github.com/Matt-OFGC/plato-app-sub007/pkg/domain/services"
)

// IngredientUsageService aggregates production history into per-ingredient
// usage series, forecasts usage with a moving average, and layers reorder
// math on top. Each invocation is a pure transformation over its fetched
// snapshot; nothing is shared across calls.
type IngredientUsageService struct {
	config     Config
	production repositories.ProductionHistoryRepository
	inventory  repositories.InventoryRepository
	catalog    repositories.CatalogRepository
	forecaster *domainservices.MovingAverageForecaster
}

// NewIngredientUsageService creates a new ingredient usage forecasting service
func NewIngredientUsageService(
	config Config,
	production repositories.ProductionHistoryRepository,
	inventory repositories.InventoryRepository,
	catalog repositories.CatalogRepository,
) *IngredientUsageService {
	return &IngredientUsageService{
		config:     config,
		production: production,
		inventory:  inventory,
		catalog:    catalog,
		forecaster: domainservices.NewMovingAverageForecaster(),
	}
}

// ForecastIngredientUsage returns one forecast per ingredient with enough
// usage signal in the filtered window, sorted soonest-to-reorder first.
// Ingredients with too few observations are excluded, not errored.
func (s *IngredientUsageService) ForecastIngredientUsage(
	ctx context.Context,
	filters entities.ForecastingFilters,
) ([]entities.IngredientForecast, error) {
	records, err := s.production.GetProductionHistory(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get production history: %w", err)
	}

	usageSeries := s.buildUsageSeries(records, filters)

	ingredientIDs := make([]uuid.UUID, 0, len(usageSeries))
	for id := range usageSeries {
		ingredientIDs = append(ingredientIDs, id)
	}

	stockLevels, err := s.inventory.GetStockLevels(ctx, filters.CompanyID, ingredientIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock levels: %w", err)
	}

	forecasts := make([]entities.IngredientForecast, 0, len(usageSeries))
	for id, series := range usageSeries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		forecast, ok, err := s.forecastIngredient(ctx, id, series, stockLevels[id])
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		forecasts = append(forecasts, forecast)
	}

	// Soonest-to-reorder first; tie-break on ingredient id so identical
	// inputs always yield identical output order.
	sort.Slice(forecasts, func(i, j int) bool {
		if forecasts[i].DaysUntilReorder != forecasts[j].DaysUntilReorder {
			return forecasts[i].DaysUntilReorder < forecasts[j].DaysUntilReorder
		}
		return forecasts[i].IngredientID.String() < forecasts[j].IngredientID.String()
	})

	return forecasts, nil
}

// buildUsageSeries expands production rows into per-ingredient usage points.
// Usage per row is the per-batch quantity scaled by the quantity produced;
// unit conversion happened upstream, so this is flat per-row scaling.
func (s *IngredientUsageService) buildUsageSeries(
	records []*entities.ProductionRecord,
	filters entities.ForecastingFilters,
) map[uuid.UUID][]entities.TimeSeriesPoint {
	usageSeries := make(map[uuid.UUID][]entities.TimeSeriesPoint)

	for _, record := range records {
		for _, line := range record.Ingredients {
			if !filters.WantsIngredient(line.IngredientID) {
				continue
			}
			usage := line.QuantityPerBatch.Mul(record.QuantityProduced)
			usageSeries[line.IngredientID] = append(
				usageSeries[line.IngredientID],
				entities.TimeSeriesPoint{Date: record.ProducedOn, Value: usage},
			)
		}
	}

	return usageSeries
}

// forecastIngredient runs the forecast and reorder math for one ingredient.
// The ok result is false when the ingredient lacks enough signal.
func (s *IngredientUsageService) forecastIngredient(
	ctx context.Context,
	ingredientID uuid.UUID,
	series []entities.TimeSeriesPoint,
	currentStock decimal.Decimal,
) (entities.IngredientForecast, bool, error) {
	if len(series) < s.config.MinObservations {
		return entities.IngredientForecast{}, false, nil
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	period := s.config.MovingAveragePeriod
	if len(series) < period {
		period = len(series)
	}

	points := s.forecaster.Forecast(series, period)
	if len(points) == 0 {
		return entities.IngredientForecast{}, false, nil
	}
	latest := points[len(points)-1]

	// Reorder math runs on the mean of every observation, not just the
	// forecast window.
	avgUsage := meanObservation(series)
	safetyStock := avgUsage.Mul(decimal.NewFromInt(int64(s.config.SafetyStockDays)))
	reorderPoint := avgUsage.Mul(decimal.NewFromInt(int64(s.config.LeadTimeDays))).Add(safetyStock)
	suggestedQty := avgUsage.Mul(decimal.NewFromInt(int64(s.config.OrderSupplyDays)))

	// Zero collapses "out of stock now" and "no measurable usage" into one
	// immediately-urgent signal; callers rely on the collapsed meaning.
	daysUntilReorder := 0
	if currentStock.IsPositive() && avgUsage.IsPositive() {
		daysUntilReorder = int(currentStock.Div(avgUsage).Ceil().IntPart())
	}

	name, found, err := s.catalog.GetIngredientName(ctx, ingredientID)
	if err != nil {
		return entities.IngredientForecast{}, false, fmt.Errorf(
			"failed to get ingredient name for %s: %w",
			ingredientID,
			err,
		)
	}
	if !found || name == "" {
		name = fmt.Sprintf("Ingredient %s", ingredientID)
	}

	return entities.IngredientForecast{
		IngredientID:      ingredientID,
		IngredientName:    name,
		CurrentStock:      currentStock,
		PredictedUsage:    latest.Predicted,
		ReorderPoint:      reorderPoint,
		SuggestedOrderQty: suggestedQty,
		DaysUntilReorder:  daysUntilReorder,
		Confidence:        latest.Confidence,
	}, true, nil
}

// meanObservation computes the arithmetic mean of all observed values.
func meanObservation(series []entities.TimeSeriesPoint) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range series {
		sum = sum.Add(p.Value)
	}
	return sum.Div(decimal.NewFromInt(int64(len(series))))
}
