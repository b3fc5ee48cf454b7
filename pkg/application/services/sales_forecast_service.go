package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/repositories"
	domainservices "github.com/Matt-OFGC/plato-app-sub007/pkg/domain/services"
)

// SalesForecastService aggregates sales records into per-recipe series,
// forecasts them with exponential smoothing, and adjusts the result for
// trend direction and calendar-month seasonality.
type SalesForecastService struct {
	config     Config
	sales      repositories.SalesHistoryRepository
	catalog    repositories.CatalogRepository
	adjuster   *SeasonalAdjuster
	forecaster *domainservices.ExponentialSmoothingForecaster
	classifier *domainservices.TrendClassifier

	// now supplies the current month for seasonal adjustment; injectable so
	// tests can pin the calendar.
	now func() time.Time
}

// NewSalesForecastService creates a new sales forecasting service
func NewSalesForecastService(
	config Config,
	sales repositories.SalesHistoryRepository,
	catalog repositories.CatalogRepository,
	adjuster *SeasonalAdjuster,
) *SalesForecastService {
	return &SalesForecastService{
		config:     config,
		sales:      sales,
		catalog:    catalog,
		adjuster:   adjuster,
		forecaster: domainservices.NewExponentialSmoothingForecaster(),
		classifier: domainservices.NewTrendClassifier(),
		now:        time.Now,
	}
}

// ForecastSales returns one forecast per recipe with enough sales signal in
// the filtered window, sorted by predicted sales descending. Recipes with too
// few observations are excluded, not errored.
func (s *SalesForecastService) ForecastSales(
	ctx context.Context,
	filters entities.ForecastingFilters,
) ([]entities.SalesForecast, error) {
	rows, err := s.sales.GetSalesRecords(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales records: %w", err)
	}

	salesSeries := make(map[uuid.UUID][]entities.TimeSeriesPoint)
	rowNames := make(map[uuid.UUID]string)
	for _, row := range rows {
		// Rows with no recipe reference carry no per-recipe signal.
		if row.RecipeID == uuid.Nil {
			continue
		}
		if !filters.WantsRecipe(row.RecipeID) {
			continue
		}
		salesSeries[row.RecipeID] = append(
			salesSeries[row.RecipeID],
			entities.TimeSeriesPoint{Date: row.SoldOn, Value: row.Quantity},
		)
		if rowNames[row.RecipeID] == "" && row.RecipeName != "" {
			rowNames[row.RecipeID] = row.RecipeName
		}
	}

	month := s.now().Month()

	forecasts := make([]entities.SalesForecast, 0, len(salesSeries))
	for recipeID, series := range salesSeries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(series) < s.config.MinObservations {
			continue
		}

		sort.Slice(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})

		points := s.forecaster.Forecast(series, s.config.SmoothingAlpha)
		if len(points) == 0 {
			continue
		}
		latest := points[len(points)-1]

		recent := series
		if len(recent) > s.config.TrendWindow {
			recent = recent[len(recent)-s.config.TrendWindow:]
		}
		trend := s.classifier.Classify(recent)

		multiplier, err := s.adjuster.MultiplierFor(ctx, filters.CompanyID, recipeID, month)
		if err != nil {
			return nil, err
		}

		name, err := s.resolveRecipeName(ctx, recipeID, rowNames[recipeID])
		if err != nil {
			return nil, err
		}

		forecasts = append(forecasts, entities.SalesForecast{
			RecipeID:           recipeID,
			RecipeName:         name,
			PredictedSales:     latest.Predicted.Mul(multiplier),
			Confidence:         latest.Confidence,
			Trend:              trend,
			SeasonalMultiplier: multiplier,
		})
	}

	// Highest predicted sales first; tie-break on recipe id so identical
	// inputs always yield identical output order.
	sort.Slice(forecasts, func(i, j int) bool {
		if !forecasts[i].PredictedSales.Equal(forecasts[j].PredictedSales) {
			return forecasts[i].PredictedSales.GreaterThan(forecasts[j].PredictedSales)
		}
		return forecasts[i].RecipeID.String() < forecasts[j].RecipeID.String()
	})

	return forecasts, nil
}

// resolveRecipeName resolves a display name: matched sales row first, then
// the catalog, then a synthesized label.
func (s *SalesForecastService) resolveRecipeName(
	ctx context.Context,
	recipeID uuid.UUID,
	rowName string,
) (string, error) {
	if rowName != "" {
		return rowName, nil
	}

	name, found, err := s.catalog.GetRecipeName(ctx, recipeID)
	if err != nil {
		return "", fmt.Errorf("failed to get recipe name for %s: %w", recipeID, err)
	}
	if found && name != "" {
		return name, nil
	}

	return fmt.Sprintf("Recipe %s", recipeID), nil
}
