package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/application/services"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	companyID := uuid.New()
	sourdoughID := uuid.New()
	croissantID := uuid.New()
	flourID := uuid.New()
	butterID := uuid.New()

	// Create repositories
	production := memory.NewProductionHistoryRepository()
	sales := memory.NewSalesHistoryRepository()
	inventory := memory.NewInventoryRepository()
	seasonal := memory.NewSeasonalTrendRepository()
	catalog := memory.NewCatalogRepository()

	catalog.SetIngredientName(flourID, "Bread Flour")
	catalog.SetIngredientName(butterID, "Butter")
	catalog.SetRecipeName(sourdoughID, "Sourdough Loaf")
	catalog.SetRecipeName(croissantID, "Croissant")

	// Two weeks of production: sourdough every day, croissants ramping up
	baseDate := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 14; day++ {
		date := baseDate.Add(time.Duration(day) * 24 * time.Hour)

		production.AddRecord(entities.ProductionRecord{
			CompanyID:        companyID,
			RecipeID:         sourdoughID,
			ProducedOn:       date,
			QuantityProduced: decimal.NewFromInt(20),
			Ingredients: []entities.IngredientLine{
				{IngredientID: flourID, QuantityPerBatch: decimal.NewFromInt(500)},
			},
		})

		production.AddRecord(entities.ProductionRecord{
			CompanyID:        companyID,
			RecipeID:         croissantID,
			ProducedOn:       date,
			QuantityProduced: decimal.NewFromInt(int64(30 + day*2)),
			Ingredients: []entities.IngredientLine{
				{IngredientID: flourID, Section: "Dough", QuantityPerBatch: decimal.NewFromInt(55)},
				{IngredientID: butterID, Section: "Lamination", QuantityPerBatch: decimal.NewFromInt(30)},
			},
		})

		sales.AddRecord(entities.SalesRecord{
			CompanyID:  companyID,
			RecipeID:   sourdoughID,
			RecipeName: "Sourdough Loaf",
			SoldOn:     date,
			Quantity:   decimal.NewFromInt(18),
		})
		sales.AddRecord(entities.SalesRecord{
			CompanyID:  companyID,
			RecipeID:   croissantID,
			RecipeName: "Croissant",
			SoldOn:     date,
			Quantity:   decimal.NewFromInt(int64(25 + day*3)),
		})
	}

	// Current stock: plenty of flour, butter running low
	inventory.SetStockLevel(companyID, flourID, decimal.NewFromInt(150000))
	inventory.SetStockLevel(companyID, butterID, decimal.NewFromInt(4000))

	// December croissant demand runs hot
	seasonal.AddTrend(entities.SeasonalTrend{
		CompanyID:  companyID,
		RecipeID:   croissantID,
		Month:      time.December,
		Multiplier: decimal.NewFromFloat(1.4),
		Active:     true,
	})

	// Build the forecasting services
	config := services.DefaultConfig()
	usageService := services.NewIngredientUsageService(config, production, inventory, catalog)
	salesService := services.NewSalesForecastService(
		config, sales, catalog, services.NewSeasonalAdjuster(seasonal),
	)
	reorderService := services.NewReorderService(usageService)

	fmt.Println("🥖 Forecasting bakery demand...")
	fmt.Println()

	salesForecasts, err := salesService.ForecastSales(ctx, entities.ForecastingFilters{
		CompanyID: companyID,
	})
	if err != nil {
		fmt.Printf("❌ Sales forecast failed: %v\n", err)
		return
	}

	fmt.Println("📈 Sales Forecast:")
	for _, f := range salesForecasts {
		fmt.Printf("  %-16s %8s/day (trend: %s, seasonal x%s, confidence %.2f)\n",
			f.RecipeName,
			f.PredictedSales.Round(1).String(),
			f.Trend,
			f.SeasonalMultiplier.String(),
			f.Confidence)
	}
	fmt.Println()

	suggestions, err := reorderService.GenerateReorderSuggestions(
		ctx, companyID, services.DefaultReorderWindowDays,
	)
	if err != nil {
		fmt.Printf("❌ Reorder suggestions failed: %v\n", err)
		return
	}

	fmt.Println("📦 Reorder Suggestions (next 7 days):")
	if len(suggestions) == 0 {
		fmt.Println("  Nothing due for reorder.")
	}
	for _, f := range suggestions {
		fmt.Printf("  %-16s reorder in %d days (stock %s, suggested order %s)\n",
			f.IngredientName,
			f.DaysUntilReorder,
			f.CurrentStock.String(),
			f.SuggestedOrderQty.Round(1).String())
	}
	fmt.Println()

	fmt.Println("✅ Forecast complete!")
}
