package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

// renderIngredientForecasts writes ingredient forecasts in the requested format
func renderIngredientForecasts(w io.Writer, forecasts []entities.IngredientForecast, format string) error {
	switch format {
	case "text":
		return writeIngredientText(w, forecasts)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(forecasts)
	case "csv":
		return writeIngredientCSV(w, forecasts)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderSalesForecasts writes sales forecasts in the requested format
func renderSalesForecasts(w io.Writer, forecasts []entities.SalesForecast, format string) error {
	switch format {
	case "text":
		return writeSalesText(w, forecasts)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(forecasts)
	case "csv":
		return writeSalesCSV(w, forecasts)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeIngredientText(w io.Writer, forecasts []entities.IngredientForecast) error {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w, "                 INGREDIENT USAGE FORECAST")
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "Ingredients: %d\n\n", len(forecasts))

	for _, f := range forecasts {
		fmt.Fprintf(w, "Ingredient: %-30s Reorder in: %d days\n",
			f.IngredientName, f.DaysUntilReorder)
		fmt.Fprintf(w, "  Stock: %10s  Predicted Usage/Day: %10s  Confidence: %.2f\n",
			f.CurrentStock.String(), f.PredictedUsage.String(), f.Confidence)
		fmt.Fprintf(w, "  Reorder Point: %10s  Suggested Order: %10s\n",
			f.ReorderPoint.String(), f.SuggestedOrderQty.String())
		fmt.Fprintln(w)
	}
	return nil
}

func writeSalesText(w io.Writer, forecasts []entities.SalesForecast) error {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w, "                     SALES FORECAST")
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "Recipes: %d\n\n", len(forecasts))

	for _, f := range forecasts {
		fmt.Fprintf(w, "Recipe: %-30s Trend: %s\n", f.RecipeName, f.Trend)
		fmt.Fprintf(w, "  Predicted Sales: %10s  Seasonal x%s  Confidence: %.2f\n",
			f.PredictedSales.String(), f.SeasonalMultiplier.String(), f.Confidence)
		fmt.Fprintln(w)
	}
	return nil
}

func writeIngredientCSV(w io.Writer, forecasts []entities.IngredientForecast) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"ingredient_id", "ingredient_name", "current_stock", "predicted_usage",
		"reorder_point", "suggested_order_qty", "days_until_reorder", "confidence",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, f := range forecasts {
		row := []string{
			f.IngredientID.String(),
			f.IngredientName,
			f.CurrentStock.String(),
			f.PredictedUsage.String(),
			f.ReorderPoint.String(),
			f.SuggestedOrderQty.String(),
			strconv.Itoa(f.DaysUntilReorder),
			strconv.FormatFloat(f.Confidence, 'f', 4, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeSalesCSV(w io.Writer, forecasts []entities.SalesForecast) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"recipe_id", "recipe_name", "predicted_sales", "confidence",
		"trend", "seasonal_multiplier",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, f := range forecasts {
		row := []string{
			f.RecipeID.String(),
			f.RecipeName,
			f.PredictedSales.String(),
			strconv.FormatFloat(f.Confidence, 'f', 4, 64),
			f.Trend.String(),
			f.SeasonalMultiplier.String(),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}
