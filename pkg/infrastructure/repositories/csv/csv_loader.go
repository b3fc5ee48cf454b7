package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
)

// Loader handles loading forecasting scenario data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProductionHistory loads production records from a CSV file. Each row
// carries one ingredient line; rows sharing company, recipe, date and batch
// quantity are grouped into a single expanded production record.
func (l *Loader) LoadProductionHistory(filename string) ([]*entities.ProductionRecord, error) {
	records, err := readRows(filename, []string{
		"company_id", "recipe_id", "produced_on", "quantity_produced",
		"ingredient_id", "section", "per_batch_quantity",
	})
	if err != nil {
		return nil, fmt.Errorf("production CSV: %w", err)
	}

	grouped := make(map[string]*entities.ProductionRecord)
	var order []string

	for i, record := range records {
		companyID, err := uuid.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("production CSV row %d: invalid company_id: %s", i+2, record[0])
		}
		recipeID, err := uuid.Parse(record[1])
		if err != nil {
			return nil, fmt.Errorf("production CSV row %d: invalid recipe_id: %s", i+2, record[1])
		}
		producedOn, err := time.Parse("2006-01-02", record[2])
		if err != nil {
			return nil, fmt.Errorf(
				"production CSV row %d: invalid produced_on: %s (expected YYYY-MM-DD)",
				i+2, record[2],
			)
		}
		quantityProduced, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("production CSV row %d: invalid quantity_produced: %s", i+2, record[3])
		}
		ingredientID, err := uuid.Parse(record[4])
		if err != nil {
			return nil, fmt.Errorf("production CSV row %d: invalid ingredient_id: %s", i+2, record[4])
		}
		perBatch, err := decimal.NewFromString(record[6])
		if err != nil {
			return nil, fmt.Errorf("production CSV row %d: invalid per_batch_quantity: %s", i+2, record[6])
		}

		key := fmt.Sprintf("%s|%s|%s|%s", companyID, recipeID, record[2], record[3])
		batch, exists := grouped[key]
		if !exists {
			batch = &entities.ProductionRecord{
				CompanyID:        companyID,
				RecipeID:         recipeID,
				ProducedOn:       producedOn,
				QuantityProduced: quantityProduced,
			}
			grouped[key] = batch
			order = append(order, key)
		}

		batch.Ingredients = append(batch.Ingredients, entities.IngredientLine{
			IngredientID:     ingredientID,
			Section:          record[5],
			QuantityPerBatch: perBatch,
		})
	}

	result := make([]*entities.ProductionRecord, 0, len(order))
	for _, key := range order {
		result = append(result, grouped[key])
	}
	return result, nil
}

// LoadSalesRecords loads sales records from a CSV file. An empty recipe_id
// column yields a record with no recipe reference.
func (l *Loader) LoadSalesRecords(filename string) ([]*entities.SalesRecord, error) {
	records, err := readRows(filename, []string{
		"company_id", "recipe_id", "recipe_name", "sold_on", "quantity",
	})
	if err != nil {
		return nil, fmt.Errorf("sales CSV: %w", err)
	}

	var result []*entities.SalesRecord
	for i, record := range records {
		companyID, err := uuid.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid company_id: %s", i+2, record[0])
		}

		recipeID := uuid.Nil
		if record[1] != "" {
			recipeID, err = uuid.Parse(record[1])
			if err != nil {
				return nil, fmt.Errorf("sales CSV row %d: invalid recipe_id: %s", i+2, record[1])
			}
		}

		soldOn, err := time.Parse("2006-01-02", record[3])
		if err != nil {
			return nil, fmt.Errorf(
				"sales CSV row %d: invalid sold_on: %s (expected YYYY-MM-DD)",
				i+2, record[3],
			)
		}
		quantity, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid quantity: %s", i+2, record[4])
		}

		result = append(result, &entities.SalesRecord{
			CompanyID:  companyID,
			RecipeID:   recipeID,
			RecipeName: record[2],
			SoldOn:     soldOn,
			Quantity:   quantity,
		})
	}
	return result, nil
}

// LoadStockLevels loads current stock levels from a CSV file
func (l *Loader) LoadStockLevels(filename string) ([]*entities.StockLevel, error) {
	records, err := readRows(filename, []string{"company_id", "ingredient_id", "quantity"})
	if err != nil {
		return nil, fmt.Errorf("stock CSV: %w", err)
	}

	var result []*entities.StockLevel
	for i, record := range records {
		companyID, err := uuid.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("stock CSV row %d: invalid company_id: %s", i+2, record[0])
		}
		ingredientID, err := uuid.Parse(record[1])
		if err != nil {
			return nil, fmt.Errorf("stock CSV row %d: invalid ingredient_id: %s", i+2, record[1])
		}
		quantity, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("stock CSV row %d: invalid quantity: %s", i+2, record[2])
		}

		result = append(result, &entities.StockLevel{
			CompanyID:    companyID,
			IngredientID: ingredientID,
			Quantity:     quantity,
		})
	}
	return result, nil
}

// LoadSeasonalTrends loads seasonal trend multipliers from a CSV file
func (l *Loader) LoadSeasonalTrends(filename string) ([]*entities.SeasonalTrend, error) {
	records, err := readRows(filename, []string{
		"company_id", "recipe_id", "month", "multiplier", "active",
	})
	if err != nil {
		return nil, fmt.Errorf("seasonal CSV: %w", err)
	}

	var result []*entities.SeasonalTrend
	for i, record := range records {
		companyID, err := uuid.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("seasonal CSV row %d: invalid company_id: %s", i+2, record[0])
		}
		recipeID, err := uuid.Parse(record[1])
		if err != nil {
			return nil, fmt.Errorf("seasonal CSV row %d: invalid recipe_id: %s", i+2, record[1])
		}
		month, err := strconv.Atoi(record[2])
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("seasonal CSV row %d: invalid month: %s (expected 1-12)", i+2, record[2])
		}
		multiplier, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("seasonal CSV row %d: invalid multiplier: %s", i+2, record[3])
		}
		active, err := strconv.ParseBool(record[4])
		if err != nil {
			return nil, fmt.Errorf("seasonal CSV row %d: invalid active flag: %s", i+2, record[4])
		}

		result = append(result, &entities.SeasonalTrend{
			CompanyID:  companyID,
			RecipeID:   recipeID,
			Month:      time.Month(month),
			Multiplier: multiplier,
			Active:     active,
		})
	}
	return result, nil
}

// LoadCatalog loads ingredient and recipe display names from a CSV file with
// a type column of "ingredient" or "recipe".
func (l *Loader) LoadCatalog(filename string) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	records, err := readRows(filename, []string{"type", "id", "name"})
	if err != nil {
		return nil, nil, fmt.Errorf("catalog CSV: %w", err)
	}

	ingredients := make(map[uuid.UUID]string)
	recipes := make(map[uuid.UUID]string)

	for i, record := range records {
		id, err := uuid.Parse(record[1])
		if err != nil {
			return nil, nil, fmt.Errorf("catalog CSV row %d: invalid id: %s", i+2, record[1])
		}

		switch strings.ToLower(record[0]) {
		case "ingredient":
			ingredients[id] = record[2]
		case "recipe":
			recipes[id] = record[2]
		default:
			return nil, nil, fmt.Errorf(
				"catalog CSV row %d: invalid type: %s (expected 'ingredient' or 'recipe')",
				i+2, record[0],
			)
		}
	}
	return ingredients, recipes, nil
}

// readRows opens a CSV file, validates its header and returns the data rows.
func readRows(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf(
				"row %d: expected %d columns, got %d",
				i+2, len(expectedHeader), len(record),
			)
		}
	}

	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}
