package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientLine represents one ingredient a recipe requires per batch.
// Lines nested in named recipe sections arrive flattened with the section
// label preserved. QuantityPerBatch is normalized to the ingredient's base
// unit before it reaches this engine.
type IngredientLine struct {
	IngredientID     uuid.UUID
	Section          string
	QuantityPerBatch decimal.Decimal
}

// ProductionRecord represents one recipe batch produced on a date, expanded
// with every ingredient the recipe requires.
type ProductionRecord struct {
	CompanyID        uuid.UUID
	RecipeID         uuid.UUID
	ProducedOn       time.Time
	QuantityProduced decimal.Decimal
	Ingredients      []IngredientLine
}

// SalesRecord represents one sales transaction. RecipeID is uuid.Nil when the
// sale has no recipe reference; such rows are skipped by the sales pipeline.
type SalesRecord struct {
	CompanyID  uuid.UUID
	RecipeID   uuid.UUID
	RecipeName string
	SoldOn     time.Time
	Quantity   decimal.Decimal
}

// SeasonalTrend represents a per-recipe, per-month demand multiplier.
// Inactive trends are ignored by lookups.
type SeasonalTrend struct {
	CompanyID  uuid.UUID
	RecipeID   uuid.UUID
	Month      time.Month
	Multiplier decimal.Decimal
	Active     bool
}

// StockLevel represents the current on-hand quantity for one ingredient,
// normalized to its base unit.
type StockLevel struct {
	CompanyID    uuid.UUID
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
}
