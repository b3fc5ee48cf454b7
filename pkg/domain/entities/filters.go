package entities

import (
	"time"

	"github.com/google/uuid"
)

// ForecastingFilters is a read-only query descriptor scoping a single pipeline
// invocation: company scope, optional date range, optional entity-id subsets.
type ForecastingFilters struct {
	CompanyID     uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	RecipeIDs     []uuid.UUID
	IngredientIDs []uuid.UUID
}

// InRange reports whether a date falls inside the optional date range.
// A nil boundary leaves that side open.
func (f ForecastingFilters) InRange(date time.Time) bool {
	if f.StartDate != nil && date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && date.After(*f.EndDate) {
		return false
	}
	return true
}

// WantsRecipe reports whether a recipe is inside the optional recipe subset.
// An empty subset matches every recipe.
func (f ForecastingFilters) WantsRecipe(recipeID uuid.UUID) bool {
	if len(f.RecipeIDs) == 0 {
		return true
	}
	for _, id := range f.RecipeIDs {
		if id == recipeID {
			return true
		}
	}
	return false
}

// WantsIngredient reports whether an ingredient is inside the optional
// ingredient subset. An empty subset matches every ingredient.
func (f ForecastingFilters) WantsIngredient(ingredientID uuid.UUID) bool {
	if len(f.IngredientIDs) == 0 {
		return true
	}
	for _, id := range f.IngredientIDs {
		if id == ingredientID {
			return true
		}
	}
	return false
}
