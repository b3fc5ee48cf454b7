package repositories

import (
	"context"

	"github.com/google/uuid"
)

// CatalogRepository provides display-name lookups for ingredients and recipes.
// The found flag is false when the entity has no catalog entry; callers
// synthesize a fallback label instead of treating that as an error.
type CatalogRepository interface {
	GetIngredientName(ctx context.Context, ingredientID uuid.UUID) (string, bool, error)
	GetRecipeName(ctx context.Context, recipeID uuid.UUID) (string, bool, error)
}
