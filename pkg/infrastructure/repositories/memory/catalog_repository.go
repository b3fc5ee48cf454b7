package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/repositories"
)

// CatalogRepository provides in-memory display name storage
type CatalogRepository struct {
	ingredientNames map[uuid.UUID]string
	recipeNames     map[uuid.UUID]string
}

// NewCatalogRepository creates a new in-memory catalog repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		ingredientNames: make(map[uuid.UUID]string),
		recipeNames:     make(map[uuid.UUID]string),
	}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// SetIngredientName sets the display name for an ingredient
func (r *CatalogRepository) SetIngredientName(ingredientID uuid.UUID, name string) {
	r.ingredientNames[ingredientID] = name
}

// SetRecipeName sets the display name for a recipe
func (r *CatalogRepository) SetRecipeName(recipeID uuid.UUID, name string) {
	r.recipeNames[recipeID] = name
}

// GetIngredientName returns the ingredient display name, or found=false when
// the ingredient has no catalog entry.
func (r *CatalogRepository) GetIngredientName(
	ctx context.Context,
	ingredientID uuid.UUID,
) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	name, found := r.ingredientNames[ingredientID]
	return name, found, nil
}

// GetRecipeName returns the recipe display name, or found=false when the
// recipe has no catalog entry.
func (r *CatalogRepository) GetRecipeName(
	ctx context.Context,
	recipeID uuid.UUID,
) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	name, found := r.recipeNames[recipeID]
	return name, found, nil
}
