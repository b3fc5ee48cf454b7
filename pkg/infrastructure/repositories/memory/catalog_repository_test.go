package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Names(t *testing.T) {
	flourID := uuid.New()
	croissantID := uuid.New()

	repo := NewCatalogRepository()
	repo.SetIngredientName(flourID, "Bread Flour")
	repo.SetRecipeName(croissantID, "Croissant")

	name, found, err := repo.GetIngredientName(context.Background(), flourID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Bread Flour", name)

	name, found, err = repo.GetRecipeName(context.Background(), croissantID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Croissant", name)
}

func TestCatalogRepository_MissingEntries(t *testing.T) {
	repo := NewCatalogRepository()

	name, found, err := repo.GetIngredientName(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, name)

	name, found, err = repo.GetRecipeName(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, name)
}

func TestCatalogRepository_NamespacesAreSeparate(t *testing.T) {
	id := uuid.New()

	repo := NewCatalogRepository()
	repo.SetIngredientName(id, "Butter")

	_, found, err := repo.GetRecipeName(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, found)
}
