package services

import (
	"context"
	"testing"

	"coursehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, "music", "Music")
	require.NoError(t, err)

	// Second create with the same slug overwrites, last write wins.
	_, err = svc.Create(ctx, "music", "Music & Audio")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var category models.Category
	require.NoError(t, db.First(&category, "id = ?", "music").Error)
	assert.Equal(t, "Music & Audio", category.Title)
}

func TestListCategoriesCreationOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	for _, c := range []struct{ id, title string }{
		{"software_development", "Software Development"},
		{"music", "Music"},
		{"marketing", "Marketing"},
	} {
		_, err := svc.Create(ctx, c.id, c.title)
		require.NoError(t, err)
	}

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "software_development", categories[0].ID)
	assert.Equal(t, "marketing", categories[2].ID)
}
