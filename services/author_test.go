package services

import (
	"context"
	"testing"

	"coursehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthorDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthorService(db)

	author, err := svc.Create(context.Background(), CreateAuthorPayload{
		Name: "Jane Doe",
		Bio:  "Synth teacher",
		Socials: []models.AuthorSocial{
			{ID: "github", Value: "https://github.com/janedoe"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, author.UID)
	assert.Equal(t, author.UID, author.ReferenceUID, "reference_uid falls back to the author's own uid")
	assert.Equal(t, "missing", author.DisplayPicture)
	assert.Zero(t, author.AverageRatings)
	require.Len(t, author.Socials, 1)
	assert.Equal(t, "github", author.Socials[0].ID)
}

func TestCreateAuthorLinkedUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthorService(db)

	author, err := svc.Create(context.Background(), CreateAuthorPayload{
		Name:           "John Roe",
		DisplayPicture: "https://cdn.example.com/john.png",
		ReferenceUID:   "user-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-123", author.ReferenceUID)
	assert.Equal(t, "https://cdn.example.com/john.png", author.DisplayPicture)
}

func TestPopularAuthorsOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthorService(db)
	ctx := context.Background()

	for _, a := range []struct {
		uid string
		avg float64
	}{
		{"mid", 3.2},
		{"top", 4.8},
		{"low", 1.1},
	} {
		author := models.Author{UID: a.uid, Name: a.uid, AverageRatings: a.avg}
		require.NoError(t, db.Create(&author).Error)
	}

	authors, err := svc.Popular(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 3)
	assert.Equal(t, "top", authors[0].UID)
	assert.Equal(t, "low", authors[2].UID)
}

func TestRequestService(t *testing.T) {
	db := newTestDB(t)
	svc := NewRequestService(db)
	ctx := context.Background()

	first, err := svc.Create(ctx, "https://example.com/course-i-want")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = svc.Create(ctx, "https://example.com/another-one")
	require.NoError(t, err)

	requests, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}
