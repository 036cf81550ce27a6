package services

import (
	"testing"
	"time"

	"coursehub/database"
	"coursehub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite store with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see a different :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// seedCourse inserts a course with a controlled aggregate and update time
// so orderings are deterministic.
func seedCourse(t *testing.T, db *gorm.DB, id, categoryID string, avg float64, updatedAt time.Time) models.Course {
	t.Helper()

	course := models.Course{
		ID:          id,
		Title:       "Course " + id,
		Description: "seeded",
		ContentURL:  "https://content.example.com/" + id,
		Currency:    models.CurrencyUSD,
		Category: models.CourseCategory{
			ID:    categoryID,
			Title: categoryID,
		},
		Author: models.CourseAuthor{
			UID:  "author-" + id,
			Name: "Author " + id,
		},
		Start:          models.CourseStart{IsRecorded: true},
		AverageRatings: avg,
		CreatedAt:      updatedAt,
		UpdatedAt:      updatedAt,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func courseIDs(courses []models.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}
