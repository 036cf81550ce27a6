package services

import (
	"context"
	"testing"
	"time"

	"coursehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func TestListByCategoryPageWalk(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	// Five music courses rated 5..1.
	for i, avg := range []float64{5, 4, 3, 2, 1} {
		seedCourse(t, db, []string{"c5", "c4", "c3", "c2", "c1"}[i], "music", avg, baseTime.Add(time.Duration(i)*time.Hour))
	}

	page1, err := svc.ListByCategory(ctx, CourseListParams{
		CategoryID: "music",
		Ratings:    RatingsHighToLow,
		PageSize:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c5", "c4"}, courseIDs(page1.Items))
	assert.False(t, page1.Exhausted)

	page2, err := svc.ListByCategory(ctx, CourseListParams{
		CategoryID: "music",
		Ratings:    RatingsHighToLow,
		PageSize:   2,
		Cursor:     page1.NextCursor,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "c2"}, courseIDs(page2.Items))
	assert.False(t, page2.Exhausted)

	page3, err := svc.ListByCategory(ctx, CourseListParams{
		CategoryID: "music",
		Ratings:    RatingsHighToLow,
		PageSize:   2,
		Cursor:     page2.NextCursor,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, courseIDs(page3.Items))
	assert.True(t, page3.Exhausted)
}

func TestListByCategoryCompleteness(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	categories := []string{"music", "marketing", "software_design"}
	total := 0
	for i, cat := range categories {
		for j := 0; j < 3; j++ {
			id := cat + "-" + string(rune('a'+j))
			seedCourse(t, db, id, cat, float64((i*3+j)%5)+0.5, baseTime.Add(time.Duration(total)*time.Minute))
			total++
		}
	}

	// Walk "all" in pages of 2 and collect every id.
	collected := map[string]int{}
	cursor := ""
	for {
		page, err := svc.ListByCategory(ctx, CourseListParams{
			CategoryID: models.CategoryAll,
			PageSize:   2,
			Cursor:     cursor,
		})
		require.NoError(t, err)
		for _, c := range page.Items {
			collected[c.ID]++
		}
		if page.Exhausted {
			break
		}
		cursor = page.NextCursor
	}

	assert.Len(t, collected, total, "paged walk must cover every course")
	for id, n := range collected {
		assert.Equal(t, 1, n, "course %s must appear exactly once", id)
	}

	// The union of per-category listings equals the "all" listing.
	union := map[string]int{}
	for _, cat := range categories {
		page, err := svc.ListByCategory(ctx, CourseListParams{CategoryID: cat, PageSize: 50})
		require.NoError(t, err)
		for _, c := range page.Items {
			union[c.ID]++
		}
	}
	assert.Equal(t, len(collected), len(union))
	for id, n := range union {
		assert.Equal(t, 1, n, "course %s must appear in exactly one category", id)
		_, ok := collected[id]
		assert.True(t, ok)
	}
}

func TestListByCategoryExhaustionNeedsConfirmingFetch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	seedCourse(t, db, "a", "music", 5, baseTime)
	seedCourse(t, db, "b", "music", 4, baseTime.Add(time.Hour))

	// Exactly one full page: not exhausted yet.
	page1, err := svc.ListByCategory(ctx, CourseListParams{CategoryID: "music", PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 2)
	assert.False(t, page1.Exhausted)

	// The confirming fetch comes back empty and exhausted.
	page2, err := svc.ListByCategory(ctx, CourseListParams{
		CategoryID: "music",
		PageSize:   2,
		Cursor:     page1.NextCursor,
	})
	require.NoError(t, err)
	assert.Empty(t, page2.Items)
	assert.True(t, page2.Exhausted)
}

func TestListByCategorySortDirections(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	seedCourse(t, db, "low", "music", 1, baseTime)
	seedCourse(t, db, "high", "music", 5, baseTime)
	seedCourse(t, db, "older", "music", 3, baseTime.Add(-48*time.Hour))
	seedCourse(t, db, "newer", "music", 3, baseTime.Add(48*time.Hour))

	asc, err := svc.ListByCategory(ctx, CourseListParams{
		CategoryID: "music",
		Ratings:    RatingsLowToHigh,
		PageSize:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, "low", asc.Items[0].ID)
	assert.Equal(t, "high", asc.Items[len(asc.Items)-1].ID)

	// Ties on averageRatings break on updated_at per the date direction.
	oldest, err := svc.ListByCategory(ctx, CourseListParams{
		CategoryID:  "music",
		Ratings:     RatingsLowToHigh,
		OrderDateBy: OrderDateOldest,
		PageSize:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "older", "newer", "high"}, courseIDs(oldest.Items))

	latest, err := svc.ListByCategory(ctx, CourseListParams{
		CategoryID:  "music",
		Ratings:     RatingsLowToHigh,
		OrderDateBy: OrderDateLatest,
		PageSize:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "newer", "older", "high"}, courseIDs(latest.Items))
}

func TestListByCategoryBadCursor(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	_, err := svc.ListByCategory(context.Background(), CourseListParams{
		CategoryID: "music",
		PageSize:   2,
		Cursor:     "???definitely-not-base64???",
	})
	assert.ErrorIs(t, err, ErrBadCursor)
}

func TestTopOfMonthCapsAtFive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	for i := 0; i < 8; i++ {
		seedCourse(t, db, string(rune('a'+i)), "music", float64(i%5)+0.5, baseTime.Add(time.Duration(i)*time.Hour))
	}

	courses, err := svc.TopOfMonth(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 5)
	for i := 1; i < len(courses); i++ {
		assert.GreaterOrEqual(t, courses[i-1].AverageRatings, courses[i].AverageRatings)
	}
}

func TestPopularCapsAtTen(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	for i := 0; i < 12; i++ {
		seedCourse(t, db, string(rune('a'+i)), "music", float64(i%5)+0.5, baseTime.Add(time.Duration(i)*time.Hour))
	}

	courses, err := svc.Popular(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 10)
	for i := 1; i < len(courses); i++ {
		assert.GreaterOrEqual(t, courses[i-1].AverageRatings, courses[i].AverageRatings)
	}
}

func TestListMineAndListAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	mine1 := seedCourse(t, db, "m1", "music", 3, baseTime)
	mine2 := seedCourse(t, db, "m2", "music", 4, baseTime.Add(time.Hour))
	other := seedCourse(t, db, "o1", "music", 5, baseTime.Add(2*time.Hour))

	// Both "mine" courses belong to the same author.
	require.NoError(t, db.Model(&mine1).Update("author_uid", "jane").Error)
	require.NoError(t, db.Model(&mine2).Update("author_uid", "jane").Error)

	mine, err := svc.ListMine(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, []string{"m2", "m1"}, courseIDs(mine), "newest first")

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, other.ID, all[0].ID, "newest first")
}

func TestGetOneNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	_, err := svc.GetOne(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateAndUpdateCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCoursePayload{
		Title:       "Modern Synthesis",
		Description: "From oscillators up",
		ContentURL:  "https://content.example.com/synth",
		Price:       49,
		Currency:    models.CurrencyEUR,
		Language:    "en",
		Category:    models.CourseCategory{ID: "music", Title: "Music"},
		Author:      models.CourseAuthor{UID: "jane", Name: "Jane"},
		Start:       models.CourseStart{IsRecorded: true},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.AverageRatings)

	price := 59.0
	updated, err := svc.Update(ctx, created.ID, UpdateCoursePayload{
		Title: "Modern Synthesis, 2nd Edition",
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Modern Synthesis, 2nd Edition", updated.Title)

	got, err := svc.GetOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 59.0, got.Price)
	assert.Equal(t, "From oscillators up", got.Description, "untouched fields survive")
}
