package services

import (
	"context"
	"fmt"

	"coursehub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingsFilter string

const (
	RatingsHighToLow RatingsFilter = "high_to_low"
	RatingsLowToHigh RatingsFilter = "low_to_high"
)

type OrderDateBy string

const (
	OrderDateLatest OrderDateBy = "latest"
	OrderDateOldest OrderDateBy = "oldest"
)

// DefaultPageSize matches the catalog page size used by the web client.
const DefaultPageSize = 20

// CourseListParams selects and orders a catalog listing. A change to any
// field other than Cursor invalidates a previously returned cursor.
type CourseListParams struct {
	CategoryID  string
	Ratings     RatingsFilter
	OrderDateBy OrderDateBy
	PageSize    int
	Cursor      string
}

// CourseService runs catalog queries against the injected store.
type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

// ListByCategory returns one page of courses. The ordering is always the
// compound sort averageRatings (per Ratings), then updated_at (per
// OrderDateBy), then id as a deterministic tiebreak. CategoryID "all"
// removes the category predicate.
func (s *CourseService) ListByCategory(ctx context.Context, p CourseListParams) (Page[models.Course], error) {
	limit := p.PageSize
	if limit <= 0 {
		limit = DefaultPageSize
	}
	avgDesc := p.Ratings != RatingsLowToHigh
	dateDesc := p.OrderDateBy != OrderDateOldest

	q := s.db.WithContext(ctx).Model(&models.Course{})
	if p.CategoryID != "" && p.CategoryID != models.CategoryAll {
		q = q.Where("category_id = ?", p.CategoryID)
	}
	if p.Cursor != "" {
		c, err := decodeCursor(p.Cursor)
		if err != nil {
			return Page[models.Course]{}, err
		}
		// Keyset predicate resuming strictly after the cursor row under
		// the same compound ordering.
		cond := fmt.Sprintf(
			"average_ratings %[1]s ? OR (average_ratings = ? AND updated_at %[2]s ?) OR (average_ratings = ? AND updated_at = ? AND id > ?)",
			cmpOp(avgDesc), cmpOp(dateDesc),
		)
		q = q.Where(cond,
			c.AverageRatings,
			c.AverageRatings, c.UpdatedAt,
			c.AverageRatings, c.UpdatedAt, c.ID,
		)
	}

	var courses []models.Course
	err := q.Order(fmt.Sprintf("average_ratings %s, updated_at %s, id asc", sortDir(avgDesc), sortDir(dateDesc))).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return Page[models.Course]{}, err
	}
	return pageOf(courses, limit, func(c models.Course) cursor {
		return cursor{AverageRatings: c.AverageRatings, UpdatedAt: c.UpdatedAt, ID: c.ID}
	}), nil
}

// GetOne fetches a single course. Returns gorm.ErrRecordNotFound when the
// id does not exist.
func (s *CourseService) GetOne(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := s.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// TopOfMonth returns the top 5 courses by average rating then recency.
// Fixed size, never paginated further.
func (s *CourseService) TopOfMonth(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.WithContext(ctx).
		Order("average_ratings desc, updated_at desc, id asc").
		Limit(5).
		Find(&courses).Error
	return courses, err
}

// Popular returns the top 10 courses by average rating alone, for the
// "Popular" rail.
func (s *CourseService) Popular(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.WithContext(ctx).
		Order("average_ratings desc, id asc").
		Limit(10).
		Find(&courses).Error
	return courses, err
}

// ListMine returns every course owned by the author, newest first.
// Unpaginated; per-author cardinality is assumed low.
func (s *CourseService) ListMine(ctx context.Context, authorUID string) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.WithContext(ctx).
		Where("author_uid = ?", authorUID).
		Order("created_at desc").
		Find(&courses).Error
	return courses, err
}

// ListAll returns every course, newest first. Super-admin dashboards only.
func (s *CourseService) ListAll(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&courses).Error
	return courses, err
}

// CreateCoursePayload carries a new course. ID may be pre-generated by the
// caller when the thumbnail is uploaded under the course id first.
type CreateCoursePayload struct {
	ID          string
	Title       string
	Description string
	ContentURL  string
	Thumbnail   string
	Price       float64
	Currency    models.Currency
	Language    string
	Category    models.CourseCategory
	Author      models.CourseAuthor
	Start       models.CourseStart
}

// Create writes a new course document with averageRatings initialized to 0.
func (s *CourseService) Create(ctx context.Context, p CreateCoursePayload) (*models.Course, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	course := models.Course{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		ContentURL:     p.ContentURL,
		Thumbnail:      p.Thumbnail,
		Price:          p.Price,
		Currency:       p.Currency,
		Language:       p.Language,
		Category:       p.Category,
		Author:         p.Author,
		Start:          p.Start,
		AverageRatings: 0,
	}
	if err := s.db.WithContext(ctx).Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCoursePayload carries an admin edit. Zero-valued fields are left
// untouched.
type UpdateCoursePayload struct {
	Title       string
	Description string
	ContentURL  string
	Thumbnail   string
	Language    string
	Currency    models.Currency
	Price       *float64
}

// Update applies an admin edit and bumps updated_at.
func (s *CourseService) Update(ctx context.Context, id string, p UpdateCoursePayload) (*models.Course, error) {
	updates := map[string]interface{}{}
	if p.Title != "" {
		updates["title"] = p.Title
	}
	if p.Description != "" {
		updates["description"] = p.Description
	}
	if p.ContentURL != "" {
		updates["content_url"] = p.ContentURL
	}
	if p.Thumbnail != "" {
		updates["thumbnail"] = p.Thumbnail
	}
	if p.Language != "" {
		updates["language"] = p.Language
	}
	if p.Currency != "" {
		updates["currency"] = p.Currency
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}

	var course models.Course
	if err := s.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return &course, nil
	}
	if err := s.db.WithContext(ctx).Model(&course).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func cmpOp(desc bool) string {
	if desc {
		return "<"
	}
	return ">"
}
