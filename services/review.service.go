package services

import (
	"context"
	"errors"

	"coursehub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrAlreadyReviewed is returned when a user submits a second review
	// for the same course. The one-rating-per-user invariant is enforced
	// here, not left to the UI.
	ErrAlreadyReviewed = errors.New("course already reviewed by this user")

	// ErrInvalidRating is returned for rating values outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// ReviewService appends reviews and keeps the denormalized course rating
// aggregate consistent with them.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// SubmitReviewPayload carries one review submission.
type SubmitReviewPayload struct {
	CourseID    string
	Reviewer    models.Reviewer
	Rating      int
	Title       string
	Description string
}

// Submit writes the review document and updates the course's ratings list
// and averageRatings in a single transaction; on failure nothing is
// visible. After a successful call the course invariant holds:
// averageRatings == AverageRating(ratings).
func (s *ReviewService) Submit(ctx context.Context, p SubmitReviewPayload) (*models.Review, error) {
	if p.Rating < 1 || p.Rating > 5 {
		return nil, ErrInvalidRating
	}

	review := models.Review{
		ID:          models.ReviewID(p.Reviewer.UID, p.CourseID),
		CourseID:    p.CourseID,
		Reviewer:    p.Reviewer,
		Rating:      p.Rating,
		Title:       p.Title,
		Description: p.Description,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", p.CourseID).Error; err != nil {
			return err
		}
		for _, r := range course.Ratings {
			if r.UID == p.Reviewer.UID {
				return ErrAlreadyReviewed
			}
		}
		ratings := append([]models.Rating(course.Ratings), models.Rating{
			UID:   p.Reviewer.UID,
			Value: p.Rating,
		})

		// The review id is a natural key on (reviewer, course); a
		// conflicting write addresses the same document.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&review).Error; err != nil {
			return err
		}
		return tx.Model(&course).Updates(map[string]interface{}{
			"ratings":         datatypes.NewJSONSlice(ratings),
			"average_ratings": models.AverageRating(ratings),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByCourse returns one page of a course's reviews, newest first.
func (s *ReviewService) ListByCourse(ctx context.Context, courseID string, pageSize int, pageCursor string) (Page[models.Review], error) {
	limit := pageSize
	if limit <= 0 {
		limit = DefaultPageSize
	}

	q := s.db.WithContext(ctx).Model(&models.Review{}).Where("course_id = ?", courseID)
	if pageCursor != "" {
		c, err := decodeCursor(pageCursor)
		if err != nil {
			return Page[models.Review]{}, err
		}
		q = q.Where("created_at < ? OR (created_at = ? AND id > ?)", c.CreatedAt, c.CreatedAt, c.ID)
	}

	var reviews []models.Review
	if err := q.Order("created_at desc, id asc").Limit(limit).Find(&reviews).Error; err != nil {
		return Page[models.Review]{}, err
	}
	return pageOf(reviews, limit, func(r models.Review) cursor {
		return cursor{CreatedAt: r.CreatedAt, ID: r.ID}
	}), nil
}
