package services

import (
	"context"

	"coursehub/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuthorService manages the author directory.
type AuthorService struct {
	db *gorm.DB
}

func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{db: db}
}

// List returns every author, newest first.
func (s *AuthorService) List(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&authors).Error
	return authors, err
}

// Popular returns authors ordered by average rating then recency.
func (s *AuthorService) Popular(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	err := s.db.WithContext(ctx).Order("average_ratings desc, updated_at desc").Find(&authors).Error
	return authors, err
}

// CreateAuthorPayload carries a new author profile. UID may be
// pre-generated by the caller when the display picture is uploaded under
// the author id first.
type CreateAuthorPayload struct {
	UID            string
	Name           string
	Bio            string
	DisplayPicture string
	ReferenceUID   string // linked user account, optional
	Socials        []models.AuthorSocial
}

// Create writes a new author document. averageRatings starts at 0 and
// reference_uid falls back to the author's own uid when no user account is
// linked.
func (s *AuthorService) Create(ctx context.Context, p CreateAuthorPayload) (*models.Author, error) {
	if p.UID == "" {
		p.UID = uuid.NewString()
	}
	if p.ReferenceUID == "" {
		p.ReferenceUID = p.UID
	}
	if p.DisplayPicture == "" {
		p.DisplayPicture = "missing"
	}
	author := models.Author{
		UID:            p.UID,
		Name:           p.Name,
		Bio:            p.Bio,
		DisplayPicture: p.DisplayPicture,
		ReferenceUID:   p.ReferenceUID,
		Socials:        datatypes.NewJSONSlice(p.Socials),
		AverageRatings: 0,
	}
	if err := s.db.WithContext(ctx).Create(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}
