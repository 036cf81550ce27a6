package services

import (
	"context"

	"coursehub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestService stores user-suggested course URLs.
type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

// Create records a course URL suggestion.
func (s *RequestService) Create(ctx context.Context, courseURL string) (*models.Request, error) {
	request := models.Request{
		ID:  uuid.NewString(),
		URL: courseURL,
	}
	if err := s.db.WithContext(ctx).Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns every request, newest first. Super-admin dashboards only.
func (s *RequestService) List(ctx context.Context) ([]models.Request, error) {
	var requests []models.Request
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&requests).Error
	return requests, err
}
