package services

import (
	"context"

	"coursehub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryService manages the small category reference collection.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns every category in creation order.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&categories).Error
	return categories, err
}

// Create writes a category using the slug as its primary key. Creating an
// existing id overwrites the title, last write wins.
func (s *CategoryService) Create(ctx context.Context, id, title string) (*models.Category, error) {
	category := models.Category{ID: id, Title: title}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "updated_at"}),
	}).Create(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
