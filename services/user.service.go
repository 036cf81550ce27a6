package services

import (
	"context"

	"coursehub/models"

	"gorm.io/gorm"
)

// UserService manages profile documents in the Users collection.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetByUID fetches a profile by auth uid.
func (s *UserService) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "uid = ?", uid).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches a profile by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateProfile writes a new profile document. New profiles always start
// with the user role; role changes happen outside this application.
func (s *UserService) CreateProfile(ctx context.Context, user models.User) (*models.User, error) {
	user.Role = models.RoleUser
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfilePayload carries a profile edit. Zero-valued fields are left
// untouched.
type UpdateProfilePayload struct {
	Name           string
	DisplayPicture string
}

// UpdateProfile applies a profile edit.
func (s *UserService) UpdateProfile(ctx context.Context, uid string, p UpdateProfilePayload) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "uid = ?", uid).Error; err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if p.Name != "" {
		updates["name"] = p.Name
	}
	if p.DisplayPicture != "" {
		updates["display_picture"] = p.DisplayPicture
	}
	if len(updates) == 0 {
		return &user, nil
	}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
