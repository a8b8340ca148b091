package store

import (
	"context"

	"gorm.io/gorm"

	"aitax/internal/models"
)

// ProfileStore is the data access layer for company tax profiles.
type ProfileStore struct {
	db *gorm.DB
}

// NewProfileStore creates a new ProfileStore.
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// CreateProfile inserts a company profile.
func (s *ProfileStore) CreateProfile(ctx context.Context, profile *models.CompanyProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

// ProfileByUser fetches the profile owned by the given user.
func (s *ProfileStore) ProfileByUser(ctx context.Context, userID uint) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the given column updates to the user's profile.
func (s *ProfileStore) UpdateProfile(ctx context.Context, userID uint, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.CompanyProfile{}).Where("user_id = ?", userID).Updates(updates).Error
}
