package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aitax/internal/models"
	"aitax/internal/store"
)

// ProfileService handles the single company tax profile each user maintains.
type ProfileService struct {
	profiles *store.ProfileStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles *store.ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.CompanyProfile, error) {
	profile, err := s.profiles.ProfileByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return profile, err
}

// Create inserts the user's profile; each user may have at most one.
func (s *ProfileService) Create(ctx context.Context, profile *models.CompanyProfile) (*models.CompanyProfile, error) {
	if _, err := s.profiles.ProfileByUser(ctx, profile.UserID); err == nil {
		return nil, ErrProfileExists
	}
	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update applies field updates to the user's profile.
func (s *ProfileService) Update(ctx context.Context, userID uint, updates map[string]interface{}) (*models.CompanyProfile, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.profiles.UpdateProfile(ctx, userID, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID)
}
