package store

import (
	"context"

	"gorm.io/gorm"

	"aitax/internal/models"
)

// NewsStore is the data access layer for curated news items.
type NewsStore struct {
	db *gorm.DB
}

// NewNewsStore creates a new NewsStore.
func NewNewsStore(db *gorm.DB) *NewsStore {
	return &NewsStore{db: db}
}

// CreateNews inserts a news item.
func (s *NewsStore) CreateNews(ctx context.Context, news *models.News) error {
	return s.db.WithContext(ctx).Create(news).Error
}

// NewsByID fetches a news item by primary key.
func (s *NewsStore) NewsByID(ctx context.Context, id uint) (*models.News, error) {
	var news models.News
	if err := s.db.WithContext(ctx).First(&news, id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// NewsByTitle fetches a news item by exact title. Used by the seed command to
// stay idempotent.
func (s *NewsStore) NewsByTitle(ctx context.Context, title string) (*models.News, error) {
	var news models.News
	if err := s.db.WithContext(ctx).Where("title = ?", title).First(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// ListNews lists news items with offset/limit pagination, newest publication
// first.
func (s *NewsStore) ListNews(ctx context.Context, offset, limit int) ([]models.News, error) {
	var news []models.News
	err := s.db.WithContext(ctx).
		Order("published_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&news).Error
	return news, err
}

// UpdateNews applies the given column updates to a news item.
func (s *NewsStore) UpdateNews(ctx context.Context, id uint, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&models.News{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteNews removes a news item.
func (s *NewsStore) DeleteNews(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.News{}, id).Error
}
