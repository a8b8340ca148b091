package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aitax/internal/models"
	"aitax/internal/store"
)

// NewsSummarizer produces a personalized relevance summary of a news item for
// a company profile.
type NewsSummarizer interface {
	Summarize(ctx context.Context, news *models.News, profile *models.CompanyProfile) (string, error)
}

// PersonalizedNews pairs a news item's curated summary with the AI-generated
// explanation of its relevance to the requesting user's company.
type PersonalizedNews struct {
	NewsID              uint   `json:"news_id"`
	OriginalSummary     string `json:"original_summary"`
	PersonalizedSummary string `json:"personalized_summary"`
}

// NewsService handles curated news and personalized summaries.
type NewsService struct {
	news       *store.NewsStore
	profiles   *store.ProfileStore
	summarizer NewsSummarizer
}

// NewNewsService creates a new NewsService.
func NewNewsService(news *store.NewsStore, profiles *store.ProfileStore, summarizer NewsSummarizer) *NewsService {
	return &NewsService{
		news:       news,
		profiles:   profiles,
		summarizer: summarizer,
	}
}

// List returns news items with pagination. News is shared across tenants.
func (s *NewsService) List(ctx context.Context, offset, limit int) ([]models.News, error) {
	return s.news.ListNews(ctx, offset, limit)
}

// Get returns a single news item.
func (s *NewsService) Get(ctx context.Context, newsID uint) (*models.News, error) {
	news, err := s.news.NewsByID(ctx, newsID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return news, err
}

// Personalized generates (or serves from cache) the relevance summary of a
// news item for the user's company profile. The user must have completed
// their profile first.
func (s *NewsService) Personalized(ctx context.Context, userID, newsID uint) (*PersonalizedNews, error) {
	news, err := s.Get(ctx, newsID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.ProfileByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileMissing
	}
	if err != nil {
		return nil, err
	}

	summary, err := s.summarizer.Summarize(ctx, news, profile)
	if err != nil {
		return nil, err
	}

	return &PersonalizedNews{
		NewsID:              newsID,
		OriginalSummary:     news.Summary,
		PersonalizedSummary: summary,
	}, nil
}

// Create adds a news item. Admin only.
func (s *NewsService) Create(ctx context.Context, actor *models.User, news *models.News) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	return s.news.CreateNews(ctx, news)
}

// Update modifies a news item. Admin only.
func (s *NewsService) Update(ctx context.Context, actor *models.User, newsID uint, updates map[string]interface{}) (*models.News, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	if _, err := s.Get(ctx, newsID); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.news.UpdateNews(ctx, newsID, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, newsID)
}

// Delete removes a news item. Admin only.
func (s *NewsService) Delete(ctx context.Context, actor *models.User, newsID uint) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	if _, err := s.Get(ctx, newsID); err != nil {
		return err
	}
	return s.news.DeleteNews(ctx, newsID)
}
