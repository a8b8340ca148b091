package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aitax/internal/models"
)

// ListNews returns curated news ordered by publication date, newest first.
func (h *Handler) ListNews(c *gin.Context) {
	offset, limit := pagination(c)
	news, err := h.news.List(c.Request.Context(), offset, limit)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *Handler) GetNews(c *gin.Context) {
	newsID, ok := idParam(c, "id")
	if !ok {
		return
	}
	news, err := h.news.Get(c.Request.Context(), newsID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// GetPersonalizedNews rewrites a news item's summary for the caller's company
// profile. Requires the caller to have a profile.
func (h *Handler) GetPersonalizedNews(c *gin.Context) {
	newsID, ok := idParam(c, "id")
	if !ok {
		return
	}
	personalized, err := h.news.Personalized(c.Request.Context(), currentUserID(c), newsID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, personalized)
}

// CreateNewsRequest is the JSON body for publishing a news item.
type CreateNewsRequest struct {
	Title         string             `json:"title" binding:"required"`
	Summary       string             `json:"summary" binding:"required"`
	Content       string             `json:"content" binding:"required"`
	Category      models.TaxCategory `json:"category" binding:"required"`
	SourceURL     string             `json:"source_url"`
	PublishedDate time.Time          `json:"published_date" binding:"required"`
}

func (h *Handler) CreateNews(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, err := h.auth.UserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	news := &models.News{
		Title:         req.Title,
		Summary:       req.Summary,
		Content:       req.Content,
		Category:      req.Category,
		SourceURL:     req.SourceURL,
		PublishedDate: req.PublishedDate,
	}
	if err := h.news.Create(c.Request.Context(), actor, news); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, news)
}

// UpdateNewsRequest carries optional fields; only set fields are applied.
type UpdateNewsRequest struct {
	Title         *string             `json:"title"`
	Summary       *string             `json:"summary"`
	Content       *string             `json:"content"`
	Category      *models.TaxCategory `json:"category"`
	SourceURL     *string             `json:"source_url"`
	PublishedDate *time.Time          `json:"published_date"`
}

func (h *Handler) UpdateNews(c *gin.Context) {
	newsID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, err := h.auth.UserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.SourceURL != nil {
		updates["source_url"] = *req.SourceURL
	}
	if req.PublishedDate != nil {
		updates["published_date"] = *req.PublishedDate
	}

	news, err := h.news.Update(c.Request.Context(), actor, newsID, updates)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (h *Handler) DeleteNews(c *gin.Context) {
	newsID, ok := idParam(c, "id")
	if !ok {
		return
	}
	actor, err := h.auth.UserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	if err := h.news.Delete(c.Request.Context(), actor, newsID); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
