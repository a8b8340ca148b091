package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aitax/internal/service"
	"aitax/pkg/logger"
)

// Handler bundles the HTTP endpoint handlers over the service layer.
type Handler struct {
	auth      *service.AuthService
	documents *service.DocumentService
	chat      *service.ChatService
	news      *service.NewsService
	notes     *service.NoteService
	profiles  *service.ProfileService
	log       *logger.Logger
}

// NewHandler creates a new Handler.
func NewHandler(
	auth *service.AuthService,
	documents *service.DocumentService,
	chat *service.ChatService,
	news *service.NewsService,
	notes *service.NoteService,
	profiles *service.ProfileService,
	log *logger.Logger,
) *Handler {
	return &Handler{
		auth:      auth,
		documents: documents,
		chat:      chat,
		news:      news,
		notes:     notes,
		profiles:  profiles,
		log:       log,
	}
}

// abortWithError maps service sentinel errors onto HTTP status codes.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrUnsupportedType):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrProfileExists),
		errors.Is(err, service.ErrProfileMissing),
		errors.Is(err, service.ErrInvalidRole):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}

// pagination reads skip/limit query parameters with the conventional
// defaults.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return offset, limit
}
