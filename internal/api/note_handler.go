package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aitax/internal/store"
)

// ListNotes returns the caller's notes, optionally filtered by the news item
// or document they are attached to.
func (h *Handler) ListNotes(c *gin.Context) {
	offset, limit := pagination(c)

	var filter store.NoteFilter
	if raw := c.Query("news_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid news_id"})
			return
		}
		v := uint(id)
		filter.NewsID = &v
	}
	if raw := c.Query("document_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document_id"})
			return
		}
		v := uint(id)
		filter.DocumentID = &v
	}

	notes, err := h.notes.List(c.Request.Context(), currentUserID(c), filter, offset, limit)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// CreateNoteRequest is the JSON body for creating a note. A note can stand
// alone or reference a news item or document.
type CreateNoteRequest struct {
	Content    string `json:"content" binding:"required"`
	NewsID     *uint  `json:"news_id"`
	DocumentID *uint  `json:"document_id"`
}

func (h *Handler) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	note, err := h.notes.Create(c.Request.Context(), currentUserID(c), req.Content, req.NewsID, req.DocumentID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *Handler) GetNote(c *gin.Context) {
	noteID, ok := idParam(c, "id")
	if !ok {
		return
	}
	note, err := h.notes.Get(c.Request.Context(), currentUserID(c), noteID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

type UpdateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) UpdateNote(c *gin.Context) {
	noteID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	note, err := h.notes.Update(c.Request.Context(), currentUserID(c), noteID, req.Content)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *Handler) DeleteNote(c *gin.Context) {
	noteID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.notes.Delete(c.Request.Context(), currentUserID(c), noteID); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
