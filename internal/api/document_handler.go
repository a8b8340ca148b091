package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListDocuments returns the current user's documents with pagination.
func (h *Handler) ListDocuments(c *gin.Context) {
	offset, limit := pagination(c)
	documents, err := h.documents.List(c.Request.Context(), currentUserID(c), offset, limit)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

// GetDocument returns one document owned by the current user.
func (h *Handler) GetDocument(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	document, err := h.documents.Get(c.Request.Context(), currentUserID(c), documentID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

// UploadDocument accepts a multipart upload (title, optional description,
// file) and creates the document. Ingestion runs before the response is
// written, so upload latency includes extraction and embedding.
func (h *Handler) UploadDocument(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	description := c.PostForm("description")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	document, err := h.documents.Upload(c.Request.Context(), currentUserID(c), title, description, fileHeader.Filename, content)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, document)
}

// UpdateDocumentRequest is the JSON body for metadata edits.
type UpdateDocumentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateDocument edits a document's title and/or description.
func (h *Handler) UpdateDocument(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	document, err := h.documents.Update(c.Request.Context(), currentUserID(c), documentID, req.Title, req.Description)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

// DeleteDocument removes a document, its file, and its vector records.
func (h *Handler) DeleteDocument(c *gin.Context) {
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.documents.Delete(c.Request.Context(), currentUserID(c), documentID); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
