package api

import (
	"errors"
	"fmt"
	"net/http"

	"fithub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MediaHandler holds the media service dependency.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// --- DTOs ---

type UploadURLRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type" binding:"required"`
}

// --- Handler Methods ---

// RequestUploadURL returns a presigned PUT URL the client uploads to
// directly, bypassing the API server.
func (h *MediaHandler) RequestUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	resp, err := h.mediaService.RequestUploadURL(c.Request.Context(), req.FileName, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDownloadURL returns a presigned GET URL for a stored object.
func (h *MediaHandler) GetDownloadURL(c *gin.Context) {
	objectKey := c.Query("object_key")

	url, err := h.mediaService.DownloadURL(c.Request.Context(), objectKey)
	if err != nil {
		if errors.Is(err, service.ErrObjectKeyEmpty) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": url, "object_key": objectKey})
}

// DeleteObject removes a stored object.
func (h *MediaHandler) DeleteObject(c *gin.Context) {
	objectKey := c.Query("object_key")

	err := h.mediaService.DeleteObject(c.Request.Context(), objectKey)
	if err != nil {
		if errors.Is(err, service.ErrObjectKeyEmpty) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "object deleted successfully"})
}
