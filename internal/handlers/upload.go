package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/storage"
)

type UploadHandler struct {
	store *storage.Store
}

func NewUploadHandler(store *storage.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// PresignUpload godoc
// @Summary     Presign a photo upload
// @Description Issues a presigned PUT URL so the intake form can upload an original straight to storage
// @Tags        upload
// @Accept      json
// @Produce     json
// @Param       request body models.PresignedUploadRequest true "File details"
// @Success     200 {object} models.PresignedUploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /upload [post]
func (h *UploadHandler) PresignUpload(c *gin.Context) {
	var req models.PresignedUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	uploadURL, key, err := h.store.PresignUpload(c.Request.Context(), req.FileName, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to presign upload", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.PresignedUploadResponse{UploadURL: uploadURL, StorageKey: key})
}

// ResolveFileURL godoc
// @Summary     Resolve a storage key to a viewable URL
// @Description Returns a short-lived presigned GET URL for a stored file
// @Tags        upload
// @Produce     json
// @Param       key query string true "Storage key"
// @Success     200 {object} map[string]string
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /file-url [get]
func (h *UploadHandler) ResolveFileURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "key query parameter is required"})
		return
	}

	url, err := h.store.PresignGet(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to presign file url", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
