package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
	"listing-lift-backend/internal/storage"
)

type PhotosHandler struct {
	svc   *services.Service
	db    *database.Client
	store *storage.Store
}

func NewPhotosHandler(svc *services.Service, db *database.Client, store *storage.Store) *PhotosHandler {
	return &PhotosHandler{svc: svc, db: db, store: store}
}

// UpdatePhoto godoc
// @Summary     Update a photo
// @Description Applies admin review actions: status changes, hero flag, rejection reason, re-upload instructions, or room recategorization
// @Tags        photos
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Photo ID"
// @Param       request body models.UpdatePhotoRequest true "Fields to change"
// @Success     200 {object} models.PhotoResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /photos/{id} [patch]
func (h *PhotosHandler) UpdatePhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	var req models.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	patch := database.PhotoPatch{
		IsHero:               req.IsHero,
		RejectionReason:      req.RejectionReason,
		ReuploadInstructions: req.ReuploadInstructions,
		EnhancedURL:          req.EnhancedURL,
		HeroURL:              req.HeroURL,
		RoomCategory:         req.RoomCategory,
		SubCategory:          req.SubCategory,
	}

	if req.Status != nil {
		next, err := models.ParsePhotoStatus(*req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		current, err := h.db.GetPhoto(c.Request.Context(), id)
		if err != nil {
			notFoundOr500(c, err, "photo")
			return
		}
		if !current.Status.CanTransitionTo(next) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: "invalid status transition from " + string(current.Status) + " to " + string(next),
			})
			return
		}
		patch.Status = &next
	}

	photo, err := h.db.PatchPhoto(c.Request.Context(), id, patch)
	if err != nil {
		notFoundOr500(c, err, "photo")
		return
	}

	// Flagging a hero on an enhanced photo kicks off the hero cut in the
	// background.
	if req.IsHero != nil && *req.IsHero {
		h.svc.QueueHeroGeneration(c.Request.Context(), photo)
	}

	c.JSON(http.StatusOK, toPhotoResponse(c.Request.Context(), h.store, photo))
}

// ListVersions godoc
// @Summary     List enhancement versions
// @Description Returns the enhancement history for a photo, newest first
// @Tags        photos
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Photo ID"
// @Success     200 {array} models.VersionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /photos/{id}/versions [get]
func (h *PhotosHandler) ListVersions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	versions, err := h.db.ListVersions(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list versions", Message: err.Error()})
		return
	}

	out := make([]models.VersionResponse, 0, len(versions))
	for i := range versions {
		v := toVersionResponse(&versions[i])
		v.EnhancedURL = presignKey(c.Request.Context(), h.store, versions[i].EnhancedURL)
		out = append(out, v)
	}
	c.JSON(http.StatusOK, out)
}

// UseVersion godoc
// @Summary     Switch to an enhancement version
// @Description Points the photo's enhanced image at a previous version from its history
// @Tags        photos
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Photo ID"
// @Param       request body models.UseVersionRequest true "Version to activate"
// @Success     200 {object} models.VersionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /photos/{id}/use-version [post]
func (h *PhotosHandler) UseVersion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	var req models.UseVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	versionID, err := uuid.Parse(req.VersionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid version id"})
		return
	}

	version, err := h.svc.UseVersion(c.Request.Context(), id, versionID)
	if err != nil {
		notFoundOr500(c, err, "version")
		return
	}
	c.JSON(http.StatusOK, toVersionResponse(version))
}

// GenerateHero godoc
// @Summary     Generate a hero crop
// @Description Produces the oversized cover variant from a photo's current enhanced image
// @Tags        photos
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Photo ID"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /photos/{id}/generate-hero [post]
func (h *PhotosHandler) GenerateHero(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	heroKey, err := h.svc.GenerateHero(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "photo")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: heroKey})
}
