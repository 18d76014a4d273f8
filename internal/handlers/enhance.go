package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
)

type EnhanceHandler struct {
	svc *services.Service
}

func NewEnhanceHandler(svc *services.Service) *EnhanceHandler {
	return &EnhanceHandler{svc: svc}
}

// EnhancePhoto godoc
// @Summary     Enhance a photo
// @Description Runs the AI enhancement on one photo with the given model, intensity, presets, and optional custom prompt. Each run appends a new version to the photo's history.
// @Tags        enhance
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Photo ID"
// @Param       request body models.EnhancePhotoRequest false "Enhancement settings"
// @Success     200 {object} models.EnhanceResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     504 {object} models.ErrorResponse
// @Router      /photos/{id}/enhance [post]
func (h *EnhanceHandler) EnhancePhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	var req models.EnhancePhotoRequest
	// Body is optional; defaults apply when absent.
	_ = c.ShouldBindJSON(&req)

	result, err := h.svc.EnhancePhoto(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusGatewayTimeout, models.ErrorResponse{
				Error:   "enhancement timed out",
				Message: "the enhancement engine did not respond in time, try again",
			})
			return
		}
		notFoundOr500(c, err, "photo")
		return
	}

	c.JSON(http.StatusOK, models.EnhanceResponse{
		Status:        "enhanced",
		EnhancedURL:   result.EnhancedKey,
		HeroURL:       result.HeroKey,
		VersionNumber: result.VersionNumber,
		Model:         result.Model,
	})
}

// AutoEnhance godoc
// @Summary     Auto-enhance a submission
// @Description Sequentially enhances every pending photo in a submission with per-room defaults. Called by the job runner or by internal services with the service key.
// @Tags        enhance
// @Produce     json
// @Param       id path string true "Submission ID"
// @Success     200 {object} models.BatchRunSummary
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /internal/submissions/{id}/auto-enhance [post]
func (h *EnhanceHandler) AutoEnhance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	summary, err := h.svc.RunAutoEnhance(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "submission")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CleanupStaleURLs godoc
// @Summary     Clear stale external URLs
// @Description Resets photos and versions still pointing at expired external image URLs from before results were re-stored
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.CleanupResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/cleanup-stale-urls [post]
func (h *EnhanceHandler) CleanupStaleURLs(c *gin.Context) {
	resp, err := h.svc.CleanupStaleURLs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "cleanup failed", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
