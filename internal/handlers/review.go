package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
)

type ReviewHandler struct {
	svc *services.Service
}

func NewReviewHandler(svc *services.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// CompleteReview godoc
// @Summary     Complete the review of a submission
// @Description Finalizes the admin review. Photos marked for re-upload open a retake round with a magic link; otherwise the approved set is delivered to the homeowner.
// @Tags        review
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Submission ID"
// @Success     200 {object} models.ReviewOutcome
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /submissions/{id}/complete-review [post]
func (h *ReviewHandler) CompleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	outcome, err := h.svc.CompleteReview(c.Request.Context(), id)
	if err != nil {
		var unreviewed *services.ErrUnreviewedPhotos
		switch {
		case errors.Is(err, services.ErrAlreadyDelivered):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
		case errors.As(err, &unreviewed):
			ids := make([]string, 0, len(unreviewed.Photos))
			for _, p := range unreviewed.Photos {
				ids = append(ids, p.ID.String())
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      err.Error(),
				"photoIds":   ids,
				"photoCount": len(ids),
			})
		case errors.Is(err, services.ErrNoApprovedPhotos):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		default:
			notFoundOr500(c, err, "submission")
		}
		return
	}
	c.JSON(http.StatusOK, outcome)
}
