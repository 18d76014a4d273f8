package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
)

type MagicLinkHandler struct {
	svc *services.Service
}

func NewMagicLinkHandler(svc *services.Service) *MagicLinkHandler {
	return &MagicLinkHandler{svc: svc}
}

// CreateReuploadLink godoc
// @Summary     Create a re-upload link
// @Description Issues a single-use 7-day re-upload link for a submission and emails it to the homeowner
// @Tags        magic-link
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateMagicLinkRequest true "Submission and optional instructions"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /magic-link [post]
func (h *MagicLinkHandler) CreateReuploadLink(c *gin.Context) {
	var req models.CreateMagicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	submissionID, err := uuid.Parse(req.SubmissionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	url, err := h.svc.CreateReuploadLink(c.Request.Context(), submissionID, req.Instructions)
	if err != nil {
		notFoundOr500(c, err, "submission")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: url})
}
