package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
)

type DeliveryHandler struct {
	svc *services.Service
}

func NewDeliveryHandler(svc *services.Service) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

// ValidateDelivery godoc
// @Summary     View delivered photos
// @Description Resolves a delivery token and returns the approved photo gallery with presigned image URLs
// @Tags        delivery
// @Produce     json
// @Param       token query string true "Magic link token"
// @Success     200 {object} models.DeliveryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Router      /delivery [get]
func (h *DeliveryHandler) ValidateDelivery(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "token required"})
		return
	}

	resp, err := h.svc.ValidateDelivery(c.Request.Context(), token)
	if err != nil {
		if !linkError(c, err) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load delivery", Message: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadDelivery godoc
// @Summary     Download all photos as a ZIP
// @Description Streams a ZIP of every approved enhanced photo, with hero variants in a cover-photos folder
// @Tags        delivery
// @Produce     application/zip
// @Param       token query string true "Magic link token"
// @Success     200 {file} binary
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Router      /delivery/download [get]
func (h *DeliveryHandler) DownloadDelivery(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "token required"})
		return
	}

	fileName, data, err := h.svc.BuildDeliveryZip(c.Request.Context(), token)
	if err != nil {
		if !linkError(c, err) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to build zip", Message: err.Error()})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/zip", data)
}

// DeliveryFeedback godoc
// @Summary     Record homeowner feedback
// @Description Saves the homeowner's approval or change request for the delivered set. Change requests notify the admin.
// @Tags        delivery
// @Accept      json
// @Produce     json
// @Param       request body models.DeliveryFeedbackRequest true "Feedback"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Router      /delivery/feedback [post]
func (h *DeliveryHandler) DeliveryFeedback(c *gin.Context) {
	var req models.DeliveryFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if req.Status != "Approved" && req.Status != "Changes Requested" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "status must be Approved or Changes Requested"})
		return
	}

	if err := h.svc.DeliveryFeedback(c.Request.Context(), req.Token, req.Status, req.Notes); err != nil {
		if !linkError(c, err) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save feedback", Message: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
