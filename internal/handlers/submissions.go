package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
	"listing-lift-backend/internal/storage"
)

type SubmissionsHandler struct {
	svc   *services.Service
	db    *database.Client
	store *storage.Store
}

func NewSubmissionsHandler(svc *services.Service, db *database.Client, store *storage.Store) *SubmissionsHandler {
	return &SubmissionsHandler{svc: svc, db: db, store: store}
}

// CreateSubmission godoc
// @Summary     Submit property photos
// @Description Creates a homeowner submission with its photos, queues auto-enhancement, and sends confirmation emails
// @Tags        submissions
// @Accept      json
// @Produce     json
// @Param       request body models.CreateSubmissionRequest true "Submission details and photos"
// @Success     201 {object} models.CreateSubmissionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /submissions [post]
func (h *SubmissionsHandler) CreateSubmission(c *gin.Context) {
	var req models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	sub, err := h.svc.CreateIntake(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoPhotos),
			errors.Is(err, services.ErrTooManyPhotos),
			errors.Is(err, services.ErrRoomLimit),
			errors.Is(err, services.ErrUnknownRoomKey):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create submission", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, models.CreateSubmissionResponse{
		ID:               sub.ID.String(),
		SubmissionNumber: sub.SubmissionNumber,
	})
}

// ListSubmissions godoc
// @Summary     List submissions
// @Description Lists submissions for the admin dashboard, newest first, optionally filtered by status or homeowner email
// @Tags        submissions
// @Produce     json
// @Security    Bearer
// @Param       status query string false "Filter by submission status"
// @Param       email query string false "Filter by homeowner email"
// @Success     200 {array} models.SubmissionSummary
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /submissions [get]
func (h *SubmissionsHandler) ListSubmissions(c *gin.Context) {
	status := c.Query("status")
	if status != "" {
		if _, err := models.ParseSubmissionStatus(status); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
	}

	subs, err := h.db.ListSubmissions(c.Request.Context(), status, c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list submissions", Message: err.Error()})
		return
	}

	out := make([]models.SubmissionSummary, 0, len(subs))
	for i := range subs {
		out = append(out, toSubmissionSummary(&subs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetSubmission godoc
// @Summary     Get a submission
// @Description Returns a submission with its photos and presigned image URLs
// @Tags        submissions
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Submission ID"
// @Success     200 {object} models.SubmissionDetail
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /submissions/{id} [get]
func (h *SubmissionsHandler) GetSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	sub, err := h.db.GetSubmissionWithPhotos(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "submission")
		return
	}
	c.JSON(http.StatusOK, toSubmissionDetail(c.Request.Context(), h.store, sub))
}

// UpdateSubmission godoc
// @Summary     Update submission status
// @Description Moves a submission between New, In Progress, and Completed
// @Tags        submissions
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Submission ID"
// @Param       request body models.UpdateSubmissionRequest true "New status"
// @Success     200 {object} models.SubmissionDetail
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /submissions/{id} [patch]
func (h *SubmissionsHandler) UpdateSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	var req models.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	status, err := models.ParseSubmissionStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.db.UpdateSubmissionStatus(c.Request.Context(), id, status); err != nil {
		notFoundOr500(c, err, "submission")
		return
	}

	sub, err := h.db.GetSubmissionWithPhotos(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "submission")
		return
	}
	c.JSON(http.StatusOK, toSubmissionDetail(c.Request.Context(), h.store, sub))
}

// DeleteSubmission godoc
// @Summary     Delete a submission
// @Description Removes a submission and its photos, versions, and links
// @Tags        submissions
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Submission ID"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /submissions/{id} [delete]
func (h *SubmissionsHandler) DeleteSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	if err := h.db.DeleteSubmission(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "submission")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
