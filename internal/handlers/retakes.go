package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
	"listing-lift-backend/internal/storage"
)

type RetakesHandler struct {
	svc   *services.Service
	store *storage.Store
}

func NewRetakesHandler(svc *services.Service, store *storage.Store) *RetakesHandler {
	return &RetakesHandler{svc: svc, store: store}
}

// ValidateRetakeLink godoc
// @Summary     Validate a retake link
// @Description Resolves a retake batch token and lists the photos awaiting replacement originals
// @Tags        retakes
// @Produce     json
// @Param       token query string true "Magic link token"
// @Success     200 {object} models.LinkValidateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Router      /retakes [get]
func (h *RetakesHandler) ValidateRetakeLink(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "token required"})
		return
	}

	link, sub, photos, err := h.svc.RetakePhotos(c.Request.Context(), token)
	if err != nil {
		if !linkError(c, err) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to validate link", Message: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, h.linkResponse(c, link, sub, photos))
}

// RetakeUploadURL godoc
// @Summary     Presign a retake upload
// @Description Issues a presigned PUT URL for one replacement photo in a retake round
// @Tags        retakes
// @Accept      json
// @Produce     json
// @Param       request body models.RetakeUploadURLRequest true "Token, photo, and file details"
// @Success     200 {object} models.PresignedUploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Router      /retakes/upload-url [post]
func (h *RetakesHandler) RetakeUploadURL(c *gin.Context) {
	var req models.RetakeUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	photoID, err := uuid.Parse(req.PhotoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
		return
	}

	uploadURL, storageKey, err := h.svc.RetakeUploadURL(c.Request.Context(), req.Token, photoID, req.FileName, req.ContentType)
	if err != nil {
		h.retakeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PresignedUploadResponse{UploadURL: uploadURL, StorageKey: storageKey})
}

// RetakeAction godoc
// @Summary     Save or submit retakes
// @Description Attaches one uploaded replacement ("save_photo") or closes out the retake round ("submit"). Submitting with all photos replaced queues re-enhancement.
// @Tags        retakes
// @Accept      json
// @Produce     json
// @Param       request body models.RetakeActionRequest true "Action to perform"
// @Success     200 {object} models.RetakeSubmitResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Router      /retakes/complete [post]
func (h *RetakesHandler) RetakeAction(c *gin.Context) {
	var req models.RetakeActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	switch req.Action {
	case "save_photo":
		if req.PhotoID == "" || req.StorageKey == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "photoId and storageKey required"})
			return
		}
		photoID, err := uuid.Parse(req.PhotoID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid photo id"})
			return
		}
		if err := h.svc.SaveRetakePhoto(c.Request.Context(), req.Token, photoID, req.StorageKey); err != nil {
			h.retakeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
	case "submit":
		resp, err := h.svc.SubmitRetakes(c.Request.Context(), req.Token)
		if err != nil {
			h.retakeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown action " + req.Action})
	}
}

// ValidateReuploadLink godoc
// @Summary     Validate a re-upload link
// @Description Resolves a single-use re-upload token and lists the photos to replace
// @Tags        retakes
// @Produce     json
// @Param       token query string true "Magic link token"
// @Success     200 {object} models.LinkValidateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Router      /magic-link [get]
func (h *RetakesHandler) ValidateReuploadLink(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "token required"})
		return
	}

	link, sub, photos, err := h.svc.ReuploadPhotos(c.Request.Context(), token)
	if err != nil {
		if !linkError(c, err) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to validate link", Message: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, h.linkResponse(c, link, sub, photos))
}

// CompleteReupload godoc
// @Summary     Complete a re-upload
// @Description Marks a single-use re-upload link consumed once the homeowner has finished replacing photos
// @Tags        retakes
// @Accept      json
// @Produce     json
// @Param       request body models.TokenRequest true "Magic link token"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Router      /magic-link/consume [post]
func (h *RetakesHandler) CompleteReupload(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if err := h.svc.ConsumeReuploadLink(c.Request.Context(), req.Token); err != nil {
		if !linkError(c, err) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to complete re-upload", Message: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

func (h *RetakesHandler) linkResponse(c *gin.Context, link *models.MagicLink, sub *models.Submission, photos []models.Photo) *models.LinkValidateResponse {
	resp := &models.LinkValidateResponse{Valid: true, ExpiresAt: link.ExpiresAt}
	resp.Submission.ID = sub.ID.String()
	resp.Submission.HomeownerName = sub.HomeownerName
	resp.Submission.PropertyAddress = sub.FullAddress()
	resp.Submission.SubmissionNumber = sub.SubmissionNumber
	resp.Photos = make([]models.PhotoResponse, 0, len(photos))
	for i := range photos {
		resp.Photos = append(resp.Photos, toPhotoResponse(c.Request.Context(), h.store, &photos[i]))
	}
	return resp
}

func (h *RetakesHandler) retakeError(c *gin.Context, err error) {
	if linkError(c, err) {
		return
	}
	if errors.Is(err, services.ErrPhotoNotInSubmission) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	notFoundOr500(c, err, "retake")
}
