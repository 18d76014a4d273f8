package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
	"listing-lift-backend/internal/storage"
)

// presignKey swaps a storage key for a short-lived GET URL. Presign failures
// degrade to an empty URL rather than failing the whole response.
func presignKey(ctx context.Context, store *storage.Store, key string) string {
	if key == "" {
		return ""
	}
	url, err := store.PresignGet(ctx, key)
	if err != nil {
		return ""
	}
	return url
}

func toPhotoResponse(ctx context.Context, store *storage.Store, p *models.Photo) models.PhotoResponse {
	resp := models.PhotoResponse{
		ID:                   p.ID.String(),
		RoomCategory:         p.RoomCategory,
		SubCategory:          p.SubCategory.String,
		Caption:              p.Caption,
		OriginalURL:          presignKey(ctx, store, p.OriginalURL),
		Status:               string(p.Status),
		IsHero:               p.IsHero,
		Orientation:          string(p.Orientation),
		RejectionReason:      p.RejectionReason.String,
		ReuploadInstructions: p.ReuploadInstructions.String,
		SortOrder:            p.SortOrder,
		CreatedAt:            p.CreatedAt,
	}
	if p.EnhancedURL.Valid {
		resp.EnhancedURL = presignKey(ctx, store, p.EnhancedURL.String)
	}
	if p.HeroURL.Valid {
		resp.HeroURL = presignKey(ctx, store, p.HeroURL.String)
	}
	return resp
}

func toSubmissionSummary(s *models.Submission) models.SubmissionSummary {
	summary := models.SubmissionSummary{
		ID:               s.ID.String(),
		SubmissionNumber: s.SubmissionNumber,
		HomeownerName:    s.HomeownerName,
		Email:            s.Email,
		PropertyAddress:  s.FullAddress(),
		Status:           string(s.Status),
		ReviewStatus:     string(s.ReviewStatus),
		RetakeRound:      s.RetakeRound,
		PhotoCount:       len(s.Photos),
		Photos:           make([]models.PhotoSummary, 0, len(s.Photos)),
		CreatedAt:        s.CreatedAt,
	}
	for i := range s.Photos {
		p := &s.Photos[i]
		summary.Photos = append(summary.Photos, models.PhotoSummary{
			ID:           p.ID.String(),
			RoomCategory: p.RoomCategory,
			Status:       string(p.Status),
			IsHero:       p.IsHero,
		})
	}
	return summary
}

func toSubmissionDetail(ctx context.Context, store *storage.Store, s *models.Submission) models.SubmissionDetail {
	detail := models.SubmissionDetail{
		ID:                   s.ID.String(),
		SubmissionNumber:     s.SubmissionNumber,
		HomeownerName:        s.HomeownerName,
		Email:                s.Email,
		Phone:                s.Phone,
		PropertyAddress:      s.PropertyAddress,
		City:                 s.City.String,
		ProvinceState:        s.ProvinceState.String,
		PostalZip:            s.PostalZip.String,
		Notes:                s.Notes.String,
		Status:               string(s.Status),
		ReviewStatus:         string(s.ReviewStatus),
		RetakeRound:          s.RetakeRound,
		ClientFeedbackStatus: s.ClientFeedbackStatus.String,
		ClientFeedbackNotes:  s.ClientFeedbackNotes.String,
		Photos:               make([]models.PhotoResponse, 0, len(s.Photos)),
		CreatedAt:            s.CreatedAt,
	}
	detail.RetakesSentAt = nullTimePtr(s.RetakesSentAt.Time, s.RetakesSentAt.Valid)
	detail.DeliveredAt = nullTimePtr(s.DeliveredAt.Time, s.DeliveredAt.Valid)
	detail.DeletionScheduledAt = nullTimePtr(s.DeletionScheduledAt.Time, s.DeletionScheduledAt.Valid)
	for i := range s.Photos {
		detail.Photos = append(detail.Photos, toPhotoResponse(ctx, store, &s.Photos[i]))
	}
	return detail
}

func toVersionResponse(v *models.EnhancementVersion) models.VersionResponse {
	return models.VersionResponse{
		ID:              v.ID.String(),
		VersionNumber:   v.VersionNumber,
		EnhancedURL:     v.EnhancedURL,
		Intensity:       string(v.Intensity),
		Model:           v.Model,
		PresetIDs:       v.PresetIDs,
		AdditionalNotes: v.AdditionalNotes.String,
		CreatedAt:       v.CreatedAt,
	}
}

func nullTimePtr(t time.Time, valid bool) *time.Time {
	if !valid {
		return nil
	}
	return &t
}

// linkError translates the magic link error taxonomy into HTTP statuses.
// Returns true when the error was handled.
func linkError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, services.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "link not found"})
	case errors.Is(err, services.ErrLinkWrongType):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "link not valid for this operation"})
	case errors.Is(err, services.ErrLinkExpired):
		c.JSON(http.StatusGone, models.ErrorResponse{Error: "link expired"})
	case errors.Is(err, services.ErrLinkUsed):
		c.JSON(http.StatusGone, models.ErrorResponse{Error: "link already used"})
	default:
		return false
	}
	return true
}

// notFoundOr500 collapses the common lookup error split.
func notFoundOr500(c *gin.Context, err error, what string) {
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: what + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load " + what, Message: err.Error()})
}
