package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"listing-lift-backend/internal/mailer"
	"listing-lift-backend/internal/models"
)

var ErrPhotoNotInSubmission = errors.New("photo does not belong to this submission")

// RetakeUploadURL validates the retake link and presigns a PUT for one
// replacement photo.
func (s *Service) RetakeUploadURL(ctx context.Context, token string, photoID uuid.UUID, fileName, contentType string) (uploadURL, storageKey string, err error) {
	link, err := s.ValidateLink(ctx, token, models.LinkRetakeBatch)
	if err != nil {
		return "", "", err
	}
	if _, err := s.db.GetPhotoInSubmission(ctx, photoID, link.SubmissionID); err != nil {
		return "", "", ErrPhotoNotInSubmission
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return s.store.PresignUpload(ctx, fileName, contentType)
}

// SaveRetakePhoto attaches one uploaded replacement to a photo awaiting
// re-upload. The photo restarts its cycle at Pending with stale enhanced
// assets cleared. Homeowners can save photos across visits; the link is not
// consumed here.
func (s *Service) SaveRetakePhoto(ctx context.Context, token string, photoID uuid.UUID, storageKey string) error {
	link, err := s.ValidateLink(ctx, token, models.LinkRetakeBatch)
	if err != nil {
		return err
	}
	if _, err := s.db.GetPhotoInSubmission(ctx, photoID, link.SubmissionID); err != nil {
		return ErrPhotoNotInSubmission
	}
	return s.db.ApplyReupload(ctx, photoID, storageKey)
}

// SubmitRetakes closes out a homeowner's retake session: notifies the admin
// of progress and, once every requested retake has been uploaded, queues
// auto-enhancement for the fresh originals.
func (s *Service) SubmitRetakes(ctx context.Context, token string) (*models.RetakeSubmitResponse, error) {
	link, err := s.ValidateLink(ctx, token, models.LinkRetakeBatch)
	if err != nil {
		return nil, err
	}

	sub, err := s.db.GetSubmissionWithPhotos(ctx, link.SubmissionID)
	if err != nil {
		return nil, err
	}

	stillNeeded := 0
	uploaded := 0
	for _, p := range sub.Photos {
		switch p.Status {
		case models.PhotoReuploadRequested:
			stillNeeded++
		case models.PhotoPending:
			uploaded++
		}
	}

	s.sendRetakesReceivedEmail(ctx, sub, uploaded, uploaded+stillNeeded)

	if stillNeeded == 0 {
		payload, err := json.Marshal(map[string]string{"submission_id": sub.ID.String()})
		if err == nil {
			_, err = s.db.EnqueueJob(ctx, models.JobKindAutoEnhance, payload)
		}
		if err != nil {
			log.Error().Err(err).Str("submission", sub.SubmissionNumber).Msg("failed to enqueue auto-enhance after retakes")
		}
	}

	return &models.RetakeSubmitResponse{
		AllComplete: stillNeeded == 0,
		StillNeeded: stillNeeded,
	}, nil
}

func (s *Service) sendRetakesReceivedEmail(ctx context.Context, sub *models.Submission, uploaded, total int) {
	body, err := mailer.RetakesReceivedEmail(mailer.RetakesReceivedData{
		SubmissionNumber: sub.SubmissionNumber,
		HomeownerName:    sub.HomeownerName,
		PropertyAddress:  sub.FullAddress(),
		UploadedCount:    uploaded,
		TotalRetakes:     total,
		DashboardURL:     s.dashboardURL(),
	})
	if err == nil {
		err = s.mail.SendToAdmin(ctx, fmt.Sprintf("Retakes Received - #%s", sub.SubmissionNumber), body)
	}
	if err != nil {
		log.Error().Err(err).Str("submission", sub.SubmissionNumber).Msg("failed to send retakes-received email")
	}
}

// RetakePhotos lists the photos a retake link's page should show: the ones
// still awaiting re-upload.
func (s *Service) RetakePhotos(ctx context.Context, token string) (*models.MagicLink, *models.Submission, []models.Photo, error) {
	return s.linkPhotos(ctx, token, models.LinkRetakeBatch)
}

// ReuploadPhotos serves the ad hoc single-use reupload link page.
func (s *Service) ReuploadPhotos(ctx context.Context, token string) (*models.MagicLink, *models.Submission, []models.Photo, error) {
	return s.linkPhotos(ctx, token, models.LinkReupload)
}

func (s *Service) linkPhotos(ctx context.Context, token string, linkType models.LinkType) (*models.MagicLink, *models.Submission, []models.Photo, error) {
	link, err := s.ValidateLink(ctx, token, linkType)
	if err != nil {
		return nil, nil, nil, err
	}
	sub, err := s.db.GetSubmission(ctx, link.SubmissionID)
	if err != nil {
		return nil, nil, nil, err
	}
	photos, err := s.db.ListPhotosByStatus(ctx, link.SubmissionID, models.PhotoReuploadRequested)
	if err != nil {
		return nil, nil, nil, err
	}
	return link, sub, photos, nil
}

// ConsumeReuploadLink marks a single-use reupload link used once its upload
// session has completed.
func (s *Service) ConsumeReuploadLink(ctx context.Context, token string) error {
	if _, err := s.ValidateLink(ctx, token, models.LinkReupload); err != nil {
		return err
	}
	return s.db.MarkLinkUsed(ctx, token)
}
