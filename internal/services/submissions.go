package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/enhance"
	"listing-lift-backend/internal/mailer"
	"listing-lift-backend/internal/models"
)

var (
	ErrNoPhotos       = errors.New("at least one photo is required")
	ErrTooManyPhotos  = errors.New("a submission can hold at most 60 photos")
	ErrRoomLimit      = errors.New("room photo limit exceeded")
	ErrUnknownRoomKey = errors.New("unknown room category")
)

const maxSubmissionPhotos = 60

// generateSubmissionNumber builds a number like 2026-0831-042: date plus a
// random 3-digit suffix. Collisions within a day are possible; the unique
// index catches them and CreateIntake retries with a new suffix.
func generateSubmissionNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("failed to generate submission number: %w", err)
	}
	return fmt.Sprintf("%s-%03d", now.Format("2006-0102"), n.Int64()), nil
}

// validatePhotos enforces the intake limits: 1-60 photos overall and the
// per-room caps keyed by sub-category when one is chosen.
func validatePhotos(photos []models.PhotoIn) error {
	if len(photos) == 0 {
		return ErrNoPhotos
	}
	if len(photos) > maxSubmissionPhotos {
		return ErrTooManyPhotos
	}

	perRoom := make(map[string]int)
	for _, p := range photos {
		key := p.RoomCategory
		if p.SubCategory != "" {
			key = p.SubCategory
		}
		limit, ok := enhance.RoomPhotoLimits[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRoomKey, key)
		}
		perRoom[key]++
		if perRoom[key] > limit {
			return fmt.Errorf("%w: %q allows at most %d photos", ErrRoomLimit, key, limit)
		}
	}
	return nil
}

// CreateIntake persists a new homeowner submission, queues auto-enhancement,
// and sends the confirmation and admin alert emails.
func (s *Service) CreateIntake(ctx context.Context, req *models.CreateSubmissionRequest) (*models.Submission, error) {
	if err := validatePhotos(req.Photos); err != nil {
		return nil, err
	}

	sub := &models.Submission{
		HomeownerName:   req.HomeownerName,
		Email:           req.Email,
		Phone:           req.Phone,
		PropertyAddress: req.PropertyAddress,
		City:            nullString(req.City),
		ProvinceState:   nullString(req.ProvinceState),
		PostalZip:       nullString(req.PostalZip),
		Notes:           nullString(req.Notes),
		Status:          models.SubmissionNew,
	}
	for i, p := range req.Photos {
		sub.Photos = append(sub.Photos, models.Photo{
			RoomCategory: p.RoomCategory,
			SubCategory:  nullString(p.SubCategory),
			Caption:      p.Caption,
			OriginalURL:  p.OriginalURL,
			Status:       models.PhotoPending,
			Orientation:  models.ParseOrientation(p.Orientation),
			SortOrder:    i,
		})
	}

	// The random suffix can collide within a day; retry against the unique
	// index up to three times.
	var created *models.Submission
	for attempt := 0; attempt < 3; attempt++ {
		number, err := generateSubmissionNumber(time.Now())
		if err != nil {
			return nil, err
		}
		sub.SubmissionNumber = number

		created, err = s.db.CreateSubmission(ctx, sub)
		if err == nil {
			break
		}
		if database.IsUniqueViolation(err) && attempt < 2 {
			continue
		}
		return nil, err
	}

	if err := s.enqueueAutoEnhance(ctx, created.ID); err != nil {
		log.Error().Err(err).Str("submission_id", created.ID.String()).Msg("failed to enqueue auto-enhance job")
	}

	s.sendIntakeEmails(ctx, created)
	return created, nil
}

func (s *Service) enqueueAutoEnhance(ctx context.Context, submissionID uuid.UUID) error {
	payload, err := json.Marshal(map[string]string{"submission_id": submissionID.String()})
	if err != nil {
		return err
	}
	_, err = s.db.EnqueueJob(ctx, models.JobKindAutoEnhance, payload)
	return err
}

// sendIntakeEmails is best effort; a mail failure never fails the intake.
func (s *Service) sendIntakeEmails(ctx context.Context, sub *models.Submission) {
	body, err := mailer.ConfirmationEmail(mailer.ConfirmationData{
		Name:             sub.HomeownerName,
		SubmissionNumber: sub.SubmissionNumber,
		PropertyAddress:  sub.FullAddress(),
		PhotoCount:       len(sub.Photos),
	})
	if err == nil {
		err = s.mail.Send(ctx, sub.Email, fmt.Sprintf("Submission Received - #%s", sub.SubmissionNumber), body)
	}
	if err != nil {
		log.Error().Err(err).Str("submission", sub.SubmissionNumber).Msg("failed to send confirmation email")
	}

	body, err = mailer.AdminAlertEmail(mailer.AdminAlertData{
		SubmissionNumber: sub.SubmissionNumber,
		HomeownerName:    sub.HomeownerName,
		Email:            sub.Email,
		PropertyAddress:  sub.FullAddress(),
		PhotoCount:       len(sub.Photos),
		DashboardURL:     s.dashboardURL(),
	})
	if err == nil {
		err = s.mail.SendToAdmin(ctx, fmt.Sprintf("New Photo Submission - #%s", sub.SubmissionNumber), body)
	}
	if err != nil {
		log.Error().Err(err).Str("submission", sub.SubmissionNumber).Msg("failed to send admin alert email")
	}
}
