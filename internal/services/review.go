package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/mailer"
	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/storage"
)

var (
	// ErrAlreadyDelivered guards CompleteReview against double submission:
	// once a submission is delivered (or client approved), completing review
	// again is a no-op error instead of a second delivery email.
	ErrAlreadyDelivered = errors.New("review already completed for this submission")

	ErrNoApprovedPhotos = errors.New("at least one photo must be approved before completing review")
)

// ErrUnreviewedPhotos reports which photos still need a review decision.
type ErrUnreviewedPhotos struct {
	Photos []models.Photo
}

func (e *ErrUnreviewedPhotos) Error() string {
	return fmt.Sprintf("%d photo(s) still need review", len(e.Photos))
}

// reviewTx is the transactional surface the review gate mutates. *database.Tx
// satisfies it.
type reviewTx interface {
	GetSubmissionWithPhotos(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	ExpireUnusedRetakeLinks(ctx context.Context, submissionID uuid.UUID) (int64, error)
	CreateMagicLink(ctx context.Context, l *models.MagicLink) error
	MarkRetakesSent(ctx context.Context, id uuid.UUID, round int, at time.Time) error
	MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error
	SetHeroURL(ctx context.Context, id uuid.UUID, heroKey string) error
}

// CompleteReview closes out the admin review cycle for a submission. If any
// photo was marked for re-upload it opens a retake round; otherwise it
// delivers the approved set. The decision runs inside a submission row lock
// so two concurrent completions cannot both act, and a terminal review
// status rejects repeats. Emails go out after the transaction commits so a
// rollback never follows a sent email.
func (s *Service) CompleteReview(ctx context.Context, submissionID uuid.UUID) (*models.ReviewOutcome, error) {
	var outcome *models.ReviewOutcome
	var email func()

	err := s.db.WithSubmissionLock(ctx, submissionID, func(tx *database.Tx) error {
		var err error
		outcome, email, err = s.completeReviewLocked(ctx, tx, submissionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	email()
	return outcome, nil
}

func (s *Service) completeReviewLocked(ctx context.Context, tx reviewTx, submissionID uuid.UUID) (*models.ReviewOutcome, func(), error) {
	sub, err := tx.GetSubmissionWithPhotos(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	if sub.ReviewStatus.Terminal() {
		return nil, nil, ErrAlreadyDelivered
	}

	var approved, rejected, retakes, unreviewed []models.Photo
	for _, p := range sub.Photos {
		switch p.Status {
		case models.PhotoApproved:
			approved = append(approved, p)
		case models.PhotoRejected:
			rejected = append(rejected, p)
		case models.PhotoReuploadRequested:
			retakes = append(retakes, p)
		default:
			unreviewed = append(unreviewed, p)
		}
	}

	if len(unreviewed) > 0 {
		return nil, nil, &ErrUnreviewedPhotos{Photos: unreviewed}
	}
	if len(approved) == 0 {
		return nil, nil, ErrNoApprovedPhotos
	}

	if len(retakes) > 0 {
		return s.startRetakeRound(ctx, tx, sub, approved, rejected, retakes)
	}
	return s.deliver(ctx, tx, sub, approved, rejected)
}

// startRetakeRound expires earlier retake links, issues a fresh 30-day one,
// and moves the submission into retakes_pending.
func (s *Service) startRetakeRound(ctx context.Context, tx reviewTx, sub *models.Submission, approved, rejected, retakes []models.Photo) (*models.ReviewOutcome, func(), error) {
	if _, err := tx.ExpireUnusedRetakeLinks(ctx, sub.ID); err != nil {
		return nil, nil, err
	}

	link, err := s.IssueLink(ctx, tx, sub.ID, models.LinkRetakeBatch)
	if err != nil {
		return nil, nil, err
	}

	round := sub.RetakeRound + 1
	if err := tx.MarkRetakesSent(ctx, sub.ID, round, time.Now()); err != nil {
		return nil, nil, err
	}

	outcome := &models.ReviewOutcome{
		Outcome:       "retakes_sent",
		ApprovedCount: len(approved),
		RejectedCount: len(rejected),
		RetakeCount:   len(retakes),
		Round:         round,
	}

	magicURL := s.LinkURL(link)
	email := func() {
		s.sendRetakesRequiredEmail(ctx, sub, approved, rejected, retakes, magicURL, round)
	}
	return outcome, email, nil
}

// deliver generates any missing hero cuts, issues the delivery link, and
// completes the submission. Delivered photo sets are kept 21 days before the
// retention job may remove them.
func (s *Service) deliver(ctx context.Context, tx reviewTx, sub *models.Submission, approved, rejected []models.Photo) (*models.ReviewOutcome, func(), error) {
	heroCount := 0
	for i := range approved {
		p := &approved[i]
		if !p.IsHero {
			continue
		}
		heroCount++
		if p.HeroURL.Valid && p.HeroURL.String != "" {
			continue
		}
		if !p.EnhancedURL.Valid || p.EnhancedURL.String == "" {
			continue
		}
		// Hero generation is best effort; delivery proceeds without it.
		if err := s.generateHeroInTx(ctx, tx, p); err != nil {
			log.Error().Err(err).Str("photo_id", p.ID.String()).Msg("failed to generate hero during delivery")
		}
	}

	link, err := s.IssueLink(ctx, tx, sub.ID, models.LinkDelivery)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.MarkDelivered(ctx, sub.ID, time.Now()); err != nil {
		return nil, nil, err
	}

	outcome := &models.ReviewOutcome{
		Outcome:       "delivered",
		ApprovedCount: len(approved),
		RejectedCount: len(rejected),
		HeroCount:     heroCount,
	}

	deliveryURL := s.LinkURL(link)
	downloadURL := s.baseURL + "/api/delivery/download?token=" + link.Token
	email := func() {
		s.sendPhotosReadyEmail(ctx, sub, len(approved), heroCount, deliveryURL, downloadURL)
	}
	return outcome, email, nil
}

func (s *Service) generateHeroInTx(ctx context.Context, tx reviewTx, photo *models.Photo) error {
	raw, err := s.store.Download(ctx, photo.EnhancedURL.String)
	if err != nil {
		return err
	}
	hero, err := storage.ResizeToListing(raw, string(photo.Orientation), true)
	if err != nil {
		return err
	}
	heroKey, err := s.store.UploadEnhanced(ctx, hero, fmt.Sprintf("hero-%s.jpg", photo.ID), "image/jpeg")
	if err != nil {
		return err
	}
	return tx.SetHeroURL(ctx, photo.ID, heroKey)
}

func (s *Service) sendRetakesRequiredEmail(ctx context.Context, sub *models.Submission, approved, rejected, retakes []models.Photo, magicURL string, round int) {
	retakeItems := make([]mailer.RetakePhotoItem, 0, len(retakes))
	for _, p := range retakes {
		retakeItems = append(retakeItems, mailer.RetakePhotoItem{
			Room:         p.RoomKey(),
			Caption:      p.Caption,
			Instructions: p.ReuploadInstructions.String,
		})
	}
	rejectedItems := make([]mailer.RejectedPhotoItem, 0, len(rejected))
	for _, p := range rejected {
		rejectedItems = append(rejectedItems, mailer.RejectedPhotoItem{
			Room:    p.RoomKey(),
			Caption: p.Caption,
			Reason:  p.RejectionReason.String,
		})
	}

	body, err := mailer.RetakesRequiredEmail(mailer.RetakesRequiredData{
		Name:             sub.HomeownerName,
		SubmissionNumber: sub.SubmissionNumber,
		PropertyAddress:  sub.FullAddress(),
		ApprovedCount:    len(approved),
		RetakePhotos:     retakeItems,
		RejectedPhotos:   rejectedItems,
		MagicLink:        magicURL,
		Round:            round,
	})
	if err == nil {
		plural := ""
		if len(retakes) > 1 {
			plural = "s"
		}
		roundSuffix := ""
		if round > 1 {
			roundSuffix = fmt.Sprintf(" (Round %d)", round)
		}
		subject := fmt.Sprintf("Your Listing Lift Photos - %d Retake%s Needed%s", len(retakes), plural, roundSuffix)
		err = s.mail.Send(ctx, sub.Email, subject, body)
	}
	if err != nil {
		log.Error().Err(err).Str("submission", sub.SubmissionNumber).Msg("failed to send retakes email")
	}
}

func (s *Service) sendPhotosReadyEmail(ctx context.Context, sub *models.Submission, approvedCount, heroCount int, deliveryURL, downloadURL string) {
	body, err := mailer.PhotosReadyEmail(mailer.PhotosReadyData{
		Name:             sub.HomeownerName,
		SubmissionNumber: sub.SubmissionNumber,
		PropertyAddress:  sub.FullAddress(),
		ApprovedCount:    approvedCount,
		HeroCount:        heroCount,
		DeliveryLink:     deliveryURL,
		DownloadLink:     downloadURL,
	})
	if err == nil {
		subject := fmt.Sprintf("Your Enhanced Listing Photos Are Ready! | #%s", sub.SubmissionNumber)
		err = s.mail.Send(ctx, sub.Email, subject, body)
	}
	if err != nil {
		log.Error().Err(err).Str("submission", sub.SubmissionNumber).Msg("failed to send delivery email")
	}
}
