package services

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"listing-lift-backend/internal/mailer"
	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/storage"
)

// ValidateDelivery resolves a delivery token and builds the homeowner-facing
// gallery payload: approved photos in sort order with presigned URLs, plus the
// hero subset. Delivery links stay valid across visits until they expire.
func (s *Service) ValidateDelivery(ctx context.Context, token string) (*models.DeliveryResponse, error) {
	link, err := s.ValidateLink(ctx, token, models.LinkDelivery)
	if err != nil {
		return nil, err
	}
	sub, err := s.db.GetSubmissionWithPhotos(ctx, link.SubmissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission for delivery: %w", err)
	}

	resp := &models.DeliveryResponse{Valid: true, ExpiresAt: link.ExpiresAt}
	resp.Submission.ID = sub.ID.String()
	resp.Submission.HomeownerName = sub.HomeownerName
	resp.Submission.PropertyAddress = sub.FullAddress()
	resp.Submission.SubmissionNumber = sub.SubmissionNumber

	resp.Photos = make([]models.DeliveryPhoto, 0, len(sub.Photos))
	for i := range sub.Photos {
		p := &sub.Photos[i]
		if p.Status != models.PhotoApproved {
			continue
		}
		dp := models.DeliveryPhoto{
			ID:           p.ID.String(),
			RoomCategory: p.RoomCategory,
			SubCategory:  p.SubCategory.String,
			Caption:      p.Caption,
			IsHero:       p.IsHero,
			Orientation:  string(p.Orientation),
		}
		if url, err := s.store.PresignGet(ctx, p.OriginalURL); err == nil {
			dp.OriginalURL = url
		}
		if p.EnhancedURL.Valid {
			if url, err := s.store.PresignGet(ctx, p.EnhancedURL.String); err == nil {
				dp.EnhancedURL = url
			}
		}
		if p.HeroURL.Valid {
			if url, err := s.store.PresignGet(ctx, p.HeroURL.String); err == nil {
				dp.HeroURL = url
			}
		}
		resp.Photos = append(resp.Photos, dp)
		if dp.IsHero {
			resp.HeroPhotos = append(resp.HeroPhotos, dp)
		}
	}
	if resp.HeroPhotos == nil {
		resp.HeroPhotos = []models.DeliveryPhoto{}
	}
	return resp, nil
}

// BuildDeliveryZip streams every approved enhanced photo (and hero variants
// under cover-photos/) into a ZIP archive named after the submission. Photos
// that fail to download are skipped so one bad object never blocks delivery.
func (s *Service) BuildDeliveryZip(ctx context.Context, token string) (fileName string, data []byte, err error) {
	link, err := s.ValidateLink(ctx, token, models.LinkDelivery)
	if err != nil {
		return "", nil, err
	}
	sub, err := s.db.GetSubmissionWithPhotos(ctx, link.SubmissionID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load submission for download: %w", err)
	}

	prefix := "ListingLift-" + sub.SubmissionNumber
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	index := 0
	for i := range sub.Photos {
		p := &sub.Photos[i]
		if p.Status != models.PhotoApproved || !p.EnhancedURL.Valid {
			continue
		}
		index++
		name := storage.BuildDownloadFileName(p.RoomCategory, p.SubCategory.String, p.Caption, storage.VariantEnhanced, index)
		if err := s.addZipEntry(ctx, zw, prefix+"/"+name, p.EnhancedURL.String); err != nil {
			log.Warn().Err(err).Str("photo_id", p.ID.String()).Msg("skipping photo in delivery zip")
			continue
		}
		if p.IsHero && p.HeroURL.Valid {
			heroName := storage.BuildDownloadFileName(p.RoomCategory, p.SubCategory.String, p.Caption, storage.VariantHero, 0)
			if err := s.addZipEntry(ctx, zw, prefix+"/cover-photos/"+heroName, p.HeroURL.String); err != nil {
				log.Warn().Err(err).Str("photo_id", p.ID.String()).Msg("skipping hero in delivery zip")
			}
		}
	}
	if err := zw.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to finalize delivery zip: %w", err)
	}
	return prefix + ".zip", buf.Bytes(), nil
}

func (s *Service) addZipEntry(ctx context.Context, zw *zip.Writer, name, key string) error {
	raw, err := s.store.Download(ctx, key)
	if err != nil {
		return err
	}
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}

// DeliveryFeedback records the homeowner's verdict on the delivered set.
// "Approved" closes the review loop; "Changes Requested" alerts the admin
// with the homeowner's notes. Submitting feedback is the delivery link's
// consuming action; viewing and downloading never mark it used.
func (s *Service) DeliveryFeedback(ctx context.Context, token, status, notes string) error {
	link, err := s.ValidateLink(ctx, token, models.LinkDelivery)
	if err != nil {
		return err
	}
	sub, err := s.db.GetSubmission(ctx, link.SubmissionID)
	if err != nil {
		return fmt.Errorf("failed to load submission for feedback: %w", err)
	}

	approved := status == "Approved"
	if err := s.db.SetClientFeedback(ctx, sub.ID, status, notes, approved); err != nil {
		return fmt.Errorf("failed to save client feedback: %w", err)
	}
	if err := s.db.MarkLinkUsed(ctx, token); err != nil {
		log.Error().Err(err).Str("token", token).Msg("failed to mark delivery link used")
	}

	if status == "Changes Requested" {
		body, err := mailer.ClientFeedbackEmail(mailer.ClientFeedbackData{
			SubmissionNumber: sub.SubmissionNumber,
			HomeownerName:    sub.HomeownerName,
			Notes:            notes,
			DashboardURL:     fmt.Sprintf("%s/admin/submissions/%s", s.baseURL, sub.ID),
		})
		if err == nil {
			err = s.mail.SendToAdmin(ctx, fmt.Sprintf("Client Feedback - #%s", sub.SubmissionNumber), body)
		}
		if err != nil {
			log.Error().Err(err).Str("submission_id", sub.ID.String()).Msg("failed to send client feedback email")
		}
	}
	return nil
}
