package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"listing-lift-backend/internal/enhance"
	"listing-lift-backend/internal/mailer"
	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/storage"
)

// EnhanceResult reports one successful enhancement run.
type EnhanceResult struct {
	EnhancedKey   string
	HeroKey       string
	VersionNumber int
	Model         string
}

// EnhancePhoto runs one manual enhancement: builds the prompt, calls the
// image model, resizes, stores, and records a new version. The photo sits in
// Enhancing for the duration; any failure rolls the status back to what it
// was before the run.
func (s *Service) EnhancePhoto(ctx context.Context, photoID uuid.UUID, req *models.EnhancePhotoRequest) (*EnhanceResult, error) {
	photo, err := s.db.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}

	model := enhance.SanitizeModel(req.Model)
	intensity := req.Intensity
	if _, err := models.ParseIntensity(intensity); err != nil {
		intensity = string(models.IntensityModerate)
	}
	presetIDs := enhance.ValidPresetIDs(req.PresetIDs)

	prompt := strings.TrimSpace(req.CustomPrompt)
	if prompt == "" {
		prompt = enhance.RoomPrompt(photo.RoomKey(), photo.RoomCategory)
		prompt += enhance.IntensityModifier(intensity)
		prompt += enhance.BuildPresetPromptText(presetIDs)
		if req.AdditionalNotes != "" {
			prompt += "\n\nADMIN NOTES:\n" + req.AdditionalNotes
		}
	}

	priorStatus := photo.Status
	if err := s.db.UpdatePhotoStatus(ctx, photo.ID, models.PhotoEnhancing); err != nil {
		return nil, err
	}

	result, err := s.runEnhancement(ctx, photo, model, prompt, photo.IsHero)
	if err != nil {
		// Roll back so the photo does not stick in Enhancing.
		if rbErr := s.db.UpdatePhotoStatus(ctx, photo.ID, priorStatus); rbErr != nil {
			log.Error().Err(rbErr).Str("photo_id", photo.ID.String()).Msg("failed to roll back photo status")
		}
		return nil, err
	}

	version := &models.EnhancementVersion{
		PhotoID:         photo.ID,
		EnhancedURL:     result.EnhancedKey,
		Intensity:       models.Intensity(intensity),
		Model:           model,
		PresetIDs:       presetIDs,
		AdditionalNotes: nullString(req.AdditionalNotes),
	}
	if err := s.db.RecordVersion(ctx, version); err != nil {
		return nil, err
	}
	result.VersionNumber = version.VersionNumber

	if err := s.db.SetEnhancedResult(ctx, photo.ID, result.EnhancedKey, result.HeroKey); err != nil {
		return nil, err
	}
	return result, nil
}

// runEnhancement performs the model call and the resize/store pipeline. It
// does not touch photo status; callers own the state machine.
func (s *Service) runEnhancement(ctx context.Context, photo *models.Photo, model, prompt string, withHero bool) (*EnhanceResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.enhanceTimeout)
	defer cancel()

	originalURL, err := s.store.PresignGet(callCtx, photo.OriginalURL)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.engine.Edit(callCtx, enhance.EditRequest{
		Model:       model,
		ImageURL:    originalURL,
		Prompt:      prompt,
		Orientation: string(photo.Orientation),
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.engine.Download(callCtx, imageURL)
	if err != nil {
		return nil, err
	}

	standard, err := storage.ResizeToListing(raw, string(photo.Orientation), false)
	if err != nil {
		return nil, err
	}
	enhancedKey, err := s.store.UploadEnhanced(ctx, standard, fmt.Sprintf("enhanced-%s.jpg", photo.ID), "image/jpeg")
	if err != nil {
		return nil, err
	}

	result := &EnhanceResult{EnhancedKey: enhancedKey, Model: model}

	if withHero {
		hero, err := storage.ResizeToListing(raw, string(photo.Orientation), true)
		if err != nil {
			return nil, err
		}
		heroKey, err := s.store.UploadEnhanced(ctx, hero, fmt.Sprintf("hero-%s.jpg", photo.ID), "image/jpeg")
		if err != nil {
			return nil, err
		}
		result.HeroKey = heroKey
	}

	return result, nil
}

// RunAutoEnhance processes every not-yet-enhanced photo in a submission,
// strictly one at a time with a fixed delay between photos to stay under the
// image API's rate limits. Per-photo failures are counted, never fatal, so a
// bad photo cannot strand the rest of the batch. Finishes by flipping the
// submission to In Progress and mailing the admin a summary.
func (s *Service) RunAutoEnhance(ctx context.Context, submissionID uuid.UUID) (*models.BatchRunSummary, error) {
	sub, err := s.db.GetSubmissionWithPhotos(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	settings, err := s.db.ListRoomSettings(ctx)
	if err != nil {
		return nil, err
	}
	settingsByRoom := make(map[string]*models.RoomEnhancementSettings, len(settings))
	for i := range settings {
		settingsByRoom[settings[i].RoomKey] = &settings[i]
	}

	summary := &models.BatchRunSummary{Total: len(sub.Photos)}
	for i := range sub.Photos {
		photo := &sub.Photos[i]
		if photo.EnhancedURL.Valid && photo.EnhancedURL.String != "" {
			log.Debug().Str("photo_id", photo.ID.String()).Msg("photo already enhanced, skipping")
			continue
		}

		if err := s.autoEnhanceOne(ctx, photo, settingsByRoom); err != nil {
			log.Error().Err(err).Str("photo_id", photo.ID.String()).Str("room", photo.RoomKey()).
				Msg("auto-enhance failed for photo")
			summary.Errors++
		} else {
			summary.Success++
		}

		if i < len(sub.Photos)-1 {
			select {
			case <-time.After(s.photoDelay):
			case <-ctx.Done():
				return summary, ctx.Err()
			}
		}
	}

	if err := s.db.UpdateSubmissionStatus(ctx, sub.ID, models.SubmissionInProgress); err != nil {
		log.Error().Err(err).Str("submission", sub.SubmissionNumber).Msg("failed to mark submission in progress")
	}

	s.sendAutoEnhanceSummary(ctx, sub, summary)
	summary.Status = "completed"
	return summary, nil
}

func (s *Service) autoEnhanceOne(ctx context.Context, photo *models.Photo, settingsByRoom map[string]*models.RoomEnhancementSettings) error {
	roomSettings := settingsByRoom[photo.RoomKey()]
	if roomSettings == nil {
		roomSettings = settingsByRoom[photo.RoomCategory]
	}

	model := enhance.DefaultModelID
	intensity := string(models.IntensityModerate)
	var prompt string
	var presetIDs []string

	if roomSettings != nil {
		if roomSettings.DefaultModel != "" {
			model = enhance.SanitizeModel(roomSettings.DefaultModel)
		}
		if roomSettings.DefaultIntensity != "" {
			intensity = string(roomSettings.DefaultIntensity)
		}
		if roomSettings.CustomPrompt.Valid && roomSettings.CustomPrompt.String != "" {
			prompt = roomSettings.CustomPrompt.String
		}
		presetIDs = enhance.ValidPresetIDs(roomSettings.PresetIDs)
	}
	if prompt == "" {
		prompt = enhance.RoomPrompt(photo.RoomKey(), photo.RoomCategory)
	}
	prompt += enhance.IntensityModifier(intensity)
	prompt += enhance.BuildPresetPromptText(presetIDs)

	priorStatus := photo.Status
	if err := s.db.UpdatePhotoStatus(ctx, photo.ID, models.PhotoEnhancing); err != nil {
		return err
	}

	result, err := s.runEnhancement(ctx, photo, model, prompt, false)
	if err != nil {
		if rbErr := s.db.UpdatePhotoStatus(ctx, photo.ID, priorStatus); rbErr != nil {
			log.Error().Err(rbErr).Str("photo_id", photo.ID.String()).Msg("failed to roll back photo status")
		}
		return err
	}

	version := &models.EnhancementVersion{
		PhotoID:         photo.ID,
		EnhancedURL:     result.EnhancedKey,
		Intensity:       models.Intensity(intensity),
		Model:           model,
		PresetIDs:       presetIDs,
		AdditionalNotes: sql.NullString{String: "Auto-enhanced on submission", Valid: true},
	}
	if err := s.db.RecordVersion(ctx, version); err != nil {
		return err
	}
	return s.db.SetEnhancedResult(ctx, photo.ID, result.EnhancedKey, "")
}

func (s *Service) sendAutoEnhanceSummary(ctx context.Context, sub *models.Submission, summary *models.BatchRunSummary) {
	body, err := mailer.AutoEnhanceCompleteEmail(mailer.AutoEnhanceCompleteData{
		SubmissionNumber: sub.SubmissionNumber,
		HomeownerName:    sub.HomeownerName,
		PropertyAddress:  sub.FullAddress(),
		TotalPhotos:      summary.Total,
		SuccessCount:     summary.Success,
		ErrorCount:       summary.Errors,
		DashboardURL:     s.dashboardURL(),
	})
	if err == nil {
		subject := fmt.Sprintf("Enhancements Ready - #%s (%d/%d photos)", sub.SubmissionNumber, summary.Success, summary.Total)
		err = s.mail.SendToAdmin(ctx, subject, body)
	}
	if err != nil {
		log.Error().Err(err).Str("submission", sub.SubmissionNumber).Msg("failed to send auto-enhance summary email")
	}
}

// UseVersion repoints a photo's current enhanced image at a prior version
// from its history.
func (s *Service) UseVersion(ctx context.Context, photoID, versionID uuid.UUID) (*models.EnhancementVersion, error) {
	version, err := s.db.GetVersion(ctx, versionID)
	if err != nil {
		return nil, err
	}
	if version.PhotoID != photoID {
		return nil, errors.New("version does not belong to this photo")
	}
	if err := s.db.SetEnhancedResult(ctx, photoID, version.EnhancedURL, ""); err != nil {
		return nil, err
	}
	return version, nil
}

// QueueHeroGeneration enqueues an async hero cut for a photo that needs one.
// Best effort: the hero flag sticks even if the job cannot be queued.
func (s *Service) QueueHeroGeneration(ctx context.Context, photo *models.Photo) {
	if !photo.NeedsHero() {
		return
	}
	payload, err := json.Marshal(map[string]string{"photo_id": photo.ID.String()})
	if err == nil {
		_, err = s.db.EnqueueJob(ctx, models.JobKindGenerateHero, payload)
	}
	if err != nil {
		log.Error().Err(err).Str("photo_id", photo.ID.String()).Msg("failed to enqueue hero generation")
	}
}

// GenerateHero renders the high-resolution hero cut from a photo's current
// enhanced image. No model call happens; this is resize and store only.
func (s *Service) GenerateHero(ctx context.Context, photoID uuid.UUID) (string, error) {
	photo, err := s.db.GetPhoto(ctx, photoID)
	if err != nil {
		return "", err
	}
	if !photo.EnhancedURL.Valid || photo.EnhancedURL.String == "" {
		return "", errors.New("photo has no enhanced image to generate a hero from")
	}

	raw, err := s.store.Download(ctx, photo.EnhancedURL.String)
	if err != nil {
		return "", err
	}
	hero, err := storage.ResizeToListing(raw, string(photo.Orientation), true)
	if err != nil {
		return "", err
	}
	heroKey, err := s.store.UploadEnhanced(ctx, hero, fmt.Sprintf("hero-%s.jpg", photo.ID), "image/jpeg")
	if err != nil {
		return "", err
	}
	if err := s.db.SetHeroURL(ctx, photo.ID, heroKey); err != nil {
		return "", err
	}
	return heroKey, nil
}

// CleanupStaleURLs resets photos and versions whose stored locations are raw
// external URLs. Those rows predate the download-and-re-store step and their
// upstream URLs have long expired.
func (s *Service) CleanupStaleURLs(ctx context.Context) (*models.CleanupResponse, error) {
	photosCleared, err := s.db.ClearExternalEnhancedURLs(ctx)
	if err != nil {
		return nil, err
	}
	heroCleared, err := s.db.ClearExternalHeroURLs(ctx)
	if err != nil {
		return nil, err
	}
	versionsDeleted, err := s.db.DeleteExternalVersions(ctx)
	if err != nil {
		return nil, err
	}
	return &models.CleanupResponse{
		PhotosCleared:   photosCleared,
		VersionsDeleted: versionsDeleted,
		HeroURLsCleared: heroCleared,
		Message:         "stale external URLs cleared; affected photos reset to Pending",
	}, nil
}
