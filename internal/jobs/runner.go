package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/models"
	"listing-lift-backend/internal/services"
)

// Runner drains the jobs table in a single loop. Claims use row locks with
// SKIP LOCKED, so multiple server instances can run a Runner each without
// processing the same job twice.
type Runner struct {
	db          *database.Client
	svc         *services.Service
	poll        time.Duration
	maxAttempts int
}

func NewRunner(db *database.Client, svc *services.Service, poll time.Duration, maxAttempts int) *Runner {
	return &Runner{db: db, svc: svc, poll: poll, maxAttempts: maxAttempts}
}

// Run polls for pending jobs until ctx is cancelled. An empty queue backs off
// for the poll interval; after a claimed job it immediately claims again.
func (r *Runner) Run(ctx context.Context) {
	log.Info().Dur("poll_interval", r.poll).Msg("job runner started")
	for {
		job, err := r.db.ClaimNextJob(ctx)
		if err != nil {
			if !errors.Is(err, database.ErrNotFound) && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("failed to claim job")
			}
			select {
			case <-time.After(r.poll):
				continue
			case <-ctx.Done():
				log.Info().Msg("job runner stopped")
				return
			}
		}

		r.process(ctx, job)

		select {
		case <-ctx.Done():
			log.Info().Msg("job runner stopped")
			return
		default:
		}
	}
}

func (r *Runner) process(ctx context.Context, job *models.Job) {
	logger := log.With().Int64("job_id", job.ID).Str("kind", job.Kind).Int("attempt", job.Attempts).Logger()
	logger.Info().Msg("processing job")

	if err := r.dispatch(ctx, job); err != nil {
		logger.Error().Err(err).Msg("job failed")
		if failErr := r.db.FailJob(ctx, job.ID, err.Error(), r.maxAttempts); failErr != nil {
			logger.Error().Err(failErr).Msg("failed to record job failure")
		}
		return
	}
	if err := r.db.CompleteJob(ctx, job.ID); err != nil {
		logger.Error().Err(err).Msg("failed to mark job done")
		return
	}
	logger.Info().Msg("job done")
}

func (r *Runner) dispatch(ctx context.Context, job *models.Job) error {
	switch job.Kind {
	case models.JobKindAutoEnhance:
		var p autoEnhancePayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return fmt.Errorf("failed to decode auto-enhance payload: %w", err)
		}
		id, err := uuid.Parse(p.SubmissionID)
		if err != nil {
			return fmt.Errorf("invalid submission id in payload: %w", err)
		}
		_, err = r.svc.RunAutoEnhance(ctx, id)
		return err
	case models.JobKindGenerateHero:
		var p generateHeroPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return fmt.Errorf("failed to decode hero payload: %w", err)
		}
		id, err := uuid.Parse(p.PhotoID)
		if err != nil {
			return fmt.Errorf("invalid photo id in payload: %w", err)
		}
		_, err = r.svc.GenerateHero(ctx, id)
		return err
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

type autoEnhancePayload struct {
	SubmissionID string `json:"submission_id"`
}

type generateHeroPayload struct {
	PhotoID string `json:"photo_id"`
}
