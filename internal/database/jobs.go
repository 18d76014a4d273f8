package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"listing-lift-backend/internal/models"
)

// EnqueueJob persists a unit of background work. The runner drains the table;
// rows survive process restarts, unlike a fired-and-forgotten goroutine.
func (q *queries) EnqueueJob(ctx context.Context, kind string, payload []byte) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO jobs (kind, payload) VALUES ($1, $2) RETURNING id`,
		kind, payload).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue %s job: %w", kind, err)
	}
	return id, nil
}

// ClaimNextJob atomically takes the oldest claimable job. SKIP LOCKED lets
// multiple runner instances share the table without double-claiming. A job
// stuck in running past the stale threshold belonged to a crashed process
// and is claimed again rather than dropped.
func (q *queries) ClaimNextJob(ctx context.Context) (*models.Job, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE jobs SET status = 'running', attempts = attempts + 1, updated_at = NOW()
		WHERE id = (
			SELECT id FROM jobs
			WHERE status = 'pending'
			   OR (status = 'running' AND updated_at < NOW() - INTERVAL '10 minutes')
			ORDER BY id ASC
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING id, kind, payload, status, attempts, last_error, created_at, updated_at`)

	var j models.Job
	err := row.Scan(&j.ID, &j.Kind, &j.Payload, &j.Status, &j.Attempts, &j.LastError, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}
	return &j, nil
}

func (q *queries) CompleteJob(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE jobs SET status = 'done', updated_at = NOW() WHERE id = $1`, id)
	return err
}

// FailJob records the error; jobs under the attempt cap go back to pending
// for a retry, the rest land in failed for operator attention.
func (q *queries) FailJob(ctx context.Context, id int64, jobErr string, maxAttempts int) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE jobs
		SET status = CASE WHEN attempts >= $1 THEN 'failed' ELSE 'pending' END,
			last_error = $2, updated_at = NOW()
		WHERE id = $3`,
		maxAttempts, jobErr, id)
	return err
}
