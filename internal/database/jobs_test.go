package database

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The claim query must pick up pending jobs and reclaim running jobs whose
// runner died mid-flight, so a crash never silently drops queued work.
const claimPattern = `UPDATE jobs SET status = 'running', attempts = attempts \+ 1, updated_at = NOW\(\) ` +
	`WHERE id = \( SELECT id FROM jobs WHERE status = 'pending' ` +
	`OR \(status = 'running' AND updated_at < NOW\(\) - INTERVAL '10 minutes'\)`

func TestClaimNextJob_ClaimsAndIncrementsAttempts(t *testing.T) {
	c, mock := mockClient(t)
	now := time.Now()

	mock.ExpectQuery(claimPattern).WillReturnRows(
		sqlmock.NewRows([]string{"id", "kind", "payload", "status", "attempts", "last_error", "created_at", "updated_at"}).
			AddRow(int64(7), "auto_enhance", []byte(`{"submission_id":"abc"}`), "running", 2, nil, now, now),
	)

	job, err := c.ClaimNextJob(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), job.ID)
	assert.Equal(t, "auto_enhance", job.Kind)
	assert.Equal(t, 2, job.Attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimNextJob_EmptyQueue(t *testing.T) {
	c, mock := mockClient(t)

	mock.ExpectQuery(claimPattern).WillReturnRows(
		sqlmock.NewRows([]string{"id", "kind", "payload", "status", "attempts", "last_error", "created_at", "updated_at"}),
	)

	_, err := c.ClaimNextJob(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
