package database

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Superseding a retake round must cut old links off immediately: the update
// has to move expires_at, not just stamp used_at, so the expiry check catches
// them no matter how the link is validated.
func TestExpireUnusedRetakeLinks_StampsExpiry(t *testing.T) {
	c, mock := mockClient(t)

	mock.ExpectExec(`UPDATE magic_links SET expires_at = NOW\(\), used_at = NOW\(\) ` +
		`WHERE submission_id = \$1 AND type = \$2 AND used_at IS NULL AND expires_at > NOW\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := c.ExpireUnusedRetakeLinks(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
