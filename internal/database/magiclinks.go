package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"listing-lift-backend/internal/models"
)

const magicLinkColumns = `id, token, submission_id, type, expires_at, used_at, created_at`

func scanMagicLink(row interface{ Scan(...interface{}) error }) (*models.MagicLink, error) {
	var l models.MagicLink
	err := row.Scan(&l.ID, &l.Token, &l.SubmissionID, &l.Type, &l.ExpiresAt, &l.UsedAt, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan magic link: %w", err)
	}
	return &l, nil
}

func (q *queries) CreateMagicLink(ctx context.Context, l *models.MagicLink) error {
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO magic_links (token, submission_id, type, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		l.Token, l.SubmissionID, l.Type, l.ExpiresAt,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create magic link: %w", err)
	}
	return nil
}

func (q *queries) GetMagicLinkByToken(ctx context.Context, token string) (*models.MagicLink, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+magicLinkColumns+` FROM magic_links WHERE token = $1`, token)
	return scanMagicLink(row)
}

// ExpireUnusedRetakeLinks invalidates earlier retake links when a new round
// is issued, so only the latest link works. Superseded links get both stamps:
// expires_at cuts them off immediately and used_at records why.
func (q *queries) ExpireUnusedRetakeLinks(ctx context.Context, submissionID uuid.UUID) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE magic_links SET expires_at = NOW(), used_at = NOW()
		WHERE submission_id = $1 AND type = $2 AND used_at IS NULL AND expires_at > NOW()`,
		submissionID, models.LinkRetakeBatch)
	if err != nil {
		return 0, fmt.Errorf("failed to expire retake links: %w", err)
	}
	return res.RowsAffected()
}

// MarkLinkUsed stamps used_at. Called only after the consuming action has
// fully succeeded.
func (q *queries) MarkLinkUsed(ctx context.Context, token string) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE magic_links SET used_at = NOW() WHERE token = $1 AND used_at IS NULL`, token)
	return err
}
