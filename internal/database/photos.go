package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"listing-lift-backend/internal/models"
)

const photoColumns = `id, submission_id, room_category, sub_category, caption, original_url,
	enhanced_url, hero_url, status, is_hero, orientation, rejection_reason,
	reupload_instructions, sort_order, created_at, updated_at`

func scanPhoto(row interface{ Scan(...interface{}) error }) (*models.Photo, error) {
	var p models.Photo
	err := row.Scan(
		&p.ID, &p.SubmissionID, &p.RoomCategory, &p.SubCategory, &p.Caption, &p.OriginalURL,
		&p.EnhancedURL, &p.HeroURL, &p.Status, &p.IsHero, &p.Orientation, &p.RejectionReason,
		&p.ReuploadInstructions, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan photo: %w", err)
	}
	return &p, nil
}

func (q *queries) GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+photoColumns+` FROM photos WHERE id = $1`, id)
	return scanPhoto(row)
}

// GetPhotoInSubmission scopes the lookup to one submission so magic-link
// callers cannot reach photos outside their grant.
func (q *queries) GetPhotoInSubmission(ctx context.Context, id, submissionID uuid.UUID) (*models.Photo, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE id = $1 AND submission_id = $2`, id, submissionID)
	return scanPhoto(row)
}

func (q *queries) ListPhotos(ctx context.Context, submissionID uuid.UUID) ([]models.Photo, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE submission_id = $1 ORDER BY sort_order ASC`, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

func (q *queries) ListPhotosByStatus(ctx context.Context, submissionID uuid.UUID, status models.PhotoStatus) ([]models.Photo, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE submission_id = $1 AND status = $2 ORDER BY sort_order ASC`,
		submissionID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos by status: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

func (q *queries) UpdatePhotoStatus(ctx context.Context, id uuid.UUID, status models.PhotoStatus) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE photos SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

type PhotoPatch struct {
	Status               *models.PhotoStatus
	IsHero               *bool
	RejectionReason      *string
	ReuploadInstructions *string
	EnhancedURL          *string
	HeroURL              *string
	RoomCategory         *string
	SubCategory          *string
}

// PatchPhoto applies a partial admin update. Columns absent from the patch
// are untouched.
func (q *queries) PatchPhoto(ctx context.Context, id uuid.UUID, patch PhotoPatch) (*models.Photo, error) {
	sets := "updated_at = NOW()"
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets += fmt.Sprintf(", %s = $%d", column, len(args))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.IsHero != nil {
		add("is_hero", *patch.IsHero)
	}
	if patch.RejectionReason != nil {
		add("rejection_reason", sql.NullString{String: *patch.RejectionReason, Valid: *patch.RejectionReason != ""})
	}
	if patch.ReuploadInstructions != nil {
		add("reupload_instructions", sql.NullString{String: *patch.ReuploadInstructions, Valid: *patch.ReuploadInstructions != ""})
	}
	if patch.EnhancedURL != nil {
		add("enhanced_url", sql.NullString{String: *patch.EnhancedURL, Valid: *patch.EnhancedURL != ""})
	}
	if patch.HeroURL != nil {
		add("hero_url", sql.NullString{String: *patch.HeroURL, Valid: *patch.HeroURL != ""})
	}
	if patch.RoomCategory != nil {
		add("room_category", *patch.RoomCategory)
	}
	if patch.SubCategory != nil {
		add("sub_category", sql.NullString{String: *patch.SubCategory, Valid: *patch.SubCategory != ""})
	}

	args = append(args, id)
	row := q.db.QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE photos SET %s WHERE id = $%d RETURNING `+photoColumns, sets, len(args)),
		args...)
	return scanPhoto(row)
}

// ApplyReupload points the photo at a freshly uploaded original and restarts
// its cycle. The enhanced and hero assets are stale against the new original
// and are cleared.
func (q *queries) ApplyReupload(ctx context.Context, id uuid.UUID, storageKey string) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE photos
		SET original_url = $1, status = $2, enhanced_url = NULL, hero_url = NULL,
			reupload_instructions = NULL, updated_at = NOW()
		WHERE id = $3`,
		storageKey, models.PhotoPending, id)
	if err != nil {
		return fmt.Errorf("failed to apply reupload: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetEnhancedResult records a successful enhancement on the photo row. heroKey
// is only written when non-empty.
func (q *queries) SetEnhancedResult(ctx context.Context, id uuid.UUID, enhancedKey, heroKey string) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE photos
		SET enhanced_url = $1, hero_url = COALESCE(NULLIF($2, ''), hero_url),
			status = $3, updated_at = NOW()
		WHERE id = $4`,
		enhancedKey, heroKey, models.PhotoEnhanced, id)
	return err
}

func (q *queries) SetHeroURL(ctx context.Context, id uuid.UUID, heroKey string) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE photos SET hero_url = $1, updated_at = NOW() WHERE id = $2`, heroKey, id)
	return err
}

// ClearExternalEnhancedURLs resets photos whose enhanced_url points at an
// external host instead of a storage key. Those rows predate the re-store
// step and break URL resolution.
func (q *queries) ClearExternalEnhancedURLs(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE photos SET enhanced_url = NULL, status = $1, updated_at = NOW()
		WHERE enhanced_url LIKE 'http%'`, models.PhotoPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *queries) ClearExternalHeroURLs(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE photos SET hero_url = NULL, updated_at = NOW()
		WHERE hero_url LIKE 'http%'`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
