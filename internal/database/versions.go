package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"listing-lift-backend/internal/models"
)

// RecordVersion appends one row to the photo's enhancement ledger. The version
// number is assigned inside the statement as max+1 so it stays monotone even
// after external cleanup deletes rows.
func (q *queries) RecordVersion(ctx context.Context, v *models.EnhancementVersion) error {
	presetJSON, err := v.PresetIDsJSON()
	if err != nil {
		return fmt.Errorf("failed to encode preset ids: %w", err)
	}

	err = q.db.QueryRowContext(ctx, `
		INSERT INTO enhancement_versions (photo_id, version_number, enhanced_url, intensity, model, preset_ids, additional_notes)
		VALUES ($1,
			COALESCE((SELECT MAX(version_number) FROM enhancement_versions WHERE photo_id = $1), 0) + 1,
			$2, $3, $4, $5, $6)
		RETURNING id, version_number, created_at`,
		v.PhotoID, v.EnhancedURL, v.Intensity, v.Model, presetJSON, v.AdditionalNotes,
	).Scan(&v.ID, &v.VersionNumber, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record enhancement version: %w", err)
	}
	return nil
}

func scanVersion(row interface{ Scan(...interface{}) error }) (*models.EnhancementVersion, error) {
	var v models.EnhancementVersion
	var presetJSON sql.NullString
	err := row.Scan(&v.ID, &v.PhotoID, &v.VersionNumber, &v.EnhancedURL, &v.Intensity,
		&v.Model, &presetJSON, &v.AdditionalNotes, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan enhancement version: %w", err)
	}
	if err := v.ScanPresetIDs(presetJSON); err != nil {
		return nil, fmt.Errorf("failed to decode preset ids: %w", err)
	}
	return &v, nil
}

const versionColumns = `id, photo_id, version_number, enhanced_url, intensity, model, preset_ids::text, additional_notes, created_at`

func (q *queries) GetVersion(ctx context.Context, id uuid.UUID) (*models.EnhancementVersion, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+versionColumns+` FROM enhancement_versions WHERE id = $1`, id)
	return scanVersion(row)
}

// ListVersions returns the ledger newest-first.
func (q *queries) ListVersions(ctx context.Context, photoID uuid.UUID) ([]models.EnhancementVersion, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+versionColumns+` FROM enhancement_versions WHERE photo_id = $1 ORDER BY version_number DESC`,
		photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enhancement versions: %w", err)
	}
	defer rows.Close()

	var versions []models.EnhancementVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *v)
	}
	return versions, rows.Err()
}

// DeleteExternalVersions removes ledger rows whose enhanced_url is an
// external http URL rather than a storage key. Cleanup-only; the normal flow
// never deletes ledger rows.
func (q *queries) DeleteExternalVersions(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`DELETE FROM enhancement_versions WHERE enhanced_url LIKE 'http%'`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
