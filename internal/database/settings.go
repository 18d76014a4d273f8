package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"listing-lift-backend/internal/models"
)

const settingsColumns = `room_key, default_model, default_intensity, preset_ids::text, custom_prompt, created_at, updated_at`

func scanSettings(row interface{ Scan(...interface{}) error }) (*models.RoomEnhancementSettings, error) {
	var s models.RoomEnhancementSettings
	var presetJSON sql.NullString
	err := row.Scan(&s.RoomKey, &s.DefaultModel, &s.DefaultIntensity, &presetJSON, &s.CustomPrompt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan room settings: %w", err)
	}
	if presetJSON.Valid && presetJSON.String != "" {
		if err := json.Unmarshal([]byte(presetJSON.String), &s.PresetIDs); err != nil {
			return nil, fmt.Errorf("failed to decode preset ids: %w", err)
		}
	}
	return &s, nil
}

func (q *queries) GetRoomSettings(ctx context.Context, roomKey string) (*models.RoomEnhancementSettings, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+settingsColumns+` FROM room_enhancement_settings WHERE room_key = $1`, roomKey)
	return scanSettings(row)
}

func (q *queries) ListRoomSettings(ctx context.Context) ([]models.RoomEnhancementSettings, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+settingsColumns+` FROM room_enhancement_settings ORDER BY room_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list room settings: %w", err)
	}
	defer rows.Close()

	var all []models.RoomEnhancementSettings
	for rows.Next() {
		s, err := scanSettings(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, *s)
	}
	return all, rows.Err()
}

// UpsertRoomSettings creates the row lazily on first customization.
func (q *queries) UpsertRoomSettings(ctx context.Context, s *models.RoomEnhancementSettings) error {
	var presetJSON sql.NullString
	if len(s.PresetIDs) > 0 {
		raw, err := json.Marshal(s.PresetIDs)
		if err != nil {
			return fmt.Errorf("failed to encode preset ids: %w", err)
		}
		presetJSON = sql.NullString{String: string(raw), Valid: true}
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO room_enhancement_settings (room_key, default_model, default_intensity, preset_ids, custom_prompt)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_key) DO UPDATE SET
			default_model = EXCLUDED.default_model,
			default_intensity = EXCLUDED.default_intensity,
			preset_ids = EXCLUDED.preset_ids,
			custom_prompt = EXCLUDED.custom_prompt,
			updated_at = NOW()`,
		s.RoomKey, s.DefaultModel, s.DefaultIntensity, presetJSON, s.CustomPrompt)
	if err != nil {
		return fmt.Errorf("failed to upsert room settings: %w", err)
	}
	return nil
}
