package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EnhancementVersion is one row of the append-only per-photo enhancement
// ledger. Rows are never updated; the photo's EnhancedURL is a denormalized
// pointer that can be repointed at any version via "use this version".
type EnhancementVersion struct {
	ID              uuid.UUID
	PhotoID         uuid.UUID
	VersionNumber   int
	EnhancedURL     string
	Intensity       Intensity
	Model           string
	PresetIDs       []string
	AdditionalNotes sql.NullString
	CreatedAt       time.Time
}

// PresetIDsJSON renders the preset list for jsonb storage. An empty list is
// stored as NULL so history display can distinguish "no corrections".
func (v *EnhancementVersion) PresetIDsJSON() (sql.NullString, error) {
	if len(v.PresetIDs) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(v.PresetIDs)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

// ScanPresetIDs decodes the jsonb column back into the slice.
func (v *EnhancementVersion) ScanPresetIDs(raw sql.NullString) error {
	v.PresetIDs = nil
	if !raw.Valid || raw.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw.String), &v.PresetIDs)
}
