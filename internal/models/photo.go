package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	ID                   uuid.UUID
	SubmissionID         uuid.UUID
	RoomCategory         string
	SubCategory          sql.NullString
	Caption              string
	OriginalURL          string
	EnhancedURL          sql.NullString
	HeroURL              sql.NullString
	Status               PhotoStatus
	IsHero               bool
	Orientation          Orientation
	RejectionReason      sql.NullString
	ReuploadInstructions sql.NullString
	SortOrder            int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NeedsHero reports whether a hero cut should be generated: the photo is
// flagged as hero, has an enhanced image to cut from, and no hero_url yet.
func (p *Photo) NeedsHero() bool {
	return p.IsHero &&
		p.EnhancedURL.Valid && p.EnhancedURL.String != "" &&
		(!p.HeroURL.Valid || p.HeroURL.String == "")
}

// RoomKey resolves the settings key for this photo: the specific sub-room when
// one was chosen, otherwise the top-level category.
func (p *Photo) RoomKey() string {
	if p.SubCategory.Valid && p.SubCategory.String != "" {
		return p.SubCategory.String
	}
	return p.RoomCategory
}
