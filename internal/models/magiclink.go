package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type MagicLink struct {
	ID           uuid.UUID
	Token        string
	SubmissionID uuid.UUID
	Type         LinkType
	ExpiresAt    time.Time
	UsedAt       sql.NullTime
	CreatedAt    time.Time
}

func (l *MagicLink) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

func (l *MagicLink) Used() bool {
	return l.UsedAt.Valid
}
