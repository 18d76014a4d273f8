package models

import (
	"database/sql"
	"time"
)

// RoomEnhancementSettings overrides the hardcoded enhancement defaults for one
// room key. Rows are created lazily on first admin customization; rooms with
// no row fall back to code defaults.
type RoomEnhancementSettings struct {
	RoomKey          string
	DefaultModel     string
	DefaultIntensity Intensity
	PresetIDs        []string
	CustomPrompt     sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Job struct {
	ID        int64
	Kind      string
	Payload   []byte
	Status    string
	Attempts  int
	LastError sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	JobKindAutoEnhance  = "auto_enhance"
	JobKindGenerateHero = "generate_hero"

	JobPending = "pending"
	JobRunning = "running"
	JobDone    = "done"
	JobFailed  = "failed"
)
