package services

import (
	"database/sql"
	"time"

	"listing-lift-backend/internal/config"
	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/enhance"
	"listing-lift-backend/internal/mailer"
	"listing-lift-backend/internal/storage"
)

// Service owns the workflow logic between the HTTP layer and the stores.
// Handlers parse and validate requests; Service methods enforce the photo
// and submission state machines.
type Service struct {
	db      *database.Client
	store   *storage.Store
	engine  *enhance.Client
	mail    *mailer.Client
	baseURL string

	enhanceTimeout time.Duration
	photoDelay     time.Duration
}

func New(db *database.Client, store *storage.Store, engine *enhance.Client, mail *mailer.Client, cfg *config.Config) *Service {
	return &Service{
		db:             db,
		store:          store,
		engine:         engine,
		mail:           mail,
		baseURL:        cfg.BaseURL,
		enhanceTimeout: cfg.EnhanceTimeout,
		photoDelay:     cfg.EnhancePhotoDelay,
	}
}

func (s *Service) dashboardURL() string {
	return s.baseURL + "/admin"
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
