package models_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"listing-lift-backend/internal/models"
)

func TestNeedsHero(t *testing.T) {
	enhanced := sql.NullString{String: "enhanced/a.jpg", Valid: true}
	heroCut := sql.NullString{String: "hero/a.jpg", Valid: true}

	tests := []struct {
		name  string
		photo models.Photo
		want  bool
	}{
		{"hero flagged, enhanced, no cut", models.Photo{IsHero: true, EnhancedURL: enhanced}, true},
		{"not flagged as hero", models.Photo{EnhancedURL: enhanced}, false},
		{"no enhanced image yet", models.Photo{IsHero: true}, false},
		{"hero cut already exists", models.Photo{IsHero: true, EnhancedURL: enhanced, HeroURL: heroCut}, false},
		{"empty enhanced url", models.Photo{IsHero: true, EnhancedURL: sql.NullString{Valid: true}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.photo.NeedsHero())
		})
	}
}
