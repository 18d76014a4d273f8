package services

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/models"
)

func heroPhoto() *models.Photo {
	return &models.Photo{
		ID:          uuid.New(),
		IsHero:      true,
		EnhancedURL: sql.NullString{String: "enhanced/a.jpg", Valid: true},
		Status:      models.PhotoEnhanced,
	}
}

// Flagging a hero on an enhanced photo without a hero cut must queue the
// generate_hero job.
func TestQueueHeroGeneration_EnqueuesJob(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectQuery("INSERT INTO jobs").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	svc := &Service{db: database.NewClientFromDB(db)}
	svc.QueueHeroGeneration(context.Background(), heroPhoto())

	assert.NoError(t, mock.ExpectationsWereMet(), "the hero toggle must enqueue a generate_hero job")
}

func TestQueueHeroGeneration_SkipsPhotoWithHeroCut(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	photo := heroPhoto()
	photo.HeroURL = sql.NullString{String: "hero/a.jpg", Valid: true}

	svc := &Service{db: database.NewClientFromDB(db)}
	svc.QueueHeroGeneration(context.Background(), photo)

	assert.NoError(t, mock.ExpectationsWereMet())
}
