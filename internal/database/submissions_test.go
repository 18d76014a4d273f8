package database

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-lift-backend/internal/models"
)

func mockClient(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewClientFromDB(db), mock
}

var submissionRowColumns = []string{
	"id", "submission_number", "homeowner_name", "email", "phone", "property_address",
	"city", "province_state", "postal_zip", "notes", "status", "review_status", "retake_round",
	"retakes_sent_at", "delivered_at", "completed_at", "deletion_scheduled_at",
	"client_feedback_status", "client_feedback_notes", "client_feedback_at", "created_at", "updated_at",
}

func submissionRows(id uuid.UUID, number string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(submissionRowColumns).AddRow(
		id.String(), number, "Pat Winters", "pat@example.com", "555-0100", "12 Shoreline Dr",
		nil, nil, nil, nil, "New", "", 0,
		nil, nil, nil, nil,
		nil, nil, nil, now, now,
	)
}

func intakeSubmission() *models.Submission {
	return &models.Submission{
		SubmissionNumber: "2026-0831-001",
		HomeownerName:    "Pat Winters",
		Email:            "pat@example.com",
		Phone:            "555-0100",
		PropertyAddress:  "12 Shoreline Dr",
		Status:           models.SubmissionNew,
		Photos: []models.Photo{
			{RoomCategory: "Kitchen", Caption: "Main view", OriginalURL: "uploads/1-k.jpg", Orientation: models.OrientationLandscape},
			{RoomCategory: "Primary Bedroom", Caption: "", OriginalURL: "uploads/2-b.jpg", Orientation: models.OrientationPortrait},
		},
	}
}

func TestCreateSubmission_CommitsSubmissionAndPhotos(t *testing.T) {
	c, mock := mockClient(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO submissions").WillReturnRows(submissionRows(id, "2026-0831-001"))
	mock.ExpectQuery("INSERT INTO photos").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New().String(), now, now))
	mock.ExpectQuery("INSERT INTO photos").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New().String(), now, now))
	mock.ExpectCommit()

	created, err := c.CreateSubmission(context.Background(), intakeSubmission())
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	require.Len(t, created.Photos, 2)
	assert.Equal(t, models.PhotoPending, created.Photos[0].Status)
	assert.Equal(t, 1, created.Photos[1].SortOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An intake where a photo insert fails must not leave a submission row (or a
// consumed submission number) behind.
func TestCreateSubmission_RollsBackOnPhotoFailure(t *testing.T) {
	c, mock := mockClient(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO submissions").WillReturnRows(submissionRows(uuid.New(), "2026-0831-002"))
	mock.ExpectQuery("INSERT INTO photos").WillReturnError(errors.New("photo insert failed"))
	mock.ExpectRollback()

	_, err := c.CreateSubmission(context.Background(), intakeSubmission())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
