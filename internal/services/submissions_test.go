package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-lift-backend/internal/models"
)

func TestGenerateSubmissionNumber(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	number, err := generateSubmissionNumber(now)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^2026-0831-\d{3}$`), number)
}

func TestValidatePhotos_Empty(t *testing.T) {
	err := validatePhotos(nil)
	assert.ErrorIs(t, err, ErrNoPhotos)
}

func TestValidatePhotos_TooMany(t *testing.T) {
	photos := make([]models.PhotoIn, 61)
	for i := range photos {
		photos[i] = models.PhotoIn{RoomCategory: "Kitchen", Caption: "k"}
	}
	err := validatePhotos(photos)
	assert.ErrorIs(t, err, ErrTooManyPhotos)
}

func TestValidatePhotos_UnknownRoom(t *testing.T) {
	err := validatePhotos([]models.PhotoIn{{RoomCategory: "Wine Cellar", Caption: "c"}})
	assert.ErrorIs(t, err, ErrUnknownRoomKey)
}

func TestValidatePhotos_PerRoomLimit(t *testing.T) {
	// Foyer/Entryway allows 5.
	photos := make([]models.PhotoIn, 6)
	for i := range photos {
		photos[i] = models.PhotoIn{RoomCategory: "Foyer/Entryway", Caption: "f"}
	}
	err := validatePhotos(photos)
	assert.ErrorIs(t, err, ErrRoomLimit)

	assert.NoError(t, validatePhotos(photos[:5]))
}

func TestValidatePhotos_SubCategoryCountsSeparately(t *testing.T) {
	// Ten bathroom photos plus ten keyed to the Pool/Hot Tub sub-category
	// are fine; the caps apply per effective room key.
	var photos []models.PhotoIn
	for i := 0; i < 10; i++ {
		photos = append(photos, models.PhotoIn{RoomCategory: "Bathroom", Caption: "b"})
	}
	for i := 0; i < 10; i++ {
		photos = append(photos, models.PhotoIn{RoomCategory: "Building Exterior", SubCategory: "Pool/Hot Tub", Caption: "p"})
	}
	assert.NoError(t, validatePhotos(photos))
}

func TestErrUnreviewedPhotosMessage(t *testing.T) {
	err := &ErrUnreviewedPhotos{Photos: make([]models.Photo, 3)}
	assert.Equal(t, "3 photo(s) still need review", err.Error())

	var target *ErrUnreviewedPhotos
	assert.True(t, errors.As(error(err), &target))
}

func TestNewTokenIsHex(t *testing.T) {
	token, err := newToken()
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), token)

	other, err := newToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestLinkURL(t *testing.T) {
	s := &Service{baseURL: "https://app.test"}

	assert.Equal(t, "https://app.test/delivery/tok",
		s.LinkURL(&models.MagicLink{Token: "tok", Type: models.LinkDelivery}))
	assert.Equal(t, "https://app.test/retakes/tok",
		s.LinkURL(&models.MagicLink{Token: "tok", Type: models.LinkRetakeBatch}))
	assert.Equal(t, "https://app.test/reupload/tok",
		s.LinkURL(&models.MagicLink{Token: "tok", Type: models.LinkReupload}))
}
