package models_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"listing-lift-backend/internal/models"
)

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestParsePhotoStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Enhancing", "Enhanced", "Approved", "Rejected", "Re-upload Requested"} {
		parsed, err := models.ParsePhotoStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, s, string(parsed))
	}

	_, err := models.ParsePhotoStatus("Done")
	assert.Error(t, err)
	_, err = models.ParsePhotoStatus("pending")
	assert.Error(t, err)
}

func TestPhotoStatusTransitions(t *testing.T) {
	cases := []struct {
		from    models.PhotoStatus
		to      models.PhotoStatus
		allowed bool
	}{
		{models.PhotoPending, models.PhotoEnhancing, true},
		{models.PhotoPending, models.PhotoEnhanced, false},
		{models.PhotoPending, models.PhotoApproved, false},
		{models.PhotoEnhancing, models.PhotoEnhanced, true},
		{models.PhotoEnhancing, models.PhotoPending, true}, // rollback on failure
		{models.PhotoEnhanced, models.PhotoApproved, true},
		{models.PhotoEnhanced, models.PhotoRejected, true},
		{models.PhotoEnhanced, models.PhotoReuploadRequested, true},
		{models.PhotoEnhanced, models.PhotoEnhancing, true}, // re-run
		{models.PhotoEnhanced, models.PhotoPending, false},
		{models.PhotoApproved, models.PhotoRejected, true}, // admin revisits
		{models.PhotoApproved, models.PhotoEnhancing, true},
		{models.PhotoReuploadRequested, models.PhotoPending, true}, // new original landed
		{models.PhotoRejected, models.PhotoApproved, true},
		{models.PhotoApproved, models.PhotoEnhanced, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestPhotoStatusSelfTransition(t *testing.T) {
	for _, s := range []models.PhotoStatus{
		models.PhotoPending, models.PhotoEnhancing, models.PhotoEnhanced,
		models.PhotoApproved, models.PhotoRejected, models.PhotoReuploadRequested,
	} {
		assert.True(t, s.CanTransitionTo(s))
	}
}

func TestPhotoStatusIsReviewed(t *testing.T) {
	assert.True(t, models.PhotoApproved.IsReviewed())
	assert.True(t, models.PhotoRejected.IsReviewed())
	assert.True(t, models.PhotoReuploadRequested.IsReviewed())
	assert.False(t, models.PhotoPending.IsReviewed())
	assert.False(t, models.PhotoEnhancing.IsReviewed())
	assert.False(t, models.PhotoEnhanced.IsReviewed())
}

func TestReviewStatusTerminal(t *testing.T) {
	assert.False(t, models.ReviewNone.Terminal())
	assert.False(t, models.ReviewRetakesPending.Terminal())
	assert.True(t, models.ReviewDelivered.Terminal())
	assert.True(t, models.ReviewClientApproved.Terminal())
}

func TestLinkTypeSingleUse(t *testing.T) {
	assert.True(t, models.LinkDelivery.SingleUse())
	assert.True(t, models.LinkReupload.SingleUse())
	assert.False(t, models.LinkRetakeBatch.SingleUse())
}

func TestMagicLinkExpiredAndUsed(t *testing.T) {
	link := models.MagicLink{ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, link.Expired(time.Now()))
	assert.True(t, link.Expired(time.Now().Add(2*time.Hour)))
	assert.False(t, link.Used())
}

func TestParseOrientation(t *testing.T) {
	assert.Equal(t, models.OrientationPortrait, models.ParseOrientation("portrait"))
	assert.Equal(t, models.OrientationLandscape, models.ParseOrientation("landscape"))
	assert.Equal(t, models.OrientationLandscape, models.ParseOrientation(""))
	assert.Equal(t, models.OrientationLandscape, models.ParseOrientation("square"))
}

func TestFullAddress(t *testing.T) {
	sub := models.Submission{PropertyAddress: "12 Lakeshore Dr"}
	assert.Equal(t, "12 Lakeshore Dr", sub.FullAddress())

	sub.City = nullStr("Muskoka")
	sub.ProvinceState = nullStr("ON")
	sub.PostalZip = nullStr("P1H 1A1")
	assert.Equal(t, "12 Lakeshore Dr, Muskoka, ON, P1H 1A1", sub.FullAddress())
}

func TestPhotoRoomKey(t *testing.T) {
	p := models.Photo{RoomCategory: "Bathroom"}
	assert.Equal(t, "Bathroom", p.RoomKey())

	p.SubCategory = nullStr("Pool/Hot Tub")
	assert.Equal(t, "Pool/Hot Tub", p.RoomKey())
}

func TestVersionPresetIDsRoundTrip(t *testing.T) {
	v := models.EnhancementVersion{PresetIDs: []string{"sky-replacement", "brightness-boost"}}
	raw, err := v.PresetIDsJSON()
	assert.NoError(t, err)
	assert.True(t, raw.Valid)

	var back models.EnhancementVersion
	assert.NoError(t, back.ScanPresetIDs(raw))
	assert.Equal(t, v.PresetIDs, back.PresetIDs)
}

func TestVersionPresetIDsEmptyIsNull(t *testing.T) {
	v := models.EnhancementVersion{}
	raw, err := v.PresetIDsJSON()
	assert.NoError(t, err)
	assert.False(t, raw.Valid)

	var back models.EnhancementVersion
	assert.NoError(t, back.ScanPresetIDs(raw))
	assert.Nil(t, back.PresetIDs)
}
