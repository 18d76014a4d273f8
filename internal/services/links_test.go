package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"listing-lift-backend/internal/models"
)

func testLink(linkType models.LinkType, expiresAt time.Time, usedAt *time.Time) *models.MagicLink {
	l := &models.MagicLink{
		Token:     "deadbeef",
		Type:      linkType,
		ExpiresAt: expiresAt,
	}
	if usedAt != nil {
		l.UsedAt = sql.NullTime{Time: *usedAt, Valid: true}
	}
	return l
}

func TestCheckLink_ValidRetakeLink(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	link := testLink(models.LinkRetakeBatch, now.Add(24*time.Hour), nil)

	assert.NoError(t, checkLink(link, models.LinkRetakeBatch, now))
}

func TestCheckLink_WrongType(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	link := testLink(models.LinkDelivery, now.Add(24*time.Hour), nil)

	assert.ErrorIs(t, checkLink(link, models.LinkRetakeBatch, now), ErrLinkWrongType)
}

func TestCheckLink_Expired(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	link := testLink(models.LinkRetakeBatch, now.Add(-time.Minute), nil)

	assert.ErrorIs(t, checkLink(link, models.LinkRetakeBatch, now), ErrLinkExpired)
}

// A retake link from a previous round carries a used_at stamp from the
// superseding issuance. Even with a future expires_at it must be rejected, or
// an old link would keep granting upload access after a new round goes out.
func TestCheckLink_SupersededRetakeLinkRejected(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	stamped := now.Add(-time.Hour)
	link := testLink(models.LinkRetakeBatch, now.Add(29*24*time.Hour), &stamped)

	assert.ErrorIs(t, checkLink(link, models.LinkRetakeBatch, now), ErrLinkUsed)
}

func TestCheckLink_ConsumedSingleUseRejected(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	stamped := now.Add(-time.Hour)

	for _, linkType := range []models.LinkType{models.LinkDelivery, models.LinkReupload} {
		link := testLink(linkType, now.Add(24*time.Hour), &stamped)
		assert.ErrorIs(t, checkLink(link, linkType, now), ErrLinkUsed, string(linkType))
	}
}
