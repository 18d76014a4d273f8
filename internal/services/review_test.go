package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-lift-backend/internal/models"
)

// fakeReviewTx records the review gate's mutations without a database.
type fakeReviewTx struct {
	sub *models.Submission

	expireCalls int
	links       []*models.MagicLink
	retakeRound int
	retakesAt   time.Time
	delivered   bool
	heroURLs    map[uuid.UUID]string
}

func (f *fakeReviewTx) GetSubmissionWithPhotos(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	return f.sub, nil
}

func (f *fakeReviewTx) ExpireUnusedRetakeLinks(ctx context.Context, submissionID uuid.UUID) (int64, error) {
	f.expireCalls++
	return 1, nil
}

func (f *fakeReviewTx) CreateMagicLink(ctx context.Context, l *models.MagicLink) error {
	f.links = append(f.links, l)
	return nil
}

func (f *fakeReviewTx) MarkRetakesSent(ctx context.Context, id uuid.UUID, round int, at time.Time) error {
	f.retakeRound = round
	f.retakesAt = at
	return nil
}

func (f *fakeReviewTx) MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.delivered = true
	return nil
}

func (f *fakeReviewTx) SetHeroURL(ctx context.Context, id uuid.UUID, heroKey string) error {
	if f.heroURLs == nil {
		f.heroURLs = map[uuid.UUID]string{}
	}
	f.heroURLs[id] = heroKey
	return nil
}

func reviewPhoto(status models.PhotoStatus) models.Photo {
	return models.Photo{ID: uuid.New(), RoomCategory: "Kitchen", Status: status}
}

func reviewSubmission(photos ...models.Photo) *models.Submission {
	return &models.Submission{
		ID:               uuid.New(),
		SubmissionNumber: "2026-0831-042",
		HomeownerName:    "Pat Winters",
		Email:            "pat@example.com",
		PropertyAddress:  "12 Shoreline Dr",
		Status:           models.SubmissionInProgress,
		RetakeRound:      1,
		Photos:           photos,
	}
}

func reviewService() *Service {
	return &Service{baseURL: "https://app.example.com"}
}

func TestCompleteReview_TerminalStatusRejected(t *testing.T) {
	sub := reviewSubmission(reviewPhoto(models.PhotoApproved))
	sub.ReviewStatus = models.ReviewDelivered
	tx := &fakeReviewTx{sub: sub}

	_, _, err := reviewService().completeReviewLocked(context.Background(), tx, sub.ID)

	assert.ErrorIs(t, err, ErrAlreadyDelivered)
	assert.Empty(t, tx.links)
	assert.False(t, tx.delivered)
}

func TestCompleteReview_UnreviewedPhotosRejected(t *testing.T) {
	pending := reviewPhoto(models.PhotoEnhanced)
	sub := reviewSubmission(reviewPhoto(models.PhotoApproved), pending)
	tx := &fakeReviewTx{sub: sub}

	_, _, err := reviewService().completeReviewLocked(context.Background(), tx, sub.ID)

	var unreviewed *ErrUnreviewedPhotos
	require.ErrorAs(t, err, &unreviewed)
	require.Len(t, unreviewed.Photos, 1)
	assert.Equal(t, pending.ID, unreviewed.Photos[0].ID)
	assert.Empty(t, tx.links)
	assert.Equal(t, 0, tx.expireCalls)
}

func TestCompleteReview_NoApprovedPhotosRejected(t *testing.T) {
	sub := reviewSubmission(reviewPhoto(models.PhotoRejected), reviewPhoto(models.PhotoReuploadRequested))
	tx := &fakeReviewTx{sub: sub}

	_, _, err := reviewService().completeReviewLocked(context.Background(), tx, sub.ID)

	assert.ErrorIs(t, err, ErrNoApprovedPhotos)
	assert.Empty(t, tx.links)
}

func TestCompleteReview_RetakeBranch(t *testing.T) {
	sub := reviewSubmission(
		reviewPhoto(models.PhotoApproved),
		reviewPhoto(models.PhotoApproved),
		reviewPhoto(models.PhotoRejected),
		reviewPhoto(models.PhotoReuploadRequested),
		reviewPhoto(models.PhotoReuploadRequested),
	)
	tx := &fakeReviewTx{sub: sub}

	outcome, email, err := reviewService().completeReviewLocked(context.Background(), tx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, email)

	assert.Equal(t, "retakes_sent", outcome.Outcome)
	assert.Equal(t, 2, outcome.ApprovedCount)
	assert.Equal(t, 1, outcome.RejectedCount)
	assert.Equal(t, 2, outcome.RetakeCount)
	assert.Equal(t, 2, outcome.Round)

	assert.Equal(t, 1, tx.expireCalls, "prior retake links must be invalidated before a new round")
	assert.Equal(t, 2, tx.retakeRound)
	assert.False(t, tx.delivered)

	require.Len(t, tx.links, 1)
	link := tx.links[0]
	assert.Equal(t, models.LinkRetakeBatch, link.Type)
	assert.Equal(t, sub.ID, link.SubmissionID)
	assert.Len(t, link.Token, 64)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), link.ExpiresAt, time.Minute)
}

func TestCompleteReview_DeliveryBranch(t *testing.T) {
	hero := reviewPhoto(models.PhotoApproved)
	hero.IsHero = true
	hero.EnhancedURL = sql.NullString{String: "enhanced/a.jpg", Valid: true}
	hero.HeroURL = sql.NullString{String: "hero/a.jpg", Valid: true}

	sub := reviewSubmission(hero, reviewPhoto(models.PhotoApproved), reviewPhoto(models.PhotoRejected))
	tx := &fakeReviewTx{sub: sub}

	outcome, email, err := reviewService().completeReviewLocked(context.Background(), tx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, email)

	assert.Equal(t, "delivered", outcome.Outcome)
	assert.Equal(t, 2, outcome.ApprovedCount)
	assert.Equal(t, 1, outcome.RejectedCount)
	assert.Equal(t, 1, outcome.HeroCount)

	assert.True(t, tx.delivered)
	assert.Equal(t, 0, tx.expireCalls)
	assert.Empty(t, tx.heroURLs, "an existing hero cut is not regenerated")

	require.Len(t, tx.links, 1)
	assert.Equal(t, models.LinkDelivery, tx.links[0].Type)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), tx.links[0].ExpiresAt, time.Minute)
}

// A second completion attempt after a retake round is legal (retakes_pending
// is not terminal); the gate re-evaluates photo statuses fresh.
func TestCompleteReview_RetakesPendingCanComplete(t *testing.T) {
	sub := reviewSubmission(reviewPhoto(models.PhotoApproved))
	sub.ReviewStatus = models.ReviewRetakesPending
	tx := &fakeReviewTx{sub: sub}

	outcome, _, err := reviewService().completeReviewLocked(context.Background(), tx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "delivered", outcome.Outcome)
}
