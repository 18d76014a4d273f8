package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"listing-lift-backend/internal/mailer"
)

func TestConfirmationEmail(t *testing.T) {
	body, err := mailer.ConfirmationEmail(mailer.ConfirmationData{
		Name:             "Jordan Smith",
		SubmissionNumber: "2026-0831-042",
		PropertyAddress:  "12 Lakeshore Dr, Muskoka, ON",
		PhotoCount:       14,
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Jordan Smith")
	assert.Contains(t, body, "2026-0831-042")
	assert.Contains(t, body, "14")
	assert.Contains(t, body, "Listing Lift")
}

func TestConfirmationEmail_EscapesHomeownerInput(t *testing.T) {
	body, err := mailer.ConfirmationEmail(mailer.ConfirmationData{
		Name:             `<script>alert("x")</script>`,
		SubmissionNumber: "2026-0831-001",
		PropertyAddress:  "1 Main St",
		PhotoCount:       1,
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRetakesRequiredEmail(t *testing.T) {
	body, err := mailer.RetakesRequiredEmail(mailer.RetakesRequiredData{
		Name:            "Jordan",
		PropertyAddress: "12 Lakeshore Dr",
		ApprovedCount:   9,
		Round:           2,
		MagicLink:       "https://app.test/retakes/tok123",
		RetakePhotos: []mailer.RetakePhotoItem{
			{Room: "Kitchen", Caption: "Counter view", Instructions: "Shoot in daylight"},
			{Room: "Bathroom", Caption: "Shower"},
		},
		RejectedPhotos: []mailer.RejectedPhotoItem{
			{Room: "Garage", Caption: "Interior", Reason: "Too dark to recover"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Round 2")
	assert.Contains(t, body, "9 photos look fantastic")
	assert.Contains(t, body, "Shoot in daylight")
	assert.Contains(t, body, "https://app.test/retakes/tok123")
	assert.Contains(t, body, "Too dark to recover")
}

func TestRetakesRequiredEmail_FirstRoundOmitsRoundLabel(t *testing.T) {
	body, err := mailer.RetakesRequiredEmail(mailer.RetakesRequiredData{
		Name:            "Jordan",
		PropertyAddress: "12 Lakeshore Dr",
		ApprovedCount:   3,
		Round:           1,
		MagicLink:       "https://app.test/retakes/tok123",
		RetakePhotos:    []mailer.RetakePhotoItem{{Room: "Kitchen", Caption: "Counter"}},
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "Round 1")
}

func TestPhotosReadyEmail(t *testing.T) {
	body, err := mailer.PhotosReadyEmail(mailer.PhotosReadyData{
		Name:             "Jordan",
		SubmissionNumber: "2026-0831-042",
		PropertyAddress:  "12 Lakeshore Dr",
		ApprovedCount:    12,
		HeroCount:        2,
		DeliveryLink:     "https://app.test/delivery/tok456",
		DownloadLink:     "https://app.test/api/delivery/download?token=tok456",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "12 enhanced photos")
	assert.Contains(t, body, "2 cover photo")
	assert.Contains(t, body, "https://app.test/delivery/tok456")
	assert.Contains(t, body, "download?token=tok456")
}

func TestRetakesReceivedEmail_AllDone(t *testing.T) {
	body, err := mailer.RetakesReceivedEmail(mailer.RetakesReceivedData{
		SubmissionNumber: "2026-0831-042",
		HomeownerName:    "Jordan",
		PropertyAddress:  "12 Lakeshore Dr",
		UploadedCount:    3,
		TotalRetakes:     3,
		DashboardURL:     "https://app.test/admin",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "All Retakes Received")
	assert.Contains(t, body, "Review Retakes")
}

func TestRetakesReceivedEmail_Partial(t *testing.T) {
	body, err := mailer.RetakesReceivedEmail(mailer.RetakesReceivedData{
		SubmissionNumber: "2026-0831-042",
		HomeownerName:    "Jordan",
		PropertyAddress:  "12 Lakeshore Dr",
		UploadedCount:    1,
		TotalRetakes:     3,
		DashboardURL:     "https://app.test/admin",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "1 of 3 Retakes Uploaded")
}

func TestClientFeedbackEmail(t *testing.T) {
	body, err := mailer.ClientFeedbackEmail(mailer.ClientFeedbackData{
		SubmissionNumber: "2026-0831-042",
		HomeownerName:    "Jordan",
		Notes:            "The pool photo looks too dark",
		DashboardURL:     "https://app.test/admin/submissions/abc",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Changes Requested")
	assert.Contains(t, body, "The pool photo looks too dark")
}

func TestAutoEnhanceCompleteEmail_WithErrors(t *testing.T) {
	body, err := mailer.AutoEnhanceCompleteEmail(mailer.AutoEnhanceCompleteData{
		SubmissionNumber: "2026-0831-042",
		HomeownerName:    "Jordan",
		PropertyAddress:  "12 Lakeshore Dr",
		SuccessCount:     10,
		ErrorCount:       2,
		DashboardURL:     "https://app.test/admin",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "2 photo(s) failed to enhance")
}
