package models

import "fmt"

// PhotoStatus is the closed set of states a photo moves through. Statuses are
// stored as their display strings, matching what the admin UI renders.
type PhotoStatus string

const (
	PhotoPending          PhotoStatus = "Pending"
	PhotoEnhancing        PhotoStatus = "Enhancing"
	PhotoEnhanced         PhotoStatus = "Enhanced"
	PhotoApproved         PhotoStatus = "Approved"
	PhotoRejected         PhotoStatus = "Rejected"
	PhotoReuploadRequested PhotoStatus = "Re-upload Requested"
)

// ParsePhotoStatus rejects anything outside the known set.
func ParsePhotoStatus(s string) (PhotoStatus, error) {
	switch PhotoStatus(s) {
	case PhotoPending, PhotoEnhancing, PhotoEnhanced, PhotoApproved, PhotoRejected, PhotoReuploadRequested:
		return PhotoStatus(s), nil
	}
	return "", fmt.Errorf("unknown photo status %q", s)
}

// IsReviewed reports whether the status is a terminal review outcome.
func (s PhotoStatus) IsReviewed() bool {
	switch s {
	case PhotoApproved, PhotoRejected, PhotoReuploadRequested:
		return true
	}
	return false
}

// CanTransitionTo validates the photo state machine. Admin review actions may
// move an Enhanced photo to any review outcome and may revisit outcomes; the
// enhancement path cycles Pending -> Enhancing -> Enhanced; a requested
// re-upload loops back to Pending once a new original lands.
func (s PhotoStatus) CanTransitionTo(next PhotoStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case PhotoPending:
		return next == PhotoEnhancing
	case PhotoEnhancing:
		// Completion, or rollback to any prior status on failure.
		return true
	case PhotoEnhanced:
		return next == PhotoEnhancing || next.IsReviewed()
	case PhotoApproved, PhotoRejected, PhotoReuploadRequested:
		// Review outcomes are revisitable by admin action; a re-upload
		// resets to Pending, re-enhancement goes through Enhancing.
		return next == PhotoPending || next == PhotoEnhancing || next.IsReviewed()
	}
	return false
}

type SubmissionStatus string

const (
	SubmissionNew        SubmissionStatus = "New"
	SubmissionInProgress SubmissionStatus = "In Progress"
	SubmissionCompleted  SubmissionStatus = "Completed"
)

func ParseSubmissionStatus(s string) (SubmissionStatus, error) {
	switch SubmissionStatus(s) {
	case SubmissionNew, SubmissionInProgress, SubmissionCompleted:
		return SubmissionStatus(s), nil
	}
	return "", fmt.Errorf("unknown submission status %q", s)
}

// ReviewStatus tracks the outcome of the admin review cycle. The empty value
// means the submission has not yet been through review.
type ReviewStatus string

const (
	ReviewNone           ReviewStatus = ""
	ReviewRetakesPending ReviewStatus = "retakes_pending"
	ReviewDelivered      ReviewStatus = "delivered"
	ReviewClientApproved ReviewStatus = "client_approved"
)

// Terminal reports whether review has reached a delivered state. Used as the
// idempotency guard in CompleteReview: a delivered submission cannot be
// completed again.
func (s ReviewStatus) Terminal() bool {
	return s == ReviewDelivered || s == ReviewClientApproved
}

// LinkType is the purpose a magic link was issued for.
type LinkType string

const (
	LinkDelivery    LinkType = "delivery"
	LinkRetakeBatch LinkType = "retake_batch"
	LinkReupload    LinkType = "reupload"
)

// SingleUse reports whether a link is invalidated after its consuming action
// succeeds. Retake batch links stay valid across sessions until expiry.
func (t LinkType) SingleUse() bool {
	return t == LinkDelivery || t == LinkReupload
}

type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

func ParseOrientation(s string) Orientation {
	if Orientation(s) == OrientationPortrait {
		return OrientationPortrait
	}
	return OrientationLandscape
}

type Intensity string

const (
	IntensityLight       Intensity = "Light"
	IntensityModerate    Intensity = "Moderate"
	IntensitySignificant Intensity = "Significant"
)

func ParseIntensity(s string) (Intensity, error) {
	switch Intensity(s) {
	case IntensityLight, IntensityModerate, IntensitySignificant:
		return Intensity(s), nil
	}
	return "", fmt.Errorf("unknown intensity %q", s)
}
