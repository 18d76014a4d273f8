package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CreateSubmissionResponse struct {
	ID               string `json:"id"`
	SubmissionNumber string `json:"submissionNumber"`
}

type PhotoSummary struct {
	ID           string `json:"id"`
	RoomCategory string `json:"roomCategory"`
	Status       string `json:"status"`
	IsHero       bool   `json:"isHero"`
}

type SubmissionSummary struct {
	ID               string         `json:"id"`
	SubmissionNumber string         `json:"submissionNumber"`
	HomeownerName    string         `json:"homeownerName"`
	Email            string         `json:"email"`
	PropertyAddress  string         `json:"propertyAddress"`
	Status           string         `json:"status"`
	ReviewStatus     string         `json:"reviewStatus,omitempty"`
	RetakeRound      int            `json:"retakeRound"`
	PhotoCount       int            `json:"photoCount"`
	Photos           []PhotoSummary `json:"photos"`
	CreatedAt        time.Time      `json:"createdAt"`
}

type SubmissionDetail struct {
	ID                   string          `json:"id"`
	SubmissionNumber     string          `json:"submissionNumber"`
	HomeownerName        string          `json:"homeownerName"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone"`
	PropertyAddress      string          `json:"propertyAddress"`
	City                 string          `json:"city,omitempty"`
	ProvinceState        string          `json:"provinceState,omitempty"`
	PostalZip            string          `json:"postalZip,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	Status               string          `json:"status"`
	ReviewStatus         string          `json:"reviewStatus,omitempty"`
	RetakeRound          int             `json:"retakeRound"`
	RetakesSentAt        *time.Time      `json:"retakesSentAt,omitempty"`
	DeliveredAt          *time.Time      `json:"deliveredAt,omitempty"`
	DeletionScheduledAt  *time.Time      `json:"deletionScheduledAt,omitempty"`
	ClientFeedbackStatus string          `json:"clientFeedbackStatus,omitempty"`
	ClientFeedbackNotes  string          `json:"clientFeedbackNotes,omitempty"`
	Photos               []PhotoResponse `json:"photos"`
	CreatedAt            time.Time       `json:"createdAt"`
}

type PhotoResponse struct {
	ID                   string    `json:"id"`
	RoomCategory         string    `json:"roomCategory"`
	SubCategory          string    `json:"subCategory,omitempty"`
	Caption              string    `json:"caption"`
	OriginalURL          string    `json:"originalUrl"`
	EnhancedURL          string    `json:"enhancedUrl,omitempty"`
	HeroURL              string    `json:"heroUrl,omitempty"`
	Status               string    `json:"status"`
	IsHero               bool      `json:"isHero"`
	Orientation          string    `json:"orientation"`
	RejectionReason      string    `json:"rejectionReason,omitempty"`
	ReuploadInstructions string    `json:"reuploadInstructions,omitempty"`
	SortOrder            int       `json:"sortOrder"`
	CreatedAt            time.Time `json:"createdAt"`
}

type VersionResponse struct {
	ID              string    `json:"id"`
	VersionNumber   int       `json:"versionNumber"`
	EnhancedURL     string    `json:"enhancedUrl"`
	Intensity       string    `json:"intensity"`
	Model           string    `json:"model"`
	PresetIDs       []string  `json:"presetIds,omitempty"`
	AdditionalNotes string    `json:"additionalNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type EnhanceResponse struct {
	Status        string `json:"status"`
	EnhancedURL   string `json:"enhancedUrl"`
	HeroURL       string `json:"heroUrl,omitempty"`
	VersionNumber int    `json:"versionNumber"`
	Model         string `json:"model"`
}

// ReviewOutcome is what CompleteReview reports back to the admin UI.
type ReviewOutcome struct {
	Outcome       string `json:"outcome"` // "retakes_sent" or "delivered"
	ApprovedCount int    `json:"approvedCount"`
	RejectedCount int    `json:"rejectedCount"`
	RetakeCount   int    `json:"retakeCount,omitempty"`
	HeroCount     int    `json:"heroCount,omitempty"`
	Round         int    `json:"round,omitempty"`
}

type PresignedUploadResponse struct {
	UploadURL  string `json:"uploadUrl"`
	StorageKey string `json:"storageKey"`
}

// LinkValidateResponse is shared by the retake and re-upload landing pages:
// who the link belongs to and which photos still need new originals.
type LinkValidateResponse struct {
	Valid      bool `json:"valid"`
	Submission struct {
		ID               string `json:"id"`
		HomeownerName    string `json:"homeownerName"`
		PropertyAddress  string `json:"propertyAddress"`
		SubmissionNumber string `json:"submissionNumber"`
	} `json:"submission"`
	Photos    []PhotoResponse `json:"photos"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

type RetakeSubmitResponse struct {
	AllComplete bool `json:"allComplete"`
	StillNeeded int  `json:"stillNeeded"`
}

type BatchRunSummary struct {
	Status  string `json:"status"`
	Total   int    `json:"total"`
	Success int    `json:"success"`
	Errors  int    `json:"errors"`
}

type DeliveryPhoto struct {
	ID           string `json:"id"`
	RoomCategory string `json:"roomCategory"`
	SubCategory  string `json:"subCategory,omitempty"`
	Caption      string `json:"caption"`
	IsHero       bool   `json:"isHero"`
	Orientation  string `json:"orientation"`
	OriginalURL  string `json:"originalUrl,omitempty"`
	EnhancedURL  string `json:"enhancedUrl,omitempty"`
	HeroURL      string `json:"heroUrl,omitempty"`
}

type DeliveryResponse struct {
	Valid      bool            `json:"valid"`
	Submission struct {
		ID               string `json:"id"`
		HomeownerName    string `json:"homeownerName"`
		PropertyAddress  string `json:"propertyAddress"`
		SubmissionNumber string `json:"submissionNumber"`
	} `json:"submission"`
	Photos     []DeliveryPhoto `json:"photos"`
	HeroPhotos []DeliveryPhoto `json:"heroPhotos"`
	ExpiresAt  time.Time       `json:"expiresAt"`
}

type RoomSettingsResponse struct {
	RoomKey          string   `json:"roomKey"`
	DefaultModel     string   `json:"defaultModel"`
	DefaultIntensity string   `json:"defaultIntensity"`
	PresetIDs        []string `json:"presetIds,omitempty"`
	CustomPrompt     string   `json:"customPrompt,omitempty"`
	HasDBRecord      bool     `json:"hasDbRecord"`
}

type CleanupResponse struct {
	PhotosCleared   int64  `json:"photosCleared"`
	VersionsDeleted int64  `json:"versionsDeleted"`
	HeroURLsCleared int64  `json:"heroUrlsCleared"`
	Message         string `json:"message"`
}
