package models

type PhotoIn struct {
	RoomCategory string `json:"roomCategory" binding:"required"`
	SubCategory  string `json:"subCategory"`
	Caption      string `json:"caption" binding:"required,max=50"`
	OriginalURL  string `json:"originalUrl" binding:"required"`
	Orientation  string `json:"orientation"`
}

type CreateSubmissionRequest struct {
	HomeownerName   string    `json:"homeownerName" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Phone           string    `json:"phone" binding:"required"`
	PropertyAddress string    `json:"propertyAddress" binding:"required"`
	City            string    `json:"city"`
	ProvinceState   string    `json:"provinceState"`
	PostalZip       string    `json:"postalZip"`
	Notes           string    `json:"notes"`
	Photos          []PhotoIn `json:"photos" binding:"required"`
}

type UpdateSubmissionRequest struct {
	Status string `json:"status"`
}

// UpdatePhotoRequest is the admin PATCH surface. Pointer fields distinguish
// "not sent" from explicit clears.
type UpdatePhotoRequest struct {
	Status               *string `json:"status"`
	IsHero               *bool   `json:"isHero"`
	RejectionReason      *string `json:"rejectionReason"`
	ReuploadInstructions *string `json:"reuploadInstructions"`
	EnhancedURL          *string `json:"enhancedUrl"`
	HeroURL              *string `json:"heroUrl"`
	RoomCategory         *string `json:"roomCategory"`
	SubCategory          *string `json:"subCategory"`
}

type EnhancePhotoRequest struct {
	Intensity       string   `json:"intensity"`
	PresetIDs       []string `json:"presetIds"`
	AdditionalNotes string   `json:"additionalNotes"`
	CustomPrompt    string   `json:"customPrompt"`
	Model           string   `json:"model"`
}

type UseVersionRequest struct {
	VersionID string `json:"versionId" binding:"required"`
}

type PresignedUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType"`
}

type RetakeUploadURLRequest struct {
	Token       string `json:"token" binding:"required"`
	PhotoID     string `json:"photoId" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType"`
}

// RetakeActionRequest drives the retake flow: action is "save_photo" (attach
// one uploaded original) or "submit" (close out the round).
type RetakeActionRequest struct {
	Token      string `json:"token" binding:"required"`
	Action     string `json:"action" binding:"required"`
	PhotoID    string `json:"photoId"`
	StorageKey string `json:"storageKey"`
}

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type DeliveryFeedbackRequest struct {
	Token  string `json:"token" binding:"required"`
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type CreateMagicLinkRequest struct {
	SubmissionID string `json:"submissionId" binding:"required"`
	Instructions string `json:"instructions"`
}

type RoomSettingsRequest struct {
	RoomKey          string   `json:"roomKey" binding:"required"`
	DefaultModel     string   `json:"defaultModel"`
	DefaultIntensity string   `json:"defaultIntensity"`
	PresetIDs        []string `json:"presetIds"`
	CustomPrompt     string   `json:"customPrompt"`
}
