package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Submission struct {
	ID               uuid.UUID
	SubmissionNumber string
	HomeownerName    string
	Email            string
	Phone            string
	PropertyAddress  string
	City             sql.NullString
	ProvinceState    sql.NullString
	PostalZip        sql.NullString
	Notes            sql.NullString
	Status           SubmissionStatus
	ReviewStatus     ReviewStatus
	RetakeRound      int
	RetakesSentAt    sql.NullTime
	DeliveredAt      sql.NullTime
	CompletedAt      sql.NullTime
	DeletionScheduledAt sql.NullTime
	ClientFeedbackStatus sql.NullString
	ClientFeedbackNotes  sql.NullString
	ClientFeedbackAt     sql.NullTime
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Photos []Photo
}

// FullAddress joins the address parts the way notification emails render them.
func (s *Submission) FullAddress() string {
	out := s.PropertyAddress
	for _, part := range []sql.NullString{s.City, s.ProvinceState, s.PostalZip} {
		if part.Valid && part.String != "" {
			out += ", " + part.String
		}
	}
	return out
}
