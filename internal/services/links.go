package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/mailer"
	"listing-lift-backend/internal/models"
)

// Link validation failures map onto distinct HTTP statuses at the handler
// layer: unknown token 404, wrong purpose 400, expired or consumed 410.
var (
	ErrLinkNotFound  = errors.New("magic link not found")
	ErrLinkWrongType = errors.New("magic link has a different purpose")
	ErrLinkExpired   = errors.New("magic link expired")
	ErrLinkUsed      = errors.New("magic link already used")
)

const (
	batchLinkTTL   = 30 * 24 * time.Hour
	reuploadLinkTTL = 7 * 24 * time.Hour
)

// newToken returns 32 bytes of crypto randomness, hex encoded.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// linkCreator lets IssueLink run against the pooled client or inside a
// submission-locked transaction.
type linkCreator interface {
	CreateMagicLink(ctx context.Context, l *models.MagicLink) error
}

// IssueLink creates a magic link of the given type. Retake and delivery
// links live 30 days; ad hoc re-upload links live 7.
func (s *Service) IssueLink(ctx context.Context, q linkCreator, submissionID uuid.UUID, linkType models.LinkType) (*models.MagicLink, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	ttl := batchLinkTTL
	if linkType == models.LinkReupload {
		ttl = reuploadLinkTTL
	}

	link := &models.MagicLink{
		Token:        token,
		SubmissionID: submissionID,
		Type:         linkType,
		ExpiresAt:    time.Now().Add(ttl),
	}
	if err := q.CreateMagicLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// checkLink applies the purpose, expiry, and consumption rules to a loaded
// link. Nothing marks a retake link used on a visit, so a used_at stamp on
// one can only mean a newer round superseded it; any stamped link is rejected
// regardless of type.
func checkLink(link *models.MagicLink, expected models.LinkType, now time.Time) error {
	if link.Type != expected {
		return ErrLinkWrongType
	}
	if link.Expired(now) {
		return ErrLinkExpired
	}
	if link.Used() {
		return ErrLinkUsed
	}
	return nil
}

// ValidateLink resolves a token and checks it against the expected purpose.
// Retake batch links stay valid across visits until expiry or supersession;
// single-use types are rejected once consumed.
func (s *Service) ValidateLink(ctx context.Context, token string, expected models.LinkType) (*models.MagicLink, error) {
	link, err := s.db.GetMagicLinkByToken(ctx, token)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	if err := checkLink(link, expected, time.Now()); err != nil {
		return nil, err
	}
	return link, nil
}

// LinkURL renders the homeowner-facing URL for a link.
func (s *Service) LinkURL(link *models.MagicLink) string {
	switch link.Type {
	case models.LinkDelivery:
		return s.baseURL + "/delivery/" + link.Token
	case models.LinkRetakeBatch:
		return s.baseURL + "/retakes/" + link.Token
	default:
		return s.baseURL + "/reupload/" + link.Token
	}
}

// CreateReuploadLink is the admin's ad hoc path: a short-lived single-use
// link mailed to the homeowner with optional instructions.
func (s *Service) CreateReuploadLink(ctx context.Context, submissionID uuid.UUID, instructions string) (string, error) {
	sub, err := s.db.GetSubmission(ctx, submissionID)
	if err != nil {
		return "", err
	}

	link, err := s.IssueLink(ctx, s.db, sub.ID, models.LinkReupload)
	if err != nil {
		return "", err
	}
	url := s.LinkURL(link)

	body, err := mailer.ReuploadLinkEmail(mailer.ReuploadLinkData{
		Name:             sub.HomeownerName,
		SubmissionNumber: sub.SubmissionNumber,
		MagicLink:        url,
		Instructions:     instructions,
	})
	if err != nil {
		return "", err
	}
	subject := fmt.Sprintf("Re-upload Photos - #%s", sub.SubmissionNumber)
	if err := s.mail.Send(ctx, sub.Email, subject, body); err != nil {
		return "", err
	}

	return url, nil
}
