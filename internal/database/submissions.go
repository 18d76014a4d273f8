package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"listing-lift-backend/internal/models"
)

const submissionColumns = `id, submission_number, homeowner_name, email, phone, property_address,
	city, province_state, postal_zip, notes, status, COALESCE(review_status, ''), retake_round,
	retakes_sent_at, delivered_at, completed_at, deletion_scheduled_at,
	client_feedback_status, client_feedback_notes, client_feedback_at, created_at, updated_at`

func scanSubmission(row interface{ Scan(...interface{}) error }) (*models.Submission, error) {
	var s models.Submission
	err := row.Scan(
		&s.ID, &s.SubmissionNumber, &s.HomeownerName, &s.Email, &s.Phone, &s.PropertyAddress,
		&s.City, &s.ProvinceState, &s.PostalZip, &s.Notes, &s.Status, &s.ReviewStatus, &s.RetakeRound,
		&s.RetakesSentAt, &s.DeliveredAt, &s.CompletedAt, &s.DeletionScheduledAt,
		&s.ClientFeedbackStatus, &s.ClientFeedbackNotes, &s.ClientFeedbackAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan submission: %w", err)
	}
	return &s, nil
}

// insertSubmission writes the submission row and its photos on whatever
// connection q is bound to. Photos get sequential sort order in the order
// given.
func (q *queries) insertSubmission(ctx context.Context, s *models.Submission) (*models.Submission, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO submissions (submission_number, homeowner_name, email, phone, property_address,
			city, province_state, postal_zip, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+submissionColumns,
		s.SubmissionNumber, s.HomeownerName, s.Email, s.Phone, s.PropertyAddress,
		s.City, s.ProvinceState, s.PostalZip, s.Notes, s.Status,
	)
	created, err := scanSubmission(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	for i := range s.Photos {
		p := &s.Photos[i]
		err := q.db.QueryRowContext(ctx, `
			INSERT INTO photos (submission_id, room_category, sub_category, caption, original_url,
				status, orientation, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at`,
			created.ID, p.RoomCategory, p.SubCategory, p.Caption, p.OriginalURL,
			models.PhotoPending, p.Orientation, i,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create photo: %w", err)
		}
		p.SubmissionID = created.ID
		p.Status = models.PhotoPending
		p.SortOrder = i
	}
	created.Photos = s.Photos
	return created, nil
}

// CreateSubmission inserts the submission and all its photos atomically. A
// photo insert failure rolls the whole intake back so no submission row (or
// consumed submission number) is left behind without its photos.
func (c *Client) CreateSubmission(ctx context.Context, s *models.Submission) (*models.Submission, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	created, err := (&queries{db: tx}).insertSubmission(ctx, s)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submission: %w", err)
	}
	return created, nil
}

// IsUniqueViolation reports whether err is a duplicate-key failure, used by
// the submission-number retry loop.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (q *queries) GetSubmission(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id)
	return scanSubmission(row)
}

// GetSubmissionWithPhotos loads the submission and its photos ordered by sort
// order.
func (q *queries) GetSubmissionWithPhotos(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	s, err := q.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := q.ListPhotos(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Photos = photos
	return s, nil
}

func (q *queries) ListSubmissions(ctx context.Context, status, email string) ([]models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE 1=1`
	args := []interface{}{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if email != "" {
		args = append(args, email)
		query += fmt.Sprintf(" AND email = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *s)
	}
	return submissions, rows.Err()
}

func (q *queries) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status models.SubmissionStatus) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE submissions SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// MarkRetakesSent records the retake branch of the review gate.
func (q *queries) MarkRetakesSent(ctx context.Context, id uuid.UUID, round int, at time.Time) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE submissions
		SET status = $1, review_status = $2, retake_round = $3, retakes_sent_at = $4, updated_at = NOW()
		WHERE id = $5`,
		models.SubmissionInProgress, models.ReviewRetakesPending, round, at, id)
	return err
}

// MarkDelivered records the delivery branch of the review gate. Deletion is
// scheduled 21 days out; enforcement is external.
func (q *queries) MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := q.db.ExecContext(ctx, `
		UPDATE submissions
		SET status = $1, review_status = $2, delivered_at = $3, completed_at = $3,
			deletion_scheduled_at = $4, updated_at = NOW()
		WHERE id = $5`,
		models.SubmissionCompleted, models.ReviewDelivered, at, at.Add(21*24*time.Hour), id)
	return err
}

func (q *queries) SetClientFeedback(ctx context.Context, id uuid.UUID, status, notes string, approved bool) error {
	review := sql.NullString{}
	if approved {
		review = sql.NullString{String: string(models.ReviewClientApproved), Valid: true}
	}
	_, err := q.db.ExecContext(ctx, `
		UPDATE submissions
		SET client_feedback_status = $1, client_feedback_notes = NULLIF($2, ''),
			client_feedback_at = NOW(),
			review_status = COALESCE($3, review_status),
			updated_at = NOW()
		WHERE id = $4`,
		status, notes, review, id)
	return err
}

func (q *queries) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
