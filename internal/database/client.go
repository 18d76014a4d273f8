package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

// DBTX is satisfied by both *sql.DB and *sql.Tx so every query method works
// inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type queries struct {
	db DBTX
}

type Client struct {
	queries
	db *sql.DB
}

// Tx exposes the same query surface bound to one transaction.
type Tx struct {
	queries
}

func NewClient(connectionString string) (*Client, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewClientFromDB(db), nil
}

// NewClientFromDB wraps an already-open connection pool.
func NewClientFromDB(db *sql.DB) *Client {
	return &Client{queries: queries{db: db}, db: db}
}

func (c *Client) Close() error {
	return c.db.Close()
}

// WithSubmissionLock runs fn inside a transaction holding a row lock on the
// submission. Multi-step mutations of one submission aggregate (the review
// gate) go through here so concurrent callers serialize instead of
// interleaving last-write-wins updates.
func (c *Client) WithSubmissionLock(ctx context.Context, submissionID uuid.UUID, fn func(tx *Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	var id uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM submissions WHERE id = $1 FOR UPDATE`, submissionID).Scan(&id)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("submission %s: %w", submissionID, ErrNotFound)
		}
		return fmt.Errorf("failed to lock submission: %w", err)
	}

	if err := fn(&Tx{queries{db: tx}}); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
