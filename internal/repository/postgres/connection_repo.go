package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"conferenceagenda/internal/domain"
)

type connectionRepository struct {
	DB *sql.DB
}

// NewConnectionRepository returns a domain.ConnectionRepository implemented with Postgres.
func NewConnectionRepository(db *sql.DB) domain.ConnectionRepository {
	return &connectionRepository{DB: db}
}

func scanConnection(row rowScanner) (*domain.Connection, error) {
	c := &domain.Connection{}
	var status string
	if err := row.Scan(&c.SenderID, &c.ReceiverID, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Status = domain.ConnectionStatus(status)
	return c, nil
}

func (r *connectionRepository) Get(ctx context.Context, senderID, receiverID string) (*domain.Connection, error) {
	query := `
		SELECT sender_id, receiver_id, status, created_at, updated_at
		FROM connections
		WHERE sender_id = $1 AND receiver_id = $2
	`
	c, err := scanConnection(r.DB.QueryRowContext(ctx, query, senderID, receiverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create inserts the request. A row already present for the pair reports ErrConflict.
func (r *connectionRepository) Create(ctx context.Context, c *domain.Connection) error {
	query := `
		INSERT INTO connections (sender_id, receiver_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (sender_id, receiver_id) DO NOTHING
	`
	res, err := r.DB.ExecContext(ctx, query, c.SenderID, c.ReceiverID, string(c.Status), c.CreatedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: connection request already exists", domain.ErrConflict)
	}
	c.UpdatedAt = c.CreatedAt
	return nil
}

func (r *connectionRepository) Accept(ctx context.Context, senderID, receiverID string, at time.Time) (*domain.Connection, error) {
	query := `
		UPDATE connections SET status = 'accepted', updated_at = $3
		WHERE sender_id = $1 AND receiver_id = $2 AND status = 'pending'
		RETURNING sender_id, receiver_id, status, created_at, updated_at
	`
	c, err := scanConnection(r.DB.QueryRowContext(ctx, query, senderID, receiverID, at))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *connectionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Connection, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	conns := []*domain.Connection{}
	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		conns = append(conns, c)
	}
	return conns, rows.Err()
}

func (r *connectionRepository) ListAccepted(ctx context.Context, userID string) ([]*domain.Connection, error) {
	return r.list(ctx, `
		SELECT sender_id, receiver_id, status, created_at, updated_at
		FROM connections
		WHERE (sender_id = $1 OR receiver_id = $1) AND status = 'accepted'
		ORDER BY updated_at DESC, sender_id, receiver_id
	`, userID)
}

func (r *connectionRepository) ListPending(ctx context.Context, receiverID string) ([]*domain.Connection, error) {
	return r.list(ctx, `
		SELECT sender_id, receiver_id, status, created_at, updated_at
		FROM connections
		WHERE receiver_id = $1 AND status = 'pending'
		ORDER BY created_at, sender_id
	`, receiverID)
}
