package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conferenceagenda/internal/domain"

	"github.com/lib/pq"
)

type threadRepository struct {
	DB *sql.DB
}

// NewThreadRepository returns a domain.ThreadRepository implemented with Postgres.
func NewThreadRepository(db *sql.DB) domain.ThreadRepository {
	return &threadRepository{DB: db}
}

func scanThread(row rowScanner) (*domain.Thread, error) {
	t := &domain.Thread{}
	var (
		participants  pq.StringArray
		lastMessageAt sql.NullTime
	)
	if err := row.Scan(&t.Key, &participants, &t.LastMessage, &lastMessageAt, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Participants = []string(participants)
	if lastMessageAt.Valid {
		t.LastMessageAt = lastMessageAt.Time
	}
	return t, nil
}

// Ensure inserts the thread if missing and returns the stored row either way.
// The no-op update makes RETURNING yield the existing row on conflict.
func (r *threadRepository) Ensure(ctx context.Context, thread *domain.Thread) (*domain.Thread, error) {
	query := `
		INSERT INTO threads (key, participants, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET key = EXCLUDED.key
		RETURNING key, participants, last_message, last_message_at, created_at
	`
	return scanThread(r.DB.QueryRowContext(ctx, query, thread.Key, pq.Array(thread.Participants), thread.CreatedAt))
}

func (r *threadRepository) GetByKey(ctx context.Context, key string) (*domain.Thread, error) {
	query := `
		SELECT key, participants, last_message, last_message_at, created_at
		FROM threads
		WHERE key = $1
	`
	t, err := scanThread(r.DB.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *threadRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Thread, error) {
	query := `
		SELECT key, participants, last_message, last_message_at, created_at
		FROM threads
		WHERE $1 = ANY(participants)
		ORDER BY last_message_at DESC NULLS LAST, created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	threads := []*domain.Thread{}
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}

// AddMessage stores the message and updates the thread preview in one transaction.
func (r *threadRepository) AddMessage(ctx context.Context, msg *domain.Message) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	insert := `
		INSERT INTO messages (thread_key, sender_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, insert, msg.ThreadKey, msg.SenderID, msg.Text, msg.CreatedAt).Scan(&msg.ID); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	update := `UPDATE threads SET last_message = $2, last_message_at = $3 WHERE key = $1`
	if _, err := tx.ExecContext(ctx, update, msg.ThreadKey, msg.Text, msg.CreatedAt); err != nil {
		return fmt.Errorf("update thread: %w", err)
	}
	return tx.Commit()
}

// ListMessages returns one page of the thread's messages, oldest first, and the total count.
// A zero page size binds LIMIT NULL, which returns every message.
func (r *threadRepository) ListMessages(ctx context.Context, key string, params domain.PaginationParams) ([]*domain.Message, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE thread_key = $1`, key).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, thread_key, sender_id, text, created_at
		FROM messages
		WHERE thread_key = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`
	limit := sql.NullInt64{Int64: int64(params.Limit()), Valid: params.Limit() > 0}
	rows, err := r.DB.QueryContext(ctx, query, key, limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	messages := []*domain.Message{}
	for rows.Next() {
		m := &domain.Message{}
		if err := rows.Scan(&m.ID, &m.ThreadKey, &m.SenderID, &m.Text, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
