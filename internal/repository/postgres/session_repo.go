package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conferenceagenda/internal/domain"

	"github.com/lib/pq"
)

const sessionColumns = `id, date, start_time, end_time, duration, track, speakers, location, title, description, capacity, created_at, updated_at`

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &SessionRepository{
		DB: db,
	}
}

// Upsert validates the session and writes it, replacing any stored session with the same id.
// An empty end time is stored as NULL so the duration is used instead.
func (r *SessionRepository) Upsert(ctx context.Context, s *domain.Session) error {
	if s.EndTime != nil && *s.EndTime == "" {
		s.EndTime = nil
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("session %q: %w", s.ID, err)
	}
	if s.Speakers == nil {
		s.Speakers = []string{}
	}
	query := `
		INSERT INTO sessions (id, date, start_time, end_time, duration, track, speakers, location, title, description, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE
		SET date = EXCLUDED.date, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time,
			duration = EXCLUDED.duration, track = EXCLUDED.track, speakers = EXCLUDED.speakers,
			location = EXCLUDED.location, title = EXCLUDED.title, description = EXCLUDED.description,
			capacity = EXCLUDED.capacity, updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Date, s.StartTime, nullString(s.EndTime), nullInt(s.Duration),
		s.Track, pq.Array(s.Speakers), s.Location, s.Title, s.Description, nullInt(s.Capacity),
		s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	sess, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY date, start_time, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

func (r *SessionRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ANY($1) ORDER BY date, start_time, id`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	var (
		endTime  sql.NullString
		duration sql.NullInt64
		capacity sql.NullInt64
		speakers pq.StringArray
	)
	if err := row.Scan(&s.ID, &s.Date, &s.StartTime, &endTime, &duration, &s.Track, &speakers,
		&s.Location, &s.Title, &s.Description, &capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if endTime.Valid && endTime.String != "" {
		v := endTime.String
		s.EndTime = &v
	}
	if duration.Valid {
		v := int(duration.Int64)
		s.Duration = &v
	}
	if capacity.Valid {
		v := int(capacity.Int64)
		s.Capacity = &v
	}
	s.Speakers = []string(speakers)
	if s.Speakers == nil {
		s.Speakers = []string{}
	}
	return s, nil
}

func collectSessions(rows *sql.Rows) ([]*domain.Session, error) {
	defer rows.Close()
	sessions := []*domain.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
