package postgres

import (
	"context"
	"database/sql"

	"conferenceagenda/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns a domain.RegistrationRepository implemented with Postgres.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Add inserts the membership row; an existing row is left untouched.
func (r *registrationRepository) Add(ctx context.Context, userID, sessionID string) error {
	query := `
		INSERT INTO session_registrations (user_id, session_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, session_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, userID, sessionID)
	return err
}

// Remove deletes the membership row. Zero affected rows is not an error.
func (r *registrationRepository) Remove(ctx context.Context, userID, sessionID string) error {
	query := `DELETE FROM session_registrations WHERE user_id = $1 AND session_id = $2`
	_, err := r.DB.ExecContext(ctx, query, userID, sessionID)
	return err
}

func (r *registrationRepository) ListSessionIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT session_id
		FROM session_registrations
		WHERE user_id = $1
		ORDER BY created_at, session_id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
