package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"conferenceagenda/internal/domain"

	"github.com/lib/pq"
)

type profileRepository struct {
	DB *sql.DB
}

// NewProfileRepository returns a domain.ProfileRepository implemented with Postgres.
func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{DB: db}
}

const profileColumns = `user_id, display_name, phone, company, bio, interests, intents, available, created_at, updated_at`

// participantWhere is shared by the directory page and its count. Empty filter values
// disable their clause.
const participantWhere = `
		WHERE user_id <> $1
		  AND ($2 = '' OR display_name ILIKE $2 OR company ILIKE $2 OR bio ILIKE $2)
		  AND ($3 = '' OR $3 = ANY(interests))
		  AND ($4 = '' OR $4 = ANY(intents))
		  AND (NOT $5 OR available)
`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPattern turns free text into an ILIKE substring pattern with wildcards escaped.
func searchPattern(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(s) + "%"
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	p := &domain.Profile{}
	var interests, intents pq.StringArray
	if err := row.Scan(&p.UserID, &p.DisplayName, &p.Phone, &p.Company, &p.Bio,
		&interests, &intents, &p.Available, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Interests = append([]string{}, interests...)
	p.Intents = append([]string{}, intents...)
	return p, nil
}

// Upsert writes the profile; created_at survives replacement.
func (r *profileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, display_name, phone, company, bio, interests, intents, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			phone = EXCLUDED.phone,
			company = EXCLUDED.company,
			bio = EXCLUDED.bio,
			interests = EXCLUDED.interests,
			intents = EXCLUDED.intents,
			available = EXCLUDED.available,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`
	return r.DB.QueryRowContext(ctx, query,
		p.UserID, p.DisplayName, p.Phone, p.Company, p.Bio,
		pq.Array(p.Interests), pq.Array(p.Intents), p.Available,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	p, err := scanProfile(r.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns one directory page ordered by display name, and the filtered total.
func (r *profileRepository) List(ctx context.Context, filter domain.ParticipantFilter, params domain.PaginationParams) ([]*domain.Profile, int, error) {
	args := []any{
		filter.ExcludeUserID,
		searchPattern(filter.Search),
		strings.ToLower(strings.TrimSpace(filter.Interest)),
		strings.ToLower(strings.TrimSpace(filter.Intent)),
		filter.AvailableOnly,
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`+participantWhere, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + profileColumns + ` FROM profiles` + participantWhere + `
		ORDER BY lower(display_name), user_id
		LIMIT $6 OFFSET $7
	`
	limit := sql.NullInt64{Int64: int64(params.Limit()), Valid: params.Limit() > 0}
	rows, err := r.DB.QueryContext(ctx, query, append(args, limit, params.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	profiles := []*domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
