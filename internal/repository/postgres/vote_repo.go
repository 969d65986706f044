package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"conferenceagenda/internal/domain"
)

type voteRepository struct {
	DB *sql.DB
}

// NewVoteRepository returns a domain.VoteRepository implemented with Postgres.
func NewVoteRepository(db *sql.DB) domain.VoteRepository {
	return &voteRepository{DB: db}
}

// Create relies on the (user_id, speaker_id) key: a repeated vote inserts nothing and
// reports ErrConflict.
func (r *voteRepository) Create(ctx context.Context, v *domain.Vote) error {
	query := `
		INSERT INTO speaker_votes (user_id, speaker_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, speaker_id) DO NOTHING
	`
	res, err := r.DB.ExecContext(ctx, query, v.UserID, v.SpeakerID, v.CreatedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: already voted for this speaker", domain.ErrConflict)
	}
	return nil
}

func (r *voteRepository) Delete(ctx context.Context, userID, speakerID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM speaker_votes WHERE user_id = $1 AND speaker_id = $2`, userID, speakerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *voteRepository) CountBySpeaker(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT speaker_id, COUNT(*) FROM speaker_votes GROUP BY speaker_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var (
			id    string
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
