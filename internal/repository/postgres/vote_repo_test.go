package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"conferenceagenda/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestVoteRepository_Create(t *testing.T) {
	at := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
		anyErr  bool
	}{
		{
			name: "first vote",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO speaker_votes`).
					WithArgs("u1", "ada-lovelace", at).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate vote",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`ON CONFLICT \(user_id, speaker_id\) DO NOTHING`).
					WithArgs("u1", "ada-lovelace", at).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrConflict,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO speaker_votes`).
					WithArgs("u1", "ada-lovelace", at).
					WillReturnError(sql.ErrConnDone)
			},
			anyErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewVoteRepository(db).Create(context.Background(), &domain.Vote{UserID: "u1", SpeakerID: "ada-lovelace", CreatedAt: at})
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVoteRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM speaker_votes`).WithArgs("u1", "ada-lovelace").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM speaker_votes`).WithArgs("u1", "ada-lovelace").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewVoteRepository(db)
	require.NoError(t, repo.Delete(context.Background(), "u1", "ada-lovelace"))
	require.ErrorIs(t, repo.Delete(context.Background(), "u1", "ada-lovelace"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_CountBySpeaker(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`GROUP BY speaker_id`).
		WillReturnRows(sqlmock.NewRows([]string{"speaker_id", "count"}).
			AddRow("ada-lovelace", 3).
			AddRow("grace-hopper", 1))

	got, err := NewVoteRepository(db).CountBySpeaker(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]int{"ada-lovelace": 3, "grace-hopper": 1}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
