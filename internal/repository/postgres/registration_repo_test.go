package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "new membership",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO session_registrations`).
					WithArgs("user-1", "session-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "existing membership is a no-op",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`ON CONFLICT \(user_id, session_id\) DO NOTHING`).
					WithArgs("user-1", "session-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO session_registrations`).
					WithArgs("user-1", "session-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Add(ctx, "user-1", "session-1")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_Remove(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "member removed",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM session_registrations`).
					WithArgs("user-1", "session-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "non-member is not an error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM session_registrations`).
					WithArgs("user-1", "session-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM session_registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Remove(ctx, "user-1", "session-1")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_ListSessionIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ids in stored order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"session_id"}).AddRow("b").AddRow("a")
		mock.ExpectQuery(`SELECT session_id`).WithArgs("user-1").WillReturnRows(rows)

		got, err := NewRegistrationRepository(db).ListSessionIDs(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, []string{"b", "a"}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no registrations yields empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT session_id`).WithArgs("user-2").WillReturnRows(sqlmock.NewRows([]string{"session_id"}))

		got, err := NewRegistrationRepository(db).ListSessionIDs(ctx, "user-2")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT session_id`).WillReturnError(sql.ErrConnDone)

		_, err = NewRegistrationRepository(db).ListSessionIDs(ctx, "user-1")
		require.Error(t, err)
	})
}
