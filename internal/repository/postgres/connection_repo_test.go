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

var connectionColumns = []string{"sender_id", "receiver_id", "status", "created_at", "updated_at"}

func TestConnectionRepository_Create(t *testing.T) {
	at := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "new request",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO connections`).
					WithArgs("alice", "bob", "pending", at).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "already requested",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`ON CONFLICT \(sender_id, receiver_id\) DO NOTHING`).
					WithArgs("alice", "bob", "pending", at).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			conn := &domain.Connection{SenderID: "alice", ReceiverID: "bob", Status: domain.ConnectionPending, CreatedAt: at}
			err = NewConnectionRepository(db).Create(context.Background(), conn)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, at, conn.UpdatedAt)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConnectionRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM connections`).WithArgs("alice", "bob").WillReturnError(sql.ErrNoRows)

	_, err = NewConnectionRepository(db).Get(context.Background(), "alice", "bob")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_Accept(t *testing.T) {
	created := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)
	accepted := created.Add(time.Hour)

	t.Run("pending request accepted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE connections SET status = 'accepted'`).
			WithArgs("alice", "bob", accepted).
			WillReturnRows(sqlmock.NewRows(connectionColumns).AddRow("alice", "bob", "accepted", created, accepted))

		got, err := NewConnectionRepository(db).Accept(context.Background(), "alice", "bob", accepted)
		require.NoError(t, err)
		require.Equal(t, domain.ConnectionAccepted, got.Status)
		require.Equal(t, accepted, got.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing pending", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE connections`).WithArgs("alice", "bob", accepted).WillReturnError(sql.ErrNoRows)

		_, err = NewConnectionRepository(db).Accept(context.Background(), "alice", "bob", accepted)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConnectionRepository_Lists(t *testing.T) {
	at := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE \(sender_id = \$1 OR receiver_id = \$1\) AND status = 'accepted'`).WithArgs("bob").
		WillReturnRows(sqlmock.NewRows(connectionColumns).
			AddRow("alice", "bob", "accepted", at, at).
			AddRow("bob", "carol", "accepted", at, at))
	mock.ExpectQuery(`WHERE receiver_id = \$1 AND status = 'pending'`).WithArgs("bob").
		WillReturnRows(sqlmock.NewRows(connectionColumns))

	repo := NewConnectionRepository(db)
	accepted, err := repo.ListAccepted(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, accepted, 2)
	require.Equal(t, "carol", accepted[1].Other("bob"))

	pending, err := repo.ListPending(context.Background(), "bob")
	require.NoError(t, err)
	require.NotNil(t, pending)
	require.Empty(t, pending)
	require.NoError(t, mock.ExpectationsWereMet())
}
