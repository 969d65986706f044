package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"conferenceagenda/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var profileRowColumns = []string{"user_id", "display_name", "phone", "company", "bio", "interests", "intents", "available", "created_at", "updated_at"}

func TestProfileRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)
	p := &domain.Profile{
		UserID: "ada", DisplayName: "Ada", Company: "Analytical Engines",
		Interests: []string{"go"}, Intents: []string{"hiring"}, Available: true,
	}
	mock.ExpectQuery(`INSERT INTO profiles .* ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs("ada", "Ada", "", "Analytical Engines", "", pq.Array([]string{"go"}), pq.Array([]string{"hiring"}), true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))

	require.NoError(t, NewProfileRepository(db).Upsert(context.Background(), p))
	require.Equal(t, created, p.CreatedAt)
	require.Equal(t, updated, p.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetByUserID(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM profiles WHERE user_id = \$1`).WithArgs("ada").
					WillReturnRows(sqlmock.NewRows(profileRowColumns).
						AddRow("ada", "Ada", "", "AE", "", "{go,rust}", "{}", true, at, at))
			},
		},
		{
			name: "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM profiles WHERE user_id = \$1`).WithArgs("ada").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewProfileRepository(db).GetByUserID(ctx, "ada")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, []string{"go", "rust"}, got.Interests)
				require.Equal(t, []string{}, got.Intents)
				require.True(t, got.Available)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)
	filter := domain.ParticipantFilter{Search: "50%_off", Interest: " Go ", AvailableOnly: true, ExcludeUserID: "me"}
	params := domain.PaginationParams{Page: 2, PageSize: 10}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM profiles`).
		WithArgs("me", `%50\%\_off%`, "go", "", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`ORDER BY lower\(display_name\), user_id`).
		WithArgs("me", `%50\%\_off%`, "go", "", true, params.Limit(), params.Offset()).
		WillReturnRows(sqlmock.NewRows(profileRowColumns).
			AddRow("zed", "Zed", "", "", "50%_off deals", "{go}", "{}", true, at, at))

	got, total, err := NewProfileRepository(db).List(context.Background(), filter, params)
	require.NoError(t, err)
	require.Equal(t, 11, total)
	require.Len(t, got, 1)
	require.Equal(t, "zed", got[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_List_AllRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM profiles`).
		WithArgs("", "", "", "", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`LIMIT \$6 OFFSET \$7`).
		WithArgs("", "", "", "", false, nil, 0).
		WillReturnRows(sqlmock.NewRows(profileRowColumns))

	got, total, err := NewProfileRepository(db).List(context.Background(), domain.ParticipantFilter{}, domain.PaginationParams{Page: 1})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, got)
	require.NotNil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
