package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"guestwall/internal/domain"
)

func TestGuestRepository_GetByInvitationCode(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "name", "invitation_code", "attending", "plus_one", "created_at"}

	tests := []struct {
		name    string
		code    string
		mock    func(mock sqlmock.Sqlmock)
		want    string
		wantErr error
	}{
		{
			name: "found",
			code: "family001",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM guests`).
					WithArgs("family001").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("guest-1", "Ana", "FAMILY001", true, false, createdAt))
			},
			want: "guest-1",
		},
		{
			name: "code is trimmed before querying",
			code: "  family001  ",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM guests`).
					WithArgs("family001").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("guest-1", "Ana", "FAMILY001", true, false, createdAt))
			},
			want: "guest-1",
		},
		{
			name: "unknown code maps to ErrNotFound",
			code: "nope",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM guests`).
					WithArgs("nope").
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
			repo := NewGuestRepository(db)
			guest, err := repo.GetByInvitationCode(ctx, tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, guest.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGuestRepository_List(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "name", "invitation_code", "attending", "plus_one", "created_at"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM guests`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("guest-1", "Ana", "FAMILY001", true, false, createdAt).
			AddRow("guest-2", "Bruno", "", false, false, createdAt))

	repo := NewGuestRepository(db)
	guests, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 2)
	require.Equal(t, "Ana", guests[0].Name)
	require.Empty(t, guests[1].InvitationCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
