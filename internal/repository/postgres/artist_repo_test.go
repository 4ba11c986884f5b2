package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/vishyarjun/fyyur/internal/domain"
)

func TestArtistRepository_Create(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	artist := &domain.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA", SeekingVenues: true, Genres: []string{"Rock n Roll"}}
	mock.ExpectQuery(`INSERT INTO artists \(name, city, state, phone`).
		WithArgs("Guns N Petals", "San Francisco", "CA", "", "", "", "", true, "", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	require.NoError(t, NewArtistRepository(db).Create(ctx, artist))
	require.Equal(t, int64(4), artist.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "name", "city", "state", "phone", "image_link", "facebook_link", "website", "seeking_venues", "seeking_description", "genres"}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Artist
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, city, state, phone, .* FROM artists WHERE id = \$1`).
					WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(int64(5), "Matt Quevedo", "New York", "NY", "300-400-5000", "", "https://www.facebook.com/mattquevedo923251523", "", false, "", "{Jazz}"))
			},
			want: &domain.Artist{
				ID: 5, Name: "Matt Quevedo", City: "New York", State: "NY", Phone: "300-400-5000",
				FacebookLink: "https://www.facebook.com/mattquevedo923251523", Genres: []string{"Jazz"},
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM artists WHERE id = \$1`).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)
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

			got, err := NewArtistRepository(db).GetByID(ctx, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestArtistRepository_Search(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE a.name ILIKE \$2(.|\n)*ORDER BY a.id`).
		WithArgs(now, "%band%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "count"}).
			AddRow(int64(6), "The Wild Sax Band", "San Francisco", "CA", 3))

	got, err := NewArtistRepository(db).Search(ctx, "band", now)
	require.NoError(t, err)
	require.Equal(t, []*domain.ListingSummary{{ID: 6, Name: "The Wild Sax Band", City: "San Francisco", State: "CA", NumUpcomingShows: 3}}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM artists WHERE id = \$1`).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewArtistRepository(db).Delete(ctx, 9)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
