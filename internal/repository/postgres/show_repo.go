package postgres

import (
	"context"

	"github.com/vishyarjun/fyyur/internal/domain"
)

const showListingSelect = `
	SELECT s.id, s.venue_id, v.name, v.image_link, s.artist_id, a.name, a.image_link, s.start_time
	FROM shows s
	INNER JOIN venues v ON v.id = s.venue_id
	INNER JOIN artists a ON a.id = s.artist_id
`

type showRepository struct {
	DB DBTX
}

// NewShowRepository returns a domain.ShowRepository implemented with Postgres.
func NewShowRepository(db DBTX) domain.ShowRepository {
	return &showRepository{DB: db}
}

func (r *showRepository) Create(ctx context.Context, s *domain.Show) error {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.VenueID, s.ArtistID, s.StartTime).Scan(&s.ID)
	return mapError(err)
}

func (r *showRepository) List(ctx context.Context) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingSelect+` ORDER BY s.start_time, s.id`)
}

func (r *showRepository) ListByVenueID(ctx context.Context, venueID int64) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingSelect+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *showRepository) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.ShowListing, error) {
	return r.listings(ctx, showListingSelect+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *showRepository) listings(ctx context.Context, query string, args ...any) ([]*domain.ShowListing, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.ShowListing, 0)
	for rows.Next() {
		l := &domain.ShowListing{}
		if err := rows.Scan(&l.ID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *showRepository) CountByVenueID(ctx context.Context, venueID int64) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = $1`, venueID).Scan(&n)
	return n, err
}

func (r *showRepository) CountByArtistID(ctx context.Context, artistID int64) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE artist_id = $1`, artistID).Scan(&n)
	return n, err
}

func (r *showRepository) DeleteByVenueID(ctx context.Context, venueID int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, venueID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *showRepository) DeleteByArtistID(ctx context.Context, artistID int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = $1`, artistID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
