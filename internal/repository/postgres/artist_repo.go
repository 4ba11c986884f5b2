package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/vishyarjun/fyyur/internal/domain"
)

const artistColumns = `id, name, city, state, phone, image_link, facebook_link, website, seeking_venues, seeking_description, genres`

type artistRepository struct {
	DB DBTX
}

// NewArtistRepository returns a domain.ArtistRepository implemented with Postgres.
func NewArtistRepository(db DBTX) domain.ArtistRepository {
	return &artistRepository{DB: db}
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO artists (name, city, state, phone, image_link, facebook_link, website, seeking_venues, seeking_description, genres)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink, a.Website,
		a.SeekingVenues, a.SeekingDescription, pq.Array(a.Genres),
	).Scan(&a.ID)
	return mapError(err)
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	return r.get(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = $1`, id)
}

func (r *artistRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Artist, error) {
	return r.get(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = $1 FOR UPDATE`, id)
}

func (r *artistRepository) get(ctx context.Context, query string, id int64) (*domain.Artist, error) {
	a := &domain.Artist{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink, &a.FacebookLink,
		&a.Website, &a.SeekingVenues, &a.SeekingDescription, pq.Array(&a.Genres),
	)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *artistRepository) ListSummaries(ctx context.Context, now time.Time) ([]*domain.ListingSummary, error) {
	query := `
		SELECT a.id, a.name, a.city, a.state, COUNT(s.id) FILTER (WHERE s.start_time > $1)
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		GROUP BY a.id
		ORDER BY a.id
	`
	return querySummaries(ctx, r.DB, query, now)
}

func (r *artistRepository) Search(ctx context.Context, term string, now time.Time) ([]*domain.ListingSummary, error) {
	query := `
		SELECT a.id, a.name, a.city, a.state, COUNT(s.id) FILTER (WHERE s.start_time > $1)
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $2
		GROUP BY a.id
		ORDER BY a.id
	`
	return querySummaries(ctx, r.DB, query, now, likePattern(term))
}

func (r *artistRepository) Update(ctx context.Context, a *domain.Artist) error {
	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, image_link = $6, facebook_link = $7,
		    website = $8, seeking_venues = $9, seeking_description = $10, genres = $11
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		a.ID, a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink, a.Website,
		a.SeekingVenues, a.SeekingDescription, pq.Array(a.Genres),
	)
	if err != nil {
		return mapError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
