package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/vishyarjun/fyyur/internal/domain"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link, website, seeking_talent, seeking_description, genres`

type venueRepository struct {
	DB DBTX
}

// NewVenueRepository returns a domain.VenueRepository implemented with Postgres.
func NewVenueRepository(db DBTX) domain.VenueRepository {
	return &venueRepository{DB: db}
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, website, seeking_talent, seeking_description, genres)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Website,
		v.SeekingTalent, v.SeekingDescription, pq.Array(v.Genres),
	).Scan(&v.ID)
	return mapError(err)
}

func (r *venueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	return r.get(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
}

func (r *venueRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Venue, error) {
	return r.get(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1 FOR UPDATE`, id)
}

func (r *venueRepository) get(ctx context.Context, query string, id int64) (*domain.Venue, error) {
	v := &domain.Venue{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.FacebookLink,
		&v.Website, &v.SeekingTalent, &v.SeekingDescription, pq.Array(&v.Genres),
	)
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *venueRepository) ListSummaries(ctx context.Context, now time.Time) ([]*domain.ListingSummary, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state, COUNT(s.id) FILTER (WHERE s.start_time > $1)
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.id
	`
	return querySummaries(ctx, r.DB, query, now)
}

func (r *venueRepository) Search(ctx context.Context, term string, now time.Time) ([]*domain.ListingSummary, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state, COUNT(s.id) FILTER (WHERE s.start_time > $1)
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $2
		GROUP BY v.id
		ORDER BY v.id
	`
	return querySummaries(ctx, r.DB, query, now, likePattern(term))
}

func (r *venueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6, image_link = $7,
		    facebook_link = $8, website = $9, seeking_talent = $10, seeking_description = $11, genres = $12
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		v.ID, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Website,
		v.SeekingTalent, v.SeekingDescription, pq.Array(v.Genres),
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

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// querySummaries scans (id, name, city, state, upcoming) rows.
func querySummaries(ctx context.Context, db DBTX, query string, args ...any) ([]*domain.ListingSummary, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.ListingSummary, 0)
	for rows.Next() {
		s := &domain.ListingSummary{}
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.State, &s.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
