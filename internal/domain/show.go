package domain

import (
	"context"
	"time"
)

// ShowTimeLayout is the start_time layout used by the show form and in
// user-facing messages.
const ShowTimeLayout = "2006-01-02 15:04:05"

// Show is a booking of one artist at one venue at a given time.
// swagger:model Show
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// Label names the show in user-facing messages, e.g. "at 2035-04-01 20:00:00".
func (s *Show) Label() string {
	return "at " + s.StartTime.UTC().Format(ShowTimeLayout)
}

// Validate checks that the show names a venue, an artist and a start time.
// Whether the venue and artist exist is left to the store.
func (s *Show) Validate() error {
	var p problems
	if s.VenueID <= 0 {
		p = append(p, "venue_id must be a positive integer")
	}
	if s.ArtistID <= 0 {
		p = append(p, "artist_id must be a positive integer")
	}
	if s.StartTime.IsZero() {
		p = append(p, "start_time is required")
	}
	return p.err()
}

// ShowListing is a show joined with its venue and artist.
// swagger:model ShowListing
type ShowListing struct {
	ID              int64     `json:"id"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// IsUpcoming reports whether the show starts strictly after now.
func (s *ShowListing) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// ShowRepository defines storage for shows. Listings are ordered by
// start_time, then id.
type ShowRepository interface {
	Create(ctx context.Context, s *Show) error
	List(ctx context.Context) ([]*ShowListing, error)
	ListByVenueID(ctx context.Context, venueID int64) ([]*ShowListing, error)
	ListByArtistID(ctx context.Context, artistID int64) ([]*ShowListing, error)
	CountByVenueID(ctx context.Context, venueID int64) (int, error)
	CountByArtistID(ctx context.Context, artistID int64) (int, error)
	DeleteByVenueID(ctx context.Context, venueID int64) (int64, error)
	DeleteByArtistID(ctx context.Context, artistID int64) (int64, error)
}

// ShowService defines show queries and mutations.
type ShowService interface {
	List(ctx context.Context) ([]*ShowListing, error)
	Create(ctx context.Context, s *Show) error
}
