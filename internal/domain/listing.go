package domain

import "time"

// ListingSummary is a venue or artist row with its locality and upcoming
// show count, as read from the store.
type ListingSummary struct {
	ID               int64
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}

// EntitySummary is the short form of a venue or artist used in listings
// and search results.
// swagger:model EntitySummary
type EntitySummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// LocalityGroup is the bucket of venues (or artists) sharing a city and state.
// swagger:model LocalityGroup
type LocalityGroup struct {
	City    string           `json:"city"`
	State   string           `json:"state"`
	Venues  []*EntitySummary `json:"venues,omitempty"`
	Artists []*EntitySummary `json:"artists,omitempty"`
}

// SearchResult is returned by venue and artist name searches.
// swagger:model SearchResult
type SearchResult struct {
	SearchTerm string           `json:"search_term"`
	Count      int              `json:"count"`
	Data       []*EntitySummary `json:"data"`
}

// BookedArtist is a show as seen from a venue page.
type BookedArtist struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// BookedVenue is a show as seen from an artist page.
type BookedVenue struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenueDetail is a venue with its shows split into past and upcoming.
// swagger:model VenueDetail
type VenueDetail struct {
	*Venue
	PastShows          []*BookedArtist `json:"past_shows"`
	UpcomingShows      []*BookedArtist `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

// ArtistDetail is an artist with its shows split into past and upcoming.
// swagger:model ArtistDetail
type ArtistDetail struct {
	*Artist
	PastShows          []*BookedVenue `json:"past_shows"`
	UpcomingShows      []*BookedVenue `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}
