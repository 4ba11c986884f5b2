package controllers

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vishyarjun/fyyur/internal/delivery/http/helpers"
	"github.com/vishyarjun/fyyur/internal/domain"
)

// SearchRequest is the body of POST /venues/search and POST /artists/search.
type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

// BindForm implements helpers.FormBinder.
func (s *SearchRequest) BindForm(values url.Values) []string {
	s.SearchTerm = values.Get("search_term")
	return nil
}

// Term is the trimmed search term.
func (s *SearchRequest) Term() string {
	return strings.TrimSpace(s.SearchTerm)
}

// VenueRequest is the body of POST /venues/create and POST /venues/{id}/edit.
// Omitted JSON fields are left unchanged on edit.
type VenueRequest struct {
	Name               *string       `json:"name"`
	City               *string       `json:"city"`
	State              *string       `json:"state"`
	Address            *string       `json:"address"`
	Phone              *string       `json:"phone"`
	ImageLink          *string       `json:"image_link"`
	FacebookLink       *string       `json:"facebook_link"`
	Website            *string       `json:"website"`
	SeekingTalent      *helpers.Flag `json:"seeking_talent"`
	SeekingDescription *string       `json:"seeking_description"`
	Genres             []string      `json:"genres"`
}

// BindForm implements helpers.FormBinder. A form always carries the whole
// venue, so an unchecked seeking_talent box and an empty genres select are
// submitted as false and none.
func (v *VenueRequest) BindForm(values url.Values) []string {
	v.Name = helpers.FormString(values, "name")
	v.City = helpers.FormString(values, "city")
	v.State = helpers.FormString(values, "state")
	v.Address = helpers.FormString(values, "address")
	v.Phone = helpers.FormString(values, "phone")
	v.ImageLink = helpers.FormString(values, "image_link")
	v.FacebookLink = helpers.FormString(values, "facebook_link")
	v.Website = helpers.FormString(values, "website")
	v.SeekingDescription = helpers.FormString(values, "seeking_description")
	v.Genres = helpers.FormList(values, "genres")
	flag, err := helpers.FormFlag(values, "seeking_talent")
	if err != nil {
		return []string{err.Error()}
	}
	v.SeekingTalent = flag
	return nil
}

// Venue returns the venue described by a create request.
func (v *VenueRequest) Venue() *domain.Venue {
	out := &domain.Venue{
		Name:               helpers.Deref(v.Name),
		City:               helpers.Deref(v.City),
		State:              helpers.Deref(v.State),
		Address:            helpers.Deref(v.Address),
		Phone:              helpers.Deref(v.Phone),
		ImageLink:          helpers.Deref(v.ImageLink),
		FacebookLink:       helpers.Deref(v.FacebookLink),
		Website:            helpers.Deref(v.Website),
		SeekingDescription: helpers.Deref(v.SeekingDescription),
		Genres:             v.Genres,
	}
	if b := v.SeekingTalent.Bool(); b != nil {
		out.SeekingTalent = *b
	}
	return out
}

// Patch returns the edit described by the request.
func (v *VenueRequest) Patch() *domain.VenuePatch {
	return &domain.VenuePatch{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent.Bool(),
		SeekingDescription: v.SeekingDescription,
		Genres:             v.Genres,
	}
}

// ArtistRequest is the body of POST /artists/create and POST /artists/{id}/edit.
// Omitted JSON fields are left unchanged on edit.
type ArtistRequest struct {
	Name               *string       `json:"name"`
	City               *string       `json:"city"`
	State              *string       `json:"state"`
	Phone              *string       `json:"phone"`
	ImageLink          *string       `json:"image_link"`
	FacebookLink       *string       `json:"facebook_link"`
	Website            *string       `json:"website"`
	SeekingVenues      *helpers.Flag `json:"seeking_venues"`
	SeekingDescription *string       `json:"seeking_description"`
	Genres             []string      `json:"genres"`
}

// BindForm implements helpers.FormBinder.
func (a *ArtistRequest) BindForm(values url.Values) []string {
	a.Name = helpers.FormString(values, "name")
	a.City = helpers.FormString(values, "city")
	a.State = helpers.FormString(values, "state")
	a.Phone = helpers.FormString(values, "phone")
	a.ImageLink = helpers.FormString(values, "image_link")
	a.FacebookLink = helpers.FormString(values, "facebook_link")
	a.Website = helpers.FormString(values, "website")
	a.SeekingDescription = helpers.FormString(values, "seeking_description")
	a.Genres = helpers.FormList(values, "genres")
	flag, err := helpers.FormFlag(values, "seeking_venues")
	if err != nil {
		return []string{err.Error()}
	}
	a.SeekingVenues = flag
	return nil
}

// Artist returns the artist described by a create request.
func (a *ArtistRequest) Artist() *domain.Artist {
	out := &domain.Artist{
		Name:               helpers.Deref(a.Name),
		City:               helpers.Deref(a.City),
		State:              helpers.Deref(a.State),
		Phone:              helpers.Deref(a.Phone),
		ImageLink:          helpers.Deref(a.ImageLink),
		FacebookLink:       helpers.Deref(a.FacebookLink),
		Website:            helpers.Deref(a.Website),
		SeekingDescription: helpers.Deref(a.SeekingDescription),
		Genres:             a.Genres,
	}
	if b := a.SeekingVenues.Bool(); b != nil {
		out.SeekingVenues = *b
	}
	return out
}

// Patch returns the edit described by the request.
func (a *ArtistRequest) Patch() *domain.ArtistPatch {
	return &domain.ArtistPatch{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenues:      a.SeekingVenues.Bool(),
		SeekingDescription: a.SeekingDescription,
		Genres:             a.Genres,
	}
}

// ShowRequest is the body of POST /shows/create. start_time is RFC 3339 or
// "2006-01-02 15:04:05" (UTC).
type ShowRequest struct {
	VenueID   int64  `json:"venue_id"`
	ArtistID  int64  `json:"artist_id"`
	StartTime string `json:"start_time"`

	startTime time.Time
}

// BindForm implements helpers.FormBinder.
func (s *ShowRequest) BindForm(values url.Values) []string {
	var errs []string
	parseID := func(key string) int64 {
		raw := strings.TrimSpace(values.Get(key))
		if raw == "" {
			return 0
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, key+" must be an integer")
		}
		return id
	}
	s.VenueID = parseID("venue_id")
	s.ArtistID = parseID("artist_id")
	s.StartTime = values.Get("start_time")
	return errs
}

// Validate implements helpers.Validator.
func (s *ShowRequest) Validate() []string {
	var errs []string
	if s.VenueID <= 0 {
		errs = append(errs, "venue_id is required")
	}
	if s.ArtistID <= 0 {
		errs = append(errs, "artist_id is required")
	}
	if strings.TrimSpace(s.StartTime) == "" {
		errs = append(errs, "start_time is required")
		return errs
	}
	t, err := helpers.ParseShowTime(s.StartTime)
	if err != nil {
		errs = append(errs, err.Error())
	}
	s.startTime = t
	return errs
}

// Show returns the show described by a validated request.
func (s *ShowRequest) Show() *domain.Show {
	return &domain.Show{VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.startTime}
}
