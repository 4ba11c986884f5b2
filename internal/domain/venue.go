package domain

import (
	"context"
	"time"
)

// Venue is a location that can host shows.
// swagger:model Venue
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// Validate checks the fields required to list a venue.
func (v *Venue) Validate() error {
	var p problems
	p.required("name", v.Name)
	p.required("city", v.City)
	p.required("state", v.State)
	p.required("address", v.Address)
	p.state(v.State)
	p.genres(v.Genres)
	p.link("image_link", v.ImageLink)
	p.link("facebook_link", v.FacebookLink)
	p.link("website", v.Website)
	p.maxLen("city", v.City, shortFieldLen)
	p.maxLen("state", v.State, shortFieldLen)
	p.maxLen("address", v.Address, shortFieldLen)
	p.maxLen("phone", v.Phone, shortFieldLen)
	p.maxLen("image_link", v.ImageLink, longFieldLen)
	p.maxLen("facebook_link", v.FacebookLink, shortFieldLen)
	p.maxLen("website", v.Website, shortFieldLen)
	p.maxLen("seeking_description", v.SeekingDescription, longFieldLen)
	return p.err()
}

// VenuePatch carries the fields submitted by an edit form. Nil fields are
// left unchanged.
type VenuePatch struct {
	Name               *string
	City               *string
	State              *string
	Address            *string
	Phone              *string
	ImageLink          *string
	FacebookLink       *string
	Website            *string
	SeekingTalent      *bool
	SeekingDescription *string
	Genres             []string // nil means unchanged
}

// Apply copies every non-nil field of p onto v.
func (p *VenuePatch) Apply(v *Venue) {
	setString(&v.Name, p.Name)
	setString(&v.City, p.City)
	setString(&v.State, p.State)
	setString(&v.Address, p.Address)
	setString(&v.Phone, p.Phone)
	setString(&v.ImageLink, p.ImageLink)
	setString(&v.FacebookLink, p.FacebookLink)
	setString(&v.Website, p.Website)
	setString(&v.SeekingDescription, p.SeekingDescription)
	if p.SeekingTalent != nil {
		v.SeekingTalent = *p.SeekingTalent
	}
	if p.Genres != nil {
		v.Genres = p.Genres
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// VenueRepository defines storage for venues.
type VenueRepository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id int64) (*Venue, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*Venue, error)
	// ListSummaries returns every venue ordered by id with its count of shows starting after now.
	ListSummaries(ctx context.Context, now time.Time) ([]*ListingSummary, error)
	// Search matches term as a case-insensitive substring of the name, ordered by id.
	Search(ctx context.Context, term string, now time.Time) ([]*ListingSummary, error)
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id int64) error
}

// VenueService defines the venue queries and mutations exposed to the delivery layer.
type VenueService interface {
	ListByLocality(ctx context.Context) ([]*LocalityGroup, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	GetDetail(ctx context.Context, id int64) (*VenueDetail, error)
	Get(ctx context.Context, id int64) (*Venue, error)
	Create(ctx context.Context, v *Venue) error
	Update(ctx context.Context, id int64, patch *VenuePatch) (*Venue, error)
	// Delete removes the venue. When it still has shows, Delete fails with
	// ErrHasShows unless cascade is set, in which case the shows go too.
	Delete(ctx context.Context, id int64, cascade bool) error
}
