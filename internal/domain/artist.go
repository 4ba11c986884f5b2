package domain

import (
	"context"
	"time"
)

// Artist is a performer that can be booked into shows.
// swagger:model Artist
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingVenues      bool     `json:"seeking_venues"`
	SeekingDescription string   `json:"seeking_description"`
	Genres             []string `json:"genres"`
}

// Validate checks the fields required to list an artist.
func (a *Artist) Validate() error {
	var p problems
	p.required("name", a.Name)
	p.required("city", a.City)
	p.required("state", a.State)
	p.state(a.State)
	p.genres(a.Genres)
	p.link("image_link", a.ImageLink)
	p.link("facebook_link", a.FacebookLink)
	p.link("website", a.Website)
	p.maxLen("city", a.City, shortFieldLen)
	p.maxLen("state", a.State, shortFieldLen)
	p.maxLen("phone", a.Phone, shortFieldLen)
	p.maxLen("image_link", a.ImageLink, longFieldLen)
	p.maxLen("facebook_link", a.FacebookLink, shortFieldLen)
	p.maxLen("website", a.Website, shortFieldLen)
	p.maxLen("seeking_description", a.SeekingDescription, longFieldLen)
	return p.err()
}

// ArtistPatch carries the fields submitted by an edit form. Nil fields are
// left unchanged.
type ArtistPatch struct {
	Name               *string
	City               *string
	State              *string
	Phone              *string
	ImageLink          *string
	FacebookLink       *string
	Website            *string
	SeekingVenues      *bool
	SeekingDescription *string
	Genres             []string
}

// Apply copies every non-nil field of p onto a.
func (p *ArtistPatch) Apply(a *Artist) {
	setString(&a.Name, p.Name)
	setString(&a.City, p.City)
	setString(&a.State, p.State)
	setString(&a.Phone, p.Phone)
	setString(&a.ImageLink, p.ImageLink)
	setString(&a.FacebookLink, p.FacebookLink)
	setString(&a.Website, p.Website)
	setString(&a.SeekingDescription, p.SeekingDescription)
	if p.SeekingVenues != nil {
		a.SeekingVenues = *p.SeekingVenues
	}
	if p.Genres != nil {
		a.Genres = p.Genres
	}
}

// ArtistRepository defines storage for artists.
type ArtistRepository interface {
	Create(ctx context.Context, a *Artist) error
	GetByID(ctx context.Context, id int64) (*Artist, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*Artist, error)
	ListSummaries(ctx context.Context, now time.Time) ([]*ListingSummary, error)
	Search(ctx context.Context, term string, now time.Time) ([]*ListingSummary, error)
	Update(ctx context.Context, a *Artist) error
	Delete(ctx context.Context, id int64) error
}

// ArtistService defines the artist queries and mutations exposed to the delivery layer.
type ArtistService interface {
	List(ctx context.Context) ([]*EntitySummary, error)
	ListByLocality(ctx context.Context) ([]*LocalityGroup, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	GetDetail(ctx context.Context, id int64) (*ArtistDetail, error)
	Get(ctx context.Context, id int64) (*Artist, error)
	Create(ctx context.Context, a *Artist) error
	Update(ctx context.Context, id int64, patch *ArtistPatch) (*Artist, error)
	Delete(ctx context.Context, id int64, cascade bool) error
}
