package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/vishyarjun/fyyur/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// envelope mirrors helpers.APIResponse with a typed data field.
type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env), rr.Body.String())
	return env
}

var errDB = errors.New("db down")

// fakeVenueService implements domain.VenueService for handler tests.
type fakeVenueService struct {
	err           error
	groups        []*domain.LocalityGroup
	searchResult  *domain.SearchResult
	detail        *domain.VenueDetail
	venue         *domain.Venue
	lastTerm      string
	lastID        int64
	lastCreate    *domain.Venue
	lastPatch     *domain.VenuePatch
	lastCascade   bool
	deleteCalls   int
	createAssigns int64
}

func (f *fakeVenueService) ListByLocality(ctx context.Context) ([]*domain.LocalityGroup, error) {
	return f.groups, f.err
}

func (f *fakeVenueService) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	f.lastTerm = term
	return f.searchResult, f.err
}

func (f *fakeVenueService) GetDetail(ctx context.Context, id int64) (*domain.VenueDetail, error) {
	f.lastID = id
	return f.detail, f.err
}

func (f *fakeVenueService) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	f.lastID = id
	return f.venue, f.err
}

func (f *fakeVenueService) Create(ctx context.Context, v *domain.Venue) error {
	f.lastCreate = v
	if f.err != nil {
		return f.err
	}
	v.ID = f.createAssigns
	return nil
}

func (f *fakeVenueService) Update(ctx context.Context, id int64, patch *domain.VenuePatch) (*domain.Venue, error) {
	f.lastID = id
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	v := &domain.Venue{ID: id, Name: "The Musical Hop"}
	patch.Apply(v)
	return v, nil
}

func (f *fakeVenueService) Delete(ctx context.Context, id int64, cascade bool) error {
	f.deleteCalls++
	f.lastID = id
	f.lastCascade = cascade
	return f.err
}

// fakeArtistService implements domain.ArtistService for handler tests.
type fakeArtistService struct {
	err         error
	list        []*domain.EntitySummary
	groups      []*domain.LocalityGroup
	detail      *domain.ArtistDetail
	artist      *domain.Artist
	lastTerm    string
	lastID      int64
	lastCreate  *domain.Artist
	lastPatch   *domain.ArtistPatch
	lastCascade bool
}

func (f *fakeArtistService) List(ctx context.Context) ([]*domain.EntitySummary, error) {
	return f.list, f.err
}

func (f *fakeArtistService) ListByLocality(ctx context.Context) ([]*domain.LocalityGroup, error) {
	return f.groups, f.err
}

func (f *fakeArtistService) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	f.lastTerm = term
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SearchResult{SearchTerm: term, Data: []*domain.EntitySummary{}}, nil
}

func (f *fakeArtistService) GetDetail(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	f.lastID = id
	return f.detail, f.err
}

func (f *fakeArtistService) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	f.lastID = id
	return f.artist, f.err
}

func (f *fakeArtistService) Create(ctx context.Context, a *domain.Artist) error {
	f.lastCreate = a
	if f.err != nil {
		return f.err
	}
	a.ID = 1
	return nil
}

func (f *fakeArtistService) Update(ctx context.Context, id int64, patch *domain.ArtistPatch) (*domain.Artist, error) {
	f.lastID = id
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	a := &domain.Artist{ID: id, Name: "Guns N Petals"}
	patch.Apply(a)
	return a, nil
}

func (f *fakeArtistService) Delete(ctx context.Context, id int64, cascade bool) error {
	f.lastID = id
	f.lastCascade = cascade
	return f.err
}

// fakeShowService implements domain.ShowService for handler tests.
type fakeShowService struct {
	err        error
	shows      []*domain.ShowListing
	lastCreate *domain.Show
}

func (f *fakeShowService) List(ctx context.Context) ([]*domain.ShowListing, error) {
	return f.shows, f.err
}

func (f *fakeShowService) Create(ctx context.Context, s *domain.Show) error {
	f.lastCreate = s
	if f.err != nil {
		return f.err
	}
	s.ID = 1
	return nil
}

// fakePinger implements Pinger.
type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }
