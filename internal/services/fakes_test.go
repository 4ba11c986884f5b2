package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/vishyarjun/fyyur/internal/domain"
)

// fakeStore is an in-memory Store. WithinTx restores the previous state when
// fn fails, which is enough to observe rollbacks in service tests.
type fakeStore struct {
	venues  map[int64]*domain.Venue
	artists map[int64]*domain.Artist
	shows   map[int64]*domain.Show
	nextID  int64

	createErr error // returned by every repository Create
	listErr   error // returned by listings and searches
	deleteErr error // returned by venue/artist Delete
	txCount   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		venues:  make(map[int64]*domain.Venue),
		artists: make(map[int64]*domain.Artist),
		shows:   make(map[int64]*domain.Show),
		nextID:  1,
	}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) Venues() domain.VenueRepository   { return fakeVenueRepo{f} }
func (f *fakeStore) Artists() domain.ArtistRepository { return fakeArtistRepo{f} }
func (f *fakeStore) Shows() domain.ShowRepository     { return fakeShowRepo{f} }
func (f *fakeStore) Ping(ctx context.Context) error   { return nil }

func (f *fakeStore) WithinTx(ctx context.Context, fn func(tx domain.Store) error) error {
	f.txCount++
	venues, artists, shows, next := maps.Clone(f.venues), maps.Clone(f.artists), maps.Clone(f.shows), f.nextID
	if err := fn(f); err != nil {
		f.venues, f.artists, f.shows, f.nextID = venues, artists, shows, next
		return err
	}
	return nil
}

func (f *fakeStore) addVenue(name, city, state string) *domain.Venue {
	v := &domain.Venue{ID: f.id(), Name: name, City: city, State: state, Address: "1 Main St", Genres: []string{"Jazz"}}
	f.venues[v.ID] = v
	return v
}

func (f *fakeStore) addArtist(name, city, state string) *domain.Artist {
	a := &domain.Artist{ID: f.id(), Name: name, City: city, State: state, Genres: []string{"Rock n Roll"}}
	f.artists[a.ID] = a
	return a
}

func (f *fakeStore) addShow(venueID, artistID int64, start time.Time) *domain.Show {
	s := &domain.Show{ID: f.id(), VenueID: venueID, ArtistID: artistID, StartTime: start}
	f.shows[s.ID] = s
	return s
}

func (f *fakeStore) upcoming(now time.Time, match func(*domain.Show) bool) int {
	n := 0
	for _, s := range f.shows {
		if match(s) && s.StartTime.After(now) {
			n++
		}
	}
	return n
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := slices.Collect(maps.Keys(m))
	slices.Sort(ids)
	return ids
}

type fakeVenueRepo struct{ f *fakeStore }

func (r fakeVenueRepo) Create(ctx context.Context, v *domain.Venue) error {
	if r.f.createErr != nil {
		return r.f.createErr
	}
	v.ID = r.f.id()
	cp := *v
	r.f.venues[v.ID] = &cp
	return nil
}

func (r fakeVenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	v, ok := r.f.venues[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r fakeVenueRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Venue, error) {
	return r.GetByID(ctx, id)
}

func (r fakeVenueRepo) ListSummaries(ctx context.Context, now time.Time) ([]*domain.ListingSummary, error) {
	return r.Search(ctx, "", now)
}

func (r fakeVenueRepo) Search(ctx context.Context, term string, now time.Time) ([]*domain.ListingSummary, error) {
	if r.f.listErr != nil {
		return nil, r.f.listErr
	}
	out := []*domain.ListingSummary{}
	for _, id := range sortedIDs(r.f.venues) {
		v := r.f.venues[id]
		if !strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			continue
		}
		out = append(out, &domain.ListingSummary{
			ID: v.ID, Name: v.Name, City: v.City, State: v.State,
			NumUpcomingShows: r.f.upcoming(now, func(s *domain.Show) bool { return s.VenueID == v.ID }),
		})
	}
	return out, nil
}

func (r fakeVenueRepo) Update(ctx context.Context, v *domain.Venue) error {
	if _, ok := r.f.venues[v.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *v
	r.f.venues[v.ID] = &cp
	return nil
}

func (r fakeVenueRepo) Delete(ctx context.Context, id int64) error {
	if r.f.deleteErr != nil {
		return r.f.deleteErr
	}
	if _, ok := r.f.venues[id]; !ok {
		return domain.ErrNotFound
	}
	for _, s := range r.f.shows {
		if s.VenueID == id {
			return fmt.Errorf("%w: shows still reference venue %d", domain.ErrReferenceViolation, id)
		}
	}
	delete(r.f.venues, id)
	return nil
}

type fakeArtistRepo struct{ f *fakeStore }

func (r fakeArtistRepo) Create(ctx context.Context, a *domain.Artist) error {
	if r.f.createErr != nil {
		return r.f.createErr
	}
	a.ID = r.f.id()
	cp := *a
	r.f.artists[a.ID] = &cp
	return nil
}

func (r fakeArtistRepo) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	a, ok := r.f.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r fakeArtistRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Artist, error) {
	return r.GetByID(ctx, id)
}

func (r fakeArtistRepo) ListSummaries(ctx context.Context, now time.Time) ([]*domain.ListingSummary, error) {
	return r.Search(ctx, "", now)
}

func (r fakeArtistRepo) Search(ctx context.Context, term string, now time.Time) ([]*domain.ListingSummary, error) {
	if r.f.listErr != nil {
		return nil, r.f.listErr
	}
	out := []*domain.ListingSummary{}
	for _, id := range sortedIDs(r.f.artists) {
		a := r.f.artists[id]
		if !strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			continue
		}
		out = append(out, &domain.ListingSummary{
			ID: a.ID, Name: a.Name, City: a.City, State: a.State,
			NumUpcomingShows: r.f.upcoming(now, func(s *domain.Show) bool { return s.ArtistID == a.ID }),
		})
	}
	return out, nil
}

func (r fakeArtistRepo) Update(ctx context.Context, a *domain.Artist) error {
	if _, ok := r.f.artists[a.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	r.f.artists[a.ID] = &cp
	return nil
}

func (r fakeArtistRepo) Delete(ctx context.Context, id int64) error {
	if r.f.deleteErr != nil {
		return r.f.deleteErr
	}
	if _, ok := r.f.artists[id]; !ok {
		return domain.ErrNotFound
	}
	for _, s := range r.f.shows {
		if s.ArtistID == id {
			return fmt.Errorf("%w: shows still reference artist %d", domain.ErrReferenceViolation, id)
		}
	}
	delete(r.f.artists, id)
	return nil
}

type fakeShowRepo struct{ f *fakeStore }

func (r fakeShowRepo) Create(ctx context.Context, s *domain.Show) error {
	if r.f.createErr != nil {
		return r.f.createErr
	}
	if _, ok := r.f.venues[s.VenueID]; !ok {
		return fmt.Errorf("%w: venue %d does not exist", domain.ErrReferenceViolation, s.VenueID)
	}
	if _, ok := r.f.artists[s.ArtistID]; !ok {
		return fmt.Errorf("%w: artist %d does not exist", domain.ErrReferenceViolation, s.ArtistID)
	}
	s.ID = r.f.id()
	cp := *s
	r.f.shows[s.ID] = &cp
	return nil
}

func (r fakeShowRepo) list(match func(*domain.Show) bool) ([]*domain.ShowListing, error) {
	if r.f.listErr != nil {
		return nil, r.f.listErr
	}
	out := []*domain.ShowListing{}
	for _, s := range r.f.shows {
		if !match(s) {
			continue
		}
		v, a := r.f.venues[s.VenueID], r.f.artists[s.ArtistID]
		out = append(out, &domain.ShowListing{
			ID: s.ID, StartTime: s.StartTime,
			VenueID: v.ID, VenueName: v.Name, VenueImageLink: v.ImageLink,
			ArtistID: a.ID, ArtistName: a.Name, ArtistImageLink: a.ImageLink,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r fakeShowRepo) List(ctx context.Context) ([]*domain.ShowListing, error) {
	return r.list(func(*domain.Show) bool { return true })
}

func (r fakeShowRepo) ListByVenueID(ctx context.Context, venueID int64) ([]*domain.ShowListing, error) {
	return r.list(func(s *domain.Show) bool { return s.VenueID == venueID })
}

func (r fakeShowRepo) ListByArtistID(ctx context.Context, artistID int64) ([]*domain.ShowListing, error) {
	return r.list(func(s *domain.Show) bool { return s.ArtistID == artistID })
}

func (r fakeShowRepo) count(match func(*domain.Show) bool) int {
	n := 0
	for _, s := range r.f.shows {
		if match(s) {
			n++
		}
	}
	return n
}

func (r fakeShowRepo) CountByVenueID(ctx context.Context, venueID int64) (int, error) {
	return r.count(func(s *domain.Show) bool { return s.VenueID == venueID }), nil
}

func (r fakeShowRepo) CountByArtistID(ctx context.Context, artistID int64) (int, error) {
	return r.count(func(s *domain.Show) bool { return s.ArtistID == artistID }), nil
}

func (r fakeShowRepo) deleteWhere(match func(*domain.Show) bool) int64 {
	var n int64
	for id, s := range r.f.shows {
		if match(s) {
			delete(r.f.shows, id)
			n++
		}
	}
	return n
}

func (r fakeShowRepo) DeleteByVenueID(ctx context.Context, venueID int64) (int64, error) {
	return r.deleteWhere(func(s *domain.Show) bool { return s.VenueID == venueID }), nil
}

func (r fakeShowRepo) DeleteByArtistID(ctx context.Context, artistID int64) (int64, error) {
	return r.deleteWhere(func(s *domain.Show) bool { return s.ArtistID == artistID }), nil
}

// fakeNotifier records notifications and optionally fails.
type fakeNotifier struct {
	listings []*domain.ListingCreatedEmailData
	shows    []*domain.ShowListedEmailData
	err      error
}

func (n *fakeNotifier) ListingCreated(ctx context.Context, data *domain.ListingCreatedEmailData) error {
	n.listings = append(n.listings, data)
	return n.err
}

func (n *fakeNotifier) ShowListed(ctx context.Context, data *domain.ShowListedEmailData) error {
	n.shows = append(n.shows, data)
	return n.err
}

var (
	testNow       = time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	errStoreDown  = errors.New("connection refused")
	discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func testDeps() Deps {
	return Deps{
		Logger: discardLogger,
		Clock:  func() time.Time { return testNow },
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
