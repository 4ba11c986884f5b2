package services

import (
	"context"
	"testing"
	"time"

	"github.com/vishyarjun/fyyur/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistService_List(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	v := store.addVenue("The Musical Hop", "San Francisco", "CA")
	petals := store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.addArtist("Matt Quevedo", "New York", "NY")
	store.addShow(v.ID, petals.ID, testNow.Add(time.Hour))
	svc := NewArtistService(store, nil, testDeps())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, petals.ID, list[0].ID)
	assert.Equal(t, 1, list[0].NumUpcomingShows)
	assert.Equal(t, "Matt Quevedo", list[1].Name)

	groups, err := svc.ListByLocality(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Artists, 1)
	assert.Nil(t, groups[0].Venues)
}

func TestArtistService_Search(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.addArtist("Matt Quevedo", "New York", "NY")
	store.addArtist("The Wild Sax Band", "San Francisco", "CA")
	svc := NewArtistService(store, nil, testDeps())

	res, err := svc.Search(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)

	res, err = svc.Search(ctx, "band")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "The Wild Sax Band", res.Data[0].Name)
}

func TestArtistService_GetDetail(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	hop := store.addVenue("The Musical Hop", "San Francisco", "CA")
	bar := store.addVenue("The Dueling Pianos Bar", "New York", "NY")
	a := store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.addShow(hop.ID, a.ID, testNow.Add(-time.Hour))
	store.addShow(bar.ID, a.ID, testNow.Add(time.Hour))
	svc := NewArtistService(store, nil, testDeps())

	d, err := svc.GetDetail(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", d.Name)
	require.Len(t, d.PastShows, 1)
	require.Len(t, d.UpcomingShows, 1)
	assert.Equal(t, hop.ID, d.PastShows[0].VenueID)
	assert.Equal(t, "The Musical Hop", d.PastShows[0].VenueName)
	assert.Equal(t, "The Dueling Pianos Bar", d.UpcomingShows[0].VenueName)
	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 1, d.UpcomingShowsCount)

	_, err = svc.GetDetail(ctx, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(ctx, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArtistService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		artist    *domain.Artist
		createErr error
		wantErr   error
		wantCount int
	}{
		{
			name:      "success",
			artist:    &domain.Artist{Name: "Matt Quevedo", City: "New York", State: "NY", Genres: []string{"Jazz"}},
			wantCount: 1,
		},
		{
			name:    "missing city",
			artist:  &domain.Artist{Name: "Matt Quevedo", State: "NY", Genres: []string{"Jazz"}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "relative link",
			artist:  &domain.Artist{Name: "Matt Quevedo", City: "New York", State: "NY", Genres: []string{"Jazz"}, FacebookLink: "facebook.com/mattquevedo"},
			wantErr: domain.ErrValidation,
		},
		{
			name:      "store failure",
			artist:    &domain.Artist{Name: "Matt Quevedo", City: "New York", State: "NY", Genres: []string{"Jazz"}},
			createErr: errStoreDown,
			wantErr:   domain.ErrPersistence,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.createErr = tt.createErr
			notifier := &fakeNotifier{}
			err := NewArtistService(store, notifier, testDeps()).Create(ctx, tt.artist)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, notifier.listings)
			} else {
				require.NoError(t, err)
				require.Len(t, notifier.listings, 1)
				assert.Equal(t, "Artist", notifier.listings[0].Entity)
			}
			assert.Len(t, store.artists, tt.wantCount)
		})
	}
}

func TestArtistService_CreateThenGetDetail(t *testing.T) {
	ctx := context.Background()
	svc := NewArtistService(newFakeStore(), nil, testDeps())
	a := &domain.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		ImageLink:          "https://images.example.com/petals.jpg",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		Website:            "https://www.gunsnpetalsband.com",
		SeekingVenues:      true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		Genres:             []string{"Rock n Roll"},
	}
	want := *a
	want.Genres = append([]string(nil), a.Genres...)
	require.NoError(t, svc.Create(ctx, a))
	want.ID = a.ID

	d, err := svc.GetDetail(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, &want, d.Artist)
	assert.Zero(t, d.PastShowsCount+d.UpcomingShowsCount)

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestArtistService_SearchIsRepeatable(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.addArtist("Matt Quevedo", "New York", "NY")
	store.addArtist("The Wild Sax Band", "San Francisco", "CA")
	svc := NewArtistService(store, nil, testDeps())

	first, err := svc.Search(ctx, "a")
	require.NoError(t, err)
	second, err := svc.Search(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, first, second)
	assert.Equal(t, 3, first.Count)
}

func TestArtistService_Update(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	a := store.addArtist("Guns N Petals", "San Francisco", "CA")
	svc := NewArtistService(store, nil, testDeps())

	got, err := svc.Update(ctx, a.ID, &domain.ArtistPatch{
		City:          strPtr("Oakland"),
		SeekingVenues: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Oakland", got.City)
	assert.True(t, got.SeekingVenues)
	assert.Equal(t, "Guns N Petals", got.Name)

	_, err = svc.Update(ctx, a.ID, &domain.ArtistPatch{Genres: []string{}})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{"Rock n Roll"}, store.artists[a.ID].Genres)
}

func TestArtistService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	v := store.addVenue("The Musical Hop", "San Francisco", "CA")
	a := store.addArtist("Guns N Petals", "San Francisco", "CA")
	store.addShow(v.ID, a.ID, testNow.Add(-time.Hour))
	svc := NewArtistService(store, nil, testDeps())

	err := svc.Delete(ctx, a.ID, false)
	require.ErrorIs(t, err, domain.ErrHasShows)
	assert.Contains(t, store.artists, a.ID)

	require.NoError(t, svc.Delete(ctx, a.ID, true))
	assert.NotContains(t, store.artists, a.ID)
	assert.Empty(t, store.shows)
	assert.Contains(t, store.venues, v.ID)

	err = svc.Delete(ctx, a.ID, true)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
