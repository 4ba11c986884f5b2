package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vishyarjun/fyyur/internal/domain"
)

type artistService struct {
	Deps
	store    domain.Store
	notifier domain.BookingNotifier
}

// NewArtistService returns an ArtistService backed by store. notifier may be nil.
func NewArtistService(store domain.Store, notifier domain.BookingNotifier, deps Deps) domain.ArtistService {
	return &artistService{Deps: deps.withDefaults(), store: store, notifier: notifier}
}

func (s *artistService) List(ctx context.Context) ([]*domain.EntitySummary, error) {
	ctx, span, cancel := s.start(ctx, "ArtistService.List")
	defer cancel()
	defer span.End()

	rows, err := s.store.Artists().ListSummaries(ctx, s.Clock())
	if err != nil {
		return nil, fail(span, fmt.Errorf("list artists: %w", err))
	}
	return summarizeAll(rows), nil
}

func (s *artistService) ListByLocality(ctx context.Context) ([]*domain.LocalityGroup, error) {
	ctx, span, cancel := s.start(ctx, "ArtistService.ListByLocality")
	defer cancel()
	defer span.End()

	rows, err := s.store.Artists().ListSummaries(ctx, s.Clock())
	if err != nil {
		return nil, fail(span, fmt.Errorf("list artists: %w", err))
	}
	return groupByLocality(rows, func(g *domain.LocalityGroup, e *domain.EntitySummary) {
		g.Artists = append(g.Artists, e)
	}), nil
}

func (s *artistService) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	ctx, span, cancel := s.start(ctx, "ArtistService.Search")
	defer cancel()
	defer span.End()

	rows, err := s.store.Artists().Search(ctx, term, s.Clock())
	if err != nil {
		return nil, fail(span, fmt.Errorf("search artists: %w", err))
	}
	return searchResult(term, rows), nil
}

func (s *artistService) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	ctx, span, cancel := s.start(ctx, "ArtistService.Get")
	defer cancel()
	defer span.End()

	a, err := s.store.Artists().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fail(span, fmt.Errorf("get artist: %w", err))
	}
	return a, nil
}

func (s *artistService) GetDetail(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	ctx, span, cancel := s.start(ctx, "ArtistService.GetDetail")
	defer cancel()
	defer span.End()

	now := s.Clock()
	a, err := s.store.Artists().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fail(span, fmt.Errorf("get artist: %w", err))
	}
	shows, err := s.store.Shows().ListByArtistID(ctx, id)
	if err != nil {
		return nil, fail(span, fmt.Errorf("list artist shows: %w", err))
	}

	detail := &domain.ArtistDetail{
		Artist:        a,
		PastShows:     []*domain.BookedVenue{},
		UpcomingShows: []*domain.BookedVenue{},
	}
	for _, sh := range shows {
		entry := &domain.BookedVenue{
			VenueID:        sh.VenueID,
			VenueName:      sh.VenueName,
			VenueImageLink: sh.VenueImageLink,
			StartTime:      sh.StartTime,
		}
		if sh.IsUpcoming(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, entry)
		} else {
			detail.PastShows = append(detail.PastShows, entry)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}

func (s *artistService) Create(ctx context.Context, a *domain.Artist) error {
	ctx, span, cancel := s.start(ctx, "ArtistService.Create")
	defer cancel()
	defer span.End()

	if err := a.Validate(); err != nil {
		return err
	}
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		return tx.Artists().Create(ctx, a)
	})
	if err != nil {
		return fail(span, &domain.PersistenceError{Entity: "Artist", Name: a.Name, Err: err})
	}

	if s.notifier != nil {
		data := &domain.ListingCreatedEmailData{Entity: "Artist", ID: a.ID, Name: a.Name, City: a.City, State: a.State}
		if err := s.notifier.ListingCreated(ctx, data); err != nil {
			s.Logger.WarnContext(ctx, "booking notification failed", "artist_id", a.ID, "err", err)
		}
	}
	return nil
}

func (s *artistService) Update(ctx context.Context, id int64, patch *domain.ArtistPatch) (*domain.Artist, error) {
	ctx, span, cancel := s.start(ctx, "ArtistService.Update")
	defer cancel()
	defer span.End()

	var updated *domain.Artist
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		a, err := tx.Artists().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(a)
		if err := a.Validate(); err != nil {
			return err
		}
		if err := tx.Artists().Update(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fail(span, &domain.PersistenceError{Entity: "Artist", Name: patchedName(patch.Name, id), Action: "updated", Err: err})
	}
	return updated, nil
}

func (s *artistService) Delete(ctx context.Context, id int64, cascade bool) error {
	ctx, span, cancel := s.start(ctx, "ArtistService.Delete")
	defer cancel()
	defer span.End()

	var name string
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		a, err := tx.Artists().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		name = a.Name
		n, err := tx.Shows().CountByArtistID(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			if !cascade {
				return fmt.Errorf("%w: artist %d has %d shows", domain.ErrHasShows, id, n)
			}
			if _, err := tx.Shows().DeleteByArtistID(ctx, id); err != nil {
				return err
			}
		}
		return tx.Artists().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrHasShows) {
			return err
		}
		return fail(span, &domain.PersistenceError{Entity: "Artist", Name: name, Action: "deleted", Err: err})
	}
	return nil
}
