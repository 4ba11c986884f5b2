package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vishyarjun/fyyur/internal/domain"
)

type venueService struct {
	Deps
	store    domain.Store
	notifier domain.BookingNotifier
}

// NewVenueService returns a VenueService backed by store. notifier may be nil.
func NewVenueService(store domain.Store, notifier domain.BookingNotifier, deps Deps) domain.VenueService {
	return &venueService{Deps: deps.withDefaults(), store: store, notifier: notifier}
}

func (s *venueService) ListByLocality(ctx context.Context) ([]*domain.LocalityGroup, error) {
	ctx, span, cancel := s.start(ctx, "VenueService.ListByLocality")
	defer cancel()
	defer span.End()

	rows, err := s.store.Venues().ListSummaries(ctx, s.Clock())
	if err != nil {
		return nil, fail(span, fmt.Errorf("list venues: %w", err))
	}
	return groupByLocality(rows, func(g *domain.LocalityGroup, e *domain.EntitySummary) {
		g.Venues = append(g.Venues, e)
	}), nil
}

func (s *venueService) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	ctx, span, cancel := s.start(ctx, "VenueService.Search")
	defer cancel()
	defer span.End()

	rows, err := s.store.Venues().Search(ctx, term, s.Clock())
	if err != nil {
		return nil, fail(span, fmt.Errorf("search venues: %w", err))
	}
	return searchResult(term, rows), nil
}

func (s *venueService) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	ctx, span, cancel := s.start(ctx, "VenueService.Get")
	defer cancel()
	defer span.End()

	v, err := s.store.Venues().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fail(span, fmt.Errorf("get venue: %w", err))
	}
	return v, nil
}

func (s *venueService) GetDetail(ctx context.Context, id int64) (*domain.VenueDetail, error) {
	ctx, span, cancel := s.start(ctx, "VenueService.GetDetail")
	defer cancel()
	defer span.End()

	now := s.Clock()
	v, err := s.store.Venues().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fail(span, fmt.Errorf("get venue: %w", err))
	}
	shows, err := s.store.Shows().ListByVenueID(ctx, id)
	if err != nil {
		return nil, fail(span, fmt.Errorf("list venue shows: %w", err))
	}

	detail := &domain.VenueDetail{
		Venue:         v,
		PastShows:     []*domain.BookedArtist{},
		UpcomingShows: []*domain.BookedArtist{},
	}
	for _, sh := range shows {
		entry := &domain.BookedArtist{
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       sh.StartTime,
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

func (s *venueService) Create(ctx context.Context, v *domain.Venue) error {
	ctx, span, cancel := s.start(ctx, "VenueService.Create")
	defer cancel()
	defer span.End()

	if err := v.Validate(); err != nil {
		return err
	}
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		return tx.Venues().Create(ctx, v)
	})
	if err != nil {
		return fail(span, &domain.PersistenceError{Entity: "Venue", Name: v.Name, Err: err})
	}

	if s.notifier != nil {
		data := &domain.ListingCreatedEmailData{Entity: "Venue", ID: v.ID, Name: v.Name, City: v.City, State: v.State}
		if err := s.notifier.ListingCreated(ctx, data); err != nil {
			s.Logger.WarnContext(ctx, "booking notification failed", "venue_id", v.ID, "err", err)
		}
	}
	return nil
}

func (s *venueService) Update(ctx context.Context, id int64, patch *domain.VenuePatch) (*domain.Venue, error) {
	ctx, span, cancel := s.start(ctx, "VenueService.Update")
	defer cancel()
	defer span.End()

	var updated *domain.Venue
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		v, err := tx.Venues().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(v)
		if err := v.Validate(); err != nil {
			return err
		}
		if err := tx.Venues().Update(ctx, v); err != nil {
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fail(span, &domain.PersistenceError{Entity: "Venue", Name: patchedName(patch.Name, id), Action: "updated", Err: err})
	}
	return updated, nil
}

func (s *venueService) Delete(ctx context.Context, id int64, cascade bool) error {
	ctx, span, cancel := s.start(ctx, "VenueService.Delete")
	defer cancel()
	defer span.End()

	var name string
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		v, err := tx.Venues().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		name = v.Name
		n, err := tx.Shows().CountByVenueID(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			if !cascade {
				return fmt.Errorf("%w: venue %d has %d shows", domain.ErrHasShows, id, n)
			}
			if _, err := tx.Shows().DeleteByVenueID(ctx, id); err != nil {
				return err
			}
		}
		return tx.Venues().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrHasShows) {
			return err
		}
		return fail(span, &domain.PersistenceError{Entity: "Venue", Name: name, Action: "deleted", Err: err})
	}
	return nil
}

// patchedName picks a name for user-facing failure messages about an edit.
func patchedName(name *string, id int64) string {
	if name != nil && *name != "" {
		return *name
	}
	return fmt.Sprintf("#%d", id)
}
