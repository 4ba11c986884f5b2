package services

import (
	"context"
	"fmt"

	"github.com/vishyarjun/fyyur/internal/domain"
)

type showService struct {
	Deps
	store    domain.Store
	notifier domain.BookingNotifier
}

// NewShowService returns a ShowService backed by store. notifier may be nil.
func NewShowService(store domain.Store, notifier domain.BookingNotifier, deps Deps) domain.ShowService {
	return &showService{Deps: deps.withDefaults(), store: store, notifier: notifier}
}

func (s *showService) List(ctx context.Context) ([]*domain.ShowListing, error) {
	ctx, span, cancel := s.start(ctx, "ShowService.List")
	defer cancel()
	defer span.End()

	shows, err := s.store.Shows().List(ctx)
	if err != nil {
		return nil, fail(span, fmt.Errorf("list shows: %w", err))
	}
	return shows, nil
}

func (s *showService) Create(ctx context.Context, sh *domain.Show) error {
	ctx, span, cancel := s.start(ctx, "ShowService.Create")
	defer cancel()
	defer span.End()

	if err := sh.Validate(); err != nil {
		return err
	}
	sh.StartTime = sh.StartTime.UTC()
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		return tx.Shows().Create(ctx, sh)
	})
	if err != nil {
		return fail(span, &domain.PersistenceError{
			Entity: "Show",
			Name:   sh.Label(),
			Err:    err,
		})
	}

	if s.notifier != nil {
		data := &domain.ShowListedEmailData{
			ShowID:    sh.ID,
			VenueID:   sh.VenueID,
			ArtistID:  sh.ArtistID,
			StartTime: sh.StartTime,
		}
		if v, err := s.store.Venues().GetByID(ctx, sh.VenueID); err == nil {
			data.VenueName = v.Name
		}
		if a, err := s.store.Artists().GetByID(ctx, sh.ArtistID); err == nil {
			data.ArtistName = a.Name
		}
		if err := s.notifier.ShowListed(ctx, data); err != nil {
			s.Logger.WarnContext(ctx, "booking notification failed", "show_id", sh.ID, "err", err)
		}
	}
	return nil
}
