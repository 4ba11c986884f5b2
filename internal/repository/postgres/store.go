package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vishyarjun/fyyur/internal/domain"
)

// Store implements domain.Store on a *sql.DB. The zero value is not usable;
// call NewStore.
type Store struct {
	db *sql.DB
	tx *sql.Tx // set on stores handed to WithinTx callbacks

	venues  domain.VenueRepository
	artists domain.ArtistRepository
	shows   domain.ShowRepository
}

// NewStore returns a Store whose repositories run directly on db.
func NewStore(db *sql.DB) *Store {
	return newStore(db, nil, db)
}

func newStore(db *sql.DB, tx *sql.Tx, q DBTX) *Store {
	return &Store{
		db:      db,
		tx:      tx,
		venues:  NewVenueRepository(q),
		artists: NewArtistRepository(q),
		shows:   NewShowRepository(q),
	}
}

func (s *Store) Venues() domain.VenueRepository   { return s.venues }
func (s *Store) Artists() domain.ArtistRepository { return s.artists }
func (s *Store) Shows() domain.ShowRepository     { return s.shows }

// WithinTx begins a transaction, runs fn with a Store bound to it, and
// commits if fn returns nil. On error or panic the transaction is rolled
// back, so the connection is released on every path. Calling WithinTx on a
// transaction-bound Store reuses the open transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(tx domain.Store) error) (err error) {
	if s.tx != nil {
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()
	return fn(newStore(s.db, tx, tx))
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
