package domain

import "context"

// Store gives access to the repositories. A Store handed to the WithinTx
// callback is bound to a single transaction; every repository obtained from
// it reads and writes through that transaction.
type Store interface {
	Venues() VenueRepository
	Artists() ArtistRepository
	Shows() ShowRepository
	// WithinTx runs fn in a transaction that is committed when fn returns
	// nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
}
