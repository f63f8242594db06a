// Package ledger defines the shared key-value ledger consumed by registry
// transactions. The ledger itself (consensus, block production, durability)
// is an external collaborator; this package fixes the contract every
// implementation must honor: read-your-writes inside one transaction, and
// all-or-nothing commit of a transaction's writes.
package ledger

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested record is missing. Implementations
// must return it for absent keys, never an empty value.
var ErrNotFound = errors.New("record not found")

// Tx provides record access within one ledger transaction.
type Tx interface {
	// Get fetches the record stored under key. It returns ErrNotFound
	// when no record exists, which is distinct from an empty record.
	Get(key Key) ([]byte, error)

	// Put stages a record under key. Staged writes are visible to
	// subsequent Gets in the same transaction and are committed only
	// if the transaction callback returns nil.
	Put(key Key, value []byte) error
}

// Ledger executes transactions against the shared state.
type Ledger interface {
	// View runs fn in a read-only transaction. Puts are rejected.
	View(ctx context.Context, fn func(Tx) error) error

	// Update runs fn in a read-write transaction. Every Put staged by
	// fn is committed atomically when fn returns nil; if fn returns an
	// error, no write is persisted and the error is returned unchanged.
	Update(ctx context.Context, fn func(Tx) error) error
}
