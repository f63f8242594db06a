// Package memory provides an in-memory ledger used by tests and dry runs.
// It honors the same transaction contract as the durable implementations:
// staged writes are visible within the transaction and committed only when
// the callback succeeds.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/regnet-io/regnet/internal/ledger"
)

// Ledger holds committed records in process memory.
type Ledger struct {
	mu      sync.Mutex
	records map[ledger.Key][]byte
}

// New creates an empty in-memory ledger.
func New() *Ledger {
	return &Ledger{records: make(map[ledger.Key][]byte)}
}

// View runs fn in a read-only transaction.
func (l *Ledger) View(ctx context.Context, fn func(ledger.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(&tx{committed: l.records})
}

// Update runs fn in a read-write transaction. Writes are buffered and
// applied to the committed state only when fn returns nil.
func (l *Ledger) Update(ctx context.Context, fn func(ledger.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	t := &tx{
		committed: l.records,
		staged:    make(map[ledger.Key][]byte),
		writable:  true,
	}
	if err := fn(t); err != nil {
		return err
	}
	for key, value := range t.staged {
		l.records[key] = value
	}
	return nil
}

type tx struct {
	committed map[ledger.Key][]byte
	staged    map[ledger.Key][]byte
	writable  bool
}

func (t *tx) Get(key ledger.Key) ([]byte, error) {
	if value, ok := t.staged[key]; ok {
		return append([]byte(nil), value...), nil
	}
	value, ok := t.committed[key]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (t *tx) Put(key ledger.Key, value []byte) error {
	if !t.writable {
		return fmt.Errorf("put inside a read-only transaction")
	}
	t.staged[key] = append([]byte(nil), value...)
	return nil
}
