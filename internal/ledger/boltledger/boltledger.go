// Package boltledger provides a BoltDB-backed ledger. Each Update maps to
// one bbolt write transaction, which gives the all-or-nothing multi-key
// commit and write serialization the transaction layer relies on.
package boltledger

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/regnet-io/regnet/internal/ledger"
)

const recordBucket = "records"

// Ledger is a BoltDB-backed ledger.
type Ledger struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed ledger at the provided path.
func Open(path string) (*Ledger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ledger path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure record bucket: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the underlying BoltDB database.
func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// View runs fn in a read-only transaction.
func (l *Ledger) View(ctx context.Context, fn func(ledger.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l == nil || l.db == nil {
		return fmt.Errorf("ledger is not configured")
	}

	return l.db.View(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(recordBucket))
		if bucket == nil {
			return fmt.Errorf("record bucket is missing")
		}
		return fn(&tx{bucket: bucket})
	})
}

// Update runs fn in a read-write transaction. BoltDB rolls back every
// staged write when fn returns an error.
func (l *Ledger) Update(ctx context.Context, fn func(ledger.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l == nil || l.db == nil {
		return fmt.Errorf("ledger is not configured")
	}

	return l.db.Update(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(recordBucket))
		if bucket == nil {
			return fmt.Errorf("record bucket is missing")
		}
		return fn(&tx{bucket: bucket, writable: true})
	})
}

type tx struct {
	bucket   *bbolt.Bucket
	writable bool
}

func (t *tx) Get(key ledger.Key) ([]byte, error) {
	value := t.bucket.Get([]byte(key))
	if value == nil {
		return nil, ledger.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (t *tx) Put(key ledger.Key, value []byte) error {
	if !t.writable {
		return fmt.Errorf("put inside a read-only transaction")
	}
	// bbolt stores nil and empty slices as an empty value, which keeps
	// the absent/empty distinction: Get returns nil only for missing keys.
	return t.bucket.Put([]byte(key), value)
}
