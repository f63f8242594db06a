// Package service exposes the registry's transaction surface: one method
// per ledger transaction. Every operation authorizes the caller first,
// then reads, validates, and writes inside a single ledger transaction,
// so either all of its writes commit or none do.
package service

import (
	"time"

	"github.com/regnet-io/regnet/internal/ledger"
)

// Registry executes registry transactions against an injected ledger.
type Registry struct {
	ledger ledger.Ledger
	clock  func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source. Used by tests for fixed timestamps.
func WithClock(clock func() time.Time) Option {
	return func(r *Registry) {
		r.clock = clock
	}
}

// New creates a Registry backed by the given ledger.
func New(l ledger.Ledger, opts ...Option) *Registry {
	r := &Registry{
		ledger: l,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) now() time.Time {
	return r.clock().UTC()
}
