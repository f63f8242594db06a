package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/regnet-io/regnet/internal/ledger"
)

func mustKey(t *testing.T, kind string, attrs ...string) ledger.Key {
	t.Helper()
	key, err := ledger.NewKey(kind, attrs...)
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	return key
}

func TestPutGetRoundTrip(t *testing.T) {
	store := New()
	key := mustKey(t, "participant", "Alice", "AAD1")

	err := store.Update(context.Background(), func(tx ledger.Tx) error {
		return tx.Put(key, []byte(`{"name":"Alice"}`))
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	err = store.View(context.Background(), func(tx ledger.Tx) error {
		value, err := tx.Get(key)
		if err != nil {
			return err
		}
		if string(value) != `{"name":"Alice"}` {
			t.Fatalf("unexpected value %q", value)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestAbsentDistinctFromEmpty(t *testing.T) {
	store := New()
	absent := mustKey(t, "participant", "missing", "0")
	empty := mustKey(t, "participant", "empty", "0")

	err := store.Update(context.Background(), func(tx ledger.Tx) error {
		return tx.Put(empty, []byte{})
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	err = store.View(context.Background(), func(tx ledger.Tx) error {
		if _, err := tx.Get(absent); !errors.Is(err, ledger.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for absent key, got %v", err)
		}
		value, err := tx.Get(empty)
		if err != nil {
			t.Fatalf("expected empty record to exist, got %v", err)
		}
		if len(value) != 0 {
			t.Fatalf("expected empty value, got %q", value)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestReadYourWrites(t *testing.T) {
	store := New()
	key := mustKey(t, "property", "P1")

	err := store.Update(context.Background(), func(tx ledger.Tx) error {
		if err := tx.Put(key, []byte("staged")); err != nil {
			return err
		}
		value, err := tx.Get(key)
		if err != nil {
			return err
		}
		if string(value) != "staged" {
			t.Fatalf("expected staged write to be visible, got %q", value)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestFailedUpdateDiscardsWrites(t *testing.T) {
	store := New()
	key := mustKey(t, "property", "P1")
	boom := errors.New("mid-transaction failure")

	err := store.Update(context.Background(), func(tx ledger.Tx) error {
		if err := tx.Put(key, []byte("never committed")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error to propagate, got %v", err)
	}

	err = store.View(context.Background(), func(tx ledger.Tx) error {
		if _, err := tx.Get(key); !errors.Is(err, ledger.ErrNotFound) {
			t.Fatalf("expected discarded write, got %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestViewRejectsPuts(t *testing.T) {
	store := New()
	key := mustKey(t, "property", "P1")

	err := store.View(context.Background(), func(tx ledger.Tx) error {
		return tx.Put(key, []byte("nope"))
	})
	if err == nil {
		t.Fatal("expected put to fail in a read-only transaction")
	}
}
