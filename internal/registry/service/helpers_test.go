package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/regnet-io/regnet/internal/identity"
	"github.com/regnet-io/regnet/internal/ledger"
	"github.com/regnet-io/regnet/internal/ledger/memory"
	"github.com/regnet-io/regnet/internal/registry/domain"
)

var (
	userCaller      = identity.Caller{Org: identity.OrgUsers, ID: "user-identity-1"}
	registrarCaller = identity.Caller{Org: identity.OrgRegistrar, ID: "registrar-identity-1"}
	outsiderCaller  = identity.Caller{Org: "auditorMSP", ID: "auditor-identity-1"}

	aliceRef = domain.ParticipantRef{Name: "Alice", GovID: "AAD1"}
	bobRef   = domain.ParticipantRef{Name: "Bob", GovID: "AAD2"}
)

func newTestRegistry(t *testing.T) (*Registry, *memory.Ledger) {
	t.Helper()
	store := memory.New()
	registry := New(store, WithClock(func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}))
	return registry, store
}

// admitParticipant runs the request and approval transactions for ref.
func admitParticipant(t *testing.T, registry *Registry, ref domain.ParticipantRef) {
	t.Helper()
	ctx := context.Background()
	_, err := registry.RequestAdmission(ctx, userCaller, domain.AdmissionRequest{
		Name:  ref.Name,
		GovID: ref.GovID,
		Email: ref.Name + "@example.com",
	})
	if err != nil {
		t.Fatalf("request admission for %s: %v", ref.Name, err)
	}
	if _, err := registry.ApproveAdmission(ctx, registrarCaller, ref); err != nil {
		t.Fatalf("approve admission for %s: %v", ref.Name, err)
	}
}

// recharge credits ref's balance with the given voucher.
func recharge(t *testing.T, registry *Registry, ref domain.ParticipantRef, voucherID string) {
	t.Helper()
	if _, err := registry.Recharge(context.Background(), userCaller, ref, voucherID); err != nil {
		t.Fatalf("recharge %s with %s: %v", ref.Name, voucherID, err)
	}
}

// rawRecord reads the committed bytes under key, or nil when absent.
func rawRecord(t *testing.T, store *memory.Ledger, key ledger.Key) []byte {
	t.Helper()
	var value []byte
	err := store.View(context.Background(), func(tx ledger.Tx) error {
		var err error
		value, err = tx.Get(key)
		if stderrors.Is(err, ledger.ErrNotFound) {
			value = nil
			return nil
		}
		return err
	})
	if err != nil {
		t.Fatalf("read raw record: %v", err)
	}
	return value
}

func participantKey(t *testing.T, ref domain.ParticipantRef) ledger.Key {
	t.Helper()
	key, err := ref.Key()
	if err != nil {
		t.Fatalf("participant key: %v", err)
	}
	return key
}

func propertyKey(t *testing.T, propertyID string) ledger.Key {
	t.Helper()
	key, err := domain.PropertyKey(propertyID)
	if err != nil {
		t.Fatalf("property key: %v", err)
	}
	return key
}
