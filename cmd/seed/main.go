// Package main seeds a ledger file with a demonstration walkthrough of the
// registry: company registration, participant admission, recharge, property
// registration, listing, and purchase.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/regnet-io/regnet/internal/id"
	"github.com/regnet-io/regnet/internal/identity"
	"github.com/regnet-io/regnet/internal/ledger"
	"github.com/regnet-io/regnet/internal/ledger/boltledger"
	"github.com/regnet-io/regnet/internal/ledger/memory"
	"github.com/regnet-io/regnet/internal/ledger/sqliteledger"
	"github.com/regnet-io/regnet/internal/platform/config"
	"github.com/regnet-io/regnet/internal/registry/domain"
	"github.com/regnet-io/regnet/internal/registry/service"
)

type seedConfig struct {
	Backend string `env:"REGNET_LEDGER_BACKEND" envDefault:"bolt"`
	Path    string `env:"REGNET_LEDGER_PATH" envDefault:"regnet.db"`
}

func main() {
	var cfg seedConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "ledger backend (bolt, sqlite, memory)")
	flag.StringVar(&cfg.Path, "path", cfg.Path, "ledger file path")
	flag.Parse()

	store, closeStore, err := openLedger(cfg)
	if err != nil {
		config.Exitf("open ledger: %v", err)
	}

	// Exitf terminates the process, so close the store explicitly on
	// both paths instead of deferring.
	if err := run(context.Background(), service.New(store)); err != nil {
		closeStore()
		config.Exitf("seed: %v", err)
	}
	closeStore()
	log.Printf("seeded %s ledger at %s", cfg.Backend, cfg.Path)
}

func openLedger(cfg seedConfig) (ledger.Ledger, func(), error) {
	switch cfg.Backend {
	case "bolt":
		store, err := boltledger.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "sqlite":
		store, err := sqliteledger.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "memory":
		return memory.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Backend)
	}
}

func run(ctx context.Context, registry *service.Registry) error {
	userID, err := id.NewID()
	if err != nil {
		return err
	}
	registrarID, err := id.NewID()
	if err != nil {
		return err
	}

	user := identity.Caller{Org: identity.OrgUsers, ID: userID}
	registrar := identity.Caller{Org: identity.OrgRegistrar, ID: registrarID}

	companies := []domain.CompanyRegistration{
		{CRN: "CRN-100", Name: "Sun Pharma", Location: "Mumbai", Role: domain.RoleManufacturer},
		{CRN: "CRN-200", Name: "VG Distribution", Location: "Pune", Role: domain.RoleDistributor},
		{CRN: "CRN-300", Name: "Upgrad Stores", Location: "Delhi", Role: domain.RoleRetailer},
		{CRN: "CRN-400", Name: "FastFreight", Location: "Chennai", Role: domain.RoleTransporter},
	}
	orgs := []identity.Org{
		identity.OrgManufacturer,
		identity.OrgDistributor,
		identity.OrgRetailer,
		identity.OrgTransporter,
	}
	for i, reg := range companies {
		callerID, err := id.NewID()
		if err != nil {
			return err
		}
		company, err := registry.RegisterCompany(ctx, identity.Caller{Org: orgs[i], ID: callerID}, reg)
		if err != nil {
			return fmt.Errorf("register company %s: %w", reg.Name, err)
		}
		rank := "unranked"
		if company.HierarchyRank != nil {
			rank = fmt.Sprintf("rank %d", *company.HierarchyRank)
		}
		log.Printf("registered company %s (%s, %s)", company.Name, company.Role, rank)
	}

	alice := domain.ParticipantRef{Name: "Alice", GovID: "AAD1"}
	bob := domain.ParticipantRef{Name: "Bob", GovID: "AAD2"}

	for _, ref := range []domain.ParticipantRef{alice, bob} {
		_, err := registry.RequestAdmission(ctx, user, domain.AdmissionRequest{
			Name:  ref.Name,
			GovID: ref.GovID,
			Email: ref.Name + "@example.com",
			Phone: "555-0101",
		})
		if err != nil {
			return fmt.Errorf("request admission for %s: %w", ref.Name, err)
		}
		participant, err := registry.ApproveAdmission(ctx, registrar, ref)
		if err != nil {
			return fmt.Errorf("approve admission for %s: %w", ref.Name, err)
		}
		log.Printf("admitted participant %s (%s)", participant.Name, participant.Status)
	}

	if _, err := registry.Recharge(ctx, user, bob, "upg500"); err != nil {
		return fmt.Errorf("recharge Bob: %w", err)
	}
	log.Printf("recharged Bob with upg500")

	if _, err := registry.RequestPropertyRegistration(ctx, user, service.PropertyRequest{
		ID:    "P1",
		Price: 300,
		Owner: alice,
	}); err != nil {
		return fmt.Errorf("request property registration: %w", err)
	}
	if _, err := registry.ApprovePropertyRegistration(ctx, registrar, "P1"); err != nil {
		return fmt.Errorf("approve property registration: %w", err)
	}
	if _, err := registry.UpdatePropertyStatus(ctx, user, service.StatusUpdate{
		PropertyID: "P1",
		Owner:      alice,
		Status:     domain.PropertyOnSale,
	}); err != nil {
		return fmt.Errorf("list property for sale: %w", err)
	}
	log.Printf("registered property P1 for Alice and listed it for sale at 300")

	purchase, err := registry.PurchaseProperty(ctx, user, "P1", bob)
	if err != nil {
		return fmt.Errorf("purchase property: %w", err)
	}
	log.Printf("Bob bought P1: buyer balance %d, seller balance %d, status %s",
		purchase.Buyer.Balance, purchase.Seller.Balance, purchase.Property.Status)

	return nil
}
