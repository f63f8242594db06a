package service

import (
	"context"
	"testing"

	"github.com/regnet-io/regnet/internal/errors"
	"github.com/regnet-io/regnet/internal/identity"
	"github.com/regnet-io/regnet/internal/registry/domain"
)

var manufacturerCaller = identity.Caller{Org: identity.OrgManufacturer, ID: "mfg-identity-1"}

func TestRegisterCompany(t *testing.T) {
	registry, _ := newTestRegistry(t)

	company, err := registry.RegisterCompany(context.Background(), manufacturerCaller, domain.CompanyRegistration{
		CRN:      "CRN-100",
		Name:     "Sun Pharma",
		Location: "Mumbai",
		Role:     domain.RoleManufacturer,
	})
	if err != nil {
		t.Fatalf("register company: %v", err)
	}
	if company.HierarchyRank == nil || *company.HierarchyRank != 1 {
		t.Fatalf("expected rank 1 for a manufacturer, got %v", company.HierarchyRank)
	}
}

func TestRegisterCompanyTransporterUnranked(t *testing.T) {
	registry, _ := newTestRegistry(t)

	company, err := registry.RegisterCompany(context.Background(),
		identity.Caller{Org: identity.OrgTransporter, ID: "carrier-identity-1"},
		domain.CompanyRegistration{
			CRN:      "CRN-200",
			Name:     "FastFreight",
			Location: "Delhi",
			Role:     domain.RoleTransporter,
		})
	if err != nil {
		t.Fatalf("register company: %v", err)
	}
	if company.HierarchyRank != nil {
		t.Fatalf("expected transporter to be unranked, got %d", *company.HierarchyRank)
	}
}

func TestRegisterCompanyRejectsDuplicate(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	registration := domain.CompanyRegistration{
		CRN:      "CRN-100",
		Name:     "Sun Pharma",
		Location: "Mumbai",
		Role:     domain.RoleManufacturer,
	}
	if _, err := registry.RegisterCompany(ctx, manufacturerCaller, registration); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	// Same key, different payload: the original record must survive.
	registration.Location = "Pune"
	_, err := registry.RegisterCompany(ctx, manufacturerCaller, registration)
	if !errors.IsCode(err, errors.CodeCompanyExists) {
		t.Fatalf("expected %s, got %v", errors.CodeCompanyExists, err)
	}
}

func TestRegisterCompanyAuthorization(t *testing.T) {
	registry, _ := newTestRegistry(t)

	registration := domain.CompanyRegistration{
		CRN:  "CRN-100",
		Name: "Sun Pharma",
		Role: domain.RoleManufacturer,
	}
	for _, caller := range []identity.Caller{userCaller, registrarCaller, outsiderCaller} {
		_, err := registry.RegisterCompany(context.Background(), caller, registration)
		if !errors.IsCode(err, errors.CodeUnauthorized) {
			t.Fatalf("caller %s: expected %s, got %v", caller.Org, errors.CodeUnauthorized, err)
		}
	}
}

func TestRegisterCompanyInvalidRole(t *testing.T) {
	registry, _ := newTestRegistry(t)

	_, err := registry.RegisterCompany(context.Background(), manufacturerCaller, domain.CompanyRegistration{
		CRN:  "CRN-100",
		Name: "Sun Pharma",
		Role: "wholesaler",
	})
	if !errors.IsCode(err, errors.CodeInvalidRole) {
		t.Fatalf("expected %s, got %v", errors.CodeInvalidRole, err)
	}
}
