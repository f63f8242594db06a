package service

import (
	"context"

	"github.com/regnet-io/regnet/internal/errors"
	"github.com/regnet-io/regnet/internal/identity"
	"github.com/regnet-io/regnet/internal/ledger"
	"github.com/regnet-io/regnet/internal/registry/domain"
)

// RegisterCompany records a supply-chain organization with its hierarchy
// rank. Companies are create-only; an occupied key is rejected rather
// than overwritten.
func (r *Registry) RegisterCompany(ctx context.Context, caller identity.Caller, reg domain.CompanyRegistration) (domain.Company, error) {
	err := identity.Authorize(caller,
		identity.OrgManufacturer,
		identity.OrgDistributor,
		identity.OrgRetailer,
		identity.OrgTransporter,
	)
	if err != nil {
		return domain.Company{}, err
	}

	company, err := domain.NewCompany(reg, r.now())
	if err != nil {
		return domain.Company{}, err
	}

	err = r.ledger.Update(ctx, func(tx ledger.Tx) error {
		_, err := getCompany(tx, company.Ref())
		if err == nil {
			return errors.WithMetadata(errors.CodeCompanyExists,
				"company is already registered",
				map[string]string{"companyCRN": reg.CRN})
		}
		if !errors.IsCode(err, errors.CodeNotFound) {
			return err
		}
		return putCompany(tx, company)
	})
	if err != nil {
		return domain.Company{}, err
	}
	return company, nil
}
