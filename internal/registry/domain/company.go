package domain

import (
	"strings"
	"time"

	"github.com/regnet-io/regnet/internal/errors"
	"github.com/regnet-io/regnet/internal/ledger"
)

// CompanyRole is the function a company performs in the supply chain.
type CompanyRole string

const (
	RoleManufacturer CompanyRole = "manufacturer"
	RoleDistributor  CompanyRole = "distributor"
	RoleRetailer     CompanyRole = "retailer"
	RoleTransporter  CompanyRole = "transporter"
)

// hierarchyRanks orders companies in the custody chain. Transporters carry
// goods between ranks and have no rank of their own.
var hierarchyRanks = map[CompanyRole]int{
	RoleManufacturer: 1,
	RoleDistributor:  2,
	RoleRetailer:     3,
}

// HierarchyRank returns the company role's rank in the supply chain and
// whether the role is ranked at all.
func (r CompanyRole) HierarchyRank() (int, bool) {
	rank, ok := hierarchyRanks[r]
	return rank, ok
}

// Valid reports whether the role is one of the four registered roles.
func (r CompanyRole) Valid() bool {
	switch r {
	case RoleManufacturer, RoleDistributor, RoleRetailer, RoleTransporter:
		return true
	}
	return false
}

// CompanyRef identifies a company by registration number and name.
type CompanyRef struct {
	CRN  string `json:"companyCRN"`
	Name string `json:"companyName"`
}

// Validate checks that both identifying fields are present.
func (r CompanyRef) Validate() error {
	if strings.TrimSpace(r.CRN) == "" {
		return errors.New(errors.CodeInvalidArgument, "company registration number is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New(errors.CodeInvalidArgument, "company name is required")
	}
	return nil
}

// Key derives the ledger key for this company.
func (r CompanyRef) Key() (ledger.Key, error) {
	return ledger.NewKey("company", r.CRN, r.Name)
}

// Company is a supply-chain organization entity. Creation is terminal:
// no update or delete operation exists for companies.
type Company struct {
	CRN           string      `json:"companyCRN"`
	Name          string      `json:"companyName"`
	Location      string      `json:"location"`
	Role          CompanyRole `json:"organisationRole"`
	HierarchyRank *int        `json:"hierarchyRank"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Ref returns the company's identifying reference.
func (c Company) Ref() CompanyRef {
	return CompanyRef{CRN: c.CRN, Name: c.Name}
}

// CompanyRegistration is the input for registering a company.
type CompanyRegistration struct {
	CRN      string
	Name     string
	Location string
	Role     CompanyRole
}

// NewCompany creates a company record with its hierarchy rank resolved
// from the fixed role table.
func NewCompany(reg CompanyRegistration, now time.Time) (Company, error) {
	ref := CompanyRef{CRN: reg.CRN, Name: reg.Name}
	if err := ref.Validate(); err != nil {
		return Company{}, err
	}
	if !reg.Role.Valid() {
		return Company{}, errors.WithMetadata(errors.CodeInvalidRole,
			"organisation role is not recognized",
			map[string]string{"role": string(reg.Role)})
	}

	company := Company{
		CRN:       reg.CRN,
		Name:      reg.Name,
		Location:  reg.Location,
		Role:      reg.Role,
		CreatedAt: now,
	}
	if rank, ok := reg.Role.HierarchyRank(); ok {
		company.HierarchyRank = &rank
	}
	return company, nil
}
