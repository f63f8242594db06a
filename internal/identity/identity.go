// Package identity carries the caller identity assertion consumed by
// registry transactions. Both fields are opaque values produced by the
// peer runtime after membership verification; this layer never parses them.
package identity

import (
	"github.com/regnet-io/regnet/internal/errors"
)

// Org identifies the organization that issued a transaction call.
type Org string

const (
	// OrgUsers is the participant (user) organization.
	OrgUsers Org = "usersMSP"
	// OrgRegistrar is the approver organization.
	OrgRegistrar Org = "registrarMSP"

	// Supply-chain organizations registered through RegisterCompany.
	OrgManufacturer Org = "manufacturerMSP"
	OrgDistributor  Org = "distributorMSP"
	OrgRetailer     Org = "retailerMSP"
	OrgTransporter  Org = "transporterMSP"
)

// Caller is a verified identity assertion for one transaction call.
type Caller struct {
	Org Org    // Issuing organization
	ID  string // Unique identity string, stamped into records as-is
}

// Authorize reports whether the caller's organization is in the allow-list
// for an operation. It must run before any ledger access.
func Authorize(caller Caller, allowed ...Org) error {
	for _, org := range allowed {
		if caller.Org == org {
			return nil
		}
	}
	return errors.WithMetadata(errors.CodeUnauthorized,
		"organization is not permitted to invoke this transaction",
		map[string]string{"org": string(caller.Org)})
}
