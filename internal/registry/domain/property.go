package domain

import (
	"strings"
	"time"

	"github.com/regnet-io/regnet/internal/errors"
	"github.com/regnet-io/regnet/internal/ledger"
)

// PropertyStatus describes where a property is in the registration flow.
type PropertyStatus string

const (
	// PropertyRequested means registration was requested but not approved.
	PropertyRequested PropertyStatus = "Requested"
	// PropertyRegistered means the registrar recorded the property.
	PropertyRegistered PropertyStatus = "Registered"
	// PropertyOnSale means the owner listed the property for purchase.
	PropertyOnSale PropertyStatus = "OnSale"
)

// PropertyKey derives the ledger key for a property id.
func PropertyKey(propertyID string) (ledger.Key, error) {
	return ledger.NewKey("property", propertyID)
}

// Property is an asset owned by exactly one participant.
type Property struct {
	ID         string         `json:"propertyId"`
	Owner      ParticipantRef `json:"owner"`
	Price      int64          `json:"price"`
	Status     PropertyStatus `json:"status"`
	ApproverID string         `json:"approverId,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// NewProperty creates a registration request record for a property.
func NewProperty(propertyID string, price int64, owner ParticipantRef, now time.Time) (Property, error) {
	if strings.TrimSpace(propertyID) == "" {
		return Property{}, errors.New(errors.CodeInvalidArgument, "property id is required")
	}
	if err := owner.Validate(); err != nil {
		return Property{}, err
	}
	if price <= 0 {
		return Property{}, errors.New(errors.CodeInvalidPrice, "property price must be positive")
	}

	return Property{
		ID:        propertyID,
		Owner:     owner,
		Price:     price,
		Status:    PropertyRequested,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Register marks the property as registered by the approver.
func (p *Property) Register(approverID string, now time.Time) {
	p.Status = PropertyRegistered
	p.ApproverID = approverID
	p.UpdatedAt = now
}

// SetStatus moves a registered property on or off sale. Only the two
// owner-controlled statuses are accepted, and only once the registrar
// has approved the registration.
func (p *Property) SetStatus(status PropertyStatus, now time.Time) error {
	if p.Status == PropertyRequested {
		return errors.WithMetadata(errors.CodeInvalidStatus,
			"property registration is pending approval",
			map[string]string{"propertyId": p.ID})
	}
	if status != PropertyRegistered && status != PropertyOnSale {
		return errors.WithMetadata(errors.CodeInvalidStatus,
			"property status must be Registered or OnSale",
			map[string]string{"status": string(status)})
	}
	p.Status = status
	p.UpdatedAt = now
	return nil
}

// TransferTo reassigns ownership to the buyer and takes the property off
// sale. Balance movement is the caller's responsibility; both sides of a
// purchase commit in the same ledger transaction.
func (p *Property) TransferTo(buyer ParticipantRef, now time.Time) {
	p.Owner = buyer
	p.Status = PropertyRegistered
	p.UpdatedAt = now
}
