package service

import (
	"context"

	"github.com/regnet-io/regnet/internal/errors"
	"github.com/regnet-io/regnet/internal/identity"
	"github.com/regnet-io/regnet/internal/ledger"
	"github.com/regnet-io/regnet/internal/registry/domain"
)

// PropertyRequest is the input for a property registration request.
type PropertyRequest struct {
	ID    string
	Price int64
	Owner domain.ParticipantRef
}

// RequestPropertyRegistration records a request to register a property
// owned by an approved participant.
func (r *Registry) RequestPropertyRegistration(ctx context.Context, caller identity.Caller, req PropertyRequest) (domain.Property, error) {
	if err := identity.Authorize(caller, identity.OrgUsers); err != nil {
		return domain.Property{}, err
	}

	property, err := domain.NewProperty(req.ID, req.Price, req.Owner, r.now())
	if err != nil {
		return domain.Property{}, err
	}

	err = r.ledger.Update(ctx, func(tx ledger.Tx) error {
		owner, err := getParticipant(tx, req.Owner)
		if errors.IsCode(err, errors.CodeNotFound) {
			return errors.New(errors.CodeOwnerNotApproved,
				"owner is not registered on the network")
		}
		if err != nil {
			return err
		}
		if owner.Status != domain.ParticipantApproved {
			return errors.New(errors.CodeOwnerNotApproved,
				"owner must be approved before registering property")
		}

		_, err = getProperty(tx, req.ID)
		if err == nil {
			return errors.WithMetadata(errors.CodePropertyExists,
				"registration was already requested for this property",
				map[string]string{"propertyId": req.ID})
		}
		if !errors.IsCode(err, errors.CodeNotFound) {
			return err
		}
		return putProperty(tx, property)
	})
	if err != nil {
		return domain.Property{}, err
	}
	return property, nil
}

// ApprovePropertyRegistration marks a requested property as registered.
func (r *Registry) ApprovePropertyRegistration(ctx context.Context, caller identity.Caller, propertyID string) (domain.Property, error) {
	if err := identity.Authorize(caller, identity.OrgRegistrar); err != nil {
		return domain.Property{}, err
	}

	var approved domain.Property
	err := r.ledger.Update(ctx, func(tx ledger.Tx) error {
		property, err := getProperty(tx, propertyID)
		if err != nil {
			return err
		}
		if property.Status != domain.PropertyRequested {
			return errors.WithMetadata(errors.CodeAlreadyApproved,
				"property registration was already approved",
				map[string]string{"propertyId": propertyID})
		}
		property.Register(caller.ID, r.now())
		if err := putProperty(tx, property); err != nil {
			return err
		}
		approved = property
		return nil
	})
	if err != nil {
		return domain.Property{}, err
	}
	return approved, nil
}

// ViewProperty returns a property record.
func (r *Registry) ViewProperty(ctx context.Context, caller identity.Caller, propertyID string) (domain.Property, error) {
	if err := identity.Authorize(caller, identity.OrgUsers, identity.OrgRegistrar); err != nil {
		return domain.Property{}, err
	}

	var property domain.Property
	err := r.ledger.View(ctx, func(tx ledger.Tx) error {
		var err error
		property, err = getProperty(tx, propertyID)
		return err
	})
	if err != nil {
		return domain.Property{}, err
	}
	return property, nil
}

// StatusUpdate is the input for an owner-initiated property status change.
type StatusUpdate struct {
	PropertyID string
	Owner      domain.ParticipantRef
	Status     domain.PropertyStatus
}

// UpdatePropertyStatus moves a property between Registered and OnSale.
// Only the approved owner of the property may change its status.
func (r *Registry) UpdatePropertyStatus(ctx context.Context, caller identity.Caller, update StatusUpdate) (domain.Property, error) {
	if err := identity.Authorize(caller, identity.OrgUsers); err != nil {
		return domain.Property{}, err
	}
	if err := update.Owner.Validate(); err != nil {
		return domain.Property{}, err
	}

	var updated domain.Property
	err := r.ledger.Update(ctx, func(tx ledger.Tx) error {
		owner, err := getParticipant(tx, update.Owner)
		if errors.IsCode(err, errors.CodeNotFound) {
			return errors.New(errors.CodeNotOwnerOrUnapproved,
				"caller is not registered on the network")
		}
		if err != nil {
			return err
		}
		if owner.Status != domain.ParticipantApproved {
			return errors.New(errors.CodeNotOwnerOrUnapproved,
				"caller must be approved to update property status")
		}

		property, err := getProperty(tx, update.PropertyID)
		if err != nil {
			return err
		}
		if property.Owner != update.Owner {
			return errors.New(errors.CodeNotOwnerOrUnapproved,
				"only the property owner may update its status")
		}
		if err := property.SetStatus(update.Status, r.now()); err != nil {
			return err
		}
		if err := putProperty(tx, property); err != nil {
			return err
		}
		updated = property
		return nil
	})
	if err != nil {
		return domain.Property{}, err
	}
	return updated, nil
}

// Purchase is the result of a completed property purchase: the three
// records updated by the atomic transfer.
type Purchase struct {
	Property domain.Property
	Buyer    domain.Participant
	Seller   domain.Participant
}

// PurchaseProperty transfers an on-sale property to an approved buyer.
// The buyer debit, seller credit, and ownership change commit as one
// ledger transaction; any failure leaves all three records untouched.
func (r *Registry) PurchaseProperty(ctx context.Context, caller identity.Caller, propertyID string, buyerRef domain.ParticipantRef) (Purchase, error) {
	if err := identity.Authorize(caller, identity.OrgUsers); err != nil {
		return Purchase{}, err
	}
	if err := buyerRef.Validate(); err != nil {
		return Purchase{}, err
	}

	var result Purchase
	err := r.ledger.Update(ctx, func(tx ledger.Tx) error {
		buyer, err := getParticipant(tx, buyerRef)
		if errors.IsCode(err, errors.CodeNotFound) {
			return errors.New(errors.CodeBuyerNotApproved,
				"buyer is not registered on the network")
		}
		if err != nil {
			return err
		}
		if buyer.Status != domain.ParticipantApproved {
			return errors.New(errors.CodeBuyerNotApproved,
				"buyer must be approved to purchase property")
		}

		property, err := getProperty(tx, propertyID)
		if err != nil {
			return err
		}
		if property.Owner == buyerRef {
			return errors.New(errors.CodeSelfPurchase,
				"buyer already owns this property")
		}
		if property.Status != domain.PropertyOnSale {
			return errors.WithMetadata(errors.CodeNotForSale,
				"property is not listed for sale",
				map[string]string{"status": string(property.Status)})
		}
		// Strictly greater than the price, matching the network's
		// published purchase rule.
		if buyer.Balance <= property.Price {
			return errors.New(errors.CodeInsufficientBalance,
				"buyer balance does not cover the property price")
		}

		seller, err := getParticipant(tx, property.Owner)
		if err != nil {
			return err
		}

		now := r.now()
		if err := buyer.Debit(property.Price, now); err != nil {
			return err
		}
		seller.Credit(property.Price, now)
		property.TransferTo(buyerRef, now)

		if err := putParticipant(tx, buyer); err != nil {
			return err
		}
		if err := putParticipant(tx, seller); err != nil {
			return err
		}
		if err := putProperty(tx, property); err != nil {
			return err
		}

		result = Purchase{Property: property, Buyer: buyer, Seller: seller}
		return nil
	})
	if err != nil {
		return Purchase{}, err
	}
	return result, nil
}
