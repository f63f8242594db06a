package service

import (
	"context"

	"github.com/regnet-io/regnet/internal/errors"
	"github.com/regnet-io/regnet/internal/identity"
	"github.com/regnet-io/regnet/internal/ledger"
	"github.com/regnet-io/regnet/internal/registry/domain"
)

// RequestAdmission records a participant's request to join the registry.
// An occupied key is rejected: overwriting would silently reset the
// existing record's status and balance.
func (r *Registry) RequestAdmission(ctx context.Context, caller identity.Caller, req domain.AdmissionRequest) (domain.Participant, error) {
	if err := identity.Authorize(caller, identity.OrgUsers); err != nil {
		return domain.Participant{}, err
	}

	participant, err := domain.NewParticipant(req, caller.ID, r.now())
	if err != nil {
		return domain.Participant{}, err
	}

	err = r.ledger.Update(ctx, func(tx ledger.Tx) error {
		exists, err := participantExists(tx, participant.Ref())
		if err != nil {
			return err
		}
		if exists {
			return errors.WithMetadata(errors.CodeParticipantExists,
				"admission was already requested for this participant",
				map[string]string{"name": req.Name})
		}
		return putParticipant(tx, participant)
	})
	if err != nil {
		return domain.Participant{}, err
	}
	return participant, nil
}

// ApproveAdmission admits a requested participant. Approval is one-way and
// one-time: an already approved record fails with AlreadyApproved.
func (r *Registry) ApproveAdmission(ctx context.Context, caller identity.Caller, ref domain.ParticipantRef) (domain.Participant, error) {
	if err := identity.Authorize(caller, identity.OrgRegistrar); err != nil {
		return domain.Participant{}, err
	}
	if err := ref.Validate(); err != nil {
		return domain.Participant{}, err
	}

	var approved domain.Participant
	err := r.ledger.Update(ctx, func(tx ledger.Tx) error {
		participant, err := getParticipant(tx, ref)
		if err != nil {
			return err
		}
		if err := participant.Approve(caller.ID, r.now()); err != nil {
			return err
		}
		if err := putParticipant(tx, participant); err != nil {
			return err
		}
		approved = participant
		return nil
	})
	if err != nil {
		return domain.Participant{}, err
	}
	return approved, nil
}

// ViewParticipant returns a participant record.
func (r *Registry) ViewParticipant(ctx context.Context, caller identity.Caller, ref domain.ParticipantRef) (domain.Participant, error) {
	if err := identity.Authorize(caller, identity.OrgUsers, identity.OrgRegistrar); err != nil {
		return domain.Participant{}, err
	}
	if err := ref.Validate(); err != nil {
		return domain.Participant{}, err
	}

	var participant domain.Participant
	err := r.ledger.View(ctx, func(tx ledger.Tx) error {
		var err error
		participant, err = getParticipant(tx, ref)
		return err
	})
	if err != nil {
		return domain.Participant{}, err
	}
	return participant, nil
}

// Recharge credits an approved participant's balance from a fixed voucher
// table. Replaying the same voucher credits again; idempotence per voucher
// is the invoking bank integration's concern, not this layer's.
func (r *Registry) Recharge(ctx context.Context, caller identity.Caller, ref domain.ParticipantRef, voucherID string) (domain.Participant, error) {
	if err := identity.Authorize(caller, identity.OrgUsers); err != nil {
		return domain.Participant{}, err
	}
	if err := ref.Validate(); err != nil {
		return domain.Participant{}, err
	}

	amount, ok := domain.VoucherCredit(voucherID)
	if !ok {
		return domain.Participant{}, errors.WithMetadata(errors.CodeInvalidVoucher,
			"voucher id is not recognized",
			map[string]string{"voucherId": voucherID})
	}

	var recharged domain.Participant
	err := r.ledger.Update(ctx, func(tx ledger.Tx) error {
		participant, err := getParticipant(tx, ref)
		if err != nil {
			return err
		}
		if participant.Status != domain.ParticipantApproved {
			return errors.New(errors.CodeParticipantNotApproved,
				"participant must be approved before recharging")
		}
		participant.Credit(amount, r.now())
		if err := putParticipant(tx, participant); err != nil {
			return err
		}
		recharged = participant
		return nil
	})
	if err != nil {
		return domain.Participant{}, err
	}
	return recharged, nil
}
