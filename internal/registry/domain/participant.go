package domain

import (
	"strings"
	"time"

	"github.com/regnet-io/regnet/internal/errors"
	"github.com/regnet-io/regnet/internal/ledger"
)

// ParticipantStatus describes where a participant is in the admission flow.
type ParticipantStatus string

const (
	// ParticipantRequested means admission was requested but not decided.
	ParticipantRequested ParticipantStatus = "Requested"
	// ParticipantApproved means the registrar admitted the participant.
	// The transition is one-way and happens exactly once.
	ParticipantApproved ParticipantStatus = "Approved"
)

// ParticipantRef identifies a participant by name and government id. The
// two fields stay separate everywhere; they are never joined into a single
// delimited string.
type ParticipantRef struct {
	Name  string `json:"name"`
	GovID string `json:"govId"`
}

// Validate checks that both identifying fields are present.
func (r ParticipantRef) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New(errors.CodeInvalidArgument, "participant name is required")
	}
	if strings.TrimSpace(r.GovID) == "" {
		return errors.New(errors.CodeInvalidArgument, "participant government id is required")
	}
	return nil
}

// Key derives the ledger key for this participant.
func (r ParticipantRef) Key() (ledger.Key, error) {
	return ledger.NewKey("participant", r.Name, r.GovID)
}

// Participant is a user or organization admitted (or requesting admission)
// to the registry.
type Participant struct {
	Name       string            `json:"name"`
	GovID      string            `json:"govId"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Status     ParticipantStatus `json:"status"`
	Balance    int64             `json:"balance"`
	UserID     string            `json:"userId"`
	ApproverID string            `json:"approverId,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Ref returns the participant's identifying reference.
func (p Participant) Ref() ParticipantRef {
	return ParticipantRef{Name: p.Name, GovID: p.GovID}
}

// AdmissionRequest is the profile submitted with an admission request.
type AdmissionRequest struct {
	Name  string
	GovID string
	Email string
	Phone string
}

// NewParticipant creates an admission request record with a zero balance.
func NewParticipant(req AdmissionRequest, requesterID string, now time.Time) (Participant, error) {
	ref := ParticipantRef{Name: req.Name, GovID: req.GovID}
	if err := ref.Validate(); err != nil {
		return Participant{}, err
	}

	return Participant{
		Name:      req.Name,
		GovID:     req.GovID,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    ParticipantRequested,
		Balance:   0,
		UserID:    requesterID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Approve transitions the participant to Approved. A second approval
// attempt fails rather than re-stamping the record.
func (p *Participant) Approve(approverID string, now time.Time) error {
	if p.Status == ParticipantApproved {
		return errors.WithMetadata(errors.CodeAlreadyApproved,
			"participant is already approved",
			map[string]string{"name": p.Name})
	}
	p.Status = ParticipantApproved
	p.ApproverID = approverID
	p.UpdatedAt = now
	return nil
}

// Credit adds amount to the participant's balance.
func (p *Participant) Credit(amount int64, now time.Time) {
	p.Balance += amount
	p.UpdatedAt = now
}

// Debit subtracts amount from the participant's balance. Callers must have
// checked funds already; the balance never goes negative.
func (p *Participant) Debit(amount int64, now time.Time) error {
	if amount > p.Balance {
		return errors.New(errors.CodeInsufficientBalance, "balance is too low")
	}
	p.Balance -= amount
	p.UpdatedAt = now
	return nil
}
