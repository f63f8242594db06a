package service

import (
	"encoding/json"
	stderrors "errors"

	"github.com/regnet-io/regnet/internal/errors"
	"github.com/regnet-io/regnet/internal/ledger"
	"github.com/regnet-io/regnet/internal/registry/domain"
)

// Record codecs. Records are stored as JSON; absent keys surface as typed
// NotFound errors, never as guessed defaults.

func getParticipant(tx ledger.Tx, ref domain.ParticipantRef) (domain.Participant, error) {
	key, err := ref.Key()
	if err != nil {
		return domain.Participant{}, errors.Wrap(errors.CodeInvalidArgument, "build participant key", err)
	}
	value, err := tx.Get(key)
	if stderrors.Is(err, ledger.ErrNotFound) {
		return domain.Participant{}, errors.WithMetadata(errors.CodeNotFound,
			"participant not found",
			map[string]string{"name": ref.Name})
	}
	if err != nil {
		return domain.Participant{}, errors.Wrap(errors.CodeUnknown, "read participant", err)
	}

	var participant domain.Participant
	if err := json.Unmarshal(value, &participant); err != nil {
		return domain.Participant{}, errors.Wrap(errors.CodeUnknown, "decode participant record", err)
	}
	return participant, nil
}

func putParticipant(tx ledger.Tx, participant domain.Participant) error {
	key, err := participant.Ref().Key()
	if err != nil {
		return errors.Wrap(errors.CodeInvalidArgument, "build participant key", err)
	}
	value, err := json.Marshal(participant)
	if err != nil {
		return errors.Wrap(errors.CodeUnknown, "encode participant record", err)
	}
	if err := tx.Put(key, value); err != nil {
		return errors.Wrap(errors.CodeUnknown, "write participant", err)
	}
	return nil
}

func participantExists(tx ledger.Tx, ref domain.ParticipantRef) (bool, error) {
	_, err := getParticipant(tx, ref)
	if errors.IsCode(err, errors.CodeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func getProperty(tx ledger.Tx, propertyID string) (domain.Property, error) {
	key, err := domain.PropertyKey(propertyID)
	if err != nil {
		return domain.Property{}, errors.Wrap(errors.CodeInvalidArgument, "build property key", err)
	}
	value, err := tx.Get(key)
	if stderrors.Is(err, ledger.ErrNotFound) {
		return domain.Property{}, errors.WithMetadata(errors.CodeNotFound,
			"property not found",
			map[string]string{"propertyId": propertyID})
	}
	if err != nil {
		return domain.Property{}, errors.Wrap(errors.CodeUnknown, "read property", err)
	}

	var property domain.Property
	if err := json.Unmarshal(value, &property); err != nil {
		return domain.Property{}, errors.Wrap(errors.CodeUnknown, "decode property record", err)
	}
	return property, nil
}

func putProperty(tx ledger.Tx, property domain.Property) error {
	key, err := domain.PropertyKey(property.ID)
	if err != nil {
		return errors.Wrap(errors.CodeInvalidArgument, "build property key", err)
	}
	value, err := json.Marshal(property)
	if err != nil {
		return errors.Wrap(errors.CodeUnknown, "encode property record", err)
	}
	if err := tx.Put(key, value); err != nil {
		return errors.Wrap(errors.CodeUnknown, "write property", err)
	}
	return nil
}

func getCompany(tx ledger.Tx, ref domain.CompanyRef) (domain.Company, error) {
	key, err := ref.Key()
	if err != nil {
		return domain.Company{}, errors.Wrap(errors.CodeInvalidArgument, "build company key", err)
	}
	value, err := tx.Get(key)
	if stderrors.Is(err, ledger.ErrNotFound) {
		return domain.Company{}, errors.WithMetadata(errors.CodeNotFound,
			"company not found",
			map[string]string{"companyCRN": ref.CRN})
	}
	if err != nil {
		return domain.Company{}, errors.Wrap(errors.CodeUnknown, "read company", err)
	}

	var company domain.Company
	if err := json.Unmarshal(value, &company); err != nil {
		return domain.Company{}, errors.Wrap(errors.CodeUnknown, "decode company record", err)
	}
	return company, nil
}

func putCompany(tx ledger.Tx, company domain.Company) error {
	key, err := company.Ref().Key()
	if err != nil {
		return errors.Wrap(errors.CodeInvalidArgument, "build company key", err)
	}
	value, err := json.Marshal(company)
	if err != nil {
		return errors.Wrap(errors.CodeUnknown, "encode company record", err)
	}
	if err := tx.Put(key, value); err != nil {
		return errors.Wrap(errors.CodeUnknown, "write company", err)
	}
	return nil
}
