// Package errors provides structured error handling for registry transactions.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Authorization errors
	CodeUnauthorized Code = "UNAUTHORIZED"

	// Lookup errors
	CodeNotFound Code = "NOT_FOUND"

	// Admission errors
	CodeParticipantExists      Code = "PARTICIPANT_EXISTS"
	CodeAlreadyApproved        Code = "ALREADY_APPROVED"
	CodeParticipantNotApproved Code = "PARTICIPANT_NOT_APPROVED"
	CodeInvalidVoucher         Code = "INVALID_VOUCHER"

	// Property errors
	CodePropertyExists       Code = "PROPERTY_EXISTS"
	CodeOwnerNotApproved     Code = "OWNER_NOT_APPROVED"
	CodeNotOwnerOrUnapproved Code = "NOT_OWNER_OR_UNAPPROVED"
	CodeInvalidPrice         Code = "INVALID_PRICE"
	CodeInvalidStatus        Code = "INVALID_STATUS"

	// Purchase errors
	CodeBuyerNotApproved    Code = "BUYER_NOT_APPROVED"
	CodeSelfPurchase        Code = "SELF_PURCHASE"
	CodeNotForSale          Code = "NOT_FOR_SALE"
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"

	// Company errors
	CodeCompanyExists Code = "COMPANY_EXISTS"
	CodeInvalidRole   Code = "INVALID_ROLE"

	// Input errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeInvalidVoucher,
		CodeInvalidPrice,
		CodeInvalidStatus,
		CodeInvalidRole,
		CodeInvalidArgument:
		return codes.InvalidArgument

	// NotFound - missing records
	case CodeNotFound:
		return codes.NotFound

	// AlreadyExists - duplicate creation attempts
	case CodeParticipantExists,
		CodePropertyExists,
		CodeCompanyExists,
		CodeAlreadyApproved:
		return codes.AlreadyExists

	// PermissionDenied - caller not allowed
	case CodeUnauthorized,
		CodeNotOwnerOrUnapproved,
		CodeSelfPurchase:
		return codes.PermissionDenied

	// FailedPrecondition - record in the wrong state
	case CodeParticipantNotApproved,
		CodeOwnerNotApproved,
		CodeBuyerNotApproved,
		CodeNotForSale,
		CodeInsufficientBalance:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}
