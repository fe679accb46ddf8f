package groupbuy

import "groupbuy-service/internal/pkg/errs"

type Status string

const (
	StatusOpen       Status = "open"
	StatusFull       Status = "full"
	StatusPurchasing Status = "purchasing"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string { return string(s) }

type PurchaseStatus string

const (
	PurchaseAwaitingPayments      PurchaseStatus = "awaiting_payments"
	PurchaseReadyForPurchase      PurchaseStatus = "ready_for_purchase"
	PurchaseAwaitingProofApproval PurchaseStatus = "awaiting_proof_approval"
	PurchaseCompleted             PurchaseStatus = "completed"
)

func (s PurchaseStatus) String() string { return string(s) }

// stage orders the purchase request statuses; transitions only move forward by one.
func (s PurchaseStatus) stage() int {
	switch s {
	case PurchaseAwaitingPayments:
		return 1
	case PurchaseReadyForPurchase:
		return 2
	case PurchaseAwaitingProofApproval:
		return 3
	case PurchaseCompleted:
		return 4
	default:
		return 0
	}
}

func (s PurchaseStatus) IsValid() bool { return s.stage() > 0 }

type ParticipantStatus string

const (
	ParticipantUnpaid           ParticipantStatus = "unpaid"
	ParticipantPaid             ParticipantStatus = "paid"
	ParticipantAwaitingApproval ParticipantStatus = "awaiting_approval"
	ParticipantApproved         ParticipantStatus = "approved"
	ParticipantRejected         ParticipantStatus = "rejected"
)

func (s ParticipantStatus) String() string { return string(s) }

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantUnpaid, ParticipantPaid, ParticipantAwaitingApproval, ParticipantApproved, ParticipantRejected:
		return true
	default:
		return false
	}
}

// impliesPaid reports whether a participant in this status must have paid.
func (s ParticipantStatus) impliesPaid() bool {
	return s != ParticipantUnpaid
}

const (
	MinParticipants  = 2
	MaxMessageLength = 1000
)

var (
	ErrGroupBuyNotFound      = errs.Class("group buy not found", errs.ErrNotFound)
	ErrInvalidCapacity       = errs.Class("max participants must be at least 2", errs.ErrInvalidArgument)
	ErrAlreadyMember         = errs.Class("user has already joined the group buy", errs.ErrAlreadyDone)
	ErrGroupBuyFull          = errs.Class("group buy is full", errs.ErrInvalidState)
	ErrGroupBuyClosed        = errs.Class("group buy is closed", errs.ErrInvalidState)
	ErrNotOrganizer          = errs.Class("only the organizer can perform this action", errs.ErrForbidden)
	ErrPurchaseRequestExists = errs.Class("group buy already has a purchase request", errs.ErrInvalidState)
	ErrInvalidAmount         = errs.Class("amount must be greater than zero", errs.ErrInvalidArgument)
	ErrInvalidCurrency       = errs.Class("unknown currency code", errs.ErrInvalidArgument)
	ErrAmountTooLarge        = errs.Class("amount exceeds the supported maximum", errs.ErrInvalidArgument)
	ErrDeadlineInPast        = errs.Class("deadline must be in the future", errs.ErrInvalidArgument)
	ErrMessageTooLong        = errs.Class("message exceeds maximum length", errs.ErrInvalidArgument)
	ErrNoParticipants        = errs.Class("group buy has no participants to collect payment from", errs.ErrInvalidState)
	ErrNoPurchaseRequest     = errs.Class("no active purchase request", errs.ErrNotFound)
	ErrInvalidTransition     = errs.Class("action is not allowed in the current purchase request status", errs.ErrInvalidState)
	ErrNotParticipant        = errs.Class("user is not a participant of the purchase request", errs.ErrForbidden)
	ErrAlreadyPaid           = errs.Class("participant has already paid", errs.ErrInvalidState)
	ErrAlreadyApproved       = errs.Class("participant has already approved the purchase", errs.ErrInvalidState)
	ErrAlreadyRejected       = errs.Class("participant has already rejected the purchase", errs.ErrInvalidState)
	ErrEmptyProof            = errs.Class("proof of purchase is required", errs.ErrInvalidArgument)
	ErrUnknownAction         = errs.Class("unknown purchase request action", errs.ErrInvalidArgument)
	ErrAlreadyReviewed       = errs.Class("reviewer has already reviewed this group buy", errs.ErrAlreadyDone)
	ErrNotCompleted          = errs.Class("group buy is not completed", errs.ErrInvalidState)
	ErrNotMember             = errs.Class("user is not a member of the group buy", errs.ErrForbidden)
	ErrSelfReview            = errs.Class("users cannot review themselves", errs.ErrInvalidArgument)
)
