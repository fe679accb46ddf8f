package groupbuy

import (
	"time"

	"github.com/google/uuid"
)

type ActionName string

const (
	ActionSubmitPayment        ActionName = "submit_payment"
	ActionUploadOrganizerProof ActionName = "upload_organizer_proof"
	ActionApprovePurchase      ActionName = "approve_purchase"
	ActionRejectPurchase       ActionName = "reject_purchase"
)

func (n ActionName) String() string { return string(n) }

// Action is a closed set: the unexported apply method keeps implementations
// inside this package, and every variant must provide its own transition.
type Action interface {
	Name() ActionName
	Actor() uuid.UUID
	apply(r *PurchaseRequest, now time.Time) error
}

type SubmitPayment struct {
	UserID       uuid.UUID
	PaymentProof *string
}

type UploadOrganizerProof struct {
	OrganizerID uuid.UUID
	Proof       string
}

type ApprovePurchase struct {
	UserID uuid.UUID
}

type RejectPurchase struct {
	UserID uuid.UUID
}

func (SubmitPayment) Name() ActionName        { return ActionSubmitPayment }
func (UploadOrganizerProof) Name() ActionName { return ActionUploadOrganizerProof }
func (ApprovePurchase) Name() ActionName      { return ActionApprovePurchase }
func (RejectPurchase) Name() ActionName       { return ActionRejectPurchase }

func (a SubmitPayment) Actor() uuid.UUID        { return a.UserID }
func (a UploadOrganizerProof) Actor() uuid.UUID { return a.OrganizerID }
func (a ApprovePurchase) Actor() uuid.UUID      { return a.UserID }
func (a RejectPurchase) Actor() uuid.UUID       { return a.UserID }

func (a SubmitPayment) apply(r *PurchaseRequest, now time.Time) error {
	return r.submitPayment(a, now)
}

func (a UploadOrganizerProof) apply(r *PurchaseRequest, now time.Time) error {
	return r.uploadOrganizerProof(a, now)
}

func (a ApprovePurchase) apply(r *PurchaseRequest, now time.Time) error {
	return r.approve(a, now)
}

func (a RejectPurchase) apply(r *PurchaseRequest, now time.Time) error {
	return r.reject(a, now)
}

// ParseAction builds an Action from its wire name. proof feeds
// upload_organizer_proof, paymentProof feeds submit_payment.
func ParseAction(name string, actor uuid.UUID, proof string, paymentProof *string) (Action, error) {
	switch ActionName(name) {
	case ActionSubmitPayment:
		return SubmitPayment{UserID: actor, PaymentProof: paymentProof}, nil
	case ActionUploadOrganizerProof:
		return UploadOrganizerProof{OrganizerID: actor, Proof: proof}, nil
	case ActionApprovePurchase:
		return ApprovePurchase{UserID: actor}, nil
	case ActionRejectPurchase:
		return RejectPurchase{UserID: actor}, nil
	default:
		return nil, ErrUnknownAction
	}
}

// Transition describes the outcome of one applied action.
type Transition struct {
	Action   ActionName
	ActorID  uuid.UUID
	From     PurchaseStatus
	To       PurchaseStatus
	Paid     int
	Approved int
	Rejected int
	Total    int
}

func (t Transition) StatusChanged() bool { return t.From != t.To }

func (t Transition) Completed() bool {
	return t.StatusChanged() && t.To == PurchaseCompleted
}
