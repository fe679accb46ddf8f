package groupbuy

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ParticipantPayment struct {
	userID       uuid.UUID
	paid         bool
	paymentProof *string
	paidAt       *time.Time
	status       ParticipantStatus
	approvedAt   *time.Time
}

func newParticipantPayment(userID uuid.UUID) ParticipantPayment {
	return ParticipantPayment{userID: userID, status: ParticipantUnpaid}
}

func ReconstructParticipantPayment(userID uuid.UUID, paid bool, paymentProof *string, paidAt *time.Time, status ParticipantStatus, approvedAt *time.Time) ParticipantPayment {
	return ParticipantPayment{
		userID:       userID,
		paid:         paid,
		paymentProof: paymentProof,
		paidAt:       paidAt,
		status:       status,
		approvedAt:   approvedAt,
	}
}

func (p ParticipantPayment) UserID() uuid.UUID         { return p.userID }
func (p ParticipantPayment) Paid() bool                { return p.paid }
func (p ParticipantPayment) PaymentProof() *string     { return p.paymentProof }
func (p ParticipantPayment) PaidAt() *time.Time        { return p.paidAt }
func (p ParticipantPayment) Status() ParticipantStatus { return p.status }
func (p ParticipantPayment) ApprovedAt() *time.Time    { return p.approvedAt }

// Consistent reports whether paid agrees with status.
func (p ParticipantPayment) Consistent() bool {
	return p.paid == p.status.impliesPaid()
}

type PurchaseRequest struct {
	id                       uuid.UUID
	organizerID              uuid.UUID
	amount                   Money
	deadline                 time.Time
	message                  string
	status                   PurchaseStatus
	organizerProof           *string
	organizerProofUploadedAt *time.Time
	participants             []ParticipantPayment
	reviewedBy               []uuid.UUID
	createdAt                time.Time
	updatedAt                time.Time
}

func ReconstructPurchaseRequest(
	id, organizerID uuid.UUID,
	amount Money,
	deadline time.Time,
	message string,
	status PurchaseStatus,
	organizerProof *string,
	organizerProofUploadedAt *time.Time,
	participants []ParticipantPayment,
	reviewedBy []uuid.UUID,
	createdAt, updatedAt time.Time,
) *PurchaseRequest {
	return &PurchaseRequest{
		id:                       id,
		organizerID:              organizerID,
		amount:                   amount,
		deadline:                 deadline,
		message:                  message,
		status:                   status,
		organizerProof:           organizerProof,
		organizerProofUploadedAt: organizerProofUploadedAt,
		participants:             participants,
		reviewedBy:               reviewedBy,
		createdAt:                createdAt,
		updatedAt:                updatedAt,
	}
}

func (r *PurchaseRequest) ID() uuid.UUID                        { return r.id }
func (r *PurchaseRequest) OrganizerID() uuid.UUID               { return r.organizerID }
func (r *PurchaseRequest) Amount() Money                        { return r.amount }
func (r *PurchaseRequest) Deadline() time.Time                  { return r.deadline }
func (r *PurchaseRequest) Message() string                      { return r.message }
func (r *PurchaseRequest) Status() PurchaseStatus               { return r.status }
func (r *PurchaseRequest) OrganizerProof() *string              { return r.organizerProof }
func (r *PurchaseRequest) OrganizerProofUploadedAt() *time.Time { return r.organizerProofUploadedAt }
func (r *PurchaseRequest) CreatedAt() time.Time                 { return r.createdAt }
func (r *PurchaseRequest) UpdatedAt() time.Time                 { return r.updatedAt }

func (r *PurchaseRequest) Participants() []ParticipantPayment {
	return append([]ParticipantPayment(nil), r.participants...)
}

func (r *PurchaseRequest) ReviewedBy() []uuid.UUID {
	return append([]uuid.UUID(nil), r.reviewedBy...)
}

func (r *PurchaseRequest) IsCompleted() bool { return r.status == PurchaseCompleted }

// IsOverdue is informational; actions are not blocked once the deadline passes.
func (r *PurchaseRequest) IsOverdue(now time.Time) bool {
	return r.status == PurchaseAwaitingPayments && now.After(r.deadline)
}

func (r *PurchaseRequest) PaidCount() int {
	return lo.CountBy(r.participants, func(p ParticipantPayment) bool { return p.paid })
}

func (r *PurchaseRequest) ApprovedCount() int {
	return r.countStatus(ParticipantApproved)
}

func (r *PurchaseRequest) RejectedCount() int {
	return r.countStatus(ParticipantRejected)
}

func (r *PurchaseRequest) HasReviewed(reviewerID uuid.UUID) bool {
	return lo.Contains(r.reviewedBy, reviewerID)
}

// MarkReviewed records a reviewer once; a second call fails with ErrAlreadyReviewed.
func (r *PurchaseRequest) MarkReviewed(reviewerID uuid.UUID) error {
	if r.HasReviewed(reviewerID) {
		return ErrAlreadyReviewed
	}
	r.reviewedBy = append(r.reviewedBy, reviewerID)
	return nil
}

func (r *PurchaseRequest) countStatus(s ParticipantStatus) int {
	return lo.CountBy(r.participants, func(p ParticipantPayment) bool { return p.status == s })
}

func (r *PurchaseRequest) participantIndex(userID uuid.UUID) int {
	_, idx, ok := lo.FindIndexOf(r.participants, func(p ParticipantPayment) bool { return p.userID == userID })
	if !ok {
		return -1
	}
	return idx
}

func (r *PurchaseRequest) requireStatus(want PurchaseStatus) error {
	if r.status != want {
		return ErrInvalidTransition
	}
	return nil
}

func (r *PurchaseRequest) allParticipants(pred func(ParticipantPayment) bool) bool {
	return lo.EveryBy(r.participants, pred)
}

// advance moves the request exactly one stage forward.
func (r *PurchaseRequest) advance(to PurchaseStatus) {
	if to.stage() != r.status.stage()+1 {
		panic("groupbuy: purchase request status may only advance one stage at a time")
	}
	r.status = to
}

func (r *PurchaseRequest) submitPayment(a SubmitPayment, now time.Time) error {
	if err := r.requireStatus(PurchaseAwaitingPayments); err != nil {
		return err
	}
	idx := r.participantIndex(a.UserID)
	if idx < 0 {
		return ErrNotParticipant
	}
	if r.participants[idx].paid {
		return ErrAlreadyPaid
	}

	p := &r.participants[idx]
	p.paid = true
	p.status = ParticipantPaid
	p.paidAt = &now
	if a.PaymentProof != nil && *a.PaymentProof != "" {
		proof := *a.PaymentProof
		p.paymentProof = &proof
	}

	if r.allParticipants(func(p ParticipantPayment) bool { return p.paid }) {
		r.advance(PurchaseReadyForPurchase)
	}
	return nil
}

func (r *PurchaseRequest) uploadOrganizerProof(a UploadOrganizerProof, now time.Time) error {
	if a.OrganizerID != r.organizerID {
		return ErrNotOrganizer
	}
	if err := r.requireStatus(PurchaseReadyForPurchase); err != nil {
		return err
	}
	if a.Proof == "" {
		return ErrEmptyProof
	}

	proof := a.Proof
	r.organizerProof = &proof
	r.organizerProofUploadedAt = &now
	for i := range r.participants {
		r.participants[i].status = ParticipantAwaitingApproval
	}
	r.advance(PurchaseAwaitingProofApproval)
	return nil
}

func (r *PurchaseRequest) approve(a ApprovePurchase, now time.Time) error {
	idx, err := r.reviewableParticipant(a.UserID)
	if err != nil {
		return err
	}
	if r.participants[idx].status == ParticipantApproved {
		return ErrAlreadyApproved
	}

	p := &r.participants[idx]
	p.status = ParticipantApproved
	p.approvedAt = &now

	if r.allParticipants(func(p ParticipantPayment) bool { return p.status == ParticipantApproved }) {
		r.advance(PurchaseCompleted)
	}
	return nil
}

// reject leaves the aggregate status alone; the participant may still approve
// later once the organizer has resolved the dispute.
func (r *PurchaseRequest) reject(a RejectPurchase, now time.Time) error {
	idx, err := r.reviewableParticipant(a.UserID)
	if err != nil {
		return err
	}
	if r.participants[idx].status == ParticipantRejected {
		return ErrAlreadyRejected
	}

	p := &r.participants[idx]
	p.status = ParticipantRejected
	p.approvedAt = &now
	return nil
}

func (r *PurchaseRequest) reviewableParticipant(userID uuid.UUID) (int, error) {
	if err := r.requireStatus(PurchaseAwaitingProofApproval); err != nil {
		return -1, err
	}
	idx := r.participantIndex(userID)
	if idx < 0 {
		return -1, ErrNotParticipant
	}
	return idx, nil
}

func (r *PurchaseRequest) clone() *PurchaseRequest {
	c := *r
	c.participants = append([]ParticipantPayment(nil), r.participants...)
	c.reviewedBy = append([]uuid.UUID(nil), r.reviewedBy...)
	return &c
}
