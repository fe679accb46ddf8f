package groupbuy

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// GroupBuy is the aggregate root. Its status is never stored independently:
// it is derived from membership and the purchase request on every read.
type GroupBuy struct {
	id              uuid.UUID
	listingID       uuid.UUID
	organizerID     uuid.UUID
	maxParticipants int
	participants    []uuid.UUID
	purchaseRequest *PurchaseRequest
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewGroupBuy(listingID, organizerID uuid.UUID, maxParticipants int, now time.Time) (*GroupBuy, error) {
	if maxParticipants < MinParticipants {
		return nil, ErrInvalidCapacity
	}
	return &GroupBuy{
		id:              uuid.New(),
		listingID:       listingID,
		organizerID:     organizerID,
		maxParticipants: maxParticipants,
		participants:    []uuid.UUID{organizerID},
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id, listingID, organizerID uuid.UUID,
	maxParticipants int,
	participants []uuid.UUID,
	purchaseRequest *PurchaseRequest,
	version int,
	createdAt, updatedAt time.Time,
) *GroupBuy {
	return &GroupBuy{
		id:              id,
		listingID:       listingID,
		organizerID:     organizerID,
		maxParticipants: maxParticipants,
		participants:    participants,
		purchaseRequest: purchaseRequest,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (g *GroupBuy) ID() uuid.UUID                     { return g.id }
func (g *GroupBuy) ListingID() uuid.UUID              { return g.listingID }
func (g *GroupBuy) OrganizerID() uuid.UUID            { return g.organizerID }
func (g *GroupBuy) MaxParticipants() int              { return g.maxParticipants }
func (g *GroupBuy) CurrentParticipants() int          { return len(g.participants) }
func (g *GroupBuy) PurchaseRequest() *PurchaseRequest { return g.purchaseRequest }
func (g *GroupBuy) Version() int                      { return g.version }
func (g *GroupBuy) CreatedAt() time.Time              { return g.createdAt }
func (g *GroupBuy) UpdatedAt() time.Time              { return g.updatedAt }

func (g *GroupBuy) Participants() []uuid.UUID {
	return append([]uuid.UUID(nil), g.participants...)
}

func (g *GroupBuy) Status() Status {
	return DeriveStatus(len(g.participants), g.maxParticipants, g.purchaseRequest)
}

func (g *GroupBuy) IsMember(userID uuid.UUID) bool {
	return lo.Contains(g.participants, userID)
}

func (g *GroupBuy) IsOrganizer(userID uuid.UUID) bool {
	return g.organizerID == userID
}

// DeriveStatus is the single source of the GroupBuy status.
func DeriveStatus(current, maxParticipants int, pr *PurchaseRequest) Status {
	switch {
	case pr == nil && current < maxParticipants:
		return StatusOpen
	case pr == nil:
		return StatusFull
	case pr.status == PurchaseCompleted:
		return StatusCompleted
	default:
		return StatusPurchasing
	}
}

// Join adds a member. A member joining while a purchase request is running
// is not added to that request's participants.
func (g *GroupBuy) Join(userID uuid.UUID, now time.Time) error {
	if g.Status() == StatusCompleted {
		return ErrGroupBuyClosed
	}
	if g.IsMember(userID) {
		return ErrAlreadyMember
	}
	if len(g.participants) >= g.maxParticipants {
		return ErrGroupBuyFull
	}
	g.participants = append(g.participants, userID)
	g.updatedAt = now
	return nil
}

// CanStartPurchaseRequest checks who may open the round before any of the
// request's own fields are looked at.
func (g *GroupBuy) CanStartPurchaseRequest(actorID uuid.UUID) error {
	if !g.IsOrganizer(actorID) {
		return ErrNotOrganizer
	}
	if g.purchaseRequest != nil {
		return ErrPurchaseRequestExists
	}
	return nil
}

// StartPurchaseRequest opens the payment collection round.
func (g *GroupBuy) StartPurchaseRequest(actorID uuid.UUID, amount Money, deadline time.Time, message string, now time.Time) (*PurchaseRequest, error) {
	if err := g.CanStartPurchaseRequest(actorID); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !deadline.After(now) {
		return nil, ErrDeadlineInPast
	}
	message = strings.TrimSpace(message)
	if len([]rune(message)) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	others := lo.Filter(g.participants, func(id uuid.UUID, _ int) bool { return id != g.organizerID })
	if len(others) == 0 {
		return nil, ErrNoParticipants
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	pr := &PurchaseRequest{
		id:           id,
		organizerID:  g.organizerID,
		amount:       amount,
		deadline:     deadline,
		message:      message,
		status:       PurchaseAwaitingPayments,
		participants: lo.Map(others, func(id uuid.UUID, _ int) ParticipantPayment { return newParticipantPayment(id) }),
		createdAt:    now,
		updatedAt:    now,
	}
	g.purchaseRequest = pr
	g.updatedAt = now
	return pr, nil
}

// Apply runs one action against the purchase request. On error the aggregate
// is left untouched.
func (g *GroupBuy) Apply(action Action, now time.Time) (Transition, error) {
	if g.purchaseRequest == nil {
		return Transition{}, ErrNoPurchaseRequest
	}
	if action == nil {
		return Transition{}, ErrUnknownAction
	}

	from := g.purchaseRequest.status
	next := g.purchaseRequest.clone()
	if err := action.apply(next, now); err != nil {
		return Transition{}, err
	}
	next.updatedAt = now
	g.purchaseRequest = next
	g.updatedAt = now

	return Transition{
		Action:   action.Name(),
		ActorID:  action.Actor(),
		From:     from,
		To:       next.status,
		Paid:     next.PaidCount(),
		Approved: next.ApprovedCount(),
		Rejected: next.RejectedCount(),
		Total:    len(next.participants),
	}, nil
}

// CanBeReviewedBy gates the review ledger: only completed group buys, and
// only between members.
func (g *GroupBuy) CanBeReviewedBy(reviewerID, reviewedUserID uuid.UUID) error {
	if g.Status() != StatusCompleted {
		return ErrNotCompleted
	}
	if reviewerID == reviewedUserID {
		return ErrSelfReview
	}
	if !g.IsMember(reviewerID) || !g.IsMember(reviewedUserID) {
		return ErrNotMember
	}
	return nil
}

// MarkReviewed records the reviewer on the purchase request.
func (g *GroupBuy) MarkReviewed(reviewerID uuid.UUID, now time.Time) error {
	if g.purchaseRequest == nil {
		return ErrNoPurchaseRequest
	}
	if err := g.purchaseRequest.MarkReviewed(reviewerID); err != nil {
		return err
	}
	g.updatedAt = now
	return nil
}
