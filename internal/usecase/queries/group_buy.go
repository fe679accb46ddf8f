package queries

import (
	"context"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var ErrGroupBuyNotFound = groupbuy.ErrGroupBuyNotFound

type ParticipantPaymentView struct {
	UserID       uuid.UUID  `json:"userId"`
	Paid         bool       `json:"paid"`
	PaymentProof *string    `json:"paymentProof,omitempty"`
	PaidAt       *time.Time `json:"paidAt,omitempty"`
	Status       string     `json:"status"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`
}

type PurchaseRequestView struct {
	ID                       uuid.UUID                `json:"id"`
	GroupBuyID               uuid.UUID                `json:"groupBuyId"`
	OrganizerID              uuid.UUID                `json:"organizerId"`
	Amount                   decimal.Decimal          `json:"amount"`
	Currency                 string                   `json:"currency"`
	Deadline                 time.Time                `json:"deadline"`
	Message                  string                   `json:"message"`
	Status                   string                   `json:"status"`
	OrganizerProof           *string                  `json:"organizerProof,omitempty"`
	OrganizerProofUploadedAt *time.Time               `json:"organizerProofUploadedAt,omitempty"`
	Participants             []ParticipantPaymentView `json:"participants"`
	ReviewedBy               []uuid.UUID              `json:"reviewedBy"`
	PaidCount                int                      `json:"paidCount"`
	ApprovedCount            int                      `json:"approvedCount"`
	IsOverdue                bool                     `json:"isOverdue"`
	CreatedAt                time.Time                `json:"createdAt"`
	UpdatedAt                time.Time                `json:"updatedAt"`
}

type GroupBuyView struct {
	ID                  uuid.UUID            `json:"id"`
	ListingID           uuid.UUID            `json:"listingId"`
	ListingName         string               `json:"listingName"`
	OrganizerID         uuid.UUID            `json:"organizerId"`
	MaxParticipants     int                  `json:"maxParticipants"`
	CurrentParticipants int                  `json:"currentParticipants"`
	Participants        []uuid.UUID          `json:"participants"`
	Status              string               `json:"status"`
	PurchaseRequest     *PurchaseRequestView `json:"purchaseRequest,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// NewPurchaseRequestView returns nil when the group buy has no request.
func NewPurchaseRequestView(groupBuyID uuid.UUID, pr *groupbuy.PurchaseRequest, now time.Time) *PurchaseRequestView {
	if pr == nil {
		return nil
	}
	return &PurchaseRequestView{
		ID:                       pr.ID(),
		GroupBuyID:               groupBuyID,
		OrganizerID:              pr.OrganizerID(),
		Amount:                   pr.Amount().Amount(),
		Currency:                 pr.Amount().CurrencyCode(),
		Deadline:                 pr.Deadline(),
		Message:                  pr.Message(),
		Status:                   pr.Status().String(),
		OrganizerProof:           pr.OrganizerProof(),
		OrganizerProofUploadedAt: pr.OrganizerProofUploadedAt(),
		Participants: lo.Map(pr.Participants(), func(p groupbuy.ParticipantPayment, _ int) ParticipantPaymentView {
			return ParticipantPaymentView{
				UserID:       p.UserID(),
				Paid:         p.Paid(),
				PaymentProof: p.PaymentProof(),
				PaidAt:       p.PaidAt(),
				Status:       p.Status().String(),
				ApprovedAt:   p.ApprovedAt(),
			}
		}),
		ReviewedBy:    pr.ReviewedBy(),
		PaidCount:     pr.PaidCount(),
		ApprovedCount: pr.ApprovedCount(),
		IsOverdue:     pr.IsOverdue(now),
		CreatedAt:     pr.CreatedAt(),
		UpdatedAt:     pr.UpdatedAt(),
	}
}

func NewGroupBuyView(g *groupbuy.GroupBuy, listingName string, now time.Time) *GroupBuyView {
	return &GroupBuyView{
		ID:                  g.ID(),
		ListingID:           g.ListingID(),
		ListingName:         listingName,
		OrganizerID:         g.OrganizerID(),
		MaxParticipants:     g.MaxParticipants(),
		CurrentParticipants: g.CurrentParticipants(),
		Participants:        g.Participants(),
		Status:              g.Status().String(),
		PurchaseRequest:     NewPurchaseRequestView(g.ID(), g.PurchaseRequest(), now),
		CreatedAt:           g.CreatedAt(),
		UpdatedAt:           g.UpdatedAt(),
	}
}

type ChatMessageView struct {
	ID         uuid.UUID `json:"id"`
	GroupBuyID uuid.UUID `json:"groupBuyId"`
	SenderID   string    `json:"senderId"`
	Text       string    `json:"text"`
	Kind       string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
}

type GroupBuyReadStore interface {
	// FindByID returns the aggregate as stored together with its listing name.
	FindByID(ctx context.Context, id uuid.UUID) (*groupbuy.GroupBuy, string, error)
}

type ChatReadStore interface {
	ListByGroupBuy(ctx context.Context, groupBuyID uuid.UUID, limit int32) ([]*ChatMessageView, error)
}

type GroupBuyQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*GroupBuyView, error)
	ListChatMessages(ctx context.Context, groupBuyID, actorID uuid.UUID, limit int) ([]*ChatMessageView, error)
}

type groupBuyQueriesImpl struct {
	groupBuys GroupBuyReadStore
	chat      ChatReadStore
	clock     clock.Clock
}

func NewGroupBuyQueries(groupBuys GroupBuyReadStore, chat ChatReadStore, clk clock.Clock) GroupBuyQueries {
	return &groupBuyQueriesImpl{groupBuys: groupBuys, chat: chat, clock: clk}
}

func (q *groupBuyQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*GroupBuyView, error) {
	g, listingName, err := q.groupBuys.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGroupBuyNotFound
		}
		return nil, err
	}
	return NewGroupBuyView(g, listingName, q.clock.Now()), nil
}

// ListChatMessages is limited to members, newest first.
func (q *groupBuyQueriesImpl) ListChatMessages(ctx context.Context, groupBuyID, actorID uuid.UUID, limit int) ([]*ChatMessageView, error) {
	g, _, err := q.groupBuys.FindByID(ctx, groupBuyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGroupBuyNotFound
		}
		return nil, err
	}
	if !g.IsMember(actorID) {
		return nil, groupbuy.ErrNotMember
	}
	return q.chat.ListByGroupBuy(ctx, groupBuyID, int32(ValidateLimit(limit))) // #nosec G115 -- bounded by MaxListLimit
}
