//go:build unit || e2e

package builder

import (
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	reqdto "groupbuy-service/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GroupBuyBuilder struct {
	ListingID       uuid.UUID
	OrganizerID     uuid.UUID
	Members         []uuid.UUID
	MaxParticipants int
	Amount          decimal.Decimal
	Currency        string
	Deadline        time.Time
	Message         string
	Now             time.Time
}

// NewGroupBuyBuilder defaults to an organizer plus three participants at USD 10.00.
func NewGroupBuyBuilder() *GroupBuyBuilder {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	return &GroupBuyBuilder{
		ListingID:       uuid.New(),
		OrganizerID:     uuid.New(),
		Members:         []uuid.UUID{uuid.New(), uuid.New(), uuid.New()},
		MaxParticipants: 4,
		Amount:          decimal.RequireFromString("10.00"),
		Currency:        "USD",
		Deadline:        now.Add(24 * time.Hour),
		Message:         "Pickup at the station",
		Now:             now,
	}
}

func (b *GroupBuyBuilder) With(mutate func(*GroupBuyBuilder)) *GroupBuyBuilder {
	mutate(b)
	return b
}

func (b *GroupBuyBuilder) WithMembers(n int) *GroupBuyBuilder {
	b.Members = make([]uuid.UUID, n)
	for i := range b.Members {
		b.Members[i] = uuid.New()
	}
	if b.MaxParticipants < n+1 {
		b.MaxParticipants = n + 1
	}
	return b
}

// BuildDomain returns a group buy with every member joined and no purchase request.
func (b *GroupBuyBuilder) BuildDomain() (*groupbuy.GroupBuy, error) {
	g, err := groupbuy.NewGroupBuy(b.ListingID, b.OrganizerID, b.MaxParticipants, b.Now)
	if err != nil {
		return nil, err
	}
	for _, id := range b.Members {
		if err := g.Join(id, b.Now); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (b *GroupBuyBuilder) Money() (groupbuy.Money, error) {
	return groupbuy.NewMoney(b.Amount, b.Currency)
}

// BuildWithPurchaseRequest returns a group buy in awaiting_payments.
func (b *GroupBuyBuilder) BuildWithPurchaseRequest() (*groupbuy.GroupBuy, error) {
	g, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	amount, err := b.Money()
	if err != nil {
		return nil, err
	}
	if _, err := g.StartPurchaseRequest(b.OrganizerID, amount, b.Deadline, b.Message, b.Now); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildReadyForPurchase returns a group buy where every participant has paid.
func (b *GroupBuyBuilder) BuildReadyForPurchase() (*groupbuy.GroupBuy, error) {
	g, err := b.BuildWithPurchaseRequest()
	if err != nil {
		return nil, err
	}
	for _, id := range b.Members {
		if _, err := g.Apply(groupbuy.SubmitPayment{UserID: id}, b.Now); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildAwaitingApproval returns a group buy whose organizer has uploaded proof.
func (b *GroupBuyBuilder) BuildAwaitingApproval() (*groupbuy.GroupBuy, error) {
	g, err := b.BuildReadyForPurchase()
	if err != nil {
		return nil, err
	}
	if _, err := g.Apply(groupbuy.UploadOrganizerProof{OrganizerID: b.OrganizerID, Proof: "/uploads/payments/receipt.pdf"}, b.Now); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildCompleted returns a group buy where every participant approved.
func (b *GroupBuyBuilder) BuildCompleted() (*groupbuy.GroupBuy, error) {
	g, err := b.BuildAwaitingApproval()
	if err != nil {
		return nil, err
	}
	for _, id := range b.Members {
		if _, err := g.Apply(groupbuy.ApprovePurchase{UserID: id}, b.Now); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (b *GroupBuyBuilder) BuildCreateRequestDTO(groupBuyID uuid.UUID) reqdto.CreatePurchaseRequestRequest {
	return reqdto.CreatePurchaseRequestRequest{
		GroupBuyID:  groupBuyID,
		OrganizerID: b.OrganizerID,
		Amount:      b.Amount,
		Currency:    b.Currency,
		Deadline:    b.Deadline,
		Message:     b.Message,
	}
}

func (b *GroupBuyBuilder) BuildActionRequestDTO(groupBuyID, userID uuid.UUID, action groupbuy.ActionName) reqdto.PurchaseRequestActionRequest {
	return reqdto.PurchaseRequestActionRequest{
		GroupBuyID: groupBuyID,
		UserID:     userID,
		Action:     string(action),
	}
}
