package request

import (
	"time"

	"groupbuy-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePurchaseRequestRequest struct {
	GroupBuyID  uuid.UUID       `json:"groupBuyId" binding:"required"`
	OrganizerID uuid.UUID       `json:"organizerId" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty" binding:"omitempty,len=3"`
	Deadline    time.Time       `json:"deadline" binding:"required"`
	Message     string          `json:"message" binding:"max=1000"`
}

func (r CreatePurchaseRequestRequest) ToInput() commands.CreatePurchaseRequestInput {
	return commands.CreatePurchaseRequestInput{
		GroupBuyID: r.GroupBuyID,
		ActorID:    r.OrganizerID,
		Amount:     r.Amount,
		Currency:   r.Currency,
		Deadline:   r.Deadline,
		Message:    r.Message,
	}
}

type PurchaseRequestActionRequest struct {
	GroupBuyID      uuid.UUID `json:"groupBuyId" binding:"required"`
	UserID          uuid.UUID `json:"userId" binding:"required"`
	Action          string    `json:"action" binding:"required"`
	ProofOfPurchase string    `json:"proofOfPurchase,omitempty"`
	PaymentProof    *string   `json:"paymentProof,omitempty"`
}

func (r PurchaseRequestActionRequest) ToInput() commands.ApplyActionInput {
	return commands.ApplyActionInput{
		GroupBuyID:      r.GroupBuyID,
		ActorID:         r.UserID,
		Action:          r.Action,
		ProofOfPurchase: r.ProofOfPurchase,
		PaymentProof:    r.PaymentProof,
	}
}
