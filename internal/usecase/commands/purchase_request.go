package commands

import (
	"context"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/pkg/metrics"
	"groupbuy-service/internal/usecase/queries"
	"groupbuy-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePurchaseRequestInput struct {
	GroupBuyID uuid.UUID
	ActorID    uuid.UUID
	Amount     decimal.Decimal
	// Currency falls back to the configured default when empty.
	Currency string
	Deadline time.Time
	Message  string
}

type ApplyActionInput struct {
	GroupBuyID      uuid.UUID
	ActorID         uuid.UUID
	Action          string
	ProofOfPurchase string
	PaymentProof    *string
}

type PurchaseRequestCommands interface {
	Create(ctx context.Context, in CreatePurchaseRequestInput) (*queries.PurchaseRequestView, error)
	Apply(ctx context.Context, in ApplyActionInput) (*queries.PurchaseRequestView, error)
}

type purchaseRequestCommandsImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	notifier        notifier
	metrics         *metrics.Metrics
	defaultCurrency string
}

func NewPurchaseRequestCommands(uow shared.UnitOfWork, clk clock.Clock, chat ChatNotifier, m *metrics.Metrics, defaultCurrency string) PurchaseRequestCommands {
	return &purchaseRequestCommandsImpl{
		uow:             uow,
		clock:           clk,
		notifier:        notifier{sink: chat, metrics: m},
		metrics:         m,
		defaultCurrency: defaultCurrency,
	}
}

func (uc *purchaseRequestCommandsImpl) Create(ctx context.Context, in CreatePurchaseRequestInput) (*queries.PurchaseRequestView, error) {
	code := in.Currency
	if code == "" {
		code = uc.defaultCurrency
	}

	var (
		pr  *groupbuy.PurchaseRequest
		now time.Time
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now = uc.clock.Now()
		g, derr := tx.GroupBuys().LoadForUpdate(ctx, tx.DB(), in.GroupBuyID)
		if derr != nil {
			return derr
		}
		if derr = g.CanStartPurchaseRequest(in.ActorID); derr != nil {
			return derr
		}
		amount, derr := groupbuy.NewMoney(in.Amount, code)
		if derr != nil {
			return derr
		}
		pr, derr = g.StartPurchaseRequest(in.ActorID, amount, in.Deadline, in.Message, now)
		if derr != nil {
			return derr
		}
		return tx.GroupBuys().Save(ctx, tx.DB(), g)
	})
	uc.metrics.ObserveAction("create_purchase_request", metrics.ResultOf(err, isRejection))
	if err != nil {
		return nil, err
	}

	uc.notifier.post(ctx, in.GroupBuyID, ChatKindPurchaseRequest, purchaseRequestCreatedText(pr), now)
	return queries.NewPurchaseRequestView(in.GroupBuyID, pr, now), nil
}

func (uc *purchaseRequestCommandsImpl) Apply(ctx context.Context, in ApplyActionInput) (*queries.PurchaseRequestView, error) {
	action, err := groupbuy.ParseAction(in.Action, in.ActorID, in.ProofOfPurchase, in.PaymentProof)
	if err != nil {
		uc.metrics.ObserveAction("unknown", metrics.ResultRejected)
		return nil, err
	}

	var (
		g   *groupbuy.GroupBuy
		tr  groupbuy.Transition
		now time.Time
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now = uc.clock.Now()
		var derr error
		g, derr = tx.GroupBuys().LoadForUpdate(ctx, tx.DB(), in.GroupBuyID)
		if derr != nil {
			return derr
		}
		tr, derr = g.Apply(action, now)
		if derr != nil {
			return derr
		}
		if derr = tx.GroupBuys().Save(ctx, tx.DB(), g); derr != nil {
			return derr
		}
		if !tr.Completed() {
			return nil
		}

		stats, derr := tx.RatingStats().LoadForUpdate(ctx, tx.DB(), g.OrganizerID())
		if derr != nil {
			return derr
		}
		stats.RecordCompletedGroupBuy(now)
		return tx.RatingStats().Save(ctx, tx.DB(), stats)
	})
	uc.metrics.ObserveAction(action.Name().String(), metrics.ResultOf(err, isRejection))
	if err != nil {
		return nil, err
	}

	uc.notifier.post(ctx, in.GroupBuyID, ChatKindPurchaseUpdate, transitionText(tr), now)
	return queries.NewPurchaseRequestView(g.ID(), g.PurchaseRequest(), now), nil
}

// isRejection separates business rule violations from infrastructure failures.
func isRejection(err error) bool {
	return errs.ClassOf(err) != nil
}
