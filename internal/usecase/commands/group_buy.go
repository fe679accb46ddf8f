package commands

import (
	"context"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/metrics"
	"groupbuy-service/internal/usecase/queries"
	"groupbuy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type GroupBuyCommands interface {
	Join(ctx context.Context, groupBuyID, userID uuid.UUID) (*queries.GroupBuyView, error)
}

type groupBuyUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier notifier
}

func NewGroupBuyUseCase(uow shared.UnitOfWork, clk clock.Clock, chat ChatNotifier, m *metrics.Metrics) GroupBuyCommands {
	return &groupBuyUseCaseImpl{uow: uow, clock: clk, notifier: notifier{sink: chat, metrics: m}}
}

func (uc *groupBuyUseCaseImpl) Join(ctx context.Context, groupBuyID, userID uuid.UUID) (*queries.GroupBuyView, error) {
	var (
		g   *groupbuy.GroupBuy
		now time.Time
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now = uc.clock.Now()
		var derr error
		g, derr = tx.GroupBuys().LoadForUpdate(ctx, tx.DB(), groupBuyID)
		if derr != nil {
			return derr
		}
		if derr = g.Join(userID, now); derr != nil {
			return derr
		}
		return tx.GroupBuys().Save(ctx, tx.DB(), g)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.post(ctx, groupBuyID, ChatKindMembership, joinedText(g), now)
	// the listing name is only resolved on the read side
	return queries.NewGroupBuyView(g, "", now), nil
}
