package commands

import (
	"context"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/domain/listing"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/pkg/metrics"
	"groupbuy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingInput struct {
	Token string
	// Name overrides the draft's product name when set.
	Name           *string
	NumberOfPeople int
	CreatedBy      uuid.UUID
}

type CreateListingResult struct {
	ListingID  uuid.UUID
	GroupBuyID uuid.UUID
}

type ListingCommands interface {
	MintDraft(ctx context.Context, draft listing.Draft) (string, time.Time, error)
	CreateListing(ctx context.Context, in CreateListingInput) (*CreateListingResult, error)
}

type listingUseCaseImpl struct {
	uow     shared.UnitOfWork
	tokens  DraftTokenStore
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewListingUseCase(uow shared.UnitOfWork, tokens DraftTokenStore, clk clock.Clock, m *metrics.Metrics) ListingCommands {
	return &listingUseCaseImpl{uow: uow, tokens: tokens, clock: clk, metrics: m}
}

func (uc *listingUseCaseImpl) MintDraft(ctx context.Context, draft listing.Draft) (string, time.Time, error) {
	if err := draft.Validate(); err != nil {
		uc.metrics.ObserveDraftToken("mint", metrics.ResultRejected)
		return "", time.Time{}, err
	}
	token, expiresAt, err := uc.tokens.Mint(ctx, draft)
	uc.metrics.ObserveDraftToken("mint", metrics.ResultOf(err, isRejection))
	if err != nil {
		return "", time.Time{}, errs.Wrap(err, "mint listing draft token")
	}
	return token, expiresAt, nil
}

// CreateListing redeems the token first. The token is spent even when the
// listing turns out to be invalid.
func (uc *listingUseCaseImpl) CreateListing(ctx context.Context, in CreateListingInput) (*CreateListingResult, error) {
	draft, err := uc.tokens.Redeem(ctx, in.Token)
	uc.metrics.ObserveDraftToken("redeem", metrics.ResultOf(err, isRejection))
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	l, err := listing.NewListing(draft, in.Name, in.NumberOfPeople, in.CreatedBy, now)
	if err != nil {
		return nil, err
	}
	g, err := groupbuy.NewGroupBuy(l.ID(), in.CreatedBy, l.NumberOfPeople(), now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Listings().Create(ctx, tx.DB(), l); derr != nil {
			return derr
		}
		return tx.GroupBuys().Create(ctx, tx.DB(), g)
	})
	if err != nil {
		return nil, err
	}
	return &CreateListingResult{ListingID: l.ID(), GroupBuyID: g.ID()}, nil
}
