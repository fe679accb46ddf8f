package commands

import (
	"context"

	"groupbuy-service/internal/domain/groupbuy"
	domreview "groupbuy-service/internal/domain/review"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/metrics"
	"groupbuy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitReviewInput struct {
	ReviewedUserID uuid.UUID
	GroupBuyID     uuid.UUID
	ReviewerID     uuid.UUID
	Rating         int
	Comment        string
}

type SubmitReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	Submit(ctx context.Context, in SubmitReviewInput) (*SubmitReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

func (uc *reviewUseCaseImpl) Submit(ctx context.Context, in SubmitReviewInput) (*SubmitReviewResult, error) {
	// rating and comment are checked before anything touches storage
	if _, err := domreview.NewRating(in.Rating); err != nil {
		uc.metrics.ObserveReview(metrics.ResultRejected)
		return nil, err
	}
	if _, err := domreview.NewComment(in.Comment); err != nil {
		uc.metrics.ObserveReview(metrics.ResultRejected)
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		stats, derr := tx.RatingStats().LoadForUpdate(ctx, tx.DB(), in.ReviewedUserID)
		if derr != nil {
			return derr
		}
		g, derr := tx.GroupBuys().LoadForUpdate(ctx, tx.DB(), in.GroupBuyID)
		if derr != nil {
			return derr
		}
		if derr = g.CanBeReviewedBy(in.ReviewerID, in.ReviewedUserID); derr != nil {
			return derr
		}
		pr := g.PurchaseRequest()
		if pr == nil {
			return groupbuy.ErrNoPurchaseRequest
		}
		if pr.HasReviewed(in.ReviewerID) {
			return groupbuy.ErrAlreadyReviewed
		}
		if derr = tx.GroupBuys().RecordReviewer(ctx, tx.DB(), pr.ID(), in.ReviewerID, now); derr != nil {
			return derr
		}

		rev, derr := domreview.NewReview(id, in.ReviewedUserID, in.GroupBuyID, in.ReviewerID, in.Rating, in.Comment, now)
		if derr != nil {
			return derr
		}
		if _, derr = tx.Reviews().Create(ctx, tx.DB(), rev); derr != nil {
			return derr
		}

		stats.ApplyReview(rev.Rating(), now)
		return tx.RatingStats().Save(ctx, tx.DB(), stats)
	})
	uc.metrics.ObserveReview(metrics.ResultOf(err, isRejection))
	if err != nil {
		return nil, err
	}
	return &SubmitReviewResult{ReviewID: id}, nil
}
