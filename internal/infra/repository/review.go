package repository

import (
	"context"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/domain/review"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/infra/repository/converter"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	row, err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev))
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			// reviews(group_buy_id, reviewer_id) backs up the reviewer ledger
			return uuid.Nil, errs.Wrap(groupbuy.ErrAlreadyReviewed, "reviews unique constraint")
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return row.ID, nil
}
