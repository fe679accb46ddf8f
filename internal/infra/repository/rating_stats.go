package repository

import (
	"context"

	"groupbuy-service/internal/domain/review"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/infra/repository/converter"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	CreateRatingStats(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRatingStatsParams) error
	GetRatingStatsForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.UserRatingStats, error)
	UpdateRatingStats(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRatingStatsParams) error
}

type RatingStatsRepository struct {
	q RatingStatsQueries
}

func NewRatingStatsRepository(q RatingStatsQueries) *RatingStatsRepository {
	return &RatingStatsRepository{q: q}
}

func (r *RatingStatsRepository) Create(ctx context.Context, tx sqlc.DBTX, stats *review.RatingStats) error {
	err := r.q.CreateRatingStats(ctx, tx, sqlc.CreateRatingStatsParams{
		UserID:    stats.UserID(),
		UpdatedAt: pgconv.TimeToPgtype(stats.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create rating stats", err)
	}
	return nil
}

func (r *RatingStatsRepository) LoadForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*review.RatingStats, error) {
	row, err := r.q.GetRatingStatsForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Wrapf(review.ErrStatsNotFound, "user %s", userID)
		}
		return nil, infra.WrapRepoErr("failed to lock rating stats", err)
	}
	return converter.RatingStatsToDomain(row), nil
}

func (r *RatingStatsRepository) Save(ctx context.Context, tx sqlc.DBTX, stats *review.RatingStats) error {
	if err := r.q.UpdateRatingStats(ctx, tx, converter.RatingStatsToUpdateParams(stats)); err != nil {
		return infra.WrapRepoErr("failed to update rating stats", err)
	}
	return nil
}
