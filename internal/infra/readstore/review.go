package readstore

import (
	"context"
	"time"

	"groupbuy-service/internal/infra"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"
	"groupbuy-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewViewQueries interface {
	ListReviewsByReviewedUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByReviewedUserParams) ([]sqlc.ListReviewsByReviewedUserRow, error)
	ListReviewsByReviewedUserAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByReviewedUserAfterParams) ([]sqlc.ListReviewsByReviewedUserAfterRow, error)
	GetRatingStats(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.UserRatingStats, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByReviewedUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.ListReviewsByReviewedUser(ctx, r.db, sqlc.ListReviewsByReviewedUserParams{
		ReviewedUserID: userID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by reviewed user", err)
	}
	items := make([]*queries.ReviewListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.ReviewListItem{
			ID:             row.ID,
			ReviewedUserID: row.ReviewedUserID,
			GroupBuyID:     row.GroupBuyID,
			ReviewerID:     row.ReviewerID,
			ReviewerName:   row.ReviewerName,
			Rating:         int(row.Rating),
			Comment:        row.Comment,
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *ReviewReadStore) FindByReviewedUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.ListReviewsByReviewedUserAfter(ctx, r.db, sqlc.ListReviewsByReviewedUserAfterParams{
		ReviewedUserID: userID,
		LastCreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		LastID:         lastID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by reviewed user", err)
	}
	items := make([]*queries.ReviewListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.ReviewListItem{
			ID:             row.ID,
			ReviewedUserID: row.ReviewedUserID,
			GroupBuyID:     row.GroupBuyID,
			ReviewerID:     row.ReviewerID,
			ReviewerName:   row.ReviewerName,
			Rating:         int(row.Rating),
			Comment:        row.Comment,
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *ReviewReadStore) GetRatingStats(ctx context.Context, userID uuid.UUID) (*queries.RatingStatsView, error) {
	row, err := r.queries.GetRatingStats(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rating stats not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get rating stats", err)
	}
	return &queries.RatingStatsView{
		UserID:             row.UserID,
		TotalRating:        int(row.TotalRating),
		ReviewCount:        int(row.ReviewCount),
		ReviewRating:       row.ReviewRating,
		CompletedGroupBuys: int(row.CompletedGroupBuys),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
