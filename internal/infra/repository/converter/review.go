package converter

import (
	"groupbuy-service/internal/domain/review"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:             r.ID(),
		ReviewedUserID: r.ReviewedUserID(),
		GroupBuyID:     r.GroupBuyID(),
		ReviewerID:     r.ReviewerID(),
		Rating:         pgconv.IntToInt16(r.Rating().Value()),
		Comment:        r.Comment().String(),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RatingStatsToDomain(row sqlc.UserRatingStats) *review.RatingStats {
	return review.ReconstructRatingStats(
		row.UserID,
		int(row.TotalRating),
		int(row.ReviewCount),
		int(row.CompletedGroupBuys),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func RatingStatsToUpdateParams(s *review.RatingStats) sqlc.UpdateRatingStatsParams {
	return sqlc.UpdateRatingStatsParams{
		UserID:             s.UserID(),
		TotalRating:        pgconv.IntToInt32(s.TotalRating()),
		ReviewCount:        pgconv.IntToInt32(s.ReviewCount()),
		ReviewRating:       s.Average(),
		CompletedGroupBuys: pgconv.IntToInt32(s.CompletedGroupBuys()),
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}
