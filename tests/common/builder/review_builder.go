//go:build unit || e2e

package builder

import (
	"time"

	domreview "groupbuy-service/internal/domain/review"
	reqdto "groupbuy-service/internal/handler/dto/request"
	"groupbuy-service/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewBuilder struct {
	ReviewedUserID uuid.UUID
	GroupBuyID     uuid.UUID
	ReviewerID     uuid.UUID
	ReviewerName   string
	Rating         int
	Comment        string
	CreatedAt      time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ReviewedUserID: uuid.New(),
		GroupBuyID:     uuid.New(),
		ReviewerID:     uuid.New(),
		ReviewerName:   gofakeit.FirstName(),
		Rating:         5,
		Comment:        "Smooth pickup, would join again",
		CreatedAt:      time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.ReviewedUserID, r.GroupBuyID, r.ReviewerID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReviewedUserID: r.ReviewedUserID,
		GroupBuyID:     r.GroupBuyID,
		ReviewerID:     r.ReviewerID,
		Rating:         r.Rating,
		Comment:        r.Comment,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:             uuid.New(),
		ReviewedUserID: r.ReviewedUserID,
		GroupBuyID:     r.GroupBuyID,
		ReviewerID:     r.ReviewerID,
		ReviewerName:   r.ReviewerName,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildRatingStatsView() *queries.RatingStatsView {
	return &queries.RatingStatsView{
		UserID:             r.ReviewedUserID,
		TotalRating:        21,
		ReviewCount:        5,
		ReviewRating:       decimal.RequireFromString("4.2"),
		CompletedGroupBuys: 2,
		UpdatedAt:          r.CreatedAt,
	}
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}
