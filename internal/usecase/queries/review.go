package queries

import (
	"context"
	"time"

	"groupbuy-service/internal/domain/review"
	"groupbuy-service/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewListItem struct {
	ID             uuid.UUID `json:"id"`
	ReviewedUserID uuid.UUID `json:"reviewedUserId"`
	GroupBuyID     uuid.UUID `json:"groupBuyId"`
	ReviewerID     uuid.UUID `json:"reviewerId"`
	ReviewerName   string    `json:"reviewerName"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
}

type RatingStatsView struct {
	UserID             uuid.UUID       `json:"userId"`
	TotalRating        int             `json:"totalRating"`
	ReviewCount        int             `json:"reviewCount"`
	ReviewRating       decimal.Decimal `json:"reviewRating"`
	CompletedGroupBuys int             `json:"completedGroupBuys"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type ReviewReadStore interface {
	FindByReviewedUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByReviewedUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	GetRatingStats(ctx context.Context, userID uuid.UUID) (*RatingStatsView, error)
}

type ReviewQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetRatingStats(ctx context.Context, userID uuid.UUID) (*RatingStatsView, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByReviewedUserFirstPage(ctx, userID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.FindByReviewedUserKeyset(ctx, userID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetRatingStats(ctx context.Context, userID uuid.UUID) (*RatingStatsView, error) {
	stats, err := q.repo.GetRatingStats(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrStatsNotFound
		}
		return nil, err
	}
	return stats, nil
}
