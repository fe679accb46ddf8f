package review

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RatingStats is the per-user aggregate updated together with every review.
type RatingStats struct {
	userID             uuid.UUID
	totalRating        int
	reviewCount        int
	completedGroupBuys int
	updatedAt          time.Time
}

func NewRatingStats(userID uuid.UUID, now time.Time) *RatingStats {
	return &RatingStats{userID: userID, updatedAt: now}
}

func ReconstructRatingStats(userID uuid.UUID, totalRating, reviewCount, completedGroupBuys int, updatedAt time.Time) *RatingStats {
	return &RatingStats{
		userID:             userID,
		totalRating:        totalRating,
		reviewCount:        reviewCount,
		completedGroupBuys: completedGroupBuys,
		updatedAt:          updatedAt,
	}
}

func (s *RatingStats) UserID() uuid.UUID       { return s.userID }
func (s *RatingStats) TotalRating() int        { return s.totalRating }
func (s *RatingStats) ReviewCount() int        { return s.reviewCount }
func (s *RatingStats) CompletedGroupBuys() int { return s.completedGroupBuys }
func (s *RatingStats) UpdatedAt() time.Time    { return s.updatedAt }

// Average is total/count rounded to two places, zero without reviews.
func (s *RatingStats) Average() decimal.Decimal {
	return AverageOf(s.totalRating, s.reviewCount)
}

func (s *RatingStats) ApplyReview(r Rating, now time.Time) {
	s.totalRating += r.Value()
	s.reviewCount++
	s.updatedAt = now
}

func (s *RatingStats) RecordCompletedGroupBuy(now time.Time) {
	s.completedGroupBuys++
	s.updatedAt = now
}

func AverageOf(total, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(total)).
		DivRound(decimal.NewFromInt(int64(count)), 2)
}
