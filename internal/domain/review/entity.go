package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one reviewer's rating of another member of a completed group buy.
type Review struct {
	id             uuid.UUID
	reviewedUserID uuid.UUID
	groupBuyID     uuid.UUID
	reviewerID     uuid.UUID
	rating         Rating
	comment        Comment
	createdAt      time.Time
}

func NewReview(id, reviewedUserID, groupBuyID, reviewerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:             id,
		reviewedUserID: reviewedUserID,
		groupBuyID:     groupBuyID,
		reviewerID:     reviewerID,
		rating:         rating,
		comment:        comment,
		createdAt:      now,
	}, nil
}

func ReconstructReview(id, reviewedUserID, groupBuyID, reviewerID uuid.UUID, rating int, comment string, createdAt time.Time) *Review {
	return &Review{
		id:             id,
		reviewedUserID: reviewedUserID,
		groupBuyID:     groupBuyID,
		reviewerID:     reviewerID,
		rating:         Rating{value: rating},
		comment:        Comment{text: comment},
		createdAt:      createdAt,
	}
}

func (r *Review) ID() uuid.UUID             { return r.id }
func (r *Review) ReviewedUserID() uuid.UUID { return r.reviewedUserID }
func (r *Review) GroupBuyID() uuid.UUID     { return r.groupBuyID }
func (r *Review) ReviewerID() uuid.UUID     { return r.reviewerID }
func (r *Review) Rating() Rating            { return r.rating }
func (r *Review) Comment() Comment          { return r.comment }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }
