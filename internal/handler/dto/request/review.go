package request

import (
	"groupbuy-service/internal/usecase/commands"

	"github.com/google/uuid"
)

// Rating range is checked by the review domain so the error carries its
// own message.
type CreateReviewRequest struct {
	ReviewedUserID uuid.UUID `json:"reviewedUserId" binding:"required"`
	GroupBuyID     uuid.UUID `json:"groupBuyId" binding:"required"`
	ReviewerID     uuid.UUID `json:"reviewerId" binding:"required"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
}

func (r CreateReviewRequest) ToInput() commands.SubmitReviewInput {
	return commands.SubmitReviewInput{
		ReviewedUserID: r.ReviewedUserID,
		GroupBuyID:     r.GroupBuyID,
		ReviewerID:     r.ReviewerID,
		Rating:         r.Rating,
		Comment:        r.Comment,
	}
}

type ListReviewsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	After string `form:"after"`
}
