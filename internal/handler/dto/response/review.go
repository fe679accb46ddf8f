package response

import (
	"time"

	"groupbuy-service/internal/usecase/queries"
)

type CreateReviewResponse struct {
	Message  string `json:"message"`
	ReviewID string `json:"reviewId"`
}

type ReviewListItemResponse struct {
	ID           string    `json:"id"`
	GroupBuyID   string    `json:"groupBuyId"`
	ReviewerID   string    `json:"reviewerId"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReviewListResponse struct {
	Reviews    []*ReviewListItemResponse `json:"reviews"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) (*ReviewListResponse, error) {
	res := &ReviewListResponse{Reviews: make([]*ReviewListItemResponse, 0, len(items))}
	for _, it := range items {
		var dst ReviewListItemResponse
		if err := copyView(&dst, it); err != nil {
			return nil, err
		}
		res.Reviews = append(res.Reviews, &dst)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
