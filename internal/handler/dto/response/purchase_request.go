package response

import (
	"time"

	"groupbuy-service/internal/usecase/queries"
)

type PurchaseRequestResponse struct {
	Success         bool                         `json:"success"`
	PurchaseRequest *queries.PurchaseRequestView `json:"purchaseRequest"`
}

type UploadProofResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

type GroupBuyResponse struct {
	GroupBuy *queries.GroupBuyView `json:"groupBuy"`
}

type ChatMessagesResponse struct {
	Messages []*queries.ChatMessageView `json:"messages"`
}

type ListingDraftResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CreateListingResponse struct {
	Message    string `json:"message"`
	ListingID  string `json:"listingId"`
	GroupBuyID string `json:"groupBuyId"`
}
