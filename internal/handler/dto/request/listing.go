package request

import (
	"groupbuy-service/internal/domain/listing"
	"groupbuy-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateListingDraftRequest struct {
	Name                string          `json:"name" binding:"required"`
	Category            string          `json:"category"`
	Description         string          `json:"description"`
	DiscountDescription string          `json:"discountDescription"`
	PricePerUnit        decimal.Decimal `json:"pricePerUnit"`
	DiscountedPrice     decimal.Decimal `json:"discountedPrice"`
	ImageURL            string          `json:"imageUrl" binding:"omitempty,url"`
	SourceURL           string          `json:"sourceUrl" binding:"omitempty,url"`
	MinPeople           int             `json:"minPeople" binding:"required,min=2"`
	MaxPeople           int             `json:"maxPeople" binding:"required,gtefield=MinPeople"`
}

func (r CreateListingDraftRequest) ToDomain() listing.Draft {
	return listing.Draft{
		Name:                r.Name,
		Category:            r.Category,
		Description:         r.Description,
		DiscountDescription: r.DiscountDescription,
		PricePerUnit:        r.PricePerUnit,
		DiscountedPrice:     r.DiscountedPrice,
		ImageURL:            r.ImageURL,
		SourceURL:           r.SourceURL,
		MinPeople:           r.MinPeople,
		MaxPeople:           r.MaxPeople,
	}
}

// CreateListingRequest carries only what the user may edit. Prices come
// from the draft behind the token.
type CreateListingRequest struct {
	Token          string  `json:"token" binding:"required"`
	Name           *string `json:"name,omitempty"`
	NumberOfPeople int     `json:"numberOfPeople" binding:"required"`
}

func (r CreateListingRequest) ToInput(userID uuid.UUID) commands.CreateListingInput {
	return commands.CreateListingInput{
		Token:          r.Token,
		Name:           r.Name,
		NumberOfPeople: r.NumberOfPeople,
		CreatedBy:      userID,
	}
}
