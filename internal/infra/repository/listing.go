package repository

import (
	"context"

	"groupbuy-service/internal/domain/listing"
	"groupbuy-service/internal/infra"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"
	"groupbuy-service/internal/pkg/ptr"
)

type ListingQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) error
}

type ListingRepository struct {
	queries ListingQueries
}

func NewListingRepository(queries ListingQueries) *ListingRepository {
	return &ListingRepository{queries: queries}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	d := l.Draft()
	err := r.queries.CreateListing(ctx, tx, sqlc.CreateListingParams{
		ID:                  l.ID(),
		Name:                l.Name(),
		Category:            d.Category,
		Description:         d.Description,
		DiscountDescription: d.DiscountDescription,
		PricePerUnit:        d.PricePerUnit,
		DiscountedPrice:     d.DiscountedPrice,
		ImageUrl:            pgconv.StringPtrToPgtype(ptr.NonEmpty(d.ImageURL)),
		SourceUrl:           pgconv.StringPtrToPgtype(ptr.NonEmpty(d.SourceURL)),
		MinPeople:           pgconv.IntToInt32(d.MinPeople),
		MaxPeople:           pgconv.IntToInt32(d.MaxPeople),
		NumberOfPeople:      pgconv.IntToInt32(l.NumberOfPeople()),
		CreatedBy:           l.CreatedBy(),
		CreatedAt:           pgconv.TimeToPgtype(l.CreatedAt()),
	})
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("listing creator does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}
