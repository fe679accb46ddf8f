package shared

import (
	"context"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/domain/listing"
	"groupbuy-service/internal/domain/review"
	"groupbuy-service/internal/domain/user"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction, every statement sees the same snapshot
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	GroupBuys() GroupBuyRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Listings() ListingRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	GroupBuyOrganizer(ctx context.Context, groupBuyID uuid.UUID) (uuid.UUID, error)
	UserCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

// GroupBuyRepository persists the whole aggregate: group buy row, members,
// purchase request and its participant rows.
type GroupBuyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, g *groupbuy.GroupBuy) error
	// LoadForUpdate locks the group buy row until the transaction ends.
	LoadForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*groupbuy.GroupBuy, error)
	// Save fails with ErrConcurrentModification when the stored version moved on.
	Save(ctx context.Context, tx sqlc.DBTX, g *groupbuy.GroupBuy) error
	// RecordReviewer fails with groupbuy.ErrAlreadyReviewed when the pair exists.
	RecordReviewer(ctx context.Context, tx sqlc.DBTX, purchaseRequestID, reviewerID uuid.UUID, at time.Time) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
}

type RatingStatsRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, stats *review.RatingStats) error
	LoadForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*review.RatingStats, error)
	Save(ctx context.Context, tx sqlc.DBTX, stats *review.RatingStats) error
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
}
