package readstore

import (
	"context"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/infra/repository"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GroupBuyViewQueries interface {
	repository.GroupBuyQueries
	GetGroupBuyWithListing(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetGroupBuyWithListingRow, error)
	GetGroupBuyOrganizer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
}

// Snapshotter runs fn inside a read-only transaction whose statements all
// see the same snapshot.
type Snapshotter interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type GroupBuyReadStore struct {
	queries   GroupBuyViewQueries
	db        sqlc.DBTX
	snapshots Snapshotter
}

func NewGroupBuyReadStore(queries *sqlc.Queries, db sqlc.DBTX, snapshots Snapshotter) *GroupBuyReadStore {
	return &GroupBuyReadStore{
		queries:   queries,
		db:        db,
		snapshots: snapshots,
	}
}

// FindByID assembles the aggregate from several tables inside one snapshot,
// so a purchase request is never paired with participant rows from a later
// commit.
func (r *GroupBuyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*groupbuy.GroupBuy, string, error) {
	var (
		g           *groupbuy.GroupBuy
		listingName string
	)
	err := r.snapshots.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		g, listingName, err = r.load(ctx, db, id)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return g, listingName, nil
}

func (r *GroupBuyReadStore) load(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*groupbuy.GroupBuy, string, error) {
	row, err := r.queries.GetGroupBuyWithListing(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("group buy not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get group buy", err)
	}

	g, err := repository.LoadGroupBuy(ctx, r.queries, db, sqlc.GroupBuys{
		ID:              row.ID,
		ListingID:       row.ListingID,
		OrganizerID:     row.OrganizerID,
		MaxParticipants: row.MaxParticipants,
		Status:          row.Status,
		Version:         row.Version,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	})
	if err != nil {
		return nil, "", err
	}
	return g, row.ListingName, nil
}

func (r *GroupBuyReadStore) FindOrganizer(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	organizerID, err := r.queries.GetGroupBuyOrganizer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("group buy not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to get group buy organizer", err)
	}
	return organizerID, nil
}
