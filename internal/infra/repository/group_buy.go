package repository

import (
	"context"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/infra/repository/converter"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/pkg/pgconv"
	"groupbuy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type GroupBuyQueries interface {
	CreateGroupBuy(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGroupBuyParams) error
	GetGroupBuyForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GroupBuys, error)
	UpdateGroupBuy(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGroupBuyParams) (int64, error)
	ListGroupBuyParticipants(ctx context.Context, db sqlc.DBTX, groupBuyID uuid.UUID) ([]sqlc.GroupBuyParticipants, error)
	AddGroupBuyParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.AddGroupBuyParticipantParams) error
	GetPurchaseRequestByGroupBuy(ctx context.Context, db sqlc.DBTX, groupBuyID uuid.UUID) (sqlc.PurchaseRequests, error)
	UpsertPurchaseRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPurchaseRequestParams) error
	ListPurchaseRequestParticipants(ctx context.Context, db sqlc.DBTX, purchaseRequestID uuid.UUID) ([]sqlc.PurchaseRequestParticipants, error)
	UpsertPurchaseRequestParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPurchaseRequestParticipantParams) error
	ListPurchaseRequestReviewers(ctx context.Context, db sqlc.DBTX, purchaseRequestID uuid.UUID) ([]uuid.UUID, error)
	InsertPurchaseRequestReviewer(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPurchaseRequestReviewerParams) (int64, error)
}

type GroupBuyRepository struct {
	queries GroupBuyQueries
}

func NewGroupBuyRepository(queries GroupBuyQueries) *GroupBuyRepository {
	return &GroupBuyRepository{queries: queries}
}

func (r *GroupBuyRepository) Create(ctx context.Context, tx sqlc.DBTX, g *groupbuy.GroupBuy) error {
	if err := r.queries.CreateGroupBuy(ctx, tx, converter.GroupBuyToCreateParams(g)); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("group buy references unknown listing or organizer", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create group buy", err)
	}
	return r.saveMembers(ctx, tx, g)
}

func (r *GroupBuyRepository) LoadForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*groupbuy.GroupBuy, error) {
	row, err := r.queries.GetGroupBuyForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Wrapf(groupbuy.ErrGroupBuyNotFound, "group buy %s", id)
		}
		return nil, infra.WrapRepoErr("failed to lock group buy", err)
	}
	return LoadGroupBuy(ctx, r.queries, tx, row)
}

// Save writes the aggregate back. The group buy row is guarded by its
// version even though callers already hold the row lock.
func (r *GroupBuyRepository) Save(ctx context.Context, tx sqlc.DBTX, g *groupbuy.GroupBuy) error {
	affected, err := r.queries.UpdateGroupBuy(ctx, tx, sqlc.UpdateGroupBuyParams{
		Status:    g.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(g.UpdatedAt()),
		ID:        g.ID(),
		Version:   pgconv.IntToInt32(g.Version()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update group buy", err)
	}
	if affected == 0 {
		return errs.Wrapf(shared.ErrConcurrentModification, "group buy %s at version %d", g.ID(), g.Version())
	}

	if err := r.saveMembers(ctx, tx, g); err != nil {
		return err
	}

	pr := g.PurchaseRequest()
	if pr == nil {
		return nil
	}
	if err := r.queries.UpsertPurchaseRequest(ctx, tx, converter.PurchaseRequestToUpsertParams(g.ID(), pr)); err != nil {
		return infra.WrapRepoErr("failed to save purchase request", err)
	}
	for _, p := range converter.PaymentParams(pr) {
		if err := r.queries.UpsertPurchaseRequestParticipant(ctx, tx, p); err != nil {
			return infra.WrapRepoErr("failed to save purchase request participant", err)
		}
	}
	return nil
}

func (r *GroupBuyRepository) RecordReviewer(ctx context.Context, tx sqlc.DBTX, purchaseRequestID, reviewerID uuid.UUID, at time.Time) error {
	affected, err := r.queries.InsertPurchaseRequestReviewer(ctx, tx, sqlc.InsertPurchaseRequestReviewerParams{
		PurchaseRequestID: purchaseRequestID,
		ReviewerID:        reviewerID,
		ReviewedAt:        pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record reviewer", err)
	}
	if affected == 0 {
		return groupbuy.ErrAlreadyReviewed
	}
	return nil
}

// members are append-only, existing rows are skipped by the insert
func (r *GroupBuyRepository) saveMembers(ctx context.Context, tx sqlc.DBTX, g *groupbuy.GroupBuy) error {
	for _, m := range converter.MemberParams(g) {
		if err := r.queries.AddGroupBuyParticipant(ctx, tx, m); err != nil {
			return infra.WrapRepoErr("failed to add group buy participant", err)
		}
	}
	return nil
}

// LoadGroupBuy assembles the aggregate around an already fetched group buy row.
func LoadGroupBuy(ctx context.Context, q GroupBuyQueries, db sqlc.DBTX, row sqlc.GroupBuys) (*groupbuy.GroupBuy, error) {
	rows := converter.GroupBuyRows{GroupBuy: row}

	members, err := q.ListGroupBuyParticipants(ctx, db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list group buy participants", err)
	}
	rows.Members = members

	pr, err := q.GetPurchaseRequestByGroupBuy(ctx, db, row.ID)
	switch {
	case pgconv.IsNoRows(err):
		return converter.GroupBuyToDomain(rows), nil
	case err != nil:
		return nil, infra.WrapRepoErr("failed to get purchase request", err)
	}
	rows.PurchaseRequest = &pr

	if rows.Payments, err = q.ListPurchaseRequestParticipants(ctx, db, pr.ID); err != nil {
		return nil, infra.WrapRepoErr("failed to list purchase request participants", err)
	}
	if rows.Reviewers, err = q.ListPurchaseRequestReviewers(ctx, db, pr.ID); err != nil {
		return nil, infra.WrapRepoErr("failed to list purchase request reviewers", err)
	}
	return converter.GroupBuyToDomain(rows), nil
}
