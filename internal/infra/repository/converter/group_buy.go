package converter

import (
	"groupbuy-service/internal/domain/groupbuy"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// GroupBuyRows is everything stored for one aggregate.
type GroupBuyRows struct {
	GroupBuy        sqlc.GroupBuys
	Members         []sqlc.GroupBuyParticipants
	PurchaseRequest *sqlc.PurchaseRequests
	Payments        []sqlc.PurchaseRequestParticipants
	Reviewers       []uuid.UUID
}

func GroupBuyToDomain(rows GroupBuyRows) *groupbuy.GroupBuy {
	row := rows.GroupBuy
	members := lo.Map(rows.Members, func(m sqlc.GroupBuyParticipants, _ int) uuid.UUID { return m.UserID })

	var pr *groupbuy.PurchaseRequest
	if rows.PurchaseRequest != nil {
		pr = PurchaseRequestToDomain(*rows.PurchaseRequest, rows.Payments, rows.Reviewers)
	}

	return groupbuy.Reconstruct(
		row.ID,
		row.ListingID,
		row.OrganizerID,
		int(row.MaxParticipants),
		members,
		pr,
		int(row.Version),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PurchaseRequestToDomain(row sqlc.PurchaseRequests, payments []sqlc.PurchaseRequestParticipants, reviewers []uuid.UUID) *groupbuy.PurchaseRequest {
	participants := lo.Map(payments, func(p sqlc.PurchaseRequestParticipants, _ int) groupbuy.ParticipantPayment {
		return groupbuy.ReconstructParticipantPayment(
			p.UserID,
			p.Paid,
			pgconv.StringPtrFromPgtype(p.PaymentProof),
			pgconv.TimePtrFromPgtype(p.PaidAt),
			groupbuy.ParticipantStatus(p.Status),
			pgconv.TimePtrFromPgtype(p.ApprovedAt),
		)
	})

	return groupbuy.ReconstructPurchaseRequest(
		row.ID,
		row.OrganizerID,
		groupbuy.ReconstructMoney(row.Amount, row.Currency),
		pgconv.TimeFromPgtype(row.Deadline),
		row.Message,
		groupbuy.PurchaseStatus(row.Status),
		pgconv.StringPtrFromPgtype(row.OrganizerProof),
		pgconv.TimePtrFromPgtype(row.OrganizerProofUploadedAt),
		participants,
		reviewers,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func GroupBuyToCreateParams(g *groupbuy.GroupBuy) sqlc.CreateGroupBuyParams {
	return sqlc.CreateGroupBuyParams{
		ID:              g.ID(),
		ListingID:       g.ListingID(),
		OrganizerID:     g.OrganizerID(),
		MaxParticipants: pgconv.IntToInt32(g.MaxParticipants()),
		Status:          g.Status().String(),
		Version:         pgconv.IntToInt32(g.Version()),
		CreatedAt:       pgconv.TimeToPgtype(g.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(g.UpdatedAt()),
	}
}

func MemberParams(g *groupbuy.GroupBuy) []sqlc.AddGroupBuyParticipantParams {
	return lo.Map(g.Participants(), func(id uuid.UUID, i int) sqlc.AddGroupBuyParticipantParams {
		return sqlc.AddGroupBuyParticipantParams{
			GroupBuyID: g.ID(),
			UserID:     id,
			Position:   pgconv.IntToInt32(i),
			JoinedAt:   pgconv.TimeToPgtype(g.UpdatedAt()),
		}
	})
}

func PurchaseRequestToUpsertParams(groupBuyID uuid.UUID, pr *groupbuy.PurchaseRequest) sqlc.UpsertPurchaseRequestParams {
	return sqlc.UpsertPurchaseRequestParams{
		ID:                       pr.ID(),
		GroupBuyID:               groupBuyID,
		OrganizerID:              pr.OrganizerID(),
		Amount:                   pr.Amount().Amount(),
		Currency:                 pr.Amount().CurrencyCode(),
		Deadline:                 pgconv.TimeToPgtype(pr.Deadline()),
		Message:                  pr.Message(),
		Status:                   pr.Status().String(),
		OrganizerProof:           pgconv.StringPtrToPgtype(pr.OrganizerProof()),
		OrganizerProofUploadedAt: pgconv.TimePtrToPgtype(pr.OrganizerProofUploadedAt()),
		CreatedAt:                pgconv.TimeToPgtype(pr.CreatedAt()),
		UpdatedAt:                pgconv.TimeToPgtype(pr.UpdatedAt()),
	}
}

func PaymentParams(pr *groupbuy.PurchaseRequest) []sqlc.UpsertPurchaseRequestParticipantParams {
	return lo.Map(pr.Participants(), func(p groupbuy.ParticipantPayment, i int) sqlc.UpsertPurchaseRequestParticipantParams {
		return sqlc.UpsertPurchaseRequestParticipantParams{
			PurchaseRequestID: pr.ID(),
			UserID:            p.UserID(),
			Position:          pgconv.IntToInt32(i),
			Paid:              p.Paid(),
			PaymentProof:      pgconv.StringPtrToPgtype(p.PaymentProof()),
			PaidAt:            pgconv.TimePtrToPgtype(p.PaidAt()),
			Status:            p.Status().String(),
			ApprovedAt:        pgconv.TimePtrToPgtype(p.ApprovedAt()),
		}
	})
}
