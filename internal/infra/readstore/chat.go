package readstore

import (
	"context"

	"groupbuy-service/internal/infra"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"
	"groupbuy-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ChatReadQueries interface {
	ListChatMessages(ctx context.Context, db sqlc.DBTX, arg sqlc.ListChatMessagesParams) ([]sqlc.ChatMessages, error)
}

type ChatReadStore struct {
	queries ChatReadQueries
	db      sqlc.DBTX
}

func NewChatReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ChatReadStore {
	return &ChatReadStore{queries: queries, db: db}
}

func (r *ChatReadStore) ListByGroupBuy(ctx context.Context, groupBuyID uuid.UUID, limit int32) ([]*queries.ChatMessageView, error) {
	rows, err := r.queries.ListChatMessages(ctx, r.db, sqlc.ListChatMessagesParams{GroupBuyID: groupBuyID, RowLimit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list chat messages", err)
	}
	views := lo.Map(rows, func(m sqlc.ChatMessages, _ int) *queries.ChatMessageView {
		return &queries.ChatMessageView{
			ID:         m.ID,
			GroupBuyID: m.GroupBuyID,
			SenderID:   m.SenderID,
			Text:       m.Text,
			Kind:       m.Kind,
			CreatedAt:  pgconv.TimeFromPgtype(m.CreatedAt),
		}
	})
	return views, nil
}
