package chat

import (
	"context"

	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/infra/messaging"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"
	"groupbuy-service/internal/usecase/commands"

	"github.com/google/uuid"
)

const EventChatMessagePosted = "chat.message_posted"

type ChatWriteQueries interface {
	CreateChatMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateChatMessageParams) error
}

type EventPublisher interface {
	Publish(key string, env messaging.Envelope) error
}

type MessagePayload struct {
	MessageID  uuid.UUID `json:"message_id"`
	GroupBuyID uuid.UUID `json:"group_buy_id"`
	SenderID   string    `json:"sender_id"`
	Kind       string    `json:"type"`
	Text       string    `json:"text"`
}

// Sink appends system messages to a group buy's chat. It runs on the pool,
// outside any business transaction.
type Sink struct {
	queries   ChatWriteQueries
	db        sqlc.DBTX
	publisher EventPublisher
	producer  string
}

// NewSink accepts a nil publisher, which disables event publishing.
func NewSink(queries *sqlc.Queries, db sqlc.DBTX, publisher EventPublisher, producer string) *Sink {
	return &Sink{queries: queries, db: db, publisher: publisher, producer: producer}
}

func (s *Sink) Post(ctx context.Context, msg commands.ChatMessage) error {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	err = s.queries.CreateChatMessage(ctx, s.db, sqlc.CreateChatMessageParams{
		ID:         id,
		GroupBuyID: msg.GroupBuyID,
		SenderID:   commands.SystemSenderID,
		Text:       msg.Text,
		Kind:       msg.Kind,
		CreatedAt:  pgconv.TimeToPgtype(msg.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert chat message", err)
	}

	if s.publisher == nil {
		return nil
	}
	env, err := messaging.NewEnvelope(s.producer, EventChatMessagePosted, msg.GroupBuyID.String(), MessagePayload{
		MessageID:  id,
		GroupBuyID: msg.GroupBuyID,
		SenderID:   commands.SystemSenderID,
		Kind:       msg.Kind,
		Text:       msg.Text,
	}, msg.CreatedAt)
	if err != nil {
		return err
	}
	return s.publisher.Publish(msg.GroupBuyID.String(), env)
}
