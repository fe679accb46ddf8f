package commands

import (
	"context"
	"io"
	"time"

	"groupbuy-service/internal/domain/listing"

	"github.com/google/uuid"
)

const (
	ChatKindPurchaseRequest = "purchase_request"
	ChatKindPurchaseUpdate  = "purchase_update"
	ChatKindMembership      = "membership"

	SystemSenderID = "system"
)

// ChatMessage is a system notice appended to a group buy's chat.
type ChatMessage struct {
	GroupBuyID uuid.UUID
	Text       string
	Kind       string
	CreatedAt  time.Time
}

// ChatNotifier is best effort. Callers invoke it after commit and only log
// its errors.
type ChatNotifier interface {
	Post(ctx context.Context, msg ChatMessage) error
}

// DraftTokenStore holds server-trusted listing drafts behind single-use tokens.
type DraftTokenStore interface {
	Mint(ctx context.Context, draft listing.Draft) (token string, expiresAt time.Time, err error)
	// Redeem deletes the entry on read. Unknown or spent tokens return
	// listing.ErrDraftTokenNotFound.
	Redeem(ctx context.Context, token string) (listing.Draft, error)
}

type ProofStorage interface {
	// Save stores the object under key and returns its public URL.
	Save(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
