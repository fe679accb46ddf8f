package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"groupbuy-service/internal/domain/groupbuy"
	"groupbuy-service/internal/pkg/metrics"

	"github.com/google/uuid"
)

func purchaseRequestCreatedText(pr *groupbuy.PurchaseRequest) string {
	text := fmt.Sprintf("🛒 Purchase request initiated! Each participant will pay %s. Purchase deadline: %s.",
		pr.Amount().String(), pr.Deadline().Format(time.DateOnly))
	if pr.Message() != "" {
		text += " Note: " + pr.Message()
	}
	return text
}

func transitionText(t groupbuy.Transition) string {
	switch t.Action {
	case groupbuy.ActionSubmitPayment:
		if t.To == groupbuy.PurchaseReadyForPurchase {
			return "✅ All participants have paid! The organizer can now make the purchase."
		}
		return fmt.Sprintf("💰 Payment received (%d/%d paid)", t.Paid, t.Total)
	case groupbuy.ActionUploadOrganizerProof:
		return "🛒 Organizer has uploaded proof of purchase! Please review and approve."
	case groupbuy.ActionApprovePurchase:
		if t.Completed() {
			return "🎉 All participants have approved! Purchase completed successfully."
		}
		return fmt.Sprintf("✅ Participant approved the purchase (%d/%d approved)", t.Approved, t.Total)
	case groupbuy.ActionRejectPurchase:
		return "❌ Participant rejected the purchase proof. Please contact the organizer."
	default:
		return ""
	}
}

func joinedText(g *groupbuy.GroupBuy) string {
	if g.Status() == groupbuy.StatusFull {
		return "🎯 Group buy is full! The organizer can now request payment."
	}
	return fmt.Sprintf("👋 A new participant joined (%d/%d).", g.CurrentParticipants(), g.MaxParticipants())
}

// notifier wraps the sink so that a failed notification never reaches the caller.
type notifier struct {
	sink    ChatNotifier
	metrics *metrics.Metrics
}

func (n notifier) post(ctx context.Context, groupBuyID uuid.UUID, kind, text string, at time.Time) {
	if n.sink == nil || text == "" {
		return
	}
	err := n.sink.Post(ctx, ChatMessage{GroupBuyID: groupBuyID, Text: text, Kind: kind, CreatedAt: at})
	n.metrics.ObserveChatNotification(metrics.ResultOf(err, nil))
	if err != nil {
		slog.WarnContext(ctx, "chat notification failed",
			"group_buy_id", groupBuyID,
			"kind", kind,
			"error", err.Error())
	}
}
