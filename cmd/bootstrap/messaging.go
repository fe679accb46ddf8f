package bootstrap

import (
	"context"
	"log/slog"

	"groupbuy-service/internal/infra/chat"
	"groupbuy-service/internal/infra/messaging"
	"groupbuy-service/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns a nil publisher when no brokers are configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) chat.EventPublisher {
	if !cfg.Kafka.Enabled() {
		logger.Info("Kafka is not configured, chat events will not be published")
		return nil
	}

	p := messaging.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ChatTopic, cfg.Kafka.Buffer)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p.Start()
			logger.Info("Kafka producer started", "topic", cfg.Kafka.ChatTopic)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return p.Close(ctx)
		},
	})
	return p
}
