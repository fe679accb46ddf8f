package bootstrap

import (
	"context"

	"groupbuy-service/internal/infra/tokenstore"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/config"
	"groupbuy-service/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewDraftTokenStore,
			fx.As(new(commands.DraftTokenStore)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()

	rdb, err := tokenstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewDraftTokenStore(rdb *redis.Client, cfg config.Config, clk clock.Clock) *tokenstore.RedisDraftStore {
	return tokenstore.NewRedisDraftStore(rdb, cfg.GroupBuy.DraftTokenTTL, clk)
}
