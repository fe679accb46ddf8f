package components

import (
	"groupbuy-service/internal/infra/chat"
	"groupbuy-service/internal/infra/readstore"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/infra/uow"
	"groupbuy-service/internal/pkg/config"
	"groupbuy-service/internal/usecase/commands"
	"groupbuy-service/internal/usecase/queries"
	"groupbuy-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewGroupBuyReadStore,
			fx.As(new(queries.GroupBuyReadStore)),
		),
		fx.Annotate(
			readstore.NewChatReadStore,
			fx.As(new(queries.ChatReadStore)),
		),
	),
)

var writeModule = fx.Module("persistence/write",
	fx.Provide(
		// UnitOfWork owns the tx-scoped repositories
		uow.NewPostgresUoW,
		NewSnapshotter,
		fx.Annotate(
			NewChatSink,
			fx.As(new(commands.ChatNotifier)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewSnapshotter hands the UnitOfWork's read-only transactions to the readstores.
func NewSnapshotter(u shared.UnitOfWork) readstore.Snapshotter {
	return u
}

func NewChatSink(q *sqlc.Queries, db sqlc.DBTX, publisher chat.EventPublisher, cfg config.Config) *chat.Sink {
	return chat.NewSink(q, db, publisher, cfg.Kafka.Producer)
}
