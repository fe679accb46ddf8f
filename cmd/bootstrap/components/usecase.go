package components

import (
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/config"
	"groupbuy-service/internal/pkg/jwt"
	"groupbuy-service/internal/pkg/metrics"
	"groupbuy-service/internal/usecase"
	"groupbuy-service/internal/usecase/commands"
	"groupbuy-service/internal/usecase/queries"
	"groupbuy-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) commands.AuthCommands {
			return commands.NewAuthCommands(uow, jwtService, clk)
		},
		func(uow shared.UnitOfWork, clk clock.Clock, chat commands.ChatNotifier, m *metrics.Metrics, cfg config.Config) commands.PurchaseRequestCommands {
			return commands.NewPurchaseRequestCommands(uow, clk, chat, m, cfg.GroupBuy.Currency)
		},
		commands.NewReviewUseCase,
		commands.NewListingUseCase,
		commands.NewGroupBuyUseCase,
		func(uow shared.UnitOfWork, storage commands.ProofStorage, clk clock.Clock, cfg config.Config) commands.ProofCommands {
			return commands.NewProofUseCase(uow, storage, clk, cfg.Storage.MaxProofBytes)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReviewQueries,
		queries.NewGroupBuyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
