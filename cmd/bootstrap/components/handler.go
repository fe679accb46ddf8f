package components

import (
	"groupbuy-service/internal/handler"
	"groupbuy-service/internal/handler/api"
	"groupbuy-service/internal/handler/middleware"
	"groupbuy-service/internal/pkg/config"
	"groupbuy-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPurchaseRequestHandler,
		api.NewReviewHandler,
		api.NewListingHandler,
		api.NewGroupBuyHandler,
		func(cmds commands.ProofCommands, cfg config.Config) *api.UploadProofHandler {
			return api.NewUploadProofHandler(cmds, cfg.Storage.MaxProofBytes)
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
