package bootstrap

import (
	"groupbuy-service/internal/infra/blob"
	"groupbuy-service/internal/pkg/config"
	"groupbuy-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewProofStorage,
			fx.As(new(commands.ProofStorage)),
		),
	),
)

func NewProofStorage(cfg config.Config) (*blob.LocalStore, error) {
	return blob.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.PublicBaseURL)
}
