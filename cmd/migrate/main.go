// Command migrate applies migrations/001_initial_schema.sql to the configured
// database with the atlas CLI. The desired state is declarative, so running it
// twice is a no-op.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"groupbuy-service/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	schema := flag.String("schema", "file://migrations/001_initial_schema.sql", "desired schema")
	devURL := flag.String("dev-url", "docker://postgres/17/dev", "atlas dev database")
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.Kitchen})))
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("atlas クライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          *schema,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	slog.Info("マイグレーション完了",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", *dryRun)
}
