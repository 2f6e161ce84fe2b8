// Command indexer runs one inventory pass for the least recently indexed
// course. It is meant for cron jobs that cannot reach the webhook.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"teetime-exchange/cmd/bootstrap"
	"teetime-exchange/internal/usecase/commands"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func runOnce(lc fx.Lifecycle, shutdowner fx.Shutdowner, indexer commands.InventoryIndexer, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
				defer cancel()

				code := 0
				res, err := indexer.HandleWebhook(ctx)
				if err != nil {
					logger.Error("indexing failed", "error", err)
					code = 1
				} else {
					logger.Info("indexing finished",
						"course_id", res.CourseID.String(),
						"days", res.DaysIndexed,
						"failed_days", res.DaysFailed)
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
	})
}

func main() {
	_ = godotenv.Load(".env")

	app := fx.New(
		bootstrap.InfraModule,
		fx.NopLogger,
		fx.Invoke(runOnce),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("indexer start failed", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("indexer stop failed", "error", err)
	}
	os.Exit(sig.ExitCode)
}
