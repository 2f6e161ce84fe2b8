package bootstrap

import (
	"context"
	"log/slog"

	"teetime-exchange/internal/infra/notify"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*notify.Publisher, error) {
	pub, err := notify.NewPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	logger.Info("notification publisher ready", "exchange", cfg.AMQP.Exchange)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
