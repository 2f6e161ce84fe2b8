package components

import (
	"log/slog"

	"teetime-exchange/internal/gateway/payment"
	"teetime-exchange/internal/gateway/provider"
	"teetime-exchange/internal/gateway/provider/foreup"
	"teetime-exchange/internal/gateway/weather"
	"teetime-exchange/internal/infra/cache"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/usecase/commands"
	"teetime-exchange/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewProviderAdapters,
		fx.Annotate(
			provider.NewGateway,
			fx.As(new(shared.ProviderGateway)),
		),
		fx.Annotate(
			NewWeatherClient,
			fx.As(new(shared.WeatherGuaranteeGateway)),
		),
		fx.Annotate(
			NewPaymentClient,
			fx.As(new(shared.PaymentGateway)),
		),
		commands.NewGateways,
	),
)

// NewProviderAdapters is the registry of tee-sheet integrations keyed by
// the course's provider key.
func NewProviderAdapters(cfg config.Config) map[string]provider.Adapter {
	return map[string]provider.Adapter{
		foreup.Key: foreup.NewClient(cfg.Provider),
	}
}

func NewWeatherClient(cfg config.Config, tokens cache.TokenCache, logger *slog.Logger) *weather.Client {
	return weather.NewClient(cfg.Weather, tokens, logger)
}

func NewPaymentClient(cfg config.Config) *payment.Client {
	return payment.NewClient(cfg.Payment)
}
