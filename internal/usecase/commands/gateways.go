package commands

import (
	"context"
	"log/slog"

	"teetime-exchange/internal/domain/money"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

// Gateways groups the outbound ports the ledger commands call.
type Gateways struct {
	Provider shared.ProviderGateway
	Weather  shared.WeatherGuaranteeGateway
	Payments shared.PaymentGateway
	Notifier shared.Notifier
	Settings shared.AppSettings
	Metrics  shared.Metrics
}

func NewGateways(
	provider shared.ProviderGateway,
	weather shared.WeatherGuaranteeGateway,
	payments shared.PaymentGateway,
	notifier shared.Notifier,
	settings shared.AppSettings,
	metrics shared.Metrics,
) Gateways {
	return Gateways{
		Provider: provider,
		Weather:  weather,
		Payments: payments,
		Notifier: notifier,
		Settings: settings,
		Metrics:  metrics,
	}
}

// notify never fails the calling operation; delivery problems are logged.
func notify(ctx context.Context, logger *slog.Logger, n shared.Notifier, template shared.Template, userID uuid.UUID, data map[string]string) {
	channel := shared.ChannelEmail
	if template == shared.TemplateAdminAlert {
		channel = shared.ChannelAdmin
	}
	err := n.Notify(ctx, shared.Notification{
		Template: template,
		UserID:   userID,
		Channel:  channel,
		Data:     data,
	})
	if err != nil {
		logger.WarnContext(ctx, "notification failed",
			slog.String("template", string(template)),
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}

func usd(cents int64) string {
	return money.FormatCents(cents)
}
