package bootstrap

import (
	"teetime-exchange/internal/infra/metrics"
	"teetime-exchange/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			func() *metrics.Prometheus {
				return metrics.NewPrometheus(prometheus.DefaultRegisterer)
			},
			fx.As(new(shared.Metrics)),
		),
	),
)
