package bootstrap

import (
	"teetime-exchange/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule is everything below the use cases; the indexer binary reuses it.
var InfraModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	MessagingModule,
	MetricsModule,
	components.PersistenceModule,
	components.GatewayModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	InfraModule,
	JWTModule,
	components.HandlerModule,
)
