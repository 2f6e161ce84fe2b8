package components

import (
	"teetime-exchange/internal/gateway/provider"
	"teetime-exchange/internal/infra/readstore"
	"teetime-exchange/internal/infra/repository"
	"teetime-exchange/internal/infra/settings"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/infra/uow"
	"teetime-exchange/internal/usecase/queries"
	"teetime-exchange/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Marketplace
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MarketplaceViewQueries)),
		),
		fx.Annotate(
			readstore.NewMarketplaceReadStore,
			fx.As(new(queries.MarketplaceReadStore)),
		),
		// Settings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(settings.SettingsQueries)),
		),
		fx.Annotate(
			settings.NewStore,
			fx.As(new(shared.AppSettings)),
		),
	),
)

// Ledger repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Provider customer links
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CustomerLinkQueries)),
		),
		fx.Annotate(
			repository.NewCustomerLinkRepository,
			fx.As(new(provider.CustomerLinks)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
