package components

import (
	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/usecase"
	"teetime-exchange/internal/usecase/commands"
	"teetime-exchange/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTokenizationEngine,
		commands.NewBookingService,
		commands.NewListingLedger,
		commands.NewOfferLedger,
		commands.NewPaymentReconciler,
		commands.NewInventoryIndexer,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMarketplaceQueries,
	),
)

// ValidatorsModule is only needed where bearer tokens are checked.
var ValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
