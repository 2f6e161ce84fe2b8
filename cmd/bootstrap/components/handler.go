package components

import (
	"teetime-exchange/internal/handler"
	"teetime-exchange/internal/handler/api"
	"teetime-exchange/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	ValidatorsModule,
	fx.Provide(
		api.NewWebhookHandler,
		api.NewMeHandler,
		api.NewBookingHandler,
		api.NewListingHandler,
		api.NewOfferHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	webhooks *api.WebhookHandler,
	me *api.MeHandler,
	bookings *api.BookingHandler,
	listings *api.ListingHandler,
	offers *api.OfferHandler,
) handler.Handlers {
	return handler.Handlers{
		Webhooks: webhooks,
		Me:       me,
		Bookings: bookings,
		Listings: listings,
		Offers:   offers,
	}
}
