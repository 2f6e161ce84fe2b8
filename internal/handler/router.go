package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"teetime-exchange/internal/handler/api"
	"teetime-exchange/internal/handler/middleware"
	"teetime-exchange/internal/pkg/config"
)

const indexerSecretHeader = "X-Indexer-Secret"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Webhooks *api.WebhookHandler
	Me       *api.MeHandler
	Bookings *api.BookingHandler
	Listings *api.ListingHandler
	Offers   *api.OfferHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		webhooks := apiGroup.Group("/webhooks")
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/payments", Handler: h.Webhooks.Payment},
			{
				Method:  http.MethodPost,
				Path:    "/inventory",
				Handler: h.Webhooks.Inventory,
				Mw:      []gin.HandlerFunc{middleware.RequireSharedSecret(indexerSecretHeader, cfg.Indexer.Secret)},
			},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())

		me := authed.Group("/me")
		addRoutes(me, []route{
			{Method: http.MethodGet, Path: "/transactions", Handler: h.Me.Transactions},
			{Method: http.MethodGet, Path: "/tee-times", Handler: h.Me.OwnedTeeTimes},
			{Method: http.MethodGet, Path: "/listings", Handler: h.Me.Listings},
			{Method: http.MethodGet, Path: "/offers/sent", Handler: h.Me.OffersSent},
			{Method: http.MethodGet, Path: "/offers/received", Handler: h.Me.OffersReceived},
		})

		bookings := authed.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "/reserve", Handler: h.Bookings.Reserve},
			{Method: http.MethodPost, Path: "/reserve-second-hand", Handler: h.Bookings.ReserveSecondHand},
			{Method: http.MethodPost, Path: "/confirm", Handler: h.Bookings.Confirm},
			{Method: http.MethodPut, Path: "/:id/names", Handler: h.Bookings.UpdateNames},
			{Method: http.MethodGet, Path: "/:id/offers", Handler: h.Me.OffersForBooking},
		})

		addRoutes(authed, []route{
			{Method: http.MethodPut, Path: "/tee-times/:id/minimum-offer-price", Handler: h.Listings.SetMinimumOfferPrice},
		})

		listings := authed.Group("/listings")
		addRoutes(listings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Listings.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Listings.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Listings.Cancel},
		})

		offers := authed.Group("/offers")
		addRoutes(offers, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Offers.Create},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Offers.Cancel},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Offers.Accept},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Offers.Reject},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
