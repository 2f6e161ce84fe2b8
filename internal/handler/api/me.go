package api

import (
	"net/http"
	"strconv"

	resdto "teetime-exchange/internal/handler/dto/response"
	"teetime-exchange/internal/handler/httperr"
	"teetime-exchange/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	q queries.MarketplaceQueries
}

func NewMeHandler(q queries.MarketplaceQueries) *MeHandler {
	return &MeHandler{q: q}
}

// @Summary Transaction history
// @Description Transfers the user bought or sold, newest first, with keyset pagination
// @Tags me
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.TransactionPageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /me/transactions [get]
func (h *MeHandler) Transactions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.GetTransactionHistory(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := resdto.FromTransactionPage(items, next)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Owned tee times
// @Description Bookings owned by the user grouped by tee time
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OwnedTeeTimeResponse
// @Failure 401 {object} map[string]string
// @Router /me/tee-times [get]
func (h *MeHandler) OwnedTeeTimes(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.q.GetOwnedTeeTimes(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromOwnedTeeTimes(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Active listings
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} map[string]string
// @Router /me/listings [get]
func (h *MeHandler) Listings(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.q.GetMyListedTeeTimes(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromListings(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Offers sent
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OfferResponse
// @Failure 401 {object} map[string]string
// @Router /me/offers/sent [get]
func (h *MeHandler) OffersSent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.q.GetOfferSentForUser(c.Request.Context(), userID)
	h.writeOffers(c, views, err)
}

// @Summary Offers received
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OfferResponse
// @Failure 401 {object} map[string]string
// @Router /me/offers/received [get]
func (h *MeHandler) OffersReceived(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.q.GetOfferReceivedForUser(c.Request.Context(), userID)
	h.writeOffers(c, views, err)
}

// @Summary Offers on a booking
// @Description Pending and past offers on a booking; only its owner may look
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/offers [get]
func (h *MeHandler) OffersForBooking(c *gin.Context) {
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.q.GetOffersForBooking(c.Request.Context(), userID, bookingID)
	h.writeOffers(c, views, err)
}

func (h *MeHandler) writeOffers(c *gin.Context, views []*queries.OfferView, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	out, err := resdto.FromOffers(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
