package api

import (
	"net/http"
	"strings"

	reqdto "teetime-exchange/internal/handler/dto/request"
	resdto "teetime-exchange/internal/handler/dto/response"
	"teetime-exchange/internal/handler/httperr"
	"teetime-exchange/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings commands.BookingService
}

func NewBookingHandler(bookings commands.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// @Summary Reserve first-hand tee time
// @Description Book the tee time on the provider and record the bookings
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveBookingRequest true "Reservation"
// @Success 201 {object} resdto.ReserveBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/reserve [post]
func (h *BookingHandler) Reserve(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.ReserveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.bookings.ReserveBooking(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewReserveBookingResponse(res))
}

// @Summary Quote second-hand listing
// @Description Validate a listing before checkout and return its price
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveSecondHandRequest true "Listing"
// @Success 200 {object} resdto.SecondHandQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/reserve-second-hand [post]
func (h *BookingHandler) ReserveSecondHand(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.ReserveSecondHandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote, err := h.bookings.ReserveSecondHandBooking(c.Request.Context(), userID, req.ListingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewSecondHandQuoteResponse(quote))
}

// @Summary Confirm bookings
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmBookingRequest true "Payment"
// @Success 200 {object} resdto.ConfirmBookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	n, err := h.bookings.ConfirmBooking(c.Request.Context(), strings.TrimSpace(req.PaymentID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ConfirmBookingResponse{Confirmed: n})
}

// @Summary Rename players
// @Description Update player names on a booking's provider slots
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateNamesRequest true "Slot names"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/{id}/names [put]
func (h *BookingHandler) UpdateNames(c *gin.Context) {
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.bookings.UpdateNamesOnBookings(c.Request.Context(), userID, bookingID, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
