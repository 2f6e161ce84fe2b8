package api

import (
	"context"
	"net/http"

	reqdto "teetime-exchange/internal/handler/dto/request"
	resdto "teetime-exchange/internal/handler/dto/response"
	"teetime-exchange/internal/handler/httperr"
	"teetime-exchange/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	ledger commands.OfferLedger
}

func NewOfferHandler(ledger commands.OfferLedger) *OfferHandler {
	return &OfferHandler{ledger: ledger}
}

// @Summary Make an offer
// @Description Offer a price for one or more bookings of the same owner and tee time
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.OfferCreatedResponse
// @Failure 400 {object} map[string]string
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.ledger.CreateOfferOnBookings(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OfferCreatedResponse{ID: res.OfferID, OtherPendingOffers: res.OtherPendingOffers})
}

// @Summary Cancel offer
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [delete]
func (h *OfferHandler) Cancel(c *gin.Context) {
	h.transition(c, h.ledger.CancelOfferOnBooking)
}

// @Summary Accept offer
// @Description Transfer the bookings to the buyer
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /offers/{id}/accept [post]
func (h *OfferHandler) Accept(c *gin.Context) {
	h.transition(c, h.ledger.AcceptOffer)
}

// @Summary Reject offer
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id}/reject [post]
func (h *OfferHandler) Reject(c *gin.Context) {
	h.transition(c, h.ledger.RejectOffer)
}

func (h *OfferHandler) transition(c *gin.Context, fn func(ctx context.Context, userID, offerID uuid.UUID) error) {
	offerID, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), userID, offerID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
