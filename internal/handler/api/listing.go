package api

import (
	"net/http"

	reqdto "teetime-exchange/internal/handler/dto/request"
	resdto "teetime-exchange/internal/handler/dto/response"
	"teetime-exchange/internal/handler/httperr"
	"teetime-exchange/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	ledger commands.ListingLedger
}

func NewListingHandler(ledger commands.ListingLedger) *ListingHandler {
	return &ListingHandler{ledger: ledger}
}

// @Summary List bookings for sale
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ListingRequest true "Listing"
// @Success 201 {object} resdto.ListingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.ledger.CreateListingForBookings(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ListingCreatedResponse{ID: id})
}

// @Summary Update listing
// @Description Replace a listing's price, bookings or end time
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.ListingRequest true "Listing"
// @Success 200 {object} resdto.ListingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.ledger.UpdateListing(c.Request.Context(), userID, listingID, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ListingCreatedResponse{ID: id})
}

// @Summary Cancel listing
// @Tags listings
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [delete]
func (h *ListingHandler) Cancel(c *gin.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.ledger.CancelListing(c.Request.Context(), userID, listingID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set minimum offer price
// @Description Apply a floor for offers to every booking the user owns on a tee time
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tee time ID"
// @Param request body reqdto.MinimumOfferPriceRequest true "Price in cents"
// @Success 200 {object} resdto.MinimumOfferPriceResponse
// @Failure 400 {object} map[string]string
// @Router /tee-times/{id}/minimum-offer-price [put]
func (h *ListingHandler) SetMinimumOfferPrice(c *gin.Context) {
	teeTimeID, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.MinimumOfferPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	n, err := h.ledger.SetMinimumOfferPrice(c.Request.Context(), userID, teeTimeID, *req.Price)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MinimumOfferPriceResponse{Updated: n})
}
