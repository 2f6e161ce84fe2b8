//go:build e2e

package marketplace_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"teetime-exchange/internal/handler/dto/request"
	"teetime-exchange/internal/handler/dto/response"
	"teetime-exchange/internal/usecase/shared"
	"teetime-exchange/tests/common/authtest"
	"teetime-exchange/tests/common/dbtest"
	"teetime-exchange/tests/common/httptest"
	"teetime-exchange/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	listingsURL          = "/api/listings"
	listingURL           = "/api/listings/%s"
	offersURL            = "/api/offers"
	offerRejectURL       = "/api/offers/%s/reject"
	offerAcceptURL       = "/api/offers/%s/accept"
	bookingOffersURL     = "/api/bookings/%s/offers"
	minimumOfferPriceURL = "/api/tee-times/%s/minimum-offer-price"
	myListingsURL        = "/api/me/listings"
	myTeeTimesURL        = "/api/me/tee-times"
	myOffersSentURL      = "/api/me/offers/sent"
)

type MarketplaceSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *MarketplaceSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *MarketplaceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestMarketplaceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MarketplaceSuite))
}

type fixture struct {
	sellerID    uuid.UUID
	buyerID     uuid.UUID
	courseID    uuid.UUID
	teeTimeID   uuid.UUID
	bookingID   uuid.UUID
	sellerToken string
	buyerToken  string
}

func (s *MarketplaceSuite) seed(t *testing.T) fixture {
	t.Helper()
	f := fixture{}
	f.sellerID = dbtest.CreateTestUser(t, s.DB, "seller@example.com")
	f.buyerID = dbtest.CreateTestUser(t, s.DB, "buyer@example.com")
	f.courseID = dbtest.CreateTestCourse(t, s.DB, "Pine Valley")
	f.teeTimeID = dbtest.CreateTestTeeTime(t, s.DB, f.courseID, time.Now().AddDate(0, 0, 7), 5000)
	f.bookingID = dbtest.CreateTestBooking(t, s.DB, f.sellerID, f.teeTimeID, f.courseID, 2, 10000)
	f.sellerToken = s.jwt.GenerateToken(t, f.sellerID, "seller@example.com")
	f.buyerToken = s.jwt.GenerateToken(t, f.buyerID, "buyer@example.com")
	return f
}

func (s *MarketplaceSuite) createListing(t *testing.T, f fixture) uuid.UUID {
	t.Helper()
	body := request.ListingRequest{
		ListPrice:  6000,
		BookingIDs: []uuid.UUID{f.bookingID},
		EndTime:    time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second),
		Slots:      2,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, body, f.sellerToken)
	var created response.ListingCreatedResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}

func (s *MarketplaceSuite) TestListings() {
	s.Run("Normal case: created listing shows up and marks the booking listed", func() {
		t := s.T()
		f := s.seed(t)

		listingID := s.createListing(t, f)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myListingsURL, nil, f.sellerToken)
		var listings []response.ListingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listings)

		expected := []response.ListingResponse{{
			ListingID:  listingID,
			TeeTimeID:  f.teeTimeID,
			CourseID:   f.courseID,
			CourseName: "Pine Valley",
			ListPrice:  6000,
			Slots:      2,
			BookingIDs: []uuid.UUID{f.bookingID},
		}}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ListingResponse{}, "TeeTime", "EndTime", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, listings, opts...); diff != "" {
			t.Errorf("listing mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myTeeTimesURL, nil, f.sellerToken)
		var owned []response.OwnedTeeTimeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &owned)
		require.Len(t, owned, 1)
		require.Equal(t, 2, owned[0].Players)
		require.Equal(t, 1, owned[0].ListedBookings)
		require.Len(t, owned[0].Bookings, 1)
		require.True(t, owned[0].Bookings[0].IsListed)

		var sent []shared.Template
		for _, n := range s.Notifier.Sent() {
			sent = append(sent, n.Template)
		}
		require.Contains(t, sent, shared.TemplateListingCreated)
	})

	s.Run("Error case: a booking cannot be listed twice", func() {
		t := s.T()
		f := s.seed(t)
		s.createListing(t, f)

		body := request.ListingRequest{
			ListPrice:  7000,
			BookingIDs: []uuid.UUID{f.bookingID},
			EndTime:    time.Now().Add(24 * time.Hour),
			Slots:      1,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, body, f.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "One or more bookings from this tee time is already listed")
	})

	s.Run("Error case: only the owner can list a booking", func() {
		t := s.T()
		f := s.seed(t)

		body := request.ListingRequest{
			ListPrice:  6000,
			BookingIDs: []uuid.UUID{f.bookingID},
			EndTime:    time.Now().Add(24 * time.Hour),
			Slots:      2,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, body, f.buyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "UNAUTHORIZED")
	})

	s.Run("Normal case: cancelling a listing clears it from the user's listings", func() {
		t := s.T()
		f := s.seed(t)
		listingID := s.createListing(t, f)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(listingURL, listingID), nil, f.sellerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myListingsURL, nil, f.sellerToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(listingURL, listingID), nil, f.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Listing has already been cancelled")
	})

	s.Run("Error case: requests without a token are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myListingsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		f := s.seed(t)
		expired := s.jwt.CreateExpiredToken(t, f.sellerID, "seller@example.com")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myListingsURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *MarketplaceSuite) TestOffers() {
	s.Run("Normal case: buyer offer is visible to the owner and can be rejected", func() {
		t := s.T()
		f := s.seed(t)

		body := request.CreateOfferRequest{
			BookingIDs: []uuid.UUID{f.bookingID},
			Price:      5000,
			ExpiresAt:  time.Now().Add(time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, body, f.buyerToken)
		var created response.OfferCreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, 0, created.OtherPendingOffers)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingOffersURL, f.bookingID), nil, f.sellerToken)
		var offers []response.OfferResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &offers)
		require.Len(t, offers, 1)
		require.Equal(t, created.ID, offers[0].ID)
		require.Equal(t, "PENDING", offers[0].Status)
		require.Equal(t, int64(5000), offers[0].Price)
		require.Equal(t, "buyer", offers[0].BuyerHandle)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingOffersURL, f.bookingID), nil, f.buyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "UNAUTHORIZED")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(offerRejectURL, created.ID), nil, f.sellerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myOffersSentURL, nil, f.buyerToken)
		var sent []response.OfferResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sent)
		require.Len(t, sent, 1)
		require.Equal(t, "REJECTED", sent[0].Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(offerRejectURL, created.ID), nil, f.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Offer is no longer pending")
	})

	s.Run("Normal case: accepting an offer on a listed booking unlists it and moves ownership", func() {
		t := s.T()
		f := s.seed(t)
		listingID := s.createListing(t, f)

		body := request.CreateOfferRequest{
			BookingIDs: []uuid.UUID{f.bookingID},
			Price:      5000,
			ExpiresAt:  time.Now().Add(time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, body, f.buyerToken)
		var created response.OfferCreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(offerAcceptURL, created.ID), nil, f.sellerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myListingsURL, nil, f.sellerToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myTeeTimesURL, nil, f.buyerToken)
		var owned []response.OwnedTeeTimeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &owned)
		require.Len(t, owned, 1)
		require.Len(t, owned[0].Bookings, 1)
		assert.Equal(t, f.bookingID, owned[0].Bookings[0].ID)
		assert.False(t, owned[0].Bookings[0].IsListed)
		assert.Nil(t, owned[0].Bookings[0].ListID)
		assert.Zero(t, owned[0].ListedBookings)

		ctx := context.Background()
		var (
			ownerID  uuid.UUID
			isListed bool
			listID   *uuid.UUID
		)
		err := s.DB.QueryRow(ctx, "SELECT owner_id, is_listed, list_id FROM bookings WHERE id = $1", f.bookingID).
			Scan(&ownerID, &isListed, &listID)
		require.NoError(t, err)
		assert.Equal(t, f.buyerID, ownerID)
		assert.False(t, isListed)
		assert.Nil(t, listID)

		var listingDeleted bool
		err = s.DB.QueryRow(ctx, "SELECT is_deleted FROM lists WHERE id = $1", listingID).Scan(&listingDeleted)
		require.NoError(t, err)
		assert.True(t, listingDeleted)

		var leadName string
		err = s.DB.QueryRow(ctx, "SELECT name FROM booking_slots WHERE booking_id = $1 AND slot_position = 1", f.bookingID).
			Scan(&leadName)
		require.NoError(t, err)
		assert.Equal(t, "Test buyer", leadName)

		var transfers int
		err = s.DB.QueryRow(ctx, "SELECT count(*) FROM transfers WHERE booking_id = $1 AND to_user_id = $2", f.bookingID, f.buyerID).
			Scan(&transfers)
		require.NoError(t, err)
		assert.Equal(t, 1, transfers)

		updates := s.Provider.Updates()
		require.Len(t, updates, 1)
		assert.Equal(t, "slot-1", updates[0].SlotID)
		assert.Equal(t, "Test buyer", updates[0].Update.Name)
		assert.NotEmpty(t, updates[0].Update.CustomerID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myOffersSentURL, nil, f.buyerToken)
		var sent []response.OfferResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sent)
		require.Len(t, sent, 1)
		assert.Equal(t, "ACCEPTED", sent[0].Status)
	})

	s.Run("Error case: offers below the minimum offer price are refused", func() {
		t := s.T()
		f := s.seed(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(minimumOfferPriceURL, f.teeTimeID),
			map[string]any{"price": 7000}, f.sellerToken)
		var updated response.MinimumOfferPriceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, int64(1), updated.Updated)

		body := request.CreateOfferRequest{
			BookingIDs: []uuid.UUID{f.bookingID},
			Price:      5000,
			ExpiresAt:  time.Now().Add(time.Hour),
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, body, f.buyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Offer price must be at least the minimum offer price of $70.00")
	})

	s.Run("Error case: owners cannot offer on their own booking", func() {
		t := s.T()
		f := s.seed(t)

		body := request.CreateOfferRequest{
			BookingIDs: []uuid.UUID{f.bookingID},
			Price:      5000,
			ExpiresAt:  time.Now().Add(time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, body, f.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "You cannot make an offer on your own booking")
	})
}
