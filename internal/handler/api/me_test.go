//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"teetime-exchange/internal/handler/api"
	resdto "teetime-exchange/internal/handler/dto/response"
	"teetime-exchange/internal/usecase/queries"
	"teetime-exchange/tests/common/httptest"
	queriesmock "teetime-exchange/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockMarketplaceQueries
	userID      uuid.UUID
}

func (s *MeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockMarketplaceQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewMeHandler(s.mockQueries)

	auth := mockAuth(s.userID)
	s.router.GET("/me/transactions", auth, h.Transactions)
	s.router.GET("/me/tee-times", auth, h.OwnedTeeTimes)
	s.router.GET("/me/listings", auth, h.Listings)
	s.router.GET("/me/offers/sent", auth, h.OffersSent)
	s.router.GET("/me/offers/received", auth, h.OffersReceived)
	s.router.GET("/bookings/:id/offers", auth, h.OffersForBooking)
}

func (s *MeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMeHandlerSuite(t *testing.T) {
	suite.Run(t, new(MeHandlerTestSuite))
}

func (s *MeHandlerTestSuite) TestTransactions() {
	view := &queries.TransactionView{
		ID:            uuid.New(),
		TransactionID: "pay_1",
		BookingID:     uuid.New(),
		Amount:        5000,
		FromUserID:    uuid.New(),
		ToUserID:      s.userID,
		Direction:     queries.DirectionPurchase,
		CreatedAt:     time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}

	s.Run("success: first page with next cursor", func() {
		next := &queries.Cursor{After: "abc"}
		s.mockQueries.EXPECT().GetTransactionHistory(gomock.Any(), s.userID, (*queries.Cursor)(nil), 20).
			Return([]*queries.TransactionView{view}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/transactions", nil, "bearer-token")

		var body resdto.TransactionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(view.ID, body.Items[0].ID)
		s.Equal("pay_1", body.Items[0].TransactionID)
		s.Equal(int64(5000), body.Items[0].Amount)
		s.Equal(queries.DirectionPurchase, body.Items[0].Direction)
		s.Equal("abc", body.NextCursor)
	})

	s.Run("success: cursor and limit are forwarded", func() {
		s.mockQueries.EXPECT().GetTransactionHistory(gomock.Any(), s.userID, &queries.Cursor{After: "xyz"}, 5).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/transactions?limit=5&after=xyz", nil, "bearer-token")

		var body resdto.TransactionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Empty(body.NextCursor)
	})
}

func (s *MeHandlerTestSuite) TestOwnedTeeTimes() {
	teeTimeID := uuid.New()
	listID := uuid.New()
	views := []*queries.OwnedTeeTimeView{{
		TeeTimeID:      teeTimeID,
		CourseName:     "Pine Hills",
		TeeTime:        "2026-11-01T08:10:00",
		Players:        3,
		ListedBookings: 1,
		Bookings: []*queries.OwnedBookingView{
			{ID: uuid.New(), TeeTimeID: teeTimeID, PlayerCount: 1, IsListed: true, ListID: &listID},
			{ID: uuid.New(), TeeTimeID: teeTimeID, PlayerCount: 2},
		},
	}}

	s.mockQueries.EXPECT().GetOwnedTeeTimes(gomock.Any(), s.userID).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/tee-times", nil, "bearer-token")

	var body []resdto.OwnedTeeTimeResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(3, body[0].Players)
	s.Equal("Pine Hills", body[0].CourseName)
	s.Require().Len(body[0].Bookings, 2)
	s.True(body[0].Bookings[0].IsListed)
	s.Equal(&listID, body[0].Bookings[0].ListID)
	s.Nil(body[0].Bookings[1].ListID)
}

func (s *MeHandlerTestSuite) TestListings() {
	view := &queries.ListedTeeTimeView{ListingID: uuid.New(), ListPrice: 9000, Slots: 2, BookingIDs: []uuid.UUID{uuid.New()}}
	s.mockQueries.EXPECT().GetMyListedTeeTimes(gomock.Any(), s.userID).
		Return([]*queries.ListedTeeTimeView{view}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/listings", nil, "bearer-token")

	var body []resdto.ListingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(view.ListingID, body[0].ListingID)
	s.Equal(view.BookingIDs, body[0].BookingIDs)
}

func (s *MeHandlerTestSuite) TestOffers() {
	view := &queries.OfferView{ID: uuid.New(), BuyerHandle: "birdie", Price: 3500, Status: "PENDING"}

	s.Run("sent", func() {
		s.mockQueries.EXPECT().GetOfferSentForUser(gomock.Any(), s.userID).
			Return([]*queries.OfferView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/offers/sent", nil, "bearer-token")

		var body []resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("birdie", body[0].BuyerHandle)
	})

	s.Run("received with no offers is an empty array", func() {
		s.mockQueries.EXPECT().GetOfferReceivedForUser(gomock.Any(), s.userID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/offers/received", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("for booking owned by someone else", func() {
		bookingID := uuid.New()
		s.mockQueries.EXPECT().GetOffersForBooking(gomock.Any(), s.userID, bookingID).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String()+"/offers", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "UNAUTHORIZED")
	})

	s.Run("for unknown booking", func() {
		bookingID := uuid.New()
		s.mockQueries.EXPECT().GetOffersForBooking(gomock.Any(), s.userID, bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String()+"/offers", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
