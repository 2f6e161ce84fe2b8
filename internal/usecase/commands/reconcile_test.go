//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/cart"
	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/domain/transfer"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/pkg/ptr"
	"teetime-exchange/internal/usecase/commands"
	"teetime-exchange/internal/usecase/shared"
	"teetime-exchange/tests/common/builder"
	commandsmock "teetime-exchange/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const paymentID = "pay_123"

type ReconcilerSuite struct {
	suite.Suite
	h          *harness
	engine     *commandsmock.MockTokenizationEngine
	offers     *commandsmock.MockOfferLedger
	reconciler commands.PaymentReconciler

	buyerID uuid.UUID
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerSuite))
}

func (s *ReconcilerSuite) SetupTest() {
	s.reset()
}

func (s *ReconcilerSuite) SetupSubTest() {
	s.reset()
}

func (s *ReconcilerSuite) reset() {
	s.h = newHarness(s.T())
	ctrl := gomock.NewController(s.T())
	s.engine = commandsmock.NewMockTokenizationEngine(ctrl)
	s.offers = commandsmock.NewMockOfferLedger(ctrl)
	s.reconciler = commands.NewPaymentReconciler(s.h.uow, s.h.gateways(), s.engine, s.offers, s.h.clock, s.h.logger)
	s.buyerID = uuid.New()
}

func (s *ReconcilerSuite) event(eventType string, amount int64) commands.WebhookEvent {
	return commands.WebhookEvent{
		MerchantID:     "merchant-1",
		EventID:        "evt-1",
		EventType:      eventType,
		PaymentID:      paymentID,
		AmountReceived: ptr.Of(amount),
		CustomerID:     "cus_1",
		Timestamp:      testNow,
	}
}

func (s *ReconcilerSuite) cartWith(items ...cart.Item) *cart.Cart {
	return &cart.Cart{
		ID:        uuid.New(),
		UserID:    s.buyerID,
		CourseID:  uuid.New(),
		PaymentID: paymentID,
		Items:     items,
	}
}

func line(kind cart.ItemType, cents int64) cart.Line {
	return cart.Line{Kind: kind, Cents: cents, Label: string(kind)}
}

func (s *ReconcilerSuite) TestRejectedDeliveries() {
	s.Run("Error case: an incomplete payload is refused", func() {
		ev := s.event(commands.EventPaymentSucceeded, 1000)
		ev.CustomerID = ""

		_, err := s.reconciler.ProcessWebhook(context.Background(), ev)

		s.Require().ErrorIs(err, commands.ErrInvalidWebhookPayload)
		s.Equal([]string{"payment_succeeded:error"}, s.h.metrics.webhooks)
	})

	s.Run("Error case: a payment without a cart is refused", func() {
		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(nil, errs.NotFound("cart row missing"))

		_, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentSucceeded, 1000))

		s.Require().ErrorIs(err, commands.ErrWebhookCartMissing)
	})

	s.Run("Error case: unknown event types change nothing", func() {
		c := s.cartWith()
		c.PromoCode = ptr.Of("SPRING")
		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)

		_, err := s.reconciler.ProcessWebhook(context.Background(), s.event("payment_refunded", 1000))

		s.Require().ErrorIs(err, commands.ErrUnhandledEventType)
		s.Equal("Unhandled event type.", errs.PublicMessage(err))
		s.Zero(s.h.transactions)
		s.Equal([]string{"payment_refunded:unhandled"}, s.h.metrics.webhooks)
	})
}

func (s *ReconcilerSuite) TestPaymentFailed() {
	s.Run("Normal case: the buyer is told with the received amount", func() {
		c := s.cartWith(&cart.FirstHandItem{Line: line(cart.ItemFirstHand, 10000)})
		c.PromoCode = ptr.Of("SPRING")
		promo := &shared.PromoSnapshot{ID: uuid.New(), Code: "SPRING"}
		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)
		s.h.reads.EXPECT().PromoByCode(gomock.Any(), "SPRING").Return(promo, nil)
		s.h.promos.EXPECT().Apply(gomock.Any(), gomock.Any(), promo.ID, s.buyerID, paymentID).Return(int64(1), nil)

		res, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentFailed, 0))

		s.Require().NoError(err)
		s.Equal(commands.EventPaymentFailed, res.EventType)
		s.Empty(res.Handled)
		n, ok := s.h.notifier.find(shared.TemplatePaymentFailed)
		s.Require().True(ok)
		s.Equal("$0.00", n.Data["amount"])
		s.Equal(s.buyerID, n.UserID)
		s.Equal([]string{"payment_failed:payment_failed"}, s.h.metrics.webhooks)
	})
}

func (s *ReconcilerSuite) TestFirstHand() {
	s.Run("Normal case: reserved bookings are confirmed and the guarantee attached", func() {
		c := s.cartWith(
			&cart.FirstHandItem{Line: line(cart.ItemFirstHand, 10000), TeeTimeID: uuid.New(), NumberOfBookings: 2},
			&cart.SensibleItem{Line: line(cart.ItemSensible, 800), QuoteID: "q-1"},
		)
		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)
		s.engine.EXPECT().ConfirmBooking(gomock.Any(), paymentID).Return(int64(2), nil)
		s.engine.EXPECT().AttachWeatherGuarantee(gomock.Any(), c).Return(nil)

		res, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentSucceeded, 10800))

		s.Require().NoError(err)
		s.Equal([]cart.ItemType{cart.ItemFirstHand, cart.ItemSensible}, res.Handled)
		s.Equal([]string{"payment_succeeded:ok"}, s.h.metrics.webhooks)
	})
}

func (s *ReconcilerSuite) TestSecondHand() {
	sellerID := uuid.New()
	tt := builder.NewTeeTimeBuilder().Build()
	course := shared.CourseSnapshot{ID: tt.CourseID, Name: "Pine Valley", ProviderKey: "foreup"}
	buyer := shared.UserSnapshot{ID: s.buyerID, Name: "Buyer"}
	seller := shared.UserSnapshot{ID: sellerID, Name: "Seller"}
	session := shared.ProviderSession{ProviderKey: "foreup", Token: "tok", Course: course}

	fixture := func(deleted bool) (*listing.Listing, *booking.Booking) {
		b := builder.NewBookingBuilder().
			OwnedBy(sellerID).
			ForTeeTime(tt.ID, tt.CourseID).
			With(func(p *booking.ReconstructParams) {
				p.PlayerCount = 2
				p.TotalAmount = 10000
				p.ProviderBookingID = "pb-seller"
			}).
			Build()
		l := builder.NewListingBuilder().With(func(p *listing.ReconstructParams) {
			p.UserID = sellerID
			p.TeeTimeID = tt.ID
			p.CourseID = tt.CourseID
			p.BookingIDs = []uuid.UUID{b.ID()}
			p.IsDeleted = deleted
		}).Build()
		return l, b
	}

	s.Run("Normal case: the whole listing moves to the buyer", func() {
		s.buyerID = buyer.ID
		l, b := fixture(false)
		c := s.cartWith(&cart.SecondHandItem{Line: line(cart.ItemSecondHand, 12000), ListingID: l.ID(), TeeTimeID: tt.ID, Slots: 2})
		customer := &shared.ProviderCustomer{CustomerID: "cust-1", Name: "Buyer"}
		newSlots := []booking.Slot{{SlotID: "pb-new-1", SlotPosition: 1}, {SlotID: "pb-new-2", SlotPosition: 2}}

		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)
		s.h.reads.EXPECT().TransferExistsForTransaction(gomock.Any(), paymentID).Return(false, nil)
		s.h.reads.EXPECT().RefundExistsForPayment(gomock.Any(), paymentID).Return(false, nil)
		s.h.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), l.BookingIDs()).Return([]*booking.Booking{b}, nil)
		s.h.reads.EXPECT().UserByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
		s.h.reads.EXPECT().UserByID(gomock.Any(), sellerID).Return(&seller, nil)
		s.h.reads.EXPECT().CourseByID(gomock.Any(), tt.CourseID).Return(&course, nil)
		s.h.reads.EXPECT().TeeTimeByID(gomock.Any(), tt.ID).Return(&tt, nil)
		s.h.provider.EXPECT().Session(gomock.Any(), course).Return(session, nil)
		s.h.provider.EXPECT().DeleteBooking(gomock.Any(), session, "pb-seller").Return(nil)
		s.h.provider.EXPECT().FindOrCreateCustomer(gomock.Any(), session, buyer).Return(customer, nil)
		s.h.provider.EXPECT().CreateBooking(gomock.Any(), session, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.ProviderSession, req shared.ProviderBookingRequest) (*shared.ProviderBooking, error) {
				s.Equal(2, req.Players)
				s.Equal(int64(12000), req.TotalAmountPaid)
				return &shared.ProviderBooking{ID: "pb-new"}, nil
			})
		s.h.provider.EXPECT().SlotsForBooking(session, uuid.Nil, 2, *customer, "pb-new").Return(newSlots)

		s.h.bookings.EXPECT().MarkTransferred(gomock.Any(), gomock.Any(), sellerID, []uuid.UUID{b.ID()}).Return(int64(1), nil)
		var created *booking.Booking
		s.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, nb *booking.Booking) error {
				created = nb
				return nil
			})
		s.h.bookings.EXPECT().CreateSlots(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(nil)
		var tr *transfer.Transfer
		s.h.transfers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, t *transfer.Transfer) error {
				tr = t
				return nil
			})
		s.h.listings.EXPECT().Cancel(gomock.Any(), gomock.Any(), l.ID(), gomock.Nil()).Return(int64(1), nil)
		s.h.bookings.EXPECT().UnlistByListing(gomock.Any(), gomock.Any(), l.ID()).Return(int64(0), nil)

		res, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentSucceeded, 12000))

		s.Require().NoError(err)
		s.Equal([]cart.ItemType{cart.ItemSecondHand}, res.Handled)
		s.Require().NotNil(created)
		s.Equal(buyer.ID, created.OwnerID())
		s.Equal(booking.StatusConfirmed, created.Status())
		s.Equal(int64(12000), created.TotalAmount())
		s.Require().NotNil(tr)
		s.Equal(created.ID(), tr.BookingID())
		s.Equal(sellerID, tr.FromUserID())
		s.Equal(int64(10000), tr.PurchasedPrice())
		s.Equal([]shared.Template{shared.TemplatePurchaseConfirmation, shared.TemplateListingSold}, s.h.notifier.templates())
	})

	s.Run("Error case: a cancelled listing is refunded", func() {
		s.buyerID = buyer.ID
		l, _ := fixture(true)
		c := s.cartWith(&cart.SecondHandItem{Line: line(cart.ItemSecondHand, 12000), ListingID: l.ID(), Slots: 2})

		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)
		s.h.reads.EXPECT().TransferExistsForTransaction(gomock.Any(), paymentID).Return(false, nil)
		s.h.reads.EXPECT().RefundExistsForPayment(gomock.Any(), paymentID).Return(false, nil)
		s.h.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.h.payments.EXPECT().Refund(gomock.Any(), paymentID, int64(12000), "listing_unavailable").Return(nil)
		var entry shared.AuditEntry
		s.h.audit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e shared.AuditEntry) error {
				entry = e
				return nil
			})

		_, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentSucceeded, 12000))

		s.Require().ErrorIs(err, commands.ErrListingUnavailable)
		s.Equal(shared.AuditRefundInitiated, entry.EventID)
		s.Equal(paymentID, entry.PaymentID)
		s.Equal([]string{"listing_unavailable"}, s.h.metrics.refunds)
		s.Equal([]string{"payment_succeeded:error"}, s.h.metrics.webhooks)
	})

	s.Run("Normal case: a redelivered refunded sale is not refunded again", func() {
		s.buyerID = buyer.ID
		l, _ := fixture(true)
		c := s.cartWith(&cart.SecondHandItem{Line: line(cart.ItemSecondHand, 12000), ListingID: l.ID(), Slots: 2})
		ev := s.event(commands.EventPaymentSucceeded, 12000)

		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil).Times(2)
		s.h.reads.EXPECT().TransferExistsForTransaction(gomock.Any(), paymentID).Return(false, nil).Times(2)
		gomock.InOrder(
			s.h.reads.EXPECT().RefundExistsForPayment(gomock.Any(), paymentID).Return(false, nil),
			s.h.reads.EXPECT().RefundExistsForPayment(gomock.Any(), paymentID).Return(true, nil),
		)
		s.h.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.h.payments.EXPECT().Refund(gomock.Any(), paymentID, int64(12000), "listing_unavailable").Return(nil).Times(1)
		s.h.audit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := s.reconciler.ProcessWebhook(context.Background(), ev)
		s.Require().ErrorIs(err, commands.ErrListingUnavailable)

		res, err := s.reconciler.ProcessWebhook(context.Background(), ev)

		s.Require().NoError(err)
		s.Empty(res.Handled)
		s.Equal([]cart.ItemType{cart.ItemSecondHand}, res.Skipped)
		s.Equal([]string{"listing_unavailable"}, s.h.metrics.refunds)
		s.Equal([]string{"payment_succeeded:error", "payment_succeeded:ok"}, s.h.metrics.webhooks)
		s.Empty(s.h.notifier.templates())
	})

	s.Run("Normal case: a redelivered sale is skipped", func() {
		c := s.cartWith(&cart.SecondHandItem{Line: line(cart.ItemSecondHand, 12000), ListingID: uuid.New(), Slots: 2})
		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)
		s.h.reads.EXPECT().TransferExistsForTransaction(gomock.Any(), paymentID).Return(true, nil)

		res, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentSucceeded, 12000))

		s.Require().NoError(err)
		s.Equal([]cart.ItemType{cart.ItemSecondHand}, res.Skipped)
		s.Empty(s.h.notifier.templates())
	})
}

func (s *ReconcilerSuite) TestOtherLines() {
	s.Run("Normal case: a paid offer is placed once", func() {
		bookingIDs := []uuid.UUID{uuid.New()}
		expires := testNow.Add(24 * time.Hour)
		c := s.cartWith(&cart.OfferItem{Line: line(cart.ItemOffer, 9000), BookingIDs: bookingIDs, ExpiresAt: expires})
		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)
		s.h.reads.EXPECT().OfferExistsForPayment(gomock.Any(), paymentID).Return(false, nil)
		s.offers.EXPECT().CreateOfferOnBookings(gomock.Any(), s.buyerID, commands.CreateOfferRequest{
			BookingIDs: bookingIDs,
			Price:      9000,
			ExpiresAt:  expires,
			PaymentID:  ptr.Of(paymentID),
		}).Return(&commands.CreateOfferResult{OfferID: uuid.New()}, nil)

		res, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentSucceeded, 9000))

		s.Require().NoError(err)
		s.Equal([]cart.ItemType{cart.ItemOffer}, res.Handled)
	})

	s.Run("Normal case: an offer already placed for the payment is skipped", func() {
		c := s.cartWith(&cart.OfferItem{Line: line(cart.ItemOffer, 9000), BookingIDs: []uuid.UUID{uuid.New()}})
		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)
		s.h.reads.EXPECT().OfferExistsForPayment(gomock.Any(), paymentID).Return(true, nil)

		res, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentSucceeded, 9000))

		s.Require().NoError(err)
		s.Equal([]cart.ItemType{cart.ItemOffer}, res.Skipped)
	})

	s.Run("Normal case: auction payment is audited and a repeated donation skipped", func() {
		auctionID := uuid.New()
		charityID := uuid.New()
		c := s.cartWith(
			&cart.FeeItem{Line: line(cart.ItemConvenienceFee, 300)},
			&cart.AuctionItem{Line: line(cart.ItemAuction, 25000), AuctionID: auctionID},
			&cart.CharityItem{Line: line(cart.ItemCharity, 500), CharityID: charityID},
		)
		s.h.reads.EXPECT().CartByPayment(gomock.Any(), paymentID).Return(c, nil)
		var entry shared.AuditEntry
		s.h.audit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e shared.AuditEntry) error {
				entry = e
				return nil
			})
		s.h.donations.EXPECT().Record(gomock.Any(), gomock.Any(), shared.Donation{
			PaymentID: paymentID,
			UserID:    s.buyerID,
			CharityID: charityID,
			CourseID:  c.CourseID,
			Amount:    500,
		}).Return(int64(0), nil)

		res, err := s.reconciler.ProcessWebhook(context.Background(), s.event(commands.EventPaymentSucceeded, 25800))

		s.Require().NoError(err)
		s.Equal(shared.AuditAuctionPaid, entry.EventID)
		s.Contains(entry.Detail, auctionID.String())
		s.Equal([]cart.ItemType{cart.ItemAuction, cart.ItemConvenienceFee}, res.Handled)
		s.Equal([]cart.ItemType{cart.ItemCharity}, res.Skipped)
	})
}
