//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/offer"
	"teetime-exchange/internal/domain/transfer"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/commands"
	"teetime-exchange/internal/usecase/shared"
	"teetime-exchange/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferLedgerSuite struct {
	suite.Suite
	h      *harness
	ledger commands.OfferLedger

	sellerID uuid.UUID
	buyerID  uuid.UUID
}

func TestOfferLedgerSuite(t *testing.T) {
	suite.Run(t, new(OfferLedgerSuite))
}

func (s *OfferLedgerSuite) SetupTest() {
	s.reset()
}

func (s *OfferLedgerSuite) SetupSubTest() {
	s.reset()
}

func (s *OfferLedgerSuite) reset() {
	s.h = newHarness(s.T())
	s.ledger = commands.NewOfferLedger(s.h.uow, s.h.gateways(), s.h.clock, s.h.logger)
	s.sellerID = uuid.New()
	s.buyerID = uuid.New()
}

func (s *OfferLedgerSuite) sellerBookings(players ...int) []*booking.Booking {
	teeTimeID, courseID := uuid.New(), uuid.New()
	out := make([]*booking.Booking, 0, len(players))
	for i, n := range players {
		out = append(out, builder.NewBookingBuilder().
			OwnedBy(s.sellerID).
			ForTeeTime(teeTimeID, courseID).
			With(func(p *booking.ReconstructParams) {
				p.PlayerCount = n
				p.TotalAmount = int64(n) * 5000
				p.ProviderBookingID = "pb-" + string(rune('a'+i))
			}).
			Build())
	}
	return out
}

func (s *OfferLedgerSuite) TestCreateOfferOnBookings() {
	s.Run("Normal case: the offer is stored and both sides are told", func() {
		bookings := s.sellerBookings(2)
		ids := []uuid.UUID{bookings[0].ID()}

		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), ids).Return(bookings, nil)
		var stored *offer.Offer
		s.h.offers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *offer.Offer) error {
				stored = o
				return nil
			})
		s.h.reads.EXPECT().PendingOfferCount(gomock.Any(), s.buyerID, bookings[0].CourseID(), gomock.Any()).Return(2, nil)

		res, err := s.ledger.CreateOfferOnBookings(context.Background(), s.buyerID, commands.CreateOfferRequest{
			BookingIDs: []uuid.UUID{ids[0], ids[0]},
			Price:      9000,
			ExpiresAt:  testNow.Add(time.Hour),
		})

		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.Equal(stored.ID(), res.OfferID)
		s.Equal(2, res.OtherPendingOffers)
		s.Equal(offer.StatusPending, stored.Status())
		s.Equal([]shared.Template{shared.TemplateOfferCreated, shared.TemplateOfferReceived}, s.h.notifier.templates())

		received, ok := s.h.notifier.find(shared.TemplateOfferReceived)
		s.Require().True(ok)
		s.Equal(s.sellerID, received.UserID)
		s.Equal("$90.00", received.Data["price"])
	})

	s.Run("Error case: a bid below the floor names the floor", func() {
		bookings := []*booking.Booking{builder.NewBookingBuilder().
			OwnedBy(s.sellerID).
			With(func(p *booking.ReconstructParams) { p.MinimumOfferPrice = 5000 }).
			Build()}
		ids := []uuid.UUID{bookings[0].ID()}

		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), ids).Return(bookings, nil)

		_, err := s.ledger.CreateOfferOnBookings(context.Background(), s.buyerID, commands.CreateOfferRequest{
			BookingIDs: ids,
			Price:      4999,
			ExpiresAt:  testNow.Add(time.Hour),
		})

		s.Require().Error(err)
		s.True(errs.Is(err, offer.ErrBelowMinimumOfferPrice))
		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal("Offer price must be at least the minimum offer price of $50.00", errs.PublicMessage(err))
		s.Empty(s.h.notifier.templates())
	})

	s.Run("Error case: zero price is refused before any read", func() {
		_, err := s.ledger.CreateOfferOnBookings(context.Background(), s.buyerID, commands.CreateOfferRequest{
			BookingIDs: []uuid.UUID{uuid.New()},
			Price:      0,
			ExpiresAt:  testNow.Add(time.Hour),
		})

		s.Require().ErrorIs(err, offer.ErrPriceNotPositive)
		s.Zero(s.h.transactions)
	})

	s.Run("Normal case: a failing pending count still creates the offer", func() {
		bookings := s.sellerBookings(1)
		ids := []uuid.UUID{bookings[0].ID()}

		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), ids).Return(bookings, nil)
		s.h.offers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.h.reads.EXPECT().PendingOfferCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))

		res, err := s.ledger.CreateOfferOnBookings(context.Background(), s.buyerID, commands.CreateOfferRequest{
			BookingIDs: ids,
			Price:      5000,
			ExpiresAt:  testNow.Add(time.Hour),
		})

		s.Require().NoError(err)
		s.Zero(res.OtherPendingOffers)
	})
}

func (s *OfferLedgerSuite) TestAcceptOffer() {
	course := shared.CourseSnapshot{ID: uuid.New(), Name: "Pine Valley", ProviderKey: "foreup"}
	buyer := shared.UserSnapshot{ID: uuid.New(), Email: "buyer@example.com", Name: "Buyer One", Handle: "buyer"}
	session := shared.ProviderSession{ProviderKey: "foreup", Token: "tok"}
	customer := &shared.ProviderCustomer{CustomerID: "cust-9", Name: "Buyer One"}

	pendingOffer := func(bookings []*booking.Booking) *offer.Offer {
		return builder.NewOfferBuilder().With(func(p *offer.ReconstructParams) {
			p.BuyerID = buyer.ID
			p.CourseID = course.ID
			p.TeeTimeID = bookings[0].TeeTimeID()
			p.BookingIDs = []uuid.UUID{bookings[0].ID(), bookings[1].ID()}
			p.Price = 15000
		}).Build()
	}

	s.Run("Normal case: bookings move to the buyer with split transfers", func() {
		bookings := s.sellerBookings(2, 2)
		o := pendingOffer(bookings)
		listingID := uuid.New()

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)
		s.h.reads.EXPECT().UserByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
		s.h.reads.EXPECT().CourseByID(gomock.Any(), course.ID).Return(&course, nil)
		s.h.provider.EXPECT().Session(gomock.Any(), course).Return(session, nil)
		s.h.provider.EXPECT().FindOrCreateCustomer(gomock.Any(), session, buyer).Return(customer, nil)
		for _, b := range bookings {
			s.h.reads.EXPECT().BookingSlots(gomock.Any(), b.ID()).Return([]booking.Slot{
				{BookingID: b.ID(), SlotID: b.ProviderBookingID() + "-1", SlotPosition: 1, Name: "Seller"},
				{BookingID: b.ID(), SlotID: b.ProviderBookingID() + "-2", SlotPosition: 2, Name: booking.GuestName},
			}, nil)
			s.h.provider.EXPECT().UpdateTeeTime(gomock.Any(), session, b.ProviderBookingID(), b.ProviderBookingID()+"-1",
				shared.SlotUpdate{CustomerID: "cust-9", Name: "Buyer One"}).Return(nil)
		}

		ids := []uuid.UUID{bookings[0].ID(), bookings[1].ID()}
		s.h.offers.EXPECT().SetStatus(gomock.Any(), gomock.Any(), o.ID(), offer.StatusAccepted).Return(int64(1), nil)
		s.h.bookings.EXPECT().ChangeOwner(gomock.Any(), gomock.Any(), s.sellerID, buyer.ID, ids).Return(int64(2), nil)
		s.h.listings.EXPECT().DeleteForBookings(gomock.Any(), gomock.Any(), ids).Return([]uuid.UUID{listingID}, nil)
		s.h.bookings.EXPECT().UnlistByListing(gomock.Any(), gomock.Any(), listingID).Return(int64(2), nil)
		var transfers []*transfer.Transfer
		s.h.transfers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, t *transfer.Transfer) error {
				transfers = append(transfers, t)
				return nil
			}).Times(2)
		s.h.bookings.EXPECT().UpdateSlotName(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "Buyer One").
			Return(int64(1), nil).Times(2)

		err := s.ledger.AcceptOffer(context.Background(), s.sellerID, o.ID())

		s.Require().NoError(err)
		s.Require().Len(transfers, 2)
		for i, t := range transfers {
			s.Equal(int64(7500), t.Amount())
			s.Equal(bookings[i].ID(), t.BookingID())
			s.Equal(s.sellerID, t.FromUserID())
			s.Equal(buyer.ID, t.ToUserID())
			s.Equal("offer:"+o.ID().String(), t.TransactionID())
			s.False(t.IsFirstHand())
		}
		s.Equal([]shared.Template{shared.TemplateOfferAccepted, shared.TemplateOfferAccepted}, s.h.notifier.templates())
	})

	s.Run("Error case: a provider failure leaves the ledger untouched", func() {
		bookings := s.sellerBookings(2, 2)
		o := pendingOffer(bookings)
		upstream := errs.Upstream("provider unavailable")

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)
		s.h.reads.EXPECT().UserByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
		s.h.reads.EXPECT().CourseByID(gomock.Any(), course.ID).Return(&course, nil)
		s.h.provider.EXPECT().Session(gomock.Any(), course).Return(shared.ProviderSession{}, upstream)

		err := s.ledger.AcceptOffer(context.Background(), s.sellerID, o.ID())

		s.Require().ErrorIs(err, upstream)
		s.Zero(s.h.transactions)
		s.Empty(s.h.notifier.templates())
	})

	leadSlot := func(b *booking.Booking) booking.Slot {
		return booking.Slot{BookingID: b.ID(), SlotID: b.ProviderBookingID() + "-1", SlotPosition: 1, CustomerID: "cust-seller", Name: "Seller"}
	}
	toBuyer := shared.SlotUpdate{CustomerID: "cust-9", Name: "Buyer One"}
	toSeller := shared.SlotUpdate{CustomerID: "cust-seller", Name: "Seller"}

	s.Run("Error case: a booking sold meanwhile aborts the transaction and restores the provider", func() {
		bookings := s.sellerBookings(2, 2)
		o := pendingOffer(bookings)

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)
		s.h.reads.EXPECT().UserByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
		s.h.reads.EXPECT().CourseByID(gomock.Any(), course.ID).Return(&course, nil)
		s.h.provider.EXPECT().Session(gomock.Any(), course).Return(session, nil)
		s.h.provider.EXPECT().FindOrCreateCustomer(gomock.Any(), session, buyer).Return(customer, nil)
		for _, b := range bookings {
			slot := leadSlot(b)
			s.h.reads.EXPECT().BookingSlots(gomock.Any(), b.ID()).Return([]booking.Slot{slot}, nil)
			gomock.InOrder(
				s.h.provider.EXPECT().UpdateTeeTime(gomock.Any(), session, b.ProviderBookingID(), slot.SlotID, toBuyer).Return(nil),
				s.h.provider.EXPECT().UpdateTeeTime(gomock.Any(), session, b.ProviderBookingID(), slot.SlotID, toSeller).Return(nil),
			)
		}
		s.h.offers.EXPECT().SetStatus(gomock.Any(), gomock.Any(), o.ID(), offer.StatusAccepted).Return(int64(1), nil)
		s.h.bookings.EXPECT().ChangeOwner(gomock.Any(), gomock.Any(), s.sellerID, buyer.ID, gomock.Any()).Return(int64(1), nil)

		err := s.ledger.AcceptOffer(context.Background(), s.sellerID, o.ID())

		s.Require().ErrorIs(err, commands.ErrBookingsChanged)
		s.Equal(1, s.h.transactions)
		s.Empty(s.h.notifier.templates())
	})

	s.Run("Error case: an offer withdrawn meanwhile puts the seller back on the lead slot", func() {
		bookings := s.sellerBookings(2, 2)
		o := pendingOffer(bookings)
		var restored []shared.SlotUpdate

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)
		s.h.reads.EXPECT().UserByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
		s.h.reads.EXPECT().CourseByID(gomock.Any(), course.ID).Return(&course, nil)
		s.h.provider.EXPECT().Session(gomock.Any(), course).Return(session, nil)
		s.h.provider.EXPECT().FindOrCreateCustomer(gomock.Any(), session, buyer).Return(customer, nil)
		for _, b := range bookings {
			s.h.reads.EXPECT().BookingSlots(gomock.Any(), b.ID()).Return([]booking.Slot{leadSlot(b)}, nil)
		}
		s.h.provider.EXPECT().UpdateTeeTime(gomock.Any(), session, gomock.Any(), gomock.Any(), toBuyer).Return(nil).Times(2)
		s.h.provider.EXPECT().UpdateTeeTime(gomock.Any(), session, gomock.Any(), gomock.Any(), toSeller).
			DoAndReturn(func(_ context.Context, _ shared.ProviderSession, _, _ string, upd shared.SlotUpdate) error {
				restored = append(restored, upd)
				return nil
			}).Times(2)
		s.h.offers.EXPECT().SetStatus(gomock.Any(), gomock.Any(), o.ID(), offer.StatusAccepted).Return(int64(0), nil)

		err := s.ledger.AcceptOffer(context.Background(), s.sellerID, o.ID())

		s.Require().ErrorIs(err, offer.ErrNotPending)
		s.Equal([]shared.SlotUpdate{toSeller, toSeller}, restored)
		s.Empty(s.h.notifier.templates())
	})

	s.Run("Error case: a provider failure midway restores the slots already moved", func() {
		bookings := s.sellerBookings(2, 2)
		o := pendingOffer(bookings)
		upstream := errs.Upstream("provider unavailable")
		first, second := leadSlot(bookings[0]), leadSlot(bookings[1])

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)
		s.h.reads.EXPECT().UserByID(gomock.Any(), buyer.ID).Return(&buyer, nil)
		s.h.reads.EXPECT().CourseByID(gomock.Any(), course.ID).Return(&course, nil)
		s.h.provider.EXPECT().Session(gomock.Any(), course).Return(session, nil)
		s.h.provider.EXPECT().FindOrCreateCustomer(gomock.Any(), session, buyer).Return(customer, nil)
		s.h.reads.EXPECT().BookingSlots(gomock.Any(), bookings[0].ID()).Return([]booking.Slot{first}, nil)
		s.h.reads.EXPECT().BookingSlots(gomock.Any(), bookings[1].ID()).Return([]booking.Slot{second}, nil)
		gomock.InOrder(
			s.h.provider.EXPECT().UpdateTeeTime(gomock.Any(), session, bookings[0].ProviderBookingID(), first.SlotID, toBuyer).Return(nil),
			s.h.provider.EXPECT().UpdateTeeTime(gomock.Any(), session, bookings[1].ProviderBookingID(), second.SlotID, toBuyer).Return(upstream),
			s.h.provider.EXPECT().UpdateTeeTime(gomock.Any(), session, bookings[0].ProviderBookingID(), first.SlotID, toSeller).Return(nil),
		)

		err := s.ledger.AcceptOffer(context.Background(), s.sellerID, o.ID())

		s.Require().ErrorIs(err, upstream)
		s.Zero(s.h.transactions)
	})

	s.Run("Error case: only the owner may accept", func() {
		bookings := s.sellerBookings(2, 2)
		o := pendingOffer(bookings)

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)

		err := s.ledger.AcceptOffer(context.Background(), uuid.New(), o.ID())

		s.Require().ErrorIs(err, offer.ErrNotParticipant)
	})

	s.Run("Error case: an expired offer cannot be accepted", func() {
		bookings := s.sellerBookings(2, 2)
		o := builder.NewOfferBuilder().With(func(p *offer.ReconstructParams) {
			p.BookingIDs = []uuid.UUID{bookings[0].ID(), bookings[1].ID()}
			p.ExpiresAt = testNow.Add(-time.Hour)
		}).Build()

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)

		err := s.ledger.AcceptOffer(context.Background(), s.sellerID, o.ID())

		s.Require().ErrorIs(err, offer.ErrOfferExpired)
	})

	s.Run("Error case: a missing offer maps to offer not found", func() {
		id := uuid.New()
		s.h.reads.EXPECT().OfferByID(gomock.Any(), id).Return(nil, errs.NotFound("offer row missing"))

		err := s.ledger.AcceptOffer(context.Background(), s.sellerID, id)

		s.Require().ErrorIs(err, offer.ErrOfferNotFound)
	})
}

func (s *OfferLedgerSuite) TestRejectAndCancel() {
	s.Run("Normal case: the owner rejects and the buyer is told", func() {
		bookings := s.sellerBookings(2)
		o := builder.NewOfferBuilder().With(func(p *offer.ReconstructParams) {
			p.BuyerID = s.buyerID
			p.BookingIDs = []uuid.UUID{bookings[0].ID()}
		}).Build()

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)
		s.h.offers.EXPECT().SetStatus(gomock.Any(), gomock.Any(), o.ID(), offer.StatusRejected).Return(int64(1), nil)

		err := s.ledger.RejectOffer(context.Background(), s.sellerID, o.ID())

		s.Require().NoError(err)
		n, ok := s.h.notifier.find(shared.TemplateOfferRejected)
		s.Require().True(ok)
		s.Equal(s.buyerID, n.UserID)
	})

	s.Run("Error case: a concurrent response wins the status update", func() {
		bookings := s.sellerBookings(2)
		o := builder.NewOfferBuilder().With(func(p *offer.ReconstructParams) {
			p.BookingIDs = []uuid.UUID{bookings[0].ID()}
		}).Build()

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), o.BookingIDs()).Return(bookings, nil)
		s.h.offers.EXPECT().SetStatus(gomock.Any(), gomock.Any(), o.ID(), offer.StatusRejected).Return(int64(0), nil)

		err := s.ledger.RejectOffer(context.Background(), s.sellerID, o.ID())

		s.Require().ErrorIs(err, offer.ErrNotPending)
	})

	s.Run("Normal case: the buyer withdraws a pending offer", func() {
		o := builder.NewOfferBuilder().With(func(p *offer.ReconstructParams) { p.BuyerID = s.buyerID }).Build()

		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)
		s.h.offers.EXPECT().Cancel(gomock.Any(), gomock.Any(), o.ID()).Return(int64(1), nil)

		s.Require().NoError(s.ledger.CancelOfferOnBooking(context.Background(), s.buyerID, o.ID()))
	})

	s.Run("Error case: nobody else can withdraw it", func() {
		o := builder.NewOfferBuilder().Build()
		s.h.reads.EXPECT().OfferByID(gomock.Any(), o.ID()).Return(o, nil)

		err := s.ledger.CancelOfferOnBooking(context.Background(), s.buyerID, o.ID())

		s.Require().ErrorIs(err, offer.ErrNotParticipant)
	})
}
