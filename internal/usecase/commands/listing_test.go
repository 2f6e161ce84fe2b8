//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/usecase/commands"
	"teetime-exchange/internal/usecase/shared"
	"teetime-exchange/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingLedgerSuite struct {
	suite.Suite
	h      *harness
	ledger commands.ListingLedger

	sellerID uuid.UUID
	teeTime  teetime.TeeTime
}

func TestListingLedgerSuite(t *testing.T) {
	suite.Run(t, new(ListingLedgerSuite))
}

func (s *ListingLedgerSuite) SetupTest() {
	s.reset()
}

func (s *ListingLedgerSuite) SetupSubTest() {
	s.reset()
}

func (s *ListingLedgerSuite) reset() {
	s.h = newHarness(s.T())
	s.ledger = commands.NewListingLedger(s.h.uow, s.h.gateways(), s.h.clock, s.h.logger)
	s.sellerID = uuid.New()
	s.teeTime = builder.NewTeeTimeBuilder().Build()
}

func (s *ListingLedgerSuite) ownedBookings(n int) ([]*booking.Booking, []uuid.UUID) {
	bs := make([]*booking.Booking, 0, n)
	ids := make([]uuid.UUID, 0, n)
	for range n {
		b := builder.NewBookingBuilder().
			OwnedBy(s.sellerID).
			ForTeeTime(s.teeTime.ID, s.teeTime.CourseID).
			With(func(p *booking.ReconstructParams) { p.PlayerCount = 1 }).
			Build()
		bs = append(bs, b)
		ids = append(ids, b.ID())
	}
	return bs, ids
}

func (s *ListingLedgerSuite) TestCreateListingForBookings() {
	s.Run("Normal case: four bookings are listed and waitlisted users are told", func() {
		bookings, ids := s.ownedBookings(4)
		waiting := uuid.New()

		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), ids).Return(bookings, nil)
		s.h.reads.EXPECT().TeeTimeByID(gomock.Any(), s.teeTime.ID).Return(&s.teeTime, nil)
		var created *listing.Listing
		s.h.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, l *listing.Listing) error {
				created = l
				return nil
			})
		s.h.bookings.EXPECT().MarkListed(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any(), ids).Return(int64(4), nil)
		s.h.reads.EXPECT().WaitlistSubscribers(gomock.Any(), s.teeTime.CourseID, s.teeTime.Date, s.teeTime.Time).
			Return([]uuid.UUID{s.sellerID, waiting}, nil)

		id, err := s.ledger.CreateListingForBookings(context.Background(), s.sellerID, commands.ListingRequest{
			ListPrice:  6000,
			BookingIDs: ids,
			EndTime:    testNow.Add(24 * time.Hour),
			Slots:      3,
		})

		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Equal(created.ID(), id)
		s.Equal(3, created.Slots())
		s.Equal(int64(6000), created.ListPrice())
		s.Equal([]shared.Template{shared.TemplateListingCreated, shared.TemplateWaitlistMatch}, s.h.notifier.templates())

		match, ok := s.h.notifier.find(shared.TemplateWaitlistMatch)
		s.Require().True(ok)
		s.Equal(waiting, match.UserID)
		s.Equal("$60.00", match.Data["list_price"])
	})

	s.Run("Error case: five bookings exceed the cap before any read", func() {
		_, ids := s.ownedBookings(5)

		_, err := s.ledger.CreateListingForBookings(context.Background(), s.sellerID, commands.ListingRequest{
			ListPrice:  6000,
			BookingIDs: ids,
			EndTime:    testNow.Add(time.Hour),
			Slots:      1,
		})

		s.Require().ErrorIs(err, listing.ErrTooManyBookings)
		s.Zero(s.h.transactions)
	})

	s.Run("Error case: an end time in the past writes nothing", func() {
		_, ids := s.ownedBookings(1)

		_, err := s.ledger.CreateListingForBookings(context.Background(), s.sellerID, commands.ListingRequest{
			ListPrice:  6000,
			BookingIDs: ids,
			EndTime:    testNow.Add(-time.Minute),
			Slots:      1,
		})

		s.Require().ErrorIs(err, listing.ErrEndTimeInPast)
		s.Zero(s.h.transactions)
		s.Empty(s.h.notifier.templates())
	})

	s.Run("Error case: a concurrent listing makes the conditional update fall short", func() {
		bookings, ids := s.ownedBookings(2)

		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), ids).Return(bookings, nil)
		s.h.reads.EXPECT().TeeTimeByID(gomock.Any(), s.teeTime.ID).Return(&s.teeTime, nil)
		s.h.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.h.bookings.EXPECT().MarkListed(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any(), ids).Return(int64(1), nil)

		_, err := s.ledger.CreateListingForBookings(context.Background(), s.sellerID, commands.ListingRequest{
			ListPrice:  6000,
			BookingIDs: ids,
			EndTime:    testNow.Add(time.Hour),
			Slots:      2,
		})

		s.Require().ErrorIs(err, listing.ErrAlreadyListed)
		s.Empty(s.h.notifier.templates())
	})

	s.Run("Error case: someone else's booking cannot be listed", func() {
		bookings, ids := s.ownedBookings(1)

		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), ids).Return(bookings, nil)
		s.h.reads.EXPECT().TeeTimeByID(gomock.Any(), s.teeTime.ID).Return(&s.teeTime, nil)

		_, err := s.ledger.CreateListingForBookings(context.Background(), uuid.New(), commands.ListingRequest{
			ListPrice:  6000,
			BookingIDs: ids,
			EndTime:    testNow.Add(time.Hour),
			Slots:      1,
		})

		s.Require().ErrorIs(err, listing.ErrNotOwner)
	})
}

func (s *ListingLedgerSuite) TestCancelListing() {
	s.Run("Normal case: cancelling unlists the bookings", func() {
		l := builder.NewListingBuilder().With(func(p *listing.ReconstructParams) { p.UserID = s.sellerID }).Build()

		s.h.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.h.listings.EXPECT().Cancel(gomock.Any(), gomock.Any(), l.ID(), &s.sellerID).Return(int64(1), nil)
		s.h.bookings.EXPECT().UnlistByListing(gomock.Any(), gomock.Any(), l.ID()).Return(int64(1), nil)

		err := s.ledger.CancelListing(context.Background(), s.sellerID, l.ID())

		s.Require().NoError(err)
		n, ok := s.h.notifier.find(shared.TemplateListingCancelled)
		s.Require().True(ok)
		s.Equal("$60.00", n.Data["list_price"])
	})

	s.Run("Error case: only the seller can cancel", func() {
		l := builder.NewListingBuilder().Build()
		s.h.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)

		err := s.ledger.CancelListing(context.Background(), s.sellerID, l.ID())

		s.Require().ErrorIs(err, listing.ErrNotOwner)
	})

	s.Run("Error case: losing the race to another cancel reports it cancelled", func() {
		l := builder.NewListingBuilder().With(func(p *listing.ReconstructParams) { p.UserID = s.sellerID }).Build()

		s.h.reads.EXPECT().ListingByID(gomock.Any(), l.ID()).Return(l, nil)
		s.h.listings.EXPECT().Cancel(gomock.Any(), gomock.Any(), l.ID(), &s.sellerID).Return(int64(0), nil)

		err := s.ledger.CancelListing(context.Background(), s.sellerID, l.ID())

		s.Require().ErrorIs(err, listing.ErrListingCancelled)
	})
}

func (s *ListingLedgerSuite) TestUpdateListing() {
	s.Run("Normal case: the replacement supersedes the current version", func() {
		bookings, ids := s.ownedBookings(2)
		current := builder.NewListingBuilder().With(func(p *listing.ReconstructParams) {
			p.UserID = s.sellerID
			p.TeeTimeID = s.teeTime.ID
			p.BookingIDs = ids
		}).Build()
		currentID := current.ID()
		for i := range bookings {
			bookings[i] = builder.NewBookingBuilder().
				OwnedBy(s.sellerID).
				ForTeeTime(s.teeTime.ID, s.teeTime.CourseID).
				With(func(p *booking.ReconstructParams) {
					p.ID = ids[i]
					p.PlayerCount = 1
					p.IsListed = true
					p.ListID = &currentID
				}).
				Build()
		}

		s.h.reads.EXPECT().ListingByID(gomock.Any(), currentID).Return(current, nil)
		s.h.reads.EXPECT().BookingsByIDs(gomock.Any(), ids).Return(bookings, nil)
		s.h.reads.EXPECT().TeeTimeByID(gomock.Any(), s.teeTime.ID).Return(&s.teeTime, nil)
		var replacement *listing.Listing
		s.h.listings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, l *listing.Listing) error {
				replacement = l
				return nil
			})
		s.h.listings.EXPECT().Supersede(gomock.Any(), gomock.Any(), currentID, gomock.Any(), s.sellerID).Return(int64(1), nil)
		s.h.bookings.EXPECT().UnlistByListing(gomock.Any(), gomock.Any(), currentID).Return(int64(2), nil)
		s.h.bookings.EXPECT().MarkListed(gomock.Any(), gomock.Any(), s.sellerID, gomock.Any(), ids).Return(int64(2), nil)

		newID, err := s.ledger.UpdateListing(context.Background(), s.sellerID, currentID, commands.ListingRequest{
			ListPrice:  8000,
			BookingIDs: ids,
			EndTime:    testNow.Add(time.Hour),
			Slots:      2,
		})

		s.Require().NoError(err)
		s.Require().NotNil(replacement)
		s.Equal(replacement.ID(), newID)
		s.NotEqual(currentID, newID)
		s.Equal(int64(8000), replacement.ListPrice())
	})
}

func (s *ListingLedgerSuite) TestSetMinimumOfferPrice() {
	s.Run("Normal case: zero clears the floor", func() {
		s.h.bookings.EXPECT().SetMinimumOfferPrice(gomock.Any(), gomock.Any(), s.sellerID, s.teeTime.ID, int64(0)).Return(int64(2), nil)

		n, err := s.ledger.SetMinimumOfferPrice(context.Background(), s.sellerID, s.teeTime.ID, 0)

		s.Require().NoError(err)
		s.Equal(int64(2), n)
	})

	s.Run("Error case: negative prices are refused", func() {
		_, err := s.ledger.SetMinimumOfferPrice(context.Background(), s.sellerID, s.teeTime.ID, -1)

		require.ErrorIs(s.T(), err, commands.ErrNegativeMinimumOfferPrice)
		s.Zero(s.h.transactions)
	})

	s.Run("Error case: no owned bookings on the tee time", func() {
		s.h.bookings.EXPECT().SetMinimumOfferPrice(gomock.Any(), gomock.Any(), s.sellerID, s.teeTime.ID, int64(5000)).Return(int64(0), nil)

		_, err := s.ledger.SetMinimumOfferPrice(context.Background(), s.sellerID, s.teeTime.ID, 5000)

		s.Require().ErrorIs(err, commands.ErrNoBookingsForTeeTime)
	})
}
