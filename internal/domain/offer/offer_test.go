//go:build unit

package offer_test

import (
	"testing"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/offer"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

func targets(owner, teeTime uuid.UUID, floors ...int64) []*booking.Booking {
	course := uuid.New()
	out := make([]*booking.Booking, 0, len(floors))
	for _, floor := range floors {
		out = append(out, builder.NewBookingBuilder().
			OwnedBy(owner).
			ForTeeTime(teeTime, course).
			With(func(p *booking.ReconstructParams) { p.MinimumOfferPrice = floor }).
			Build())
	}
	return out
}

func TestNew(t *testing.T) {
	buyer, seller, teeTime := uuid.New(), uuid.New(), uuid.New()
	expires := now.Add(24 * time.Hour)

	t.Run("creates a pending offer", func(t *testing.T) {
		bs := targets(seller, teeTime, 10000, 12000)
		o, err := offer.New(now, buyer, 12000, expires, bs, 2, nil)
		require.NoError(t, err)

		assert.Equal(t, offer.StatusPending, o.Status())
		assert.True(t, o.IsPending())
		assert.Equal(t, teeTime, o.TeeTimeID())
		assert.Equal(t, []uuid.UUID{bs[0].ID(), bs[1].ID()}, o.BookingIDs())
	})

	t.Run("zero price", func(t *testing.T) {
		_, err := offer.New(now, buyer, 0, expires, targets(seller, teeTime, 0), 1, nil)
		require.ErrorIs(t, err, offer.ErrPriceNotPositive)
		assert.Equal(t, "Offer price must be higher than 0", errs.PublicMessage(err))
	})

	t.Run("below the highest floor", func(t *testing.T) {
		_, err := offer.New(now, buyer, 11999, expires, targets(seller, teeTime, 10000, 12000), 2, nil)
		require.Error(t, err)
		assert.True(t, errs.Is(err, offer.ErrBelowMinimumOfferPrice))
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, "Offer price must be at least the minimum offer price of $120.00", errs.PublicMessage(err))
	})

	t.Run("mixed tee times", func(t *testing.T) {
		bs := append(targets(seller, teeTime, 0), targets(seller, uuid.New(), 0)...)
		_, err := offer.New(now, buyer, 100, expires, bs, 2, nil)
		assert.ErrorIs(t, err, offer.ErrMixedTeeTimes)
	})

	t.Run("multiple owners", func(t *testing.T) {
		bs := append(targets(seller, teeTime, 0), targets(uuid.New(), teeTime, 0)...)
		_, err := offer.New(now, buyer, 100, expires, bs, 2, nil)
		assert.ErrorIs(t, err, offer.ErrMultipleOwners)
	})

	t.Run("own booking", func(t *testing.T) {
		_, err := offer.New(now, seller, 100, expires, targets(seller, teeTime, 0), 1, nil)
		assert.ErrorIs(t, err, offer.ErrOwnBooking)
	})

	t.Run("expiry in the past", func(t *testing.T) {
		_, err := offer.New(now, buyer, 100, now, targets(seller, teeTime, 0), 1, nil)
		assert.ErrorIs(t, err, offer.ErrExpiryInPast)
	})

	t.Run("missing and transferred bookings", func(t *testing.T) {
		_, err := offer.New(now, buyer, 100, expires, targets(seller, teeTime, 0), 2, nil)
		assert.ErrorIs(t, err, offer.ErrBookingNotFound)

		gone := builder.NewBookingBuilder().OwnedBy(seller).
			With(func(p *booking.ReconstructParams) { p.Status = booking.StatusTransferred }).Build()
		_, err = offer.New(now, buyer, 100, expires, []*booking.Booking{gone}, 1, nil)
		assert.ErrorIs(t, err, offer.ErrBookingUnavailable)
	})
}

func TestTransitions(t *testing.T) {
	seller := uuid.New()
	build := func() (*offer.Offer, []*booking.Booking) {
		bs := targets(seller, uuid.New(), 0)
		o := builder.NewOfferBuilder().With(func(p *offer.ReconstructParams) {
			p.BookingIDs = []uuid.UUID{bs[0].ID()}
		}).Build()
		return o, bs
	}

	t.Run("owner accepts", func(t *testing.T) {
		o, bs := build()
		require.NoError(t, o.Accept(now, seller, bs))
		assert.Equal(t, offer.StatusAccepted, o.Status())
		assert.ErrorIs(t, o.Accept(now, seller, bs), offer.ErrNotPending)
	})

	t.Run("only the owner may respond", func(t *testing.T) {
		o, bs := build()
		assert.ErrorIs(t, o.Accept(now, uuid.New(), bs), offer.ErrNotParticipant)
		assert.ErrorIs(t, o.Reject(o.BuyerID(), bs), offer.ErrNotParticipant)
	})

	t.Run("expired offers cannot be accepted", func(t *testing.T) {
		o, bs := build()
		assert.ErrorIs(t, o.Accept(o.ExpiresAt(), seller, bs), offer.ErrOfferExpired)
	})

	t.Run("owner rejects", func(t *testing.T) {
		o, bs := build()
		require.NoError(t, o.Reject(seller, bs))
		assert.Equal(t, offer.StatusRejected, o.Status())
	})

	t.Run("buyer cancels", func(t *testing.T) {
		o, _ := build()
		assert.ErrorIs(t, o.Cancel(seller), offer.ErrNotParticipant)
		require.NoError(t, o.Cancel(o.BuyerID()))
		assert.True(t, o.IsDeleted())
		assert.ErrorIs(t, o.Cancel(o.BuyerID()), offer.ErrNotPending)
	})
}
