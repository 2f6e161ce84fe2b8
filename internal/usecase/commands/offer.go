package commands

//go:generate mockgen -source=offer.go -destination=../../../tests/mock/commands/offer_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/offer"
	"teetime-exchange/internal/domain/transfer"
	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingsChanged = errs.Validation("One or more bookings changed hands while the offer was processed")

type CreateOfferRequest struct {
	BookingIDs []uuid.UUID
	Price      int64
	ExpiresAt  time.Time
	PaymentID  *string
}

type CreateOfferResult struct {
	OfferID uuid.UUID
	// OtherPendingOffers counts the buyer's other pending offers on the course.
	OtherPendingOffers int
}

type OfferLedger interface {
	CreateOfferOnBookings(ctx context.Context, buyerID uuid.UUID, req CreateOfferRequest) (*CreateOfferResult, error)
	CancelOfferOnBooking(ctx context.Context, userID, offerID uuid.UUID) error
	AcceptOffer(ctx context.Context, userID, offerID uuid.UUID) error
	RejectOffer(ctx context.Context, userID, offerID uuid.UUID) error
}

type offerLedger struct {
	uow    shared.UnitOfWork
	gw     Gateways
	clock  clock.Clock
	logger *slog.Logger
}

func NewOfferLedger(uow shared.UnitOfWork, gw Gateways, clk clock.Clock, logger *slog.Logger) OfferLedger {
	return &offerLedger{uow: uow, gw: gw, clock: clk, logger: logger}
}

func (l *offerLedger) CreateOfferOnBookings(ctx context.Context, buyerID uuid.UUID, req CreateOfferRequest) (*CreateOfferResult, error) {
	if err := offer.ValidatePrice(req.Price); err != nil {
		return nil, err
	}
	ids := uniqueIDs(req.BookingIDs)
	if len(ids) == 0 {
		return nil, offer.ErrNoBookings
	}

	now := l.clock.Now()
	var created *offer.Offer
	var sellerID uuid.UUID
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookings, err := tx.Reads().BookingsByIDs(ctx, ids)
		if err != nil {
			return err
		}
		created, err = offer.New(now, buyerID, req.Price, req.ExpiresAt, bookings, len(ids), req.PaymentID)
		if err != nil {
			return err
		}
		sellerID = bookings[0].OwnerID()
		return tx.Offers().Create(ctx, tx.DB(), created)
	})
	if err != nil {
		return nil, err
	}

	others, err := l.uow.CommandReads().PendingOfferCount(ctx, buyerID, created.CourseID(), created.ID())
	if err != nil {
		l.logger.WarnContext(ctx, "pending offer count failed",
			slog.String("offer_id", created.ID().String()),
			slog.String("error", err.Error()))
		others = 0
	}

	data := offerData(created)
	notify(ctx, l.logger, l.gw.Notifier, shared.TemplateOfferCreated, buyerID, data)
	notify(ctx, l.logger, l.gw.Notifier, shared.TemplateOfferReceived, sellerID, data)
	return &CreateOfferResult{OfferID: created.ID(), OtherPendingOffers: others}, nil
}

func (l *offerLedger) CancelOfferOnBooking(ctx context.Context, userID, offerID uuid.UUID) error {
	return l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Reads().OfferByID(ctx, offerID)
		if err != nil {
			return notFoundAs(err, offer.ErrOfferNotFound)
		}
		if err = o.Cancel(userID); err != nil {
			return err
		}
		n, err := tx.Offers().Cancel(ctx, tx.DB(), offerID)
		if err != nil {
			return err
		}
		if n == 0 {
			return offer.ErrNotPending
		}
		return nil
	})
}

// AcceptOffer moves the bookings to the buyer. The provider is updated first;
// internal state changes only after it succeeded.
func (l *offerLedger) AcceptOffer(ctx context.Context, userID, offerID uuid.UUID) error {
	now := l.clock.Now()
	reads := l.uow.CommandReads()

	o, err := reads.OfferByID(ctx, offerID)
	if err != nil {
		return notFoundAs(err, offer.ErrOfferNotFound)
	}
	bookings, err := reads.BookingsByIDs(ctx, o.BookingIDs())
	if err != nil {
		return err
	}
	if err = o.Accept(now, userID, bookings); err != nil {
		return err
	}

	buyer, err := reads.UserByID(ctx, o.BuyerID())
	if err != nil {
		return err
	}
	course, err := reads.CourseByID(ctx, o.CourseID())
	if err != nil {
		return err
	}
	move, err := l.moveProviderBookings(ctx, *course, *buyer, bookings)
	if err != nil {
		return err
	}

	txID := offerTransactionID(o)
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Offers().SetStatus(ctx, tx.DB(), offerID, offer.StatusAccepted)
		if err != nil {
			return err
		}
		if n == 0 {
			return offer.ErrNotPending
		}

		ids := bookingIDs(bookings)
		n, err = tx.Bookings().ChangeOwner(ctx, tx.DB(), userID, o.BuyerID(), ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return ErrBookingsChanged
		}

		listings, err := tx.Listings().DeleteForBookings(ctx, tx.DB(), ids)
		if err != nil {
			return err
		}
		for _, listingID := range listings {
			if _, err = tx.Bookings().UnlistByListing(ctx, tx.DB(), listingID); err != nil {
				return err
			}
		}

		amounts, err := booking.SplitAmount(o.Price(), playerCounts(bookings))
		if err != nil {
			return errs.Wrap(err, "split offer price")
		}
		for i, b := range bookings {
			t := transfer.New(transfer.Params{
				Amount:         amounts[i],
				BookingID:      b.ID(),
				TransactionID:  txID,
				FromUserID:     userID,
				ToUserID:       o.BuyerID(),
				CourseID:       o.CourseID(),
				PurchasedPrice: b.TotalAmount(),
			}, now)
			if err = tx.Transfers().Create(ctx, tx.DB(), t); err != nil {
				return err
			}
		}
		for _, m := range move.slots {
			if _, err = tx.Bookings().UpdateSlotName(ctx, tx.DB(), m.after.BookingID, m.after.SlotID, m.after.Name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.restoreProviderSlots(ctx, move)
		return err
	}

	l.logger.InfoContext(ctx, "offer accepted",
		slog.String("offer_id", offerID.String()),
		slog.String("buyer_id", o.BuyerID().String()),
		slog.Int("bookings", len(bookings)))
	data := offerData(o)
	notify(ctx, l.logger, l.gw.Notifier, shared.TemplateOfferAccepted, o.BuyerID(), data)
	notify(ctx, l.logger, l.gw.Notifier, shared.TemplateOfferAccepted, userID, data)
	return nil
}

func (l *offerLedger) RejectOffer(ctx context.Context, userID, offerID uuid.UUID) error {
	var rejected *offer.Offer
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Reads().OfferByID(ctx, offerID)
		if err != nil {
			return notFoundAs(err, offer.ErrOfferNotFound)
		}
		bookings, err := tx.Reads().BookingsByIDs(ctx, o.BookingIDs())
		if err != nil {
			return err
		}
		if err = o.Reject(userID, bookings); err != nil {
			return err
		}
		n, err := tx.Offers().SetStatus(ctx, tx.DB(), offerID, offer.StatusRejected)
		if err != nil {
			return err
		}
		if n == 0 {
			return offer.ErrNotPending
		}
		rejected = o
		return nil
	})
	if err != nil {
		return err
	}
	notify(ctx, l.logger, l.gw.Notifier, shared.TemplateOfferRejected, rejected.BuyerID(), offerData(rejected))
	return nil
}

// providerMove records the lead slots rewritten at the provider so they can
// be put back when the acceptance does not commit.
type providerMove struct {
	session shared.ProviderSession
	slots   []slotMove
}

type slotMove struct {
	providerBookingID string
	before            booking.Slot
	after             booking.Slot
}

// moveProviderBookings puts the buyer on the lead slot of every booking. The
// returned move carries the slot names to store once the transaction commits.
func (l *offerLedger) moveProviderBookings(ctx context.Context, course shared.CourseSnapshot, buyer shared.UserSnapshot, bookings []*booking.Booking) (*providerMove, error) {
	session, err := l.gw.Provider.Session(ctx, course)
	if err != nil {
		return nil, err
	}
	customer, err := l.gw.Provider.FindOrCreateCustomer(ctx, session, buyer)
	if err != nil {
		return nil, err
	}

	reads := l.uow.CommandReads()
	move := &providerMove{session: session}
	for _, b := range bookings {
		slots, err := reads.BookingSlots(ctx, b.ID())
		if err != nil {
			l.restoreProviderSlots(ctx, move)
			return nil, err
		}
		for _, slot := range slots {
			if slot.SlotPosition != 1 {
				continue
			}
			upd := shared.SlotUpdate{CustomerID: customer.CustomerID, Name: customer.Name}
			if err = l.gw.Provider.UpdateTeeTime(ctx, session, b.ProviderBookingID(), slot.SlotID, upd); err != nil {
				l.restoreProviderSlots(ctx, move)
				return nil, err
			}
			after := slot
			after.CustomerID = customer.CustomerID
			after.Name = customer.Name
			move.slots = append(move.slots, slotMove{providerBookingID: b.ProviderBookingID(), before: slot, after: after})
		}
	}
	return move, nil
}

// restoreProviderSlots puts the seller back on every moved slot. Failures are
// logged; the seller still owns the booking internally.
func (l *offerLedger) restoreProviderSlots(ctx context.Context, move *providerMove) {
	for _, m := range move.slots {
		upd := shared.SlotUpdate{CustomerID: m.before.CustomerID, Name: m.before.Name}
		if err := l.gw.Provider.UpdateTeeTime(ctx, move.session, m.providerBookingID, m.before.SlotID, upd); err != nil {
			l.logger.WarnContext(ctx, "provider slot restore failed",
				slog.String("provider_booking_id", m.providerBookingID),
				slog.String("slot_id", m.before.SlotID),
				slog.String("error", err.Error()))
		}
	}
}

func offerTransactionID(o *offer.Offer) string {
	if p := o.PaymentID(); p != nil && *p != "" {
		return *p
	}
	return "offer:" + o.ID().String()
}

func offerData(o *offer.Offer) map[string]string {
	return map[string]string{
		"offer_id":   o.ID().String(),
		"price":      usd(o.Price()),
		"bookings":   strconv.Itoa(len(o.BookingIDs())),
		"expires_at": o.ExpiresAt().Format(time.RFC3339),
	}
}

func playerCounts(bs []*booking.Booking) []int {
	counts := make([]int, len(bs))
	for i, b := range bs {
		counts[i] = b.PlayerCount()
	}
	return counts
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
