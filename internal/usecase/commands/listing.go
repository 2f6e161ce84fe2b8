package commands

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/commands/listing_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNegativeMinimumOfferPrice = errs.Validation("Minimum offer price cannot be negative")
	ErrNoBookingsForTeeTime      = errs.NotFound("No bookings found for this tee time")
)

type ListingRequest struct {
	ListPrice  int64
	BookingIDs []uuid.UUID
	EndTime    time.Time
	Slots      int
}

type ListingLedger interface {
	CreateListingForBookings(ctx context.Context, userID uuid.UUID, req ListingRequest) (uuid.UUID, error)
	CancelListing(ctx context.Context, userID, listingID uuid.UUID) error
	UpdateListing(ctx context.Context, userID, listingID uuid.UUID, req ListingRequest) (uuid.UUID, error)
	SetMinimumOfferPrice(ctx context.Context, userID, teeTimeID uuid.UUID, price int64) (int64, error)
}

type listingLedger struct {
	uow    shared.UnitOfWork
	gw     Gateways
	clock  clock.Clock
	logger *slog.Logger
}

func NewListingLedger(uow shared.UnitOfWork, gw Gateways, clk clock.Clock, logger *slog.Logger) ListingLedger {
	return &listingLedger{uow: uow, gw: gw, clock: clk, logger: logger}
}

func (r ListingRequest) draft(userID uuid.UUID) listing.Draft {
	return listing.Draft{
		UserID:     userID,
		ListPrice:  r.ListPrice,
		BookingIDs: r.BookingIDs,
		EndTime:    r.EndTime,
		Slots:      r.Slots,
	}.Normalize()
}

func (l *listingLedger) CreateListingForBookings(ctx context.Context, userID uuid.UUID, req ListingRequest) (uuid.UUID, error) {
	now := l.clock.Now()
	draft := req.draft(userID)
	if err := listing.ValidateDraft(now, draft); err != nil {
		return uuid.Nil, err
	}

	var created *listing.Listing
	var tt *teetime.TeeTime
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, tt, err = l.buildListing(ctx, tx, now, draft, nil)
		if err != nil {
			return err
		}
		if err = tx.Listings().Create(ctx, tx.DB(), created); err != nil {
			return err
		}
		return l.markListed(ctx, tx, userID, created)
	})
	if err != nil {
		return uuid.Nil, err
	}

	l.logger.InfoContext(ctx, "listing created",
		slog.String("listing_id", created.ID().String()),
		slog.String("user_id", userID.String()),
		slog.Int("bookings", len(created.BookingIDs())))
	notify(ctx, l.logger, l.gw.Notifier, shared.TemplateListingCreated, userID, listingData(created, tt))
	l.notifyWaitlist(ctx, created, tt)
	return created.ID(), nil
}

func (l *listingLedger) CancelListing(ctx context.Context, userID, listingID uuid.UUID) error {
	var cancelled *listing.Listing
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().ListingByID(ctx, listingID)
		if err != nil {
			return notFoundAs(err, listing.ErrListingNotFound)
		}
		if err = existing.CheckCancellable(userID); err != nil {
			return err
		}
		n, err := tx.Listings().Cancel(ctx, tx.DB(), listingID, &userID)
		if err != nil {
			return err
		}
		if n == 0 {
			return listing.ErrListingCancelled
		}
		if _, err = tx.Bookings().UnlistByListing(ctx, tx.DB(), listingID); err != nil {
			return err
		}
		cancelled = existing
		return nil
	})
	if err != nil {
		return err
	}

	notify(ctx, l.logger, l.gw.Notifier, shared.TemplateListingCancelled, userID, map[string]string{
		"listing_id": listingID.String(),
		"slots":      strconv.Itoa(cancelled.Slots()),
		"list_price": usd(cancelled.ListPrice()),
	})
	return nil
}

// UpdateListing retires the current version and creates its replacement in
// one transaction. The old row keeps superseded_by pointing at the new one.
func (l *listingLedger) UpdateListing(ctx context.Context, userID, listingID uuid.UUID, req ListingRequest) (uuid.UUID, error) {
	now := l.clock.Now()
	draft := req.draft(userID)
	if err := listing.ValidateDraft(now, draft); err != nil {
		return uuid.Nil, err
	}

	var replacement *listing.Listing
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ListingByID(ctx, listingID)
		if err != nil {
			return notFoundAs(err, listing.ErrListingNotFound)
		}
		if err = current.CheckCancellable(userID); err != nil {
			return err
		}
		currentID := current.ID()
		replacement, _, err = l.buildListing(ctx, tx, now, draft, &currentID)
		if err != nil {
			return err
		}
		if err = tx.Listings().Create(ctx, tx.DB(), replacement); err != nil {
			return err
		}
		n, err := tx.Listings().Supersede(ctx, tx.DB(), currentID, replacement.ID(), userID)
		if err != nil {
			return err
		}
		if n == 0 {
			return listing.ErrListingCancelled
		}
		if _, err = tx.Bookings().UnlistByListing(ctx, tx.DB(), currentID); err != nil {
			return err
		}
		return l.markListed(ctx, tx, userID, replacement)
	})
	if err != nil {
		return uuid.Nil, err
	}

	l.logger.InfoContext(ctx, "listing updated",
		slog.String("listing_id", listingID.String()),
		slog.String("superseded_by", replacement.ID().String()))
	return replacement.ID(), nil
}

func (l *listingLedger) SetMinimumOfferPrice(ctx context.Context, userID, teeTimeID uuid.UUID, price int64) (int64, error) {
	if price < 0 {
		return 0, ErrNegativeMinimumOfferPrice
	}
	var updated int64
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().SetMinimumOfferPrice(ctx, tx.DB(), userID, teeTimeID, price)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoBookingsForTeeTime
		}
		updated = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (l *listingLedger) buildListing(ctx context.Context, tx shared.Tx, now time.Time, draft listing.Draft, replacing *uuid.UUID) (*listing.Listing, *teetime.TeeTime, error) {
	bookings, err := tx.Reads().BookingsByIDs(ctx, draft.BookingIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(bookings) == 0 {
		return nil, nil, listing.ErrBookingNotFound
	}
	tt, err := tx.Reads().TeeTimeByID(ctx, bookings[0].TeeTimeID())
	if err != nil {
		return nil, nil, err
	}
	created, err := listing.New(now, draft, bookings, *tt, replacing)
	if err != nil {
		return nil, nil, err
	}
	return created, tt, nil
}

// markListed is the authoritative guard: the conditional update only touches
// unlisted bookings still owned by the seller.
func (l *listingLedger) markListed(ctx context.Context, tx shared.Tx, userID uuid.UUID, created *listing.Listing) error {
	n, err := tx.Bookings().MarkListed(ctx, tx.DB(), userID, created.ID(), created.BookingIDs())
	if err != nil {
		return err
	}
	if n != int64(len(created.BookingIDs())) {
		return listing.ErrAlreadyListed
	}
	return nil
}

func (l *listingLedger) notifyWaitlist(ctx context.Context, created *listing.Listing, tt *teetime.TeeTime) {
	subscribers, err := l.uow.CommandReads().WaitlistSubscribers(ctx, tt.CourseID, tt.Date, tt.Time)
	if err != nil {
		l.logger.WarnContext(ctx, "waitlist lookup failed",
			slog.String("listing_id", created.ID().String()),
			slog.String("error", err.Error()))
		return
	}
	data := listingData(created, tt)
	for _, userID := range subscribers {
		if userID == created.UserID() {
			continue
		}
		notify(ctx, l.logger, l.gw.Notifier, shared.TemplateWaitlistMatch, userID, data)
	}
}

func listingData(l *listing.Listing, tt *teetime.TeeTime) map[string]string {
	return map[string]string{
		"listing_id": l.ID().String(),
		"tee_time":   tt.ProviderDate,
		"slots":      strconv.Itoa(l.Slots()),
		"list_price": usd(l.ListPrice()),
		"ends_at":    l.EndTime().Format(time.RFC3339),
	}
}

// notFoundAs swaps a store not-found for the domain's user-facing error.
func notFoundAs(err, target error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return target
	}
	return err
}

func bookingIDs(bs []*booking.Booking) []uuid.UUID {
	ids := make([]uuid.UUID, len(bs))
	for i, b := range bs {
		ids[i] = b.ID()
	}
	return ids
}
