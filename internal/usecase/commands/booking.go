package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingNotActive = errs.Validation("Listing is no longer active")
	ErrOwnListing       = errs.Validation("You cannot buy your own listing")
	ErrBookingNotFound  = errs.NotFound("Booking not found")
	ErrNotBookingOwner  = errs.Unauthorized("UNAUTHORIZED")
	ErrSlotNotFound     = errs.Validation("One or more slots do not belong to this booking")
	ErrNoSlotNames      = errs.Validation("No names provided")
	ErrMissingPaymentID = errs.Validation("Payment id is required")
)

type SlotName struct {
	SlotID string
	Name   string
}

type SecondHandQuote struct {
	ListingID  uuid.UUID
	TeeTimeID  uuid.UUID
	CourseID   uuid.UUID
	SellerID   uuid.UUID
	ListPrice  int64
	Slots      int
	TotalPrice int64
	TeeTime    string
	EndTime    string
}

// BookingService is the API-facing entry point for reservations and
// per-booking edits.
type BookingService interface {
	ReserveBooking(ctx context.Context, req TokenizeBookingRequest) (*TokenizeResult, error)
	ReserveSecondHandBooking(ctx context.Context, userID, listingID uuid.UUID) (*SecondHandQuote, error)
	ConfirmBooking(ctx context.Context, paymentID string) (int64, error)
	UpdateNamesOnBookings(ctx context.Context, userID, bookingID uuid.UUID, names []SlotName) error
}

type bookingService struct {
	uow    shared.UnitOfWork
	gw     Gateways
	engine TokenizationEngine
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingService(uow shared.UnitOfWork, gw Gateways, engine TokenizationEngine, clk clock.Clock, logger *slog.Logger) BookingService {
	return &bookingService{uow: uow, gw: gw, engine: engine, clock: clk, logger: logger}
}

func (s *bookingService) ReserveBooking(ctx context.Context, req TokenizeBookingRequest) (*TokenizeResult, error) {
	if req.PaymentID == "" {
		return nil, ErrMissingPaymentID
	}
	return s.engine.TokenizeBooking(ctx, req)
}

func (s *bookingService) ReserveSecondHandBooking(ctx context.Context, userID, listingID uuid.UUID) (*SecondHandQuote, error) {
	reads := s.uow.CommandReads()
	l, err := reads.ListingByID(ctx, listingID)
	if err != nil {
		return nil, notFoundAs(err, listing.ErrListingNotFound)
	}
	if !l.IsActive(s.clock.Now()) {
		return nil, ErrListingNotActive
	}
	if l.UserID() == userID {
		return nil, ErrOwnListing
	}
	tt, err := reads.TeeTimeByID(ctx, l.TeeTimeID())
	if err != nil {
		return nil, err
	}
	return &SecondHandQuote{
		ListingID:  l.ID(),
		TeeTimeID:  l.TeeTimeID(),
		CourseID:   l.CourseID(),
		SellerID:   l.UserID(),
		ListPrice:  l.ListPrice(),
		Slots:      l.Slots(),
		TotalPrice: l.TotalPrice(),
		TeeTime:    tt.ProviderDate,
		EndTime:    l.EndTime().UTC().Format(time.RFC3339),
	}, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, paymentID string) (int64, error) {
	if paymentID == "" {
		return 0, ErrMissingPaymentID
	}
	return s.engine.ConfirmBooking(ctx, paymentID)
}

// UpdateNamesOnBookings renames player slots. The provider is updated first and
// the stored names follow in one transaction.
func (s *bookingService) UpdateNamesOnBookings(ctx context.Context, userID, bookingID uuid.UUID, names []SlotName) error {
	if len(names) == 0 {
		return ErrNoSlotNames
	}
	reads := s.uow.CommandReads()
	found, err := reads.BookingsByIDs(ctx, []uuid.UUID{bookingID})
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return ErrBookingNotFound
	}
	b := found[0]
	if !b.IsOwnedBy(userID) {
		return ErrNotBookingOwner
	}

	slots, err := reads.BookingSlots(ctx, bookingID)
	if err != nil {
		return err
	}
	bySlotID := make(map[string]booking.Slot, len(slots))
	for _, slot := range slots {
		bySlotID[slot.SlotID] = slot
	}
	for _, n := range names {
		if _, ok := bySlotID[n.SlotID]; !ok {
			return ErrSlotNotFound
		}
	}

	course, err := reads.CourseByID(ctx, b.CourseID())
	if err != nil {
		return err
	}
	session, err := s.gw.Provider.Session(ctx, *course)
	if err != nil {
		return err
	}
	for _, n := range names {
		upd := shared.SlotUpdate{CustomerID: bySlotID[n.SlotID].CustomerID, Name: n.Name}
		if err = s.gw.Provider.UpdateTeeTime(ctx, session, b.ProviderBookingID(), n.SlotID, upd); err != nil {
			return err
		}
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, n := range names {
			if _, err := tx.Bookings().UpdateSlotName(ctx, tx.DB(), bookingID, n.SlotID, n.Name); err != nil {
				return err
			}
		}
		return nil
	})
}
