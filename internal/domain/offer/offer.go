package offer

import (
	"fmt"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/money"
	"teetime-exchange/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

var (
	ErrPriceNotPositive = errs.Validation("Offer price must be higher than 0")
	// ErrBelowMinimumOfferPrice marks floor violations; the message carries the floor.
	ErrBelowMinimumOfferPrice = errs.New("offer below minimum offer price")
	ErrNoBookings             = errs.Validation("No bookings provided")
	ErrBookingNotFound        = errs.NotFound("One or more bookings not found")
	ErrBookingUnavailable     = errs.Validation("One or more bookings are no longer available")
	ErrMixedTeeTimes          = errs.Validation("All bookings must be for the same tee time")
	ErrMultipleOwners         = errs.Validation("All bookings must belong to the same owner")
	ErrOwnBooking             = errs.Validation("You cannot make an offer on your own booking")
	ErrExpiryInPast           = errs.Validation("Offer expiration must be in the future")
	ErrOfferNotFound          = errs.NotFound("Offer not found")
	ErrNotParticipant         = errs.Unauthorized("UNAUTHORIZED")
	ErrNotPending             = errs.Validation("Offer is no longer pending")
	ErrOfferExpired           = errs.Validation("Offer has expired")
)

func belowMinimum(floor int64) error {
	msg := fmt.Sprintf("Offer price must be at least the minimum offer price of %s", money.FormatCents(floor))
	return errs.Mark(errs.Validation(msg), ErrBelowMinimumOfferPrice)
}

type Offer struct {
	id         uuid.UUID
	buyerID    uuid.UUID
	courseID   uuid.UUID
	teeTimeID  uuid.UUID
	price      int64
	expiresAt  time.Time
	status     Status
	isDeleted  bool
	paymentID  *string
	bookingIDs []uuid.UUID
	createdAt  time.Time
}

func ValidatePrice(price int64) error {
	if price <= 0 {
		return ErrPriceNotPositive
	}
	return nil
}

// New validates a bid against its target bookings. All targets must share
// one tee time and one owner, and price must reach the highest floor.
func New(now time.Time, buyerID uuid.UUID, price int64, expiresAt time.Time, targets []*booking.Booking, requested int, paymentID *string) (*Offer, error) {
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}
	if requested == 0 {
		return nil, ErrNoBookings
	}
	if len(targets) != requested {
		return nil, ErrBookingNotFound
	}
	if !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}

	first := targets[0]
	var floor int64
	ids := make([]uuid.UUID, 0, len(targets))
	for _, b := range targets {
		if !b.Status().IsOwnable() {
			return nil, ErrBookingUnavailable
		}
		if b.TeeTimeID() != first.TeeTimeID() {
			return nil, ErrMixedTeeTimes
		}
		if b.OwnerID() != first.OwnerID() {
			return nil, ErrMultipleOwners
		}
		if b.OwnerID() == buyerID {
			return nil, ErrOwnBooking
		}
		floor = max(floor, b.MinimumOfferPrice())
		ids = append(ids, b.ID())
	}
	if price < floor {
		return nil, belowMinimum(floor)
	}

	return &Offer{
		id:         uuid.New(),
		buyerID:    buyerID,
		courseID:   first.CourseID(),
		teeTimeID:  first.TeeTimeID(),
		price:      price,
		expiresAt:  expiresAt,
		status:     StatusPending,
		paymentID:  paymentID,
		bookingIDs: ids,
		createdAt:  now,
	}, nil
}

type ReconstructParams struct {
	ID         uuid.UUID
	BuyerID    uuid.UUID
	CourseID   uuid.UUID
	TeeTimeID  uuid.UUID
	Price      int64
	ExpiresAt  time.Time
	Status     Status
	IsDeleted  bool
	PaymentID  *string
	BookingIDs []uuid.UUID
	CreatedAt  time.Time
}

func Reconstruct(p ReconstructParams) *Offer {
	return &Offer{
		id:         p.ID,
		buyerID:    p.BuyerID,
		courseID:   p.CourseID,
		teeTimeID:  p.TeeTimeID,
		price:      p.Price,
		expiresAt:  p.ExpiresAt,
		status:     p.Status,
		isDeleted:  p.IsDeleted,
		paymentID:  p.PaymentID,
		bookingIDs: p.BookingIDs,
		createdAt:  p.CreatedAt,
	}
}

func (o *Offer) IsPending() bool {
	return o.status == StatusPending && !o.isDeleted
}

// Cancel soft-deletes a pending offer on behalf of its buyer.
func (o *Offer) Cancel(actorID uuid.UUID) error {
	if o.buyerID != actorID {
		return ErrNotParticipant
	}
	if !o.IsPending() {
		return ErrNotPending
	}
	o.isDeleted = true
	return nil
}

// Accept moves a pending offer to ACCEPTED when actorID owns every target.
func (o *Offer) Accept(now time.Time, actorID uuid.UUID, targets []*booking.Booking) error {
	if err := o.checkResponder(actorID, targets); err != nil {
		return err
	}
	if !o.expiresAt.After(now) {
		return ErrOfferExpired
	}
	o.status = StatusAccepted
	return nil
}

// Reject moves a pending offer to REJECTED when actorID owns every target.
func (o *Offer) Reject(actorID uuid.UUID, targets []*booking.Booking) error {
	if err := o.checkResponder(actorID, targets); err != nil {
		return err
	}
	o.status = StatusRejected
	return nil
}

func (o *Offer) checkResponder(actorID uuid.UUID, targets []*booking.Booking) error {
	if len(targets) != len(o.bookingIDs) {
		return ErrBookingNotFound
	}
	for _, b := range targets {
		if !b.IsOwnedBy(actorID) {
			return ErrNotParticipant
		}
	}
	if !o.IsPending() {
		return ErrNotPending
	}
	return nil
}

func (o *Offer) ID() uuid.UUID           { return o.id }
func (o *Offer) BuyerID() uuid.UUID      { return o.buyerID }
func (o *Offer) CourseID() uuid.UUID     { return o.courseID }
func (o *Offer) TeeTimeID() uuid.UUID    { return o.teeTimeID }
func (o *Offer) Price() int64            { return o.price }
func (o *Offer) ExpiresAt() time.Time    { return o.expiresAt }
func (o *Offer) Status() Status          { return o.status }
func (o *Offer) IsDeleted() bool         { return o.isDeleted }
func (o *Offer) PaymentID() *string      { return o.paymentID }
func (o *Offer) BookingIDs() []uuid.UUID { return o.bookingIDs }
func (o *Offer) CreatedAt() time.Time    { return o.createdAt }
