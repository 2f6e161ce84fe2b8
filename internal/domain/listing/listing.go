package listing

import (
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxBookingsPerListing = 4

var (
	ErrEndTimeInPast       = errs.Validation("End time cannot be before current time")
	ErrNoBookings          = errs.Validation("No bookings provided")
	ErrTooManyBookings     = errs.Validation("Cannot list more than 4 bookings.")
	ErrInvalidPrice        = errs.Validation("Listing price must be higher than 0")
	ErrInvalidSlots        = errs.Validation("Invalid number of slots")
	ErrBookingNotFound     = errs.NotFound("One or more bookings not found")
	ErrNotOwner            = errs.Unauthorized("UNAUTHORIZED")
	ErrAlreadyListed       = errs.Validation("One or more bookings from this tee time is already listed")
	ErrMixedTeeTimes       = errs.Validation("All bookings must be for the same tee time")
	ErrInvalidProviderDate = errs.Validation("Invalid tee time date")
	ErrListingNotFound     = errs.NotFound("Listing not found")
	ErrListingCancelled    = errs.Validation("Listing has already been cancelled")
)

// Draft is the caller's request for a new listing version.
type Draft struct {
	UserID     uuid.UUID
	ListPrice  int64 // cents per player
	BookingIDs []uuid.UUID
	EndTime    time.Time
	Slots      int
}

// Listing is immutable once created; updates supersede it with a new version.
type Listing struct {
	id           uuid.UUID
	userID       uuid.UUID
	teeTimeID    uuid.UUID
	courseID     uuid.UUID
	listPrice    int64
	slots        int
	endTime      time.Time
	bookingIDs   []uuid.UUID
	isDeleted    bool
	cancelledBy  *uuid.UUID
	supersededBy *uuid.UUID
	createdAt    time.Time
}

// Normalize drops duplicate booking ids, keeping first-seen order.
func (d Draft) Normalize() Draft {
	seen := make(map[uuid.UUID]struct{}, len(d.BookingIDs))
	ids := make([]uuid.UUID, 0, len(d.BookingIDs))
	for _, id := range d.BookingIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	d.BookingIDs = ids
	return d
}

// ValidateDraft runs the checks that need no stored state.
func ValidateDraft(now time.Time, d Draft) error {
	if !d.EndTime.After(now) {
		return ErrEndTimeInPast
	}
	if len(d.BookingIDs) == 0 {
		return ErrNoBookings
	}
	if len(d.BookingIDs) > MaxBookingsPerListing {
		return ErrTooManyBookings
	}
	if d.ListPrice <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// New validates the draft against the stored bookings and tee time.
// Bookings already listed under replacing are accepted, which is how an
// update re-lists the same bookings.
func New(now time.Time, d Draft, bookings []*booking.Booking, tt teetime.TeeTime, replacing *uuid.UUID) (*Listing, error) {
	d = d.Normalize()
	if err := ValidateDraft(now, d); err != nil {
		return nil, err
	}
	if len(bookings) != len(d.BookingIDs) {
		return nil, ErrBookingNotFound
	}

	players := 0
	for _, b := range bookings {
		if !b.IsOwnedBy(d.UserID) {
			return nil, ErrNotOwner
		}
		if b.TeeTimeID() != tt.ID {
			return nil, ErrMixedTeeTimes
		}
		if b.IsListed() && !sameID(b.ListID(), replacing) {
			return nil, ErrAlreadyListed
		}
		players += b.PlayerCount()
	}
	if _, err := tt.ParsedProviderDate(); err != nil {
		return nil, ErrInvalidProviderDate
	}
	if d.Slots <= 0 || d.Slots > players {
		return nil, ErrInvalidSlots
	}

	return &Listing{
		id:         uuid.New(),
		userID:     d.UserID,
		teeTimeID:  tt.ID,
		courseID:   tt.CourseID,
		listPrice:  d.ListPrice,
		slots:      d.Slots,
		endTime:    d.EndTime,
		bookingIDs: d.BookingIDs,
		createdAt:  now,
	}, nil
}

func sameID(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}

type ReconstructParams struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TeeTimeID    uuid.UUID
	CourseID     uuid.UUID
	ListPrice    int64
	Slots        int
	EndTime      time.Time
	BookingIDs   []uuid.UUID
	IsDeleted    bool
	CancelledBy  *uuid.UUID
	SupersededBy *uuid.UUID
	CreatedAt    time.Time
}

func Reconstruct(p ReconstructParams) *Listing {
	return &Listing{
		id:           p.ID,
		userID:       p.UserID,
		teeTimeID:    p.TeeTimeID,
		courseID:     p.CourseID,
		listPrice:    p.ListPrice,
		slots:        p.Slots,
		endTime:      p.EndTime,
		bookingIDs:   p.BookingIDs,
		isDeleted:    p.IsDeleted,
		cancelledBy:  p.CancelledBy,
		supersededBy: p.SupersededBy,
		createdAt:    p.CreatedAt,
	}
}

// CheckCancellable verifies actorID may retire this listing.
func (l *Listing) CheckCancellable(actorID uuid.UUID) error {
	if l.userID != actorID {
		return ErrNotOwner
	}
	if l.isDeleted {
		return ErrListingCancelled
	}
	return nil
}

func (l *Listing) IsActive(now time.Time) bool {
	return !l.isDeleted && l.endTime.After(now)
}

// TotalPrice is what a buyer pays for every listed slot.
func (l *Listing) TotalPrice() int64 {
	return l.listPrice * int64(l.slots)
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) UserID() uuid.UUID        { return l.userID }
func (l *Listing) TeeTimeID() uuid.UUID     { return l.teeTimeID }
func (l *Listing) CourseID() uuid.UUID      { return l.courseID }
func (l *Listing) ListPrice() int64         { return l.listPrice }
func (l *Listing) Slots() int               { return l.slots }
func (l *Listing) EndTime() time.Time       { return l.endTime }
func (l *Listing) BookingIDs() []uuid.UUID  { return l.bookingIDs }
func (l *Listing) IsDeleted() bool          { return l.isDeleted }
func (l *Listing) CancelledBy() *uuid.UUID  { return l.cancelledBy }
func (l *Listing) SupersededBy() *uuid.UUID { return l.supersededBy }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
