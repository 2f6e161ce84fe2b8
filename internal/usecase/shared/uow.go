package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/cart"
	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/domain/offer"
	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/domain/transfer"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one ReadCommitted transaction, retried on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction for validation before writes.
	CommandReads() CommandReads
}

type Tx interface {
	TeeTimes() TeeTimeRepository
	Courses() CourseRepository
	Bookings() BookingRepository
	Listings() ListingRepository
	Offers() OfferRepository
	Transfers() TransferRepository
	Promos() PromoRepository
	Donations() DonationRepository
	AuditLogs() AuditLogRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	TeeTimeByID(ctx context.Context, id uuid.UUID) (*teetime.TeeTime, error)
	TeeTimesForCourseDate(ctx context.Context, courseID uuid.UUID, date time.Time) ([]teetime.TeeTime, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*CourseSnapshot, error)
	OldestIndexedCourse(ctx context.Context) (*CourseSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	CartByPayment(ctx context.Context, paymentID string) (*cart.Cart, error)
	CartForBooking(ctx context.Context, courseID, userID uuid.UUID, paymentID string) (*cart.Cart, error)
	BookingsByIDs(ctx context.Context, ids []uuid.UUID) ([]*booking.Booking, error)
	BookingsByPayment(ctx context.Context, paymentID string) ([]*booking.Booking, error)
	BookingSlots(ctx context.Context, bookingID uuid.UUID) ([]booking.Slot, error)
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	OfferByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	OfferExistsForPayment(ctx context.Context, paymentID string) (bool, error)
	TransferExistsForTransaction(ctx context.Context, transactionID string) (bool, error)
	// RefundExistsForPayment reports whether a REFUND_INITIATED audit row exists.
	RefundExistsForPayment(ctx context.Context, paymentID string) (bool, error)
	PendingOfferCount(ctx context.Context, buyerID, courseID, excludeOfferID uuid.UUID) (int, error)
	PromoByCode(ctx context.Context, code string) (*PromoSnapshot, error)
	WaitlistSubscribers(ctx context.Context, courseID uuid.UUID, date time.Time, hhmm int) ([]uuid.UUID, error)
}

// Conditional writes return the affected row count; callers compare it with
// the number of rows they expected to change.

type TeeTimeRepository interface {
	ReserveFirstHandSpots(ctx context.Context, tx sqlc.DBTX, teeTimeID uuid.UUID, players int) (int64, error)
	Insert(ctx context.Context, tx sqlc.DBTX, tt teetime.TeeTime) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, tt teetime.TeeTime) error
	MarkUnavailable(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

type CourseRepository interface {
	MarkIndexed(ctx context.Context, tx sqlc.DBTX, courseID uuid.UUID, at time.Time) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	CreateSlots(ctx context.Context, tx sqlc.DBTX, slots []booking.Slot) error
	UpdateSlotName(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, slotID, name string) (int64, error)
	ConfirmByPayment(ctx context.Context, tx sqlc.DBTX, paymentID string) (int64, error)
	MarkListed(ctx context.Context, tx sqlc.DBTX, ownerID, listID uuid.UUID, ids []uuid.UUID) (int64, error)
	UnlistByListing(ctx context.Context, tx sqlc.DBTX, listID uuid.UUID) (int64, error)
	SetMinimumOfferPrice(ctx context.Context, tx sqlc.DBTX, ownerID, teeTimeID uuid.UUID, price int64) (int64, error)
	ChangeOwner(ctx context.Context, tx sqlc.DBTX, fromOwnerID, toOwnerID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkTransferred(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, ids []uuid.UUID) (int64, error)
	SetWeatherGuarantee(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, guaranteeID string, amount int64) error
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	Cancel(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, cancelledBy *uuid.UUID) (int64, error)
	Supersede(ctx context.Context, tx sqlc.DBTX, listingID, supersededBy, actorID uuid.UUID) (int64, error)
	DeleteForBookings(ctx context.Context, tx sqlc.DBTX, bookingIDs []uuid.UUID) ([]uuid.UUID, error)
}

type OfferRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error
	SetStatus(ctx context.Context, tx sqlc.DBTX, offerID uuid.UUID, status offer.Status) (int64, error)
	Cancel(ctx context.Context, tx sqlc.DBTX, offerID uuid.UUID) (int64, error)
}

type TransferRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *transfer.Transfer) error
}

type PromoRepository interface {
	Apply(ctx context.Context, tx sqlc.DBTX, promoID, userID uuid.UUID, paymentID string) (int64, error)
}

type DonationRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, d Donation) (int64, error)
}

type AuditLogRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, e AuditEntry) error
}
