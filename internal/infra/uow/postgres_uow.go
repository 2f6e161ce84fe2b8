package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/cart"
	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/domain/offer"
	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/infra/readstore"
	"teetime-exchange/internal/infra/repository"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	teeTimeRepo  shared.TeeTimeRepository
	courseRepo   shared.CourseRepository
	bookingRepo  shared.BookingRepository
	listingRepo  shared.ListingRepository
	offerRepo    shared.OfferRepository
	transferRepo shared.TransferRepository
	promoRepo    shared.PromoRepository
	donationRepo shared.DonationRepository
	auditRepo    shared.AuditLogRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) TeeTimes() shared.TeeTimeRepository {
	if t.teeTimeRepo == nil {
		t.teeTimeRepo = repository.NewTeeTimeRepository(t.uow.q, t.dbtx)
	}
	return t.teeTimeRepo
}

func (t *pgTx) Courses() shared.CourseRepository {
	if t.courseRepo == nil {
		t.courseRepo = repository.NewCourseRepository(t.uow.q, t.dbtx)
	}
	return t.courseRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listingRepo == nil {
		t.listingRepo = repository.NewListingRepository(t.uow.q, t.dbtx)
	}
	return t.listingRepo
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = repository.NewOfferRepository(t.uow.q, t.dbtx)
	}
	return t.offerRepo
}

func (t *pgTx) Transfers() shared.TransferRepository {
	if t.transferRepo == nil {
		t.transferRepo = repository.NewTransferRepository(t.uow.q, t.dbtx)
	}
	return t.transferRepo
}

func (t *pgTx) Promos() shared.PromoRepository {
	if t.promoRepo == nil {
		t.promoRepo = repository.NewPromoRepository(t.uow.q, t.dbtx)
	}
	return t.promoRepo
}

func (t *pgTx) Donations() shared.DonationRepository {
	if t.donationRepo == nil {
		t.donationRepo = repository.NewDonationRepository(t.uow.q, t.dbtx)
	}
	return t.donationRepo
}

func (t *pgTx) AuditLogs() shared.AuditLogRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditLogRepository(t.uow.q, t.dbtx)
	}
	return t.auditRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads fans out to the readstores bound to one connection or transaction.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore *readstore.CatalogReadStore
	bookingStore *readstore.BookingReadStore
	marketStore  *readstore.MarketReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) market() *readstore.MarketReadStore {
	if r.marketStore == nil {
		r.marketStore = readstore.NewMarketReadStore(r.uow.q, r.dbtx)
	}
	return r.marketStore
}

func (r *commandReads) TeeTimeByID(ctx context.Context, id uuid.UUID) (*teetime.TeeTime, error) {
	return r.catalog().TeeTimeByID(ctx, id)
}

func (r *commandReads) TeeTimesForCourseDate(ctx context.Context, courseID uuid.UUID, date time.Time) ([]teetime.TeeTime, error) {
	return r.catalog().TeeTimesForCourseDate(ctx, courseID, date)
}

func (r *commandReads) CourseByID(ctx context.Context, id uuid.UUID) (*shared.CourseSnapshot, error) {
	return r.catalog().CourseByID(ctx, id)
}

func (r *commandReads) OldestIndexedCourse(ctx context.Context) (*shared.CourseSnapshot, error) {
	return r.catalog().OldestIndexedCourse(ctx)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.catalog().UserByID(ctx, id)
}

func (r *commandReads) CartByPayment(ctx context.Context, paymentID string) (*cart.Cart, error) {
	return r.bookings().CartByPayment(ctx, paymentID)
}

func (r *commandReads) CartForBooking(ctx context.Context, courseID, userID uuid.UUID, paymentID string) (*cart.Cart, error) {
	return r.bookings().CartForBooking(ctx, courseID, userID, paymentID)
}

func (r *commandReads) BookingsByIDs(ctx context.Context, ids []uuid.UUID) ([]*booking.Booking, error) {
	return r.bookings().BookingsByIDs(ctx, ids)
}

func (r *commandReads) BookingsByPayment(ctx context.Context, paymentID string) ([]*booking.Booking, error) {
	return r.bookings().BookingsByPayment(ctx, paymentID)
}

func (r *commandReads) BookingSlots(ctx context.Context, bookingID uuid.UUID) ([]booking.Slot, error) {
	return r.bookings().BookingSlots(ctx, bookingID)
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	return r.market().ListingByID(ctx, id)
}

func (r *commandReads) OfferByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.market().OfferByID(ctx, id)
}

func (r *commandReads) OfferExistsForPayment(ctx context.Context, paymentID string) (bool, error) {
	return r.market().OfferExistsForPayment(ctx, paymentID)
}

func (r *commandReads) TransferExistsForTransaction(ctx context.Context, transactionID string) (bool, error) {
	return r.market().TransferExistsForTransaction(ctx, transactionID)
}

func (r *commandReads) RefundExistsForPayment(ctx context.Context, paymentID string) (bool, error) {
	return r.market().RefundExistsForPayment(ctx, paymentID)
}

func (r *commandReads) PendingOfferCount(ctx context.Context, buyerID, courseID, excludeOfferID uuid.UUID) (int, error) {
	return r.market().PendingOfferCount(ctx, buyerID, courseID, excludeOfferID)
}

func (r *commandReads) PromoByCode(ctx context.Context, code string) (*shared.PromoSnapshot, error) {
	return r.market().PromoByCode(ctx, code)
}

func (r *commandReads) WaitlistSubscribers(ctx context.Context, courseID uuid.UUID, date time.Time, hhmm int) ([]uuid.UUID, error) {
	return r.market().WaitlistSubscribers(ctx, courseID, date, hhmm)
}
