package readstore

import (
	"context"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/cart"
	"teetime-exchange/internal/infra"
	"teetime-exchange/internal/infra/repository/converter"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookingsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Booking, error)
	ListBookingsByPayment(ctx context.Context, db sqlc.DBTX, providerPaymentID string) ([]sqlc.Booking, error)
	ListBookingSlots(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingSlot, error)
	GetCartByPayment(ctx context.Context, db sqlc.DBTX, paymentID string) (sqlc.CustomerCart, error)
	GetCartForBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartForBookingParams) (sqlc.CustomerCart, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// BookingsByIDs returns the bookings that exist; callers compare lengths.
func (r *BookingReadStore) BookingsByIDs(ctx context.Context, ids []uuid.UUID) ([]*booking.Booking, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListBookingsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by ids", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) BookingsByPayment(ctx context.Context, paymentID string) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByPayment(ctx, r.db, paymentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by payment", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) BookingSlots(ctx context.Context, bookingID uuid.UUID) ([]booking.Slot, error) {
	rows, err := r.queries.ListBookingSlots(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking slots", err)
	}
	out := make([]booking.Slot, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.SlotFromRow(row))
	}
	return out, nil
}

func (r *BookingReadStore) CartByPayment(ctx context.Context, paymentID string) (*cart.Cart, error) {
	row, err := r.queries.GetCartByPayment(ctx, r.db, paymentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart by payment", err)
	}
	c, err := converter.CartFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart", err)
	}
	return c, nil
}

func (r *BookingReadStore) CartForBooking(ctx context.Context, courseID, userID uuid.UUID, paymentID string) (*cart.Cart, error) {
	row, err := r.queries.GetCartForBooking(ctx, r.db, sqlc.GetCartForBookingParams{
		CourseID:  courseID,
		UserID:    userID,
		PaymentID: paymentID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart for booking", err)
	}
	c, err := converter.CartFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart", err)
	}
	return c, nil
}
