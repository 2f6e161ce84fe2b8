package repository

import (
	"context"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/infra"
	"teetime-exchange/internal/infra/repository/converter"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingSlotParams) error
	UpdateBookingSlotName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingSlotNameParams) (int64, error)
	ConfirmBookingsByPayment(ctx context.Context, db sqlc.DBTX, providerPaymentID string) (int64, error)
	MarkBookingsListed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingsListedParams) (int64, error)
	UnlistBookingsByListing(ctx context.Context, db sqlc.DBTX, listID pgtype.UUID) (int64, error)
	SetMinimumOfferPrice(ctx context.Context, db sqlc.DBTX, arg sqlc.SetMinimumOfferPriceParams) (int64, error)
	ChangeBookingOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ChangeBookingOwnerParams) (int64, error)
	MarkBookingsTransferred(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingsTransferredParams) (int64, error)
	SetBookingWeatherGuarantee(ctx context.Context, db sqlc.DBTX, arg sqlc.SetBookingWeatherGuaranteeParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) CreateSlots(ctx context.Context, tx sqlc.DBTX, slots []booking.Slot) error {
	for _, s := range slots {
		if err := r.queries.CreateBookingSlot(ctx, tx, converter.SlotToCreateParams(s)); err != nil {
			return infra.WrapRepoErr("failed to create booking slot", err)
		}
	}
	return nil
}

func (r *BookingRepository) UpdateSlotName(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, slotID, name string) (int64, error) {
	n, err := r.queries.UpdateBookingSlotName(ctx, tx, sqlc.UpdateBookingSlotNameParams{
		BookingID: bookingID,
		SlotID:    slotID,
		Name:      name,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update slot name", err)
	}
	return n, nil
}

func (r *BookingRepository) ConfirmByPayment(ctx context.Context, tx sqlc.DBTX, paymentID string) (int64, error) {
	n, err := r.queries.ConfirmBookingsByPayment(ctx, tx, paymentID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) MarkListed(ctx context.Context, tx sqlc.DBTX, ownerID, listID uuid.UUID, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.MarkBookingsListed(ctx, tx, sqlc.MarkBookingsListedParams{
		ListID:  pgconv.UUIDToPgtype(listID),
		Ids:     ids,
		OwnerID: ownerID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark bookings listed", err)
	}
	return n, nil
}

func (r *BookingRepository) UnlistByListing(ctx context.Context, tx sqlc.DBTX, listID uuid.UUID) (int64, error) {
	n, err := r.queries.UnlistBookingsByListing(ctx, tx, pgconv.UUIDToPgtype(listID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to unlist bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) SetMinimumOfferPrice(ctx context.Context, tx sqlc.DBTX, ownerID, teeTimeID uuid.UUID, price int64) (int64, error) {
	n, err := r.queries.SetMinimumOfferPrice(ctx, tx, sqlc.SetMinimumOfferPriceParams{
		OwnerID:           ownerID,
		TeeTimeID:         teeTimeID,
		MinimumOfferPrice: price,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set minimum offer price", err)
	}
	return n, nil
}

func (r *BookingRepository) ChangeOwner(ctx context.Context, tx sqlc.DBTX, fromOwnerID, toOwnerID uuid.UUID, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.ChangeBookingOwner(ctx, tx, sqlc.ChangeBookingOwnerParams{
		ToOwnerID:   toOwnerID,
		Ids:         ids,
		FromOwnerID: fromOwnerID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to change booking owner", err)
	}
	return n, nil
}

func (r *BookingRepository) MarkTransferred(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.MarkBookingsTransferred(ctx, tx, sqlc.MarkBookingsTransferredParams{
		Ids:     ids,
		OwnerID: ownerID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark bookings transferred", err)
	}
	return n, nil
}

func (r *BookingRepository) SetWeatherGuarantee(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, guaranteeID string, amount int64) error {
	err := r.queries.SetBookingWeatherGuarantee(ctx, tx, sqlc.SetBookingWeatherGuaranteeParams{
		ID:                     bookingID,
		WeatherGuaranteeID:     pgconv.OptionalText(guaranteeID),
		WeatherGuaranteeAmount: amount,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach weather guarantee", err)
	}
	return nil
}
