package repository

//go:generate mockgen -source=offer.go -destination=../../../tests/mock/repository/offer_mock.go -package=repositorymock

import (
	"context"

	"teetime-exchange/internal/domain/offer"
	"teetime-exchange/internal/infra"
	"teetime-exchange/internal/infra/repository/converter"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferParams) error
	CreateUserBookingOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserBookingOfferParams) error
	SetOfferStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.SetOfferStatusParams) (int64, error)
	SetUserBookingOfferStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.SetUserBookingOfferStatusParams) error
	CancelOffer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CancelUserBookingOffers(ctx context.Context, db sqlc.DBTX, offerID uuid.UUID) error
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      sqlc.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db sqlc.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the offer and one join row per target booking.
func (r *OfferRepository) Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error {
	if err := r.queries.CreateOffer(ctx, tx, converter.OfferToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	for _, bookingID := range o.BookingIDs() {
		err := r.queries.CreateUserBookingOffer(ctx, tx, sqlc.CreateUserBookingOfferParams{
			OfferID:   o.ID(),
			BookingID: bookingID,
			Status:    string(o.Status()),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to link offer to booking", err)
		}
	}
	return nil
}

// SetStatus only moves offers that are still pending.
func (r *OfferRepository) SetStatus(ctx context.Context, tx sqlc.DBTX, offerID uuid.UUID, status offer.Status) (int64, error) {
	n, err := r.queries.SetOfferStatus(ctx, tx, sqlc.SetOfferStatusParams{ID: offerID, Status: string(status)})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set offer status", err)
	}
	if n == 0 {
		return 0, nil
	}
	err = r.queries.SetUserBookingOfferStatus(ctx, tx, sqlc.SetUserBookingOfferStatusParams{OfferID: offerID, Status: string(status)})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set offer booking status", err)
	}
	return n, nil
}

func (r *OfferRepository) Cancel(ctx context.Context, tx sqlc.DBTX, offerID uuid.UUID) (int64, error) {
	n, err := r.queries.CancelOffer(ctx, tx, offerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel offer", err)
	}
	if n == 0 {
		return 0, nil
	}
	if err = r.queries.CancelUserBookingOffers(ctx, tx, offerID); err != nil {
		return 0, infra.WrapRepoErr("failed to cancel offer bookings", err)
	}
	return n, nil
}
