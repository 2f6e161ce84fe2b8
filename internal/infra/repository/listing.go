package repository

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/repository/listing_mock.go -package=repositorymock

import (
	"context"

	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/infra"
	"teetime-exchange/internal/infra/repository/converter"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) error
	CancelListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelListingParams) (int64, error)
	SupersedeListing(ctx context.Context, db sqlc.DBTX, arg sqlc.SupersedeListingParams) (int64, error)
	DeleteListingsForBookings(ctx context.Context, db sqlc.DBTX, bookingIds []uuid.UUID) ([]uuid.UUID, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	if err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l)); err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

// Cancel soft-deletes an active listing. A nil cancelledBy records a system
// cancellation, e.g. when the listing sells.
func (r *ListingRepository) Cancel(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, cancelledBy *uuid.UUID) (int64, error) {
	n, err := r.queries.CancelListing(ctx, tx, sqlc.CancelListingParams{
		ID:                listingID,
		CancelledByUserID: pgconv.UUIDPtrToPgtype(cancelledBy),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel listing", err)
	}
	return n, nil
}

func (r *ListingRepository) Supersede(ctx context.Context, tx sqlc.DBTX, listingID, supersededBy, actorID uuid.UUID) (int64, error) {
	n, err := r.queries.SupersedeListing(ctx, tx, sqlc.SupersedeListingParams{
		ID:           listingID,
		SupersededBy: pgconv.UUIDToPgtype(supersededBy),
		UserID:       actorID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to supersede listing", err)
	}
	return n, nil
}

func (r *ListingRepository) DeleteForBookings(ctx context.Context, tx sqlc.DBTX, bookingIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.DeleteListingsForBookings(ctx, tx, bookingIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete listings for bookings", err)
	}
	return ids, nil
}
