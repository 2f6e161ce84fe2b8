package readstore

import (
	"context"
	"time"

	"teetime-exchange/internal/domain/transfer"
	"teetime-exchange/internal/infra"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"
	"teetime-exchange/internal/usecase/queries"

	"github.com/google/uuid"
)

type MarketplaceViewQueries interface {
	ListTransfersForUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransfersForUserFirstPageParams) ([]sqlc.ListTransfersForUserFirstPageRow, error)
	ListTransfersForUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransfersForUserKeysetParams) ([]sqlc.ListTransfersForUserKeysetRow, error)
	ListOwnedBookings(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.ListOwnedBookingsRow, error)
	ListActiveListingsForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveListingsForUserParams) ([]sqlc.ListActiveListingsForUserRow, error)
	GetBookingOwner(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	ListOffersForBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListOffersForBookingRow, error)
	ListOffersSentBy(ctx context.Context, db sqlc.DBTX, buyerID uuid.UUID) ([]sqlc.ListOffersSentByRow, error)
	ListOffersReceivedBy(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.ListOffersReceivedByRow, error)
}

type MarketplaceReadStore struct {
	queries MarketplaceViewQueries
	db      sqlc.DBTX
}

func NewMarketplaceReadStore(queries MarketplaceViewQueries, db sqlc.DBTX) *MarketplaceReadStore {
	return &MarketplaceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MarketplaceReadStore) TransfersForUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListTransfersForUserFirstPage(ctx, r.db, sqlc.ListTransfersForUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transfers first page", err)
	}
	out := make([]*queries.TransactionView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTransactionView(sqlc.ListTransfersForUserKeysetRow(row)))
	}
	return out, nil
}

func (r *MarketplaceReadStore) TransfersForUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListTransfersForUserKeyset(ctx, r.db, sqlc.ListTransfersForUserKeysetParams{
		UserID:        userID,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transfers keyset", err)
	}
	out := make([]*queries.TransactionView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTransactionView(row))
	}
	return out, nil
}

func (r *MarketplaceReadStore) OwnedBookings(ctx context.Context, userID uuid.UUID) ([]*queries.OwnedBookingView, error) {
	rows, err := r.queries.ListOwnedBookings(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned bookings", err)
	}
	out := make([]*queries.OwnedBookingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.OwnedBookingView{
			ID:                 row.ID,
			TeeTimeID:          row.TeeTimeID,
			CourseID:           row.CourseID,
			CourseName:         row.CourseName,
			TeeTime:            row.ProviderDate,
			PlayerCount:        int(row.PlayerCount),
			TotalAmount:        row.TotalAmount,
			Status:             row.Status,
			IsListed:           row.IsListed,
			ListID:             pgconv.UUIDPtrFromPgtype(row.ListID),
			MinimumOfferPrice:  row.MinimumOfferPrice,
			WeatherGuaranteeID: pgconv.StringPtrFromPgtype(row.WeatherGuaranteeID),
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *MarketplaceReadStore) ActiveListingsForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*queries.ListedTeeTimeView, error) {
	rows, err := r.queries.ListActiveListingsForUser(ctx, r.db, sqlc.ListActiveListingsForUserParams{
		UserID:  userID,
		EndTime: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active listings", err)
	}
	out := make([]*queries.ListedTeeTimeView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.ListedTeeTimeView{
			ListingID:  row.ID,
			TeeTimeID:  row.TeeTimeID,
			CourseID:   row.CourseID,
			CourseName: row.CourseName,
			TeeTime:    row.ProviderDate,
			ListPrice:  row.ListPrice,
			Slots:      int(row.Slots),
			EndTime:    pgconv.TimeFromPgtype(row.EndTime),
			BookingIDs: row.BookingIds,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *MarketplaceReadStore) BookingOwner(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error) {
	owner, err := r.queries.GetBookingOwner(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to get booking owner", err)
	}
	return owner, nil
}

func (r *MarketplaceReadStore) OffersForBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListOffersForBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers for booking", err)
	}
	out := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOfferView(row))
	}
	return out, nil
}

func (r *MarketplaceReadStore) OffersSentBy(ctx context.Context, userID uuid.UUID) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListOffersSentBy(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sent offers", err)
	}
	out := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOfferView(sqlc.ListOffersForBookingRow(row)))
	}
	return out, nil
}

func (r *MarketplaceReadStore) OffersReceivedBy(ctx context.Context, userID uuid.UUID) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListOffersReceivedBy(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list received offers", err)
	}
	out := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOfferView(sqlc.ListOffersForBookingRow(row)))
	}
	return out, nil
}

func toTransactionView(row sqlc.ListTransfersForUserKeysetRow) *queries.TransactionView {
	return &queries.TransactionView{
		ID:             row.ID,
		TransactionID:  row.TransactionID,
		BookingID:      row.BookingID,
		TeeTimeID:      row.TeeTimeID,
		CourseID:       row.CourseID,
		CourseName:     row.CourseName,
		TeeTime:        row.ProviderDate,
		FromUserID:     row.FromUserID,
		ToUserID:       row.ToUserID,
		Amount:         row.Amount,
		PurchasedPrice: row.PurchasedPrice,
		FirstHand:      row.FromUserID == transfer.PlatformSellerID,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toOfferView(row sqlc.ListOffersForBookingRow) *queries.OfferView {
	return &queries.OfferView{
		ID:          row.ID,
		BuyerID:     row.BuyerID,
		BuyerHandle: row.BuyerHandle,
		CourseID:    row.CourseID,
		CourseName:  row.CourseName,
		TeeTimeID:   row.TeeTimeID,
		TeeTime:     row.ProviderDate,
		Price:       row.Price,
		Status:      row.Status,
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
		BookingIDs:  row.BookingIds,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
