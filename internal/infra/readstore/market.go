package readstore

import (
	"context"
	"time"

	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/domain/offer"
	"teetime-exchange/internal/infra"
	"teetime-exchange/internal/infra/repository/converter"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type MarketReadQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.List, error)
	GetOfferByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Offer, error)
	ListOfferBookingIDs(ctx context.Context, db sqlc.DBTX, offerID uuid.UUID) ([]uuid.UUID, error)
	OfferExistsForPayment(ctx context.Context, db sqlc.DBTX, paymentID string) (bool, error)
	CountPendingOffersForBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPendingOffersForBuyerParams) (int64, error)
	TransferExistsForTransaction(ctx context.Context, db sqlc.DBTX, transactionID string) (bool, error)
	AuditEventExistsForPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.AuditEventExistsForPaymentParams) (bool, error)
	GetPromoByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.PromoCode, error)
	ListWaitlistSubscribers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWaitlistSubscribersParams) ([]uuid.UUID, error)
}

// MarketReadStore reads listings, offers and the sale ledger.
type MarketReadStore struct {
	queries MarketReadQueries
	db      sqlc.DBTX
}

func NewMarketReadStore(queries MarketReadQueries, db sqlc.DBTX) *MarketReadStore {
	return &MarketReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MarketReadStore) ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}
	return converter.ListingFromRow(row), nil
}

func (r *MarketReadStore) OfferByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer by id", err)
	}
	ids, err := r.queries.ListOfferBookingIDs(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offer bookings", err)
	}
	return converter.OfferFromRow(row, ids), nil
}

func (r *MarketReadStore) OfferExistsForPayment(ctx context.Context, paymentID string) (bool, error) {
	ok, err := r.queries.OfferExistsForPayment(ctx, r.db, paymentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check offer payment", err)
	}
	return ok, nil
}

func (r *MarketReadStore) PendingOfferCount(ctx context.Context, buyerID, courseID, excludeOfferID uuid.UUID) (int, error) {
	n, err := r.queries.CountPendingOffersForBuyer(ctx, r.db, sqlc.CountPendingOffersForBuyerParams{
		BuyerID:  buyerID,
		CourseID: courseID,
		ID:       excludeOfferID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count pending offers", err)
	}
	return int(n), nil
}

func (r *MarketReadStore) TransferExistsForTransaction(ctx context.Context, transactionID string) (bool, error) {
	ok, err := r.queries.TransferExistsForTransaction(ctx, r.db, transactionID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check transfer", err)
	}
	return ok, nil
}

func (r *MarketReadStore) RefundExistsForPayment(ctx context.Context, paymentID string) (bool, error) {
	ok, err := r.queries.AuditEventExistsForPayment(ctx, r.db, sqlc.AuditEventExistsForPaymentParams{
		PaymentID: paymentID,
		EventID:   string(shared.AuditRefundInitiated),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check refund", err)
	}
	return ok, nil
}

func (r *MarketReadStore) PromoByCode(ctx context.Context, code string) (*shared.PromoSnapshot, error) {
	row, err := r.queries.GetPromoByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo code", err)
	}
	return &shared.PromoSnapshot{ID: row.ID, Code: row.Code}, nil
}

func (r *MarketReadStore) WaitlistSubscribers(ctx context.Context, courseID uuid.UUID, date time.Time, hhmm int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListWaitlistSubscribers(ctx, r.db, sqlc.ListWaitlistSubscribersParams{
		CourseID: courseID,
		Date:     pgconv.DateToPgtype(date),
		Hhmm:     pgconv.IntToInt32(hhmm),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist subscribers", err)
	}
	return ids, nil
}
