package converter

import (
	"teetime-exchange/internal/domain/offer"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func OfferFromRow(row sqlc.Offer, bookingIDs []uuid.UUID) *offer.Offer {
	return offer.Reconstruct(offer.ReconstructParams{
		ID:         row.ID,
		BuyerID:    row.BuyerID,
		CourseID:   row.CourseID,
		TeeTimeID:  row.TeeTimeID,
		Price:      row.Price,
		ExpiresAt:  pgconv.TimeFromPgtype(row.ExpiresAt),
		Status:     offer.Status(row.Status),
		IsDeleted:  row.IsDeleted,
		PaymentID:  pgconv.StringPtrFromPgtype(row.PaymentID),
		BookingIDs: bookingIDs,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	})
}

func OfferToCreateParams(o *offer.Offer) sqlc.CreateOfferParams {
	return sqlc.CreateOfferParams{
		ID:        o.ID(),
		BuyerID:   o.BuyerID(),
		CourseID:  o.CourseID(),
		TeeTimeID: o.TeeTimeID(),
		Price:     o.Price(),
		ExpiresAt: pgconv.TimeToPgtype(o.ExpiresAt()),
		Status:    string(o.Status()),
		PaymentID: pgconv.StringPtrToPgtype(o.PaymentID()),
		CreatedAt: pgconv.TimeToPgtype(o.CreatedAt()),
	}
}
