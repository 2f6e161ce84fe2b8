package converter

import (
	"teetime-exchange/internal/domain/booking"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func BookingFromRow(row sqlc.Booking) *booking.Booking {
	return booking.Reconstruct(booking.ReconstructParams{
		ID: row.ID,
		NewBookingParams: booking.NewBookingParams{
			OwnerID:           row.OwnerID,
			TeeTimeID:         row.TeeTimeID,
			CourseID:          row.CourseID,
			ProviderBookingID: row.ProviderBookingID,
			TotalAmount:       row.TotalAmount,
			GreenFeePerPlayer: row.GreenFeePerPlayer,
			PlayerCount:       int(row.PlayerCount),
			Status:            booking.Status(row.Status),
			CartID:            pgconv.UUIDPtrFromPgtype(row.CartID),
			ProviderPaymentID: row.ProviderPaymentID,
		},
		IsListed:               row.IsListed,
		ListID:                 pgconv.UUIDPtrFromPgtype(row.ListID),
		MinimumOfferPrice:      row.MinimumOfferPrice,
		WeatherGuaranteeID:     pgconv.StringPtrFromPgtype(row.WeatherGuaranteeID),
		WeatherGuaranteeAmount: row.WeatherGuaranteeAmount,
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
	})
}

func BookingsFromRows(rows []sqlc.Booking) []*booking.Booking {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingFromRow(row))
	}
	return out
}

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:                     b.ID(),
		OwnerID:                b.OwnerID(),
		TeeTimeID:              b.TeeTimeID(),
		CourseID:               b.CourseID(),
		ProviderBookingID:      b.ProviderBookingID(),
		TotalAmount:            b.TotalAmount(),
		GreenFeePerPlayer:      b.GreenFeePerPlayer(),
		PlayerCount:            pgconv.IntToInt32(b.PlayerCount()),
		Status:                 string(b.Status()),
		IsListed:               b.IsListed(),
		ListID:                 pgconv.UUIDPtrToPgtype(b.ListID()),
		MinimumOfferPrice:      b.MinimumOfferPrice(),
		WeatherGuaranteeID:     pgconv.StringPtrToPgtype(b.WeatherGuaranteeID()),
		WeatherGuaranteeAmount: b.WeatherGuaranteeAmount(),
		CartID:                 pgconv.UUIDPtrToPgtype(b.CartID()),
		ProviderPaymentID:      b.ProviderPaymentID(),
		CreatedAt:              pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func SlotFromRow(row sqlc.BookingSlot) booking.Slot {
	return booking.Slot{
		ID:           row.ID,
		BookingID:    row.BookingID,
		SlotID:       row.SlotID,
		SlotPosition: int(row.SlotPosition),
		CustomerID:   row.CustomerID,
		Name:         row.Name,
	}
}

func SlotToCreateParams(s booking.Slot) sqlc.CreateBookingSlotParams {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return sqlc.CreateBookingSlotParams{
		ID:           id,
		BookingID:    s.BookingID,
		SlotID:       s.SlotID,
		SlotPosition: pgconv.IntToInt32(s.SlotPosition),
		CustomerID:   s.CustomerID,
		Name:         s.Name,
	}
}
