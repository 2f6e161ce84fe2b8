//go:build unit || e2e

package builder

import (
	"time"

	"teetime-exchange/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	Params booking.ReconstructParams
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{Params: booking.ReconstructParams{
		ID: uuid.New(),
		NewBookingParams: booking.NewBookingParams{
			OwnerID:           uuid.New(),
			TeeTimeID:         uuid.New(),
			CourseID:          uuid.New(),
			ProviderBookingID: "pb-1",
			TotalAmount:       20000,
			GreenFeePerPlayer: 5000,
			PlayerCount:       4,
			Status:            booking.StatusConfirmed,
			ProviderPaymentID: "pay_1",
		},
		CreatedAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func (b *BookingBuilder) With(mutate func(*booking.ReconstructParams)) *BookingBuilder {
	mutate(&b.Params)
	return b
}

func (b *BookingBuilder) OwnedBy(userID uuid.UUID) *BookingBuilder {
	b.Params.OwnerID = userID
	return b
}

func (b *BookingBuilder) ForTeeTime(teeTimeID, courseID uuid.UUID) *BookingBuilder {
	b.Params.TeeTimeID = teeTimeID
	b.Params.CourseID = courseID
	return b
}

func (b *BookingBuilder) Build() *booking.Booking {
	return booking.Reconstruct(b.Params)
}
