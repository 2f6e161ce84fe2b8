//go:build unit || e2e

package builder

import (
	"time"

	"teetime-exchange/internal/domain/listing"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	Params listing.ReconstructParams
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{Params: listing.ReconstructParams{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		TeeTimeID:  uuid.New(),
		CourseID:   uuid.New(),
		ListPrice:  6000,
		Slots:      2,
		EndTime:    time.Date(2030, 5, 31, 0, 0, 0, 0, time.UTC),
		BookingIDs: []uuid.UUID{uuid.New()},
		CreatedAt:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func (b *ListingBuilder) With(mutate func(*listing.ReconstructParams)) *ListingBuilder {
	mutate(&b.Params)
	return b
}

func (b *ListingBuilder) Build() *listing.Listing {
	return listing.Reconstruct(b.Params)
}

// DraftFor returns a valid draft covering the given bookings.
func DraftFor(userID uuid.UUID, endTime time.Time, bookingIDs ...uuid.UUID) listing.Draft {
	return listing.Draft{
		UserID:     userID,
		ListPrice:  6000,
		BookingIDs: bookingIDs,
		EndTime:    endTime,
		Slots:      1,
	}
}
