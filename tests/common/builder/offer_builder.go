//go:build unit || e2e

package builder

import (
	"time"

	"teetime-exchange/internal/domain/offer"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	Params offer.ReconstructParams
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{Params: offer.ReconstructParams{
		ID:         uuid.New(),
		BuyerID:    uuid.New(),
		CourseID:   uuid.New(),
		TeeTimeID:  uuid.New(),
		Price:      15000,
		ExpiresAt:  time.Date(2030, 5, 31, 0, 0, 0, 0, time.UTC),
		Status:     offer.StatusPending,
		BookingIDs: []uuid.UUID{uuid.New()},
		CreatedAt:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func (b *OfferBuilder) With(mutate func(*offer.ReconstructParams)) *OfferBuilder {
	mutate(&b.Params)
	return b
}

func (b *OfferBuilder) Build() *offer.Offer {
	return offer.Reconstruct(b.Params)
}
