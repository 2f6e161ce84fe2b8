package request

import (
	"time"

	"teetime-exchange/internal/usecase/commands"

	"github.com/google/uuid"
)

// ListingRequest is shared by create and update; the ledger owns the rules
// on prices, counts and end times so their messages reach the UI unchanged.
type ListingRequest struct {
	ListPrice  int64       `json:"listPrice"`
	BookingIDs []uuid.UUID `json:"bookingIds" binding:"required"`
	EndTime    time.Time   `json:"endTime" binding:"required"`
	Slots      int         `json:"slots"`
}

func (r ListingRequest) ToCommand() commands.ListingRequest {
	return commands.ListingRequest{
		ListPrice:  r.ListPrice,
		BookingIDs: r.BookingIDs,
		EndTime:    r.EndTime,
		Slots:      r.Slots,
	}
}

type CreateOfferRequest struct {
	BookingIDs []uuid.UUID `json:"bookingIds" binding:"required"`
	Price      int64       `json:"price"`
	ExpiresAt  time.Time   `json:"expiresAt" binding:"required"`
	PaymentID  *string     `json:"paymentId,omitempty"`
}

func (r CreateOfferRequest) ToCommand() commands.CreateOfferRequest {
	return commands.CreateOfferRequest{
		BookingIDs: r.BookingIDs,
		Price:      r.Price,
		ExpiresAt:  r.ExpiresAt,
		PaymentID:  r.PaymentID,
	}
}
