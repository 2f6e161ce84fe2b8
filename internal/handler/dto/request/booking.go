package request

import (
	"strings"

	"teetime-exchange/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveBookingRequest struct {
	TeeTimeID uuid.UUID `json:"teeTimeId" binding:"required"`
	PaymentID string    `json:"paymentId" binding:"required"`
	Players   int       `json:"players" binding:"required,min=1,max=20"`
}

func (r ReserveBookingRequest) ToCommand(userID uuid.UUID) commands.TokenizeBookingRequest {
	return commands.TokenizeBookingRequest{
		UserID:    userID,
		TeeTimeID: r.TeeTimeID,
		PaymentID: strings.TrimSpace(r.PaymentID),
		Players:   r.Players,
	}
}

type ReserveSecondHandRequest struct {
	ListingID uuid.UUID `json:"listingId" binding:"required"`
}

type ConfirmBookingRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
}

type SlotNameRequest struct {
	SlotID string `json:"slotId" binding:"required"`
	Name   string `json:"name" binding:"required,max=100"`
}

type UpdateNamesRequest struct {
	Slots []SlotNameRequest `json:"slots" binding:"required,min=1,dive"`
}

func (r UpdateNamesRequest) ToCommand() []commands.SlotName {
	out := make([]commands.SlotName, 0, len(r.Slots))
	for _, s := range r.Slots {
		out = append(out, commands.SlotName{SlotID: s.SlotID, Name: strings.TrimSpace(s.Name)})
	}
	return out
}

type MinimumOfferPriceRequest struct {
	Price *int64 `json:"price" binding:"required"`
}
