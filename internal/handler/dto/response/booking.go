package response

import (
	"teetime-exchange/internal/usecase/commands"

	"github.com/google/uuid"
)

type TaxesResponse struct {
	GreenFeeTax     string `json:"greenFeeTax"`
	MarkupTax       string `json:"markupTax"`
	WeatherTax      string `json:"weatherTax"`
	CartFeeTax      string `json:"cartFeeTax"`
	MerchandiseTax  string `json:"merchandiseTax"`
	AdditionalTaxes string `json:"additionalTaxes"`
}

type ReserveBookingResponse struct {
	BookingIDs         []uuid.UUID   `json:"bookingIds"`
	ProviderBookingIDs []string      `json:"providerBookingIds"`
	TotalAmount        int64         `json:"totalAmount"`
	Taxes              TaxesResponse `json:"taxes"`
	WeatherGuaranteeID *string       `json:"weatherGuaranteeId,omitempty"`
}

type SecondHandQuoteResponse struct {
	ListingID  uuid.UUID `json:"listingId"`
	TeeTimeID  uuid.UUID `json:"teeTimeId"`
	CourseID   uuid.UUID `json:"courseId"`
	SellerID   uuid.UUID `json:"sellerId"`
	ListPrice  int64     `json:"listPrice"`
	Slots      int       `json:"slots"`
	TotalPrice int64     `json:"totalPrice"`
	TeeTime    string    `json:"teeTime"`
	EndTime    string    `json:"endTime"`
}

type ConfirmBookingResponse struct {
	Confirmed int64 `json:"confirmed"`
}

func NewReserveBookingResponse(r *commands.TokenizeResult) ReserveBookingResponse {
	return ReserveBookingResponse{
		BookingIDs:         r.BookingIDs,
		ProviderBookingIDs: r.ProviderBookingIDs,
		TotalAmount:        r.TotalAmount,
		Taxes: TaxesResponse{
			GreenFeeTax:     r.Taxes.GreenFeeTax.StringFixed(2),
			MarkupTax:       r.Taxes.MarkupTax.StringFixed(2),
			WeatherTax:      r.Taxes.WeatherTax.StringFixed(2),
			CartFeeTax:      r.Taxes.CartFeeTax.StringFixed(2),
			MerchandiseTax:  r.Taxes.MerchandiseTax.StringFixed(2),
			AdditionalTaxes: r.Taxes.AdditionalTaxes.StringFixed(2),
		},
		WeatherGuaranteeID: r.WeatherGuaranteeID,
	}
}

func NewSecondHandQuoteResponse(q *commands.SecondHandQuote) SecondHandQuoteResponse {
	return SecondHandQuoteResponse{
		ListingID:  q.ListingID,
		TeeTimeID:  q.TeeTimeID,
		CourseID:   q.CourseID,
		SellerID:   q.SellerID,
		ListPrice:  q.ListPrice,
		Slots:      q.Slots,
		TotalPrice: q.TotalPrice,
		TeeTime:    q.TeeTime,
		EndTime:    q.EndTime,
	}
}
