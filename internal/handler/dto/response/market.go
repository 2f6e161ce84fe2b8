package response

import (
	"time"

	"teetime-exchange/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TransactionResponse struct {
	ID             uuid.UUID `json:"id"`
	TransactionID  string    `json:"transactionId"`
	BookingID      uuid.UUID `json:"bookingId"`
	TeeTimeID      uuid.UUID `json:"teeTimeId"`
	CourseID       uuid.UUID `json:"courseId"`
	CourseName     string    `json:"courseName"`
	TeeTime        string    `json:"teeTime"`
	FromUserID     uuid.UUID `json:"fromUserId"`
	ToUserID       uuid.UUID `json:"toUserId"`
	Amount         int64     `json:"amount"`
	PurchasedPrice int64     `json:"purchasedPrice"`
	FirstHand      bool      `json:"firstHand"`
	Direction      string    `json:"direction"`
	CreatedAt      time.Time `json:"createdAt"`
}

type TransactionPageResponse struct {
	Items      []TransactionResponse `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

type OwnedBookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	PlayerCount        int        `json:"playerCount"`
	TotalAmount        int64      `json:"totalAmount"`
	Status             string     `json:"status"`
	IsListed           bool       `json:"isListed"`
	ListID             *uuid.UUID `json:"listId,omitempty"`
	MinimumOfferPrice  int64      `json:"minimumOfferPrice"`
	WeatherGuaranteeID *string    `json:"weatherGuaranteeId,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type OwnedTeeTimeResponse struct {
	TeeTimeID         uuid.UUID              `json:"teeTimeId"`
	CourseID          uuid.UUID              `json:"courseId"`
	CourseName        string                 `json:"courseName"`
	TeeTime           string                 `json:"teeTime"`
	Players           int                    `json:"players"`
	ListedBookings    int                    `json:"listedBookings"`
	MinimumOfferPrice int64                  `json:"minimumOfferPrice"`
	Bookings          []OwnedBookingResponse `json:"bookings"`
}

type ListingResponse struct {
	ListingID  uuid.UUID   `json:"listingId"`
	TeeTimeID  uuid.UUID   `json:"teeTimeId"`
	CourseID   uuid.UUID   `json:"courseId"`
	CourseName string      `json:"courseName"`
	TeeTime    string      `json:"teeTime"`
	ListPrice  int64       `json:"listPrice"`
	Slots      int         `json:"slots"`
	EndTime    time.Time   `json:"endTime"`
	BookingIDs []uuid.UUID `json:"bookingIds"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type OfferResponse struct {
	ID          uuid.UUID   `json:"id"`
	BuyerID     uuid.UUID   `json:"buyerId"`
	BuyerHandle string      `json:"buyerHandle"`
	CourseID    uuid.UUID   `json:"courseId"`
	CourseName  string      `json:"courseName"`
	TeeTimeID   uuid.UUID   `json:"teeTimeId"`
	TeeTime     string      `json:"teeTime"`
	Price       int64       `json:"price"`
	Status      string      `json:"status"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	BookingIDs  []uuid.UUID `json:"bookingIds"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type ListingCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type OfferCreatedResponse struct {
	ID                 uuid.UUID `json:"id"`
	OtherPendingOffers int       `json:"otherPendingOffers"`
}

type MinimumOfferPriceResponse struct {
	Updated int64 `json:"updated"`
}

func FromTransactionPage(views []*queries.TransactionView, next *queries.Cursor) (*TransactionPageResponse, error) {
	out := &TransactionPageResponse{Items: []TransactionResponse{}}
	if err := copier.Copy(&out.Items, views); err != nil {
		return nil, err
	}
	if next != nil {
		out.NextCursor = next.After
	}
	return out, nil
}

func FromOwnedTeeTimes(views []*queries.OwnedTeeTimeView) ([]OwnedTeeTimeResponse, error) {
	out := make([]OwnedTeeTimeResponse, 0, len(views))
	for _, v := range views {
		var r OwnedTeeTimeResponse
		if err := copier.Copy(&r, v); err != nil {
			return nil, err
		}
		r.Bookings = make([]OwnedBookingResponse, 0, len(v.Bookings))
		for _, b := range v.Bookings {
			var br OwnedBookingResponse
			if err := copier.Copy(&br, b); err != nil {
				return nil, err
			}
			r.Bookings = append(r.Bookings, br)
		}
		out = append(out, r)
	}
	return out, nil
}

func FromListings(views []*queries.ListedTeeTimeView) ([]ListingResponse, error) {
	out := []ListingResponse{}
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromOffers(views []*queries.OfferView) ([]OfferResponse, error) {
	out := []OfferResponse{}
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}
