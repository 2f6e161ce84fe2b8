package queries

//go:generate mockgen -source=marketplace.go -destination=../../../tests/mock/queries/marketplace_mock.go -package=queriesmock

import (
	"context"
	"sort"
	"time"

	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.NotFound("Booking not found")
	ErrBookingAccess   = errs.Unauthorized("UNAUTHORIZED")
)

const (
	DirectionPurchase = "purchase"
	DirectionSale     = "sale"
)

type TransactionView struct {
	ID             uuid.UUID `json:"id"`
	TransactionID  string    `json:"transaction_id"`
	BookingID      uuid.UUID `json:"booking_id"`
	TeeTimeID      uuid.UUID `json:"tee_time_id"`
	CourseID       uuid.UUID `json:"course_id"`
	CourseName     string    `json:"course_name"`
	TeeTime        string    `json:"tee_time"`
	FromUserID     uuid.UUID `json:"from_user_id"`
	ToUserID       uuid.UUID `json:"to_user_id"`
	Amount         int64     `json:"amount"`
	PurchasedPrice int64     `json:"purchased_price"`
	FirstHand      bool      `json:"first_hand"`
	Direction      string    `json:"direction"`
	CreatedAt      time.Time `json:"created_at"`
}

type OwnedBookingView struct {
	ID                 uuid.UUID  `json:"id"`
	TeeTimeID          uuid.UUID  `json:"tee_time_id"`
	CourseID           uuid.UUID  `json:"course_id"`
	CourseName         string     `json:"course_name"`
	TeeTime            string     `json:"tee_time"`
	PlayerCount        int        `json:"player_count"`
	TotalAmount        int64      `json:"total_amount"`
	Status             string     `json:"status"`
	IsListed           bool       `json:"is_listed"`
	ListID             *uuid.UUID `json:"list_id,omitempty"`
	MinimumOfferPrice  int64      `json:"minimum_offer_price"`
	WeatherGuaranteeID *string    `json:"weather_guarantee_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// OwnedTeeTimeView groups a user's bookings on one tee time.
type OwnedTeeTimeView struct {
	TeeTimeID         uuid.UUID           `json:"tee_time_id"`
	CourseID          uuid.UUID           `json:"course_id"`
	CourseName        string              `json:"course_name"`
	TeeTime           string              `json:"tee_time"`
	Players           int                 `json:"players"`
	ListedBookings    int                 `json:"listed_bookings"`
	MinimumOfferPrice int64               `json:"minimum_offer_price"`
	Bookings          []*OwnedBookingView `json:"bookings"`
}

type ListedTeeTimeView struct {
	ListingID  uuid.UUID   `json:"listing_id"`
	TeeTimeID  uuid.UUID   `json:"tee_time_id"`
	CourseID   uuid.UUID   `json:"course_id"`
	CourseName string      `json:"course_name"`
	TeeTime    string      `json:"tee_time"`
	ListPrice  int64       `json:"list_price"`
	Slots      int         `json:"slots"`
	EndTime    time.Time   `json:"end_time"`
	BookingIDs []uuid.UUID `json:"booking_ids"`
	CreatedAt  time.Time   `json:"created_at"`
}

type OfferView struct {
	ID          uuid.UUID   `json:"id"`
	BuyerID     uuid.UUID   `json:"buyer_id"`
	BuyerHandle string      `json:"buyer_handle"`
	CourseID    uuid.UUID   `json:"course_id"`
	CourseName  string      `json:"course_name"`
	TeeTimeID   uuid.UUID   `json:"tee_time_id"`
	TeeTime     string      `json:"tee_time"`
	Price       int64       `json:"price"`
	Status      string      `json:"status"`
	ExpiresAt   time.Time   `json:"expires_at"`
	BookingIDs  []uuid.UUID `json:"booking_ids"`
	CreatedAt   time.Time   `json:"created_at"`
}

type MarketplaceReadStore interface {
	TransfersForUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*TransactionView, error)
	TransfersForUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*TransactionView, error)
	OwnedBookings(ctx context.Context, userID uuid.UUID) ([]*OwnedBookingView, error)
	ActiveListingsForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*ListedTeeTimeView, error)
	BookingOwner(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error)
	OffersForBooking(ctx context.Context, bookingID uuid.UUID) ([]*OfferView, error)
	OffersSentBy(ctx context.Context, userID uuid.UUID) ([]*OfferView, error)
	OffersReceivedBy(ctx context.Context, userID uuid.UUID) ([]*OfferView, error)
}

type MarketplaceQueries interface {
	GetTransactionHistory(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
	GetOwnedTeeTimes(ctx context.Context, userID uuid.UUID) ([]*OwnedTeeTimeView, error)
	GetMyListedTeeTimes(ctx context.Context, userID uuid.UUID) ([]*ListedTeeTimeView, error)
	GetOffersForBooking(ctx context.Context, userID, bookingID uuid.UUID) ([]*OfferView, error)
	GetOfferSentForUser(ctx context.Context, userID uuid.UUID) ([]*OfferView, error)
	GetOfferReceivedForUser(ctx context.Context, userID uuid.UUID) ([]*OfferView, error)
}

type marketplaceQueriesImpl struct {
	store MarketplaceReadStore
	clock clock.Clock
}

func NewMarketplaceQueries(store MarketplaceReadStore, clk clock.Clock) MarketplaceQueries {
	return &marketplaceQueriesImpl{store: store, clock: clk}
}

func (q *marketplaceQueriesImpl) GetTransactionHistory(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*TransactionView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.TransfersForUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.TransfersForUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	for _, r := range rows {
		r.Direction = DirectionPurchase
		if r.FromUserID == userID {
			r.Direction = DirectionSale
		}
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *marketplaceQueriesImpl) GetOwnedTeeTimes(ctx context.Context, userID uuid.UUID) ([]*OwnedTeeTimeView, error) {
	bookings, err := q.store.OwnedBookings(ctx, userID)
	if err != nil {
		return nil, err
	}

	byTeeTime := make(map[uuid.UUID]*OwnedTeeTimeView)
	var out []*OwnedTeeTimeView
	for _, b := range bookings {
		v, ok := byTeeTime[b.TeeTimeID]
		if !ok {
			v = &OwnedTeeTimeView{
				TeeTimeID:  b.TeeTimeID,
				CourseID:   b.CourseID,
				CourseName: b.CourseName,
				TeeTime:    b.TeeTime,
			}
			byTeeTime[b.TeeTimeID] = v
			out = append(out, v)
		}
		v.Players += b.PlayerCount
		if b.IsListed {
			v.ListedBookings++
		}
		if b.MinimumOfferPrice > v.MinimumOfferPrice {
			v.MinimumOfferPrice = b.MinimumOfferPrice
		}
		v.Bookings = append(v.Bookings, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TeeTime < out[j].TeeTime })
	return out, nil
}

func (q *marketplaceQueriesImpl) GetMyListedTeeTimes(ctx context.Context, userID uuid.UUID) ([]*ListedTeeTimeView, error) {
	return q.store.ActiveListingsForUser(ctx, userID, q.clock.Now())
}

// GetOffersForBooking is restricted to the booking's current owner.
func (q *marketplaceQueriesImpl) GetOffersForBooking(ctx context.Context, userID, bookingID uuid.UUID) ([]*OfferView, error) {
	owner, err := q.store.BookingOwner(ctx, bookingID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if owner != userID {
		return nil, ErrBookingAccess
	}
	return q.store.OffersForBooking(ctx, bookingID)
}

func (q *marketplaceQueriesImpl) GetOfferSentForUser(ctx context.Context, userID uuid.UUID) ([]*OfferView, error) {
	return q.store.OffersSentBy(ctx, userID)
}

func (q *marketplaceQueriesImpl) GetOfferReceivedForUser(ctx context.Context, userID uuid.UUID) ([]*OfferView, error) {
	return q.store.OffersReceivedBy(ctx, userID)
}
