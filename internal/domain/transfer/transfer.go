package transfer

import (
	"time"

	"github.com/google/uuid"
)

// PlatformSellerID is the from-user of every first-hand sale.
var PlatformSellerID = uuid.Nil

// Transfer is an append-only record of a sale.
type Transfer struct {
	id             uuid.UUID
	amount         int64
	bookingID      uuid.UUID
	transactionID  string
	fromUserID     uuid.UUID
	toUserID       uuid.UUID
	courseID       uuid.UUID
	purchasedPrice int64
	createdAt      time.Time
}

type Params struct {
	Amount         int64
	BookingID      uuid.UUID
	TransactionID  string
	FromUserID     uuid.UUID
	ToUserID       uuid.UUID
	CourseID       uuid.UUID
	PurchasedPrice int64
}

func New(p Params, now time.Time) *Transfer {
	return &Transfer{
		id:             uuid.New(),
		amount:         p.Amount,
		bookingID:      p.BookingID,
		transactionID:  p.TransactionID,
		fromUserID:     p.FromUserID,
		toUserID:       p.ToUserID,
		courseID:       p.CourseID,
		purchasedPrice: p.PurchasedPrice,
		createdAt:      now,
	}
}

func (t *Transfer) IsFirstHand() bool {
	return t.fromUserID == PlatformSellerID
}

func (t *Transfer) ID() uuid.UUID         { return t.id }
func (t *Transfer) Amount() int64         { return t.amount }
func (t *Transfer) BookingID() uuid.UUID  { return t.bookingID }
func (t *Transfer) TransactionID() string { return t.transactionID }
func (t *Transfer) FromUserID() uuid.UUID { return t.fromUserID }
func (t *Transfer) ToUserID() uuid.UUID   { return t.toUserID }
func (t *Transfer) CourseID() uuid.UUID   { return t.courseID }
func (t *Transfer) PurchasedPrice() int64 { return t.purchasedPrice }
func (t *Transfer) CreatedAt() time.Time  { return t.createdAt }
