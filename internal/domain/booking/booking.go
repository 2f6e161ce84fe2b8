package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusReserved    Status = "RESERVED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusTransferred Status = "TRANSFERRED"
	StatusCancelled   Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusTransferred, StatusCancelled:
		return true
	}
	return false
}

// IsOwnable reports whether a booking in this status still belongs to its owner.
func (s Status) IsOwnable() bool {
	return s == StatusReserved || s == StatusConfirmed
}

type Booking struct {
	id                     uuid.UUID
	ownerID                uuid.UUID
	teeTimeID              uuid.UUID
	courseID               uuid.UUID
	providerBookingID      string
	totalAmount            int64
	greenFeePerPlayer      int64
	playerCount            int
	isListed               bool
	listID                 *uuid.UUID
	minimumOfferPrice      int64
	weatherGuaranteeID     *string
	weatherGuaranteeAmount int64
	status                 Status
	cartID                 *uuid.UUID
	providerPaymentID      string
	createdAt              time.Time
}

type NewBookingParams struct {
	OwnerID           uuid.UUID
	TeeTimeID         uuid.UUID
	CourseID          uuid.UUID
	ProviderBookingID string
	TotalAmount       int64
	GreenFeePerPlayer int64
	PlayerCount       int
	Status            Status
	CartID            *uuid.UUID
	ProviderPaymentID string
}

func NewBooking(p NewBookingParams, now time.Time) *Booking {
	status := p.Status
	if !status.IsValid() {
		status = StatusReserved
	}
	return &Booking{
		id:                uuid.New(),
		ownerID:           p.OwnerID,
		teeTimeID:         p.TeeTimeID,
		courseID:          p.CourseID,
		providerBookingID: p.ProviderBookingID,
		totalAmount:       p.TotalAmount,
		greenFeePerPlayer: p.GreenFeePerPlayer,
		playerCount:       p.PlayerCount,
		status:            status,
		cartID:            p.CartID,
		providerPaymentID: p.ProviderPaymentID,
		createdAt:         now,
	}
}

type ReconstructParams struct {
	ID                     uuid.UUID
	NewBookingParams
	IsListed               bool
	ListID                 *uuid.UUID
	MinimumOfferPrice      int64
	WeatherGuaranteeID     *string
	WeatherGuaranteeAmount int64
	CreatedAt              time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:                     p.ID,
		ownerID:                p.OwnerID,
		teeTimeID:              p.TeeTimeID,
		courseID:               p.CourseID,
		providerBookingID:      p.ProviderBookingID,
		totalAmount:            p.TotalAmount,
		greenFeePerPlayer:      p.GreenFeePerPlayer,
		playerCount:            p.PlayerCount,
		isListed:               p.IsListed,
		listID:                 p.ListID,
		minimumOfferPrice:      p.MinimumOfferPrice,
		weatherGuaranteeID:     p.WeatherGuaranteeID,
		weatherGuaranteeAmount: p.WeatherGuaranteeAmount,
		status:                 p.Status,
		cartID:                 p.CartID,
		providerPaymentID:      p.ProviderPaymentID,
		createdAt:              p.CreatedAt,
	}
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.ownerID == userID && b.status.IsOwnable()
}

func (b *Booking) HasWeatherGuarantee() bool {
	return b.weatherGuaranteeID != nil && *b.weatherGuaranteeID != ""
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) OwnerID() uuid.UUID            { return b.ownerID }
func (b *Booking) TeeTimeID() uuid.UUID          { return b.teeTimeID }
func (b *Booking) CourseID() uuid.UUID           { return b.courseID }
func (b *Booking) ProviderBookingID() string     { return b.providerBookingID }
func (b *Booking) TotalAmount() int64            { return b.totalAmount }
func (b *Booking) GreenFeePerPlayer() int64      { return b.greenFeePerPlayer }
func (b *Booking) PlayerCount() int              { return b.playerCount }
func (b *Booking) IsListed() bool                { return b.isListed }
func (b *Booking) ListID() *uuid.UUID            { return b.listID }
func (b *Booking) MinimumOfferPrice() int64      { return b.minimumOfferPrice }
func (b *Booking) WeatherGuaranteeID() *string   { return b.weatherGuaranteeID }
func (b *Booking) WeatherGuaranteeAmount() int64 { return b.weatherGuaranteeAmount }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) CartID() *uuid.UUID            { return b.cartID }
func (b *Booking) ProviderPaymentID() string     { return b.providerPaymentID }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }

// Slot maps a booking to a named player position on the provider booking.
type Slot struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	SlotID       string
	SlotPosition int
	CustomerID   string
	Name         string
}

// GuestName is pushed to the provider for every slot after the first.
const GuestName = "Guest"
