package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"
	"time"

	"teetime-exchange/internal/domain/booking"

	"github.com/google/uuid"
)

// ProviderSession is a resolved provider adapter key plus its cached auth token.
type ProviderSession struct {
	ProviderKey string
	Token       string
	Course      CourseSnapshot
}

type ProviderCustomer struct {
	PlayerNumber int
	CustomerID   string
	Name         string
	Username     string
}

type ProviderBookingRequest struct {
	ProviderTeeTimeID string
	ProviderDate      string
	Holes             int
	Players           int
	Customer          ProviderCustomer
	TotalAmountPaid   int64
	Note              string
}

type ProviderBooking struct {
	ID string
}

type SlotUpdate struct {
	CustomerID string
	Name       string
}

type ProviderTeeTime struct {
	ProviderTeeTimeID string
	ProviderDate      string
	Time              int
	Holes             int
	MaxPlayers        int
	AvailableSpots    int
	GreenFee          int64
	CartFee           int64
}

// ProviderGateway fronts the external tee-sheet systems. It never retries;
// failures come back marked errs.ErrUpstream.
type ProviderGateway interface {
	Session(ctx context.Context, course CourseSnapshot) (ProviderSession, error)
	InvalidateToken(ctx context.Context, course CourseSnapshot) error
	FindOrCreateCustomer(ctx context.Context, s ProviderSession, user UserSnapshot) (*ProviderCustomer, error)
	CreateBooking(ctx context.Context, s ProviderSession, req ProviderBookingRequest) (*ProviderBooking, error)
	UpdateTeeTime(ctx context.Context, s ProviderSession, providerBookingID, slotID string, upd SlotUpdate) error
	DeleteBooking(ctx context.Context, s ProviderSession, providerBookingID string) error
	SlotsForBooking(s ProviderSession, bookingID uuid.UUID, players int, customer ProviderCustomer, providerBookingID string) []booking.Slot
	GetTeeTimes(ctx context.Context, s ProviderSession, date time.Time, startTime, endTime string) ([]ProviderTeeTime, error)
}

type AcceptQuoteRequest struct {
	QuoteID       string
	PriceCharged  int64
	ReservationID uuid.UUID
	User          UserSnapshot
}

type WeatherGuarantee struct {
	ID     string
	Amount int64
}

type WeatherGuaranteeGateway interface {
	AcceptQuote(ctx context.Context, req AcceptQuoteRequest) (*WeatherGuarantee, error)
	CancelGuarantee(ctx context.Context, guaranteeID string) error
}

type PaymentGateway interface {
	Refund(ctx context.Context, paymentID string, amount int64, reason string) error
}

type Template string

const (
	TemplatePurchaseConfirmation Template = "purchase_confirmation"
	TemplatePaymentFailed        Template = "payment_failed"
	TemplateListingCreated       Template = "listing_created"
	TemplateListingCancelled     Template = "listing_cancelled"
	TemplateListingSold          Template = "listing_sold"
	TemplateListingPartiallySold Template = "listing_partially_sold"
	TemplateWaitlistMatch        Template = "waitlist_match"
	TemplateOfferCreated         Template = "offer_created"
	TemplateOfferReceived        Template = "offer_received"
	TemplateOfferAccepted        Template = "offer_accepted"
	TemplateOfferRejected        Template = "offer_rejected"
	TemplateAdminAlert           Template = "admin_alert"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelAdmin Channel = "admin"
)

type Notification struct {
	Template Template
	UserID   uuid.UUID
	Channel  Channel
	Data     map[string]string
}

// Notifier hands notifications to the delivery pipeline.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type AppSettings interface {
	Get(ctx context.Context, key string) (string, error)
}

type Metrics interface {
	WebhookProcessed(eventType, outcome string)
	RefundIssued(reason string)
	IndexerChanges(kind string, n int)
	ObserveTokenization(d time.Duration)
}
