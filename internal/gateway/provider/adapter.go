package provider

//go:generate mockgen -source=adapter.go -destination=../../../tests/mock/provider/adapter_mock.go -package=providermock

import (
	"context"
	"time"

	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

// Adapter is the vendor-specific tee-sheet API. Implementations are plain
// HTTP clients; token caching and customer links live in Gateway.
type Adapter interface {
	GetToken(ctx context.Context) (string, error)
	GetTeeTimes(ctx context.Context, token string, q TeeTimeQuery) ([]shared.ProviderTeeTime, error)
	CreateBooking(ctx context.Context, token, courseID, teeSheetID string, b BookingPayload) (string, error)
	UpdateTeeTime(ctx context.Context, token, courseID, teeSheetID, bookingID, slotID string, upd shared.SlotUpdate) error
	DeleteBooking(ctx context.Context, token, courseID, teeSheetID, bookingID string) error
	CreateCustomer(ctx context.Context, token, courseID string, c CustomerPayload) (string, error)
	SlotIDs(providerBookingID string, players int) []string
}

type TeeTimeQuery struct {
	CourseID   string
	TeeSheetID string
	Date       time.Time
	StartTime  string
	EndTime    string
}

type BookingPayload struct {
	TeeTimeID       string
	Start           string
	Holes           int
	Players         int
	PersonID        string
	Name            string
	TotalAmountPaid int64
	Note            string
}

type CustomerPayload struct {
	AccountNumber int
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Username      string
}

// CustomerLinks persists which provider customer stands for an internal user
// at one course.
type CustomerLinks interface {
	Find(ctx context.Context, userID, courseID, providerID uuid.UUID) (*shared.ProviderCustomer, error)
	Save(ctx context.Context, userID, courseID, providerID uuid.UUID, c shared.ProviderCustomer) error
}
