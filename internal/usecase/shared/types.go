package shared

import (
	"time"

	"teetime-exchange/internal/domain/teetime"

	"github.com/google/uuid"
)

// CourseSnapshot carries what the ledger needs to reach a course's provider.
type CourseSnapshot struct {
	ID                 uuid.UUID
	Name               string
	ProviderID         uuid.UUID
	ProviderKey        string
	ProviderCourseID   string
	ProviderTeeSheetID string
	Timezone           string
	Rates              teetime.TaxRates
	MaxPlayersPerGroup int
	LastIndexedAt      *time.Time
}

type UserSnapshot struct {
	ID     uuid.UUID
	Email  string
	Name   string
	Handle string
	Phone  string
}

type PromoSnapshot struct {
	ID   uuid.UUID
	Code string
}

type Donation struct {
	PaymentID string
	UserID    uuid.UUID
	CharityID uuid.UUID
	CourseID  uuid.UUID
	Amount    int64
}

type AuditEvent string

const (
	AuditRefundInitiated        AuditEvent = "REFUND_INITIATED"
	AuditWeatherGuaranteeFailed AuditEvent = "WEATHER_GUARANTEE_FAILED"
	AuditAuctionPaid            AuditEvent = "AUCTION_PAID"
)

type AuditEntry struct {
	EventID   AuditEvent
	UserID    uuid.UUID
	PaymentID string
	Detail    string
}
