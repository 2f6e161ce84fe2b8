package request

import (
	"time"

	"teetime-exchange/internal/usecase/commands"
)

// PaymentWebhookRequest is the payment orchestrator's event envelope.
type PaymentWebhookRequest struct {
	MerchantID string         `json:"merchant_id"`
	EventID    string         `json:"event_id"`
	EventType  string         `json:"event_type" binding:"required"`
	Content    WebhookContent `json:"content"`
	Timestamp  time.Time      `json:"timestamp"`
}

type WebhookContent struct {
	Object WebhookPayment `json:"object"`
}

type WebhookPayment struct {
	PaymentID      string `json:"payment_id"`
	AmountReceived *int64 `json:"amount_received"`
	CustomerID     string `json:"customer_id"`
}

// ToEvent leaves required-field checks to the reconciler so that a missing
// payment id is reported with the reconciler's own message.
func (r PaymentWebhookRequest) ToEvent() commands.WebhookEvent {
	return commands.WebhookEvent{
		MerchantID:     r.MerchantID,
		EventID:        r.EventID,
		EventType:      r.EventType,
		PaymentID:      r.Content.Object.PaymentID,
		AmountReceived: r.Content.Object.AmountReceived,
		CustomerID:     r.Content.Object.CustomerID,
		Timestamp:      r.Timestamp,
	}
}
