package response

import (
	"teetime-exchange/internal/domain/cart"
	"teetime-exchange/internal/usecase/commands"

	"github.com/google/uuid"
)

type WebhookResponse struct {
	EventType string   `json:"eventType"`
	Handled   []string `json:"handled"`
	Skipped   []string `json:"skipped"`
}

type IndexResponse struct {
	CourseID        uuid.UUID `json:"courseId"`
	DaysIndexed     int       `json:"daysIndexed"`
	DaysFailed      int       `json:"daysFailed"`
	Inserted        int       `json:"inserted"`
	Updated         int       `json:"updated"`
	MarkUnavailable int       `json:"markUnavailable"`
}

func NewWebhookResponse(r *commands.WebhookResult) WebhookResponse {
	return WebhookResponse{
		EventType: r.EventType,
		Handled:   itemTypes(r.Handled),
		Skipped:   itemTypes(r.Skipped),
	}
}

func NewIndexResponse(r *commands.IndexResult) IndexResponse {
	return IndexResponse{
		CourseID:        r.CourseID,
		DaysIndexed:     r.DaysIndexed,
		DaysFailed:      r.DaysFailed,
		Inserted:        r.Inserted,
		Updated:         r.Updated,
		MarkUnavailable: r.MarkUnavailable,
	}
}

func itemTypes(ts []cart.ItemType) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, string(t))
	}
	return out
}
