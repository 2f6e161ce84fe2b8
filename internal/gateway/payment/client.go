package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"
)

var _ shared.PaymentGateway = (*Client)(nil)

// Client issues refunds against the payment orchestrator that sends the
// payment webhooks.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		hc:      &http.Client{Timeout: cfg.Timeout},
	}
}

type refundRequest struct {
	PaymentID  string `json:"payment_id"`
	Amount     int64  `json:"amount"`
	Reason     string `json:"reason"`
	RefundType string `json:"refund_type"`
}

type refundResponse struct {
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
}

// Refund returns amount cents of paymentID to the buyer.
func (c *Client) Refund(ctx context.Context, paymentID string, amount int64, reason string) error {
	b, err := json.Marshal(refundRequest{
		PaymentID:  paymentID,
		Amount:     amount,
		Reason:     reason,
		RefundType: "instant",
	})
	if err != nil {
		return errs.Wrap(err, "payment: marshal refund")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/refunds", bytes.NewReader(b))
	if err != nil {
		return errs.Wrap(err, "payment: build refund request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return errs.UpstreamCause("Error issuing refund", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.UpstreamCause("Error issuing refund", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		cause := errs.New(fmt.Sprintf("payment: refund returned %d: %s", resp.StatusCode, string(raw)))
		return errs.UpstreamCause("Error issuing refund", cause)
	}
	var out refundResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return errs.UpstreamCause("Error issuing refund", err)
	}
	if out.Status == "failed" {
		return errs.Upstream("Error issuing refund")
	}
	return nil
}
