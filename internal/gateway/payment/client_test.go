//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teetime-exchange/internal/gateway/payment"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Refund(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectError bool
	}{
		{
			name:   "success: refund accepted",
			status: http.StatusOK,
			body:   `{"refund_id":"ref_1","status":"pending"}`,
		},
		{
			name:        "error: orchestrator rejects",
			status:      http.StatusBadRequest,
			body:        `{"error":{"message":"refund amount exceeds"}}`,
			expectError: true,
		},
		{
			name:        "error: refund failed",
			status:      http.StatusOK,
			body:        `{"refund_id":"ref_2","status":"failed"}`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/refunds", r.URL.Path)
				assert.Equal(t, "key-1", r.Header.Get("api-key"))
				var in map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
				assert.Equal(t, "pay_123", in["payment_id"])
				assert.EqualValues(t, 4500, in["amount"])
				assert.Equal(t, "provider_booking_failed", in["reason"])
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			c := payment.NewClient(config.PaymentConfig{BaseURL: srv.URL, APIKey: "key-1", Timeout: time.Second})
			err := c.Refund(context.Background(), "pay_123", 4500, "provider_booking_failed")

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrUpstream))
				assert.Equal(t, "Error issuing refund", errs.PublicMessage(err))
				return
			}
			require.NoError(t, err)
		})
	}
}
