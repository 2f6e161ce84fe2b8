//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"teetime-exchange/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus(reg)

	m.WebhookProcessed("payment_succeeded", "ok")
	m.WebhookProcessed("payment_succeeded", "ok")
	m.WebhookProcessed("", "error")
	m.RefundIssued("provider_booking_failed")
	m.IndexerChanges("insert", 3)
	m.IndexerChanges("update", 0)
	m.ObserveTokenization(250 * time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "teetime_payment_webhooks_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "teetime_refunds_total"))
	// zero-change kinds are not materialized
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "teetime_indexer_tee_time_changes_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "teetime_tokenization_duration_seconds"))

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() != "teetime_indexer_tee_time_changes_total" {
			continue
		}
		found = true
		assert.InDelta(t, 3.0, f.GetMetric()[0].GetCounter().GetValue(), 0.0001)
	}
	assert.True(t, found)
}
