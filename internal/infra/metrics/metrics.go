package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "teetime"

type Prometheus struct {
	webhooks     *prometheus.CounterVec
	refunds      *prometheus.CounterVec
	indexer      *prometheus.CounterVec
	tokenization prometheus.Histogram
}

// NewPrometheus registers the ledger collectors on reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		webhooks: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_webhooks_total",
				Help:      "Payment webhook deliveries by event type and outcome",
			},
			[]string{"event_type", "outcome"},
		),
		refunds: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refunds_total",
				Help:      "Refunds issued by reason",
			},
			[]string{"reason"},
		),
		indexer: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "indexer_tee_time_changes_total",
				Help:      "Tee time rows written by the inventory indexer",
			},
			[]string{"kind"},
		),
		tokenization: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tokenization_duration_seconds",
				Help:      "Time spent tokenizing a first-hand booking",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
		),
	}
}

func (p *Prometheus) WebhookProcessed(eventType, outcome string) {
	if eventType == "" {
		eventType = "unknown"
	}
	p.webhooks.WithLabelValues(eventType, outcome).Inc()
}

func (p *Prometheus) RefundIssued(reason string) {
	p.refunds.WithLabelValues(reason).Inc()
}

func (p *Prometheus) IndexerChanges(kind string, n int) {
	if n <= 0 {
		return
	}
	p.indexer.WithLabelValues(kind).Add(float64(n))
}

func (p *Prometheus) ObserveTokenization(d time.Duration) {
	p.tokenization.Observe(d.Seconds())
}
