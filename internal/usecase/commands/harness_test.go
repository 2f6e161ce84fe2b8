//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/usecase/commands"
	"teetime-exchange/internal/usecase/shared"
	sharedmock "teetime-exchange/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

// harness wires a strict mock unit of work: any repository call a test did
// not expect fails it.
type harness struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	teeTimes  *sharedmock.MockTeeTimeRepository
	courses   *sharedmock.MockCourseRepository
	bookings  *sharedmock.MockBookingRepository
	listings  *sharedmock.MockListingRepository
	offers    *sharedmock.MockOfferRepository
	transfers *sharedmock.MockTransferRepository
	promos    *sharedmock.MockPromoRepository
	donations *sharedmock.MockDonationRepository
	audit     *sharedmock.MockAuditLogRepository
	provider  *sharedmock.MockProviderGateway
	weather   *sharedmock.MockWeatherGuaranteeGateway
	payments  *sharedmock.MockPaymentGateway
	settings  *sharedmock.MockAppSettings
	notifier  *recordingNotifier
	metrics   *recordingMetrics
	clock     *clock.MockClock
	logger    *slog.Logger

	transactions int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		teeTimes:  sharedmock.NewMockTeeTimeRepository(ctrl),
		courses:   sharedmock.NewMockCourseRepository(ctrl),
		bookings:  sharedmock.NewMockBookingRepository(ctrl),
		listings:  sharedmock.NewMockListingRepository(ctrl),
		offers:    sharedmock.NewMockOfferRepository(ctrl),
		transfers: sharedmock.NewMockTransferRepository(ctrl),
		promos:    sharedmock.NewMockPromoRepository(ctrl),
		donations: sharedmock.NewMockDonationRepository(ctrl),
		audit:     sharedmock.NewMockAuditLogRepository(ctrl),
		provider:  sharedmock.NewMockProviderGateway(ctrl),
		weather:   sharedmock.NewMockWeatherGuaranteeGateway(ctrl),
		payments:  sharedmock.NewMockPaymentGateway(ctrl),
		settings:  sharedmock.NewMockAppSettings(ctrl),
		notifier:  &recordingNotifier{},
		metrics:   &recordingMetrics{},
		clock:     clock.NewMockClock(testNow),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			h.transactions++
			return fn(ctx, h.tx)
		}).AnyTimes()

	h.tx.EXPECT().TeeTimes().Return(h.teeTimes).AnyTimes()
	h.tx.EXPECT().Courses().Return(h.courses).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Listings().Return(h.listings).AnyTimes()
	h.tx.EXPECT().Offers().Return(h.offers).AnyTimes()
	h.tx.EXPECT().Transfers().Return(h.transfers).AnyTimes()
	h.tx.EXPECT().Promos().Return(h.promos).AnyTimes()
	h.tx.EXPECT().Donations().Return(h.donations).AnyTimes()
	h.tx.EXPECT().AuditLogs().Return(h.audit).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()

	return h
}

func (h *harness) gateways() commands.Gateways {
	return commands.NewGateways(h.provider, h.weather, h.payments, h.notifier, h.settings, h.metrics)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []shared.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, msg shared.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) templates() []shared.Template {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]shared.Template, 0, len(n.sent))
	for _, m := range n.sent {
		out = append(out, m.Template)
	}
	return out
}

func (n *recordingNotifier) find(template shared.Template) (shared.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, m := range n.sent {
		if m.Template == template {
			return m, true
		}
	}
	return shared.Notification{}, false
}

type recordingMetrics struct {
	mu       sync.Mutex
	webhooks []string
	refunds  []string
	changes  map[string]int
}

func (m *recordingMetrics) WebhookProcessed(eventType, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.webhooks = append(m.webhooks, eventType+":"+outcome)
}

func (m *recordingMetrics) RefundIssued(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refunds = append(m.refunds, reason)
}

func (m *recordingMetrics) IndexerChanges(kind string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.changes == nil {
		m.changes = map[string]int{}
	}
	m.changes[kind] += n
}

func (m *recordingMetrics) ObserveTokenization(time.Duration) {}
