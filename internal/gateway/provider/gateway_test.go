//go:build unit

package provider_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/gateway/provider"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"
	cachemock "teetime-exchange/tests/mock/cache"
	providermock "teetime-exchange/tests/mock/provider"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memCache struct {
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newMemCache() *memCache {
	return &memCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

type fakeAdapter struct {
	tokenCalls   int
	tokenErr     error
	customers    []provider.CustomerPayload
	customerErr  error
	bookingErr   error
	bookings     []provider.BookingPayload
	deletedIDs   []string
	updatedSlots []string
}

func (f *fakeAdapter) GetToken(context.Context) (string, error) {
	f.tokenCalls++
	return "fresh-token", f.tokenErr
}

func (f *fakeAdapter) GetTeeTimes(context.Context, string, provider.TeeTimeQuery) ([]shared.ProviderTeeTime, error) {
	return []shared.ProviderTeeTime{{ProviderTeeTimeID: "tt-1"}}, nil
}

func (f *fakeAdapter) CreateBooking(_ context.Context, _, _, _ string, b provider.BookingPayload) (string, error) {
	f.bookings = append(f.bookings, b)
	return "bk-1", f.bookingErr
}

func (f *fakeAdapter) UpdateTeeTime(_ context.Context, _, _, _, _, slotID string, _ shared.SlotUpdate) error {
	f.updatedSlots = append(f.updatedSlots, slotID)
	return nil
}

func (f *fakeAdapter) DeleteBooking(_ context.Context, _, _, _, bookingID string) error {
	f.deletedIDs = append(f.deletedIDs, bookingID)
	return nil
}

func (f *fakeAdapter) CreateCustomer(_ context.Context, _, _ string, c provider.CustomerPayload) (string, error) {
	f.customers = append(f.customers, c)
	return "cust-1", f.customerErr
}

func (f *fakeAdapter) SlotIDs(id string, players int) []string {
	out := make([]string, players)
	for i := range out {
		out[i] = id + "-" + string(rune('a'+i))
	}
	return out
}

type memLinks struct {
	rows    map[uuid.UUID]shared.ProviderCustomer
	saveErr error
}

func (m *memLinks) Find(_ context.Context, userID, _, _ uuid.UUID) (*shared.ProviderCustomer, error) {
	c, ok := m.rows[userID]
	if !ok {
		return nil, errs.NotFound("customer link not found")
	}
	return &c, nil
}

func (m *memLinks) Save(_ context.Context, userID, _, _ uuid.UUID, c shared.ProviderCustomer) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.rows[userID]; !ok {
		m.rows[userID] = c
	}
	return nil
}

func newGateway(a *fakeAdapter, c *memCache, l *memLinks) *provider.Gateway {
	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return provider.NewGateway(map[string]provider.Adapter{"foreup": a}, c, l, cfg, logger)
}

func testCourse() shared.CourseSnapshot {
	return shared.CourseSnapshot{
		ID:                 uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		ProviderID:         uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		ProviderKey:        "foreup",
		ProviderCourseID:   "19765",
		ProviderTeeSheetID: "3412",
	}
}

// =============================================================================
// Session / token cache
// =============================================================================

func TestGateway_Session(t *testing.T) {
	ctx := context.Background()
	key := "provider_token:22222222-2222-2222-2222-222222222222:11111111-1111-1111-1111-111111111111:test"

	t.Run("cache miss fetches and caches for 24h", func(t *testing.T) {
		a, c := &fakeAdapter{}, newMemCache()
		g := newGateway(a, c, &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})

		s, err := g.Session(ctx, testCourse())

		require.NoError(t, err)
		assert.Equal(t, "fresh-token", s.Token)
		assert.Equal(t, "foreup", s.ProviderKey)
		assert.Equal(t, 1, a.tokenCalls)
		assert.Equal(t, "fresh-token", c.values[key])
		assert.Equal(t, 24*time.Hour, c.ttls[key])
	})

	t.Run("cache hit skips the provider", func(t *testing.T) {
		a, c := &fakeAdapter{}, newMemCache()
		c.values[key] = "cached-token"
		g := newGateway(a, c, &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})

		s, err := g.Session(ctx, testCourse())

		require.NoError(t, err)
		assert.Equal(t, "cached-token", s.Token)
		assert.Zero(t, a.tokenCalls)
	})

	t.Run("cache outage falls back to provider", func(t *testing.T) {
		a, c := &fakeAdapter{}, newMemCache()
		c.getErr = errors.New("redis down")
		g := newGateway(a, c, &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})

		s, err := g.Session(ctx, testCourse())

		require.NoError(t, err)
		assert.Equal(t, "fresh-token", s.Token)
	})

	t.Run("token failure is upstream", func(t *testing.T) {
		a := &fakeAdapter{tokenErr: errors.New("401")}
		g := newGateway(a, newMemCache(), &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})

		_, err := g.Session(ctx, testCourse())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUpstream))
	})

	t.Run("unknown provider key", func(t *testing.T) {
		g := newGateway(&fakeAdapter{}, newMemCache(), &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})
		course := testCourse()
		course.ProviderKey = "lightspeed"

		_, err := g.Session(ctx, course)

		require.Error(t, err)
		assert.True(t, errs.Is(err, provider.ErrUnknownProvider))
	})

	t.Run("invalidate drops the cached token", func(t *testing.T) {
		c := newMemCache()
		c.values[key] = "stale"
		g := newGateway(&fakeAdapter{}, c, &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})

		require.NoError(t, g.InvalidateToken(ctx, testCourse()))
		_, ok := c.values[key]
		assert.False(t, ok)
	})
}

// =============================================================================
// Customer links
// =============================================================================

func TestGateway_FindOrCreateCustomer(t *testing.T) {
	ctx := context.Background()
	user := shared.UserSnapshot{ID: uuid.New(), Name: "Ada Lovelace", Email: "ada@example.com", Handle: "ada"}
	session := shared.ProviderSession{ProviderKey: "foreup", Token: "tok", Course: testCourse()}

	t.Run("existing link is reused", func(t *testing.T) {
		a := &fakeAdapter{}
		links := &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{
			user.ID: {PlayerNumber: 12345, CustomerID: "cust-old", Name: "Ada Lovelace"},
		}}
		g := newGateway(a, newMemCache(), links)

		c, err := g.FindOrCreateCustomer(ctx, session, user)

		require.NoError(t, err)
		assert.Equal(t, "cust-old", c.CustomerID)
		assert.Empty(t, a.customers)
	})

	t.Run("missing link creates a customer with a five digit account", func(t *testing.T) {
		a := &fakeAdapter{}
		links := &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}}
		g := newGateway(a, newMemCache(), links)

		c, err := g.FindOrCreateCustomer(ctx, session, user)

		require.NoError(t, err)
		assert.Equal(t, "cust-1", c.CustomerID)
		assert.Equal(t, "ada", c.Username)
		require.Len(t, a.customers, 1)
		assert.Equal(t, "Ada", a.customers[0].FirstName)
		assert.Equal(t, "Lovelace", a.customers[0].LastName)
		assert.GreaterOrEqual(t, a.customers[0].AccountNumber, 10000)
		assert.LessOrEqual(t, a.customers[0].AccountNumber, 99999)
		assert.Equal(t, a.customers[0].AccountNumber, c.PlayerNumber)
		assert.Contains(t, links.rows, user.ID)
	})

	t.Run("provider failure surfaces the gateway message", func(t *testing.T) {
		a := &fakeAdapter{customerErr: errors.New("500")}
		g := newGateway(a, newMemCache(), &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})

		_, err := g.FindOrCreateCustomer(ctx, session, user)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUpstream))
		assert.Equal(t, "Error creating customer on provider", errs.PublicMessage(err))
	})
}

// =============================================================================
// Pass-through calls
// =============================================================================

func TestGateway_CreateBooking(t *testing.T) {
	a := &fakeAdapter{}
	g := newGateway(a, newMemCache(), &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})
	session := shared.ProviderSession{ProviderKey: "foreup", Token: "tok", Course: testCourse()}

	pb, err := g.CreateBooking(context.Background(), session, shared.ProviderBookingRequest{
		ProviderTeeTimeID: "tt-1",
		Players:           3,
		Customer:          shared.ProviderCustomer{CustomerID: "cust-1", Name: "Ada"},
		TotalAmountPaid:   9000,
		Note:              "Booked via exchange",
	})

	require.NoError(t, err)
	assert.Equal(t, "bk-1", pb.ID)
	require.Len(t, a.bookings, 1)
	assert.Equal(t, "cust-1", a.bookings[0].PersonID)
	assert.Equal(t, int64(9000), a.bookings[0].TotalAmountPaid)
	assert.Equal(t, "Booked via exchange", a.bookings[0].Note)

	a.bookingErr = errors.New("timeout")
	_, err = g.CreateBooking(context.Background(), session, shared.ProviderBookingRequest{})
	require.Error(t, err)
	assert.Equal(t, "Error creating booking on provider", errs.PublicMessage(err))
}

func TestGateway_SlotsForBooking(t *testing.T) {
	g := newGateway(&fakeAdapter{}, newMemCache(), &memLinks{rows: map[uuid.UUID]shared.ProviderCustomer{}})
	session := shared.ProviderSession{ProviderKey: "foreup", Course: testCourse()}
	bookingID := uuid.New()

	slots := g.SlotsForBooking(session, bookingID, 3, shared.ProviderCustomer{CustomerID: "cust-1", Name: "Ada"}, "bk")

	require.Len(t, slots, 3)
	assert.Equal(t, 1, slots[0].SlotPosition)
	assert.Equal(t, "cust-1", slots[0].CustomerID)
	assert.Equal(t, "Ada", slots[0].Name)
	for _, s := range slots[1:] {
		assert.Equal(t, booking.GuestName, s.Name)
		assert.Empty(t, s.CustomerID)
		assert.Equal(t, bookingID, s.BookingID)
	}
}

// =============================================================================
// Adapter Passthrough Tests
// =============================================================================

func TestGateway_AdapterPassthrough(t *testing.T) {
	ctx := context.Background()
	course := testCourse()
	session := shared.ProviderSession{ProviderKey: "foreup", Token: "tok", Course: course}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	setup := func(t *testing.T) (*provider.Gateway, *providermock.MockAdapter, *cachemock.MockTokenCache) {
		ctrl := gomock.NewController(t)
		adapter := providermock.NewMockAdapter(ctrl)
		tokens := cachemock.NewMockTokenCache(ctrl)
		links := providermock.NewMockCustomerLinks(ctrl)
		gw := provider.NewGateway(map[string]provider.Adapter{"foreup": adapter}, tokens, links, config.NewTestConfig(), logger)
		return gw, adapter, tokens
	}

	t.Run("tee times are queried with the course tee sheet", func(t *testing.T) {
		gw, adapter, _ := setup(t)
		date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
		adapter.EXPECT().GetTeeTimes(ctx, "tok", provider.TeeTimeQuery{
			CourseID:   "19765",
			TeeSheetID: "3412",
			Date:       date,
			StartTime:  "0000",
			EndTime:    "2359",
		}).Return([]shared.ProviderTeeTime{{ProviderTeeTimeID: "a"}, {ProviderTeeTimeID: "b"}}, nil)

		got, err := gw.GetTeeTimes(ctx, session, date, "0000", "2359")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("delete failure is upstream", func(t *testing.T) {
		gw, adapter, _ := setup(t)
		adapter.EXPECT().DeleteBooking(ctx, "tok", "19765", "3412", "pb-1").Return(errors.New("503"))

		err := gw.DeleteBooking(ctx, session, "pb-1")

		require.True(t, errs.Is(err, errs.ErrUpstream))
		assert.Equal(t, "Error deleting booking on provider", errs.PublicMessage(err))
	})

	t.Run("slot update forwards the slot", func(t *testing.T) {
		gw, adapter, _ := setup(t)
		upd := shared.SlotUpdate{Name: "Guest"}
		adapter.EXPECT().UpdateTeeTime(ctx, "tok", "19765", "3412", "pb-1", "pb-1-2", upd).Return(nil)

		require.NoError(t, gw.UpdateTeeTime(ctx, session, "pb-1", "pb-1-2", upd))
	})

	t.Run("a failed cache write still returns the fresh token", func(t *testing.T) {
		gw, adapter, tokens := setup(t)
		gomock.InOrder(
			tokens.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil),
			adapter.EXPECT().GetToken(ctx).Return("fresh", nil),
			tokens.EXPECT().Set(ctx, gomock.Any(), "fresh", 24*time.Hour).Return(errors.New("READONLY")),
		)

		got, err := gw.Session(ctx, course)

		require.NoError(t, err)
		assert.Equal(t, "fresh", got.Token)
	})
}
