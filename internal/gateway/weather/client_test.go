//go:build unit

package weather_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teetime-exchange/internal/gateway/weather"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
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

func newClient(t *testing.T, tokens *memCache, h http.Handler) *weather.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg := config.WeatherConfig{
		BaseURL:      srv.URL,
		ClientID:     "cid",
		ClientSecret: "csecret",
		Timeout:      time.Second,
		LangLocale:   "en_US",
	}
	return weather.NewClient(cfg, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_AcceptQuote(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v0/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		_, _ = io.WriteString(w, `{"access_token":"sw-token","expires_in":3600}`)
	})
	reservationID := uuid.New()
	mux.HandleFunc("/v0/quote/q-1/accept", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sw-token", r.Header.Get("Authorization"))
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "12.34", in["price_charged"])
		assert.Equal(t, reservationID.String(), in["reservation_id"])
		assert.Equal(t, "en_US", in["lang_locale"])
		_, _ = io.WriteString(w, `{"id":"g-9","quote_id":"q-1","price_charged":"12.34","status":"active"}`)
	})
	tokens := &memCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
	c := newClient(t, tokens, mux)

	req := shared.AcceptQuoteRequest{
		QuoteID:       "q-1",
		PriceCharged:  1234,
		ReservationID: reservationID,
		User:          shared.UserSnapshot{Email: "ada@example.com", Name: "Ada"},
	}
	g, err := c.AcceptQuote(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "g-9", g.ID)
	assert.Equal(t, int64(1234), g.Amount)
	assert.Equal(t, "sw-token", tokens.values[weather.TokenCacheKey])
	assert.Equal(t, 59*time.Minute, tokens.ttls[weather.TokenCacheKey])

	// second call reuses the cached token
	_, err = c.AcceptQuote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}

func TestClient_UnauthorizedEvictsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v0/guarantee/g-1/cancel", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	tokens := &memCache{values: map[string]string{weather.TokenCacheKey: "expired"}, ttls: map[string]time.Duration{}}
	c := newClient(t, tokens, mux)

	err := c.CancelGuarantee(context.Background(), "g-1")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUpstream))
	_, ok := tokens.values[weather.TokenCacheKey]
	assert.False(t, ok)
}

func TestClient_GetQuoteByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v0/quote/q-7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"q-7","price_charged":9.5,"currency":"USD","coverage_title":"Rain","expiration_date":"2026-05-01T10:00:00Z"}`)
	})
	tokens := &memCache{values: map[string]string{weather.TokenCacheKey: "tok"}, ttls: map[string]time.Duration{}}
	c := newClient(t, tokens, mux)

	q, err := c.GetQuoteByID(context.Background(), "q-7")

	require.NoError(t, err)
	assert.Equal(t, int64(950), q.Price)
	assert.Equal(t, "Rain", q.Coverage)
	assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), q.ExpiresAt.UTC())
}

func TestClient_QuoteLifecycle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v0/quote/guarantee", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "2030-06-01T08:00:00", in["reservation_start_local"])
		assert.Equal(t, "36.5", in["latitude"])
		assert.Equal(t, "250.00", in["exposure_total"])
		assert.Equal(t, "USD", in["currency"])
		_, _ = io.WriteString(w, `{"id":"q-2","price_charged":"15.75","currency":"USD","coverage_title":"Rain"}`)
	})
	cancelled := false
	mux.HandleFunc("/v0/quote/q-2/cancel", func(w http.ResponseWriter, r *http.Request) {
		cancelled = r.Method == http.MethodPost
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/v0/guarantee/g-2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"g-2","quote_id":"q-2","reservation_id":"r-1","price_charged":"15.75","status":"cancelled"}`)
	})
	tokens := &memCache{values: map[string]string{weather.TokenCacheKey: "tok"}, ttls: map[string]time.Duration{}}
	c := newClient(t, tokens, mux)
	ctx := context.Background()

	q, err := c.CreateQuote(ctx, weather.QuoteParams{
		ReservationStart: time.Date(2030, 6, 1, 8, 0, 0, 0, time.UTC),
		ReservationEnd:   time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
		Latitude:         decimal.RequireFromString("36.5"),
		Longitude:        decimal.RequireFromString("-121.9"),
		ExposureTotal:    25000,
	})
	require.NoError(t, err)
	assert.Equal(t, "q-2", q.ID)
	assert.Equal(t, int64(1575), q.Price)

	require.NoError(t, c.CancelQuote(ctx, q.ID))
	assert.True(t, cancelled)

	g, err := c.GetGuaranteeByID(ctx, "g-2")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", g.Status)
	assert.Equal(t, int64(1575), g.PriceCharged)
}
