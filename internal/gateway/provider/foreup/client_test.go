//go:build unit

package foreup_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teetime-exchange/internal/gateway/provider"
	"teetime-exchange/internal/gateway/provider/foreup"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *foreup.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return foreup.NewClient(config.ProviderConfig{
		ForeUpBaseURL:  srv.URL + "/",
		ForeUpUsername: "api@course.test",
		ForeUpPassword: "secret",
		Timeout:        time.Second,
	})
}

func TestClient_GetToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tokens", r.URL.Path)
		var in map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		attrs := in["data"]["attributes"].(map[string]any)
		assert.Equal(t, "api@course.test", attrs["email"])
		_, _ = io.WriteString(w, `{"data":{"type":"tokens","attributes":{"token":"jwt-abc"}}}`)
	})

	token, err := c.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
}

func TestClient_GetTeeTimes(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/19765/teesheets/3412/teetimes", r.URL.Path)
		assert.Equal(t, "2026-05-02", r.URL.Query().Get("date"))
		assert.Equal(t, "0600", r.URL.Query().Get("startTime"))
		assert.Equal(t, "Bearer tok", r.Header.Get("x-authorization"))
		_, _ = io.WriteString(w, `{"data":[
			{"type":"teetimes","id":"tt-1","attributes":{"time":"2026-05-02 07:10","holes":18,"maxPlayers":4,"availableSpots":3,"greenFee":45.5,"cartFee":"12.00"}}
		]}`)
	})

	got, err := c.GetTeeTimes(context.Background(), "tok", provider.TeeTimeQuery{
		CourseID:   "19765",
		TeeSheetID: "3412",
		Date:       time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  "0600",
		EndTime:    "1800",
	})

	require.NoError(t, err)
	want := []shared.ProviderTeeTime{{
		ProviderTeeTimeID: "tt-1",
		ProviderDate:      "2026-05-02 07:10",
		Time:              710,
		Holes:             18,
		MaxPlayers:        4,
		AvailableSpots:    3,
		GreenFee:          4550,
		CartFee:           1200,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tee times mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_CreateBooking(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/1/teesheets/2/bookings", r.URL.Path)
		var in struct {
			Data struct {
				Attributes map[string]any `json:"attributes"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "120.50", in.Data.Attributes["totalAmountPaid"])
		assert.Equal(t, "cust-9", in.Data.Attributes["personId"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"data":{"type":"bookings","id":"bk-77"}}`)
	})

	id, err := c.CreateBooking(context.Background(), "tok", "1", "2", provider.BookingPayload{
		TeeTimeID:       "tt-1",
		Start:           "2026-05-02 07:10",
		Players:         2,
		PersonID:        "cust-9",
		TotalAmountPaid: 12050,
	})

	require.NoError(t, err)
	assert.Equal(t, "bk-77", id)
}

func TestClient_ErrorStatus(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"errors":[{"detail":"tee time full"}]}`)
	})

	err := c.DeleteBooking(context.Background(), "tok", "1", "2", "bk-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned 422")
	assert.Contains(t, err.Error(), "tee time full")
}

func TestClient_SlotIDs(t *testing.T) {
	c := foreup.NewClient(config.ProviderConfig{})

	assert.Equal(t, []string{"bk-1", "bk-1-2", "bk-1-3"}, c.SlotIDs("bk-1", 3))
	assert.Empty(t, c.SlotIDs("bk-1", 0))
}
