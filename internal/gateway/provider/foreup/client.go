package foreup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"teetime-exchange/internal/domain/money"
	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/gateway/provider"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Key is the provider key courses use to select this adapter.
const Key = "foreup"

// Client talks to the foreUP REST API, which wraps every payload in a
// JSON:API style {"data": {...}} envelope.
type Client struct {
	baseURL  string
	username string
	password string
	hc       *http.Client
}

var _ provider.Adapter = (*Client)(nil)

func NewClient(cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.ForeUpBaseURL, "/"),
		username: cfg.ForeUpUsername,
		password: cfg.ForeUpPassword,
		hc:       &http.Client{Timeout: cfg.Timeout},
	}
}

type resource[T any] struct {
	Type       string `json:"type"`
	ID         string `json:"id,omitempty"`
	Attributes T      `json:"attributes"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type tokenAttributes struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Token    string `json:"token,omitempty"`
}

type teeTimeAttributes struct {
	Time           string          `json:"time"`
	Holes          int             `json:"holes"`
	MaxPlayers     int             `json:"maxPlayers"`
	AvailableSpots int             `json:"availableSpots"`
	GreenFee       decimal.Decimal `json:"greenFee"`
	CartFee        decimal.Decimal `json:"cartFee"`
}

type bookingAttributes struct {
	Start           string `json:"start"`
	Holes           int    `json:"holes"`
	Players         int    `json:"players"`
	PersonID        string `json:"personId"`
	Name            string `json:"name"`
	TotalAmountPaid string `json:"totalAmountPaid"`
	Details         string `json:"details,omitempty"`
	TeeTimeID       string `json:"teetimeId"`
}

type bookedPlayerAttributes struct {
	PersonID string `json:"personId,omitempty"`
	Name     string `json:"name"`
}

type customerAttributes struct {
	AccountNumber int    `json:"accountNumber"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Username      string `json:"username,omitempty"`
}

func (c *Client) GetToken(ctx context.Context) (string, error) {
	body := envelope[resource[tokenAttributes]]{Data: resource[tokenAttributes]{
		Type:       "tokens",
		Attributes: tokenAttributes{Email: c.username, Password: c.password},
	}}
	var out envelope[resource[tokenAttributes]]
	if err := c.do(ctx, http.MethodPost, "/tokens", "", body, &out); err != nil {
		return "", err
	}
	if out.Data.Attributes.Token == "" {
		return "", errs.New("foreup: empty token")
	}
	return out.Data.Attributes.Token, nil
}

func (c *Client) GetTeeTimes(ctx context.Context, token string, q provider.TeeTimeQuery) ([]shared.ProviderTeeTime, error) {
	params := url.Values{}
	params.Set("date", q.Date.Format(time.DateOnly))
	params.Set("startTime", q.StartTime)
	params.Set("endTime", q.EndTime)
	path := fmt.Sprintf("/courses/%s/teesheets/%s/teetimes?%s", q.CourseID, q.TeeSheetID, params.Encode())

	var out envelope[[]resource[teeTimeAttributes]]
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	res := make([]shared.ProviderTeeTime, 0, len(out.Data))
	for _, r := range out.Data {
		start, err := teetime.ParseProviderDate(r.Attributes.Time)
		if err != nil {
			return nil, errs.Wrapf(err, "foreup: tee time %s has bad time %q", r.ID, r.Attributes.Time)
		}
		res = append(res, shared.ProviderTeeTime{
			ProviderTeeTimeID: r.ID,
			ProviderDate:      r.Attributes.Time,
			Time:              start.Hour()*100 + start.Minute(),
			Holes:             r.Attributes.Holes,
			MaxPlayers:        r.Attributes.MaxPlayers,
			AvailableSpots:    r.Attributes.AvailableSpots,
			GreenFee:          money.ToCents(r.Attributes.GreenFee),
			CartFee:           money.ToCents(r.Attributes.CartFee),
		})
	}
	return res, nil
}

func (c *Client) CreateBooking(ctx context.Context, token, courseID, teeSheetID string, b provider.BookingPayload) (string, error) {
	body := envelope[resource[bookingAttributes]]{Data: resource[bookingAttributes]{
		Type: "bookings",
		Attributes: bookingAttributes{
			Start:           b.Start,
			Holes:           b.Holes,
			Players:         b.Players,
			PersonID:        b.PersonID,
			Name:            b.Name,
			TotalAmountPaid: money.FromCents(b.TotalAmountPaid).StringFixed(2),
			Details:         b.Note,
			TeeTimeID:       b.TeeTimeID,
		},
	}}
	var out envelope[resource[json.RawMessage]]
	path := fmt.Sprintf("/courses/%s/teesheets/%s/bookings", courseID, teeSheetID)
	if err := c.do(ctx, http.MethodPost, path, token, body, &out); err != nil {
		return "", err
	}
	if out.Data.ID == "" {
		return "", errs.New("foreup: booking response without id")
	}
	return out.Data.ID, nil
}

func (c *Client) UpdateTeeTime(ctx context.Context, token, courseID, teeSheetID, bookingID, slotID string, upd shared.SlotUpdate) error {
	body := envelope[resource[bookedPlayerAttributes]]{Data: resource[bookedPlayerAttributes]{
		Type:       "bookedPlayer",
		ID:         slotID,
		Attributes: bookedPlayerAttributes{PersonID: upd.CustomerID, Name: upd.Name},
	}}
	path := fmt.Sprintf("/courses/%s/teesheets/%s/bookings/%s/bookedPlayers/%s", courseID, teeSheetID, bookingID, slotID)
	return c.do(ctx, http.MethodPut, path, token, body, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, token, courseID, teeSheetID, bookingID string) error {
	path := fmt.Sprintf("/courses/%s/teesheets/%s/bookings/%s", courseID, teeSheetID, bookingID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *Client) CreateCustomer(ctx context.Context, token, courseID string, cu provider.CustomerPayload) (string, error) {
	body := envelope[resource[customerAttributes]]{Data: resource[customerAttributes]{
		Type: "customer",
		Attributes: customerAttributes{
			AccountNumber: cu.AccountNumber,
			FirstName:     cu.FirstName,
			LastName:      cu.LastName,
			Email:         cu.Email,
			Phone:         cu.Phone,
			Username:      cu.Username,
		},
	}}
	var out envelope[resource[json.RawMessage]]
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/courses/%s/customers", courseID), token, body, &out); err != nil {
		return "", err
	}
	if out.Data.ID == "" {
		return "", errs.New("foreup: customer response without id")
	}
	return out.Data.ID, nil
}

// SlotIDs follows foreUP's booked-player numbering: the lead player shares
// the booking id, the others get "-2", "-3", ...
func (c *Client) SlotIDs(providerBookingID string, players int) []string {
	ids := make([]string, 0, players)
	for i := 1; i <= players; i++ {
		if i == 1 {
			ids = append(ids, providerBookingID)
			continue
		}
		ids = append(ids, providerBookingID+"-"+strconv.Itoa(i))
	}
	return ids
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "foreup: marshal request")
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "foreup: build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("x-authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return errs.Wrapf(err, "foreup: %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "foreup: read response")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errs.New(fmt.Sprintf("foreup: %s %s returned %d: %s", method, path, resp.StatusCode, truncate(raw, 256)))
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrap(err, "foreup: decode response")
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}
