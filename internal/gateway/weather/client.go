package weather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"teetime-exchange/internal/domain/money"
	"teetime-exchange/internal/infra/cache"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenCacheKey holds the shared Sensible access token.
const TokenCacheKey = "sensible_access_token"

var _ shared.WeatherGuaranteeGateway = (*Client)(nil)

// Client is the Sensible Weather API. Only AcceptQuote and CancelGuarantee
// back ledger flows; the remaining calls serve checkout and support tooling.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	locale       string
	hc           *http.Client
	tokens       cache.TokenCache
	logger       *slog.Logger
}

func NewClient(cfg config.WeatherConfig, tokens cache.TokenCache, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		locale:       cfg.LangLocale,
		hc:           &http.Client{Timeout: cfg.Timeout},
		tokens:       tokens,
		logger:       logger,
	}
}

type QuoteParams struct {
	ReservationStart time.Time
	ReservationEnd   time.Time
	Latitude         decimal.Decimal
	Longitude        decimal.Decimal
	ExposureTotal    int64
	Currency         string
	Timezone         string
}

type Quote struct {
	ID        string
	Price     int64
	Currency  string
	Coverage  string
	ExpiresAt time.Time
}

type Guarantee struct {
	ID            string
	QuoteID       string
	ReservationID string
	PriceCharged  int64
	Status        string
	CreatedAt     time.Time
}

type quoteBody struct {
	ID             string          `json:"id"`
	Price          decimal.Decimal `json:"price_charged"`
	Currency       string          `json:"currency"`
	CoverageTitle  string          `json:"coverage_title"`
	ExpirationDate time.Time       `json:"expiration_date"`
}

func (q quoteBody) toQuote() *Quote {
	return &Quote{
		ID:        q.ID,
		Price:     money.ToCents(q.Price),
		Currency:  q.Currency,
		Coverage:  q.CoverageTitle,
		ExpiresAt: q.ExpirationDate,
	}
}

type guaranteeBody struct {
	ID            string          `json:"id"`
	QuoteID       string          `json:"quote_id"`
	ReservationID string          `json:"reservation_id"`
	PriceCharged  decimal.Decimal `json:"price_charged"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (g guaranteeBody) toGuarantee() *Guarantee {
	return &Guarantee{
		ID:            g.ID,
		QuoteID:       g.QuoteID,
		ReservationID: g.ReservationID,
		PriceCharged:  money.ToCents(g.PriceCharged),
		Status:        g.Status,
		CreatedAt:     g.CreatedAt,
	}
}

type quoteRequest struct {
	ReservationStart string `json:"reservation_start_local"`
	ReservationEnd   string `json:"reservation_end_local"`
	Latitude         string `json:"latitude"`
	Longitude        string `json:"longitude"`
	ExposureTotal    string `json:"exposure_total"`
	Currency         string `json:"currency"`
	Timezone         string `json:"timezone,omitempty"`
	LangLocale       string `json:"lang_locale"`
}

func (c *Client) quoteRequest(p QuoteParams) quoteRequest {
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	return quoteRequest{
		ReservationStart: p.ReservationStart.Format("2006-01-02T15:04:05"),
		ReservationEnd:   p.ReservationEnd.Format("2006-01-02T15:04:05"),
		Latitude:         p.Latitude.String(),
		Longitude:        p.Longitude.String(),
		ExposureTotal:    money.FromCents(p.ExposureTotal).StringFixed(2),
		Currency:         currency,
		Timezone:         p.Timezone,
		LangLocale:       c.locale,
	}
}

// GetQuote prices a guarantee without persisting a quote.
func (c *Client) GetQuote(ctx context.Context, p QuoteParams) (*Quote, error) {
	r := c.quoteRequest(p)
	q := url.Values{}
	q.Set("reservation_start_local", r.ReservationStart)
	q.Set("reservation_end_local", r.ReservationEnd)
	q.Set("latitude", r.Latitude)
	q.Set("longitude", r.Longitude)
	q.Set("exposure_total", r.ExposureTotal)
	q.Set("currency", r.Currency)
	q.Set("lang_locale", r.LangLocale)
	var out quoteBody
	if err := c.call(ctx, http.MethodGet, "/v0/quote/guarantee?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.toQuote(), nil
}

func (c *Client) GetQuoteByID(ctx context.Context, quoteID string) (*Quote, error) {
	var out quoteBody
	if err := c.call(ctx, http.MethodGet, "/v0/quote/"+url.PathEscape(quoteID), nil, &out); err != nil {
		return nil, err
	}
	return out.toQuote(), nil
}

func (c *Client) CreateQuote(ctx context.Context, p QuoteParams) (*Quote, error) {
	var out quoteBody
	if err := c.call(ctx, http.MethodPost, "/v0/quote/guarantee", c.quoteRequest(p), &out); err != nil {
		return nil, err
	}
	return out.toQuote(), nil
}

type acceptUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type acceptRequest struct {
	PriceCharged  string     `json:"price_charged"`
	ReservationID string     `json:"reservation_id"`
	LangLocale    string     `json:"lang_locale"`
	User          acceptUser `json:"user"`
}

func (c *Client) AcceptQuote(ctx context.Context, req shared.AcceptQuoteRequest) (*shared.WeatherGuarantee, error) {
	body := acceptRequest{
		PriceCharged:  money.FromCents(req.PriceCharged).StringFixed(2),
		ReservationID: req.ReservationID.String(),
		LangLocale:    c.locale,
		User: acceptUser{
			Email: req.User.Email,
			Name:  req.User.Name,
			Phone: req.User.Phone,
		},
	}
	var out guaranteeBody
	path := "/v0/quote/" + url.PathEscape(req.QuoteID) + "/accept"
	if err := c.call(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, errs.UpstreamCause("Error accepting weather guarantee quote", err)
	}
	return &shared.WeatherGuarantee{ID: out.ID, Amount: money.ToCents(out.PriceCharged)}, nil
}

func (c *Client) CancelQuote(ctx context.Context, quoteID string) error {
	return c.call(ctx, http.MethodPost, "/v0/quote/"+url.PathEscape(quoteID)+"/cancel", nil, nil)
}

// GetGuarantee lists guarantees attached to one reservation.
func (c *Client) GetGuarantee(ctx context.Context, reservationID uuid.UUID) ([]*Guarantee, error) {
	var out []guaranteeBody
	if err := c.call(ctx, http.MethodGet, "/v0/guarantee?reservation_id="+url.QueryEscape(reservationID.String()), nil, &out); err != nil {
		return nil, err
	}
	res := make([]*Guarantee, 0, len(out))
	for _, g := range out {
		res = append(res, g.toGuarantee())
	}
	return res, nil
}

func (c *Client) GetGuaranteeByID(ctx context.Context, guaranteeID string) (*Guarantee, error) {
	var out guaranteeBody
	if err := c.call(ctx, http.MethodGet, "/v0/guarantee/"+url.PathEscape(guaranteeID), nil, &out); err != nil {
		return nil, err
	}
	return out.toGuarantee(), nil
}

func (c *Client) CancelGuarantee(ctx context.Context, guaranteeID string) error {
	if err := c.call(ctx, http.MethodPut, "/v0/guarantee/"+url.PathEscape(guaranteeID)+"/cancel", nil, nil); err != nil {
		return errs.UpstreamCause("Error cancelling weather guarantee", err)
	}
	return nil
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	token, ok, err := c.tokens.Get(ctx, TokenCacheKey)
	if err != nil {
		c.logger.WarnContext(ctx, "weather token cache read failed", slog.String("error", err.Error()))
	}
	if ok {
		return token, nil
	}

	var out tokenResponse
	body := tokenRequest{ClientID: c.clientID, ClientSecret: c.clientSecret, GrantType: "client_credentials"}
	if err := c.do(ctx, http.MethodPost, "/v0/oauth/token", "", body, &out); err != nil {
		return "", errs.Wrap(err, "sensible: fetch access token")
	}
	if out.AccessToken == "" {
		return "", errs.New("sensible: empty access token")
	}
	ttl := time.Duration(out.ExpiresIn)*time.Second - time.Minute
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := c.tokens.Set(ctx, TokenCacheKey, out.AccessToken, ttl); err != nil {
		c.logger.WarnContext(ctx, "weather token cache write failed", slog.String("error", err.Error()))
	}
	return out.AccessToken, nil
}

// call authenticates and performs one request. A 401 evicts the cached token
// so the next call starts a fresh session.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}
	err = c.do(ctx, method, path, token, in, out)
	var se *statusError
	if errs.As(err, &se) && se.code == http.StatusUnauthorized {
		if derr := c.tokens.Delete(ctx, TokenCacheKey); derr != nil {
			c.logger.WarnContext(ctx, "weather token eviction failed", slog.String("error", derr.Error()))
		}
	}
	return err
}

type statusError struct {
	method string
	path   string
	code   int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("sensible: %s %s returned %d: %s", e.method, e.path, e.code, e.body)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "sensible: marshal request")
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "sensible: build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return errs.Wrapf(err, "sensible: %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "sensible: read response")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		b := string(raw)
		if len(b) > 256 {
			b = b[:256]
		}
		return &statusError{method: method, path: path, code: resp.StatusCode, body: b}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrap(err, "sensible: decode response")
	}
	return nil
}
