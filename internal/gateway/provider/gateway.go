package provider

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/infra/cache"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownProvider = errs.New("no adapter registered for provider")

// Gateway resolves course providers to adapters and shares their auth tokens
// through the token cache. It never retries a failed provider call.
type Gateway struct {
	adapters map[string]Adapter
	tokens   cache.TokenCache
	links    CustomerLinks
	env      string
	ttl      time.Duration
	logger   *slog.Logger
	account  func() int
}

func NewGateway(adapters map[string]Adapter, tokens cache.TokenCache, links CustomerLinks, cfg config.Config, logger *slog.Logger) *Gateway {
	ttl := cfg.Provider.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Gateway{
		adapters: adapters,
		tokens:   tokens,
		links:    links,
		env:      cfg.App.Environment,
		ttl:      ttl,
		logger:   logger,
		account:  accountNumber,
	}
}

// accountNumber is a pseudo-random five digit provider account number.
func accountNumber() int {
	return 10000 + rand.IntN(90000) // #nosec G404
}

func tokenKey(providerID, courseID uuid.UUID, env string) string {
	return fmt.Sprintf("provider_token:%s:%s:%s", providerID, courseID, env)
}

func (g *Gateway) adapter(key string) (Adapter, error) {
	a, ok := g.adapters[key]
	if !ok {
		return nil, errs.Wrapf(ErrUnknownProvider, "provider %q", key)
	}
	return a, nil
}

func (g *Gateway) Session(ctx context.Context, course shared.CourseSnapshot) (shared.ProviderSession, error) {
	a, err := g.adapter(course.ProviderKey)
	if err != nil {
		return shared.ProviderSession{}, err
	}
	key := tokenKey(course.ProviderID, course.ID, g.env)
	token, ok, err := g.tokens.Get(ctx, key)
	if err != nil {
		// a cache outage only costs an extra token call
		g.logger.WarnContext(ctx, "provider token cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	if !ok {
		token, err = a.GetToken(ctx)
		if err != nil {
			return shared.ProviderSession{}, g.upstream(ctx, "Error getting provider token", course, err)
		}
		if serr := g.tokens.Set(ctx, key, token, g.ttl); serr != nil {
			g.logger.WarnContext(ctx, "provider token cache write failed",
				slog.String("key", key),
				slog.String("error", serr.Error()))
		}
	}
	return shared.ProviderSession{ProviderKey: course.ProviderKey, Token: token, Course: course}, nil
}

func (g *Gateway) InvalidateToken(ctx context.Context, course shared.CourseSnapshot) error {
	return g.tokens.Delete(ctx, tokenKey(course.ProviderID, course.ID, g.env))
}

func (g *Gateway) FindOrCreateCustomer(ctx context.Context, s shared.ProviderSession, user shared.UserSnapshot) (*shared.ProviderCustomer, error) {
	course := s.Course
	existing, err := g.links.Find(ctx, user.ID, course.ID, course.ProviderID)
	if err == nil {
		return existing, nil
	}
	if !errs.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	a, err := g.adapter(s.ProviderKey)
	if err != nil {
		return nil, err
	}
	number := g.account()
	first, last := splitName(user.Name)
	customerID, err := a.CreateCustomer(ctx, s.Token, course.ProviderCourseID, CustomerPayload{
		AccountNumber: number,
		FirstName:     first,
		LastName:      last,
		Email:         user.Email,
		Phone:         user.Phone,
		Username:      user.Handle,
	})
	if err != nil {
		return nil, g.upstream(ctx, "Error creating customer on provider", course, err)
	}

	created := shared.ProviderCustomer{
		PlayerNumber: number,
		CustomerID:   customerID,
		Name:         user.Name,
		Username:     user.Handle,
	}
	if err = g.links.Save(ctx, user.ID, course.ID, course.ProviderID, created); err != nil {
		return nil, err
	}
	// a concurrent request may have linked first; the stored row wins
	stored, err := g.links.Find(ctx, user.ID, course.ID, course.ProviderID)
	if err != nil {
		return &created, nil
	}
	return stored, nil
}

func (g *Gateway) CreateBooking(ctx context.Context, s shared.ProviderSession, req shared.ProviderBookingRequest) (*shared.ProviderBooking, error) {
	a, err := g.adapter(s.ProviderKey)
	if err != nil {
		return nil, err
	}
	id, err := a.CreateBooking(ctx, s.Token, s.Course.ProviderCourseID, s.Course.ProviderTeeSheetID, BookingPayload{
		TeeTimeID:       req.ProviderTeeTimeID,
		Start:           req.ProviderDate,
		Holes:           req.Holes,
		Players:         req.Players,
		PersonID:        req.Customer.CustomerID,
		Name:            req.Customer.Name,
		TotalAmountPaid: req.TotalAmountPaid,
		Note:            req.Note,
	})
	if err != nil {
		return nil, g.upstream(ctx, "Error creating booking on provider", s.Course, err)
	}
	return &shared.ProviderBooking{ID: id}, nil
}

func (g *Gateway) UpdateTeeTime(ctx context.Context, s shared.ProviderSession, providerBookingID, slotID string, upd shared.SlotUpdate) error {
	a, err := g.adapter(s.ProviderKey)
	if err != nil {
		return err
	}
	err = a.UpdateTeeTime(ctx, s.Token, s.Course.ProviderCourseID, s.Course.ProviderTeeSheetID, providerBookingID, slotID, upd)
	if err != nil {
		return g.upstream(ctx, "Error updating tee time on provider", s.Course, err)
	}
	return nil
}

func (g *Gateway) DeleteBooking(ctx context.Context, s shared.ProviderSession, providerBookingID string) error {
	a, err := g.adapter(s.ProviderKey)
	if err != nil {
		return err
	}
	if err = a.DeleteBooking(ctx, s.Token, s.Course.ProviderCourseID, s.Course.ProviderTeeSheetID, providerBookingID); err != nil {
		return g.upstream(ctx, "Error deleting booking on provider", s.Course, err)
	}
	return nil
}

// SlotsForBooking lays out the provider slots of a new booking. Position 1
// belongs to the customer, every other position is a guest.
func (g *Gateway) SlotsForBooking(s shared.ProviderSession, bookingID uuid.UUID, players int, customer shared.ProviderCustomer, providerBookingID string) []booking.Slot {
	a, err := g.adapter(s.ProviderKey)
	if err != nil {
		return nil
	}
	ids := a.SlotIDs(providerBookingID, players)
	slots := make([]booking.Slot, 0, len(ids))
	for i, id := range ids {
		slot := booking.Slot{
			BookingID:    bookingID,
			SlotID:       id,
			SlotPosition: i + 1,
			Name:         booking.GuestName,
		}
		if i == 0 {
			slot.CustomerID = customer.CustomerID
			slot.Name = customer.Name
		}
		slots = append(slots, slot)
	}
	return slots
}

func (g *Gateway) GetTeeTimes(ctx context.Context, s shared.ProviderSession, date time.Time, startTime, endTime string) ([]shared.ProviderTeeTime, error) {
	a, err := g.adapter(s.ProviderKey)
	if err != nil {
		return nil, err
	}
	out, err := a.GetTeeTimes(ctx, s.Token, TeeTimeQuery{
		CourseID:   s.Course.ProviderCourseID,
		TeeSheetID: s.Course.ProviderTeeSheetID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
	})
	if err != nil {
		return nil, g.upstream(ctx, "Error getting tee times from provider", s.Course, err)
	}
	return out, nil
}

func (g *Gateway) upstream(ctx context.Context, msg string, course shared.CourseSnapshot, cause error) error {
	g.logger.ErrorContext(ctx, msg,
		slog.String("provider", course.ProviderKey),
		slog.String("course_id", course.ID.String()),
		slog.String("error", cause.Error()))
	return errs.UpstreamCause(msg, cause)
}

func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	first, last, found := strings.Cut(full, " ")
	if !found {
		return full, ""
	}
	return first, strings.TrimSpace(last)
}
