package commands

//go:generate mockgen -source=tokenize.go -destination=../../../tests/mock/commands/tokenize_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strconv"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/cart"
	"teetime-exchange/internal/domain/money"
	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/domain/transfer"
	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlayerCount = errs.Validation("Invalid number of players")
	ErrNotEnoughSpots     = errs.Validation("Not enough spots available for this tee time")
)

type TokenizeBookingRequest struct {
	UserID    uuid.UUID
	TeeTimeID uuid.UUID
	PaymentID string
	Players   int
}

type TokenizeResult struct {
	BookingIDs         []uuid.UUID
	ProviderBookingIDs []string
	TotalAmount        int64
	Taxes              booking.TaxBreakdown
	WeatherGuaranteeID *string
	// Confirmation is the data sent with the purchase confirmation.
	Confirmation map[string]string
}

type TokenizationEngine interface {
	TokenizeBooking(ctx context.Context, req TokenizeBookingRequest) (*TokenizeResult, error)
	ConfirmBooking(ctx context.Context, paymentID string) (int64, error)
	AttachWeatherGuarantee(ctx context.Context, c *cart.Cart) error
}

type tokenizationEngine struct {
	uow     shared.UnitOfWork
	gw      Gateways
	comp    compensator
	clock   clock.Clock
	logger  *slog.Logger
	noteKey string
}

func NewTokenizationEngine(uow shared.UnitOfWork, gw Gateways, clk clock.Clock, logger *slog.Logger, cfg config.Config) TokenizationEngine {
	return &tokenizationEngine{
		uow:     uow,
		gw:      gw,
		comp:    compensator{uow: uow, gw: gw, logger: logger},
		clock:   clk,
		logger:  logger,
		noteKey: cfg.App.BookingNoteSettingKey,
	}
}

// pendingBooking is one sub-booking between provider creation and commit.
type pendingBooking struct {
	booking *booking.Booking
	slots   []booking.Slot
}

func (e *tokenizationEngine) TokenizeBooking(ctx context.Context, req TokenizeBookingRequest) (*TokenizeResult, error) {
	start := e.clock.Now()
	defer func() { e.gw.Metrics.ObserveTokenization(clock.Since(e.clock, start)) }()

	if req.Players <= 0 {
		return nil, ErrInvalidPlayerCount
	}

	reads := e.uow.CommandReads()
	tt, err := reads.TeeTimeByID(ctx, req.TeeTimeID)
	if err != nil {
		return nil, err
	}
	if !tt.HasFirstHandSpots(req.Players) {
		return nil, ErrNotEnoughSpots
	}
	course, err := reads.CourseByID(ctx, tt.CourseID)
	if err != nil {
		return nil, err
	}
	user, err := reads.UserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	c, err := reads.CartForBooking(ctx, tt.CourseID, req.UserID, req.PaymentID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, err
	}
	charges, err := cart.Normalize(c)
	if err != nil {
		return nil, err
	}

	fh, _ := c.FirstHand()
	splits := playerSplits(fh, req.Players, course.MaxPlayersPerGroup)
	total := charges.TotalCents()
	amounts, err := booking.SplitAmount(total, splits)
	if err != nil {
		return nil, errs.Wrap(err, "split booking amount")
	}
	taxes := booking.ComputeTaxes(booking.TaxInput{
		GreenFeePerPlayer: money.FromCents(tt.GreenFee),
		Players:           req.Players,
		Charges:           charges,
		Rates:             tt.Rates,
	})

	session, err := e.gw.Provider.Session(ctx, *course)
	if err != nil {
		return nil, e.comp.refundProviderFailure(ctx, req.UserID, req.PaymentID, total, err)
	}
	customer, err := e.gw.Provider.FindOrCreateCustomer(ctx, session, *user)
	if err != nil {
		return nil, e.comp.refundProviderFailure(ctx, req.UserID, req.PaymentID, total, err)
	}

	note := e.bookingNote(ctx)
	now := e.clock.Now()
	pending := make([]pendingBooking, 0, len(splits))
	providerIDs := make([]string, 0, len(splits))
	for i, players := range splits {
		pb, perr := e.gw.Provider.CreateBooking(ctx, session, shared.ProviderBookingRequest{
			ProviderTeeTimeID: tt.ProviderTeeTimeID,
			ProviderDate:      tt.ProviderDate,
			Holes:             tt.NumberOfHoles,
			Players:           players,
			Customer:          *customer,
			TotalAmountPaid:   amounts[i],
			Note:              note,
		})
		if perr != nil {
			e.comp.releaseProviderBookings(ctx, session, providerIDs)
			return nil, e.comp.refundProviderFailure(ctx, req.UserID, req.PaymentID, total, perr)
		}
		providerIDs = append(providerIDs, pb.ID)

		cartID := c.ID
		b := booking.NewBooking(booking.NewBookingParams{
			OwnerID:           req.UserID,
			TeeTimeID:         tt.ID,
			CourseID:          tt.CourseID,
			ProviderBookingID: pb.ID,
			TotalAmount:       amounts[i],
			GreenFeePerPlayer: tt.GreenFee,
			PlayerCount:       players,
			Status:            booking.StatusReserved,
			CartID:            &cartID,
			ProviderPaymentID: req.PaymentID,
		}, now)
		slots := e.gw.Provider.SlotsForBooking(session, b.ID(), players, *customer, pb.ID)
		e.pushGuestNames(ctx, session, pb.ID, slots)
		pending = append(pending, pendingBooking{booking: b, slots: slots})
	}

	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, terr := tx.TeeTimes().ReserveFirstHandSpots(ctx, tx.DB(), tt.ID, req.Players)
		if terr != nil {
			return terr
		}
		if n == 0 {
			return ErrNotEnoughSpots
		}
		for _, p := range pending {
			if terr = tx.Bookings().Create(ctx, tx.DB(), p.booking); terr != nil {
				return terr
			}
			if terr = tx.Bookings().CreateSlots(ctx, tx.DB(), p.slots); terr != nil {
				return terr
			}
			t := transfer.New(transfer.Params{
				Amount:         p.booking.TotalAmount(),
				BookingID:      p.booking.ID(),
				TransactionID:  req.PaymentID,
				FromUserID:     transfer.PlatformSellerID,
				ToUserID:       req.UserID,
				CourseID:       tt.CourseID,
				PurchasedPrice: p.booking.TotalAmount(),
			}, now)
			if terr = tx.Transfers().Create(ctx, tx.DB(), t); terr != nil {
				return terr
			}
		}
		return nil
	})
	if err != nil {
		e.logger.ErrorContext(ctx, "booking transaction failed",
			slog.String("payment_id", req.PaymentID),
			slog.String("tee_time_id", tt.ID.String()),
			slog.String("error", err.Error()))
		e.comp.releaseProviderBookings(ctx, session, providerIDs)
		return nil, err
	}

	result := &TokenizeResult{
		ProviderBookingIDs: providerIDs,
		TotalAmount:        total,
		Taxes:              taxes,
	}
	for _, p := range pending {
		result.BookingIDs = append(result.BookingIDs, p.booking.ID())
	}

	if charges.WeatherQuoteID != "" {
		result.WeatherGuaranteeID = e.acceptWeather(ctx, *user, pending[0].booking.ID(), req.PaymentID,
			charges.WeatherQuoteID, money.ToCents(charges.SensibleCharge))
	}

	result.Confirmation = confirmationData(course, tt, req, charges, taxes)
	notify(ctx, e.logger, e.gw.Notifier, shared.TemplatePurchaseConfirmation, req.UserID, result.Confirmation)

	e.logger.InfoContext(ctx, "booking tokenized",
		slog.String("payment_id", req.PaymentID),
		slog.String("tee_time_id", tt.ID.String()),
		slog.Int("bookings", len(pending)),
		slog.Int64("total", total))
	return result, nil
}

func (e *tokenizationEngine) ConfirmBooking(ctx context.Context, paymentID string) (int64, error) {
	var confirmed int64
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().ConfirmByPayment(ctx, tx.DB(), paymentID)
		confirmed = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return confirmed, nil
}

// AttachWeatherGuarantee accepts the cart's weather quote for the bookings of
// its payment unless one of them already carries a guarantee.
func (e *tokenizationEngine) AttachWeatherGuarantee(ctx context.Context, c *cart.Cart) error {
	item, ok := c.Sensible()
	if !ok || item.QuoteID == "" {
		return nil
	}
	reads := e.uow.CommandReads()
	bookings, err := reads.BookingsByPayment(ctx, c.PaymentID)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		e.logger.WarnContext(ctx, "weather quote without bookings", slog.String("payment_id", c.PaymentID))
		return nil
	}
	for _, b := range bookings {
		if b.HasWeatherGuarantee() {
			return nil
		}
	}
	user, err := reads.UserByID(ctx, c.UserID)
	if err != nil {
		return err
	}
	e.acceptWeather(ctx, *user, bookings[0].ID(), c.PaymentID, item.QuoteID, item.PriceCents())
	return nil
}

// acceptWeather never fails the booking. On failure the guarantee stays empty
// and an admin is alerted.
func (e *tokenizationEngine) acceptWeather(ctx context.Context, user shared.UserSnapshot, bookingID uuid.UUID, paymentID, quoteID string, price int64) *string {
	g, err := e.gw.Weather.AcceptQuote(ctx, shared.AcceptQuoteRequest{
		QuoteID:       quoteID,
		PriceCharged:  price,
		ReservationID: bookingID,
		User:          user,
	})
	if err == nil {
		err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().SetWeatherGuarantee(ctx, tx.DB(), bookingID, g.ID, g.Amount)
		})
		if err == nil {
			return &g.ID
		}
		if cerr := e.gw.Weather.CancelGuarantee(ctx, g.ID); cerr != nil {
			e.logger.ErrorContext(ctx, "orphaned weather guarantee",
				slog.String("guarantee_id", g.ID),
				slog.String("error", cerr.Error()))
		}
	}

	e.logger.ErrorContext(ctx, "weather guarantee failed",
		slog.String("quote_id", quoteID),
		slog.String("booking_id", bookingID.String()),
		slog.String("error", err.Error()))
	e.comp.audit(ctx, shared.AuditEntry{
		EventID:   shared.AuditWeatherGuaranteeFailed,
		UserID:    user.ID,
		PaymentID: paymentID,
		Detail:    err.Error(),
	})
	notify(ctx, e.logger, e.gw.Notifier, shared.TemplateAdminAlert, user.ID, map[string]string{
		"subject":    "Weather guarantee acceptance failed",
		"quote_id":   quoteID,
		"booking_id": bookingID.String(),
		"payment_id": paymentID,
		"error":      err.Error(),
	})
	return nil
}

func (e *tokenizationEngine) pushGuestNames(ctx context.Context, s shared.ProviderSession, providerBookingID string, slots []booking.Slot) {
	for _, slot := range slots {
		if slot.SlotPosition <= 1 {
			continue
		}
		err := e.gw.Provider.UpdateTeeTime(ctx, s, providerBookingID, slot.SlotID, shared.SlotUpdate{Name: booking.GuestName})
		if err != nil {
			e.logger.WarnContext(ctx, "guest name update failed",
				slog.String("provider_booking_id", providerBookingID),
				slog.String("slot_id", slot.SlotID),
				slog.String("error", err.Error()))
		}
	}
}

func (e *tokenizationEngine) bookingNote(ctx context.Context) string {
	if e.noteKey == "" {
		return ""
	}
	note, err := e.gw.Settings.Get(ctx, e.noteKey)
	if err != nil {
		e.logger.WarnContext(ctx, "booking note setting unavailable",
			slog.String("key", e.noteKey),
			slog.String("error", err.Error()))
		return ""
	}
	return note
}

// playerSplits prefers the cart's own group layout when it adds up.
func playerSplits(item *cart.FirstHandItem, players, maxPerBooking int) []int {
	if item != nil && len(item.GroupSplits) > 0 {
		sum := 0
		for _, n := range item.GroupSplits {
			sum += n
		}
		if sum == players {
			return item.GroupSplits
		}
	}
	if maxPerBooking > 0 && players > maxPerBooking {
		return booking.GroupSplits(players, maxPerBooking)
	}
	return []int{players}
}

func confirmationData(course *shared.CourseSnapshot, tt *teetime.TeeTime, req TokenizeBookingRequest, ch cart.Charges, taxes booking.TaxBreakdown) map[string]string {
	merchandise := ch.MerchandiseCharge.Add(ch.MerchandiseWithTaxOverrideCharge)
	return map[string]string{
		"course_name":          course.Name,
		"tee_time":             tt.ProviderDate,
		"players":              strconv.Itoa(req.Players),
		"payment_id":           req.PaymentID,
		"green_fee_per_player": money.FormatCents(tt.GreenFee),
		"green_fees":           money.FormatUSD(ch.PrimaryGreenFeeCharge),
		"cart_fees":            money.FormatUSD(ch.CartFeeCharge),
		"weather_guarantee":    money.FormatUSD(ch.SensibleCharge),
		"merchandise":          money.FormatUSD(merchandise),
		"charity":              money.FormatUSD(ch.CharityCharge),
		"convenience_fee":      money.FormatUSD(ch.ConvenienceCharge),
		"taxes":                money.FormatUSD(ch.Taxes),
		"additional_taxes":     money.FormatUSD(taxes.AdditionalTaxes),
		"total":                money.FormatUSD(ch.Total),
	}
}
