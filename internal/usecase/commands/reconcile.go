package commands

//go:generate mockgen -source=reconcile.go -destination=../../../tests/mock/commands/reconcile_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"teetime-exchange/internal/domain/booking"
	"teetime-exchange/internal/domain/cart"
	"teetime-exchange/internal/domain/listing"
	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/domain/transfer"
	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventPaymentSucceeded = "payment_succeeded"
	EventPaymentFailed    = "payment_failed"
)

var (
	ErrInvalidWebhookPayload = errs.Validation("Invalid webhook payload")
	ErrWebhookCartMissing    = errs.Validation("Invalid webhook source. Cart missing.")
	ErrUnhandledEventType    = errs.Validation("Unhandled event type.")
	ErrListingUnavailable    = errs.Validation("Listing is no longer available")
)

type WebhookEvent struct {
	MerchantID     string
	EventID        string
	EventType      string
	PaymentID      string
	AmountReceived *int64
	CustomerID     string
	Timestamp      time.Time
}

type WebhookResult struct {
	EventType string
	Handled   []cart.ItemType
	Skipped   []cart.ItemType
}

type PaymentReconciler interface {
	ProcessWebhook(ctx context.Context, ev WebhookEvent) (*WebhookResult, error)
}

type paymentReconciler struct {
	uow    shared.UnitOfWork
	gw     Gateways
	engine TokenizationEngine
	offers OfferLedger
	comp   compensator
	clock  clock.Clock
	logger *slog.Logger
}

func NewPaymentReconciler(uow shared.UnitOfWork, gw Gateways, engine TokenizationEngine, offers OfferLedger, clk clock.Clock, logger *slog.Logger) PaymentReconciler {
	return &paymentReconciler{
		uow:    uow,
		gw:     gw,
		engine: engine,
		offers: offers,
		comp:   compensator{uow: uow, gw: gw, logger: logger},
		clock:  clk,
		logger: logger,
	}
}

// dispatch is the state of one webhook delivery.
type dispatch struct {
	cart   *cart.Cart
	amount int64
	result *WebhookResult
}

func (r *paymentReconciler) ProcessWebhook(ctx context.Context, ev WebhookEvent) (*WebhookResult, error) {
	outcome := "error"
	defer func() { r.gw.Metrics.WebhookProcessed(ev.EventType, outcome) }()

	if ev.PaymentID == "" || ev.AmountReceived == nil || ev.CustomerID == "" {
		return nil, ErrInvalidWebhookPayload
	}
	c, err := r.uow.CommandReads().CartByPayment(ctx, ev.PaymentID)
	if err != nil {
		return nil, notFoundAs(err, ErrWebhookCartMissing)
	}
	if ev.EventType != EventPaymentSucceeded && ev.EventType != EventPaymentFailed {
		r.logger.WarnContext(ctx, "unhandled webhook event",
			slog.String("event_type", ev.EventType),
			slog.String("event_id", ev.EventID))
		outcome = "unhandled"
		return nil, ErrUnhandledEventType
	}

	if err = r.applyPromo(ctx, c); err != nil {
		return nil, err
	}

	d := &dispatch{cart: c, amount: *ev.AmountReceived, result: &WebhookResult{EventType: ev.EventType}}
	if ev.EventType == EventPaymentFailed {
		notify(ctx, r.logger, r.gw.Notifier, shared.TemplatePaymentFailed, c.UserID, map[string]string{
			"payment_id": ev.PaymentID,
			"amount":     usd(d.amount),
		})
		outcome = "payment_failed"
		return d.result, nil
	}

	if _, ok := c.FirstHand(); ok {
		err = r.confirmFirstHand(ctx, d)
	} else {
		err = r.dispatchItems(ctx, d)
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "webhook reconciliation failed",
			slog.String("payment_id", ev.PaymentID),
			slog.String("event_id", ev.EventID),
			slog.String("error", err.Error()))
		return nil, err
	}

	outcome = "ok"
	r.logger.InfoContext(ctx, "webhook reconciled",
		slog.String("payment_id", ev.PaymentID),
		slog.Int("handled", len(d.result.Handled)))
	return d.result, nil
}

func (r *paymentReconciler) confirmFirstHand(ctx context.Context, d *dispatch) error {
	n, err := r.engine.ConfirmBooking(ctx, d.cart.PaymentID)
	if err != nil {
		return err
	}
	d.result.Handled = append(d.result.Handled, cart.ItemFirstHand)
	r.logger.InfoContext(ctx, "bookings confirmed",
		slog.String("payment_id", d.cart.PaymentID),
		slog.Int64("count", n))

	if d.cart.HasType(cart.ItemSensible) {
		if err = r.engine.AttachWeatherGuarantee(ctx, d.cart); err != nil {
			r.logger.WarnContext(ctx, "weather guarantee step failed",
				slog.String("payment_id", d.cart.PaymentID),
				slog.String("error", err.Error()))
		}
		d.result.Handled = append(d.result.Handled, cart.ItemSensible)
	}
	return nil
}

// dispatchItems routes each line to its handler. Informational lines come
// last so the primary purchase exists when they are processed.
func (r *paymentReconciler) dispatchItems(ctx context.Context, d *dispatch) error {
	for _, item := range d.cart.InDispatchOrder() {
		var err error
		handled := true
		switch it := item.(type) {
		case *cart.SecondHandItem:
			handled, err = r.handleSecondHand(ctx, d, it)
		case *cart.OfferItem:
			handled, err = r.handleOffer(ctx, d, it)
		case *cart.AuctionItem:
			err = r.handleAuction(ctx, d, it)
		case *cart.CharityItem:
			handled, err = r.handleCharity(ctx, d, it)
		case *cart.SensibleItem:
			err = r.engine.AttachWeatherGuarantee(ctx, d.cart)
		case *cart.MerchandiseItem, *cart.FeeItem:
			r.logger.DebugContext(ctx, "informational cart line",
				slog.String("payment_id", d.cart.PaymentID),
				slog.String("type", string(item.Type())),
				slog.Int64("price", item.PriceCents()))
		case *cart.FirstHandItem:
			handled = false
		}
		if err != nil {
			return err
		}
		if handled {
			d.result.Handled = append(d.result.Handled, item.Type())
		} else {
			d.result.Skipped = append(d.result.Skipped, item.Type())
		}
	}
	return nil
}

func (r *paymentReconciler) applyPromo(ctx context.Context, c *cart.Cart) error {
	if c.PromoCode == nil || *c.PromoCode == "" {
		return nil
	}
	promo, err := r.uow.CommandReads().PromoByCode(ctx, *c.PromoCode)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			r.logger.WarnContext(ctx, "promo code not found", slog.String("code", *c.PromoCode))
			return nil
		}
		return err
	}
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Promos().Apply(ctx, tx.DB(), promo.ID, c.UserID, c.PaymentID)
		return err
	})
}

func (r *paymentReconciler) handleOffer(ctx context.Context, d *dispatch, item *cart.OfferItem) (bool, error) {
	exists, err := r.uow.CommandReads().OfferExistsForPayment(ctx, d.cart.PaymentID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	paymentID := d.cart.PaymentID
	_, err = r.offers.CreateOfferOnBookings(ctx, d.cart.UserID, CreateOfferRequest{
		BookingIDs: item.BookingIDs,
		Price:      item.PriceCents(),
		ExpiresAt:  item.ExpiresAt,
		PaymentID:  &paymentID,
	})
	return err == nil, err
}

func (r *paymentReconciler) handleAuction(ctx context.Context, d *dispatch, item *cart.AuctionItem) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AuditLogs().Record(ctx, tx.DB(), shared.AuditEntry{
			EventID:   shared.AuditAuctionPaid,
			UserID:    d.cart.UserID,
			PaymentID: d.cart.PaymentID,
			Detail:    "auction " + item.AuctionID.String() + " paid " + usd(item.PriceCents()),
		})
	})
}

func (r *paymentReconciler) handleCharity(ctx context.Context, d *dispatch, item *cart.CharityItem) (bool, error) {
	var n int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Donations().Record(ctx, tx.DB(), shared.Donation{
			PaymentID: d.cart.PaymentID,
			UserID:    d.cart.UserID,
			CharityID: item.CharityID,
			CourseID:  d.cart.CourseID,
			Amount:    item.PriceCents(),
		})
		return err
	})
	return n > 0, err
}

// secondHandSale is everything resolved before the provider is touched.
type secondHandSale struct {
	listing        *listing.Listing
	sellerBookings []*booking.Booking
	buyer          shared.UserSnapshot
	seller         shared.UserSnapshot
	course         shared.CourseSnapshot
	teeTime        *teetime.TeeTime
	buyerSlots     int
	remaining      int
}

func (r *paymentReconciler) handleSecondHand(ctx context.Context, d *dispatch, item *cart.SecondHandItem) (bool, error) {
	reads := r.uow.CommandReads()
	done, err := reads.TransferExistsForTransaction(ctx, d.cart.PaymentID)
	if err != nil {
		return false, err
	}
	if done {
		r.logger.InfoContext(ctx, "second hand sale already reconciled", slog.String("payment_id", d.cart.PaymentID))
		return false, nil
	}
	// A refunded payment stays refunded; redeliveries must not refund or
	// book at the provider again.
	refunded, err := reads.RefundExistsForPayment(ctx, d.cart.PaymentID)
	if err != nil {
		return false, err
	}
	if refunded {
		r.logger.InfoContext(ctx, "second hand sale already refunded", slog.String("payment_id", d.cart.PaymentID))
		return false, nil
	}

	sale, err := r.loadSale(ctx, d, item)
	if err != nil {
		if errs.Is(err, ErrListingUnavailable) {
			r.comp.refund(ctx, d.cart.UserID, d.cart.PaymentID, d.amount, refundReasonListingGone, err)
		}
		return false, err
	}

	session, err := r.gw.Provider.Session(ctx, sale.course)
	if err != nil {
		return false, r.comp.refundProviderFailure(ctx, d.cart.UserID, d.cart.PaymentID, d.amount, err)
	}

	// Best-effort cleanup: the seller's provider booking is replaced below and
	// a failed delete must not block the buyer's paid purchase.
	r.comp.releaseProviderBookings(ctx, session, providerBookingIDs(sale.sellerBookings))

	now := r.clock.Now()
	l := sale.listing
	price := l.ListPrice() * int64(sale.buyerSlots)
	original := sumTotals(sale.sellerBookings)
	purchased, sellerKeeps := original, int64(0)
	if sale.remaining > 0 {
		parts, serr := booking.SplitAmount(original, []int{sale.buyerSlots, sale.remaining})
		if serr != nil {
			return false, errs.Wrap(serr, "split seller booking")
		}
		purchased, sellerKeeps = parts[0], parts[1]
	}

	var created []string
	buyerPB, buyerSlots, err := r.createProviderBooking(ctx, session, sale.buyer, sale.teeTime, sale.buyerSlots, price)
	if err != nil {
		return false, r.comp.refundProviderFailure(ctx, d.cart.UserID, d.cart.PaymentID, d.amount, err)
	}
	created = append(created, buyerPB)
	buyerBooking := booking.NewBooking(booking.NewBookingParams{
		OwnerID:           sale.buyer.ID,
		TeeTimeID:         l.TeeTimeID(),
		CourseID:          l.CourseID(),
		ProviderBookingID: buyerPB,
		TotalAmount:       price,
		GreenFeePerPlayer: l.ListPrice(),
		PlayerCount:       sale.buyerSlots,
		Status:            booking.StatusConfirmed,
		CartID:            &d.cart.ID,
		ProviderPaymentID: d.cart.PaymentID,
	}, now)
	buyerSlots = rebindSlots(buyerSlots, buyerBooking.ID())

	var sellerBooking *booking.Booking
	var sellerSlots []booking.Slot
	if sale.remaining > 0 {
		first := sale.sellerBookings[0]
		pb, slots, perr := r.createProviderBooking(ctx, session, sale.seller, sale.teeTime, sale.remaining, sellerKeeps)
		if perr != nil {
			r.comp.releaseProviderBookings(ctx, session, created)
			return false, r.comp.refundProviderFailure(ctx, d.cart.UserID, d.cart.PaymentID, d.amount, perr)
		}
		created = append(created, pb)
		sellerBooking = booking.NewBooking(booking.NewBookingParams{
			OwnerID:           sale.seller.ID,
			TeeTimeID:         l.TeeTimeID(),
			CourseID:          l.CourseID(),
			ProviderBookingID: pb,
			TotalAmount:       sellerKeeps,
			GreenFeePerPlayer: first.GreenFeePerPlayer(),
			PlayerCount:       sale.remaining,
			Status:            booking.StatusConfirmed,
			CartID:            first.CartID(),
			ProviderPaymentID: first.ProviderPaymentID(),
		}, now)
		sellerSlots = rebindSlots(slots, sellerBooking.ID())
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids := bookingIDs(sale.sellerBookings)
		n, err := tx.Bookings().MarkTransferred(ctx, tx.DB(), sale.seller.ID, ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return ErrBookingsChanged
		}
		if err = tx.Bookings().Create(ctx, tx.DB(), buyerBooking); err != nil {
			return err
		}
		if err = tx.Bookings().CreateSlots(ctx, tx.DB(), buyerSlots); err != nil {
			return err
		}
		if sellerBooking != nil {
			if err = tx.Bookings().Create(ctx, tx.DB(), sellerBooking); err != nil {
				return err
			}
			if err = tx.Bookings().CreateSlots(ctx, tx.DB(), sellerSlots); err != nil {
				return err
			}
		}
		t := transfer.New(transfer.Params{
			Amount:         price,
			BookingID:      buyerBooking.ID(),
			TransactionID:  d.cart.PaymentID,
			FromUserID:     sale.seller.ID,
			ToUserID:       sale.buyer.ID,
			CourseID:       l.CourseID(),
			PurchasedPrice: purchased,
		}, now)
		if err = tx.Transfers().Create(ctx, tx.DB(), t); err != nil {
			return err
		}
		n, err = tx.Listings().Cancel(ctx, tx.DB(), l.ID(), nil)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrListingUnavailable
		}
		_, err = tx.Bookings().UnlistByListing(ctx, tx.DB(), l.ID())
		return err
	})
	if err != nil {
		r.comp.releaseProviderBookings(ctx, session, created)
		reason := refundReasonProviderFailure
		if errs.Is(err, ErrListingUnavailable) || errs.Is(err, ErrBookingsChanged) {
			reason = refundReasonListingGone
		}
		r.comp.refund(ctx, d.cart.UserID, d.cart.PaymentID, d.amount, reason, err)
		return false, err
	}

	data := map[string]string{
		"listing_id":  l.ID().String(),
		"slots":       strconv.Itoa(sale.buyerSlots),
		"price":       usd(price),
		"remaining":   strconv.Itoa(sale.remaining),
		"buyer_name":  sale.buyer.Name,
		"seller_name": sale.seller.Name,
	}
	notify(ctx, r.logger, r.gw.Notifier, shared.TemplatePurchaseConfirmation, sale.buyer.ID, data)
	sellerTemplate := shared.TemplateListingSold
	if sale.remaining > 0 {
		sellerTemplate = shared.TemplateListingPartiallySold
	}
	notify(ctx, r.logger, r.gw.Notifier, sellerTemplate, sale.seller.ID, data)
	return true, nil
}

func (r *paymentReconciler) loadSale(ctx context.Context, d *dispatch, item *cart.SecondHandItem) (*secondHandSale, error) {
	reads := r.uow.CommandReads()
	l, err := reads.ListingByID(ctx, item.ListingID)
	if err != nil {
		return nil, notFoundAs(err, ErrListingUnavailable)
	}
	if l.IsDeleted() {
		return nil, ErrListingUnavailable
	}
	bookings, err := reads.BookingsByIDs(ctx, l.BookingIDs())
	if err != nil {
		return nil, err
	}
	if len(bookings) != len(l.BookingIDs()) {
		return nil, ErrListingUnavailable
	}
	players := 0
	for _, b := range bookings {
		if !b.IsOwnedBy(l.UserID()) {
			return nil, ErrListingUnavailable
		}
		players += b.PlayerCount()
	}

	buyer, err := reads.UserByID(ctx, d.cart.UserID)
	if err != nil {
		return nil, err
	}
	seller, err := reads.UserByID(ctx, l.UserID())
	if err != nil {
		return nil, err
	}
	course, err := reads.CourseByID(ctx, l.CourseID())
	if err != nil {
		return nil, err
	}
	tt, err := reads.TeeTimeByID(ctx, l.TeeTimeID())
	if err != nil {
		return nil, err
	}

	slots := item.Slots
	if slots <= 0 || slots > l.Slots() {
		slots = l.Slots()
	}
	return &secondHandSale{
		listing:        l,
		sellerBookings: bookings,
		buyer:          *buyer,
		seller:         *seller,
		course:         *course,
		teeTime:        tt,
		buyerSlots:     slots,
		remaining:      players - slots,
	}, nil
}

func (r *paymentReconciler) createProviderBooking(ctx context.Context, s shared.ProviderSession, user shared.UserSnapshot, tt *teetime.TeeTime, players int, amount int64) (string, []booking.Slot, error) {
	customer, err := r.gw.Provider.FindOrCreateCustomer(ctx, s, user)
	if err != nil {
		return "", nil, err
	}
	pb, err := r.gw.Provider.CreateBooking(ctx, s, shared.ProviderBookingRequest{
		ProviderTeeTimeID: tt.ProviderTeeTimeID,
		ProviderDate:      tt.ProviderDate,
		Holes:             tt.NumberOfHoles,
		Players:           players,
		Customer:          *customer,
		TotalAmountPaid:   amount,
	})
	if err != nil {
		return "", nil, err
	}
	slots := r.gw.Provider.SlotsForBooking(s, uuid.Nil, players, *customer, pb.ID)
	return pb.ID, slots, nil
}

func rebindSlots(slots []booking.Slot, bookingID uuid.UUID) []booking.Slot {
	for i := range slots {
		slots[i].BookingID = bookingID
	}
	return slots
}

func providerBookingIDs(bs []*booking.Booking) []string {
	ids := make([]string, 0, len(bs))
	for _, b := range bs {
		if b.ProviderBookingID() != "" {
			ids = append(ids, b.ProviderBookingID())
		}
	}
	return ids
}

func sumTotals(bs []*booking.Booking) int64 {
	var total int64
	for _, b := range bs {
		total += b.TotalAmount()
	}
	return total
}
