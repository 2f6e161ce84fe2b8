package commands

import (
	"context"
	"log/slog"

	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingFailedOnProvider = errs.Upstream("Booking failed on provider")

const (
	refundReasonProviderFailure = "provider_booking_failed"
	refundReasonListingGone     = "listing_unavailable"
)

// compensator undoes captured payments and stray provider bookings when a
// flow fails after money or provider state has already moved.
type compensator struct {
	uow    shared.UnitOfWork
	gw     Gateways
	logger *slog.Logger
}

// refundProviderFailure refunds the payment and returns
// ErrBookingFailedOnProvider for the caller to propagate.
func (c compensator) refundProviderFailure(ctx context.Context, userID uuid.UUID, paymentID string, amount int64, cause error) error {
	c.refund(ctx, userID, paymentID, amount, refundReasonProviderFailure, cause)
	return ErrBookingFailedOnProvider
}

// refund returns a captured payment and records REFUND_INITIATED.
func (c compensator) refund(ctx context.Context, userID uuid.UUID, paymentID string, amount int64, reason string, cause error) {
	c.logger.ErrorContext(ctx, "refunding payment",
		slog.String("payment_id", paymentID),
		slog.String("user_id", userID.String()),
		slog.String("reason", reason),
		slog.Int64("amount", amount),
		slog.String("error", cause.Error()))

	detail := reason + ": " + cause.Error()
	if err := c.gw.Payments.Refund(ctx, paymentID, amount, reason); err != nil {
		c.logger.ErrorContext(ctx, "refund failed",
			slog.String("payment_id", paymentID),
			slog.String("error", err.Error()))
		detail += "; refund failed: " + err.Error()
	} else {
		c.gw.Metrics.RefundIssued(reason)
	}

	c.audit(ctx, shared.AuditEntry{
		EventID:   shared.AuditRefundInitiated,
		UserID:    userID,
		PaymentID: paymentID,
		Detail:    detail,
	})
}

func (c compensator) audit(ctx context.Context, entry shared.AuditEntry) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AuditLogs().Record(ctx, tx.DB(), entry)
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "audit log write failed",
			slog.String("event_id", string(entry.EventID)),
			slog.String("payment_id", entry.PaymentID),
			slog.String("error", err.Error()))
	}
}

// releaseProviderBookings is best-effort: a stale provider booking is
// logged and left behind rather than failing the caller.
func (c compensator) releaseProviderBookings(ctx context.Context, s shared.ProviderSession, providerBookingIDs []string) {
	for _, id := range providerBookingIDs {
		if err := c.gw.Provider.DeleteBooking(ctx, s, id); err != nil {
			c.logger.WarnContext(ctx, "provider booking cleanup failed",
				slog.String("provider_booking_id", id),
				slog.String("course_id", s.Course.ID.String()),
				slog.String("error", err.Error()))
		}
	}
}
