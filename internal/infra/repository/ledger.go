package repository

import (
	"context"

	"teetime-exchange/internal/domain/transfer"
	"teetime-exchange/internal/infra"
	"teetime-exchange/internal/infra/repository/converter"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransferWriteQueries interface {
	CreateTransfer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransferParams) error
}

type TransferRepository struct {
	queries TransferWriteQueries
	db      sqlc.DBTX
}

func NewTransferRepository(queries TransferWriteQueries, db sqlc.DBTX) *TransferRepository {
	return &TransferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransferRepository) Create(ctx context.Context, tx sqlc.DBTX, t *transfer.Transfer) error {
	if err := r.queries.CreateTransfer(ctx, tx, converter.TransferToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create transfer", err)
	}
	return nil
}

type PromoWriteQueries interface {
	ApplyPromoCode(ctx context.Context, db sqlc.DBTX, arg sqlc.ApplyPromoCodeParams) (int64, error)
}

type PromoRepository struct {
	queries PromoWriteQueries
	db      sqlc.DBTX
}

func NewPromoRepository(queries PromoWriteQueries, db sqlc.DBTX) *PromoRepository {
	return &PromoRepository{
		queries: queries,
		db:      db,
	}
}

// Apply records a redemption once per (promo, user, payment).
func (r *PromoRepository) Apply(ctx context.Context, tx sqlc.DBTX, promoID, userID uuid.UUID, paymentID string) (int64, error) {
	n, err := r.queries.ApplyPromoCode(ctx, tx, sqlc.ApplyPromoCodeParams{
		PromoCodeID: promoID,
		UserID:      userID,
		PaymentID:   paymentID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to apply promo code", err)
	}
	return n, nil
}

type DonationWriteQueries interface {
	RecordDonation(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordDonationParams) (int64, error)
}

type DonationRepository struct {
	queries DonationWriteQueries
	db      sqlc.DBTX
}

func NewDonationRepository(queries DonationWriteQueries, db sqlc.DBTX) *DonationRepository {
	return &DonationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DonationRepository) Record(ctx context.Context, tx sqlc.DBTX, d shared.Donation) (int64, error) {
	n, err := r.queries.RecordDonation(ctx, tx, sqlc.RecordDonationParams{
		PaymentID: d.PaymentID,
		UserID:    d.UserID,
		CharityID: d.CharityID,
		CourseID:  d.CourseID,
		Amount:    d.Amount,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to record donation", err)
	}
	return n, nil
}

type AuditLogWriteQueries interface {
	CreateAuditLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAuditLogParams) error
}

type AuditLogRepository struct {
	queries AuditLogWriteQueries
	db      sqlc.DBTX
}

func NewAuditLogRepository(queries AuditLogWriteQueries, db sqlc.DBTX) *AuditLogRepository {
	return &AuditLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditLogRepository) Record(ctx context.Context, tx sqlc.DBTX, e shared.AuditEntry) error {
	err := r.queries.CreateAuditLog(ctx, tx, sqlc.CreateAuditLogParams{
		EventID:   string(e.EventID),
		UserID:    e.UserID,
		PaymentID: e.PaymentID,
		Detail:    e.Detail,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to write audit log", err)
	}
	return nil
}
