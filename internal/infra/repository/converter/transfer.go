package converter

import (
	"teetime-exchange/internal/domain/transfer"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"
)

func TransferToCreateParams(t *transfer.Transfer) sqlc.CreateTransferParams {
	return sqlc.CreateTransferParams{
		ID:             t.ID(),
		Amount:         t.Amount(),
		BookingID:      t.BookingID(),
		TransactionID:  t.TransactionID(),
		FromUserID:     t.FromUserID(),
		ToUserID:       t.ToUserID(),
		CourseID:       t.CourseID(),
		PurchasedPrice: t.PurchasedPrice(),
		CreatedAt:      pgconv.TimeToPgtype(t.CreatedAt()),
	}
}
