package converter

import (
	"teetime-exchange/internal/domain/cart"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/pkg/pgconv"
)

func CartFromRow(row sqlc.CustomerCart) (*cart.Cart, error) {
	items, err := cart.DecodeLineItems(row.LineItems)
	if err != nil {
		return nil, errs.Wrapf(err, "decode cart %s", row.ID)
	}
	return &cart.Cart{
		ID:        row.ID,
		UserID:    row.UserID,
		CourseID:  row.CourseID,
		PaymentID: row.PaymentID,
		PromoCode: pgconv.StringPtrFromPgtype(row.PromoCode),
		Items:     items,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
