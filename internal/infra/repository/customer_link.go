package repository

import (
	"context"

	"teetime-exchange/internal/infra"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerLinkQueries interface {
	GetCustomerLink(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCustomerLinkParams) (sqlc.UserProviderCourseLink, error)
	UpsertCustomerLink(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerLinkParams) error
}

// CustomerLinkRepository maps internal users to provider customers. It runs
// outside ledger transactions: a link is valid as soon as the provider
// customer exists.
type CustomerLinkRepository struct {
	queries CustomerLinkQueries
	db      sqlc.DBTX
}

func NewCustomerLinkRepository(queries CustomerLinkQueries, db sqlc.DBTX) *CustomerLinkRepository {
	return &CustomerLinkRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerLinkRepository) Find(ctx context.Context, userID, courseID, providerID uuid.UUID) (*shared.ProviderCustomer, error) {
	row, err := r.queries.GetCustomerLink(ctx, r.db, sqlc.GetCustomerLinkParams{
		UserID:     userID,
		CourseID:   courseID,
		ProviderID: providerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer link", err)
	}
	return &shared.ProviderCustomer{
		PlayerNumber: int(row.AccountNumber),
		CustomerID:   row.CustomerID,
		Name:         row.Name,
		Username:     row.Username,
	}, nil
}

// Save is a no-op when the user is already linked.
func (r *CustomerLinkRepository) Save(ctx context.Context, userID, courseID, providerID uuid.UUID, c shared.ProviderCustomer) error {
	err := r.queries.UpsertCustomerLink(ctx, r.db, sqlc.UpsertCustomerLinkParams{
		UserID:        userID,
		CourseID:      courseID,
		ProviderID:    providerID,
		CustomerID:    c.CustomerID,
		AccountNumber: pgconv.IntToInt32(c.PlayerNumber),
		Name:          c.Name,
		Username:      c.Username,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save customer link", err)
	}
	return nil
}
