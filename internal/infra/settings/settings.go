package settings

import (
	"context"

	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/pkg/pgconv"
)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/settings/settings_mock.go -package=settingsmock

type SettingsQueries interface {
	GetAppSetting(ctx context.Context, db sqlc.DBTX, key string) (string, error)
}

// Store reads operator-managed values from app_settings. A missing key
// reads as the empty string.
type Store struct {
	queries SettingsQueries
	db      sqlc.DBTX
}

func NewStore(queries SettingsQueries, db sqlc.DBTX) *Store {
	return &Store{queries: queries, db: db}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	v, err := s.queries.GetAppSetting(ctx, s.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", errs.Wrapf(err, "load app setting %s", key)
	}
	return v, nil
}
