package readstore

import (
	"context"
	"time"

	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/infra"
	"teetime-exchange/internal/infra/repository/converter"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetTeeTimeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.TeeTime, error)
	ListTeeTimesForCourseDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTeeTimesForCourseDateParams) ([]sqlc.TeeTime, error)
	GetCourseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCourseByIDRow, error)
	GetOldestIndexedCourse(ctx context.Context, db sqlc.DBTX) (sqlc.GetOldestIndexedCourseRow, error)
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserByIDRow, error)
}

// CatalogReadStore reads tee times, courses and users.
type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) TeeTimeByID(ctx context.Context, id uuid.UUID) (*teetime.TeeTime, error) {
	row, err := r.queries.GetTeeTimeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tee time not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get tee time by id", err)
	}
	tt, err := converter.TeeTimeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map tee time", err)
	}
	return &tt, nil
}

func (r *CatalogReadStore) TeeTimesForCourseDate(ctx context.Context, courseID uuid.UUID, date time.Time) ([]teetime.TeeTime, error) {
	rows, err := r.queries.ListTeeTimesForCourseDate(ctx, r.db, sqlc.ListTeeTimesForCourseDateParams{
		CourseID: courseID,
		Date:     pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tee times for course date", err)
	}
	out := make([]teetime.TeeTime, 0, len(rows))
	for _, row := range rows {
		tt, err := converter.TeeTimeFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map tee time", err)
		}
		out = append(out, tt)
	}
	return out, nil
}

func (r *CatalogReadStore) CourseByID(ctx context.Context, id uuid.UUID) (*shared.CourseSnapshot, error) {
	row, err := r.queries.GetCourseByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get course by id", err)
	}
	c, err := converter.CourseFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map course", err)
	}
	return c, nil
}

func (r *CatalogReadStore) OldestIndexedCourse(ctx context.Context) (*shared.CourseSnapshot, error) {
	row, err := r.queries.GetOldestIndexedCourse(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no course to index", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get oldest indexed course", err)
	}
	c, err := converter.CourseFromRow(sqlc.GetCourseByIDRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map course", err)
	}
	return c, nil
}

func (r *CatalogReadStore) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return &shared.UserSnapshot{
		ID:     row.ID,
		Email:  row.Email,
		Name:   row.Name,
		Handle: row.Handle,
		Phone:  row.Phone,
	}, nil
}
