package repository

import (
	"context"
	"time"

	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/infra"
	"teetime-exchange/internal/infra/repository/converter"
	sqlc "teetime-exchange/internal/infra/sqlc/generated"
	"teetime-exchange/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TeeTimeWriteQueries interface {
	ReserveFirstHandSpots(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveFirstHandSpotsParams) (int64, error)
	InsertTeeTime(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTeeTimeParams) (int64, error)
	UpdateTeeTimeFromProvider(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTeeTimeFromProviderParams) error
	MarkTeeTimesUnavailable(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

type TeeTimeRepository struct {
	queries TeeTimeWriteQueries
	db      sqlc.DBTX
}

func NewTeeTimeRepository(queries TeeTimeWriteQueries, db sqlc.DBTX) *TeeTimeRepository {
	return &TeeTimeRepository{
		queries: queries,
		db:      db,
	}
}

// ReserveFirstHandSpots decrements availability only when enough spots remain.
func (r *TeeTimeRepository) ReserveFirstHandSpots(ctx context.Context, tx sqlc.DBTX, teeTimeID uuid.UUID, players int) (int64, error) {
	n, err := r.queries.ReserveFirstHandSpots(ctx, tx, sqlc.ReserveFirstHandSpotsParams{
		Players: pgconv.IntToInt32(players),
		ID:      teeTimeID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reserve first-hand spots", err)
	}
	return n, nil
}

func (r *TeeTimeRepository) Insert(ctx context.Context, tx sqlc.DBTX, tt teetime.TeeTime) (int64, error) {
	n, err := r.queries.InsertTeeTime(ctx, tx, converter.TeeTimeToInsertParams(tt))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert tee time", err)
	}
	return n, nil
}

func (r *TeeTimeRepository) Update(ctx context.Context, tx sqlc.DBTX, tt teetime.TeeTime) error {
	if err := r.queries.UpdateTeeTimeFromProvider(ctx, tx, converter.TeeTimeToUpdateParams(tt)); err != nil {
		return infra.WrapRepoErr("failed to update tee time", err)
	}
	return nil
}

func (r *TeeTimeRepository) MarkUnavailable(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.MarkTeeTimesUnavailable(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark tee times unavailable", err)
	}
	return n, nil
}

type CourseWriteQueries interface {
	MarkCourseIndexed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCourseIndexedParams) error
}

type CourseRepository struct {
	queries CourseWriteQueries
	db      sqlc.DBTX
}

func NewCourseRepository(queries CourseWriteQueries, db sqlc.DBTX) *CourseRepository {
	return &CourseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CourseRepository) MarkIndexed(ctx context.Context, tx sqlc.DBTX, courseID uuid.UUID, at time.Time) error {
	err := r.queries.MarkCourseIndexed(ctx, tx, sqlc.MarkCourseIndexedParams{
		ID:            courseID,
		LastIndexedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark course indexed", err)
	}
	return nil
}
