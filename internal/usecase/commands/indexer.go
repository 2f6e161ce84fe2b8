package commands

//go:generate mockgen -source=indexer.go -destination=../../../tests/mock/commands/indexer_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/pkg/clock"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoCourseToIndex = errs.NotFound("No course available for indexing")

type IndexResult struct {
	CourseID        uuid.UUID
	DaysIndexed     int
	DaysFailed      int
	Inserted        int
	Updated         int
	MarkUnavailable int
}

type InventoryIndexer interface {
	HandleWebhook(ctx context.Context) (*IndexResult, error)
}

type inventoryIndexer struct {
	uow    shared.UnitOfWork
	gw     Gateways
	clock  clock.Clock
	logger *slog.Logger
	cfg    config.IndexerConfig
}

func NewInventoryIndexer(uow shared.UnitOfWork, gw Gateways, clk clock.Clock, logger *slog.Logger, cfg config.Config) InventoryIndexer {
	return &inventoryIndexer{uow: uow, gw: gw, clock: clk, logger: logger, cfg: cfg.Indexer}
}

// HandleWebhook indexes one course per call, the one indexed longest ago.
// A failed day is logged and skipped; the course is still marked indexed.
func (x *inventoryIndexer) HandleWebhook(ctx context.Context) (*IndexResult, error) {
	course, err := x.pickCourse(ctx)
	if err != nil {
		return nil, err
	}
	session, err := x.gw.Provider.Session(ctx, *course)
	if err != nil {
		return nil, err
	}

	loc := courseLocation(course.Timezone)
	today := x.clock.Now().In(loc)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := x.cfg.DaysAhead
	if days <= 0 {
		days = 30
	}

	res := &IndexResult{CourseID: course.ID}
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i)
		diff, derr := x.indexDay(ctx, session, *course, day)
		if derr != nil {
			res.DaysFailed++
			x.logger.WarnContext(ctx, "indexing day failed",
				slog.String("course_id", course.ID.String()),
				slog.String("date", day.Format(time.DateOnly)),
				slog.String("error", derr.Error()))
			continue
		}
		res.DaysIndexed++
		res.Inserted += len(diff.Insert)
		res.Updated += len(diff.Update)
		res.MarkUnavailable += len(diff.MarkUnavailable)
	}

	err = x.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Courses().MarkIndexed(ctx, tx.DB(), course.ID, x.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	x.gw.Metrics.IndexerChanges("insert", res.Inserted)
	x.gw.Metrics.IndexerChanges("update", res.Updated)
	x.gw.Metrics.IndexerChanges("unavailable", res.MarkUnavailable)
	x.logger.InfoContext(ctx, "course indexed",
		slog.String("course_id", course.ID.String()),
		slog.Int("days", res.DaysIndexed),
		slog.Int("failed_days", res.DaysFailed),
		slog.Int("inserted", res.Inserted),
		slog.Int("updated", res.Updated),
		slog.Int("unavailable", res.MarkUnavailable))
	return res, nil
}

func (x *inventoryIndexer) pickCourse(ctx context.Context) (*shared.CourseSnapshot, error) {
	reads := x.uow.CommandReads()
	if id, ok := x.cfg.ForcedCourseID(); ok {
		c, err := reads.CourseByID(ctx, id)
		return c, notFoundAs(err, ErrNoCourseToIndex)
	}
	c, err := reads.OldestIndexedCourse(ctx)
	if err != nil {
		return nil, notFoundAs(err, ErrNoCourseToIndex)
	}
	return c, nil
}

func (x *inventoryIndexer) indexDay(ctx context.Context, s shared.ProviderSession, course shared.CourseSnapshot, day time.Time) (teetime.DiffResult, error) {
	upstream, err := x.gw.Provider.GetTeeTimes(ctx, s, day, x.cfg.DayStart, x.cfg.DayEnd)
	if err != nil {
		return teetime.DiffResult{}, err
	}
	mapped := make([]teetime.TeeTime, 0, len(upstream))
	for _, p := range upstream {
		mapped = append(mapped, toTeeTime(course, day, p))
	}

	var diff teetime.DiffResult
	err = x.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().TeeTimesForCourseDate(ctx, course.ID, day)
		if err != nil {
			return err
		}
		diff = teetime.Diff(existing, mapped, uuid.New)
		if diff.IsEmpty() {
			return nil
		}

		inserted := diff.Insert[:0]
		for _, tt := range diff.Insert {
			n, err := tx.TeeTimes().Insert(ctx, tx.DB(), tt)
			if err != nil {
				return err
			}
			// Zero rows means a concurrent run inserted the same provider id.
			if n > 0 {
				inserted = append(inserted, tt)
			}
		}
		diff.Insert = inserted
		for _, tt := range diff.Update {
			if err = tx.TeeTimes().Update(ctx, tx.DB(), tt); err != nil {
				return err
			}
		}
		if len(diff.MarkUnavailable) > 0 {
			if _, err = tx.TeeTimes().MarkUnavailable(ctx, tx.DB(), diff.MarkUnavailable); err != nil {
				return err
			}
		}
		return nil
	})
	return diff, err
}

func toTeeTime(course shared.CourseSnapshot, day time.Time, p shared.ProviderTeeTime) teetime.TeeTime {
	sold := p.MaxPlayers - p.AvailableSpots
	if sold < 0 {
		sold = 0
	}
	return teetime.TeeTime{
		CourseID:                course.ID,
		ProviderTeeTimeID:       p.ProviderTeeTimeID,
		ProviderDate:            p.ProviderDate,
		Date:                    day,
		Time:                    p.Time,
		NumberOfHoles:           p.Holes,
		MaxPlayers:              p.MaxPlayers,
		GreenFee:                p.GreenFee,
		CartFee:                 p.CartFee,
		Rates:                   course.Rates,
		AvailableFirstHandSpots: p.AvailableSpots,
		SoldByProvider:          sold,
	}
}

func courseLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
