//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"teetime-exchange/internal/domain/teetime"
	"teetime-exchange/internal/pkg/config"
	"teetime-exchange/internal/pkg/errs"
	"teetime-exchange/internal/usecase/commands"
	"teetime-exchange/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newIndexer(h *harness, mutate func(*config.Config)) commands.InventoryIndexer {
	cfg := config.NewTestConfig()
	cfg.Indexer.DaysAhead = 2
	if mutate != nil {
		mutate(&cfg)
	}
	return commands.NewInventoryIndexer(h.uow, h.gateways(), h.clock, h.logger, cfg)
}

func TestInventoryIndexer_HandleWebhook(t *testing.T) {
	course := shared.CourseSnapshot{ID: uuid.New(), Name: "Pine Valley", ProviderKey: "foreup"}
	session := shared.ProviderSession{ProviderKey: "foreup", Token: "tok", Course: course}
	day0 := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	day1 := day0.AddDate(0, 0, 1)

	t.Run("applies the diff and keeps going past a failed day", func(t *testing.T) {
		h := newHarness(t)
		indexer := newIndexer(h, nil)

		kept := teetime.TeeTime{ID: uuid.New(), CourseID: course.ID, ProviderTeeTimeID: "A", ProviderDate: "2030-05-01T08:00", Date: day0, Time: 800, NumberOfHoles: 18, MaxPlayers: 4, GreenFee: 5000, AvailableFirstHandSpots: 4}
		gone := teetime.TeeTime{ID: uuid.New(), CourseID: course.ID, ProviderTeeTimeID: "C", ProviderDate: "2030-05-01T10:00", Date: day0, Time: 1000, NumberOfHoles: 18, MaxPlayers: 4, GreenFee: 5000, AvailableFirstHandSpots: 2}

		h.reads.EXPECT().OldestIndexedCourse(gomock.Any()).Return(&course, nil)
		h.provider.EXPECT().Session(gomock.Any(), course).Return(session, nil)
		h.provider.EXPECT().GetTeeTimes(gomock.Any(), session, day0, "0000", "2359").Return([]shared.ProviderTeeTime{
			{ProviderTeeTimeID: "A", ProviderDate: "2030-05-01T08:00", Time: 800, Holes: 18, MaxPlayers: 4, AvailableSpots: 2, GreenFee: 5000},
			{ProviderTeeTimeID: "B", ProviderDate: "2030-05-01T09:00", Time: 900, Holes: 18, MaxPlayers: 4, AvailableSpots: 4, GreenFee: 5500},
		}, nil)
		h.provider.EXPECT().GetTeeTimes(gomock.Any(), session, day1, "0000", "2359").Return(nil, errs.Upstream("tee sheet timeout"))

		h.reads.EXPECT().TeeTimesForCourseDate(gomock.Any(), course.ID, day0).Return([]teetime.TeeTime{kept, gone}, nil)
		h.teeTimes.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, tt teetime.TeeTime) (int64, error) {
				require.Equal(t, "B", tt.ProviderTeeTimeID)
				require.NotEqual(t, uuid.Nil, tt.ID)
				return 1, nil
			})
		h.teeTimes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, tt teetime.TeeTime) error {
				require.Equal(t, kept.ID, tt.ID)
				require.Equal(t, 2, tt.AvailableFirstHandSpots)
				require.Equal(t, 2, tt.SoldByProvider)
				return nil
			})
		h.teeTimes.EXPECT().MarkUnavailable(gomock.Any(), gomock.Any(), []uuid.UUID{gone.ID}).Return(int64(1), nil)
		h.courses.EXPECT().MarkIndexed(gomock.Any(), gomock.Any(), course.ID, testNow).Return(nil)

		res, err := indexer.HandleWebhook(context.Background())

		require.NoError(t, err)
		require.Equal(t, &commands.IndexResult{
			CourseID:        course.ID,
			DaysIndexed:     1,
			DaysFailed:      1,
			Inserted:        1,
			Updated:         1,
			MarkUnavailable: 1,
		}, res)
		require.Equal(t, map[string]int{"insert": 1, "update": 1, "unavailable": 1}, h.metrics.changes)
	})

	t.Run("a row inserted concurrently is not counted", func(t *testing.T) {
		h := newHarness(t)
		indexer := newIndexer(h, func(c *config.Config) { c.Indexer.DaysAhead = 1 })

		h.reads.EXPECT().OldestIndexedCourse(gomock.Any()).Return(&course, nil)
		h.provider.EXPECT().Session(gomock.Any(), course).Return(session, nil)
		h.provider.EXPECT().GetTeeTimes(gomock.Any(), session, day0, "0000", "2359").Return([]shared.ProviderTeeTime{
			{ProviderTeeTimeID: "B", ProviderDate: "2030-05-01T09:00", Time: 900, Holes: 18, MaxPlayers: 4, AvailableSpots: 4},
		}, nil)
		h.reads.EXPECT().TeeTimesForCourseDate(gomock.Any(), course.ID, day0).Return(nil, nil)
		h.teeTimes.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		h.courses.EXPECT().MarkIndexed(gomock.Any(), gomock.Any(), course.ID, testNow).Return(nil)

		res, err := indexer.HandleWebhook(context.Background())

		require.NoError(t, err)
		require.Zero(t, res.Inserted)
		require.Equal(t, 1, res.DaysIndexed)
	})

	t.Run("a pinned course is indexed instead of the oldest", func(t *testing.T) {
		h := newHarness(t)
		indexer := newIndexer(h, func(c *config.Config) {
			c.Indexer.DaysAhead = 1
			c.Indexer.CourseIDEnv = course.ID.String()
		})

		h.reads.EXPECT().CourseByID(gomock.Any(), course.ID).Return(&course, nil)
		h.provider.EXPECT().Session(gomock.Any(), course).Return(session, nil)
		h.provider.EXPECT().GetTeeTimes(gomock.Any(), session, day0, "0000", "2359").Return(nil, nil)
		h.reads.EXPECT().TeeTimesForCourseDate(gomock.Any(), course.ID, day0).Return(nil, nil)
		h.courses.EXPECT().MarkIndexed(gomock.Any(), gomock.Any(), course.ID, testNow).Return(nil)

		res, err := indexer.HandleWebhook(context.Background())

		require.NoError(t, err)
		require.Equal(t, course.ID, res.CourseID)
	})

	t.Run("no course to index", func(t *testing.T) {
		h := newHarness(t)
		indexer := newIndexer(h, nil)

		h.reads.EXPECT().OldestIndexedCourse(gomock.Any()).Return(nil, errs.NotFound("no rows"))

		_, err := indexer.HandleWebhook(context.Background())

		require.ErrorIs(t, err, commands.ErrNoCourseToIndex)
		require.Zero(t, h.transactions)
	})
}
