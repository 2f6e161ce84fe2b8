//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestProviderKey = "foreup"

// DBLike is satisfied by both a pool and an open transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	handle := strings.SplitN(email, "@", 2)[0]
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, handle) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, "Test "+handle, handle)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestCourse inserts a course linked to the seeded provider.
func CreateTestCourse(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var providerID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM providers WHERE provider_key = $1", TestProviderKey).Scan(&providerID)
	require.NoError(t, err)

	courseID := uuid.New()
	_, err = db.Exec(ctx, `INSERT INTO courses (id, name, provider_id, green_fee_tax_percent, cart_fee_tax_percent)
		VALUES ($1, $2, $3, 6.5, 6.5)`, courseID, name, providerID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO provider_course_links (course_id, provider_id, provider_course_id, provider_tee_sheet_id)
		VALUES ($1, $2, $3, $4)`, courseID, providerID, "course-"+courseID.String()[:8], "sheet-1")
	require.NoError(t, err)

	return courseID
}

func CreateTestTeeTime(t *testing.T, db DBLike, courseID uuid.UUID, date time.Time, greenFee int64) uuid.UUID {
	t.Helper()

	teeTimeID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO tee_times
		(id, course_id, provider_tee_time_id, provider_date, date, time, number_of_holes, max_players, green_fee, available_first_hand_spots)
		VALUES ($1, $2, $3, $4, $5, 900, 18, 4, $6, 4)`,
		teeTimeID, courseID, "tt-"+teeTimeID.String(), date.Format("2006-01-02")+" 09:00", date, greenFee)
	require.NoError(t, err)

	return teeTimeID
}

// CreateTestBooking inserts a confirmed booking with one slot per player.
func CreateTestBooking(t *testing.T, db DBLike, ownerID, teeTimeID, courseID uuid.UUID, players int, total int64) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	bookingID := uuid.New()
	_, err := db.Exec(ctx, `INSERT INTO bookings
		(id, owner_id, tee_time_id, course_id, provider_booking_id, total_amount, green_fee_per_player, player_count, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'CONFIRMED')`,
		bookingID, ownerID, teeTimeID, courseID, "pb-"+bookingID.String()[:8], total, total/int64(players), players)
	require.NoError(t, err)

	for i := 1; i <= players; i++ {
		_, err = db.Exec(ctx, `INSERT INTO booking_slots (id, booking_id, slot_id, slot_position, name)
			VALUES ($1, $2, $3, $4, $5)`, uuid.New(), bookingID, fmt.Sprintf("slot-%d", i), i, "Guest")
		require.NoError(t, err)
	}

	return bookingID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO providers (id, provider_key, name) VALUES
		    (gen_random_uuid(), 'foreup', 'ForeUP')
		ON CONFLICT (provider_key) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO app_settings (key, value) VALUES
		    ('PROVIDER_BOOKING_NOTE', 'Booked through the exchange')
		ON CONFLICT (key) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
