//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	Room101 = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	Room102 = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	Room201 = uuid.MustParse("00000000-0000-0000-0000-000000000201")
	Room301 = uuid.MustParse("00000000-0000-0000-0000-000000000301")
)

// DefaultRooms is the catalog every test store starts with.
func DefaultRooms() []shared.RoomSnapshot {
	return []shared.RoomSnapshot{
		{ID: Room101, Number: "101", RoomType: "standard", Price: money.MustParse("3000"), Capacity: 2},
		{ID: Room102, Number: "102", RoomType: "standard", Price: money.MustParse("2500"), Capacity: 2},
		{ID: Room201, Number: "201", RoomType: "deluxe", Price: money.MustParse("4500"), Capacity: 3},
		{ID: Room301, Number: "301", RoomType: "suite", Price: money.MustParse("8000"), Capacity: 4},
	}
}

func SeedRooms(ctx context.Context, db DBLike, rooms ...shared.RoomSnapshot) error {
	for _, r := range rooms {
		_, err := db.Exec(ctx, `
			INSERT INTO rooms (id, room_number, room_type, price, capacity)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			r.ID, r.Number, r.RoomType, pgconv.NumericFromDecimal(r.Price), r.Capacity)
		if err != nil {
			return fmt.Errorf("seed room %s: %w", r.Number, err)
		}
	}
	return nil
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	return SeedRooms(context.Background(), pool, DefaultRooms()...)
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
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions', 'booking_statuses')`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
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
