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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// OrderRow is the subset of an order row tests need to seed.
type OrderRow struct {
	ID       string
	Name     string
	Phone    string
	Location string
	Date     string
	SlotID   string
	Package  string
	Amount   int64
	Status   string
}

func InsertOrder(t *testing.T, db DBLike, o OrderRow) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO orders (
			order_id, customer_name, customer_phone, location, booking_date, slot_id,
			slot_label, package_tier, package_price, features, amount, status
		) VALUES ($1, $2, $3, $4, $5::date, $6, $6, $7, $8, '{}', $8, $9)`,
		o.ID, o.Name, o.Phone, o.Location, o.Date, o.SlotID, o.Package, o.Amount, o.Status)
	require.NoError(t, err)
}

// InsertBookedSlots writes a ledger record directly, bypassing the order flow.
func InsertBookedSlots(t *testing.T, db DBLike, date, location, pkg string, slotIDs ...string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO booked_slots (booking_date, location, package_tier, slot_ids)
		VALUES ($1::date, $2, $3, $4)
		ON CONFLICT (booking_date, location, package_tier)
		DO UPDATE SET slot_ids = EXCLUDED.slot_ids`,
		date, location, pkg, slotIDs)
	require.NoError(t, err)
}

func OrderStatus(t *testing.T, db DBLike, orderID string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM orders WHERE order_id = $1", orderID).Scan(&status)
	require.NoError(t, err)
	return status
}

// BookedSlotIDs returns the ledger set for one key, or nil when there is no record.
func BookedSlotIDs(t *testing.T, db DBLike, date, location, pkg string) []string {
	t.Helper()

	var ids []string
	err := db.QueryRow(context.Background(), `
		SELECT slot_ids FROM booked_slots
		WHERE booking_date = $1::date AND location = $2 AND package_tier = $3`,
		date, location, pkg).Scan(&ids)
	if err != nil {
		return nil
	}
	return ids
}

func NotificationKinds(t *testing.T, db DBLike, orderID string) []string {
	t.Helper()

	var kinds []string
	err := db.QueryRow(context.Background(), `
		SELECT COALESCE(array_agg(kind ORDER BY created_at), '{}')
		FROM notification_jobs WHERE payload->>'orderId' = $1`, orderID).Scan(&kinds)
	require.NoError(t, err)
	return kinds
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
