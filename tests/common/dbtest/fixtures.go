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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ProductRow is the raw stock state as stored.
type ProductRow struct {
	Quantity      int
	Available     int
	TotalSold     int
	InventoryType string
}

// CreateTestProduct inserts a fully available product. Classification uses threshold 10.
func CreateTestProduct(t *testing.T, db DBLike, name string, quantity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	inventoryType := "in_stock"
	switch {
	case quantity == 0:
		inventoryType = "out_of_stock"
	case quantity <= 10:
		inventoryType = "low_stock"
	}

	_, err := db.Exec(context.Background(),
		`INSERT INTO products (id, name, quantity, available, total_sold, inventory_type)
		 VALUES ($1, $2, $3, $3, 0, $4)`,
		id, name, quantity, inventoryType)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a hold and takes its units out of available stock,
// as Reserve would.
func CreateTestReservation(t *testing.T, db DBLike, productID uuid.UUID, sessionID string, quantity int, expiresAt time.Time) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		`UPDATE products SET available = available - $2 WHERE id = $1 AND available >= $2`,
		productID, quantity)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "not enough stock to seed reservation")

	id := uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO inventory_reservations (id, product_id, quantity, session_id, expires_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, productID, quantity, sessionID, expiresAt)
	require.NoError(t, err)
	return id
}

func GetProductRow(t *testing.T, db DBLike, id uuid.UUID) ProductRow {
	t.Helper()

	var row ProductRow
	err := db.QueryRow(context.Background(),
		`SELECT quantity, available, total_sold, inventory_type FROM products WHERE id = $1`, id).
		Scan(&row.Quantity, &row.Available, &row.TotalSold, &row.InventoryType)
	require.NoError(t, err)
	return row
}

// ReservedUnits sums the live holds on a product.
func ReservedUnits(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM inventory_reservations WHERE product_id = $1`, productID).Scan(&n)
	require.NoError(t, err)
	return n
}

func ReservationExists(t *testing.T, db DBLike, id uuid.UUID) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM inventory_reservations WHERE id = $1)`, id).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM notification_jobs WHERE topic = $1 AND status = 'queued'`, topic).Scan(&n)
	require.NoError(t, err)
	return n
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
