// Package sqlite provides an embedded, SQLite-backed implementation of the
// transaction data store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"billlookup/billing/store"
	"billlookup/billing/store/transactions"
)

var _ store.Reader = (*SQLiteStore)(nil)

// SQLiteStore implements store.Reader using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens the database at dbPath, creating parent directories and running
// migrations.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ReadSnapshot runs fn inside a single SQLite transaction. The transaction is
// always rolled back; nothing fn can do through the Querier writes.
func (s *SQLiteStore) ReadSnapshot(ctx context.Context, fn func(q transactions.Querier) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin read snapshot: %w", err)
	}
	defer tx.Rollback()

	return fn(&queries{db: tx})
}

type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queries implements transactions.Querier with SQLite placeholders.
type queries struct {
	db dbtx
}

const getTransactionWithBuyer = `
SELECT t.id, t.purchase_date, t.payment_method, b.name, b.address, b.phone, b.email
FROM transactions t
JOIN buyers b ON t.buyer_id = b.id
WHERE t.id = ?`

// GetTransactionWithBuyer reports a missing row as pgx.ErrNoRows, as the
// PostgreSQL querier does.
func (q *queries) GetTransactionWithBuyer(ctx context.Context, id string) (transactions.GetTransactionWithBuyerRow, error) {
	var i transactions.GetTransactionWithBuyerRow
	var purchaseDate string
	err := q.db.QueryRowContext(ctx, getTransactionWithBuyer, id).Scan(
		&i.ID,
		&purchaseDate,
		&i.PaymentMethod,
		&i.BuyerName,
		&i.BuyerAddress,
		&i.BuyerPhone,
		&i.BuyerEmail,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return i, pgx.ErrNoRows
	}
	if err != nil {
		return i, fmt.Errorf("failed to get transaction: %w", err)
	}

	i.PurchaseDate, err = parsePurchaseDate(purchaseDate)
	if err != nil {
		return i, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	return i, nil
}

// purchaseDateLayouts covers plain dates, SQLite CURRENT_TIMESTAMP and
// datetime() output, ISO 8601 and the format time.Time values are bound in.
// Fractional seconds are accepted after the seconds field by every layout.
var purchaseDateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700 MST",
}

// parsePurchaseDate keeps the calendar date as written and drops any time
// part.
func parsePurchaseDate(value string) (pgtype.Date, error) {
	value = strings.TrimSpace(value)
	for _, layout := range purchaseDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return pgtype.Date{
				Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
				Valid: true,
			}, nil
		}
	}
	return pgtype.Date{}, fmt.Errorf("invalid purchase date %q", value)
}

const listLineItemsByTransaction = `
SELECT p.name, tp.quantity, tp.unit_price
FROM transaction_products tp
JOIN products p ON tp.product_id = p.id
WHERE tp.transaction_id = ?
ORDER BY tp.id`

func (q *queries) ListLineItemsByTransaction(ctx context.Context, transactionID string) ([]transactions.ListLineItemsByTransactionRow, error) {
	rows, err := q.db.QueryContext(ctx, listLineItemsByTransaction, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	var items []transactions.ListLineItemsByTransactionRow
	for rows.Next() {
		var i transactions.ListLineItemsByTransactionRow
		if err := rows.Scan(&i.ProductName, &i.Quantity, &i.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return items, nil
}
