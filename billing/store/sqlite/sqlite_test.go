package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billlookup/billing/store/transactions"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "nested", "bills.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	stmts := []string{
		`INSERT INTO buyers (id, name, address, phone, email) VALUES (1, 'Asha Rao', '12 MG Road, Bengaluru', '98450-00000', 'asha@example.com')`,
		`INSERT INTO buyers (id, name) VALUES (2, 'Walk-in Customer')`,
		`INSERT INTO products (id, name) VALUES (1, 'Pen'), (2, 'Notebook'), (3, 'Stapler')`,
		`INSERT INTO transactions (id, buyer_id, purchase_date, payment_method) VALUES ('T100', 1, '2025-01-15', 'UPI')`,
		`INSERT INTO transactions (id, buyer_id, purchase_date) VALUES ('T200', 2, '2025-02-01')`,
		`INSERT INTO transaction_products (transaction_id, product_id, quantity, unit_price) VALUES ('T100', 1, 10, '2.50')`,
		`INSERT INTO transaction_products (transaction_id, product_id, quantity, unit_price) VALUES ('T100', 2, 3, '45.00')`,
	}
	for _, stmt := range stmts {
		_, err := s.db.Exec(stmt)
		require.NoError(t, err)
	}

	return s
}

func TestGetTransactionWithBuyer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	testCases := []struct {
		name          string
		id            string
		expectedError error
		expectedRow   transactions.GetTransactionWithBuyerRow
	}{
		{
			name: "transaction_with_full_buyer",
			id:   "T100",
			expectedRow: transactions.GetTransactionWithBuyerRow{
				ID:        "T100",
				BuyerName: "Asha Rao",
			},
		},
		{
			name: "transaction_with_sparse_buyer",
			id:   "T200",
			expectedRow: transactions.GetTransactionWithBuyerRow{
				ID:        "T200",
				BuyerName: "Walk-in Customer",
			},
		},
		{
			name:          "transaction_not_found",
			id:            "T999",
			expectedError: pgx.ErrNoRows,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var row transactions.GetTransactionWithBuyerRow
			err := s.ReadSnapshot(ctx, func(q transactions.Querier) error {
				var err error
				row, err = q.GetTransactionWithBuyer(ctx, tc.id)
				return err
			})

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedRow.ID, row.ID)
			assert.Equal(t, tc.expectedRow.BuyerName, row.BuyerName)
			assert.True(t, row.PurchaseDate.Valid)
		})
	}

	t.Run("nullable_columns", func(t *testing.T) {
		var full, sparse transactions.GetTransactionWithBuyerRow
		err := s.ReadSnapshot(ctx, func(q transactions.Querier) error {
			var err error
			if full, err = q.GetTransactionWithBuyer(ctx, "T100"); err != nil {
				return err
			}
			sparse, err = q.GetTransactionWithBuyer(ctx, "T200")
			return err
		})
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), full.PurchaseDate.Time)
		assert.Equal(t, "UPI", full.PaymentMethod.String)
		assert.Equal(t, "12 MG Road, Bengaluru", full.BuyerAddress.String)
		assert.Equal(t, "98450-00000", full.BuyerPhone.String)
		assert.Equal(t, "asha@example.com", full.BuyerEmail.String)

		assert.False(t, sparse.PaymentMethod.Valid)
		assert.False(t, sparse.BuyerAddress.Valid)
		assert.False(t, sparse.BuyerPhone.Valid)
		assert.False(t, sparse.BuyerEmail.Valid)
	})
}

func TestListLineItemsByTransaction(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("items_in_insertion_order", func(t *testing.T) {
		var items []transactions.ListLineItemsByTransactionRow
		err := s.ReadSnapshot(ctx, func(q transactions.Querier) error {
			var err error
			items, err = q.ListLineItemsByTransaction(ctx, "T100")
			return err
		})
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Pen", items[0].ProductName)
		assert.Equal(t, int32(10), items[0].Quantity)
		assert.Equal(t, "2.50", decimal.NewFromBigInt(items[0].UnitPrice.Int, items[0].UnitPrice.Exp).StringFixed(2))

		assert.Equal(t, "Notebook", items[1].ProductName)
		assert.Equal(t, int32(3), items[1].Quantity)
		assert.Equal(t, "45.00", decimal.NewFromBigInt(items[1].UnitPrice.Int, items[1].UnitPrice.Exp).StringFixed(2))
	})

	t.Run("transaction_without_items", func(t *testing.T) {
		var items []transactions.ListLineItemsByTransactionRow
		err := s.ReadSnapshot(ctx, func(q transactions.Querier) error {
			var err error
			items, err = q.ListLineItemsByTransaction(ctx, "T200")
			return err
		})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestReadSnapshotPropagatesError(t *testing.T) {
	s := newTestStore(t)
	sentinel := errors.New("render failed")

	err := s.ReadSnapshot(context.Background(), func(q transactions.Querier) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
}

func TestReadSnapshotAfterClose(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "bills.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	called := false
	err = s.ReadSnapshot(context.Background(), func(q transactions.Querier) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestGetTransactionWithBuyerPurchaseDateFormats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	testCases := []struct {
		name          string
		stored        string
		expectedDate  time.Time
		expectedError string
	}{
		{
			name:         "date_only",
			stored:       "2025-01-15",
			expectedDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "date_with_time",
			stored:       "2025-01-15 10:30:00",
			expectedDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "date_with_fractional_time",
			stored:       "2025-01-15 23:59:59.250",
			expectedDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "iso_8601_with_zone",
			stored:       "2025-03-01T08:00:00+05:30",
			expectedDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "not_a_date",
			stored:        "15/01/2025",
			expectedError: "invalid purchase date",
		},
	}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := fmt.Sprintf("D%d", i)
			_, err := s.db.Exec(`INSERT INTO transactions (id, buyer_id, purchase_date) VALUES (?, 1, ?)`, id, tc.stored)
			require.NoError(t, err)

			var row transactions.GetTransactionWithBuyerRow
			err = s.ReadSnapshot(ctx, func(q transactions.Querier) error {
				var err error
				row, err = q.GetTransactionWithBuyer(ctx, id)
				return err
			})

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.True(t, row.PurchaseDate.Valid)
			assert.Equal(t, tc.expectedDate, row.PurchaseDate.Time)
		})
	}

	t.Run("current_timestamp", func(t *testing.T) {
		_, err := s.db.Exec(`INSERT INTO transactions (id, buyer_id, purchase_date) VALUES ('DNOW', 1, CURRENT_TIMESTAMP)`)
		require.NoError(t, err)

		var row transactions.GetTransactionWithBuyerRow
		err = s.ReadSnapshot(ctx, func(q transactions.Querier) error {
			var err error
			row, err = q.GetTransactionWithBuyer(ctx, "DNOW")
			return err
		})

		require.NoError(t, err)
		assert.True(t, row.PurchaseDate.Valid)
		assert.False(t, row.PurchaseDate.Time.IsZero())
	})
}

func TestUnitPriceConstraint(t *testing.T) {
	s := newTestStore(t)

	testCases := []struct {
		name        string
		unitPrice   string
		expectError bool
	}{
		{name: "zero_price", unitPrice: "0.00"},
		{name: "fractional_price", unitPrice: ".50"},
		{name: "negative_price", unitPrice: "-1.00", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.db.Exec(
				`INSERT INTO transaction_products (transaction_id, product_id, quantity, unit_price) VALUES ('T200', 3, 1, ?)`,
				tc.unitPrice,
			)

			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
