package bill

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"

	"billlookup/billing/model"
	"billlookup/billing/store/sqlite"
)

func TestLookupBillAgainstSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bills.db")

	s, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer s.Close()

	seed, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer seed.Close()

	for _, stmt := range []string{
		`INSERT INTO buyers (id, name, address, phone, email) VALUES (1, 'Asha Rao', '12 MG Road, Bengaluru', '98450-00000', 'asha@example.com')`,
		`INSERT INTO products (id, name) VALUES (1, 'Pen'), (2, 'Notebook')`,
		`INSERT INTO transactions (id, buyer_id, purchase_date, payment_method) VALUES ('T100', 1, '2025-01-15', 'Cash')`,
		`INSERT INTO transaction_products (transaction_id, product_id, quantity, unit_price) VALUES ('T100', 1, 10, '2.50'), ('T100', 2, 3, '45.00')`,
	} {
		_, err := seed.Exec(stmt)
		require.NoError(t, err)
	}

	business := NewBillBusiness(s, 5*time.Second)

	t.Run("known_transaction", func(t *testing.T) {
		view, err := business.LookupBill(context.Background(), "T100")
		require.NoError(t, err)

		assert.Equal(t, "Asha Rao", view.Buyer.Name)
		assert.Equal(t, "Cash", view.Transaction.PaymentMethod)
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), view.Transaction.PurchaseDate)
		require.Len(t, view.LineItems, 2)
		assert.Equal(t, "Pen", view.LineItems[0].ProductName)
		assert.Equal(t, "25.00", model.FormatAmount(view.LineItems[0].LineTotal))
		assert.Equal(t, "Notebook", view.LineItems[1].ProductName)
		assert.Equal(t, "135.00", model.FormatAmount(view.LineItems[1].LineTotal))
		assert.Equal(t, "160.00", model.FormatAmount(view.Subtotal))
		assert.Equal(t, "160.00", model.FormatAmount(view.Total))
	})

	t.Run("unknown_transaction", func(t *testing.T) {
		view, err := business.LookupBill(context.Background(), "T999")
		assert.Nil(t, view)
		assert.Equal(t, errs.NotFound, errs.Code(err))
		assert.Contains(t, err.Error(), "Transaction not found.")
	})
}
