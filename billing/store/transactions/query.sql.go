package transactions

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getTransactionWithBuyer = `-- name: GetTransactionWithBuyer :one
SELECT t.id, t.purchase_date, t.payment_method, b.name, b.address, b.phone, b.email
FROM transactions t
JOIN buyers b ON t.buyer_id = b.id
WHERE t.id = $1
`

type GetTransactionWithBuyerRow struct {
	ID            string
	PurchaseDate  pgtype.Date
	PaymentMethod pgtype.Text
	BuyerName     string
	BuyerAddress  pgtype.Text
	BuyerPhone    pgtype.Text
	BuyerEmail    pgtype.Text
}

func (q *Queries) GetTransactionWithBuyer(ctx context.Context, id string) (GetTransactionWithBuyerRow, error) {
	row := q.db.QueryRow(ctx, getTransactionWithBuyer, id)
	var i GetTransactionWithBuyerRow
	err := row.Scan(
		&i.ID,
		&i.PurchaseDate,
		&i.PaymentMethod,
		&i.BuyerName,
		&i.BuyerAddress,
		&i.BuyerPhone,
		&i.BuyerEmail,
	)
	return i, err
}

const listLineItemsByTransaction = `-- name: ListLineItemsByTransaction :many
SELECT p.name, tp.quantity, tp.unit_price
FROM transaction_products tp
JOIN products p ON tp.product_id = p.id
WHERE tp.transaction_id = $1
ORDER BY tp.id
`

type ListLineItemsByTransactionRow struct {
	ProductName string
	Quantity    int32
	UnitPrice   pgtype.Numeric
}

func (q *Queries) ListLineItemsByTransaction(ctx context.Context, transactionID string) ([]ListLineItemsByTransactionRow, error) {
	rows, err := q.db.Query(ctx, listLineItemsByTransaction, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListLineItemsByTransactionRow
	for rows.Next() {
		var i ListLineItemsByTransactionRow
		if err := rows.Scan(&i.ProductName, &i.Quantity, &i.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
