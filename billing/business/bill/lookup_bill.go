package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"billlookup/billing/model"
	"billlookup/billing/store/transactions"
)

// LookupBill loads a transaction with its buyer and line items and computes
// the bill. Either a complete view or an error is returned, never both.
func (b *business) LookupBill(ctx context.Context, transactionID string) (*model.BillView, error) {
	id, err := normalizeTransactionID(transactionID)
	if err != nil {
		return nil, err
	}

	if b.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.lookupTimeout)
		defer cancel()
	}

	var view *model.BillView
	err = b.reader.ReadSnapshot(ctx, func(q transactions.Querier) error {
		dbTransaction, err := q.GetTransactionWithBuyer(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "Transaction not found."}
			}
			return err
		}

		dbLineItems, err := q.ListLineItemsByTransaction(ctx, id)
		if err != nil {
			return err
		}

		lineItems, err := convertDBLineItemsToModel(dbLineItems)
		if err != nil {
			return err
		}

		view = newBillView(dbTransaction, lineItems)
		return nil
	})
	if err != nil {
		return nil, dataStoreError(err)
	}

	return view, nil
}

func newBillView(dbTransaction transactions.GetTransactionWithBuyerRow, lineItems []model.LineItem) *model.BillView {
	subtotal := model.Subtotal(lineItems)

	return &model.BillView{
		Transaction: model.Transaction{
			ID:            dbTransaction.ID,
			PurchaseDate:  dbTransaction.PurchaseDate.Time,
			PaymentMethod: dbTransaction.PaymentMethod.String,
		},
		Buyer: model.Buyer{
			Name:    dbTransaction.BuyerName,
			Address: dbTransaction.BuyerAddress.String,
			Phone:   dbTransaction.BuyerPhone.String,
			Email:   dbTransaction.BuyerEmail.String,
		},
		LineItems: lineItems,
		Subtotal:  subtotal,
		Total:     subtotal,
	}
}

// convertDBLineItemsToModel converts store rows and computes line totals.
// Rows that break the schema's non-negative constraints are rejected.
func convertDBLineItemsToModel(dbLineItems []transactions.ListLineItemsByTransactionRow) ([]model.LineItem, error) {
	lineItems := make([]model.LineItem, len(dbLineItems))
	for i, dbLineItem := range dbLineItems {
		if dbLineItem.Quantity < 0 {
			return nil, fmt.Errorf("line item %d (%s) has negative quantity %d", i+1, dbLineItem.ProductName, dbLineItem.Quantity)
		}

		unitPrice := decimal.Zero
		price := dbLineItem.UnitPrice
		if price.Valid {
			if price.NaN || price.InfinityModifier != pgtype.Finite {
				return nil, fmt.Errorf("line item %d (%s) has a non-finite unit price", i+1, dbLineItem.ProductName)
			}
			if price.Int != nil {
				unitPrice = decimal.NewFromBigInt(price.Int, price.Exp)
			}
		}
		if unitPrice.IsNegative() {
			return nil, fmt.Errorf("line item %d (%s) has negative unit price %s", i+1, dbLineItem.ProductName, unitPrice)
		}

		lineItems[i] = model.LineItem{
			ProductName: dbLineItem.ProductName,
			Quantity:    dbLineItem.Quantity,
			UnitPrice:   unitPrice,
			LineTotal:   model.LineTotal(dbLineItem.Quantity, unitPrice),
		}
	}

	return lineItems, nil
}
