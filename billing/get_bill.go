package billing

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"billlookup/billing/model"
)

type BillResponse struct {
	Bill BillDocument `json:"bill"`
}

// BillDocument is the JSON form of a bill. Amounts carry exactly two
// fraction digits.
type BillDocument struct {
	Transaction TransactionDocument `json:"transaction"`
	Buyer       BuyerDocument       `json:"buyer"`
	LineItems   []LineItemDocument  `json:"line_items"`
	Subtotal    string              `json:"subtotal"`
	Total       string              `json:"total"`
}

type TransactionDocument struct {
	ID            string `json:"id"`
	PurchaseDate  string `json:"purchase_date"`
	PaymentMethod string `json:"payment_method"`
}

type BuyerDocument struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type LineItemDocument struct {
	ProductName string `json:"product_name"`
	Quantity    int32  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

//encore:api public path=/v1/transactions/:id/bill method=GET tag:lookup
func (s *Service) GetBill(ctx context.Context, id string) (*BillResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "Enter a Transaction ID"}
	}

	view, err := s.business.LookupBill(ctx, id)
	if err != nil {
		rlog.Error("failed to look up bill", "error", err, "transaction_id", id)
		return nil, err
	}

	return &BillResponse{
		Bill: newBillDocument(view),
	}, nil
}

func newBillDocument(view *model.BillView) BillDocument {
	doc := BillDocument{
		Transaction: TransactionDocument{
			ID:            view.Transaction.ID,
			PaymentMethod: view.Transaction.PaymentMethod,
		},
		Buyer: BuyerDocument{
			Name:    view.Buyer.Name,
			Address: view.Buyer.Address,
			Phone:   view.Buyer.Phone,
			Email:   view.Buyer.Email,
		},
		LineItems: make([]LineItemDocument, len(view.LineItems)),
		Subtotal:  model.FormatAmount(view.Subtotal),
		Total:     model.FormatAmount(view.Total),
	}

	if !view.Transaction.PurchaseDate.IsZero() {
		doc.Transaction.PurchaseDate = view.Transaction.PurchaseDate.Format("2006-01-02")
	}

	for i, item := range view.LineItems {
		doc.LineItems[i] = LineItemDocument{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   model.FormatAmount(item.UnitPrice),
			LineTotal:   model.FormatAmount(item.LineTotal),
		}
	}

	return doc
}
