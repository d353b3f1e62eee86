package billing

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"billlookup/billing/render"
)

type PrintBillResponse struct {
	Text string `json:"text"`
}

// PrintBill returns the bill as printable text.
//
//encore:api public path=/v1/transactions/:id/bill/print method=GET tag:lookup
func (s *Service) PrintBill(ctx context.Context, id string) (*PrintBillResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "Enter a Transaction ID"}
	}

	view, err := s.business.LookupBill(ctx, id)
	if err != nil {
		rlog.Error("failed to look up bill for printing", "error", err, "transaction_id", id)
		return nil, err
	}

	var b strings.Builder
	if err := render.Bill(&b, s.header, view); err != nil {
		rlog.Error("failed to render bill", "error", err, "transaction_id", id)
		return nil, &errs.Error{Code: errs.Internal, Message: "Printing failed: " + err.Error()}
	}

	return &PrintBillResponse{
		Text: b.String(),
	}, nil
}
