package bill

import (
	"context"

	"encore.dev/beta/errs"
)

// ExportBill is reserved for PDF export. It validates the identifier and
// reports Unimplemented.
func (b *business) ExportBill(ctx context.Context, transactionID string) error {
	if _, err := normalizeTransactionID(transactionID); err != nil {
		return err
	}

	return &errs.Error{Code: errs.Unimplemented, Message: "Export to PDF is not implemented"}
}

// SaveBill is reserved for persisting a generated bill. It validates the
// identifier and reports Unimplemented.
func (b *business) SaveBill(ctx context.Context, transactionID string) error {
	if _, err := normalizeTransactionID(transactionID); err != nil {
		return err
	}

	return &errs.Error{Code: errs.Unimplemented, Message: "Save is not implemented"}
}
