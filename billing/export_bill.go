package billing

import (
	"context"

	"encore.dev/rlog"
)

// ExportBill is the PDF export placeholder. It always fails with Unimplemented.
//
//encore:api public path=/v1/transactions/:id/bill/export method=POST tag:lookup
func (s *Service) ExportBill(ctx context.Context, id string) error {
	if err := s.business.ExportBill(ctx, id); err != nil {
		rlog.Warn("bill export rejected", "error", err, "transaction_id", id)
		return err
	}
	return nil
}

// SaveBill is the save placeholder. It always fails with Unimplemented.
//
//encore:api public path=/v1/transactions/:id/bill/save method=POST tag:lookup
func (s *Service) SaveBill(ctx context.Context, id string) error {
	if err := s.business.SaveBill(ctx, id); err != nil {
		rlog.Warn("bill save rejected", "error", err, "transaction_id", id)
		return err
	}
	return nil
}
