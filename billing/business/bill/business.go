package bill

import (
	"context"
	"time"

	"billlookup/billing/model"
	"billlookup/billing/store"
)

//go:generate mockgen -source=business.go -destination=../../mocks/business/bill_business/mock_business.go -package=bill_business

type Business interface {
	LookupBill(ctx context.Context, transactionID string) (*model.BillView, error)
	ExportBill(ctx context.Context, transactionID string) error
	SaveBill(ctx context.Context, transactionID string) error
}

// business handles the bill lookup against the transaction data store
type business struct {
	reader        store.Reader
	lookupTimeout time.Duration
}

// NewBillBusiness creates the bill business layer. A zero lookupTimeout
// leaves the caller's deadline, if any, as the only limit.
func NewBillBusiness(reader store.Reader, lookupTimeout time.Duration) Business {
	return &business{
		reader:        reader,
		lookupTimeout: lookupTimeout,
	}
}
