package transactions

import (
	"context"
)

//go:generate mockgen -source=querier.go -destination=../../mocks/store/transaction_repo/mock_querier.go -package=transaction_repo

// Querier is the read contract of the transaction data store.
type Querier interface {
	// GetTransactionWithBuyer returns pgx.ErrNoRows when no transaction has the given id.
	GetTransactionWithBuyer(ctx context.Context, id string) (GetTransactionWithBuyerRow, error)
	ListLineItemsByTransaction(ctx context.Context, transactionID string) ([]ListLineItemsByTransactionRow, error)
}

var _ Querier = (*Queries)(nil)
