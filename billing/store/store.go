package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"billlookup/billing/store/transactions"
)

//go:generate mockgen -source=store.go -destination=../mocks/store/snapshot_reader/mock_reader.go -package=snapshot_reader

// Reader hands out a consistent, read-only view of the data store.
// The snapshot is released when fn returns, whatever its outcome.
type Reader interface {
	ReadSnapshot(ctx context.Context, fn func(q transactions.Querier) error) error
}

// Store combines the domain queriers over a PostgreSQL pool
type Store struct {
	db           *pgxpool.Pool
	Transactions *transactions.Queries
}

var _ Reader = (*Store)(nil)

// NewStore creates a new Store backed by the given pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db:           db,
		Transactions: transactions.New(db),
	}
}

// ReadSnapshot runs fn inside a REPEATABLE READ, READ ONLY transaction so that
// every query fn issues sees the same snapshot.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(q transactions.Querier) error) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("begin read snapshot: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.Transactions.WithTx(tx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
