package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"billlookup/billing/business/bill"
	"billlookup/billing/render"
	"billlookup/billing/store"
	"billlookup/billing/store/sqlite"
	"billlookup/internal/config"
)

// openReader opens the store selected by cfg. The returned func releases it.
func openReader(ctx context.Context, cfg config.DatabaseConfig) (store.Reader, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres pool: %w", err)
		}
		slog.Debug("store opened", "driver", cfg.Driver)
		return store.NewStore(pool), pool.Close, nil
	case config.DriverSQLite:
		s, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		slog.Debug("store opened", "driver", cfg.Driver, "path", cfg.Path)
		return s, func() {
			if err := s.Close(); err != nil {
				slog.Warn("failed to close sqlite store", "error", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// newBusiness wires the bill business over the configured store.
func newBusiness(ctx context.Context, cfg *config.Config) (bill.Business, func(), error) {
	reader, closeFn, err := openReader(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return bill.NewBillBusiness(reader, cfg.LookupTimeout), closeFn, nil
}

func headerFromConfig(cfg *config.Config) render.Header {
	return render.Header{
		CompanyName:    cfg.Company.Name,
		CompanyAddress: cfg.Company.Address,
		CurrencySymbol: cfg.Company.CurrencySymbol,
	}
}
