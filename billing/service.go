package billing

import (
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"billlookup/billing/business/bill"
	"billlookup/billing/render"
	"billlookup/billing/store"
)

var billLookupDB = sqldb.NewDatabase("bill_lookup", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	business bill.Business
	header   render.Header
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(billLookupDB)

	rlog.Info("Initializing Store", "database", "bill_lookup")
	repo := store.NewStore(pgxdb)

	lookupTimeout := time.Duration(cfg.LookupTimeoutMs) * time.Millisecond
	rlog.Info("Initializing Business", "lookup_timeout", lookupTimeout)

	return &Service{
		business: bill.NewBillBusiness(repo, lookupTimeout),
		header: render.Header{
			CompanyName:    cfg.CompanyName,
			CompanyAddress: cfg.CompanyAddress,
			CurrencySymbol: cfg.CurrencySymbol,
		},
	}, nil
}
