package billing

import (
	"encore.dev/config"
)

// Config is the billing service configuration, loaded from config.cue.
type Config struct {
	// CompanyName and CompanyAddress head every printed bill.
	CompanyName    string
	CompanyAddress string
	CurrencySymbol string

	// LookupTimeoutMs bounds one bill lookup. Zero disables the limit.
	LookupTimeoutMs int
}

var cfg = config.Load[*Config]()
