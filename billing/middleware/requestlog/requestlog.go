package requestlog

import (
	"time"

	"encore.dev/beta/errs"
	"encore.dev/metrics"
	"encore.dev/middleware"
	"encore.dev/rlog"
)

type LookupLabels struct {
	Outcome string
}

// BillLookups counts requests on the tag:lookup endpoints (get, print,
// export, save) by outcome.
var BillLookups = metrics.NewCounterGroup[LookupLabels, uint64]("bill_lookups", metrics.CounterConfig{})

const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeNotFound    = "not_found"
	OutcomeStoreError  = "store_error"
	OutcomeUnsupported = "unimplemented"
)

//encore:middleware target=tag:lookup
func LookupLogMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	start := time.Now()
	data := req.Data()

	resp := next(req)

	outcome := Outcome(resp.Err)
	BillLookups.With(LookupLabels{Outcome: outcome}).Increment()

	fields := []any{
		"endpoint", data.Endpoint,
		"transaction_id", data.PathParams.Get("id"),
		"outcome", outcome,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	switch outcome {
	case OutcomeOK:
		rlog.Info("bill request", fields...)
	case OutcomeStoreError:
		rlog.Error("bill request", append(fields, "error", resp.Err)...)
	default:
		rlog.Warn("bill request", append(fields, "error", resp.Err)...)
	}

	return resp
}

// Outcome classifies the result of a lookup for logs and metrics.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}

	switch errs.Code(err) {
	case errs.InvalidArgument:
		return OutcomeInvalid
	case errs.NotFound:
		return OutcomeNotFound
	case errs.Unimplemented:
		return OutcomeUnsupported
	default:
		return OutcomeStoreError
	}
}
