package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
)

// dataStoreError converts a failure raised while reading the store into a
// displayable error. Errors that are already *errs.Error pass through.
func dataStoreError(err error) error {
	var e *errs.Error
	if errors.As(err, &e) {
		return e
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &errs.Error{Code: errs.DeadlineExceeded, Message: "Database error: lookup timed out"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := errs.Internal
		if pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsInsufficientResources(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code) {
			code = errs.Unavailable
		}
		return &errs.Error{Code: code, Message: "Database error: " + pgErr.Message}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return &errs.Error{Code: errs.Unavailable, Message: "Database error: " + err.Error()}
	}

	return &errs.Error{Code: errs.Internal, Message: "Database error: " + err.Error()}
}
