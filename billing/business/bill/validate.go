package bill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"encore.dev/beta/errs"
)

// MaxTransactionIDLength matches transactions.id VARCHAR(64).
const MaxTransactionIDLength = 64

var (
	validate = validator.New()

	transactionIDRule = fmt.Sprintf("required,max=%d", MaxTransactionIDLength)
)

// normalizeTransactionID trims the identifier and rejects it before any store
// access when it cannot name a transaction.
func normalizeTransactionID(raw string) (string, error) {
	id := strings.TrimSpace(raw)

	if err := validate.Var(id, transactionIDRule); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
			return "", &errs.Error{
				Code:    errs.InvalidArgument,
				Message: fmt.Sprintf("Transaction ID must be at most %d characters", MaxTransactionIDLength),
			}
		}
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "Enter a Transaction ID"}
	}

	return id, nil
}
