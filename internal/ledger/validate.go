package ledger

import (
	"fmt"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	ID          string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s]: %s", e.ID, e.Description)
}

// ValidateTransactions enforces the record invariants before anything is
// written: strictly positive amount, known kind and category, an ID, and
// non-empty source text.
func ValidateTransactions(txns []model.Transaction) []ValidationError {
	var errs []ValidationError

	for _, txn := range txns {
		if txn.ID == "" {
			errs = append(errs, ValidationError{
				ID:          "(missing)",
				Description: "transaction has no ID",
			})
		}
		if !txn.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				ID:          txn.ID,
				Description: fmt.Sprintf("amount %s is not positive", txn.Amount),
			})
		}
		if !txn.Kind.Valid() {
			errs = append(errs, ValidationError{
				ID:          txn.ID,
				Description: fmt.Sprintf("unknown kind %q", txn.Kind),
			})
		}
		if !txn.Category.Valid() {
			errs = append(errs, ValidationError{
				ID:          txn.ID,
				Description: fmt.Sprintf("unknown category %q", txn.Category),
			})
		}
		if txn.SourceText == "" {
			errs = append(errs, ValidationError{
				ID:          txn.ID,
				Description: "empty source text",
			})
		}
	}

	return errs
}
