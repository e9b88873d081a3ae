// Package invoice provides the Invoice resource: amounts billed to a company,
// with a paid flag that drives the paid_date lifecycle.
package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"biztime/internal/core/apperror"
)

// Invoice is a billed amount owned by a company.
// AddDate is assigned by the store at creation and never changes.
// PaidDate is non-nil exactly when the invoice was paid at last update.
type Invoice struct {
	ID       int             `db:"id"`
	CompCode string          `db:"comp_code"`
	Amt      decimal.Decimal `db:"amt"`
	Paid     bool            `db:"paid"`
	AddDate  time.Time       `db:"add_date"`
	PaidDate *time.Time      `db:"paid_date"`
}

// CompanySummary is the owning company as nested in the invoice detail.
type CompanySummary struct {
	Code        string  `db:"code"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

// Detail is an invoice joined with its owning company.
type Detail struct {
	Invoice
	Company CompanySummary
}

// ErrNotFound builds the not-found error for an invoice id. The raw path
// parameter is echoed so non-numeric ids read naturally.
func ErrNotFound(id string) *apperror.AppError {
	return apperror.NewNotFound(fmt.Sprintf("Invoice with ID '%s' not found", id))
}

// ErrCompanyNotFound builds the not-found error for a referenced company.
func ErrCompanyNotFound(code string) *apperror.AppError {
	return apperror.NewNotFound(fmt.Sprintf("Company with code '%s' not found", code))
}

// DerivePaidDate computes the next paid_date from the request's paid field
// and the stored value.
//
// paid absent (nil) keeps the stored date. paid true stamps now's date even
// when the invoice was already paid, refreshing it. paid false clears it.
func DerivePaidDate(paid *bool, prev *time.Time, now time.Time) *time.Time {
	if paid == nil {
		return prev
	}
	if !*paid {
		return nil
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return &day
}
