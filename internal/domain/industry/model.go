// Package industry provides the Industry resource and its many-to-many
// association with companies.
package industry

import (
	"fmt"

	"biztime/internal/core/apperror"
)

// Industry is a slug-coded sector with a display name.
type Industry struct {
	Code string `db:"code" json:"code"`
	Name string `db:"industry" json:"industry"`
}

// WithCompanies is the listing shape: an industry plus the codes of the
// companies associated with it.
type WithCompanies struct {
	Code      string
	Name      string
	Companies []string
}

// AggRow is one row of the listing query: industry scalars plus the
// ARRAY_AGG of associated company codes. A left join with no matches
// aggregates to a single NULL element, hence the pointer slice.
type AggRow struct {
	Code         string    `db:"industry_code"`
	Name         string    `db:"industry_name"`
	CompanyCodes []*string `db:"company_codes"`
}

// ErrNotFound builds the not-found error for an industry code.
func ErrNotFound(code string) *apperror.AppError {
	return apperror.NewNotFound(fmt.Sprintf("Industry with code '%s' not found", code))
}

// ErrCompanyNotFound builds the not-found error for a referenced company.
func ErrCompanyNotFound(code string) *apperror.AppError {
	return apperror.NewNotFound(fmt.Sprintf("Company with code '%s' not found", code))
}

// FilterCompanyCodes drops the NULL placeholder the outer-join aggregate
// emits for industries with no associations, preserving store order.
// The result is empty, never nil.
func FilterCompanyCodes(codes []*string) []string {
	out := []string{}
	for _, c := range codes {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}
