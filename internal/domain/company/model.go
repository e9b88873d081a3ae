// Package company provides the Company resource: slug-coded businesses that
// own invoices and participate in industry associations.
package company

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"biztime/internal/core/apperror"
)

// Company is a business identified by a URL-safe code derived from its name.
type Company struct {
	Code        string  `db:"code" json:"code"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

// Summary is the listing shape: code and name only.
type Summary struct {
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// InvoiceSummary is an invoice as it appears nested under a company.
type InvoiceSummary struct {
	ID       int
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}

// JoinRow is one flat row of the company detail query: company scalars
// left-joined with invoices and industries. Invoice and industry columns are
// nullable because a company may have neither.
type JoinRow struct {
	CompanyCode        string           `db:"company_code"`
	CompanyName        string           `db:"company_name"`
	CompanyDescription *string          `db:"company_description"`
	InvoiceID          *int             `db:"invoice_id"`
	InvoiceAmt         *decimal.Decimal `db:"invoice_amt"`
	InvoicePaid        *bool            `db:"invoice_paid"`
	InvoiceAddDate     *time.Time       `db:"invoice_add_date"`
	InvoicePaidDate    *time.Time       `db:"invoice_paid_date"`
	IndustryName       *string          `db:"industry_name"`
}

// Detail is the nested company shape: scalars plus industries and invoices.
type Detail struct {
	Code        string
	Name        string
	Description *string
	Industries  []string
	Invoices    []InvoiceSummary
}

// ErrNotFound builds the not-found error for a company code.
func ErrNotFound(code string) *apperror.AppError {
	return apperror.NewNotFound(fmt.Sprintf("Company with code '%s' not found", code))
}

// BuildDetail nests the flat join rows into a Detail. The caller guarantees
// rows is non-empty and all rows belong to one company.
//
// Invoices are the rows with a non-null invoice id, deduplicated by id in
// first-seen order (the industry join repeats each invoice once per
// industry). Industries are the distinct non-null industry names in
// first-seen order, compared case-sensitively. Both collections are empty,
// never nil, when nothing joined.
func BuildDetail(rows []JoinRow) Detail {
	d := Detail{
		Code:        rows[0].CompanyCode,
		Name:        rows[0].CompanyName,
		Description: rows[0].CompanyDescription,
		Industries:  []string{},
		Invoices:    []InvoiceSummary{},
	}

	seenInvoices := make(map[int]bool)
	seenIndustries := make(map[string]bool)

	for _, row := range rows {
		if row.InvoiceID != nil && !seenInvoices[*row.InvoiceID] {
			seenInvoices[*row.InvoiceID] = true
			inv := InvoiceSummary{
				ID:       *row.InvoiceID,
				PaidDate: row.InvoicePaidDate,
			}
			if row.InvoiceAmt != nil {
				inv.Amt = *row.InvoiceAmt
			}
			if row.InvoicePaid != nil {
				inv.Paid = *row.InvoicePaid
			}
			if row.InvoiceAddDate != nil {
				inv.AddDate = *row.InvoiceAddDate
			}
			d.Invoices = append(d.Invoices, inv)
		}

		if row.IndustryName != nil && !seenIndustries[*row.IndustryName] {
			seenIndustries[*row.IndustryName] = true
			d.Industries = append(d.Industries, *row.IndustryName)
		}
	}

	return d
}
