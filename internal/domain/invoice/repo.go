package invoice

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the interface for Invoice persistence.
type Repository interface {
	// List retrieves all invoices, unfiltered.
	List(ctx context.Context) ([]Invoice, error)

	// GetByID retrieves one invoice without joins.
	// Returns ErrNotFound when the id matches no row.
	GetByID(ctx context.Context, id int) (*Invoice, error)

	// GetDetail retrieves one invoice inner-joined with its company.
	// Returns ErrNotFound when the id matches no row.
	GetDetail(ctx context.Context, id int) (*Detail, error)

	// CompanyExists reports whether a company code resolves to a row.
	CompanyExists(ctx context.Context, code string) (bool, error)

	// Create inserts an invoice with store defaults (paid=false,
	// add_date=current date, paid_date=null) and returns the stored row.
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*Invoice, error)

	// Update writes amt, paid and paid_date and returns the stored row.
	// Returns ErrNotFound when the id matches no row.
	Update(ctx context.Context, inv Invoice) (*Invoice, error)

	// Delete removes an invoice by id.
	// Returns ErrNotFound when the id matches no row.
	Delete(ctx context.Context, id int) error
}
