package company

import (
	"context"
)

// Repository defines the interface for Company persistence.
type Repository interface {
	// List retrieves all companies as code/name pairs.
	List(ctx context.Context) ([]Summary, error)

	// GetDetailRows runs the detail query for one company code and returns
	// the flat left-join rows. An unknown code yields zero rows, not an error.
	GetDetailRows(ctx context.Context, code string) ([]JoinRow, error)

	// Create inserts a company and returns the stored row.
	Create(ctx context.Context, c Company) (*Company, error)

	// Update modifies name and description of an existing company.
	// Returns ErrNotFound when the code matches no row.
	Update(ctx context.Context, c Company) (*Company, error)

	// Delete removes a company by code.
	// Returns ErrNotFound when the code matches no row.
	Delete(ctx context.Context, code string) error
}
