package industry

import (
	"context"
)

// Repository defines the interface for Industry persistence.
type Repository interface {
	// ListWithCompanies retrieves every industry with the aggregated codes
	// of its associated companies.
	ListWithCompanies(ctx context.Context) ([]AggRow, error)

	// Create inserts an industry.
	Create(ctx context.Context, ind Industry) error

	// Exists reports whether an industry code resolves to a row.
	Exists(ctx context.Context, code string) (bool, error)

	// CompanyExists reports whether a company code resolves to a row.
	CompanyExists(ctx context.Context, code string) (bool, error)

	// Associate links a company with an industry. A pair that already
	// exists is silently absorbed, not an error.
	Associate(ctx context.Context, companyCode, industryCode string) error
}
