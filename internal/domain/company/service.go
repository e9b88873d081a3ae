package company

import (
	"context"

	"github.com/gosimple/slug"

	"biztime/internal/core/apperror"
)

// Service provides business logic for the Company resource.
type Service struct {
	repo Repository
}

// NewService creates a new Company service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all companies as code/name pairs.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Get returns one company with its invoices and industry names nested.
func (s *Service) Get(ctx context.Context, code string) (*Detail, error) {
	rows, err := s.repo.GetDetailRows(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound(code)
	}

	detail := BuildDetail(rows)
	return &detail, nil
}

// Create validates input, derives the code from the name and inserts the
// company. A duplicate code surfaces as an unclassified storage failure.
func (s *Service) Create(ctx context.Context, name, description string) (*Company, error) {
	if name == "" || description == "" {
		return nil, apperror.NewValidation("Both 'name' and 'description' are required")
	}

	c := Company{
		Code:        slug.Make(name),
		Name:        name,
		Description: &description,
	}
	return s.repo.Create(ctx, c)
}

// Update replaces name and description; the code is immutable.
func (s *Service) Update(ctx context.Context, code, name, description string) (*Company, error) {
	c := Company{
		Code:        code,
		Name:        name,
		Description: &description,
	}
	return s.repo.Update(ctx, c)
}

// Delete removes a company. Invoices and industry associations go with it
// through the schema's cascade rules.
func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
