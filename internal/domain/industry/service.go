package industry

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	"biztime/internal/core/apperror"
	"biztime/internal/core/tx"
)

// Service provides business logic for the Industry resource.
type Service struct {
	repo Repository
	tx   tx.Manager
}

// NewService creates a new Industry service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, tx: txm}
}

// List returns every industry with its associated company codes.
func (s *Service) List(ctx context.Context) ([]WithCompanies, error) {
	rows, err := s.repo.ListWithCompanies(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]WithCompanies, len(rows))
	for i, row := range rows {
		out[i] = WithCompanies{
			Code:      row.Code,
			Name:      row.Name,
			Companies: FilterCompanyCodes(row.CompanyCodes),
		}
	}
	return out, nil
}

// Create validates the display name, derives the code and inserts the
// industry. A duplicate code surfaces as an unclassified storage failure.
func (s *Service) Create(ctx context.Context, name string) (*Industry, error) {
	if name == "" {
		return nil, apperror.NewValidation("Industry name is required")
	}

	ind := Industry{
		Code: slug.Make(name),
		Name: name,
	}
	if err := s.repo.Create(ctx, ind); err != nil {
		return nil, err
	}
	return &ind, nil
}

// Associate links a company with an industry after checking both exist.
// The checks and the insert share one transaction. A duplicate pair is
// absorbed and still confirmed.
func (s *Service) Associate(ctx context.Context, industryCode, companyCode string) (string, error) {
	if companyCode == "" {
		return "", apperror.NewValidation("'company_code' is required")
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Exists(ctx, industryCode)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound(industryCode)
		}

		ok, err = s.repo.CompanyExists(ctx, companyCode)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCompanyNotFound(companyCode)
		}

		return s.repo.Associate(ctx, companyCode, industryCode)
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Company '%s' associated with industry '%s'", companyCode, industryCode), nil
}
