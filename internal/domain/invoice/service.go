package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"biztime/internal/core/apperror"
	"biztime/internal/core/tx"
)

// Service provides business logic for the Invoice resource.
// Check-then-write sequences run inside a single transaction so a concurrent
// company delete cannot slip between the existence check and the insert.
type Service struct {
	repo Repository
	tx   tx.Manager
	now  func() time.Time
}

// NewService creates a new Invoice service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, tx: txm, now: time.Now}
}

// List returns all invoices.
func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

// Get returns one invoice with its owning company nested.
func (s *Service) Get(ctx context.Context, id int) (*Detail, error) {
	return s.repo.GetDetail(ctx, id)
}

// Create validates the amount, checks the referenced company exists and
// inserts the invoice. Zero is rejected along with negatives.
func (s *Service) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*Invoice, error) {
	if !amt.IsPositive() {
		return nil, apperror.NewValidation("Amount must be a positive number")
	}

	var created *Invoice
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.repo.CompanyExists(ctx, compCode)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCompanyNotFound(compCode)
		}

		created, err = s.repo.Create(ctx, compCode, amt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update validates the amount, derives paid/paid_date from the request and
// the stored row, and writes amt, paid and paid_date.
//
// paid true stamps today's date even on an already-paid invoice; paid false
// clears the date; paid absent leaves both paid and paid_date untouched.
func (s *Service) Update(ctx context.Context, id int, amt decimal.Decimal, paid *bool) (*Invoice, error) {
	if !amt.IsPositive() {
		return nil, apperror.NewValidation("Amount must be a positive number")
	}

	var updated *Invoice
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		prev, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		next := *prev
		next.Amt = amt
		next.PaidDate = DerivePaidDate(paid, prev.PaidDate, s.now())
		if paid != nil {
			next.Paid = *paid
		}

		updated, err = s.repo.Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an invoice.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
