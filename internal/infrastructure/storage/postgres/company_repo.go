package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"biztime/internal/domain/company"
)

// psql builds statements with PostgreSQL placeholder format.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const companiesTable = "companies"

// CompanyRepo implements company.Repository.
type CompanyRepo struct {
	tm *TxManager
}

// NewCompanyRepo creates a new company repository.
func NewCompanyRepo(tm *TxManager) *CompanyRepo {
	return &CompanyRepo{tm: tm}
}

// List retrieves all companies as code/name pairs.
func (r *CompanyRepo) List(ctx context.Context) ([]company.Summary, error) {
	q := psql.Select("code", "name").
		From(companiesTable).
		OrderBy("code")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	companies := []company.Summary{}
	if err := pgxscan.Select(ctx, r.tm.Querier(ctx), &companies, sql, args...); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return companies, nil
}

// GetDetailRows runs the single detail query: the company left-joined with
// its invoices and, through the association table, its industries.
func (r *CompanyRepo) GetDetailRows(ctx context.Context, code string) ([]company.JoinRow, error) {
	q := psql.Select(
		"c.code AS company_code",
		"c.name AS company_name",
		"c.description AS company_description",
		"i.id AS invoice_id",
		"i.amt AS invoice_amt",
		"i.paid AS invoice_paid",
		"i.add_date AS invoice_add_date",
		"i.paid_date AS invoice_paid_date",
		"ind.industry AS industry_name",
	).
		From(companiesTable + " c").
		LeftJoin("invoices i ON i.comp_code = c.code").
		LeftJoin("company_industries ci ON ci.company_code = c.code").
		LeftJoin("industries ind ON ind.code = ci.industry_code").
		Where(squirrel.Eq{"c.code": code}).
		OrderBy("i.id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []company.JoinRow
	if err := pgxscan.Select(ctx, r.tm.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("company detail %s: %w", code, err)
	}

	return rows, nil
}

// Create inserts a company and returns the stored row.
func (r *CompanyRepo) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	q := psql.Insert(companiesTable).
		Columns("code", "name", "description").
		Values(c.Code, c.Name, c.Description).
		Suffix("RETURNING code, name, description")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var created company.Company
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &created, sql, args...); err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}

	return &created, nil
}

// Update writes name and description, keyed by the immutable code.
func (r *CompanyRepo) Update(ctx context.Context, c company.Company) (*company.Company, error) {
	q := psql.Update(companiesTable).
		Set("name", c.Name).
		Set("description", c.Description).
		Where(squirrel.Eq{"code": c.Code}).
		Suffix("RETURNING code, name, description")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var updated company.Company
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &updated, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, company.ErrNotFound(c.Code)
		}
		return nil, fmt.Errorf("update company %s: %w", c.Code, err)
	}

	return &updated, nil
}

// Delete removes a company by code; RETURNING detects the miss.
func (r *CompanyRepo) Delete(ctx context.Context, code string) error {
	q := psql.Delete(companiesTable).
		Where(squirrel.Eq{"code": code}).
		Suffix("RETURNING code")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	var deleted string
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &deleted, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return company.ErrNotFound(code)
		}
		return fmt.Errorf("delete company %s: %w", code, err)
	}

	return nil
}
