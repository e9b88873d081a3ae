package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"biztime/internal/domain/industry"
)

const (
	industriesTable        = "industries"
	companyIndustriesTable = "company_industries"
)

// IndustryRepo implements industry.Repository.
type IndustryRepo struct {
	tm *TxManager
}

// NewIndustryRepo creates a new industry repository.
func NewIndustryRepo(tm *TxManager) *IndustryRepo {
	return &IndustryRepo{tm: tm}
}

// ListWithCompanies aggregates the associated company codes per industry.
// Industries with no associations aggregate to a single NULL element, which
// the domain layer filters out.
func (r *IndustryRepo) ListWithCompanies(ctx context.Context) ([]industry.AggRow, error) {
	q := psql.Select(
		"i.code AS industry_code",
		"i.industry AS industry_name",
		"ARRAY_AGG(ci.company_code) AS company_codes",
	).
		From(industriesTable + " i").
		LeftJoin(companyIndustriesTable + " ci ON ci.industry_code = i.code").
		GroupBy("i.code", "i.industry").
		OrderBy("i.code")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows := []industry.AggRow{}
	if err := pgxscan.Select(ctx, r.tm.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}

	return rows, nil
}

// Create inserts an industry.
func (r *IndustryRepo) Create(ctx context.Context, ind industry.Industry) error {
	q := psql.Insert(industriesTable).
		Columns("code", "industry").
		Values(ind.Code, ind.Name)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert industry: %w", err)
	}

	return nil
}

// Exists reports whether an industry code resolves to a row.
func (r *IndustryRepo) Exists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, industriesTable, code)
}

// CompanyExists reports whether a company code resolves to a row.
func (r *IndustryRepo) CompanyExists(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, companiesTable, code)
}

func (r *IndustryRepo) exists(ctx context.Context, table, code string) (bool, error) {
	q := psql.Select("1").
		From(table).
		Where(squirrel.Eq{"code": code})

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &one, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check %s %s: %w", table, code, err)
	}

	return true, nil
}

// Associate links a company with an industry. ON CONFLICT DO NOTHING keeps
// duplicate pairs silent.
func (r *IndustryRepo) Associate(ctx context.Context, companyCode, industryCode string) error {
	q := psql.Insert(companyIndustriesTable).
		Columns("company_code", "industry_code").
		Values(companyCode, industryCode).
		Suffix("ON CONFLICT DO NOTHING")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("associate %s with %s: %w", companyCode, industryCode, err)
	}

	return nil
}
