package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"biztime/internal/domain/invoice"
)

const invoicesTable = "invoices"

// invoiceColumns is the full column set returned by every invoice statement.
var invoiceColumns = []string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	tm *TxManager
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(tm *TxManager) *InvoiceRepo {
	return &InvoiceRepo{tm: tm}
}

// List retrieves all invoices, unfiltered.
func (r *InvoiceRepo) List(ctx context.Context) ([]invoice.Invoice, error) {
	q := psql.Select(invoiceColumns...).
		From(invoicesTable).
		OrderBy("id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	invoices := []invoice.Invoice{}
	if err := pgxscan.Select(ctx, r.tm.Querier(ctx), &invoices, sql, args...); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, nil
}

// GetByID retrieves one invoice without joins.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int) (*invoice.Invoice, error) {
	q := psql.Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var inv invoice.Invoice
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, invoice.ErrNotFound(strconv.Itoa(id))
		}
		return nil, fmt.Errorf("get invoice %d: %w", id, err)
	}

	return &inv, nil
}

// invoiceDetailRow is the flat row of the detail query: invoice columns
// inner-joined with the owning company.
type invoiceDetailRow struct {
	ID          int              `db:"id"`
	Amt         decimal.Decimal  `db:"amt"`
	Paid        bool             `db:"paid"`
	AddDate     time.Time        `db:"add_date"`
	PaidDate    *time.Time       `db:"paid_date"`
	Code        string           `db:"code"`
	Name        string           `db:"name"`
	Description *string          `db:"description"`
}

// GetDetail retrieves one invoice inner-joined with its company.
func (r *InvoiceRepo) GetDetail(ctx context.Context, id int) (*invoice.Detail, error) {
	q := psql.Select(
		"i.id", "i.amt", "i.paid", "i.add_date", "i.paid_date",
		"c.code", "c.name", "c.description",
	).
		From(invoicesTable + " i").
		Join("companies c ON c.code = i.comp_code").
		Where(squirrel.Eq{"i.id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row invoiceDetailRow
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, invoice.ErrNotFound(strconv.Itoa(id))
		}
		return nil, fmt.Errorf("get invoice detail %d: %w", id, err)
	}

	return &invoice.Detail{
		Invoice: invoice.Invoice{
			ID:       row.ID,
			CompCode: row.Code,
			Amt:      row.Amt,
			Paid:     row.Paid,
			AddDate:  row.AddDate,
			PaidDate: row.PaidDate,
		},
		Company: invoice.CompanySummary{
			Code:        row.Code,
			Name:        row.Name,
			Description: row.Description,
		},
	}, nil
}

// CompanyExists reports whether a company code resolves to a row.
func (r *InvoiceRepo) CompanyExists(ctx context.Context, code string) (bool, error) {
	q := psql.Select("1").
		From(companiesTable).
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
		return false, fmt.Errorf("check company %s: %w", code, err)
	}

	return true, nil
}

// Create inserts an invoice; paid, add_date and paid_date take the store
// defaults (false, current date, null).
func (r *InvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*invoice.Invoice, error) {
	q := psql.Insert(invoicesTable).
		Columns("comp_code", "amt").
		Values(compCode, amt).
		Suffix("RETURNING id, comp_code, amt, paid, add_date, paid_date")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var created invoice.Invoice
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &created, sql, args...); err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	return &created, nil
}

// Update writes amt, paid and paid_date and returns the stored row.
func (r *InvoiceRepo) Update(ctx context.Context, inv invoice.Invoice) (*invoice.Invoice, error) {
	q := psql.Update(invoicesTable).
		Set("amt", inv.Amt).
		Set("paid", inv.Paid).
		Set("paid_date", inv.PaidDate).
		Where(squirrel.Eq{"id": inv.ID}).
		Suffix("RETURNING id, comp_code, amt, paid, add_date, paid_date")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var updated invoice.Invoice
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &updated, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, invoice.ErrNotFound(strconv.Itoa(inv.ID))
		}
		return nil, fmt.Errorf("update invoice %d: %w", inv.ID, err)
	}

	return &updated, nil
}

// Delete removes an invoice by id; RETURNING detects the miss.
func (r *InvoiceRepo) Delete(ctx context.Context, id int) error {
	q := psql.Delete(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	var deleted int
	if err := pgxscan.Get(ctx, r.tm.Querier(ctx), &deleted, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return invoice.ErrNotFound(strconv.Itoa(id))
		}
		return fmt.Errorf("delete invoice %d: %w", id, err)
	}

	return nil
}
