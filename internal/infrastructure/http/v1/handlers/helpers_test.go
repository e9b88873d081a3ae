package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"biztime/internal/core/tx"
	"biztime/internal/domain/company"
	"biztime/internal/domain/industry"
	"biztime/internal/domain/invoice"
	v1 "biztime/internal/infrastructure/http/v1"
	"biztime/pkg/logger"
)

// In-memory repositories backing the real services, so tests exercise the
// full middleware/handler/service path over HTTP.

type companyStore struct {
	companies map[string]company.Company
	order     []string
}

func newCompanyStore() *companyStore {
	return &companyStore{companies: make(map[string]company.Company)}
}

func (s *companyStore) List(_ context.Context) ([]company.Summary, error) {
	out := make([]company.Summary, 0, len(s.order))
	for _, code := range s.order {
		c := s.companies[code]
		out = append(out, company.Summary{Code: c.Code, Name: c.Name})
	}
	return out, nil
}

func (s *companyStore) GetDetailRows(_ context.Context, code string) ([]company.JoinRow, error) {
	c, ok := s.companies[code]
	if !ok {
		return nil, nil
	}
	return []company.JoinRow{{
		CompanyCode:        c.Code,
		CompanyName:        c.Name,
		CompanyDescription: c.Description,
	}}, nil
}

func (s *companyStore) Create(_ context.Context, c company.Company) (*company.Company, error) {
	s.companies[c.Code] = c
	s.order = append(s.order, c.Code)
	return &c, nil
}

func (s *companyStore) Update(_ context.Context, c company.Company) (*company.Company, error) {
	if _, ok := s.companies[c.Code]; !ok {
		return nil, company.ErrNotFound(c.Code)
	}
	s.companies[c.Code] = c
	return &c, nil
}

func (s *companyStore) Delete(_ context.Context, code string) error {
	if _, ok := s.companies[code]; !ok {
		return company.ErrNotFound(code)
	}
	delete(s.companies, code)
	for i, c := range s.order {
		if c == code {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type invoiceStore struct {
	companies map[string]bool
	invoices  map[int]invoice.Invoice
	nextID    int
	today     time.Time
}

func newInvoiceStore(companies ...string) *invoiceStore {
	s := &invoiceStore{
		companies: make(map[string]bool),
		invoices:  make(map[int]invoice.Invoice),
		nextID:    1,
		today:     time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}
	for _, c := range companies {
		s.companies[c] = true
	}
	return s
}

func (s *invoiceStore) List(_ context.Context) ([]invoice.Invoice, error) {
	ids := make([]int, 0, len(s.invoices))
	for id := range s.invoices {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]invoice.Invoice, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.invoices[id])
	}
	return out, nil
}

func (s *invoiceStore) GetByID(_ context.Context, id int) (*invoice.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, invoice.ErrNotFound(strconv.Itoa(id))
	}
	return &inv, nil
}

func (s *invoiceStore) GetDetail(_ context.Context, id int) (*invoice.Detail, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, invoice.ErrNotFound(strconv.Itoa(id))
	}
	return &invoice.Detail{
		Invoice: inv,
		Company: invoice.CompanySummary{Code: inv.CompCode, Name: "Company " + inv.CompCode},
	}, nil
}

func (s *invoiceStore) CompanyExists(_ context.Context, code string) (bool, error) {
	return s.companies[code], nil
}

func (s *invoiceStore) Create(_ context.Context, compCode string, amt decimal.Decimal) (*invoice.Invoice, error) {
	inv := invoice.Invoice{
		ID:       s.nextID,
		CompCode: compCode,
		Amt:      amt,
		AddDate:  s.today,
	}
	s.nextID++
	s.invoices[inv.ID] = inv
	return &inv, nil
}

func (s *invoiceStore) Update(_ context.Context, inv invoice.Invoice) (*invoice.Invoice, error) {
	if _, ok := s.invoices[inv.ID]; !ok {
		return nil, invoice.ErrNotFound(strconv.Itoa(inv.ID))
	}
	s.invoices[inv.ID] = inv
	return &inv, nil
}

func (s *invoiceStore) Delete(_ context.Context, id int) error {
	if _, ok := s.invoices[id]; !ok {
		return invoice.ErrNotFound(strconv.Itoa(id))
	}
	delete(s.invoices, id)
	return nil
}

type industryStore struct {
	industries map[string]industry.Industry
	order      []string
	companies  map[string]bool
	pairs      map[string][]string // industry code -> company codes
}

func newIndustryStore(companies ...string) *industryStore {
	s := &industryStore{
		industries: make(map[string]industry.Industry),
		companies:  make(map[string]bool),
		pairs:      make(map[string][]string),
	}
	for _, c := range companies {
		s.companies[c] = true
	}
	return s
}

func (s *industryStore) ListWithCompanies(_ context.Context) ([]industry.AggRow, error) {
	out := make([]industry.AggRow, 0, len(s.order))
	for _, code := range s.order {
		ind := s.industries[code]
		row := industry.AggRow{Code: ind.Code, Name: ind.Name}
		if linked := s.pairs[code]; len(linked) == 0 {
			row.CompanyCodes = []*string{nil}
		} else {
			for i := range linked {
				row.CompanyCodes = append(row.CompanyCodes, &linked[i])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *industryStore) Create(_ context.Context, ind industry.Industry) error {
	s.industries[ind.Code] = ind
	s.order = append(s.order, ind.Code)
	return nil
}

func (s *industryStore) Exists(_ context.Context, code string) (bool, error) {
	_, ok := s.industries[code]
	return ok, nil
}

func (s *industryStore) CompanyExists(_ context.Context, code string) (bool, error) {
	return s.companies[code], nil
}

func (s *industryStore) Associate(_ context.Context, companyCode, industryCode string) error {
	for _, c := range s.pairs[industryCode] {
		if c == companyCode {
			return nil
		}
	}
	s.pairs[industryCode] = append(s.pairs[industryCode], companyCode)
	return nil
}

type stores struct {
	companies  *companyStore
	invoices   *invoiceStore
	industries *industryStore
}

func newTestRouter(s stores) *gin.Engine {
	if s.companies == nil {
		s.companies = newCompanyStore()
	}
	if s.invoices == nil {
		s.invoices = newInvoiceStore()
	}
	if s.industries == nil {
		s.industries = newIndustryStore()
	}
	return v1.NewRouter(v1.RouterConfig{
		Logger:          logger.Default(),
		CompanyService:  company.NewService(s.companies),
		InvoiceService:  invoice.NewService(s.invoices, tx.Nop{}),
		IndustryService: industry.NewService(s.industries, tx.Nop{}),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
