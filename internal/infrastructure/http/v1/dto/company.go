package dto

import (
	"biztime/internal/domain/company"
)

// --- Request DTOs ---

// CreateCompanyRequest is the request body for creating a company.
// Presence of name and description is enforced by the service so the
// validation message matches the contract.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCompanyRequest is the request body for updating a company.
type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// --- Response DTOs ---

// CompanySummaryResponse is one entry of the company listing.
type CompanySummaryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyResponse is the flat company shape.
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetailResponse is the company with industries and invoices nested.
type CompanyDetailResponse struct {
	Code        string                   `json:"code"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description"`
	Industries  []string                 `json:"industries"`
	Invoices    []InvoiceSummaryResponse `json:"invoices"`
}

// InvoiceSummaryResponse is an invoice as nested under a company.
type InvoiceSummaryResponse struct {
	ID       int     `json:"id"`
	Amt      Amount  `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

// FromCompanySummaries creates listing DTOs from domain summaries.
func FromCompanySummaries(summaries []company.Summary) []CompanySummaryResponse {
	out := make([]CompanySummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = CompanySummaryResponse{Code: s.Code, Name: s.Name}
	}
	return out
}

// FromCompany creates a flat response DTO from the domain entity.
func FromCompany(c *company.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// FromCompanyDetail creates the nested response DTO from the aggregate.
func FromCompanyDetail(d *company.Detail) CompanyDetailResponse {
	invoices := make([]InvoiceSummaryResponse, len(d.Invoices))
	for i, inv := range d.Invoices {
		invoices[i] = InvoiceSummaryResponse{
			ID:       inv.ID,
			Amt:      Amount(inv.Amt),
			Paid:     inv.Paid,
			AddDate:  formatDate(inv.AddDate),
			PaidDate: formatDatePtr(inv.PaidDate),
		}
	}

	return CompanyDetailResponse{
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Industries:  d.Industries,
		Invoices:    invoices,
	}
}
