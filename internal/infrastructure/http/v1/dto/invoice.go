package dto

import (
	"github.com/shopspring/decimal"

	"biztime/internal/domain/invoice"
)

// Amount renders a decimal as a bare JSON number, matching the numeric
// columns it comes from. Response-only: request DTOs decode straight into
// decimal.Decimal.
type Amount decimal.Decimal

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

// --- Request DTOs ---

// CreateInvoiceRequest is the request body for creating an invoice.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
}

// UpdateInvoiceRequest is the request body for updating an invoice.
// Paid is a pointer: absent means "leave the paid state alone".
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt"`
	Paid *bool           `json:"paid"`
}

// --- Response DTOs ---

// InvoiceResponse is the full invoice row.
type InvoiceResponse struct {
	ID       int     `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      Amount  `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

// InvoiceDetailResponse is an invoice with its owning company nested.
type InvoiceDetailResponse struct {
	ID       int             `json:"id"`
	Amt      Amount          `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// FromInvoice creates a response DTO from the domain entity.
func FromInvoice(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      Amount(inv.Amt),
		Paid:     inv.Paid,
		AddDate:  formatDate(inv.AddDate),
		PaidDate: formatDatePtr(inv.PaidDate),
	}
}

// FromInvoices creates listing DTOs from domain entities.
func FromInvoices(invoices []invoice.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = FromInvoice(&invoices[i])
	}
	return out
}

// FromInvoiceDetail creates the nested response DTO.
func FromInvoiceDetail(d *invoice.Detail) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       d.ID,
		Amt:      Amount(d.Amt),
		Paid:     d.Paid,
		AddDate:  formatDate(d.AddDate),
		PaidDate: formatDatePtr(d.PaidDate),
		Company: CompanyResponse{
			Code:        d.Company.Code,
			Name:        d.Company.Name,
			Description: d.Company.Description,
		},
	}
}
