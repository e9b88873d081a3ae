package dto

import (
	"biztime/internal/domain/industry"
)

// --- Request DTOs ---

// CreateIndustryRequest is the request body for creating an industry.
type CreateIndustryRequest struct {
	Industry string `json:"industry"`
}

// AssociateCompanyRequest is the request body for associating a company
// with an industry.
type AssociateCompanyRequest struct {
	CompanyCode string `json:"company_code"`
}

// --- Response DTOs ---

// IndustryResponse is the created industry pair.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryWithCompaniesResponse is one entry of the industry listing.
type IndustryWithCompaniesResponse struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Companies []string `json:"companies"`
}

// FromIndustry creates a response DTO from the domain entity.
func FromIndustry(ind *industry.Industry) IndustryResponse {
	return IndustryResponse{Code: ind.Code, Industry: ind.Name}
}

// FromIndustriesWithCompanies creates listing DTOs from the aggregates.
func FromIndustriesWithCompanies(rows []industry.WithCompanies) []IndustryWithCompaniesResponse {
	out := make([]IndustryWithCompaniesResponse, len(rows))
	for i, row := range rows {
		out[i] = IndustryWithCompaniesResponse{
			Code:      row.Code,
			Name:      row.Name,
			Companies: row.Companies,
		}
	}
	return out
}
