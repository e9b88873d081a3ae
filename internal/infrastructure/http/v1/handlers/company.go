package handlers

import (
	"github.com/gin-gonic/gin"

	"biztime/internal/domain/company"
	"biztime/internal/infrastructure/http/v1/dto"
)

// CompanyHandler serves the /companies resource.
type CompanyHandler struct {
	*BaseHandler
	service *company.Service
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(base *BaseHandler, service *company.Service) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, service: service}
}

// List handles GET /companies.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"companies": dto.FromCompanySummaries(companies)})
}

// Get handles GET /companies/:code - company with invoices and industries.
func (h *CompanyHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"company": dto.FromCompanyDetail(detail)})
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, gin.H{"company": dto.FromCompany(created)})
}

// Update handles PUT /companies/:code.
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("code"), req.Name, req.Description)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"company": dto.FromCompany(updated)})
}

// Delete handles DELETE /companies/:code.
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.Deleted())
}
