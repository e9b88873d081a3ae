package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biztime/internal/domain/industry"
	"biztime/internal/infrastructure/http/v1/dto"
)

// IndustryHandler serves the /industries resource.
type IndustryHandler struct {
	*BaseHandler
	service *industry.Service
}

// NewIndustryHandler creates a new industry handler.
func NewIndustryHandler(base *BaseHandler, service *industry.Service) *IndustryHandler {
	return &IndustryHandler{BaseHandler: base, service: service}
}

// List handles GET /industries - industries with associated company codes.
func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"industries": dto.FromIndustriesWithCompanies(industries)})
}

// Create handles POST /industries.
func (h *IndustryHandler) Create(c *gin.Context) {
	var req dto.CreateIndustryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Industry)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, gin.H{"industry": dto.FromIndustry(created)})
}

// Associate handles POST /industries/:code - link a company to an industry.
// A pair that is already linked is confirmed again, not an error.
func (h *IndustryHandler) Associate(c *gin.Context) {
	var req dto.AssociateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	message, err := h.service.Associate(c.Request.Context(), c.Param("code"), req.CompanyCode)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: message})
}
