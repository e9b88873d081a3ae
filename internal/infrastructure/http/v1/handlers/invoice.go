package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"biztime/internal/domain/invoice"
	"biztime/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler serves the /invoices resource.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// invoiceID parses the :id path parameter. A non-numeric id cannot resolve
// to a row, so it reads as not found.
func (h *InvoiceHandler) invoiceID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.Error(c, invoice.ErrNotFound(raw))
		return 0, false
	}
	return id, true
}

// List handles GET /invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"invoices": dto.FromInvoices(invoices)})
}

// Get handles GET /invoices/:id - invoice with its company nested.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"invoice": dto.FromInvoiceDetail(detail)})
}

// Create handles POST /invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.CompCode, req.Amt)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, gin.H{"invoice": dto.FromInvoice(created)})
}

// Update handles PUT /invoices/:id.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Amt, req.Paid)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"invoice": dto.FromInvoice(updated)})
}

// Delete handles DELETE /invoices/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.Deleted())
}
