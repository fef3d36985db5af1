package handler

import (
	"github.com/gin-gonic/gin"

	recordsapp "github.com/nvmock/backend/internal/application/records"
	"github.com/nvmock/backend/internal/interfaces/wire"
)

// SalesInvoiceHandler handles the sales-invoice wire endpoints.
type SalesInvoiceHandler struct {
	BaseHandler
	store *recordsapp.Store
	codec *wire.Codec
}

// NewSalesInvoiceHandler creates a new SalesInvoiceHandler
func NewSalesInvoiceHandler(store *recordsapp.Store, codec *wire.Codec) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{store: store, codec: codec}
}

// RegisterRoutes registers the sales-invoice routes
func (h *SalesInvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/getsalesinvoice.nv", h.Get)
	rg.POST("/salesinvoice.nv", h.Create)
}

// Get serves getsalesinvoice.nv. The customer reference inside the invoice
// is resolved here, not at write time. Any non-empty pdfimage value embeds
// the placeholder document, matching the original service's truthiness
// handling.
func (h *SalesInvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.store.GetSalesInvoice(c.Query("netvisorkey"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	customerID, customer, err := h.store.CustomerForInvoice(invoice)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	withPDF := c.Query("pdfimage") != ""
	body, err := h.codec.EncodeSalesInvoice(c.Query("netvisorkey"), invoice, customerID, customer, withPDF)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Document(c, body)
}

// Create serves salesinvoice.nv. Only method=add is supported; any other
// variant is answered with an empty 204.
func (h *SalesInvoiceHandler) Create(c *gin.Context) {
	if c.Query("method") != "add" {
		h.NoContent(c)
		return
	}

	data, err := c.GetRawData()
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	payload, err := wire.DecodePayload(data)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	id, err := h.store.CreateSalesInvoice(payload)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	body, err := h.codec.EncodeInsertedData(id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Document(c, body)
}
