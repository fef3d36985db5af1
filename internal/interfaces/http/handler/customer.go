package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recordsapp "github.com/nvmock/backend/internal/application/records"
	"github.com/nvmock/backend/internal/interfaces/wire"
)

// CustomerHandler handles the customer wire endpoints.
type CustomerHandler struct {
	BaseHandler
	store *recordsapp.Store
	codec *wire.Codec
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(store *recordsapp.Store, codec *wire.Codec) *CustomerHandler {
	return &CustomerHandler{store: store, codec: codec}
}

// RegisterRoutes registers the customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/customerlist.nv", h.List)
	rg.POST("/customer.nv", h.Upsert)
}

// List serves customerlist.nv. An optional keyword query restricts the list
// to customers with a matching business identifier.
func (h *CustomerHandler) List(c *gin.Context) {
	body, err := h.codec.EncodeCustomerList(h.store.ListCustomers(c.Query("keyword")))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Document(c, body)
}

// Upsert serves customer.nv. method=add creates a customer; any other
// method edits the customer named by the id query parameter.
func (h *CustomerHandler) Upsert(c *gin.Context) {
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

	var id string
	if c.Query("method") == "add" {
		id, err = h.store.CreateCustomer(payload)
	} else {
		target := c.Query("id")
		if target == "" {
			c.Status(http.StatusBadRequest)
			return
		}
		id, err = h.store.EditCustomer(target, payload)
	}
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
