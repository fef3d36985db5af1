package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recordsapp "github.com/nvmock/backend/internal/application/records"
)

// SystemHandler serves the greeting and reset endpoints.
type SystemHandler struct {
	BaseHandler
	store *recordsapp.Store
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(store *recordsapp.Store) *SystemHandler {
	return &SystemHandler{store: store}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.POST("/reset", h.Reset)
}

// Root serves the plain greeting used as a liveness probe by client
// integration suites.
func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello!")
}

// Reset clears the store back to its empty persisted state.
func (h *SystemHandler) Reset(c *gin.Context) {
	if err := h.store.Reset(); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
