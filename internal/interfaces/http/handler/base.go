package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nvmock/backend/internal/domain/records"
	"github.com/nvmock/backend/internal/infrastructure/logger"
)

// The real service replies with this content type even for XML bodies.
const responseContentType = "text/html"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Document sends an encoded XML response document.
func (h *BaseHandler) Document(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, responseContentType, body)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// HandleDomainError maps domain errors to bare status codes. The mock
// favors empty failure responses over exposing error detail on the wire;
// detail goes to the log instead.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	log := logger.GetGinLogger(c)

	var domainErr *records.DomainError
	if errors.As(err, &domainErr) {
		status := statusForCode(domainErr.Code)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", zap.String("code", domainErr.Code), zap.Error(err))
		} else {
			log.Warn("Request rejected", zap.String("code", domainErr.Code), zap.Error(err))
		}
		c.Status(status)
		return
	}

	log.Error("Request failed", zap.Error(err))
	c.Status(http.StatusInternalServerError)
}

func statusForCode(code string) int {
	switch code {
	case records.ErrMalformedPayload.Code, records.ErrMissingField.Code:
		return http.StatusBadRequest
	case records.ErrNotFound.Code:
		return http.StatusNotFound
	default:
		// BROKEN_REFERENCE, RESOURCE_UNAVAILABLE, PERSISTENCE_FAILURE
		return http.StatusInternalServerError
	}
}
