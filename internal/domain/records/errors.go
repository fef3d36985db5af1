package records

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMalformedPayload    = NewDomainError("MALFORMED_PAYLOAD", "Request payload is not well-formed XML")
	ErrMissingField        = NewDomainError("MISSING_FIELD", "Required field is absent from the payload")
	ErrNotFound            = NewDomainError("NOT_FOUND", "Record not found")
	ErrBrokenReference     = NewDomainError("BROKEN_REFERENCE", "Record references an unknown record")
	ErrResourceUnavailable = NewDomainError("RESOURCE_UNAVAILABLE", "Required local resource cannot be read")
	ErrPersistenceFailure  = NewDomainError("PERSISTENCE_FAILURE", "Durable state could not be read or written")
)
