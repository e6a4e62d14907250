package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON              = "INVALID_JSON"
	ErrCodeMissingField             = "MISSING_FIELD"
	ErrCodeFormInvalid              = "FORM_INVALID"
	ErrCodeEmptyOrder               = "EMPTY_ORDER"
	ErrCodeDiscontinuedItem         = "DISCONTINUED_ITEM"
	ErrCodeWarehouseNotSelected     = "WAREHOUSE_NOT_SELECTED"
	ErrCodeInvalidQuantity          = "INVALID_QUANTITY"
	ErrCodeSenderSettingsIncomplete = "SENDER_SETTINGS_INCOMPLETE"
	ErrCodeNoSenderContact          = "NO_SENDER_CONTACT"
	ErrCodeSubmitInProgress         = "SUBMIT_IN_PROGRESS"
	ErrCodeSessionNotFound          = "SESSION_NOT_FOUND"
	ErrCodeSaleTypeLocked           = "SALE_TYPE_LOCKED"
	ErrCodeUnauthorised             = "UNAUTHORIZED"
	ErrCodeInternalError            = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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
	ErrFormInvalid              = NewDomainError(ErrCodeFormInvalid, "Order form has validation errors")
	ErrEmptyOrder               = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrDiscontinuedItem         = NewDomainError(ErrCodeDiscontinuedItem, "Order contains a discontinued product variant")
	ErrWarehouseNotSelected     = NewDomainError(ErrCodeWarehouseNotSelected, "Recipient city and warehouse must be selected")
	ErrInvalidQuantity          = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrSenderSettingsIncomplete = NewDomainError(ErrCodeSenderSettingsIncomplete, "Sender carrier settings are incomplete")
	ErrNoSenderContact          = NewDomainError(ErrCodeNoSenderContact, "No sender contact person is configured")
	ErrSubmitInProgress         = NewDomainError(ErrCodeSubmitInProgress, "Order submission is already in progress")
	ErrSessionNotFound          = NewDomainError(ErrCodeSessionNotFound, "Order form session not found")
	ErrSaleTypeLocked           = NewDomainError(ErrCodeSaleTypeLocked, "Sale type cannot be changed after order creation")
)
