package models

// APIError is the JSON body of every non-OAuth error response
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error codes of APIError
const (
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	ErrPizzaNotFound     = "PIZZA_NOT_FOUND"
	ErrPizzaAlreadyExist = "PIZZA_ALREADY_EXISTS"
	ErrInvalidSort       = "INVALID_SORT"
	// the price was stored but the change notice was not delivered
	ErrNotificationFailed = "NOTIFICATION_FAILED"

	ErrCustomerNotFound = "CUSTOMER_NOT_FOUND"
)

// Bearer token error codes (RFC 6750 section 3.1)
const (
	ErrInvalidRequest    = "invalid_request"
	ErrInvalidToken      = "invalid_token"
	ErrMissingCredential = "authorization_required"
)

// NewAPIError builds an APIError, details are optional
func NewAPIError(code, message string, details ...map[string]any) APIError {
	apiErr := APIError{Code: code, Message: message}
	if len(details) > 0 {
		apiErr.Details = details[0]
	}
	return apiErr
}

// OAuth2Error is the error body of the token endpoint and of rejected bearer tokens
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

func NewOAuth2Error(code, description string) OAuth2Error {
	return OAuth2Error{Error: code, ErrorDescription: description}
}
