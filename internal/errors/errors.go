package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrNotOwner is returned when a caller edits a listing they do not own.
	ErrNotOwner = errors.New("listing is owned by another user")
	// ErrDiscountRequiresVerified is returned when the member discount flag is
	// set on a listing below verification level 3.
	ErrDiscountRequiresVerified = errors.New("member discount requires verification level 3")
	// ErrInvalidBudgetRange is returned when a budget value is outside Low/Medium/High.
	ErrInvalidBudgetRange = errors.New("invalid budget range")
	// ErrInvalidVerificationLevel is returned when a verification level is outside 1..3.
	ErrInvalidVerificationLevel = errors.New("invalid verification level")
	// ErrAdminOnly is returned when a non-admin calls an administrative operation.
	ErrAdminOnly = errors.New("operation requires administrator access")
	// ErrAlreadySeeded is returned when the seed catalog has already been inserted.
	ErrAlreadySeeded = errors.New("catalog already seeded")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrListingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LISTING_NOT_FOUND")
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_OWNER")
	case errors.Is(err, ErrDiscountRequiresVerified):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "DISCOUNT_REQUIRES_VERIFIED")
	case errors.Is(err, ErrInvalidBudgetRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_BUDGET_RANGE")
	case errors.Is(err, ErrInvalidVerificationLevel):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_VERIFICATION_LEVEL")
	case errors.Is(err, ErrAdminOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case errors.Is(err, ErrAlreadySeeded):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_SEEDED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
