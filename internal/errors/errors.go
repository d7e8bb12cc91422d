package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrGigNotFound is returned when a gig id is unknown.
	ErrGigNotFound = errors.New("gig not found")
	// ErrStoreUnavailable is returned when the backing store cannot be read or written.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidBounty is returned when a bounty is not a positive decimal string.
	ErrInvalidBounty = errors.New("invalid bounty amount")
	// ErrInvalidStatus is returned when a status is outside the known set.
	ErrInvalidStatus = errors.New("invalid gig status")
	// ErrPayoutNotReady is returned when a payout is requested for a gig that is not completed.
	ErrPayoutNotReady = errors.New("gig is not completed")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Store failures and
// unexpected errors collapse to one 500, matching the wire contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrGigNotFound):
		return NewHTTPError(http.StatusNotFound, ErrGigNotFound.Error(), "GIG_NOT_FOUND")
	case errors.Is(err, ErrInvalidBounty):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidBounty.Error(), "INVALID_BOUNTY")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidStatus.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrPayoutNotReady):
		return NewHTTPError(http.StatusConflict, ErrPayoutNotReady.Error(), "PAYOUT_NOT_READY")
	case errors.Is(err, ErrStoreUnavailable):
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "STORE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
