package cybersearch

import "fmt"

// ErrorCode mirrors the server's machine-readable error codes.
type ErrorCode string

// Error code constants.
const (
	ErrorCodeBadRequest    ErrorCode = "bad_request"
	ErrorCodeEmptyTerm     ErrorCode = "empty_term"
	ErrorCodeInternalError ErrorCode = "internal_error"
)

// APIError is an error response from the server.
// Use errors.As() to inspect the code:
//
//	var apiErr *cybersearch.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == cybersearch.ErrorCodeEmptyTerm {
//	    // the phrase sanitized to nothing
//	}
type APIError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cybersearch: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}
