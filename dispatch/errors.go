package dispatch

import (
	"errors"
	"net/http"
)

// ErrorKind classifies request failures.
type ErrorKind int

const (
	// KindMissingParameter means a required input is absent.
	KindMissingParameter ErrorKind = iota
	// KindType means an input is present but has the wrong type.
	KindType
	// KindDomain means an input is well-typed but outside the valid domain.
	KindDomain
	// KindRouteNotFound means no route matched the request.
	KindRouteNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingParameter:
		return "missing_parameter"
	case KindType:
		return "type_error"
	case KindDomain:
		return "domain_error"
	case KindRouteNotFound:
		return "route_not_found"
	default:
		return "unknown"
	}
}

// StatusCode returns the HTTP status code for the kind.
func (k ErrorKind) StatusCode() int {
	switch k {
	case KindMissingParameter, KindType:
		return http.StatusUnprocessableEntity
	case KindDomain:
		return http.StatusBadRequest
	case KindRouteNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RequestError is a client-visible failure. Message is sent verbatim.
type RequestError struct {
	Kind    ErrorKind
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func newRequestError(kind ErrorKind, message string) *RequestError {
	return &RequestError{Kind: kind, Message: message}
}

var (
	ErrNotFound = newRequestError(KindRouteNotFound, "Not Found")

	ErrParameterRequired    = newRequestError(KindMissingParameter, "Parameter n is required")
	ErrParameterNotInteger  = newRequestError(KindType, "Parameter n must be an integer")
	ErrParameterNegative    = newRequestError(KindDomain, "Invalid value for n, must be non-negative")
	ErrParameterOutOfRange  = newRequestError(KindDomain, "Invalid value for n, must not exceed 9223372036854775807")
	ErrBodyInvalidJSON      = newRequestError(KindType, "Request body must be valid JSON")
	ErrBodyNotArray         = newRequestError(KindType, "Request body must be an array")
	ErrBodyEmptyArray       = newRequestError(KindDomain, "Array cannot be empty")
	ErrBodyElementNotNumber = newRequestError(KindType, "All elements must be numbers")
	ErrBodyUnreadable       = newRequestError(KindType, "Request body could not be read")
)

const internalErrorMessage = "Internal Server Error"

// getErrorStatus returns the status code and client message for err.
func getErrorStatus(err error) (int, string) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind.StatusCode(), reqErr.Message
	}

	return http.StatusInternalServerError, internalErrorMessage
}
