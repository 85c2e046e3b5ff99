package sponsorblock

import (
	"fmt"
	"net/http"
)

// InvalidVideoIDError reports input that is neither an 11-character video
// id nor a URL the id could be extracted from. Raised before any network
// call is made.
type InvalidVideoIDError struct {
	Input string
}

func (e *InvalidVideoIDError) Error() string {
	return fmt.Sprintf("sponsorblock: invalid video id or url %q", e.Input)
}

// HTTPError is the base for every error derived from a server response.
// The concrete taxonomy types embed it so callers can match either the
// specific kind with errors.As or any HTTP failure with *HTTPError.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       string // response body, trimmed
}

func (e *HTTPError) Error() string {
	msg := "sponsorblock: " + e.Message
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// NotFoundError means the server knows nothing about the requested
// resource: no segments for a video, unknown user, unknown segment uuid.
type NotFoundError struct{ HTTPError }

func (e *NotFoundError) Unwrap() error { return &e.HTTPError }

// BadRequestError means the server rejected the request parameters.
type BadRequestError struct{ HTTPError }

func (e *BadRequestError) Unwrap() error { return &e.HTTPError }

// ForbiddenError means the submission was rejected by the auto moderator.
type ForbiddenError struct{ HTTPError }

func (e *ForbiddenError) Unwrap() error { return &e.HTTPError }

// DuplicateError means an identical segment already exists.
type DuplicateError struct{ HTTPError }

func (e *DuplicateError) Unwrap() error { return &e.HTTPError }

// RateLimitError means too many requests came from the same user or IP.
type RateLimitError struct{ HTTPError }

func (e *RateLimitError) Unwrap() error { return &e.HTTPError }

// ServerError covers 5xx responses, unexpected status codes, and
// transport-level failures. Transport distinguishes "server unreachable"
// (connection refused, timeout) from "server reachable but broken"; in
// the transport case StatusCode is zero and Unwrap returns the cause.
type ServerError struct {
	HTTPError
	Transport bool
	cause     error
}

func (e *ServerError) Error() string {
	if e.Transport {
		return fmt.Sprintf("sponsorblock: %s: %v", e.Message, e.cause)
	}
	return e.HTTPError.Error()
}

func (e *ServerError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return &e.HTTPError
}

// InvalidJSONError means the server answered with a success status but a
// body that does not decode as the expected JSON shape.
type InvalidJSONError struct {
	Body  string
	cause error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("sponsorblock: server returned invalid JSON: %v", e.cause)
}

func (e *InvalidJSONError) Unwrap() error { return e.cause }

func transportError(op string, cause error) *ServerError {
	return &ServerError{
		HTTPError: HTTPError{Message: op + " request failed"},
		Transport: true,
		cause:     cause,
	}
}

// statusError maps a non-2xx response to the taxonomy. The body is kept
// (trimmed) because the server puts human-readable detail there.
func statusError(code int, body []byte) error {
	base := HTTPError{StatusCode: code, Body: trimBody(body)}
	switch {
	case code == http.StatusBadRequest:
		base.Message = "bad request"
		return &BadRequestError{base}
	case code == http.StatusForbidden:
		base.Message = "rejected by auto moderator"
		return &ForbiddenError{base}
	case code == http.StatusNotFound:
		base.Message = "not found"
		return &NotFoundError{base}
	case code == http.StatusConflict:
		base.Message = "duplicate segment"
		return &DuplicateError{base}
	case code == http.StatusTooManyRequests:
		base.Message = "rate limited"
		return &RateLimitError{base}
	case code >= 500:
		base.Message = "server error"
		return &ServerError{HTTPError: base}
	default:
		base.Message = "unexpected response from server"
		return &ServerError{HTTPError: base}
	}
}

const maxBodySnippet = 200

func trimBody(body []byte) string {
	if len(body) > maxBodySnippet {
		return string(body[:maxBodySnippet]) + "..."
	}
	return string(body)
}
