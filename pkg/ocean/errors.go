package ocean

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrTokenRequired      = errors.New("API token is required")
	ErrInvalidEndpoint    = errors.New("invalid API endpoint")
	ErrMissingEnvelopeKey = errors.New("response envelope key not found")
)

// APIError is a non-success response from the API, carrying the provider's
// error payload when it could be parsed and the raw status and body when it
// could not.
type APIError struct {
	StatusCode int    `json:"-"`
	ID         string `json:"id"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.ID, e.Message, e.StatusCode)
}

// TransportError reports that the network round trip itself failed:
// connection refused, timeout, TLS failure. The request never produced a
// status code.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a payload that could not be encoded, or a response
// that could not be decoded into the shape the request promised. A response
// that is valid JSON but lacks the expected envelope key, or whose value
// has the wrong shape, is classified here rather than as an API error; API
// errors are reserved for non-success statuses.
type DecodeError struct {
	// Key is the envelope key being decoded, empty while encoding the
	// request body.
	Key string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Key == "" {
		return "decode: " + e.Err.Error()
	}

	return fmt.Sprintf("decode %q: %s", e.Key, e.Err.Error())
}

// Unwrap returns the underlying (un)marshalling failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// parseAPIError classifies a non-success response, falling back to the raw
// status and body when the payload is not the provider's error shape.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	err := json.Unmarshal(body, apiErr)
	if err != nil || apiErr.ID == "" {
		apiErr.ID = "unknown"
		apiErr.Message = string(body)
	}

	return apiErr
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsRateLimited reports whether err is an API error with status 429.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecode reports whether err is a serialization failure.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}
