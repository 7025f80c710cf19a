package fitbit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

var (
	// ErrDecode wraps a response body that could not be decoded.
	ErrDecode = errors.New("fitbit: decode response")
	// ErrTransport wraps a request that never produced a response.
	ErrTransport = errors.New("fitbit: transport")
)

// APIError is a non-2xx response from the Fitbit API.
type APIError struct {
	StatusCode int
	// Type is the errorType of the first entry in the Fitbit error body,
	// e.g. "expired_token" or "validation".
	Type    string
	Message string
	// RetryAfter is parsed from the Retry-After header of a 429 response.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("fitbit: %s (%d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fitbit: %d: %s", e.StatusCode, e.Message)
}

func IsUnauthorized(err error) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsRateLimited returns true if the error is a 429 (Too Many Requests).
func IsRateLimited(err error) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// RetryAfter returns the server-advised wait of a rate limited error.
func RetryAfter(err error) (time.Duration, bool) {
	var e *APIError
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter, true
	}
	return 0, false
}

type errorBody struct {
	Errors []struct {
		ErrorType string `json:"errorType"`
		FieldName string `json:"fieldName"`
		Message   string `json:"message"`
	} `json:"errors"`
}

func parseErrorResponse(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		apiErr.Type = parsed.Errors[0].ErrorType
		apiErr.Message = parsed.Errors[0].Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return apiErr
}
