package jikan

import (
	"fmt"
	"net/http"
)

// RequestError reports a failed API call.
// StatusCode is zero when no HTTP response was received.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("jikan %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("jikan %s: status %d %s", e.Endpoint, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return fmt.Sprintf("jikan %s: %v", e.Endpoint, e.Err)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// RateLimited reports whether the request failed because retries on HTTP 429 were exhausted.
func (e *RequestError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
