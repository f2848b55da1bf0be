// Package network provides the shared HTTP client and the request pacing used against rate-limited APIs.
package network

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request, including reading the body.
const DefaultTimeout = time.Minute

// Client is the HTTP client shared across the application.
// The harvest is sequential, so the pool is kept small.
var Client = NewClient(DefaultTimeout)

// NewClient returns an HTTP client with the tuned transport and the given timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
