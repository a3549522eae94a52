// Package client wraps every call to the downstream reservation, payment and
// loyalty services behind a single error taxonomy. These sentinel and typed
// values let higher layers such as handlers and the booking workflows
// distinguish failure scenarios without inspecting transport detail: a
// transport-level failure, an error-status answer with its status preserved,
// or an accepted answer whose body did not match the expected shape.
package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable is returned when a downstream service cannot be reached at
// the transport level. Handlers should translate this into an HTTP 503
// response.
var ErrUnavailable = errors.New("service unavailable")

// ErrDecode is returned when a downstream service answered 2xx but the body
// could not be decoded into the expected shape. This indicates a contract
// mismatch the gateway cannot recover from; handlers should translate it
// into an HTTP 500 response.
var ErrDecode = errors.New("unexpected response body")

// UpstreamError is returned when a downstream service answered with a 4xx or
// 5xx status. The status is preserved so callers can propagate it where that
// is meaningful. Sub-400 statuses are not a rejection; an unexpected one
// surfaces as ErrDecode when the body does not match the expected shape.
type UpstreamError struct {
	Service    string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service responded with status %d", e.Service, e.StatusCode)
}

// IsNotFound reports whether err is an upstream 404. The loyalty service uses
// 404 as a distinguished "no account yet" answer rather than a failure.
func IsNotFound(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound
}
