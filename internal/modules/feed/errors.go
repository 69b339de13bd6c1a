package feed

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured means the feed endpoint URL is missing. Surfaced at
// client construction, i.e. at startup, never per request.
var ErrNotConfigured = errors.New("feed: FEED_URL is not configured")

const excerptLimit = 400

// TimeoutError: the bounded request deadline elapsed and the in-flight
// request was cancelled. Recoverable by user retry.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("feed: request timed out after %s", e.Timeout)
}

// TransportError: non-2xx status, a non-JSON payload, or a body that
// failed to decode. Carries a truncated body excerpt for diagnostics.
type TransportError struct {
	StatusCode int
	Message    string
	Excerpt    string
}

func (e *TransportError) Error() string {
	if e.Excerpt != "" {
		return fmt.Sprintf("feed: %s\n%s", e.Message, e.Excerpt)
	}
	return "feed: " + e.Message
}

// UpstreamError: the feed answered with its error-tagged envelope.
type UpstreamError struct {
	HTTPStatus int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("feed: %d: %s", e.HTTPStatus, e.Message)
}

func excerpt(body []byte) string {
	if len(body) > excerptLimit {
		body = body[:excerptLimit]
	}
	return string(body)
}
