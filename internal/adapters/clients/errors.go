// Package clients provides the outbound HTTP client used to fetch remote seed data.
package clients

import "errors"

// ErrMaxRetriesExceeded is returned after all retry attempts have been exhausted.
// The last attempt's error is wrapped alongside it.
var ErrMaxRetriesExceeded = errors.New("max retries exceeded")
