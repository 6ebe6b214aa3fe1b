package transcribe

import (
	"context"
	"errors"
	"strings"
)

// ErrUnsupportedFormat marks files the pipeline cannot transcribe.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Transient reports whether a transcription error is worth retrying:
// quota and rate limits, timeouts, and transport failures. Auth errors,
// malformed documents and unsupported formats are permanent.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"status 429", "rate limit", "quota",
		"status 500", "status 502", "status 503", "status 504",
		"timeout", "connection refused", "connection reset",
		"no such host", "temporary failure",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
