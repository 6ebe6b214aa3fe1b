package transcribe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limit", errors.New("api status 429: rate limit exceeded"), true},
		{"quota", errors.New("insufficient quota for this request"), true},
		{"server error", errors.New("api status 503: overloaded"), true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("transcribe: %w", context.DeadlineExceeded), true},
		{"connection refused", errors.New("http post: dial tcp: connection refused"), true},
		{"auth failure", errors.New("api status 401: invalid api key"), false},
		{"unsupported format", fmt.Errorf("%w: .txt", ErrUnsupportedFormat), false},
		{"corrupt file", errors.New("open workbook: zip: not a valid zip file"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transient(tt.err))
		})
	}
}
