package relay

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestUpstreamErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *UpstreamError
		want string
	}{
		{
			name: "http with status",
			err:  NewHTTPError("groq", 503, "unexpected status", nil),
			want: "groq: UPSTREAM_HTTP (status 503): unexpected status",
		},
		{
			name: "malformed with cause",
			err:  NewMalformedError("murf", "encodedAudio missing", errors.New("boom")),
			want: "murf: UPSTREAM_MALFORMED: encodedAudio missing: boom",
		},
		{
			name: "timeout",
			err:  NewTimeoutError("murf", context.DeadlineExceeded),
			want: "murf: UPSTREAM_TIMEOUT: request timed out: context deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), true},
		{"url error with net timeout", &url.Error{Op: "Post", URL: "http://x", Err: timeoutErr{}}, true},
		{"canceled", context.Canceled, false},
		{"plain error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTimeout(tt.err))
		})
	}
}

func TestNewTransportError(t *testing.T) {
	assert.Equal(t, KindUpstreamTimeout, NewTransportError("groq", context.DeadlineExceeded).Kind)

	refused := NewTransportError("groq", errors.New("connection refused"))
	assert.Equal(t, KindUpstreamHTTP, refused.Kind)
	assert.Zero(t, refused.StatusCode)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("speech synthesis failed: %w", NewMalformedError("murf", "no audio", nil))

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindUpstreamMalformed, kind)

	_, ok = KindOf(errors.New("other"))
	assert.False(t, ok)
}
