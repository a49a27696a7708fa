package port

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamErrorQuota(t *testing.T) {
	cases := []struct {
		name  string
		err   *UpstreamError
		quota bool
	}{
		{"openai code", &UpstreamError{Code: "insufficient_quota", StatusCode: 400}, true},
		{"status 429", &UpstreamError{StatusCode: 429}, true},
		{"gemini status", &UpstreamError{Code: "RESOURCE_EXHAUSTED"}, true},
		{"server error", &UpstreamError{StatusCode: 500, Code: "server_error"}, false},
		{"network", &UpstreamError{Err: errors.New("connection reset")}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("generate: %w", tc.err)
			assert.Equal(t, tc.quota, errors.Is(wrapped, ErrQuotaExceeded))
		})
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	assert.Equal(t, "bad key", (&UpstreamError{Message: "bad key"}).Error())
	assert.Equal(t, "eof", (&UpstreamError{Err: errors.New("eof")}).Error())
	assert.Equal(t, "openai request failed", (&UpstreamError{Provider: "openai"}).Error())
}
