package port

import (
	"context"
	"errors"
)

// ErrQuotaExceeded signals that the configured credential cannot serve more
// requests. Generators surface it through UpstreamError.
var ErrQuotaExceeded = errors.New("quota exceeded")

// TextGenerator is the outbound port to a large language model. It sends a
// single prompt and returns the raw text reply. Implementations must be safe
// for concurrent use and must not retry.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// UpstreamError describes a failure reported by a model provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Provider + " request failed"
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Quota reports whether the provider rejected the call for lack of quota.
func (e *UpstreamError) Quota() bool {
	switch e.Code {
	case "insufficient_quota", "RESOURCE_EXHAUSTED":
		return true
	}
	return e.StatusCode == 429
}

// Is makes errors.Is(err, ErrQuotaExceeded) hold for quota failures.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrQuotaExceeded && e.Quota()
}
