package domain

import "errors"

const (
	MsgRequiredFields = "productName and description are required"
	MsgGenericFailure = "Something went wrong while generating campaign content."
)

// ErrorKind classifies failures of the generation flow.
type ErrorKind int

const (
	Unknown ErrorKind = iota
	InvalidInput
	QuotaExceeded
	UpstreamMalformed
	UpstreamFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case QuotaExceeded:
		return "quota_exceeded"
	case UpstreamMalformed:
		return "upstream_malformed"
	case UpstreamFailure:
		return "upstream_failure"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by the generation usecase. Message is
// safe to show to the user; Err keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return MsgGenericFailure
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind carried by err, or Unknown when err is not a
// *Error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return Unknown
}
