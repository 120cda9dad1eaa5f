package sarvam

import (
	"errors"
	"fmt"
)

// FailureKind categorizes an upstream failure into one of the handling paths
// the orchestrator branches on.
type FailureKind int

const (
	// FailureTransient covers any non-success response that is not
	// recognized as one of the specific kinds below.
	FailureTransient FailureKind = iota
	// FailureAuth is a subscription/auth rejection. Terminal; never retried
	// and never segmented.
	FailureAuth
	// FailureTooLong means the service rejected the payload over its
	// duration limit. Triggers segmentation at the orchestrator level.
	FailureTooLong
	// FailureFatal is a transport-level error: the call never completed.
	FailureFatal
	// FailureEmpty is a 2xx response whose transcript extraction produced
	// nothing. The audio held no recognizable speech; that is the caller's
	// input, not a service fault.
	FailureEmpty
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuth:
		return "auth-invalid"
	case FailureTooLong:
		return "payload-too-long"
	case FailureFatal:
		return "fatal"
	case FailureEmpty:
		return "empty-transcript"
	default:
		return "transient"
	}
}

// Error is a classified transcription failure.
type Error struct {
	Kind   FailureKind
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("sarvam: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("sarvam: %s (status %d): %s", e.Kind, e.Status, e.Detail)
}

// KindOf returns the failure kind carried by err. Errors that did not come
// out of this package count as fatal.
func KindOf(err error) FailureKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return FailureFatal
}
