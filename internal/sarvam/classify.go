package sarvam

import (
	"net/http"
	"strings"
)

// Classifier maps a raw upstream error response to a FailureKind. The
// mapping branches on the text of the error body, which the upstream formats
// inconsistently, so the recognized signatures live in one replaceable unit
// instead of scattered conditionals.
type Classifier interface {
	Classify(status int, body string) FailureKind
}

// subscriptionSignature marks a 403 caused by a missing or expired API
// subscription rather than a malformed request.
const subscriptionSignature = "Subscription not found"

// tooLongSignatures are the body fragments the service returns when an
// upload exceeds its duration limit. Ordered most-specific first; the bare
// "duration" entry is the catch-all the others refine.
var tooLongSignatures = []string{
	"duration greater than 30 seconds",
	"duration greater than 2 minutes",
	"duration greater than 120 seconds",
	"duration",
	"too long",
}

type defaultClassifier struct{}

// NewClassifier returns the classifier for the error shapes the Sarvam API
// is known to produce.
func NewClassifier() Classifier {
	return defaultClassifier{}
}

func (defaultClassifier) Classify(status int, body string) FailureKind {
	if status == http.StatusForbidden && strings.Contains(body, subscriptionSignature) {
		return FailureAuth
	}
	if status == http.StatusRequestEntityTooLarge {
		return FailureTooLong
	}
	for _, sig := range tooLongSignatures {
		if strings.Contains(body, sig) {
			return FailureTooLong
		}
	}
	return FailureTransient
}
