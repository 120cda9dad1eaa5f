package pipeline

import (
	"errors"
	"net/http"
)

// Error is the single failure artifact surfaced to callers. Status is the
// HTTP-style class: 400 for caller-input problems, 403 for upstream
// subscription problems, 500 for configuration or upstream-service problems.
// Message is user-facing; Details carries the diagnostic string.
type Error struct {
	Status  int
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

func newError(status int, message, details string) *Error {
	return &Error{Status: status, Message: message, Details: details}
}

// AsError extracts the *Error from err, wrapping anything unexpected as a
// generic server-side failure.
func AsError(err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "Failed to process audio. Please try again.",
		Details: err.Error(),
	}
}

// User-facing messages, kept identical to what the upload UI expects.
const (
	msgUnsupportedFormat = "Unsupported audio format. Please use MP3, WAV, M4A, WebM, or OGG."
	msgFileTooLarge      = "File too large. Please use files smaller than 100MB."
	msgNoTranscription   = "No transcription received from audio"
	msgSegmentedFailed   = "Failed to process long audio file. Please try with a shorter file or check the audio format."
	msgSarvamFailed      = "Failed to process audio with Sarvam API. Please check your API key and subscription status."
	msgInvalidSub        = "Invalid Sarvam API subscription. Please check your API key and ensure your subscription is active."
	msgInvalidSubDetails = "The provided API key does not have an active subscription. Please verify your Sarvam API key and subscription status."
	msgGenericFailure    = "Failed to process audio. Please try again."
)
