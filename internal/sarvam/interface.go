package sarvam

import "context"

// Service submits one audio payload to the speech-to-text API and returns
// the extracted transcript. Failures are classified *Error values.
type Service interface {
	Transcribe(ctx context.Context, data []byte, mimeType, filename string) (*Outcome, error)
}

// Outcome is a successful transcription of one payload.
type Outcome struct {
	Transcript   string
	LanguageCode string
}
