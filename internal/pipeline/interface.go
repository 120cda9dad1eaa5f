package pipeline

import (
	"context"

	"github.com/blablab-app/blablab-server/internal/media"
)

// Pipeline runs one uploaded recording end to end: validation, transcription
// (segmented when the upstream rejects the whole file as too long), language
// detection, and the stylistic rewrite. It returns exactly one Result or one
// *Error, never both.
type Pipeline interface {
	Process(ctx context.Context, payload media.Payload, voice string) (*Result, error)
}

// Result is the single success artifact returned to callers.
type Result struct {
	DetectedLanguage string `json:"detectedLanguage"`
	Transcription    string `json:"transcription"`
	Rewrite          string `json:"slangExplanation"`
	Label            string `json:"explanationLabel"`
	Voice            string `json:"slangType"`
}
