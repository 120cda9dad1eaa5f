package rewrite

import (
	"context"
	"fmt"
	"strings"
)

const (
	fallbackPrefix   = "Here's what was said: "
	fallbackMaxRunes = 200
)

// Rewrite renders the prompt for the chosen voice, submits it, and returns
// the generated text. An empty generation is masked by a local echo of the
// transcript; a failed generation is fatal to the caller.
func (r *implRewriter) Rewrite(ctx context.Context, transcript string, voice Voice) (*Result, error) {
	if _, ok := promptTable[voice]; !ok {
		voice = VoiceGenZ
	}

	text, err := r.generator.Generate(ctx, voice.prompt(transcript))
	if err != nil {
		return nil, fmt.Errorf("generate rewrite: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		r.logger.Warn(ctx, "Generator returned no text for voice %q, echoing transcript", voice)
		text = fallbackEcho(transcript)
	}

	return &Result{
		Text:  text,
		Label: voice.Label(),
		Voice: voice,
	}, nil
}

// fallbackEcho produces the stand-in rewrite used when the model yields
// nothing: a fixed prefix plus the first 200 characters of the transcript.
// Truncation counts runes so multi-byte scripts are never split mid-point.
func fallbackEcho(transcript string) string {
	runes := []rune(transcript)
	if len(runes) <= fallbackMaxRunes {
		return fallbackPrefix + transcript
	}
	return fallbackPrefix + string(runes[:fallbackMaxRunes]) + "..."
}
