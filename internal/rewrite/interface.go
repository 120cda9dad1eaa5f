package rewrite

import "context"

// Rewriter turns a transcript into a stylistic rewrite for a chosen voice.
type Rewriter interface {
	Rewrite(ctx context.Context, transcript string, voice Voice) (*Result, error)
}

// Generator is the text-generation backend. Returning an empty string with a
// nil error means the model produced no usable candidates; the Rewriter
// substitutes a local fallback in that case instead of failing.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result carries the rewritten text and its display label.
type Result struct {
	Text  string
	Label string
	Voice Voice
}
