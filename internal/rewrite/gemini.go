package rewrite

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Fixed generation parameters for every rewrite request.
const (
	genTemperature     = 0.7
	genTopK            = 40
	genTopP            = 0.95
	genMaxOutputTokens = 1024
)

type geminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator returns a Generator backed by the Gemini API.
func NewGeminiGenerator(apiKey, model string) Generator {
	return &geminiGenerator{
		apiKey: apiKey,
		model:  model,
	}
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](genTemperature),
		TopK:            genai.Ptr[float32](genTopK),
		TopP:            genai.Ptr[float32](genTopP),
		MaxOutputTokens: genMaxOutputTokens,
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return firstCandidateText(result), nil
}

// firstCandidateText extracts the first content part of the first candidate.
// Anything missing along that path yields "", which the Rewriter masks with
// its local fallback.
func firstCandidateText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	parts := result.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0] == nil {
		return ""
	}
	return parts[0].Text
}
