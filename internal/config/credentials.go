package config

import (
	"errors"
	"os"
	"strings"
)

// Credentials holds the API keys for both external services. They are
// process-wide configuration sourced from the environment, passed explicitly
// so pipelines can be built with injected fakes in tests.
type Credentials struct {
	SarvamAPIKey string
	GeminiAPIKey string
}

// CredentialsFromEnv reads SARVAM_API_KEY and GEMINI_API_KEY.
func CredentialsFromEnv() Credentials {
	return Credentials{
		SarvamAPIKey: os.Getenv("SARVAM_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// Validate performs a shape check on both keys before any work is done.
// It does not verify the keys against the services.
func (c Credentials) Validate() error {
	if c.SarvamAPIKey == "" || c.GeminiAPIKey == "" {
		return errors.New("Missing required API keys. Please check environment variables.")
	}
	if !strings.HasPrefix(c.SarvamAPIKey, "sk_") || len(c.SarvamAPIKey) < 20 {
		return errors.New("Invalid Sarvam API key format. Please check your SARVAM_API_KEY environment variable.")
	}
	if !strings.HasPrefix(c.GeminiAPIKey, "AIza") || len(c.GeminiAPIKey) < 30 {
		return errors.New("Invalid Gemini API key format. Please check your GEMINI_API_KEY environment variable.")
	}
	return nil
}
