package config

import (
	"os"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "watch enabled without input",
			config: Config{
				Watch: WatchConfig{Enabled: true, Output: "data/output"},
			},
			wantErr: true,
		},
		{
			name: "watch enabled without output",
			config: Config{
				Watch: WatchConfig{Enabled: true, Input: "data/input"},
			},
			wantErr: true,
		},
		{
			name: "watch enabled with paths",
			config: Config{
				Watch: WatchConfig{Enabled: true, Input: "data/input", Output: "data/output"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Watch: WatchConfig{Enabled: true, Input: "in", Output: "out"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v, want :8080", cfg.Server.Addr)
	}
	if cfg.Sarvam.Model != "saarika:v2" {
		t.Errorf("Sarvam.Model = %v, want saarika:v2", cfg.Sarvam.Model)
	}
	if cfg.Limits.MaxUploadBytes != 100<<20 {
		t.Errorf("MaxUploadBytes = %v, want %v", cfg.Limits.MaxUploadBytes, 100<<20)
	}
	if cfg.Limits.SegmentBytes != 8<<20 {
		t.Errorf("SegmentBytes = %v, want %v", cfg.Limits.SegmentBytes, 8<<20)
	}
	if cfg.Limits.PacingMs != 500 {
		t.Errorf("PacingMs = %v, want 500", cfg.Limits.PacingMs)
	}
	if cfg.Watch.MaxConcurrent != 2 {
		t.Errorf("Watch.MaxConcurrent = %v, want 2", cfg.Watch.MaxConcurrent)
	}
	if cfg.Watch.Voice != "genz" {
		t.Errorf("Watch.Voice = %v, want genz", cfg.Watch.Voice)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  addr: ":9090"

sarvam:
  url: "https://api.sarvam.ai/speech-to-text"
  model: "saarika:v2"

gemini:
  model: "gemini-1.5-flash"

limits:
  segment_bytes: 1048576
  pacing_ms: 100

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %v, want :9090", cfg.Server.Addr)
	}
	if cfg.Limits.SegmentBytes != 1048576 {
		t.Errorf("SegmentBytes = %v, want 1048576", cfg.Limits.SegmentBytes)
	}
	if cfg.Limits.PacingMs != 100 {
		t.Errorf("PacingMs = %v, want 100", cfg.Limits.PacingMs)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", cfg.Logging.Level)
	}
	// Unset fields still get defaults
	if cfg.Limits.MaxUploadBytes != 100<<20 {
		t.Errorf("MaxUploadBytes = %v, want default", cfg.Limits.MaxUploadBytes)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestCredentialsValidate(t *testing.T) {
	valid := Credentials{
		SarvamAPIKey: "sk_0123456789abcdef01234",
		GeminiAPIKey: "AIzaSyA0123456789abcdef0123456789",
	}

	tests := []struct {
		name    string
		mutate  func(c *Credentials)
		wantErr string
	}{
		{"valid", func(c *Credentials) {}, ""},
		{"missing sarvam key", func(c *Credentials) { c.SarvamAPIKey = "" }, "Missing required API keys"},
		{"missing gemini key", func(c *Credentials) { c.GeminiAPIKey = "" }, "Missing required API keys"},
		{"bad sarvam prefix", func(c *Credentials) { c.SarvamAPIKey = "xx_0123456789abcdef01234" }, "Invalid Sarvam API key"},
		{"short sarvam key", func(c *Credentials) { c.SarvamAPIKey = "sk_short" }, "Invalid Sarvam API key"},
		{"bad gemini prefix", func(c *Credentials) { c.GeminiAPIKey = "key_0123456789abcdef0123456789" }, "Invalid Gemini API key"},
		{"short gemini key", func(c *Credentials) { c.GeminiAPIKey = "AIzaShort" }, "Invalid Gemini API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
