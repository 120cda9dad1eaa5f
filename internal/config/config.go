package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Sarvam  SarvamConfig  `yaml:"sarvam"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type SarvamConfig struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type LimitsConfig struct {
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	SegmentBytes   int   `yaml:"segment_bytes"`
	PacingMs       int   `yaml:"pacing_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	Archived      string `yaml:"archived"`
	Voice         string `yaml:"voice"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Sarvam.URL == "" {
		c.Sarvam.URL = "https://api.sarvam.ai/speech-to-text"
	}
	if c.Sarvam.Model == "" {
		c.Sarvam.Model = "saarika:v2"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}
	if c.Limits.MaxUploadBytes == 0 {
		c.Limits.MaxUploadBytes = 100 << 20
	}
	if c.Limits.SegmentBytes == 0 {
		c.Limits.SegmentBytes = 8 << 20
	}
	if c.Limits.PacingMs == 0 {
		c.Limits.PacingMs = 500
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Watch.Enabled {
		if c.Watch.Input == "" {
			return fmt.Errorf("watch.input is required when watch mode is enabled")
		}
		if c.Watch.Output == "" {
			return fmt.Errorf("watch.output is required when watch mode is enabled")
		}
		if c.Watch.Archived == "" {
			c.Watch.Archived = "data/archived"
		}
		if c.Watch.Voice == "" {
			c.Watch.Voice = "genz"
		}
		if c.Watch.MaxConcurrent == 0 {
			c.Watch.MaxConcurrent = 2
		}
	}

	return nil
}
