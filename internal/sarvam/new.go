package sarvam

import (
	"net/http"
	"time"

	"github.com/blablab-app/blablab-server/internal/logger"
)

type implService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	classifier Classifier
	logger     logger.Logger
}

// New creates a Service talking to the Sarvam speech-to-text API.
func New(baseURL, apiKey, model string, log logger.Logger) Service {
	return &implService{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		classifier: NewClassifier(),
		logger:     log,
	}
}
