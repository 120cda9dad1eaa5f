package pipeline

import (
	"net/http"
	"time"

	"github.com/blablab-app/blablab-server/internal/config"
	"github.com/blablab-app/blablab-server/internal/logger"
	"github.com/blablab-app/blablab-server/internal/rewrite"
	"github.com/blablab-app/blablab-server/internal/sarvam"
)

type implPipeline struct {
	stt            sarvam.Service
	rewriter       rewrite.Rewriter
	maxUploadBytes int64
	segmentBytes   int
	pacing         time.Duration
	logger         logger.Logger
}

// Options bound the pipeline's validation and segmentation behavior.
// Zero pacing is allowed (tests); zero sizes fall back to defaults.
type Options struct {
	MaxUploadBytes int64
	SegmentBytes   int
	Pacing         time.Duration
}

// New creates a Pipeline from pre-built services so tests can inject fakes.
func New(stt sarvam.Service, rw rewrite.Rewriter, opts Options, log logger.Logger) Pipeline {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 100 << 20
	}
	if opts.SegmentBytes <= 0 {
		opts.SegmentBytes = 8 << 20
	}

	return &implPipeline{
		stt:            stt,
		rewriter:       rw,
		maxUploadBytes: opts.MaxUploadBytes,
		segmentBytes:   opts.SegmentBytes,
		pacing:         opts.Pacing,
		logger:         log,
	}
}

// NewFromConfig is the production constructor: it shape-checks the
// credentials before any work and wires the real Sarvam and Gemini clients.
func NewFromConfig(cfg *config.Config, creds config.Credentials, log logger.Logger) (Pipeline, error) {
	if err := creds.Validate(); err != nil {
		return nil, newError(http.StatusInternalServerError, err.Error(), "")
	}

	stt := sarvam.New(cfg.Sarvam.URL, creds.SarvamAPIKey, cfg.Sarvam.Model, log)
	gen := rewrite.NewGeminiGenerator(creds.GeminiAPIKey, cfg.Gemini.Model)

	return New(stt, rewrite.New(gen, log), Options{
		MaxUploadBytes: cfg.Limits.MaxUploadBytes,
		SegmentBytes:   cfg.Limits.SegmentBytes,
		Pacing:         time.Duration(cfg.Limits.PacingMs) * time.Millisecond,
	}, log), nil
}
