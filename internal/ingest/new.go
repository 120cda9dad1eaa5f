package ingest

import (
	"github.com/blablab-app/blablab-server/internal/config"
	"github.com/blablab-app/blablab-server/internal/logger"
	"github.com/blablab-app/blablab-server/internal/pipeline"
)

type implIngestor struct {
	pipeline    pipeline.Pipeline
	outputDir   string
	archivedDir string
	voice       string
	logger      logger.Logger
}

// New creates an Ingestor writing results to cfg.Watch.Output and archiving
// processed originals to cfg.Watch.Archived.
func New(p pipeline.Pipeline, cfg *config.Config, log logger.Logger) Ingestor {
	return &implIngestor{
		pipeline:    p,
		outputDir:   cfg.Watch.Output,
		archivedDir: cfg.Watch.Archived,
		voice:       cfg.Watch.Voice,
		logger:      log,
	}
}
