package rewrite

import (
	"github.com/blablab-app/blablab-server/internal/logger"
)

type implRewriter struct {
	generator Generator
	logger    logger.Logger
}

// New creates a Rewriter backed by the given Generator.
func New(gen Generator, log logger.Logger) Rewriter {
	return &implRewriter{
		generator: gen,
		logger:    log,
	}
}
