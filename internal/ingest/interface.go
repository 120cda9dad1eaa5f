package ingest

import "context"

// Ingestor runs one dropped audio file through the pipeline and writes the
// result files.
type Ingestor interface {
	Handle(ctx context.Context, filePath string) error
}
