package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blablab-app/blablab-server/internal/media"
)

// mimeByExt maps drop-folder extensions to the MIME types the validator
// accepts. Dropped files carry no declared content type.
var mimeByExt = map[string]string{
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".m4a":  "audio/m4a",
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
}

// Handle runs filePath through the pipeline, writes a JSON result and a docx
// report next to each other in the output directory, and archives the
// original. Report and archive failures are warnings; the pipeline result is
// already safe on disk as JSON at that point.
func (i *implIngestor) Handle(ctx context.Context, filePath string) error {
	start := time.Now()
	filename := filepath.Base(filePath)

	i.logger.Info(ctx, "Ingesting %s (voice=%s)", filePath, i.voice)

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read audio file: %w", err)
	}

	payload := media.Payload{
		Data:     data,
		MIMEType: mimeByExt[strings.ToLower(filepath.Ext(filename))],
		Filename: filename,
	}

	result, err := i.pipeline.Process(ctx, payload, i.voice)
	if err != nil {
		return fmt.Errorf("process %s: %w", filename, err)
	}

	if err := os.MkdirAll(i.outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	jsonPath := filepath.Join(i.outputDir, stem+".json")
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(jsonPath, encoded, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	docxPath := filepath.Join(i.outputDir, stem+".docx")
	if err := writeReport(stem, result, docxPath); err != nil {
		i.logger.Warn(ctx, "Failed to write docx report %s: %v", docxPath, err)
	}

	if err := i.archive(ctx, filePath); err != nil {
		i.logger.Warn(ctx, "Failed to archive %s: %v", filePath, err)
	}

	i.logger.Info(ctx, "Ingested %s in %s -> %s", filename,
		time.Since(start).Round(time.Millisecond), jsonPath)
	return nil
}

// archive moves a processed original out of the watched directory so it is
// not picked up again.
func (i *implIngestor) archive(ctx context.Context, filePath string) error {
	if err := os.MkdirAll(i.archivedDir, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(i.archivedDir, filepath.Base(filePath))
	if err := os.Rename(filePath, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	i.logger.Debug(ctx, "Archived %s -> %s", filePath, dest)
	return nil
}
