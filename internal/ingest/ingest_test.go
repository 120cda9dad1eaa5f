package ingest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/blablab-app/blablab-server/internal/config"
	"github.com/blablab-app/blablab-server/internal/logger"
	"github.com/blablab-app/blablab-server/internal/media"
	"github.com/blablab-app/blablab-server/internal/pipeline"
)

type fakePipeline struct {
	result  *pipeline.Result
	err     error
	payload media.Payload
	voice   string
}

func (f *fakePipeline) Process(ctx context.Context, payload media.Payload, voice string) (*pipeline.Result, error) {
	f.payload = payload
	f.voice = voice
	return f.result, f.err
}

func newTestIngestor(t *testing.T, fp *fakePipeline) (Ingestor, *config.Config) {
	t.Helper()
	cfg := &config.Config{Watch: config.WatchConfig{
		Enabled:  true,
		Input:    t.TempDir(),
		Output:   filepath.Join(t.TempDir(), "out"),
		Archived: filepath.Join(t.TempDir(), "archived"),
		Voice:    "funny",
	}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return New(fp, cfg, logger.New("error")), cfg
}

func TestHandle(t *testing.T) {
	fp := &fakePipeline{result: &pipeline.Result{
		DetectedLanguage: "English",
		Transcription:    "standup notes",
		Rewrite:          "standup but unhinged",
		Label:            "Funny Version",
		Voice:            "funny",
	}}
	ing, cfg := newTestIngestor(t, fp)

	audioPath := filepath.Join(cfg.Watch.Input, "standup.mp3")
	if err := os.WriteFile(audioPath, []byte("fake-mp3"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ing.Handle(context.Background(), audioPath); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if fp.payload.MIMEType != "audio/mp3" {
		t.Errorf("pipeline got MIMEType %q, want audio/mp3", fp.payload.MIMEType)
	}
	if fp.voice != "funny" {
		t.Errorf("pipeline got voice %q, want configured funny", fp.voice)
	}

	raw, err := os.ReadFile(filepath.Join(cfg.Watch.Output, "standup.json"))
	if err != nil {
		t.Fatalf("result JSON not written: %v", err)
	}
	var got pipeline.Result
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.Transcription != "standup notes" {
		t.Errorf("Transcription = %q", got.Transcription)
	}

	if _, err := os.Stat(filepath.Join(cfg.Watch.Output, "standup.docx")); err != nil {
		t.Errorf("docx report not written: %v", err)
	}

	if _, err := os.Stat(audioPath); !os.IsNotExist(err) {
		t.Error("original file should be moved out of the watched directory")
	}
	if _, err := os.Stat(filepath.Join(cfg.Watch.Archived, "standup.mp3")); err != nil {
		t.Errorf("original not archived: %v", err)
	}
}

func TestHandlePipelineError(t *testing.T) {
	fp := &fakePipeline{err: &pipeline.Error{Status: 400, Message: "No transcription received from audio"}}
	ing, cfg := newTestIngestor(t, fp)

	audioPath := filepath.Join(cfg.Watch.Input, "silence.wav")
	if err := os.WriteFile(audioPath, []byte("fake-wav"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ing.Handle(context.Background(), audioPath); err == nil {
		t.Fatal("Handle() expected error")
	}

	// Failed files stay in place for inspection and retry.
	if _, err := os.Stat(audioPath); err != nil {
		t.Errorf("original should remain on failure: %v", err)
	}
}

func TestHandleMissingFile(t *testing.T) {
	ing, cfg := newTestIngestor(t, &fakePipeline{})

	err := ing.Handle(context.Background(), filepath.Join(cfg.Watch.Input, "gone.mp3"))
	if err == nil {
		t.Fatal("Handle() expected error for missing file")
	}
}
