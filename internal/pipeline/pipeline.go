package pipeline

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/blablab-app/blablab-server/internal/media"
	"github.com/blablab-app/blablab-server/internal/rewrite"
)

// Process runs the full pipeline for one payload. Data flows strictly
// forward: validate, transcribe, detect language, rewrite. The first fatal
// step short-circuits with a classified *Error.
func (p *implPipeline) Process(ctx context.Context, payload media.Payload, voice string) (*Result, error) {
	start := time.Now()

	if err := media.Validate(payload, p.maxUploadBytes); err != nil {
		switch {
		case errors.Is(err, media.ErrUnsupportedFormat):
			return nil, newError(http.StatusBadRequest, msgUnsupportedFormat, "")
		case errors.Is(err, media.ErrPayloadTooLarge):
			return nil, newError(http.StatusBadRequest, msgFileTooLarge, "")
		default:
			return nil, AsError(err)
		}
	}

	orch := &orchestrator{
		stt:          p.stt,
		segmentBytes: p.segmentBytes,
		pacing:       p.pacing,
		logger:       p.logger,
	}

	tr, err := orch.run(ctx, payload)
	if err != nil {
		return nil, AsError(err)
	}

	if strings.TrimSpace(tr.Text) == "" {
		return nil, newError(http.StatusBadRequest, msgNoTranscription, "")
	}

	v := rewrite.ParseVoice(voice)
	rw, err := p.rewriter.Rewrite(ctx, tr.Text, v)
	if err != nil {
		return nil, newError(http.StatusInternalServerError, msgGenericFailure, err.Error())
	}

	p.logger.Info(ctx, "Pipeline completed in %s: language=%s voice=%s transcript=%d chars",
		time.Since(start).Round(time.Millisecond), tr.Language, rw.Voice, len(tr.Text))

	return &Result{
		DetectedLanguage: tr.Language,
		Transcription:    tr.Text,
		Rewrite:          rw.Text,
		Label:            rw.Label,
		Voice:            string(rw.Voice),
	}, nil
}
