package pipeline

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/blablab-app/blablab-server/internal/language"
	"github.com/blablab-app/blablab-server/internal/logger"
	"github.com/blablab-app/blablab-server/internal/media"
	"github.com/blablab-app/blablab-server/internal/sarvam"
)

// orchestratorState tracks where a transcription run is: one whole-file
// attempt, then a segmented pass only if the upstream rejected the upload as
// too long.
type orchestratorState int

const (
	stateWholeFile orchestratorState = iota
	stateSegmented
	stateDone
)

// transcription is the orchestrator's terminal success value.
type transcription struct {
	Text     string
	Language string
}

type orchestrator struct {
	stt          sarvam.Service
	segmentBytes int
	pacing       time.Duration
	logger       logger.Logger
}

// run drives the state machine to completion for one payload.
func (o *orchestrator) run(ctx context.Context, payload media.Payload) (*transcription, error) {
	var result transcription

	state := stateWholeFile
	for state != stateDone {
		switch state {
		case stateWholeFile:
			out, err := o.stt.Transcribe(ctx, payload.Data, payload.MIMEType, payload.Filename)
			if err == nil {
				result.Text = out.Transcript
				if out.LanguageCode != "" {
					result.Language = language.FromCode(out.LanguageCode)
				} else {
					result.Language = language.Detect(out.Transcript)
				}
				state = stateDone
				continue
			}

			switch sarvam.KindOf(err) {
			case sarvam.FailureAuth:
				// A dead subscription is a deployment problem, not the
				// caller's; never retried, never segmented.
				return nil, newError(http.StatusForbidden, msgInvalidSub, msgInvalidSubDetails)
			case sarvam.FailureTooLong:
				o.logger.Info(ctx, "Upload rejected as too long, splitting into %d byte segments", o.segmentBytes)
				state = stateSegmented
			case sarvam.FailureEmpty:
				// The service answered fine; the recording just had nothing
				// transcribable in it. That is the caller's problem.
				return nil, newError(http.StatusBadRequest, msgNoTranscription, "")
			default:
				return nil, newError(http.StatusInternalServerError, msgSarvamFailed, err.Error())
			}

		case stateSegmented:
			text, err := o.runSegmented(ctx, payload)
			if err != nil {
				return nil, err
			}
			result.Text = text
			result.Language = language.Detect(text)
			state = stateDone
		}
	}

	return &result, nil
}

// runSegmented submits the payload piecewise, strictly in order and never
// concurrently, pacing between calls to stay under the upstream rate limit.
// A failed segment is skipped, not fatal: losing a slice of audio beats
// losing the whole transcription.
func (o *orchestrator) runSegmented(ctx context.Context, payload media.Payload) (string, error) {
	segments := media.Split(payload, o.segmentBytes)
	o.logger.Info(ctx, "Transcribing %d segments sequentially", len(segments))

	var parts []string
	for i, seg := range segments {
		out, err := o.stt.Transcribe(ctx, seg.Data, seg.MIMEType, seg.Name)
		if err != nil {
			o.logger.Warn(ctx, "Segment %d/%d failed: %v", i+1, len(segments), err)
		} else if text := strings.TrimSpace(out.Transcript); text != "" {
			parts = append(parts, text)
		}

		if i < len(segments)-1 {
			select {
			case <-time.After(o.pacing):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	joined := strings.Join(parts, " ")
	if strings.TrimSpace(joined) == "" {
		return "", newError(http.StatusInternalServerError, msgSegmentedFailed,
			"no transcription received from audio segments")
	}

	o.logger.Info(ctx, "Recovered %d/%d segment transcripts", len(parts), len(segments))
	return joined, nil
}
