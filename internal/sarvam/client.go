package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// transcribeResponse covers both response shapes the API produces; only one
// of Transcript/Text is populated depending on the model.
type transcribeResponse struct {
	Transcript   string `json:"transcript"`
	Text         string `json:"text"`
	LanguageCode string `json:"language_code"`
}

// Transcribe submits one payload as multipart form data. Any non-success
// response is returned as a classified *Error; no retries happen here.
func (s *implService) Transcribe(ctx context.Context, data []byte, mimeType, filename string) (*Outcome, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, &Error{Kind: FailureFatal, Detail: fmt.Sprintf("create form part: %v", err)}
	}
	if _, err := part.Write(data); err != nil {
		return nil, &Error{Kind: FailureFatal, Detail: fmt.Sprintf("write form part: %v", err)}
	}
	if err := mw.WriteField("model", s.model); err != nil {
		return nil, &Error{Kind: FailureFatal, Detail: fmt.Sprintf("write model field: %v", err)}
	}
	if err := mw.Close(); err != nil {
		return nil, &Error{Kind: FailureFatal, Detail: fmt.Sprintf("finalize form: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, body)
	if err != nil {
		return nil, &Error{Kind: FailureFatal, Detail: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("api-subscription-key", s.apiKey)

	s.logger.Debug(ctx, "Submitting %d bytes (%s) to %s", len(data), mimeType, s.baseURL)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: FailureFatal, Detail: fmt.Sprintf("call speech-to-text API: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: FailureFatal, Detail: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := s.classifier.Classify(resp.StatusCode, string(raw))
		return nil, &Error{
			Kind:   kind,
			Status: resp.StatusCode,
			Detail: strings.TrimSpace(string(raw)),
		}
	}

	var parsed transcribeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &Error{Kind: FailureTransient, Status: resp.StatusCode, Detail: "malformed response body"}
	}

	transcript := strings.TrimSpace(parsed.Transcript)
	if transcript == "" {
		transcript = strings.TrimSpace(parsed.Text)
	}
	if transcript == "" {
		return nil, &Error{Kind: FailureEmpty, Status: resp.StatusCode, Detail: "response contained no transcript"}
	}

	return &Outcome{Transcript: transcript, LanguageCode: parsed.LanguageCode}, nil
}
