package server

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/blablab-app/blablab-server/internal/media"
	"github.com/blablab-app/blablab-server/internal/pipeline"
)

type processResponse struct {
	Success          bool   `json:"success"`
	DetectedLanguage string `json:"detectedLanguage"`
	Transcription    string `json:"transcription"`
	SlangExplanation string `json:"slangExplanation"`
	ExplanationLabel string `json:"explanationLabel"`
	SlangType        string `json:"slangType"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleProcessAudio(c *fiber.Ctx) error {
	ctx := c.UserContext()

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "No audio file provided"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "No audio file provided", Details: err.Error()})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:   "Failed to process audio. Please try again.",
			Details: err.Error(),
		})
	}

	payload := media.Payload{
		Data:     data,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Filename: fileHeader.Filename,
	}
	voice := c.FormValue("slangType", "genz")

	s.logger.Info(ctx, "Processing upload: %s (%d bytes, %s, voice=%s)",
		payload.Filename, payload.Size(), payload.MIMEType, voice)

	result, err := s.pipeline.Process(ctx, payload, voice)
	if err != nil {
		pe := pipeline.AsError(err)
		s.logger.Error(ctx, "Pipeline failed for %s: %v", payload.Filename, pe)
		return c.Status(pe.Status).JSON(errorResponse{Error: pe.Message, Details: pe.Details})
	}

	return c.JSON(processResponse{
		Success:          true,
		DetectedLanguage: result.DetectedLanguage,
		Transcription:    result.Transcription,
		SlangExplanation: result.Rewrite,
		ExplanationLabel: result.Label,
		SlangType:        result.Voice,
	})
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Blablab Audio Processing API",
		"status":  "Ready",
		"endpoints": fiber.Map{
			"POST": "/api/process-audio - Upload audio file for processing",
		},
	})
}
