package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/blablab-app/blablab-server/internal/logger"
	"github.com/blablab-app/blablab-server/internal/pipeline"
)

// Server is the thin HTTP adapter over the pipeline: it parses the multipart
// upload, runs one pipeline execution, and renders the result or the
// classified error. All control-flow complexity lives below it.
type Server struct {
	app      *fiber.App
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

// New builds the fiber app and routes.
func New(p pipeline.Pipeline, log logger.Logger, maxUploadBytes int64) *Server {
	app := fiber.New(fiber.Config{
		// Leave headroom above the payload ceiling for the multipart framing.
		BodyLimit:             int(maxUploadBytes) + (1 << 20),
		DisableStartupMessage: true,
	})

	s := &Server{app: app, pipeline: p, logger: log}

	app.Use(cors)
	app.Get("/api/process-audio", s.handleStatus)
	app.Post("/api/process-audio", s.handleProcessAudio)

	return s
}

func cors(c *fiber.Ctx) error {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type")
	if c.Method() == fiber.MethodOptions {
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Next()
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
