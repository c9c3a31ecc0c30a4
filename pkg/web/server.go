// Package web provides an optional remote preview for the capture
// session: the latest annotated frame over HTTP plus a remote capture
// trigger. Intended for a supervising clinician on the same network.
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/dermaview/clinical-capture/internal/log"
)

// Status is the session state exposed to clients.
type Status struct {
	SessionID   string `json:"session_id"`
	State       string `json:"state"` // live, frozen
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	LastCapture string `json:"last_capture,omitempty"`
}

// Server is the preview server. The capture loop pushes frames and
// status into it; clients poll.
type Server struct {
	app  *fiber.App
	addr string

	mu     sync.RWMutex
	status Status
	frame  []byte

	// OnCapture is invoked when a client requests a capture. It must
	// only arm the session trigger, never write files itself.
	OnCapture func()
}

// NewServer creates a preview server listening on addr when started.
func NewServer(addr string) *Server {
	s := &Server{addr: addr}

	app := fiber.New(fiber.Config{
		AppName:               "Clinical Capture Preview",
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/frame", s.handleFrame)
	api.Post("/capture", s.handleCapture)

	s.app = app
	return s
}

// Start starts the server and blocks.
func (s *Server) Start() error {
	log.Info("preview server listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("preview server stopped", "err", err)
		}
	}()
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	return s.app.Shutdown()
}

// UpdateFrame stores the latest annotated frame as JPEG bytes.
func (s *Server) UpdateFrame(jpeg []byte) {
	s.mu.Lock()
	s.frame = jpeg
	s.mu.Unlock()
}

// UpdateStatus replaces the published session status.
func (s *Server) UpdateStatus(update func(*Status)) {
	s.mu.Lock()
	update(&s.status)
	s.mu.Unlock()
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.status)
}

func (s *Server) handleFrame(c *fiber.Ctx) error {
	s.mu.RLock()
	frame := s.frame
	s.mu.RUnlock()

	if frame == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no frame available yet",
		})
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(frame)
}

func (s *Server) handleCapture(c *fiber.Ctx) error {
	if s.OnCapture == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "capture trigger not configured",
		})
	}

	s.OnCapture()
	return c.JSON(fiber.Map{"triggered": true})
}
