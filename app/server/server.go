package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"moodbot/app/config"
	"moodbot/app/service/conversation"

	"github.com/gofiber/fiber/v2"
	recoverware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/samber/do"
)

const shutdownTimeout = 5 * time.Second

type MessageProcessor interface {
	ProcessMessage(ctx context.Context, senderID, text string) error
}

// Server exposes the inbound webhook. The gateway always gets a success ack
// once a request is well-formed, whatever happens inside the pipeline.
type Server struct {
	cfg       *config.Config
	app       *fiber.App
	processor MessageProcessor
}

func New(di *do.Injector) (*Server, error) {
	return newServer(
		do.MustInvoke[*config.Config](di),
		do.MustInvoke[*conversation.Service](di),
	), nil
}

func newServer(cfg *config.Config, processor MessageProcessor) *Server {
	s := &Server{
		cfg:       cfg,
		processor: processor,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	s.app.Use(recoverware.New())

	s.app.Get("/", s.handleStatus)
	s.app.Post("/twilio/receiveMessage", s.handleInbound)

	return s
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.ShutdownWithTimeout(shutdownTimeout)
	}()

	if err := s.app.Listen(s.cfg.Server.Addr); err != nil {
		return fmt.Errorf("server listen failed: %w", err)
	}

	return nil
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "OK",
		"webhook_url": "BASEURL/twilio/receiveMessage",
		"message":     "The webhook is ready.",
	})
}

func (s *Server) handleInbound(c *fiber.Ctx) error {
	text := c.FormValue("Body")
	sender := c.FormValue("From")

	if text == "" || sender == "" {
		return c.Status(fiber.StatusBadRequest).SendString("missing Body or From")
	}

	s.process(c.UserContext(), sender, text)

	return c.SendString("OK")
}

// process swallows every pipeline failure: the gateway retries on error
// statuses and would double-send the reply, so the ack goes out regardless
// and the sender simply gets no response on failure.
func (s *Server) process(ctx context.Context, senderID, text string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic in message pipeline",
				"sender", senderID,
				"panic", r,
				"telegram", true,
			)
		}
	}()

	if err := s.processor.ProcessMessage(ctx, senderID, text); err != nil {
		slog.Error("Failed to process message",
			"sender", senderID,
			"error", err,
			"telegram", true,
		)
	}
}
