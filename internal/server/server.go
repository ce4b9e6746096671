package server

import (
	"context"
	"time"

	"backend-echomate/internal/config"
	"backend-echomate/internal/feed"
	"backend-echomate/internal/ledger"
	"backend-echomate/internal/session"
	"backend-echomate/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	KV       store.Store
	Sessions *session.Service
	Ledger   *ledger.Service
	Feed     *feed.Service
}

func NewServer(cfg config.Config, kv store.Store) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	if kv == nil {
		kv = store.NewMemory()
	}

	sessions := session.NewService(kv, time.Duration(cfg.AuthDelayMs)*time.Millisecond)
	sessions.Restore(context.Background())

	posts := ledger.NewService(kv, sessions)
	posts.Restore(context.Background())

	s := &Server{
		App:      app,
		Cfg:      cfg,
		KV:       kv,
		Sessions: sessions,
		Ledger:   posts,
		Feed:     feed.NewService(),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	session.RegisterRoutes(s.App.Group("/auth"), s.Sessions)
	ledger.RegisterRoutes(s.App, s.Ledger)
	feed.RegisterRoutes(s.App, s.Feed)
}
