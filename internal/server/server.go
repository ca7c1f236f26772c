// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"context"
	"log"
	"sync"
	"time"

	"haven/internal/config"
	"haven/internal/middleware"
	"haven/internal/models"
	"haven/internal/notifications"
	"haven/internal/seed"
	"haven/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          *store.Store
	hub            *notifications.Hub
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
}

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// metricsMiddleware returns the process-wide HTTP metrics middleware. The
// collectors register in the default Prometheus registry, so the instance is
// shared across Server values.
func metricsMiddleware() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() { prom = fiberprometheus.New("haven") })
	return prom
}

// NewServer creates a server instance with a freshly seeded store.
func NewServer(cfg *config.Config) *Server {
	st := store.New()
	seed.Apply(st)
	if cfg.SeedDemo {
		seed.ApplyDemo(st)
	}

	return NewServerWithDeps(cfg, st, notifications.NewHub())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, st *store.Store, hub *notifications.Hub) *Server {
	return &Server{
		config:         cfg,
		store:          st,
		hub:            hub,
		promMiddleware: metricsMiddleware(),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into UserContext
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", s.Login)
	auth.Post("/logout", s.Logout)
	auth.Get("/status", s.AuthStatus)

	// Quotes: public wall + submissions, admin moderation
	api.Get("/quotes", s.GetQuotes)
	api.Post("/quotes", s.CreateQuote)
	api.Get("/quotes/pending", s.AdminRequired(), s.GetPendingQuotes)
	api.Post("/quotes/:id/approve", s.AdminRequired(), s.ApproveQuote)

	// FAQ
	api.Get("/faq", s.GetFaqQuestions)
	api.Post("/faq", s.SubmitFaqQuestion)

	// Chat history over HTTP (the live feed is on /ws)
	api.Get("/chat/messages", s.GetChatMessages)

	// Blog
	api.Get("/blog", s.GetBlogPosts)
	api.Post("/blog", s.AdminRequired(), s.CreateBlogPost)

	// Videos
	api.Get("/videos", s.GetVideos)
	api.Post("/videos", s.AdminRequired(), s.CreateVideo)

	// Chat relay
	app.Get("/ws", s.WebSocketChatHandler())
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The store is in-process,
// so readiness only reports the connection count alongside the status.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":      "healthy",
		"connections": s.hub.Count(),
		"time":        time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Haven API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if err := s.hub.Shutdown(ctx); err != nil {
		log.Printf("error shutting down chat hub: %v", err)
	}

	log.Println("Server shutdown complete")
	return nil
}
