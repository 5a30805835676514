package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/tubeboard/tubeboard-go/internal/handler"
	"github.com/tubeboard/tubeboard-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Channel *handler.ChannelHandler
	Video   *handler.VideoHandler
	Ranking *handler.RankingHandler
	Stats   *handler.StatsHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (before API group, no rate limit)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	listLimit := middleware.NewListRateLimiter().Handler()
	rankLimit := middleware.NewRankingRateLimiter().Handler()

	// API routes
	api := app.Group("/api")

	// Channel routes
	api.Get("/channels", h.Channel.List, listLimit)
	api.Get("/channels/:id", h.Channel.Get, listLimit)
	api.Get("/channels/:id/stats", h.Channel.Stats, listLimit)

	// Video routes
	api.Get("/videos", h.Video.List, listLimit)
	api.Get("/videos/:id", h.Video.Get, listLimit)

	// Ranking routes
	api.Get("/rankings/super-chat", h.Ranking.SuperChat, rankLimit)
	api.Get("/rankings/growth", h.Ranking.Growth, rankLimit)

	// Platform overview
	api.Get("/stats", h.Stats.Overview, rankLimit)
}
