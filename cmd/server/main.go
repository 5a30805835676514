package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/tubeboard/tubeboard-go/internal/config"
	"github.com/tubeboard/tubeboard-go/internal/db"
	"github.com/tubeboard/tubeboard-go/internal/handler"
	"github.com/tubeboard/tubeboard-go/internal/middleware"
	"github.com/tubeboard/tubeboard-go/internal/repository"
	"github.com/tubeboard/tubeboard-go/internal/router"
	"github.com/tubeboard/tubeboard-go/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "tubeboard-api")
	log := middleware.Logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()
	cache.OnHit = handler.Metrics.CacheHits.Inc
	cache.OnMiss = handler.Metrics.CacheMisses.Inc

	// Repositories
	channelRepo := repository.NewChannelRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	statsRepo := repository.NewStatsRepo(pool)

	// Services
	channelSvc := service.NewChannelService(channelRepo, cache)
	videoSvc := service.NewVideoService(videoRepo)
	rankingSvc := service.NewRankingService(channelRepo, statsRepo, cache)

	if cfg.SeedOnStart {
		seeder := service.NewSeedService(channelRepo, videoRepo, statsRepo)
		if err := seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	if cfg.SnapshotInterval > 0 {
		worker := service.NewSnapshotWorker(channelRepo, statsRepo, cfg.SnapshotInterval)
		worker.OnWrite = handler.Metrics.SnapshotWrites.Inc
		go worker.Start(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:      "TubeBoard API",
		ServerHeader: "TubeBoard",
	})

	h := &router.Handlers{
		Channel: handler.NewChannelHandler(channelSvc),
		Video:   handler.NewVideoHandler(videoSvc),
		Ranking: handler.NewRankingHandler(rankingSvc),
		Stats:   handler.NewStatsHandler(statsRepo),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		cancel()
		_ = app.Shutdown()
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("tubeboard backend starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
