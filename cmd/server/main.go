// @title         pcbuild API
// @version       1.0
// @description   AI-assisted PC build and peripheral recommendations with saved, shared and compared builds.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"errors"
	"log"
	"time"

	swagger "github.com/gofiber/swagger"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/artem13815/pcbuild/docs"

	// internal imports
	"github.com/artem13815/pcbuild/api/http"
	"github.com/artem13815/pcbuild/api/http/handlers"
	"github.com/artem13815/pcbuild/pkg/build"
	"github.com/artem13815/pcbuild/pkg/cache/memory"
	rediscache "github.com/artem13815/pcbuild/pkg/cache/redis"
	"github.com/artem13815/pcbuild/pkg/config"
	"github.com/artem13815/pcbuild/pkg/health"
	"github.com/artem13815/pcbuild/pkg/health/checkers"
	"github.com/artem13815/pcbuild/pkg/llm"
	"github.com/artem13815/pcbuild/pkg/llm/provider"
	"github.com/artem13815/pcbuild/pkg/logger"
	"github.com/artem13815/pcbuild/pkg/recommend"
	pgrepo "github.com/artem13815/pcbuild/pkg/repository/postgres"
	"github.com/artem13815/pcbuild/pkg/storage/postgres"
)

func main() {
	// Load configuration from defaults, CONFIG_FILE and env/.env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx := context.Background()

	// LLM provider. A missing key is not fatal: the recommendation routes
	// answer with a configuration error instead.
	model, err := provider.New(cfg.LLM)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		lg.Warn("llm api key not set; recommendation routes will fail until it is configured")
	case err != nil:
		lg.Fatal("llm provider", zap.Error(err))
	default:
		lg.Info("llm provider ready", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))
	}
	recommendUC := recommend.NewService(model, lg.Named("recommend"))

	var probes []health.Checker

	// Saved builds need PostgreSQL; without it only comparison is served.
	var buildUC build.UseCase
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			lg.Fatal("postgres connect", zap.Error(err))
		}
		defer pool.Close()

		migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = postgres.Migrate(migrateCtx, pool)
		cancel()
		if err != nil {
			lg.Fatal("postgres migrate", zap.Error(err))
		}
		probes = append(probes, checkers.NewPostgresChecker(pool))

		var cache build.SharedCache
		if cfg.Cache.RedisURL != "" {
			client, err := rediscache.Connect(ctx, cfg.Cache.RedisURL)
			if err != nil {
				lg.Fatal("redis connect", zap.Error(err))
			}
			defer func(c *goredis.Client) { _ = c.Close() }(client)
			cache = rediscache.NewSharedCache(client, cfg.Cache.TTL(), lg.Named("cache"))
			probes = append(probes, checkers.NewRedisChecker(client))
		} else {
			lru, err := memory.NewSharedCache(cfg.Cache.Size)
			if err != nil {
				lg.Fatal("memory cache", zap.Error(err))
			}
			cache = lru
		}

		buildUC = build.NewService(pgrepo.NewBuildRepository(pool), cache, lg.Named("builds"))
	} else {
		lg.Warn("DATABASE_URL not set; saved and shared builds are disabled")
	}

	app := http.NewApp(lg,
		handlers.NewHealthHandler(health.NewService(probes...)),
		handlers.NewRecommendHandler(recommendUC),
		handlers.NewBuildsHandler(buildUC),
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	lg.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
