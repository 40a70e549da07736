// @title DevOps Reference API
// @version 1.0
// @description Read-only API behind the DevOps interview reference page.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "devops-reference/cmd/api/docs"
	"devops-reference/internal/adapter"
	"devops-reference/internal/adapter/source"
	"devops-reference/internal/cache"
	"devops-reference/internal/catalog"
	"devops-reference/internal/config"
	"devops-reference/internal/domain"
	"devops-reference/internal/handler"
	"devops-reference/internal/loader"
	"devops-reference/internal/logger"
	"devops-reference/internal/metrics"
	"devops-reference/internal/middleware"
	"devops-reference/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	refCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		appLogger.Fatal("Failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	service.LogOverlaps(refCatalog.Topics)
	appLogger.Info("Catalog loaded",
		zap.Int("topics", len(refCatalog.Topics)),
		zap.Int("scenarios", len(refCatalog.Scenarios)),
	)

	m := metrics.New(prometheus.DefaultRegisterer)

	src, err := source.New(cfg.Source)
	if err != nil {
		appLogger.Fatal("Failed to create question source", zap.Error(err))
	}
	questionLoader := loader.NewLoader(src, cfg.Source, refCatalog.Topics, m)

	// Redis is optional; without it answers are rendered on every request.
	var renderCache domain.Cache
	if cfg.RedisEnabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, rendering answers without cache", zap.String("address", cfg.Redis.Address), zap.Error(err))
		} else {
			defer redisClient.Close()
			renderCache = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis")
		}
	}
	renderer := service.NewAnswerRenderCache(renderCache, cfg.Cache.RenderedAnswerTTL, m)

	referenceService := service.NewReferenceService(refCatalog, questionLoader, renderer)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*cfg.Source.Timeout+5*time.Second)
	status := referenceService.Reload(loadCtx)
	cancelLoad()
	appLogger.Info("Initial question load finished",
		zap.String("snapshot_id", status.SnapshotID),
		zap.String("source", status.Source),
		zap.Int("count", status.QuestionCount),
	)

	referenceHandler := handler.NewReferenceHandler(referenceService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		UnescapePath: true,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		health := fiber.Map{"status": "ok", "questions": referenceService.Status().QuestionCount, "cache": "disabled"}
		if renderCache != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
			defer cancel()
			health["cache"] = "ok"
			if err := renderCache.Ping(ctx); err != nil {
				health["cache"] = "unavailable"
			}
		}
		return c.JSON(health)
	})

	handler.RegisterRoutes(app.Group("/api"), referenceHandler, middleware.NewValidationMiddleware())

	app.Static("/", cfg.Server.StaticDir)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
