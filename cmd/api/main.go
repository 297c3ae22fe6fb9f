package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"grover-graphql/internal/cache"
	"grover-graphql/internal/config"
	"grover-graphql/internal/graph"
	"grover-graphql/internal/handler"
	"grover-graphql/internal/metrics"
	"grover-graphql/internal/middleware"
	"grover-graphql/internal/repository"
	"grover-graphql/internal/service"
	"grover-graphql/internal/ws"
	"grover-graphql/pkg/database"
	"grover-graphql/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// 2. Setup Logger
	zlog, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	db, err := database.Connect(cfg.Database(), zlog)
	if err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()
	// Schema changes normally go through `admin migrate`
	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			zlog.Fatal("migrate database", zap.Error(err))
		}
	}

	// 4. Setup Cache (optional)
	queryCache := cache.NewNoop()
	if cfg.RedisAddr != "" {
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			zlog.Warn("redis unavailable, caching disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			defer func() { _ = client.Close() }()
			queryCache = cache.NewRedis(client, "grover:", cfg.CacheTTL)
		}
	}

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub(zlog)
	go wsHub.Run(ctx)

	// 6. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	merchantRepo := repository.NewMerchantRepo(db)
	variantRepo := repository.NewVariantRepo(db)
	listRepo := repository.NewListRepo(db)

	categoryService := service.NewCategoryService(categoryRepo, queryCache)
	productService := service.NewProductService(productRepo, categoryRepo, variantRepo, wsHub)
	merchantService := service.NewMerchantService(merchantRepo, queryCache)
	listService := service.NewListService(listRepo, productRepo, wsHub)

	resolver := graph.NewResolver(categoryService, productService, merchantService, listService)
	schema, err := graph.NewSchema(resolver, cfg.GraphQLMaxDepth)
	if err != nil {
		zlog.Fatal("graphql schema", zap.Error(err))
	}
	readOnlySchema, err := graph.NewReadOnlySchema(resolver, cfg.GraphQLMaxDepth)
	if err != nil {
		zlog.Fatal("graphql read-only schema", zap.Error(err))
	}

	appMetrics := metrics.New()
	gqlHandler := handler.NewGraphQLHandler(schema, readOnlySchema, cfg.RequestTimeout, appMetrics)
	healthHandler := handler.NewHealthHandler(db)
	wsHandler := handler.NewWSHandler(wsHub)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:               "Grover GraphQL v1.0",
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(recover.New()) // Panic recovery
	app.Use(middleware.RequestContext(zlog))
	app.Use(middleware.AccessLog())
	app.Use(appMetrics.Middleware())
	app.Use(cors.New())

	// 8. Routes
	app.Post("/graphql", gqlHandler.Post)
	app.Get("/graphql", gqlHandler.Get)
	app.Get("/health", healthHandler.Health)
	app.Get("/metrics", appMetrics.Handler())

	// WebSocket Route
	app.Use("/ws", wsHandler.RequireUpgrade)
	app.Get("/ws", wsHandler.Feed())

	// 9. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Panic("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}
