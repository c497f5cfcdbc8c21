package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"popview/database"
	"popview/internal/api/handler"
	"popview/internal/api/repository"
	"popview/internal/api/service"
	"popview/internal/cache"
	"popview/internal/config"
	"popview/internal/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// Cache is optional: a dead redis only costs the fast path.
	storeCache := connectCache(cfg, logger)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)
	titleRepo := repository.NewTitleRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	// Services
	userService := service.NewUserService(userRepo, cfg.BcryptCost)
	listService := service.NewListService(listRepo, storeCache)
	titleService := service.NewTitleService(titleRepo, storeCache)
	membershipService := service.NewMembershipService(membershipRepo, listRepo, titleRepo)
	interactionService := service.NewInteractionService(interactionRepo, userRepo, titleRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userService, logger)
	listHandler := handler.NewListHandler(listService, titleService, logger)
	titleHandler := handler.NewTitleHandler(titleService, logger)
	membershipHandler := handler.NewMembershipHandler(membershipService, logger)
	interactionHandler := handler.NewInteractionHandler(interactionService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	users := r.Group("/users")
	userHandler.RegisterRoutes(users)
	listHandler.RegisterUserRoutes(users)
	interactionHandler.RegisterRoutes(users)

	lists := r.Group("/lists")
	listHandler.RegisterRoutes(lists)
	membershipHandler.RegisterRoutes(lists)

	titles := r.Group("/titles")
	titleHandler.RegisterRoutes(titles)
	interactionHandler.RegisterTitleRoutes(titles)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}

func connectCache(cfg *config.Config, logger *slog.Logger) *cache.Cache {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid redis url, continuing without cache", "error", err)
		return nil
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, continuing without cache", "error", err)
		return nil
	}

	logger.Info("Connected to redis successfully")
	return cache.New(rdb, cfg.CacheTTL, logger)
}
