package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "push-backend/docs"
	"push-backend/internal/common/cache"
	"push-backend/internal/common/config"
	"push-backend/internal/common/logger"
	"push-backend/internal/common/middleware"
	authhttp "push-backend/internal/features/auth/delivery/http"
	authservice "push-backend/internal/features/auth/service"
	claimhttp "push-backend/internal/features/claim/delivery/http"
	claimrepo "push-backend/internal/features/claim/repository/docstore"
	claimservice "push-backend/internal/features/claim/service"
	leaderboardhttp "push-backend/internal/features/leaderboard/delivery/http"
	leaderboardservice "push-backend/internal/features/leaderboard/service"
	registryhttp "push-backend/internal/features/registry/delivery/http"
	registryservice "push-backend/internal/features/registry/service"
	snapshothttp "push-backend/internal/features/snapshot/delivery/http"
	snapshotservice "push-backend/internal/features/snapshot/service"
	"push-backend/internal/platform/docstore"
	redisplatform "push-backend/internal/platform/redis"
)

// @title           PUSH Backend API
// @version         1.0
// @description     Ride-to-earn backend: sign-in-with-wallet auth, signed ride proof claims and points.

// @BasePath  /api/v1

// @securityDefinitions.apikey BearerToken
// @in header
// @name Authorization
// @description Session token, format: Bearer <token>

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
// @description Static admin key for operational endpoints

func main() {
	cfg := config.Load()

	logger.Init("push-backend", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisplatform.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	store := docstore.NewRedis(rdb)
	cacheSvc := cache.NewService(rdb)

	authSvc := authservice.NewService(cfg.Auth.JWTSecret, cfg.Auth.ChallengeTTL, cfg.Auth.SessionTTL)
	claimSvc := claimservice.NewService(claimrepo.NewPointsRepository(store))
	leaderboardSvc := leaderboardservice.NewService(claimSvc, cacheSvc)
	registrySvc := registryservice.NewService(store)
	snapshotSvc := snapshotservice.NewService(store)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "X-Admin-Key"}
	router.Use(cors.New(corsConfig))

	sessionAuth := middleware.SessionAuth(authSvc)
	adminKey := middleware.RequireAdminKey(cfg.Admin.Key)

	v1 := router.Group("/api/v1")
	{
		authhttp.NewHandler(authSvc).RegisterRoutes(v1)
		claimhttp.NewHandler(claimSvc).RegisterRoutes(v1, sessionAuth)
		leaderboardhttp.NewHandler(leaderboardSvc).RegisterRoutes(v1)
		registryhttp.NewHandler(registrySvc).RegisterRoutes(v1, sessionAuth)
		snapshothttp.NewHandler(snapshotSvc).RegisterRoutes(v1, adminKey)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "push-backend",
		})
	})
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/ready", func(c *gin.Context) {
		readyCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := rdb.Ping(readyCtx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready", "error": "redis unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	logger.Info().Msg("Server exited")
}
