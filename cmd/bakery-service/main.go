package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/harshit1711/Bakery-Management/internal/auth"
	"github.com/harshit1711/Bakery-Management/internal/database"
	"github.com/harshit1711/Bakery-Management/internal/handlers"
	"github.com/harshit1711/Bakery-Management/internal/logs"
	"github.com/harshit1711/Bakery-Management/internal/middlewares"
	"github.com/harshit1711/Bakery-Management/internal/repository"
	"github.com/harshit1711/Bakery-Management/internal/router"
	"github.com/harshit1711/Bakery-Management/internal/web"

	"github.com/go-redis/redis_rate/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func main() {
	logger := logs.NewSlogLogger()
	err := godotenv.Load()
	if err == nil {
		logger.Info("loaded environment variables from .env file")
	} else {
		logger.Info("no .env file found, using environment variables")
	}

	logger.Info("starting bakery-service")

	pgDb, err := database.InitializePostgresDB()
	if err != nil {
		logger.Error("error connecting to database", "error", err)
		os.Exit(1)
	}
	defer pgDb.Close()
	logger.Info("database connected successfully")

	redisClient, err := database.InitializeRedisClient()
	if err != nil {
		logger.Error("error connecting to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		logger.Info("redis connected successfully")
	} else {
		logger.Info("redis not configured, availability cache disabled")
	}

	jwtManager := initializeJWTManager(logger)
	rateLimiter := initializeRateLimiter(logger, redisClient)

	store := repository.NewPostgreSQLBakeryRepository(pgDb)
	handler := handlers.NewHandler(store, redisClient, jwtManager, logger)
	mux := router.New(pgDb, handler, jwtManager, rateLimiter, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv, err := web.InitializeServer(port, mux)
	if err != nil {
		logger.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	logger.Info("server initialized successfully", "port", port)
	startServerAndWaitForShutdown(srv, logger)
}

func startServerAndWaitForShutdown(srv *http.Server, logger logs.Logger) {
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("shutdown complete")
	}
}

// initializeRateLimiter enables redis-backed throttling only when a redis
// client is configured; without one every request passes through.
func initializeRateLimiter(logger logs.Logger, redisClient *redis.Client) *middlewares.RateLimiterMiddleware {
	rateLimits := map[int]middlewares.RateLimitConfig{
		middlewares.AnonymousClient:     {Rate: rate.Limit(5), Burst: 10},
		middlewares.AuthenticatedClient: {Rate: rate.Limit(20), Burst: 40},
	}

	if redisClient == nil {
		logger.Info("redis not configured, rate limiting disabled")
		return middlewares.NewRateLimiterMiddleware(logger, rateLimits, nil, false)
	}

	return middlewares.NewRateLimiterMiddleware(logger, rateLimits, redis_rate.NewLimiter(redisClient), true)
}

func initializeJWTManager(logger logs.Logger) *auth.JWTManager {
	jwtPrivateKeyPath := os.Getenv("JWT_PRIVATE_KEY_PATH")
	if jwtPrivateKeyPath == "" {
		logger.Error("jwt private key path not found in environment variables")
		os.Exit(1)
	}
	privateKey, err := os.ReadFile(jwtPrivateKeyPath)
	if err != nil {
		logger.Error("failed to read private key", "path", jwtPrivateKeyPath, "error", err)
		os.Exit(1)
	}

	jwtPublicKeyPath := os.Getenv("JWT_PUBLIC_KEY_PATH")
	if jwtPublicKeyPath == "" {
		logger.Error("jwt public key path not found in environment variables")
		os.Exit(1)
	}
	publicKey, err := os.ReadFile(jwtPublicKeyPath)
	if err != nil {
		logger.Error("failed to read public key", "path", jwtPublicKeyPath, "error", err)
		os.Exit(1)
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		logger.Error("jwt issuer not found in environment variables")
		os.Exit(1)
	}
	jwtAudience := os.Getenv("JWT_AUDIENCE")
	if jwtAudience == "" {
		logger.Error("jwt audience not found in environment variables")
		os.Exit(1)
	}
	jwtExpirationMinutes := os.Getenv("JWT_TTL_MINUTES")
	if jwtExpirationMinutes == "" {
		logger.Error("jwt expiration minutes not found in environment variables")
		os.Exit(1)
	}
	jwtExpirationMinutesInt, err := strconv.Atoi(jwtExpirationMinutes)
	if err != nil {
		logger.Error("invalid jwt expiration minutes", "error", err)
		os.Exit(1)
	}

	jwtManager, err := auth.NewJWTManager(
		privateKey,
		publicKey,
		jwtIssuer,
		jwtAudience,
		time.Duration(jwtExpirationMinutesInt)*time.Minute,
	)
	if err != nil {
		logger.Error("failed to create jwt manager", "error", err)
		os.Exit(1)
	}

	return jwtManager
}
