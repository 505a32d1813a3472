package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hbnb-front/internal/config"
	"hbnb-front/internal/mockapi"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	store := mockapi.NewStore(bcrypt.DefaultCost)
	if err := mockapi.Seed(store); err != nil {
		logger.Fatal("seed store", zap.Error(err))
	}

	var (
		tokenStore mockapi.TokenStore
		limiter    mockapi.LoginLimiter
	)
	window := time.Duration(cfg.LoginRateWindowSeconds) * time.Second
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			tokenStore = mockapi.NewRedisTokenStore(redisClient)
			limiter = mockapi.NewRedisLoginLimiter(redisClient, window, cfg.LoginRateMax)
		}
		cancel()
	}
	if limiter == nil {
		limiter = mockapi.NewMemoryLoginLimiter(window, cfg.LoginRateMax)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		logger.Warn("jwt secret not configured, using development secret")
		secret = "hbnb-dev-secret"
	}
	issuer := mockapi.NewTokenIssuer(secret, time.Duration(cfg.JWTTTLMinutes)*time.Minute, tokenStore)

	handler := mockapi.NewHandler(logger, store, issuer, limiter)
	router := mockapi.NewRouter(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.MockAPIPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting mock api", zap.String("port", cfg.MockAPIPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
