package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hbnb-front/internal/api"
	"hbnb-front/internal/config"
	webhttp "hbnb-front/internal/http"
	"hbnb-front/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger.Named("api"))
	dispatcher := service.NewDispatcher(logger, client, cfg.SessionCookie, cfg.FetchConcurrency)
	pages := webhttp.NewPageHandler(logger, dispatcher, cfg.SessionCookie)
	router := webhttp.NewRouter(logger, pages)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting front",
		zap.String("port", cfg.HTTPPort),
		zap.String("api_base_url", cfg.APIBaseURL),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
