package main

import (
	"flag"
	"log"
	"net/http"

	"shareit-backend/internal/config"
	"shareit-backend/internal/gateway"
	"shareit-backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "config/gateway.dev.yaml", "Path to configuration file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateGateway(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareIt gateway...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Gateway configuration", "address", cfg.GetServerAddress(), "core_url", cfg.Gateway.CoreURL, "rate_limit_rps", cfg.Gateway.RateLimit.RPS)

	gw := gateway.New(cfg.Gateway)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), gw.Router()); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
